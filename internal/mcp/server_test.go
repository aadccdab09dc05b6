package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
)

type staticTool struct {
	name string
}

func (t staticTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{Name: t.name, Description: "static test tool"}
}

func (t staticTool) Invoke(_ context.Context, _ json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	return protocol.TextResult("ok:" + t.name), nil
}

func newTestServer() *Server {
	return NewServer(NewToolbox(staticTool{name: "zeta"}, staticTool{name: "alpha"}))
}

func TestHandleInitialize(t *testing.T) {
	resp, err := newTestServer().Handle(context.Background(), protocol.Request{
		JSONRPC: "2.0", ID: float64(1), Method: "initialize",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Fatalf("protocolVersion = %v", result["protocolVersion"])
	}
	info, ok := result["serverInfo"].(map[string]string)
	if !ok || info["name"] != "hajjefy-mcp-server" {
		t.Fatalf("serverInfo = %v", result["serverInfo"])
	}
}

func TestHandlePing(t *testing.T) {
	resp, err := newTestServer().Handle(context.Background(), protocol.Request{ID: "p1", Method: "ping"})
	if err != nil || resp.Error != nil {
		t.Fatalf("ping failed: %v %v", err, resp.Error)
	}
	if resp.ID != "p1" {
		t.Fatalf("id = %v", resp.ID)
	}
}

func TestHandleToolsListStableOrder(t *testing.T) {
	resp, err := newTestServer().Handle(context.Background(), protocol.Request{ID: "1", Method: "tools/list"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	list, ok := resp.Result.(protocol.ListResult)
	if !ok {
		t.Fatalf("unexpected result type: %T", resp.Result)
	}
	if len(list.Tools) != 2 || list.Tools[0].Name != "alpha" || list.Tools[1].Name != "zeta" {
		t.Fatalf("tools not in name order: %+v", list.Tools)
	}
}

func TestHandleToolsCall(t *testing.T) {
	params, _ := json.Marshal(protocol.CallParams{Name: "alpha"})
	resp, err := newTestServer().Handle(context.Background(), protocol.Request{ID: "1", Method: "tools/call", Params: params})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, ok := resp.Result.(protocol.CallResult)
	if !ok || len(result.Content) != 1 || result.Content[0].Text != "ok:alpha" {
		t.Fatalf("unexpected call result: %+v", resp.Result)
	}
}

func TestHandleToolsCallUnknownTool(t *testing.T) {
	params, _ := json.Marshal(protocol.CallParams{Name: "nope"})
	resp, err := newTestServer().Handle(context.Background(), protocol.Request{ID: "1", Method: "tools/call", Params: params})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != protocol.CodeMethodNotFound {
		t.Fatalf("expected method-not-found, got %+v", resp.Error)
	}
	if resp.Error.Message != "Tool 'nope' not found" {
		t.Fatalf("message = %q", resp.Error.Message)
	}
}

func TestHandleToolsCallMissingName(t *testing.T) {
	resp, _ := newTestServer().Handle(context.Background(), protocol.Request{ID: "1", Method: "tools/call", Params: json.RawMessage(`{}`)})
	if resp.Error == nil || resp.Error.Code != protocol.CodeInvalidParams {
		t.Fatalf("expected invalid-params, got %+v", resp.Error)
	}
}

func TestHandleUnknownMethod(t *testing.T) {
	resp, _ := newTestServer().Handle(context.Background(), protocol.Request{ID: "1", Method: "resources/list"})
	if resp.Error == nil || resp.Error.Code != protocol.CodeMethodNotFound {
		t.Fatalf("expected method-not-found, got %+v", resp.Error)
	}
}

func TestHandleRejectsWrongJSONRPCVersion(t *testing.T) {
	resp, _ := newTestServer().Handle(context.Background(), protocol.Request{JSONRPC: "1.0", ID: "1", Method: "ping"})
	if resp.Error == nil || resp.Error.Code != protocol.CodeInvalidRequest {
		t.Fatalf("expected invalid-request, got %+v", resp.Error)
	}
}

func TestToolboxDuplicateNamesKeepLast(t *testing.T) {
	tb := NewToolbox(staticTool{name: "dup"}, staticTool{name: "dup"})
	if got := len(tb.Describe()); got != 1 {
		t.Fatalf("expected 1 descriptor, got %d", got)
	}
}

func TestNormalizeID(t *testing.T) {
	if got := normalizeID(nil); got != "0" {
		t.Fatalf("nil id = %v", got)
	}
	if got := normalizeID("abc"); got != "abc" {
		t.Fatalf("string id = %v", got)
	}
	if got := normalizeID(float64(7)); got != float64(7) {
		t.Fatalf("numeric id = %v", got)
	}
}
