package mcpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
)

// Client issues JSON-RPC calls to a running MCP server over HTTP. It is
// used by the setup checker to verify a deployment end to end.
type Client struct {
	baseURL    string
	httpClient *http.Client
	counter    uint64
}

// New builds a client with a sane timeout.
func New(baseURL string) *Client {
	trimmed := baseURL
	if !strings.HasSuffix(trimmed, "/") {
		trimmed += "/"
	}
	return &Client{
		baseURL: trimmed,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) nextID() any {
	return atomic.AddUint64(&c.counter, 1)
}

func (c *Client) do(ctx context.Context, method string, params any) (protocol.Response, error) {
	var resp protocol.Response

	payload := protocol.Request{
		JSONRPC: "2.0",
		ID:      c.nextID(),
		Method:  method,
		Params:  mustRaw(params),
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return resp, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(buf))
	if err != nil {
		return resp, fmt.Errorf("build http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return resp, fmt.Errorf("call mcp server: %w", err)
	}
	defer httpResp.Body.Close()

	// The server delivers JSON-RPC errors with non-2xx statuses too; decode
	// the body first so the real error message survives.
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
			return resp, fmt.Errorf("mcp server returned status %d", httpResp.StatusCode)
		}
		return resp, fmt.Errorf("decode response: %w", err)
	}

	if resp.Error != nil {
		return resp, errors.New(resp.Error.Message)
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return resp, fmt.Errorf("mcp server returned status %d", httpResp.StatusCode)
	}

	return resp, nil
}

// Initialize performs the MCP handshake and returns the raw result.
func (c *Client) Initialize(ctx context.Context) (any, error) {
	resp, err := c.do(ctx, "initialize", map[string]any{})
	if err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// Ping checks liveness of the server.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, "ping", map[string]any{})
	return err
}

// ListTools fetches the advertised tools from the MCP server.
func (c *Client) ListTools(ctx context.Context) ([]protocol.ToolDescriptor, error) {
	resp, err := c.do(ctx, "tools/list", map[string]any{})
	if err != nil {
		return nil, err
	}
	resultBytes, err := json.Marshal(resp.Result)
	if err != nil {
		return nil, fmt.Errorf("marshal list result: %w", err)
	}
	var result protocol.ListResult
	if err := json.Unmarshal(resultBytes, &result); err != nil {
		return nil, fmt.Errorf("unmarshal list result: %w", err)
	}
	return result.Tools, nil
}

// CallTool invokes a tool and returns the structured result.
func (c *Client) CallTool(ctx context.Context, name string, args map[string]any) (protocol.CallResult, error) {
	resp, err := c.do(ctx, "tools/call", protocol.CallParams{Name: name, Args: mustRaw(args)})
	if err != nil {
		return protocol.CallResult{}, err
	}
	resultBytes, err := json.Marshal(resp.Result)
	if err != nil {
		return protocol.CallResult{}, fmt.Errorf("marshal call result: %w", err)
	}
	var result protocol.CallResult
	if err := json.Unmarshal(resultBytes, &result); err != nil {
		return protocol.CallResult{}, fmt.Errorf("unmarshal call result: %w", err)
	}
	return result, nil
}

func mustRaw(v any) json.RawMessage {
	if v == nil {
		return json.RawMessage(`null`)
	}
	b, _ := json.Marshal(v)
	return json.RawMessage(b)
}
