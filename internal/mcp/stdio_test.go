package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
)

func TestRunStdio(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		``,
		`{"jsonrpc":"2.0","id":1,"method":"ping"}`,
		`not json at all`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
	}, "\n") + "\n")
	var out bytes.Buffer

	if err := RunStdio(context.Background(), newTestServer(), in, &out); err != nil {
		t.Fatalf("RunStdio: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 responses (notification and blank line skipped), got %d: %q", len(lines), out.String())
	}

	var ping protocol.Response
	if err := json.Unmarshal([]byte(lines[0]), &ping); err != nil {
		t.Fatalf("decode ping response: %v", err)
	}
	if ping.Error != nil || ping.ID != float64(1) {
		t.Fatalf("ping response: %+v", ping)
	}

	var parseErr protocol.Response
	if err := json.Unmarshal([]byte(lines[1]), &parseErr); err != nil {
		t.Fatalf("decode parse error response: %v", err)
	}
	if parseErr.Error == nil || parseErr.Error.Code != protocol.CodeParseError {
		t.Fatalf("expected parse error, got %+v", parseErr)
	}

	var list protocol.Response
	if err := json.Unmarshal([]byte(lines[2]), &list); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if list.Error != nil {
		t.Fatalf("list response: %+v", list.Error)
	}
}

func TestRunStdioEmptyInput(t *testing.T) {
	var out bytes.Buffer
	if err := RunStdio(context.Background(), newTestServer(), strings.NewReader(""), &out); err != nil {
		t.Fatalf("RunStdio: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("no input must produce no output, got %q", out.String())
	}
}
