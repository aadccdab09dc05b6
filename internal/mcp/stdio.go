package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
)

// maxLineBytes bounds a single JSON-RPC line on stdin.
const maxLineBytes = 4 * 1024 * 1024

// RunStdio serves newline-delimited JSON-RPC on the given reader/writer pair.
// This is the transport MCP desktop clients spawn the server with; nothing
// except JSON-RPC responses may be written to out.
func RunStdio(ctx context.Context, server *Server, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req protocol.Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			if err := enc.Encode(protocol.Response{JSONRPC: "2.0", ID: "0", Error: &protocol.ResponseError{Code: protocol.CodeParseError, Message: "invalid JSON"}}); err != nil {
				return err
			}
			continue
		}

		// Notifications carry no id and expect no response.
		if req.ID == nil && strings.HasPrefix(req.Method, "notifications/") {
			continue
		}

		resp, err := server.Handle(ctx, req)
		if err != nil {
			resp = WriteError(req.ID, protocol.CodeInternalError, "internal error", err)
		}
		if err := enc.Encode(resp); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
	return scanner.Err()
}
