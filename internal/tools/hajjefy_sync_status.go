package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
	"github.com/sirupsen/logrus"
)

// syncStatusTool reports the worklog sync state of the backing database.
type syncStatusTool struct {
	base
}

// SyncStatus constructs the tool.
func SyncStatus(client *hajjefy.Client, logger *logrus.Entry) *syncStatusTool {
	return &syncStatusTool{base{client: client, logger: logger}}
}

func (t *syncStatusTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_sync_status",
		Description: "Get the current worklog synchronization status",
		InputSchema: &protocol.JSONSchema{
			Type:                 "object",
			Properties:           map[string]protocol.JSONSchema{},
			AdditionalProperties: false,
		},
	}
}

func (t *syncStatusTool) Invoke(ctx context.Context, _ json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	status, err := t.client.SyncStatus(ctx)
	if err != nil {
		var authErr *hajjefy.AuthError
		if errors.As(err, &authErr) {
			return protocol.CallResult{}, toolError("get_sync_status", err)
		}
		if hajjefy.IsUnavailable(err) {
			return protocol.TextResult("# Sync Status\n\nSync status is not available on this Hajjefy instance."), nil
		}
		return protocol.CallResult{}, toolError("get_sync_status", err)
	}

	var b strings.Builder
	b.WriteString("# Sync Status\n\n")
	fmt.Fprintf(&b, "- **Status**: %s\n", orUnknown(status.Sync.Status))
	fmt.Fprintf(&b, "- **Last Sync**: %s\n", orUnknown(status.Sync.LastSyncAt))
	fmt.Fprintf(&b, "- **Worklogs Synced**: %d\n", status.Sync.WorklogsSynced.Int())
	fmt.Fprintf(&b, "- **Next Scheduled Sync**: %s\n", orUnknown(status.Sync.NextScheduledSync))
	return protocol.TextResult(strings.TrimSpace(b.String())), nil
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
