package app

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
	"github.com/hajjefy/hajjefy-mcp-server/internal/logging"
	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
)

func TestToolboxCatalog(t *testing.T) {
	tb := NewToolbox(hajjefy.NewClient("", "token"), logging.Discard())

	var names []string
	for _, desc := range tb.Describe() {
		names = append(names, desc.Name)
		if desc.Description == "" {
			t.Errorf("tool %s has no description", desc.Name)
		}
	}

	want := []string{
		"export_data",
		"get_billable_analysis",
		"get_capacity_analysis",
		"get_customer_analysis",
		"get_daily_hours",
		"get_hajjefy_overview",
		"get_sync_status",
		"get_tam_insights",
		"get_team_overview",
		"get_time_summary",
		"get_user_analytics",
		"get_user_customer_allocation",
	}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("tool catalog = %v, want %v", names, want)
	}
}

func TestServerRejectsUnknownTool(t *testing.T) {
	server := NewMCPServer(hajjefy.NewClient("", "token"), logging.Discard())

	params, _ := json.Marshal(protocol.CallParams{Name: "get_nothing"})
	resp, err := server.Handle(context.Background(), protocol.Request{ID: "1", Method: "tools/call", Params: params})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != protocol.CodeMethodNotFound {
		t.Fatalf("expected method-not-found, got %+v", resp.Error)
	}
}
