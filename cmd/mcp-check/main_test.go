package main

import (
	"testing"

	"github.com/hajjefy/hajjefy-mcp-server/internal/app"
	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
	"github.com/hajjefy/hajjefy-mcp-server/internal/logging"
)

func TestDefaultSmokeToolIsRegistered(t *testing.T) {
	tb := app.NewToolbox(hajjefy.NewClient("", "token"), logging.Discard())
	for _, desc := range tb.Describe() {
		if desc.Name == defaultSmokeTool {
			return
		}
	}
	t.Fatalf("default smoke tool %q is not in the tool catalog", defaultSmokeTool)
}
