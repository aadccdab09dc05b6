package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
	"github.com/hajjefy/hajjefy-mcp-server/internal/mcpclient"
	"github.com/joho/godotenv"
)

// defaultSmokeTool is invoked when no -tool override is given. It must be a
// registered catalog name.
const defaultSmokeTool = "get_time_summary"

// mcp-check validates a Hajjefy MCP deployment: env vars, the upstream
// analytics API, and a running MCP server (ping, tools/list, one call).
func main() {
	_ = godotenv.Load()

	mcpURL := flag.String("mcp", "", "MCP server base URL to check (e.g., http://localhost:3333); skipped when empty")
	toolName := flag.String("tool", defaultSmokeTool, "tool to invoke as a smoke test")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	failures := 0

	token := strings.TrimSpace(os.Getenv("HAJJEFY_API_TOKEN"))
	if token == "" {
		fmt.Println("[FAIL] HAJJEFY_API_TOKEN is not set")
		os.Exit(1)
	}
	fmt.Println("[ ok ] HAJJEFY_API_TOKEN is set")

	baseURL := strings.TrimSpace(os.Getenv("HAJJEFY_BASE_URL"))
	client := hajjefy.NewClient(baseURL, token)

	if health, err := client.Health(ctx); err != nil {
		fmt.Printf("[FAIL] Hajjefy API health check: %v\n", err)
		failures++
	} else {
		fmt.Printf("[ ok ] Hajjefy API reachable (status: %s)\n", health.Status)
	}

	if _, err := client.DashboardOverview(ctx, hajjefy.Window{Days: 30}); err != nil {
		fmt.Printf("[FAIL] dashboard overview fetch: %v\n", err)
		failures++
	} else {
		fmt.Println("[ ok ] dashboard overview fetch")
	}

	if *mcpURL != "" {
		mc := mcpclient.New(*mcpURL)

		if err := mc.Ping(ctx); err != nil {
			fmt.Printf("[FAIL] MCP ping: %v\n", err)
			failures++
		} else {
			fmt.Println("[ ok ] MCP ping")
		}

		tools, err := mc.ListTools(ctx)
		if err != nil {
			fmt.Printf("[FAIL] MCP tools/list: %v\n", err)
			failures++
		} else {
			fmt.Printf("[ ok ] MCP tools/list (%d tools)\n", len(tools))
			for _, t := range tools {
				fmt.Printf("       - %s\n", t.Name)
			}
		}

		result, err := mc.CallTool(ctx, *toolName, map[string]any{})
		if err != nil {
			fmt.Printf("[FAIL] MCP tools/call %s: %v\n", *toolName, err)
			failures++
		} else if len(result.Content) == 0 {
			fmt.Printf("[FAIL] MCP tools/call %s returned no content\n", *toolName)
			failures++
		} else {
			fmt.Printf("[ ok ] MCP tools/call %s (%d chars)\n", *toolName, len(result.Content[0].Text))
		}
	}

	if failures > 0 {
		log.Fatalf("%d check(s) failed", failures)
	}
	fmt.Println("All checks passed.")
}
