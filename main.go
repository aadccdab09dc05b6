package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/hajjefy/hajjefy-mcp-server/internal/app"
	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
	"github.com/hajjefy/hajjefy-mcp-server/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	// Flags / env
	transport := flag.String("transport", envOr("MCP_TRANSPORT", "stdio"), "MCP transport: stdio or http")
	httpAddr := flag.String("http", envOr("MCP_HTTP_ADDR", ":3333"), "MCP HTTP listen address (e.g., :3333)")
	flag.Parse()

	token := strings.TrimSpace(os.Getenv("HAJJEFY_API_TOKEN"))
	if token == "" {
		log.Fatalf("HAJJEFY_API_TOKEN environment variable is required")
	}
	baseURL := strings.TrimSpace(os.Getenv("HAJJEFY_BASE_URL"))

	logger, cleanup, err := logging.New("mcp-server")
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer cleanup()

	client := hajjefy.NewClient(baseURL, token)

	switch *transport {
	case "stdio":
		// No stdout logging in stdio mode; the client expects clean JSON-RPC.
		if err := app.RunMCPStdio(context.Background(), client, logger, os.Stdin, os.Stdout); err != nil {
			logger.Errorf("stdio server error: %v", err)
			os.Exit(1)
		}
	case "http":
		logger.Infof("MCP server listening on %s", *httpAddr)
		if err := app.RunMCPHTTP(client, logger, *httpAddr); err != nil {
			log.Fatalf("MCP server error: %v", err)
		}
	default:
		log.Fatalf("unknown transport %q (expected stdio or http)", *transport)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
