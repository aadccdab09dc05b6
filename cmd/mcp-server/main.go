package main

import (
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

	httpAddr := flag.String("http", ":3333", "MCP HTTP listen address (e.g., :3333)")
	flag.Parse()

	token := strings.TrimSpace(os.Getenv("HAJJEFY_API_TOKEN"))
	if token == "" {
		log.Fatalf("HAJJEFY_API_TOKEN environment variable is required")
	}

	logger, cleanup, err := logging.New("mcp-server")
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer cleanup()

	client := hajjefy.NewClient(strings.TrimSpace(os.Getenv("HAJJEFY_BASE_URL")), token)

	log.Printf("MCP server listening on %s", *httpAddr)
	if err := app.RunMCPHTTP(client, logger, *httpAddr); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
