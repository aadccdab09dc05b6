package main

import (
	"context"
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

	token := strings.TrimSpace(os.Getenv("HAJJEFY_API_TOKEN"))
	if token == "" {
		log.Fatalf("HAJJEFY_API_TOKEN environment variable is required")
	}

	// Stdout carries JSON-RPC only, so all logging goes to a file.
	logger, cleanup, err := logging.New("mcp-stdio")
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer cleanup()

	client := hajjefy.NewClient(strings.TrimSpace(os.Getenv("HAJJEFY_BASE_URL")), token)

	if err := app.RunMCPStdio(context.Background(), client, logger, os.Stdin, os.Stdout); err != nil {
		logger.Errorf("stdio server error: %v", err)
		os.Exit(1)
	}
}
