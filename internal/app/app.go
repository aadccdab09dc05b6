package app

import (
	"context"
	"io"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
	"github.com/hajjefy/hajjefy-mcp-server/internal/mcp"
	"github.com/hajjefy/hajjefy-mcp-server/internal/tools"
	"github.com/sirupsen/logrus"
)

// NewToolbox builds the Hajjefy MCP toolbox against one shared API client.
func NewToolbox(client *hajjefy.Client, logger *logrus.Entry) *mcp.Toolbox {
	return mcp.NewToolbox(
		// Core info tools
		tools.Overview(),
		tools.SyncStatus(client, logger),

		// Summary and team tools
		tools.TimeSummary(client, logger),
		tools.TeamOverview(client, logger),
		tools.DailyHours(client, logger),
		tools.BillableAnalysis(client, logger),
		tools.CapacityAnalysis(client, logger),

		// Per-user tools
		tools.UserAnalytics(client, logger),
		tools.UserCustomerAllocation(client, logger),

		// Customer and TAM tools
		tools.CustomerAnalysis(client, logger),
		tools.TAMInsights(client, logger),

		// Export
		tools.ExportData(client, logger),
	)
}

// NewMCPServer constructs an MCP server with the full toolbox.
func NewMCPServer(client *hajjefy.Client, logger *logrus.Entry) *mcp.Server {
	return mcp.NewServer(NewToolbox(client, logger))
}

// RunMCPHTTP starts the MCP HTTP server on the provided address.
func RunMCPHTTP(client *hajjefy.Client, logger *logrus.Entry, addr string) error {
	return mcp.RunHTTP(NewMCPServer(client, logger), addr)
}

// RunMCPStdio serves MCP over the given stdio pair until EOF.
func RunMCPStdio(ctx context.Context, client *hajjefy.Client, logger *logrus.Entry, in io.Reader, out io.Writer) error {
	return mcp.RunStdio(ctx, NewMCPServer(client, logger), in, out)
}
