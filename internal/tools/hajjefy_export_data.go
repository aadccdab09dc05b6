package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
	"github.com/sirupsen/logrus"
)

// exportTool snapshots the overview as JSON or CSV inside the text reply.
type exportTool struct {
	base
	now func() time.Time
}

// ExportData constructs the tool.
func ExportData(client *hajjefy.Client, logger *logrus.Entry) *exportTool {
	return &exportTool{base: base{client: client, logger: logger}, now: time.Now}
}

func (t *exportTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "export_data",
		Description: "Export time tracking data in various formats",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"format": {
					Type:        "string",
					Enum:        []string{"json", "csv"},
					Description: "Export format (default: json)",
				},
				"days": daysSchema(30),
				"include_details": {
					Type:        "boolean",
					Description: "Include detailed worklog entries (default: false)",
				},
			},
			AdditionalProperties: false,
		},
	}
}

type exportArgs struct {
	Format         string `json:"format"`
	Days           int    `json:"days"`
	IncludeDetails bool   `json:"include_details"`
}

func (t *exportTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args exportArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, invalidArgs()
		}
	}
	format := args.Format
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		return protocol.CallResult{}, invalidParams(fmt.Sprintf("format must be json or csv, got %q", args.Format))
	}
	window, errResp := resolveWindow(windowArgs{Days: args.Days}, 30)
	if errResp != nil {
		return protocol.CallResult{}, errResp
	}

	overview, err := t.client.DashboardOverview(ctx, window)
	if err != nil {
		return protocol.CallResult{}, toolError("export_data", err)
	}

	exportedAt := t.now().UTC().Format(time.RFC3339)
	if format == "csv" {
		return protocol.TextResult(renderCSVExport(overview, exportedAt)), nil
	}
	return protocol.TextResult(renderJSONExport(overview, format, args.IncludeDetails, exportedAt)), nil
}

func renderCSVExport(overview *hajjefy.DashboardOverview, exportedAt string) string {
	lines := []string{"Account,Hours,Percentage"}
	for _, acc := range overview.TopAccounts {
		lines = append(lines, fmt.Sprintf("%s,%.1f,%.1f%%", acc.Account, acc.TotalHours, acc.Percentage))
	}

	var b strings.Builder
	b.WriteString("# Exported Data (CSV Format)\n\n")
	b.WriteString("```csv\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n```\n\n")
	fmt.Fprintf(&b, "## Summary\n")
	fmt.Fprintf(&b, "- **Total Hours**: %.1f\n", overview.Totals.Hours)
	fmt.Fprintf(&b, "- **Export Date**: %s\n", exportedAt)
	fmt.Fprintf(&b, "- **Date Range**: %s to %s\n", overview.DateRange.From, overview.DateRange.To)
	return strings.TrimSpace(b.String())
}

func renderJSONExport(overview *hajjefy.DashboardOverview, format string, includeDetails bool, exportedAt string) string {
	payload := map[string]any{
		"metadata": map[string]any{
			"exported_at":     exportedAt,
			"date_range":      overview.DateRange,
			"format":          format,
			"include_details": includeDetails,
		},
		"summary":         overview.Totals,
		"accounts":        overview.TopAccounts,
		"recent_activity": overview.RecentDays,
		"database_info":   overview.Database,
	}
	pretty, _ := json.MarshalIndent(payload, "", "  ")
	return fmt.Sprintf("# Exported Data (JSON Format)\n\n```json\n%s\n```", string(pretty))
}
