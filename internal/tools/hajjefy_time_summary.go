package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
	"github.com/sirupsen/logrus"
)

// timeSummaryTool reports overall time-tracking totals for a period.
type timeSummaryTool struct {
	base
}

// TimeSummary constructs the tool.
func TimeSummary(client *hajjefy.Client, logger *logrus.Entry) *timeSummaryTool {
	return &timeSummaryTool{base{client: client, logger: logger}}
}

func (t *timeSummaryTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_time_summary",
		Description: "Get time tracking summary for a specified period",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"days":      daysSchema(30),
				"from_date": dateSchema("Start date (YYYY-MM-DD format)"),
				"to_date":   dateSchema("End date (YYYY-MM-DD format)"),
			},
			AdditionalProperties: false,
		},
	}
}

func (t *timeSummaryTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args windowArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, invalidArgs()
		}
	}
	window, errResp := resolveWindow(args, 30)
	if errResp != nil {
		return protocol.CallResult{}, errResp
	}

	overview, err := t.client.DashboardOverview(ctx, window)
	if err != nil {
		t.logger.Errorf("overview fetch failed: %v", err)
		return protocol.CallResult{}, toolError("get_time_summary", err)
	}

	return protocol.TextResult(renderTimeSummary(overview)), nil
}

func renderTimeSummary(overview *hajjefy.DashboardOverview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Time Tracking Summary (%s to %s)\n\n", overview.DateRange.From, overview.DateRange.To)

	fmt.Fprintf(&b, "## Overall Statistics\n")
	fmt.Fprintf(&b, "- **Total Hours**: %.1f hours\n", overview.Totals.Hours)
	fmt.Fprintf(&b, "- **Total Entries**: %d worklogs\n", overview.Totals.Entries.Int())
	fmt.Fprintf(&b, "- **Active Days**: %d days\n", overview.Totals.ActiveDays)
	fmt.Fprintf(&b, "- **Average Hours/Day**: %.1f hours\n\n", overview.Totals.AvgHoursPerDay)

	fmt.Fprintf(&b, "## Top Accounts\n")
	for i, acc := range overview.TopAccounts {
		fmt.Fprintf(&b, "%d. **%s**: %.1fh (%.1f%%)\n", i+1, acc.Account, acc.TotalHours, acc.Percentage)
	}

	fmt.Fprintf(&b, "\n## Recent Activity (Last 7 Days)\n")
	for _, day := range overview.RecentDays {
		fmt.Fprintf(&b, "- **%s**: %.1fh (%d entries)\n", day.Date, day.TotalHours, day.EntryCount.Int())
	}

	fmt.Fprintf(&b, "\n## Database Status\n")
	fmt.Fprintf(&b, "- **Total Worklogs**: %d\n", overview.Database.TotalWorklogs.Int())
	fmt.Fprintf(&b, "- **Date Range**: %s - %s\n", overview.Database.DateRange.Earliest, overview.Database.DateRange.Latest)
	fmt.Fprintf(&b, "- **Unique Users**: %d\n", overview.Database.UniqueAuthors.Int())
	fmt.Fprintf(&b, "- **Unique Accounts**: %d\n", overview.Database.UniqueAccounts.Int())

	return strings.TrimSpace(b.String())
}
