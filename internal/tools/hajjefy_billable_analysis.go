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

// billableTool reports the billable/non-billable split, degrading to the
// overview account breakdown when the billable endpoint is missing.
type billableTool struct {
	base
}

// BillableAnalysis constructs the tool.
func BillableAnalysis(client *hajjefy.Client, logger *logrus.Entry) *billableTool {
	return &billableTool{base{client: client, logger: logger}}
}

func (t *billableTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_billable_analysis",
		Description: "Get billable hours analysis and revenue insights",
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

// billableResult separates the full analysis from the degraded overview.
type billableResult struct {
	full   *hajjefy.BillableAnalysis
	basic  *hajjefy.DashboardOverview
	reason string
}

func (t *billableTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
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

	result, err := t.fetch(ctx, window)
	if err != nil {
		return protocol.CallResult{}, toolError("get_billable_analysis", err)
	}
	if result.basic != nil {
		return protocol.TextResult(renderBillableFallback(window.Days, result.basic)), nil
	}
	return protocol.TextResult(renderBillable(window.Days, result.full)), nil
}

func (t *billableTool) fetch(ctx context.Context, window hajjefy.Window) (billableResult, error) {
	data, err := t.client.BillableAnalysis(ctx, window)
	if err == nil {
		return billableResult{full: data}, nil
	}
	var authErr *hajjefy.AuthError
	if errors.As(err, &authErr) {
		return billableResult{}, err
	}

	t.logger.Warnf("billable analysis unavailable, falling back to overview: %v", err)
	overview, fallbackErr := t.client.DashboardOverview(ctx, window)
	if fallbackErr != nil {
		return billableResult{}, fallbackErr
	}
	return billableResult{basic: overview, reason: err.Error()}, nil
}

func renderBillable(days int, data *hajjefy.BillableAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Billable Hours Analysis (%d days)\n\n", days)

	fmt.Fprintf(&b, "## Revenue Summary\n")
	fmt.Fprintf(&b, "- **Total Billable Hours**: %.1f hours\n", data.Summary.BillableHours)
	fmt.Fprintf(&b, "- **Total Non-Billable Hours**: %.1f hours\n", data.Summary.NonBillableHours)
	fmt.Fprintf(&b, "- **Billable Percentage**: %.1f%%\n\n", data.Summary.BillablePercentage)

	fmt.Fprintf(&b, "## Top Billable Accounts\n")
	if len(data.TopBillableAccounts) == 0 {
		b.WriteString("No billable accounts data available\n")
	}
	for i, acc := range data.TopBillableAccounts {
		fmt.Fprintf(&b, "%d. **%s**: %.1fh\n", i+1, acc.Account, acc.BillableHours)
	}

	fmt.Fprintf(&b, "\n## Monthly Trend\n")
	if len(data.MonthlyTrend) == 0 {
		b.WriteString("Monthly trend data not available\n")
	}
	for _, month := range data.MonthlyTrend {
		fmt.Fprintf(&b, "- **%s**: %.1fh billable (%.1f%%)\n", month.Month, month.BillableHours, month.BillablePercentage)
	}

	return strings.TrimSpace(b.String())
}

func renderBillableFallback(days int, overview *hajjefy.DashboardOverview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Billable Analysis (%d days)\n\n", days)
	b.WriteString("**Note**: Using basic time summary as billable analysis endpoint may not be available.\n\n")
	fmt.Fprintf(&b, "## Time Overview\n")
	fmt.Fprintf(&b, "- **Total Hours**: %.1f hours\n", overview.Totals.Hours)
	fmt.Fprintf(&b, "- **Total Entries**: %d worklogs\n\n", overview.Totals.Entries.Int())
	fmt.Fprintf(&b, "## Account Breakdown\n")
	for i, acc := range overview.TopAccounts {
		fmt.Fprintf(&b, "%d. **%s**: %.1fh (%.1f%%)\n", i+1, acc.Account, acc.TotalHours, acc.Percentage)
	}
	b.WriteString("\nFor detailed billable analysis, please check your Hajjefy dashboard directly.")
	return strings.TrimSpace(b.String())
}
