package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hajjefy/hajjefy-mcp-server/internal/analytics"
	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
	"github.com/sirupsen/logrus"
)

// capacityTool reports per-user utilization against expected hours, with a
// basic overview fallback when the capacity endpoint is unavailable.
type capacityTool struct {
	base
}

// CapacityAnalysis constructs the tool.
func CapacityAnalysis(client *hajjefy.Client, logger *logrus.Entry) *capacityTool {
	return &capacityTool{base{client: client, logger: logger}}
}

func (t *capacityTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_capacity_analysis",
		Description: "Get team capacity analysis showing utilization rates and workload distribution",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"days":        daysSchema(30),
				"user_filter": {Type: "string", Description: "Filter results for specific user (optional)"},
			},
			AdditionalProperties: false,
		},
	}
}

type capacityArgs struct {
	Days       int    `json:"days"`
	UserFilter string `json:"user_filter"`
}

// capacityResult distinguishes a full capacity report from a degraded
// overview fallback without string sniffing.
type capacityResult struct {
	full   *hajjefy.CapacityAnalysis
	basic  *hajjefy.DashboardOverview
	reason string
}

func (t *capacityTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args capacityArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, invalidArgs()
		}
	}
	window, errResp := resolveWindow(windowArgs{Days: args.Days}, 30)
	if errResp != nil {
		return protocol.CallResult{}, errResp
	}

	result, err := t.fetch(ctx, window)
	if err != nil {
		return protocol.CallResult{}, toolError("get_capacity_analysis", err)
	}
	if result.basic != nil {
		return protocol.TextResult(renderCapacityFallback(window.Days, result.basic)), nil
	}
	return protocol.TextResult(renderCapacity(window.Days, args.UserFilter, result.full)), nil
}

// fetch tries the capacity endpoint first and degrades to the dashboard
// overview on failure. Auth errors never degrade; a bad token would fail the
// fallback identically.
func (t *capacityTool) fetch(ctx context.Context, window hajjefy.Window) (capacityResult, error) {
	capacity, err := t.client.CapacityAnalysis(ctx, window)
	if err == nil {
		return capacityResult{full: capacity}, nil
	}
	var authErr *hajjefy.AuthError
	if errors.As(err, &authErr) {
		return capacityResult{}, err
	}

	t.logger.Warnf("capacity analysis unavailable, falling back to overview: %v", err)
	overview, fallbackErr := t.client.DashboardOverview(ctx, window)
	if fallbackErr != nil {
		return capacityResult{}, fallbackErr
	}
	return capacityResult{basic: overview, reason: err.Error()}, nil
}

func renderCapacity(days int, userFilter string, data *hajjefy.CapacityAnalysis) string {
	users := analytics.FilterUsersByName(data.Capacity.Users, userFilter)
	analytics.SortByUtilization(users)

	summary := data.Capacity.Summary

	var b strings.Builder
	fmt.Fprintf(&b, "# Team Capacity Analysis (%d days)\n\n", days)

	fmt.Fprintf(&b, "## Overall Team Summary\n")
	fmt.Fprintf(&b, "- **Total Users**: %d\n", summary.TotalUsers.Int())
	fmt.Fprintf(&b, "- **Team Total Hours**: %.1fh\n", summary.TeamTotalActualHours)
	fmt.Fprintf(&b, "- **Expected Hours**: %.1fh\n", summary.TeamTotalExpectedHours)
	fmt.Fprintf(&b, "- **Average Utilization**: %.1f%%\n", summary.TeamAvgUtilization)
	fmt.Fprintf(&b, "- **Capacity Gap**: %.1fh\n\n", summary.CapacityGap)

	fmt.Fprintf(&b, "## Capacity Categories\n")
	fmt.Fprintf(&b, "- **Over-Capacity**: %d users (>100%% utilization)\n", summary.OverCapacityUsers)
	fmt.Fprintf(&b, "- **Optimal Range**: %d users (90-100%% utilization)\n", summary.OptimalUsers)
	fmt.Fprintf(&b, "- **Under-Utilized**: %d users (<90%% utilization)\n\n", summary.UnderUtilizedUsers)

	header := "## Individual User Capacity"
	if userFilter != "" {
		header += fmt.Sprintf(" (Filtered: %s)", userFilter)
	}
	b.WriteString(header + "\n\n")

	limit := len(users)
	if userFilter == "" && limit > 15 {
		limit = 15
	}
	for i := 0; i < limit; i++ {
		u := users[i]
		category := analytics.Categorize(u.AvgUtilization)
		fmt.Fprintf(&b, "### %d. %s [%s]\n", i+1, u.UserName, category)
		fmt.Fprintf(&b, "- **Utilization**: %.1f%%\n", u.AvgUtilization)
		fmt.Fprintf(&b, "- **Actual Hours**: %.1fh / %.1fh expected\n", u.TotalActualHours, u.TotalExpectedHours)
		fmt.Fprintf(&b, "- **Over/Under**: %+.1fh\n", u.OverUnderTotal)
		fmt.Fprintf(&b, "- **Time Off**: %.0f days (%.1fh)\n", u.TotalTimeOffDays, u.TotalTimeOffHours)
		fmt.Fprintf(&b, "- **Workload**: %s (%.1fh/day)\n", u.WorkloadScheme.SchemeName, u.WorkloadScheme.HoursPerDay)
		fmt.Fprintf(&b, "- **Holiday Scheme**: %s\n", u.HolidayScheme.SchemeName)
		fmt.Fprintf(&b, "- **Days Worked**: %d days, %d worklogs\n\n", u.TotalDaysWorked.Int(), u.TotalWorklogs.Int())
	}
	if len(users) > limit {
		b.WriteString("*Showing top 15 users. Use user_filter parameter to see specific users.*\n\n")
	}

	fmt.Fprintf(&b, "## Recommendations\n")
	if summary.OverCapacityUsers > 0 {
		fmt.Fprintf(&b, "- **Over-Capacity Users**: Consider redistributing workload or reviewing expectations for %d users working >100%%\n", summary.OverCapacityUsers)
	}
	if summary.UnderUtilizedUsers > 0 {
		fmt.Fprintf(&b, "- **Under-Utilized Users**: %d users have capacity for additional work\n", summary.UnderUtilizedUsers)
	}
	if summary.CapacityGap > 0 {
		fmt.Fprintf(&b, "- **Team Gap**: Team is %.1fh over capacity\n", summary.CapacityGap)
	} else {
		fmt.Fprintf(&b, "- **Team Gap**: Team has %.1fh unused capacity\n", -summary.CapacityGap)
	}

	return strings.TrimSpace(b.String())
}

func renderCapacityFallback(days int, overview *hajjefy.DashboardOverview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Capacity Analysis (%d days)\n\n", days)
	b.WriteString("**Note**: Detailed capacity analysis not available. Showing basic overview.\n\n")
	fmt.Fprintf(&b, "## Team Overview\n")
	fmt.Fprintf(&b, "- **Total Hours**: %.1f hours\n", overview.Totals.Hours)
	fmt.Fprintf(&b, "- **Average Hours/Day**: %.1f hours\n", overview.Totals.AvgHoursPerDay)
	fmt.Fprintf(&b, "- **Active Users**: %d\n\n", overview.Database.UniqueAuthors.Int())
	b.WriteString("For detailed capacity analysis with utilization rates, workload schemes, and holiday tracking, please visit your Hajjefy dashboard directly.")
	return b.String()
}
