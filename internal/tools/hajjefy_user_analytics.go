package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hajjefy/hajjefy-mcp-server/internal/analytics"
	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
	"github.com/sirupsen/logrus"
)

// userAnalyticsTool reports detailed analytics for one user.
type userAnalyticsTool struct {
	base
	now func() time.Time
}

// UserAnalytics constructs the tool.
func UserAnalytics(client *hajjefy.Client, logger *logrus.Entry) *userAnalyticsTool {
	return &userAnalyticsTool{base: base{client: client, logger: logger}, now: time.Now}
}

func (t *userAnalyticsTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_user_analytics",
		Description: "Get detailed analytics for a specific user",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"username": {Type: "string", Description: "Username to analyze"},
				"days":     daysSchema(30),
			},
			Required:             []string{"username"},
			AdditionalProperties: false,
		},
	}
}

type userAnalyticsArgs struct {
	Username string `json:"username"`
	Days     int    `json:"days"`
}

func (t *userAnalyticsTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args userAnalyticsArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, invalidArgs()
		}
	}
	if strings.TrimSpace(args.Username) == "" {
		return protocol.CallResult{}, invalidParams("username is required")
	}
	window, errResp := resolveWindow(windowArgs{Days: args.Days}, 30)
	if errResp != nil {
		return protocol.CallResult{}, errResp
	}

	profile, err := t.client.UserProfile(ctx, args.Username, window)
	if err != nil {
		// Expected failure path: the caller still gets a readable report.
		t.logger.Warnf("user profile fetch failed for %q: %v", args.Username, err)
		return protocol.TextResult(renderUserFetchError(args.Username, window.Days, err)), nil
	}
	if !profile.Success {
		return protocol.TextResult(renderUserNotFound(args.Username, window.Days)), nil
	}

	end := t.now()
	start := end.AddDate(0, 0, -window.Days)
	startStr := start.Format("2006-01-02")
	endStr := end.Format("2006-01-02")

	trends := analytics.FilterTrends(profile.Profile.DailyBillableTrends, startStr, endStr)
	summary := analytics.SummarizeTrends(trends)

	var b strings.Builder
	fmt.Fprintf(&b, "# User Analytics: %s (%s to %s)\n\n", args.Username, startStr, endStr)

	fmt.Fprintf(&b, "## Total Hours Summary (Last %d days)\n", window.Days)
	fmt.Fprintf(&b, "- **Total Hours Logged**: %.1f hours\n", summary.TotalHours)
	fmt.Fprintf(&b, "- **Billable Hours**: %.1f hours (%s%%)\n", summary.BillableHours, pctOf(summary.BillableHours, summary.TotalHours))
	fmt.Fprintf(&b, "- **Non-Billable Hours**: %.1f hours (%s%%)\n", summary.NonBillableHours, pctOf(summary.NonBillableHours, summary.TotalHours))
	fmt.Fprintf(&b, "- **Total Entries**: %d worklogs\n", summary.TotalEntries)
	fmt.Fprintf(&b, "- **Active Days**: %d days\n", summary.ActiveDays)
	fmt.Fprintf(&b, "- **Average Hours/Day**: %.1f hours\n\n", summary.AvgHoursPerDay)

	last := profile.Profile.LastActivity
	fmt.Fprintf(&b, "## Performance Metrics\n")
	fmt.Fprintf(&b, "- **Last Activity**: %s\n", orNA(analytics.DayString(last.LastWorklogDate)))
	fmt.Fprintf(&b, "- **Days Since Last Activity**: %d days\n", last.DaysSinceLastActivity.Int())
	fmt.Fprintf(&b, "- **Total Worklogs (All Time)**: %d\n\n", last.TotalWorklogs.Int())

	fmt.Fprintf(&b, "## Recent Daily Activity (Last 7 days)\n")
	recent := trends
	if len(recent) > 7 {
		recent = recent[len(recent)-7:]
	}
	if len(recent) == 0 {
		b.WriteString("No recent activity in the specified period\n")
	}
	for _, day := range recent {
		pct := 0.0
		if day.TotalHours > 0 {
			pct = day.BillablePercentage
		}
		fmt.Fprintf(&b, "- **%s**: %.1fh total (%.1fh billable, %.0f%%, %d entries)\n",
			analytics.DayString(day.Date), day.TotalHours, day.BillableHours, pct, day.WorklogCount.Int())
	}

	fmt.Fprintf(&b, "\n---\n*Analysis period: %d days*", window.Days)
	return protocol.TextResult(strings.TrimSpace(b.String())), nil
}

func renderUserNotFound(username string, days int) string {
	return fmt.Sprintf(`# User Analytics: %s

**User not found or no data available**

This could mean:
- User name "%s" doesn't exist in the system
- No time entries found for the past %d days
- User might be using a different name format

**Tip**: Try searching with partial names or check the user list first.`, username, username, days)
}

func renderUserFetchError(username string, days int, err error) string {
	return fmt.Sprintf(`# User Analytics: %s

**Error retrieving user data**

%v

**Suggestions**:
- Verify the username spelling: "%s"
- Try using the exact name format from your time tracking system
- Check if the user has logged time in the past %d days`, username, err, username, days)
}

func pctOf(part, total float64) string {
	if total <= 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", part/total*100)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
