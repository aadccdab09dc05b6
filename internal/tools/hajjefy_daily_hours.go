package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hajjefy/hajjefy-mcp-server/internal/analytics"
	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// worklogFetchLimit caps the worklog fan-out fetch for per-user and
// timestamp sections.
const worklogFetchLimit = 1000

// dailyHoursTool is the comprehensive daily breakdown: day-by-day rows,
// project allocation, weekly patterns, worklog timestamps and a per-user
// matrix, each section gated by its own flag.
type dailyHoursTool struct {
	base
}

// DailyHours constructs the tool.
func DailyHours(client *hajjefy.Client, logger *logrus.Entry) *dailyHoursTool {
	return &dailyHoursTool{base{client: client, logger: logger}}
}

func (t *dailyHoursTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_daily_hours",
		Description: "Get comprehensive daily hours breakdown with project allocation, timestamps, trends, and billable analysis",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"days":      daysSchema(30),
				"from_date": dateSchema("Start date (YYYY-MM-DD format)"),
				"to_date":   dateSchema("End date (YYYY-MM-DD format)"),
				"include_projects": {
					Type:        "boolean",
					Description: "Include project/account allocation breakdown (default: true)",
				},
				"include_worklogs": {
					Type:        "boolean",
					Description: "Include specific worklog timestamps and details (default: false)",
				},
				"include_trends": {
					Type:        "boolean",
					Description: "Include weekly patterns and trends analysis (default: true)",
				},
				"include_per_user": {
					Type:        "boolean",
					Description: "Include daily hours breakdown per individual user (default: false)",
				},
			},
			AdditionalProperties: false,
		},
	}
}

type dailyHoursArgs struct {
	Days            int    `json:"days"`
	FromDate        string `json:"from_date"`
	ToDate          string `json:"to_date"`
	IncludeProjects *bool  `json:"include_projects"`
	IncludeWorklogs *bool  `json:"include_worklogs"`
	IncludeTrends   *bool  `json:"include_trends"`
	IncludePerUser  *bool  `json:"include_per_user"`
}

func (t *dailyHoursTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args dailyHoursArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, invalidArgs()
		}
	}
	window, errResp := resolveWindow(windowArgs{Days: args.Days, FromDate: args.FromDate, ToDate: args.ToDate}, 30)
	if errResp != nil {
		return protocol.CallResult{}, errResp
	}

	includeProjects := args.IncludeProjects == nil || *args.IncludeProjects
	includeWorklogs := args.IncludeWorklogs != nil && *args.IncludeWorklogs
	includeTrends := args.IncludeTrends == nil || *args.IncludeTrends
	includePerUser := args.IncludePerUser != nil && *args.IncludePerUser

	// Required and optional fetches run concurrently. Optional branches are
	// never scheduled when their flag is off.
	var (
		daily    *hajjefy.DailyResponse
		accounts *hajjefy.AccountsResponse
		worklogs *hajjefy.WorklogsResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		daily, err = t.client.DailyHours(gctx, window)
		return err
	})
	if includeProjects {
		g.Go(func() error {
			var err error
			accounts, err = t.client.AccountsBreakdown(gctx, window)
			return err
		})
	}
	if includeWorklogs || includePerUser {
		g.Go(func() error {
			var err error
			worklogs, err = t.client.DetailedWorklogs(gctx, window, worklogFetchLimit, 0)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.logger.Errorf("daily hours fetch failed: %v", err)
		return protocol.CallResult{}, toolError("get_daily_hours", err)
	}

	if !daily.Success || len(daily.Daily) == 0 {
		return protocol.TextResult("No daily hours data available for the specified period."), nil
	}

	var b strings.Builder
	renderDailyCore(&b, daily)
	if includeProjects && accounts != nil {
		renderProjectAllocation(&b, accounts.Accounts)
	}
	if includeTrends {
		renderWeeklyTrends(&b, daily.Daily)
	}
	if includeWorklogs && worklogs != nil {
		renderWorklogDetails(&b, worklogs.Worklogs)
	}
	if includePerUser && worklogs != nil {
		renderPerUserMatrix(&b, worklogs.Worklogs)
	}

	return protocol.TextResult(strings.TrimSpace(b.String())), nil
}

func renderDailyCore(b *strings.Builder, daily *hajjefy.DailyResponse) {
	summary := daily.Summary
	fmt.Fprintf(b, "# Comprehensive Daily Hours Analysis (%s to %s)\n\n", daily.DateRange.From, daily.DateRange.To)

	fmt.Fprintf(b, "## Summary Statistics\n")
	fmt.Fprintf(b, "- **Total Days**: %d\n", summary.TotalDays)
	fmt.Fprintf(b, "- **Total Hours**: %.1f hours\n", summary.TotalHours)
	fmt.Fprintf(b, "- **Total Billable Hours**: %.1f hours\n", summary.TotalBillableHours)
	fmt.Fprintf(b, "- **Total Entries**: %d worklogs\n", summary.TotalEntries.Int())
	fmt.Fprintf(b, "- **Average Daily Hours**: %.1f hours\n", summary.AvgDailyHours)
	fmt.Fprintf(b, "- **Average Utilization**: %.1f%%\n\n", summary.AvgUtilization)

	fmt.Fprintf(b, "## Day-by-Day Breakdown\n")
	for _, day := range daily.Daily {
		billablePct := "0.0"
		if day.TotalHours > 0 {
			billablePct = fmt.Sprintf("%.1f", day.BillableHours/day.TotalHours*100)
		}
		fmt.Fprintf(b, "- **%s**: %.1fh total | %.1fh billable (%s%%) | %d users | %d entries\n",
			analytics.DayString(day.Date), day.TotalHours, day.BillableHours, billablePct,
			day.UniqueUsers.Int(), day.EntryCount.Int())
	}

	if peak, low, ok := analytics.PeakLow(daily.Daily); ok {
		fmt.Fprintf(b, "\n## Peak Activity Analysis\n")
		fmt.Fprintf(b, "- **Highest Day**: %s - %.1fh (%d users)\n", analytics.DayString(peak.Date), peak.TotalHours, peak.UniqueUsers.Int())
		fmt.Fprintf(b, "- **Lowest Day**: %s - %.1fh (%d users)\n", analytics.DayString(low.Date), low.TotalHours, low.UniqueUsers.Int())
	}

	fmt.Fprintf(b, "\n## Billable vs Non-Billable Hours\n")
	nonBillable := summary.TotalHours - summary.TotalBillableHours
	fmt.Fprintf(b, "- **Total Billable**: %.1fh (%s%%)\n", summary.TotalBillableHours, pctOf(summary.TotalBillableHours, summary.TotalHours))
	fmt.Fprintf(b, "- **Total Non-Billable**: %.1fh (%s%%)\n", nonBillable, pctOf(nonBillable, summary.TotalHours))
}

func renderProjectAllocation(b *strings.Builder, accounts []hajjefy.AccountRecord) {
	var billable, internal []hajjefy.AccountRecord
	for _, acc := range accounts {
		if analytics.IsBillableCategory(acc.Category) {
			billable = append(billable, acc)
		} else if acc.Category == "Internal" || acc.Category == "Non-Billable" {
			internal = append(internal, acc)
		}
	}

	fmt.Fprintf(b, "\n\n## Project/Account Allocation Breakdown\n\n")
	fmt.Fprintf(b, "### Top Billable Projects\n")
	for i, acc := range capAccounts(billable, 10) {
		fmt.Fprintf(b, "%d. **%s**: %.1fh (%.1f%%) - %d entries\n", i+1, acc.Account, acc.Hours, acc.Percentage, acc.Entries.Int())
	}
	fmt.Fprintf(b, "\n### Top Internal Projects\n")
	for i, acc := range capAccounts(internal, 5) {
		fmt.Fprintf(b, "%d. **%s**: %.1fh (%.1f%%) - %d entries\n", i+1, acc.Account, acc.Hours, acc.Percentage, acc.Entries.Int())
	}
}

func renderWeeklyTrends(b *strings.Builder, daily []hajjefy.DailyRow) {
	pattern := analytics.WeeklyPattern(daily)
	if pattern == nil {
		return
	}

	fmt.Fprintf(b, "\n\n## Weekly Patterns & Trends\n\n")
	fmt.Fprintf(b, "### Average Hours by Day of Week\n")
	for _, wd := range pattern {
		fmt.Fprintf(b, "- **%s**: %.1fh avg (%.1fh billable) - %d days analyzed\n", wd.Day, wd.AvgHours, wd.AvgBillable, wd.Count)
	}
	fmt.Fprintf(b, "\n### Trend Insights\n")
	fmt.Fprintf(b, "- **Most Productive Day**: %s (%.1fh average)\n", pattern[0].Day, pattern[0].AvgHours)
	last := pattern[len(pattern)-1]
	fmt.Fprintf(b, "- **Least Productive Day**: %s (%.1fh average)\n", last.Day, last.AvgHours)
}

func renderWorklogDetails(b *strings.Builder, worklogs []hajjefy.Worklog) {
	recent := worklogs
	if len(recent) > 20 {
		recent = recent[:20]
	}
	fmt.Fprintf(b, "\n\n## Recent Worklog Timestamps & Details\n\n")
	for _, log := range recent {
		desc := log.Description
		if len(desc) > 60 {
			desc = desc[:60] + "..."
		}
		fmt.Fprintf(b, "- **%s** | %s | %s (%s) | %.1fh | %q\n",
			log.StartDate, log.AuthorDisplayName, log.AccountName, log.AccountCategory, log.TimeSpentHours, desc)
	}
	fmt.Fprintf(b, "\n*Showing %d most recent entries out of %d total*\n", len(recent), len(worklogs))
}

func renderPerUserMatrix(b *strings.Builder, worklogs []hajjefy.Worklog) {
	matrix := analytics.BuildUserMatrix(worklogs)

	summaryUsers := matrix.Ranked
	if len(summaryUsers) > analytics.TopUsersSummary {
		summaryUsers = summaryUsers[:analytics.TopUsersSummary]
	}

	fmt.Fprintf(b, "\n\n## Daily Hours Per User Breakdown\n\n")
	fmt.Fprintf(b, "### User Summary (Top %d Active Users)\n", len(summaryUsers))
	for i, user := range summaryUsers {
		fmt.Fprintf(b, "%d. **%s**: %.1fh total | %.1fh avg/day | %d active days\n",
			i+1, user.User, user.TotalHours, user.AvgDailyHours, user.ActiveDays)
	}

	detailUsers := summaryUsers
	if len(detailUsers) > analytics.TopUsersDetail {
		detailUsers = detailUsers[:analytics.TopUsersDetail]
	}
	fmt.Fprintf(b, "\n### Detailed Daily Hours by User\n")
	for _, user := range detailUsers {
		fmt.Fprintf(b, "**%s** (%.1fh total):\n", user.User, user.TotalHours)
		for _, date := range matrix.RecentDates(user.User, analytics.RecentUserDays) {
			day := matrix.Day(user.User, date)
			if day == nil {
				continue
			}
			billablePct := "0"
			if day.TotalHours > 0 {
				billablePct = fmt.Sprintf("%.0f", day.BillableHours/day.TotalHours*100)
			}
			fmt.Fprintf(b, "  - %s: %.1fh (%s%% billable, %d entries)\n", date, day.TotalHours, billablePct, day.Entries)
		}
	}
	fmt.Fprintf(b, "\n*Showing detailed breakdown for top %d users over last %d days*\n", len(detailUsers), analytics.RecentUserDays)
}

func capAccounts(accounts []hajjefy.AccountRecord, n int) []hajjefy.AccountRecord {
	if len(accounts) > n {
		return accounts[:n]
	}
	return accounts
}
