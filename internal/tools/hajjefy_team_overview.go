package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// teamOverviewTool reports team performance from the dashboard overview,
// enriched with workload rankings when that endpoint responds.
type teamOverviewTool struct {
	base
}

// TeamOverview constructs the tool.
func TeamOverview(client *hajjefy.Client, logger *logrus.Entry) *teamOverviewTool {
	return &teamOverviewTool{base{client: client, logger: logger}}
}

func (t *teamOverviewTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_team_overview",
		Description: "Get team performance overview and rankings",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"days": daysSchema(30),
			},
			AdditionalProperties: false,
		},
	}
}

func (t *teamOverviewTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args windowArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, invalidArgs()
		}
	}
	window, errResp := resolveWindow(windowArgs{Days: args.Days}, 30)
	if errResp != nil {
		return protocol.CallResult{}, errResp
	}

	var (
		overview *hajjefy.DashboardOverview
		workload *hajjefy.TeamWorkload
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		overview, err = t.client.DashboardOverview(gctx, window)
		return err
	})
	g.Go(func() error {
		// Rankings are an enrichment; their failure only drops a section.
		wl, err := t.client.TeamWorkload(gctx, window)
		if err != nil {
			t.logger.Warnf("team workload fetch failed: %v", err)
			return nil
		}
		workload = wl
		return nil
	})
	if err := g.Wait(); err != nil {
		return protocol.CallResult{}, toolError("get_team_overview", err)
	}

	return protocol.TextResult(renderTeamOverview(window.Days, overview, workload)), nil
}

func renderTeamOverview(days int, overview *hajjefy.DashboardOverview, workload *hajjefy.TeamWorkload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Team Performance Overview (%d days)\n\n", days)

	fmt.Fprintf(&b, "## Team Productivity\n")
	fmt.Fprintf(&b, "- **Total Team Hours**: %.1f hours\n", overview.Totals.Hours)
	fmt.Fprintf(&b, "- **Daily Average**: %.1f hours/day\n", overview.Totals.AvgHoursPerDay)
	fmt.Fprintf(&b, "- **Active Contributors**: %d users\n", overview.Database.UniqueAuthors.Int())
	fmt.Fprintf(&b, "- **Total Entries**: %d worklogs\n\n", overview.Totals.Entries.Int())

	fmt.Fprintf(&b, "## Project Distribution\n")
	for i, acc := range overview.TopAccounts {
		fmt.Fprintf(&b, "%d. **%s**: %.1fh (%.1f%%)\n", i+1, acc.Account, acc.TotalHours, acc.Percentage)
	}

	fmt.Fprintf(&b, "\n## Activity Trend (Last 7 Days)\n")
	for _, day := range overview.RecentDays {
		fmt.Fprintf(&b, "- **%s**: %.1fh (%d entries)\n", day.Date, day.TotalHours, day.EntryCount.Int())
	}

	if workload != nil && len(workload.Rankings) > 0 {
		fmt.Fprintf(&b, "\n## Workload Rankings\n")
		limit := len(workload.Rankings)
		if limit > 10 {
			limit = 10
		}
		for i := 0; i < limit; i++ {
			r := workload.Rankings[i]
			fmt.Fprintf(&b, "%d. **%s**: %.1fh total (%.1fh billable) over %d active days\n",
				i+1, r.UserName, r.TotalHours, r.BillableHours, r.ActiveDays.Int())
		}
	}

	fmt.Fprintf(&b, "\n## Key Insights\n")
	if len(overview.TopAccounts) > 0 {
		top := overview.TopAccounts[0]
		fmt.Fprintf(&b, "- Most active project: **%s** (%.1f%% of time)\n", top.Account, top.Percentage)
	}
	if overview.Totals.ActiveDays > 0 {
		fmt.Fprintf(&b, "- Average entries per day: %.1f\n", float64(overview.Totals.Entries.Int())/float64(overview.Totals.ActiveDays))
	}
	fmt.Fprintf(&b, "- Team spans %d different accounts/projects\n", overview.Database.UniqueAccounts.Int())

	return strings.TrimSpace(b.String())
}
