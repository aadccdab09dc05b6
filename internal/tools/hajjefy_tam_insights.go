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

// tamInsightsTool ranks technical-account-management activity: cross-charge
// hours joined against total workload, tiered by expertise.
type tamInsightsTool struct {
	base
}

// TAMInsights constructs the tool.
func TAMInsights(client *hajjefy.Client, logger *logrus.Entry) *tamInsightsTool {
	return &tamInsightsTool{base{client: client, logger: logger}}
}

func (t *tamInsightsTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_tam_insights",
		Description: "Get TAM (Technical Account Management) expertise tiers and resource recommendations",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"days": daysSchema(90),
				"min_hours": {
					Type:        "number",
					Description: "Minimum TAM hours for a user to be included (default: 5)",
					Minimum:     protocol.Bound(0),
				},
				"customer": {Type: "string", Description: "Narrow TAM analysis to one customer (optional)"},
			},
			AdditionalProperties: false,
		},
	}
}

type tamInsightsArgs struct {
	Days     int      `json:"days"`
	MinHours *float64 `json:"min_hours"`
	Customer string   `json:"customer"`
}

func (t *tamInsightsTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args tamInsightsArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, invalidArgs()
		}
	}
	window, errResp := resolveWindow(windowArgs{Days: args.Days}, 90)
	if errResp != nil {
		return protocol.CallResult{}, errResp
	}
	minHours := float64(analytics.DefaultMinTAMHours)
	if args.MinHours != nil {
		if *args.MinHours < 0 {
			return protocol.CallResult{}, invalidParams("min_hours must not be negative")
		}
		minHours = *args.MinHours
	}

	var (
		tam      *hajjefy.TAMAnalysis
		rankings *hajjefy.WorkloadRankings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tam, err = t.client.TAMAnalysis(gctx, window, args.Customer)
		return err
	})
	g.Go(func() error {
		var err error
		rankings, err = t.client.WorkloadRankings(gctx, window)
		return err
	})
	if err := g.Wait(); err != nil {
		t.logger.Errorf("tam insights fetch failed: %v", err)
		return protocol.CallResult{}, toolError("get_tam_insights", err)
	}

	records := analytics.TAMTiers(tam.Users, rankings.Rankings, minHours)
	return protocol.TextResult(renderTAMInsights(window.Days, minHours, args.Customer, tam.Summary, records)), nil
}

func renderTAMInsights(days int, minHours float64, customerFilter string, summary hajjefy.TAMSummary, records []analytics.TAMRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# TAM Insights (%d days)\n\n", days)
	if customerFilter != "" {
		fmt.Fprintf(&b, "*Filtered to customer: %s*\n\n", customerFilter)
	}

	fmt.Fprintf(&b, "## Summary\n")
	fmt.Fprintf(&b, "- **Total TAM Hours**: %.1f hours\n", summary.TotalTAMHours)
	fmt.Fprintf(&b, "- **Users with TAM Activity**: %d\n", summary.TotalUsers.Int())
	fmt.Fprintf(&b, "- **Qualifying Users** (>= %.0fh): %d\n\n", minHours, len(records))

	if len(records) == 0 {
		fmt.Fprintf(&b, "No users meet the %.0f-hour minimum for TAM tiering in this period.\n", minHours)
		return strings.TrimSpace(b.String())
	}

	expert, experienced, developing := analytics.TierGroups(records)
	fmt.Fprintf(&b, "## Expertise Tiers\n")
	renderTierSection(&b, "Expert (40+ TAM hours)", expert)
	renderTierSection(&b, "Experienced (20-40 TAM hours)", experienced)
	renderTierSection(&b, fmt.Sprintf("Developing (%.0f-20 TAM hours)", minHours), developing)

	fmt.Fprintf(&b, "\n## Best TAM Resources\n")
	limit := len(records)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		r := records[i]
		fmt.Fprintf(&b, "%d. **%s**: %.1fh TAM (%.1f%% of %.1fh total) - *%s*\n",
			i+1, r.UserName, r.TAMHours, r.TAMPercentage, r.TotalHours, r.Recommendation)
	}

	return strings.TrimSpace(b.String())
}

func renderTierSection(b *strings.Builder, title string, records []analytics.TAMRecord) {
	fmt.Fprintf(b, "\n### %s\n", title)
	if len(records) == 0 {
		b.WriteString("- (none)\n")
		return
	}
	for _, r := range records {
		fmt.Fprintf(b, "- **%s**: %.1fh TAM | %.1f%% of workload | %d worklogs\n",
			r.UserName, r.TAMHours, r.TAMPercentage, r.WorklogCount)
	}
}
