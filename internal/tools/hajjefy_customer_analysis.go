package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hajjefy/hajjefy-mcp-server/internal/analytics"
	"github.com/hajjefy/hajjefy-mcp-server/internal/customer"
	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// customerAnalysisTool aggregates hours across every account code belonging
// to one customer, with an optional Salesforce enrichment.
type customerAnalysisTool struct {
	base
}

// CustomerAnalysis constructs the tool.
func CustomerAnalysis(client *hajjefy.Client, logger *logrus.Entry) *customerAnalysisTool {
	return &customerAnalysisTool{base{client: client, logger: logger}}
}

func (t *customerAnalysisTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_customer_analysis",
		Description: "Get time allocation analysis for a specific customer across all their account codes",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"customer":  {Type: "string", Description: "Customer name or account code to analyze"},
				"days":      daysSchema(90),
				"from_date": dateSchema("Start date (YYYY-MM-DD format)"),
				"to_date":   dateSchema("End date (YYYY-MM-DD format)"),
			},
			Required:             []string{"customer"},
			AdditionalProperties: false,
		},
	}
}

type customerAnalysisArgs struct {
	Customer string `json:"customer"`
	Days     int    `json:"days"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

func (t *customerAnalysisTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args customerAnalysisArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, invalidArgs()
		}
	}
	if strings.TrimSpace(args.Customer) == "" {
		return protocol.CallResult{}, invalidParams("customer is required")
	}
	window, errResp := resolveWindow(windowArgs{Days: args.Days, FromDate: args.FromDate, ToDate: args.ToDate}, 90)
	if errResp != nil {
		return protocol.CallResult{}, errResp
	}

	var (
		accounts   *hajjefy.AccountsResponse
		salesforce *hajjefy.SalesforceAccount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = t.client.AccountsBreakdown(gctx, window)
		return err
	})
	g.Go(func() error {
		// Absent integration already comes back as (nil, nil).
		sf, err := t.client.SalesforceAccount(gctx, args.Customer)
		if err != nil {
			t.logger.Warnf("salesforce lookup failed for %q: %v", args.Customer, err)
			return nil
		}
		salesforce = sf
		return nil
	})
	if err := g.Wait(); err != nil {
		return protocol.CallResult{}, toolError("get_customer_analysis", err)
	}

	matched := customer.MatchAll(accounts.Accounts, args.Customer)
	if len(matched) == 0 {
		return protocol.TextResult(renderCustomerNotFound(args.Customer, window, accounts.Accounts)), nil
	}

	rollup := analytics.AggregateCustomer(args.Customer, matched)
	return protocol.TextResult(renderCustomerAnalysis(window, rollup, salesforce)), nil
}

func renderCustomerAnalysis(window hajjefy.Window, rollup *analytics.CustomerRollup, salesforce *hajjefy.SalesforceAccount) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Customer Analysis: %s (%s)\n\n", rollup.Name, windowLabel(window))

	fmt.Fprintf(&b, "## Time Allocation Summary\n")
	fmt.Fprintf(&b, "- **Total Hours**: %.1f hours across %d account(s)\n", rollup.TotalHours, len(rollup.Accounts))
	fmt.Fprintf(&b, "- **Billable Hours**: %.1f hours (%s%%)\n", rollup.BillableHours, pctOf(rollup.BillableHours, rollup.TotalHours))
	fmt.Fprintf(&b, "- **Total Entries**: %d worklogs\n", rollup.TotalEntries)
	fmt.Fprintf(&b, "- **Share of Period**: %.1f%% of all tracked time\n", rollup.TotalPercentage)
	fmt.Fprintf(&b, "- **Primary Account**: %s (%.1fh)\n\n", rollup.Primary.Account, rollup.Primary.Hours)

	fmt.Fprintf(&b, "## Matched Accounts\n")
	for i, acc := range rollup.Accounts {
		billableTag := ""
		if analytics.IsBillableCategory(acc.Category) {
			billableTag = " [billable]"
		}
		fmt.Fprintf(&b, "%d. **%s** (%s)%s: %.1fh, %d entries, %.1f%%\n",
			i+1, acc.Account, acc.Category, billableTag, acc.Hours, acc.Entries.Int(), acc.Percentage)
	}

	if salesforce != nil && salesforce.Success {
		info := salesforce.Account
		fmt.Fprintf(&b, "\n## Salesforce Account\n")
		fmt.Fprintf(&b, "- **Name**: %s\n", info.Name)
		fmt.Fprintf(&b, "- **Owner**: %s\n", orNA(info.Owner))
		fmt.Fprintf(&b, "- **Type**: %s\n", orNA(info.Type))
		fmt.Fprintf(&b, "- **Industry**: %s\n", orNA(info.Industry))
		fmt.Fprintf(&b, "- **Last Activity**: %s\n", orNA(info.LastActivityDate))
	}

	return strings.TrimSpace(b.String())
}

func renderCustomerNotFound(input string, window hajjefy.Window, accounts []hajjefy.AccountRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Customer Analysis: %s (%s)\n\n", input, windowLabel(window))
	fmt.Fprintf(&b, "**No accounts matched \"%s\" in this period.**\n", input)

	if similar := customer.Similar(accounts, input); len(similar) > 0 {
		b.WriteString("\nDid you mean:\n")
		limit := len(similar)
		if limit > 5 {
			limit = 5
		}
		for _, name := range similar[:limit] {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	} else {
		b.WriteString("\nNo similar customers found. Try a shorter fragment of the customer name or an account code.\n")
	}
	return strings.TrimSpace(b.String())
}
