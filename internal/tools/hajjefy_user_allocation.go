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
)

// userAllocationTool shows how one user's time splits across customers.
type userAllocationTool struct {
	base
}

// UserCustomerAllocation constructs the tool.
func UserCustomerAllocation(client *hajjefy.Client, logger *logrus.Entry) *userAllocationTool {
	return &userAllocationTool{base{client: client, logger: logger}}
}

func (t *userAllocationTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_user_customer_allocation",
		Description: "Get a user's time allocation breakdown across customers",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"username":  {Type: "string", Description: "Username to analyze"},
				"days":      daysSchema(30),
				"from_date": dateSchema("Start date (YYYY-MM-DD format)"),
				"to_date":   dateSchema("End date (YYYY-MM-DD format)"),
			},
			Required:             []string{"username"},
			AdditionalProperties: false,
		},
	}
}

type userAllocationArgs struct {
	Username string `json:"username"`
	Days     int    `json:"days"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

func (t *userAllocationTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args userAllocationArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, invalidArgs()
		}
	}
	if strings.TrimSpace(args.Username) == "" {
		return protocol.CallResult{}, invalidParams("username is required")
	}
	window, errResp := resolveWindow(windowArgs{Days: args.Days, FromDate: args.FromDate, ToDate: args.ToDate}, 30)
	if errResp != nil {
		return protocol.CallResult{}, errResp
	}

	profile, err := t.client.UserProfile(ctx, args.Username, window)
	if err != nil {
		t.logger.Warnf("user profile fetch failed for %q: %v", args.Username, err)
		return protocol.TextResult(renderUserFetchError(args.Username, window.Days, err)), nil
	}
	if !profile.Success || len(profile.Profile.AccountBreakdown) == 0 {
		return protocol.TextResult(renderAllocationEmpty(args.Username, window)), nil
	}

	allocation := analytics.AllocateByCustomer(profile.Profile.AccountBreakdown)
	return protocol.TextResult(renderAllocation(args.Username, window, allocation)), nil
}

func renderAllocation(username string, window hajjefy.Window, allocation []analytics.AllocationEntry) string {
	var total, billable float64
	for _, e := range allocation {
		total += e.Hours
		billable += e.BillableHours
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Customer Allocation: %s (%s)\n\n", username, windowLabel(window))

	fmt.Fprintf(&b, "## Summary\n")
	fmt.Fprintf(&b, "- **Total Hours**: %.1f hours\n", total)
	fmt.Fprintf(&b, "- **Billable Hours**: %.1f hours (%s%%)\n", billable, pctOf(billable, total))
	fmt.Fprintf(&b, "- **Customers Served**: %d\n\n", len(allocation))

	fmt.Fprintf(&b, "## Allocation by Customer\n")
	for i, e := range allocation {
		fmt.Fprintf(&b, "%d. **%s**: %.1fh (%.1f%% of time) | %.1fh billable | %d entries\n",
			i+1, e.Customer, e.Hours, e.Percentage, e.BillableHours, e.Entries)
	}

	if len(allocation) > 0 {
		top := allocation[0]
		fmt.Fprintf(&b, "\n## Key Insight\n")
		fmt.Fprintf(&b, "- Primary focus: **%s** at %.1f%% of logged time\n", top.Customer, top.Percentage)
	}

	return strings.TrimSpace(b.String())
}

func renderAllocationEmpty(username string, window hajjefy.Window) string {
	return fmt.Sprintf(`# Customer Allocation: %s (%s)

**No account breakdown available for this user.**

This could mean the user logged no time in the period, or the user name
doesn't match the time tracking system. Try the exact display name.`, username, windowLabel(window))
}
