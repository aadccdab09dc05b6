package analytics

import (
	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
)

// CustomerRollup aggregates every account record resolved to one customer.
type CustomerRollup struct {
	Name            string
	Accounts        []hajjefy.AccountRecord
	TotalHours      float64
	BillableHours   float64
	TotalEntries    int
	TotalPercentage float64
	// Primary is the matched account with the most hours, used for ranking.
	Primary hajjefy.AccountRecord
}

// IsBillableCategory reports whether a category's hours count as billable.
// Centene is a billable cross-charge category despite the separate label.
func IsBillableCategory(category string) bool {
	return category == "Billable" || category == "Centene"
}

// AggregateCustomer sums hours, entries and percentage across a customer's
// matched accounts. Billable hours only accumulate from billable categories;
// all hours count toward the total. Returns nil when nothing matched.
func AggregateCustomer(name string, matched []hajjefy.AccountRecord) *CustomerRollup {
	if len(matched) == 0 {
		return nil
	}

	roll := &CustomerRollup{Name: name, Accounts: matched, Primary: matched[0]}
	for _, acc := range matched {
		roll.TotalHours += acc.Hours
		roll.TotalEntries += acc.Entries.Int()
		roll.TotalPercentage += acc.Percentage
		if IsBillableCategory(acc.Category) {
			roll.BillableHours += acc.Hours
		}
		if acc.Hours > roll.Primary.Hours {
			roll.Primary = acc
		}
	}
	return roll
}
