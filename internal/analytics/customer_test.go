package analytics

import (
	"testing"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
)

func TestIsBillableCategory(t *testing.T) {
	if !IsBillableCategory("Billable") || !IsBillableCategory("Centene") {
		t.Fatal("Billable and Centene both count as billable")
	}
	for _, cat := range []string{"Internal", "Non-Billable", "Uncategorized", ""} {
		if IsBillableCategory(cat) {
			t.Fatalf("%q must not count as billable", cat)
		}
	}
}

func TestAggregateCustomer(t *testing.T) {
	if got := AggregateCustomer("Nobody", nil); got != nil {
		t.Fatalf("empty match must aggregate to nil, got %+v", got)
	}

	matched := []hajjefy.AccountRecord{
		{Account: "RELATECAREBILL", Category: "Billable", Hours: 30, Entries: 12, Percentage: 15},
		{Account: "RELATECARECSM", Category: "Internal", Hours: 10, Entries: 4, Percentage: 5},
		{Account: "RELATECARECENTENE", Category: "Centene", Hours: 5, Entries: 2, Percentage: 2.5},
	}

	roll := AggregateCustomer("RelateCare", matched)
	if roll == nil {
		t.Fatal("expected a rollup")
	}
	if roll.TotalHours != 45 {
		t.Fatalf("total hours = %v, want 45", roll.TotalHours)
	}
	if roll.BillableHours != 35 {
		t.Fatalf("billable hours = %v, want 35 (Billable + Centene only)", roll.BillableHours)
	}
	if roll.TotalEntries != 18 {
		t.Fatalf("entries = %d, want 18", roll.TotalEntries)
	}
	if roll.TotalPercentage != 22.5 {
		t.Fatalf("percentage = %v, want 22.5", roll.TotalPercentage)
	}
	if roll.Primary.Account != "RELATECAREBILL" {
		t.Fatalf("primary = %s, want the account with most hours", roll.Primary.Account)
	}
	if roll.BillableHours > roll.TotalHours {
		t.Fatal("billable hours can never exceed total hours")
	}
}
