package analytics

import (
	"testing"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
)

func TestFilterTrendsInclusiveRange(t *testing.T) {
	trends := []hajjefy.DailyTrend{
		{Date: "2025-05-31"},
		{Date: "2025-06-01"},
		{Date: "2025-06-15T00:00:00Z"},
		{Date: "2025-06-30"},
		{Date: "2025-07-01"},
	}
	got := FilterTrends(trends, "2025-06-01", "2025-06-30")
	if len(got) != 3 {
		t.Fatalf("expected 3 rows in range, got %d: %+v", len(got), got)
	}
	if got[0].Date != "2025-06-01" || got[2].Date != "2025-06-30" {
		t.Fatalf("range boundaries must be inclusive: %+v", got)
	}
}

func TestSummarizeTrends(t *testing.T) {
	trends := []hajjefy.DailyTrend{
		{Date: "2025-06-01", TotalHours: 8, BillableHours: 6, WorklogCount: 4},
		{Date: "2025-06-02", TotalHours: 0, BillableHours: 0, WorklogCount: 0},
		{Date: "2025-06-03", TotalHours: 4, BillableHours: 4, WorklogCount: 2},
	}
	s := SummarizeTrends(trends)
	if s.TotalHours != 12 || s.BillableHours != 10 || s.NonBillableHours != 2 {
		t.Fatalf("hours: %+v", s)
	}
	if s.TotalEntries != 6 {
		t.Fatalf("entries = %d, want 6", s.TotalEntries)
	}
	if s.ActiveDays != 2 {
		t.Fatalf("active days = %d, want 2 (zero-hour days excluded)", s.ActiveDays)
	}
	if s.AvgHoursPerDay != 6 {
		t.Fatalf("avg = %v, want 6 (over active days only)", s.AvgHoursPerDay)
	}

	if empty := SummarizeTrends(nil); empty.AvgHoursPerDay != 0 {
		t.Fatalf("empty summary must not divide by zero: %+v", empty)
	}
}

func TestAllocateByCustomer(t *testing.T) {
	shares := []hajjefy.UserAccountShare{
		{Account: "RELATECAREBILL", Hours: 30, BillableHours: 30, Entries: 10},
		{Account: "RELATECARECSM", Hours: 10, BillableHours: 0, Entries: 5},
		{Account: "CENTENEBILL", Hours: 20, BillableHours: 20, Entries: 8},
	}

	got := AllocateByCustomer(shares)
	if len(got) != 2 {
		t.Fatalf("expected 2 customers, got %d: %+v", len(got), got)
	}

	top := got[0]
	if top.Customer != "RelateCare" || top.Hours != 40 || top.BillableHours != 30 || top.Entries != 15 {
		t.Fatalf("top allocation: %+v", top)
	}
	if top.Percentage != 40.0/60*100 {
		t.Fatalf("top percentage = %v", top.Percentage)
	}
	if got[1].Customer != "Centene" || got[1].Hours != 20 {
		t.Fatalf("second allocation: %+v", got[1])
	}

	if got := AllocateByCustomer(nil); len(got) != 0 {
		t.Fatalf("no shares must allocate nothing, got %+v", got)
	}
}
