package analytics

import (
	"sort"

	"github.com/hajjefy/hajjefy-mcp-server/internal/customer"
	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
)

// TrendSummary totals a user's daily billable trend rows.
type TrendSummary struct {
	TotalHours       float64
	BillableHours    float64
	NonBillableHours float64
	TotalEntries     int
	ActiveDays       int
	AvgHoursPerDay   float64
}

// FilterTrends keeps trend rows whose calendar day falls inside [from, to]
// (ISO dates, inclusive).
func FilterTrends(trends []hajjefy.DailyTrend, from, to string) []hajjefy.DailyTrend {
	var out []hajjefy.DailyTrend
	for _, day := range trends {
		d := DayString(day.Date)
		if d >= from && d <= to {
			out = append(out, day)
		}
	}
	return out
}

// SummarizeTrends derives period totals from trend rows. Active days are
// days with nonzero hours; the daily average is over active days only.
func SummarizeTrends(trends []hajjefy.DailyTrend) TrendSummary {
	var s TrendSummary
	for _, day := range trends {
		s.TotalHours += day.TotalHours
		s.BillableHours += day.BillableHours
		s.TotalEntries += day.WorklogCount.Int()
		if day.TotalHours > 0 {
			s.ActiveDays++
		}
	}
	s.NonBillableHours = s.TotalHours - s.BillableHours
	if s.ActiveDays > 0 {
		s.AvgHoursPerDay = s.TotalHours / float64(s.ActiveDays)
	}
	return s
}

// AllocationEntry is one customer's share of a user's logged time.
type AllocationEntry struct {
	Customer      string
	Hours         float64
	BillableHours float64
	Entries       int
	Percentage    float64
}

// AllocateByCustomer resolves a user's account shares to customer names,
// aggregates per customer and ranks descending by hours. Percentage is of
// the user's total across all shares.
func AllocateByCustomer(shares []hajjefy.UserAccountShare) []AllocationEntry {
	byName := make(map[string]*AllocationEntry)
	var total float64
	for _, share := range shares {
		name := customer.ResolveName(share.Account)
		e := byName[name]
		if e == nil {
			e = &AllocationEntry{Customer: name}
			byName[name] = e
		}
		e.Hours += share.Hours
		e.BillableHours += share.BillableHours
		e.Entries += share.Entries.Int()
		total += share.Hours
	}

	out := make([]AllocationEntry, 0, len(byName))
	for _, e := range byName {
		if total > 0 {
			e.Percentage = e.Hours / total * 100
		}
		out = append(out, *e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Hours != out[j].Hours {
			return out[i].Hours > out[j].Hours
		}
		return out[i].Customer < out[j].Customer
	})
	return out
}
