// Package analytics derives report metrics from raw Hajjefy payloads. Every
// function here is pure: payloads in, derived structures out, no I/O.
package analytics

import (
	"sort"
	"time"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
)

// MinDaysForTrends is the policy threshold below which weekly-pattern
// analysis is suppressed: fewer than a full week of records says nothing
// about weekday habits.
const MinDaysForTrends = 7

// WeekdayAverage is one weekday's averaged hours across the period.
type WeekdayAverage struct {
	Day         string
	AvgHours    float64
	AvgBillable float64
	Count       int
}

// WeeklyPattern groups daily rows by weekday and ranks weekdays descending
// by average total hours. Returns nil when fewer than MinDaysForTrends rows
// are supplied.
func WeeklyPattern(daily []hajjefy.DailyRow) []WeekdayAverage {
	if len(daily) < MinDaysForTrends {
		return nil
	}

	type acc struct {
		total    float64
		billable float64
		count    int
	}
	byDay := make(map[string]*acc)
	for _, row := range daily {
		t, ok := parseDay(row.Date)
		if !ok {
			continue
		}
		name := t.Weekday().String()
		a := byDay[name]
		if a == nil {
			a = &acc{}
			byDay[name] = a
		}
		a.total += row.TotalHours
		a.billable += row.BillableHours
		a.count++
	}

	out := make([]WeekdayAverage, 0, len(byDay))
	for name, a := range byDay {
		out = append(out, WeekdayAverage{
			Day:         name,
			AvgHours:    a.total / float64(a.count),
			AvgBillable: a.billable / float64(a.count),
			Count:       a.count,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AvgHours != out[j].AvgHours {
			return out[i].AvgHours > out[j].AvgHours
		}
		return out[i].Day < out[j].Day
	})
	return out
}

// PeakLow returns the highest and lowest days by total hours. Ties keep the
// original payload order. ok is false for an empty slice.
func PeakLow(daily []hajjefy.DailyRow) (peak, low hajjefy.DailyRow, ok bool) {
	if len(daily) == 0 {
		return hajjefy.DailyRow{}, hajjefy.DailyRow{}, false
	}
	sorted := make([]hajjefy.DailyRow, len(daily))
	copy(sorted, daily)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalHours > sorted[j].TotalHours
	})
	return sorted[0], sorted[len(sorted)-1], true
}

// parseDay accepts the date shapes the API emits: bare ISO dates and full
// RFC 3339 timestamps.
func parseDay(s string) (time.Time, bool) {
	if len(s) >= 10 {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return t, true
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// DayString truncates an API date to its calendar day, falling back to the
// raw value when it does not parse.
func DayString(s string) string {
	if t, ok := parseDay(s); ok {
		return t.Format("2006-01-02")
	}
	return s
}
