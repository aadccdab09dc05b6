package analytics

import (
	"testing"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
)

func TestWeeklyPatternRequiresFullWeek(t *testing.T) {
	daily := make([]hajjefy.DailyRow, 6)
	for i := range daily {
		daily[i] = hajjefy.DailyRow{Date: "2025-06-02", TotalHours: 8}
	}
	if got := WeeklyPattern(daily); got != nil {
		t.Fatalf("expected nil below %d rows, got %v", MinDaysForTrends, got)
	}
}

func TestWeeklyPatternAveragesByWeekday(t *testing.T) {
	// 2025-06-02 and 2025-06-09 are Mondays.
	daily := []hajjefy.DailyRow{
		{Date: "2025-06-02", TotalHours: 8, BillableHours: 6},
		{Date: "2025-06-03", TotalHours: 5, BillableHours: 4},
		{Date: "2025-06-04", TotalHours: 4, BillableHours: 3},
		{Date: "2025-06-05", TotalHours: 3, BillableHours: 2},
		{Date: "2025-06-06", TotalHours: 2, BillableHours: 1},
		{Date: "2025-06-07", TotalHours: 1, BillableHours: 0},
		{Date: "2025-06-08", TotalHours: 1, BillableHours: 0},
		{Date: "2025-06-09", TotalHours: 6, BillableHours: 4},
	}

	got := WeeklyPattern(daily)
	if len(got) != 7 {
		t.Fatalf("expected 7 weekdays, got %d", len(got))
	}
	top := got[0]
	if top.Day != "Monday" {
		t.Fatalf("expected Monday first, got %s", top.Day)
	}
	if top.Count != 2 || top.AvgHours != 7 || top.AvgBillable != 5 {
		t.Fatalf("unexpected Monday average: %+v", top)
	}
	for i := 1; i < len(got); i++ {
		if got[i].AvgHours > got[i-1].AvgHours {
			t.Fatalf("weekdays not sorted descending at %d: %+v", i, got)
		}
	}
}

func TestWeeklyPatternAcceptsTimestampDates(t *testing.T) {
	daily := make([]hajjefy.DailyRow, 7)
	for i := range daily {
		daily[i] = hajjefy.DailyRow{Date: "2025-06-02T00:00:00.000Z", TotalHours: 8}
	}
	got := WeeklyPattern(daily)
	if len(got) != 1 || got[0].Day != "Monday" {
		t.Fatalf("timestamp dates not folded by weekday: %+v", got)
	}
}

func TestPeakLow(t *testing.T) {
	if _, _, ok := PeakLow(nil); ok {
		t.Fatal("empty input must report ok=false")
	}

	daily := []hajjefy.DailyRow{
		{Date: "2025-06-02", TotalHours: 5},
		{Date: "2025-06-03", TotalHours: 9},
		{Date: "2025-06-04", TotalHours: 9},
		{Date: "2025-06-05", TotalHours: 2},
	}
	peak, low, ok := PeakLow(daily)
	if !ok {
		t.Fatal("expected ok")
	}
	// Ties keep payload order.
	if peak.Date != "2025-06-03" {
		t.Fatalf("peak = %s, want 2025-06-03", peak.Date)
	}
	if low.Date != "2025-06-05" {
		t.Fatalf("low = %s, want 2025-06-05", low.Date)
	}
}

func TestDayString(t *testing.T) {
	if got := DayString("2025-06-02T15:04:05Z"); got != "2025-06-02" {
		t.Fatalf("DayString timestamp = %q", got)
	}
	if got := DayString("not-a-date"); got != "not-a-date" {
		t.Fatalf("DayString fallback = %q", got)
	}
}
