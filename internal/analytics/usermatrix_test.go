package analytics

import (
	"reflect"
	"testing"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
)

func TestBuildUserMatrixFoldsAndRanks(t *testing.T) {
	worklogs := []hajjefy.Worklog{
		{AuthorDisplayName: "Alice", StartDate: "2025-06-02", TimeSpentHours: 4, BillableHours: 3},
		{AuthorDisplayName: "Alice", StartDate: "2025-06-02T10:00:00Z", TimeSpentHours: 2, BillableHours: 2},
		{AuthorDisplayName: "Alice", StartDate: "2025-06-03", TimeSpentHours: 6, BillableHours: 0},
		{AuthorDisplayName: "Bob", StartDate: "2025-06-02", TimeSpentHours: 8, BillableHours: 8},
		{AuthorDisplayName: "", StartDate: "2025-06-02", TimeSpentHours: 99},
	}

	m := BuildUserMatrix(worklogs)

	if len(m.Ranked) != 2 {
		t.Fatalf("expected 2 users, got %d", len(m.Ranked))
	}
	if m.Ranked[0].User != "Alice" || m.Ranked[0].TotalHours != 12 || m.Ranked[0].ActiveDays != 2 {
		t.Fatalf("unexpected top user: %+v", m.Ranked[0])
	}
	if m.Ranked[0].AvgDailyHours != 6 {
		t.Fatalf("avg daily = %v, want 6", m.Ranked[0].AvgDailyHours)
	}
	if m.Ranked[1].User != "Bob" || m.Ranked[1].TotalHours != 8 {
		t.Fatalf("unexpected second user: %+v", m.Ranked[1])
	}

	day := m.Day("Alice", "2025-06-02")
	if day == nil || day.TotalHours != 6 || day.BillableHours != 5 || day.Entries != 2 {
		t.Fatalf("unexpected Alice day: %+v", day)
	}
	if m.Day("Alice", "2025-06-04") != nil {
		t.Fatal("expected nil for a day without entries")
	}
	if m.Day("Carol", "2025-06-02") != nil {
		t.Fatal("expected nil for an unknown user")
	}
}

func TestBuildUserMatrixRankTiesByName(t *testing.T) {
	worklogs := []hajjefy.Worklog{
		{AuthorDisplayName: "Zed", StartDate: "2025-06-02", TimeSpentHours: 5},
		{AuthorDisplayName: "Amy", StartDate: "2025-06-02", TimeSpentHours: 5},
	}
	m := BuildUserMatrix(worklogs)
	if m.Ranked[0].User != "Amy" || m.Ranked[1].User != "Zed" {
		t.Fatalf("equal hours must order by name: %+v", m.Ranked)
	}
}

func TestRecentDates(t *testing.T) {
	worklogs := []hajjefy.Worklog{
		{AuthorDisplayName: "Alice", StartDate: "2025-06-05", TimeSpentHours: 1},
		{AuthorDisplayName: "Alice", StartDate: "2025-06-01", TimeSpentHours: 1},
		{AuthorDisplayName: "Alice", StartDate: "2025-06-03", TimeSpentHours: 1},
	}
	m := BuildUserMatrix(worklogs)

	got := m.RecentDates("Alice", 2)
	want := []string{"2025-06-03", "2025-06-05"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("RecentDates = %v, want %v", got, want)
	}

	if got := m.RecentDates("Alice", 10); len(got) != 3 {
		t.Fatalf("expected all 3 dates, got %v", got)
	}
	if got := m.RecentDates("Nobody", 5); got != nil {
		t.Fatalf("unknown user must return nil, got %v", got)
	}
}
