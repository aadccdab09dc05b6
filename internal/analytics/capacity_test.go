package analytics

import (
	"testing"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
)

func TestCategorize(t *testing.T) {
	cases := []struct {
		utilization float64
		want        CapacityCategory
	}{
		{120, OverCapacity},
		{100.1, OverCapacity},
		{100, Optimal},
		{95, Optimal},
		{90, Optimal},
		{89.9, UnderUtilized},
		{0, UnderUtilized},
	}
	for _, tc := range cases {
		if got := Categorize(tc.utilization); got != tc.want {
			t.Fatalf("Categorize(%v) = %s, want %s", tc.utilization, got, tc.want)
		}
	}
}

func TestFilterUsersByName(t *testing.T) {
	users := []hajjefy.CapacityUser{
		{UserName: "John Smith"},
		{UserName: "Johanna Lee"},
		{UserName: "Alice Wong"},
	}

	got := FilterUsersByName(users, "john")
	if len(got) != 1 || got[0].UserName != "John Smith" {
		t.Fatalf("filter john: %+v", got)
	}

	if got := FilterUsersByName(users, "joh"); len(got) != 2 {
		t.Fatalf("filter joh: %+v", got)
	}
	if got := FilterUsersByName(users, "  "); len(got) != 3 {
		t.Fatalf("blank filter must keep everyone, got %+v", got)
	}
	if got := FilterUsersByName(users, "zzz"); got != nil {
		t.Fatalf("no match must be empty, got %+v", got)
	}
}

func TestSortByUtilization(t *testing.T) {
	users := []hajjefy.CapacityUser{
		{UserName: "A", AvgUtilization: 80},
		{UserName: "B", AvgUtilization: 110},
		{UserName: "C", AvgUtilization: 95},
	}
	SortByUtilization(users)
	if users[0].UserName != "B" || users[1].UserName != "C" || users[2].UserName != "A" {
		t.Fatalf("unexpected order: %+v", users)
	}
}
