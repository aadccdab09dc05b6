package analytics

import (
	"testing"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
)

func TestTAMTiers(t *testing.T) {
	users := []hajjefy.TAMUser{
		{UserName: "Dana", TAMHours: 22, WorklogCount: 8},
		{UserName: "Amy", TAMHours: 65, WorklogCount: 40},
		{UserName: "Finn", TAMHours: 3, WorklogCount: 2},
		{UserName: "Cleo", TAMHours: 25, WorklogCount: 12},
		{UserName: "Bob", TAMHours: 45, WorklogCount: 30},
		{UserName: "Eve", TAMHours: 10, WorklogCount: 5},
	}
	rankings := []hajjefy.RankedUser{
		{UserName: "Amy", TotalHours: 150},
		{UserName: "Bob", TotalHours: 200},
		{UserName: "Cleo", TotalHours: 100},
		{UserName: "Dana", TotalHours: 300},
		{UserName: "Eve", TotalHours: 50},
	}

	records := TAMTiers(users, rankings, DefaultMinTAMHours)

	// Finn sits below the minimum hours floor.
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}
	for i, want := range []string{"Amy", "Bob", "Cleo", "Dana", "Eve"} {
		if records[i].UserName != want {
			t.Fatalf("rank %d = %s, want %s", i, records[i].UserName, want)
		}
	}

	checks := []struct {
		user           string
		tier           string
		recommendation string
	}{
		{"Amy", TierExpert, "Strategic Account Lead"},
		{"Bob", TierExpert, "Senior TAM Resource"},
		{"Cleo", TierExperienced, "Active TAM Contributor"},
		{"Dana", TierExperienced, "TAM Support Role"},
		{"Eve", TierDeveloping, "Developing TAM Skills"},
	}
	byName := make(map[string]TAMRecord)
	for _, r := range records {
		byName[r.UserName] = r
	}
	for _, c := range checks {
		r := byName[c.user]
		if r.Tier != c.tier {
			t.Fatalf("%s tier = %s, want %s", c.user, r.Tier, c.tier)
		}
		if r.Recommendation != c.recommendation {
			t.Fatalf("%s recommendation = %q, want %q", c.user, r.Recommendation, c.recommendation)
		}
	}

	amy := byName["Amy"]
	if amy.TotalHours != 150 {
		t.Fatalf("Amy total = %v", amy.TotalHours)
	}
	wantPct := 65.0 / 150 * 100
	if amy.TAMPercentage != wantPct {
		t.Fatalf("Amy pct = %v, want %v", amy.TAMPercentage, wantPct)
	}
}

func TestTAMTiersUnrankedUserHasZeroPercentage(t *testing.T) {
	users := []hajjefy.TAMUser{{UserName: "Ghost", TAMHours: 30}}
	records := TAMTiers(users, nil, 0)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].TAMPercentage != 0 || records[0].TotalHours != 0 {
		t.Fatalf("unranked user must carry zero totals: %+v", records[0])
	}
}

func TestTierGroups(t *testing.T) {
	records := []TAMRecord{
		{UserName: "A", Tier: TierExpert},
		{UserName: "B", Tier: TierExperienced},
		{UserName: "C", Tier: TierDeveloping},
		{UserName: "D", Tier: TierExpert},
	}
	expert, experienced, developing := TierGroups(records)
	if len(expert) != 2 || expert[0].UserName != "A" || expert[1].UserName != "D" {
		t.Fatalf("expert group: %+v", expert)
	}
	if len(experienced) != 1 || len(developing) != 1 {
		t.Fatalf("group sizes: %d %d", len(experienced), len(developing))
	}
}
