package analytics

import (
	"sort"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
)

// Display caps for the per-user breakdown sections.
const (
	TopUsersSummary = 15
	TopUsersDetail  = 10
	RecentUserDays  = 7
)

// UserDay accumulates one user's hours for one calendar day.
type UserDay struct {
	TotalHours    float64
	BillableHours float64
	Entries       int
}

// UserTotals summarizes one user across the whole period.
type UserTotals struct {
	User          string
	TotalHours    float64
	ActiveDays    int
	AvgDailyHours float64
}

// UserMatrix is the (user, day) fold of a flat worklog list.
type UserMatrix struct {
	days   map[string]map[string]*UserDay
	Ranked []UserTotals
}

// BuildUserMatrix folds worklogs into per-user per-day totals and ranks
// users descending by total hours.
func BuildUserMatrix(worklogs []hajjefy.Worklog) *UserMatrix {
	days := make(map[string]map[string]*UserDay)
	for _, log := range worklogs {
		user := log.AuthorDisplayName
		if user == "" {
			continue
		}
		date := DayString(log.StartDate)

		byDate := days[user]
		if byDate == nil {
			byDate = make(map[string]*UserDay)
			days[user] = byDate
		}
		day := byDate[date]
		if day == nil {
			day = &UserDay{}
			byDate[date] = day
		}
		day.TotalHours += log.TimeSpentHours
		day.BillableHours += log.BillableHours
		day.Entries++
	}

	ranked := make([]UserTotals, 0, len(days))
	for user, byDate := range days {
		var total float64
		for _, day := range byDate {
			total += day.TotalHours
		}
		ranked = append(ranked, UserTotals{
			User:          user,
			TotalHours:    total,
			ActiveDays:    len(byDate),
			AvgDailyHours: total / float64(len(byDate)),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalHours != ranked[j].TotalHours {
			return ranked[i].TotalHours > ranked[j].TotalHours
		}
		return ranked[i].User < ranked[j].User
	})

	return &UserMatrix{days: days, Ranked: ranked}
}

// RecentDates returns up to n most recent dates (ascending) a user logged on.
func (m *UserMatrix) RecentDates(user string, n int) []string {
	byDate := m.days[user]
	if byDate == nil {
		return nil
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if len(dates) > n {
		dates = dates[len(dates)-n:]
	}
	return dates
}

// Day returns the accumulated entry for a (user, date) pair, nil when the
// user logged nothing that day.
func (m *UserMatrix) Day(user, date string) *UserDay {
	if byDate := m.days[user]; byDate != nil {
		return byDate[date]
	}
	return nil
}
