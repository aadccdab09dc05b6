package analytics

import (
	"sort"
	"strings"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
)

// CapacityCategory buckets a user's utilization percentage.
type CapacityCategory string

const (
	OverCapacity  CapacityCategory = "Over-Capacity"
	Optimal       CapacityCategory = "Optimal"
	UnderUtilized CapacityCategory = "Under-Utilized"
)

// Categorize maps a utilization percentage to its capacity bucket:
// >100 over, [90,100] optimal, <90 under. The buckets partition the axis.
func Categorize(utilization float64) CapacityCategory {
	switch {
	case utilization > 100:
		return OverCapacity
	case utilization >= 90:
		return Optimal
	default:
		return UnderUtilized
	}
}

// FilterUsersByName keeps users whose name contains the filter,
// case-insensitively. An empty filter keeps everyone.
func FilterUsersByName(users []hajjefy.CapacityUser, filter string) []hajjefy.CapacityUser {
	if strings.TrimSpace(filter) == "" {
		return users
	}
	needle := strings.ToLower(filter)
	var out []hajjefy.CapacityUser
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.UserName), needle) {
			out = append(out, u)
		}
	}
	return out
}

// SortByUtilization orders users descending by utilization, in place.
func SortByUtilization(users []hajjefy.CapacityUser) {
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].AvgUtilization > users[j].AvgUtilization
	})
}
