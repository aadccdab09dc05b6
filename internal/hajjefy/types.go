package hajjefy

import (
	"strconv"
	"strings"
)

// FlexInt decodes counters the API serves inconsistently as numbers or
// quoted strings ("142"). Null and empty string decode to zero.
type FlexInt int64

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*n = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return err
		}
		v = int64(f)
	}
	*n = FlexInt(v)
	return nil
}

func (n FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(n), 10)), nil
}

// Int returns the counter as a plain int.
func (n FlexInt) Int() int { return int(n) }

// DateRange is the resolved from/to window echoed by dashboard endpoints.
type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// DashboardOverview is the /api/dashboard/overview payload.
type DashboardOverview struct {
	DateRange   DateRange      `json:"dateRange"`
	Totals      OverviewTotals `json:"totals"`
	TopAccounts []TopAccount   `json:"topAccounts"`
	RecentDays  []RecentDay    `json:"recentDays"`
	Database    DatabaseInfo   `json:"database"`
}

type OverviewTotals struct {
	Hours          float64 `json:"hours"`
	Entries        FlexInt `json:"entries"`
	ActiveDays     int     `json:"activeDays"`
	AvgHoursPerDay float64 `json:"avgHoursPerDay"`
}

type TopAccount struct {
	Account    string  `json:"account"`
	TotalHours float64 `json:"total_hours"`
	Percentage float64 `json:"percentage"`
}

type RecentDay struct {
	Date       string  `json:"date"`
	TotalHours float64 `json:"total_hours"`
	EntryCount FlexInt `json:"entry_count"`
}

type DatabaseInfo struct {
	TotalWorklogs  FlexInt       `json:"totalWorklogs"`
	DateRange      DatabaseRange `json:"dateRange"`
	UniqueAuthors  FlexInt       `json:"uniqueAuthors"`
	UniqueAccounts FlexInt       `json:"uniqueAccounts"`
	Status         string        `json:"status"`
}

type DatabaseRange struct {
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

// BillableAnalysis is the /api/dashboard/billable-analysis payload.
type BillableAnalysis struct {
	Summary             BillableSummary   `json:"summary"`
	TopBillableAccounts []BillableAccount `json:"topBillableAccounts"`
	MonthlyTrend        []BillableMonth   `json:"monthlyTrend"`
}

type BillableSummary struct {
	BillableHours      float64 `json:"billableHours"`
	NonBillableHours   float64 `json:"nonBillableHours"`
	BillablePercentage float64 `json:"billablePercentage"`
}

type BillableAccount struct {
	Account       string  `json:"account"`
	BillableHours float64 `json:"billableHours"`
}

type BillableMonth struct {
	Month              string  `json:"month"`
	BillableHours      float64 `json:"billableHours"`
	BillablePercentage float64 `json:"billablePercentage"`
}

// UserProfile is the /api/dashboard/user-profile/{username} payload.
type UserProfile struct {
	Success bool        `json:"success"`
	Profile ProfileData `json:"userProfile"`
}

type ProfileData struct {
	DailyBillableTrends []DailyTrend       `json:"dailyBillableTrends"`
	LastActivity        LastActivity       `json:"lastActivity"`
	AccountBreakdown    []UserAccountShare `json:"accountBreakdown"`
}

type DailyTrend struct {
	Date               string  `json:"date"`
	TotalHours         float64 `json:"totalHours"`
	BillableHours      float64 `json:"billableHours"`
	BillablePercentage float64 `json:"billablePercentage"`
	WorklogCount       FlexInt `json:"worklogCount"`
}

type LastActivity struct {
	LastWorklogDate       string  `json:"lastWorklogDate"`
	DaysSinceLastActivity FlexInt `json:"daysSinceLastActivity"`
	TotalWorklogs         FlexInt `json:"totalWorklogs"`
}

// UserAccountShare is one account's slice of a user's logged time.
type UserAccountShare struct {
	Account       string  `json:"account"`
	Hours         float64 `json:"hours"`
	BillableHours float64 `json:"billableHours"`
	Entries       FlexInt `json:"entries"`
}

// TeamWorkload is the /api/dashboard/team-workload-overview payload.
type TeamWorkload struct {
	Success  bool            `json:"success"`
	Rankings []WorkloadEntry `json:"rankings"`
}

type WorkloadEntry struct {
	UserName      string  `json:"userName"`
	TotalHours    float64 `json:"totalHours"`
	BillableHours float64 `json:"billableHours"`
	WorklogCount  FlexInt `json:"worklogCount"`
	ActiveDays    FlexInt `json:"activeDays"`
}

// CapacityAnalysis is the /api/dashboard/capacity-analysis payload.
type CapacityAnalysis struct {
	Success  bool         `json:"success"`
	Capacity CapacityData `json:"capacity"`
}

type CapacityData struct {
	Summary CapacitySummary `json:"summary"`
	Users   []CapacityUser  `json:"users"`
}

type CapacitySummary struct {
	TotalUsers              FlexInt `json:"totalUsers"`
	TeamTotalActualHours    float64 `json:"teamTotalActualHours"`
	TeamTotalExpectedHours  float64 `json:"teamTotalExpectedHours"`
	TeamAvgUtilization      float64 `json:"teamAvgUtilization"`
	CapacityGap             float64 `json:"capacityGap"`
	OverCapacityUsers       int     `json:"overCapacityUsers"`
	OptimalUsers            int     `json:"optimalUsers"`
	UnderUtilizedUsers      int     `json:"underUtilizedUsers"`
}

type CapacityUser struct {
	UserName           string         `json:"userName"`
	AvgUtilization     float64        `json:"avgUtilization"`
	TotalActualHours   float64        `json:"totalActualHours"`
	TotalExpectedHours float64        `json:"totalExpectedHours"`
	OverUnderTotal     float64        `json:"overUnderTotal"`
	TotalTimeOffDays   float64        `json:"totalTimeOffDays"`
	TotalTimeOffHours  float64        `json:"totalTimeOffHours"`
	TotalDaysWorked    FlexInt        `json:"totalDaysWorked"`
	TotalWorklogs      FlexInt        `json:"totalWorklogs"`
	WorkloadScheme     WorkloadScheme `json:"workloadScheme"`
	HolidayScheme      HolidayScheme  `json:"holidayScheme"`
}

type WorkloadScheme struct {
	SchemeName  string  `json:"schemeName"`
	HoursPerDay float64 `json:"hoursPerDay"`
}

type HolidayScheme struct {
	SchemeName string `json:"schemeName"`
}

// WorklogsResponse is the /api/dashboard/worklogs payload.
type WorklogsResponse struct {
	Success  bool      `json:"success"`
	Worklogs []Worklog `json:"worklogs"`
}

// Worklog is a single time entry.
type Worklog struct {
	StartDate         string  `json:"startDate"`
	AuthorDisplayName string  `json:"authorDisplayName"`
	AccountKey        string  `json:"accountKey"`
	AccountName       string  `json:"accountName"`
	AccountCategory   string  `json:"accountCategory"`
	TimeSpentHours    float64 `json:"timeSpentHours"`
	BillableHours     float64 `json:"billableHours"`
	Description       string  `json:"description"`
}

// DailyResponse is the /api/dashboard/daily payload.
type DailyResponse struct {
	Success   bool         `json:"success"`
	DateRange DateRange    `json:"dateRange"`
	Daily     []DailyRow   `json:"daily"`
	Summary   DailySummary `json:"summary"`
}

type DailyRow struct {
	Date          string  `json:"date"`
	TotalHours    float64 `json:"total_hours"`
	BillableHours float64 `json:"billable_hours"`
	UniqueUsers   FlexInt `json:"unique_users"`
	EntryCount    FlexInt `json:"entry_count"`
}

type DailySummary struct {
	TotalDays          int     `json:"totalDays"`
	TotalHours         float64 `json:"totalHours"`
	TotalBillableHours float64 `json:"totalBillableHours"`
	TotalEntries       FlexInt `json:"totalEntries"`
	AvgDailyHours      float64 `json:"avgDailyHours"`
	AvgUtilization     float64 `json:"avgUtilization"`
}

// AccountsResponse is the /api/dashboard/accounts payload.
type AccountsResponse struct {
	Success  bool            `json:"success"`
	Accounts []AccountRecord `json:"accounts"`
}

// AccountRecord is one account code's share of the period. Category is one
// of Billable, Internal, Centene, Non-Billable or Uncategorized.
type AccountRecord struct {
	Account    string  `json:"account"`
	Category   string  `json:"category"`
	Hours      float64 `json:"hours"`
	Entries    FlexInt `json:"entries"`
	Percentage float64 `json:"percentage"`
}

// SyncStatus is the /api/sync/status payload.
type SyncStatus struct {
	Success bool     `json:"success"`
	Sync    SyncInfo `json:"sync"`
}

type SyncInfo struct {
	Status            string  `json:"status"`
	LastSyncAt        string  `json:"lastSyncAt"`
	WorklogsSynced    FlexInt `json:"worklogsSynced"`
	NextScheduledSync string  `json:"nextScheduledSync"`
}

// HealthStatus is the /api/health payload.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// TAMAnalysis is the tam-analysis function payload.
type TAMAnalysis struct {
	Success bool       `json:"success"`
	Users   []TAMUser  `json:"tamUsers"`
	Summary TAMSummary `json:"summary"`
}

// TAMUser carries one user's cross-charge hours for the period.
type TAMUser struct {
	UserName     string  `json:"userName"`
	TAMHours     float64 `json:"tamHours"`
	WorklogCount FlexInt `json:"worklogCount"`
}

type TAMSummary struct {
	TotalTAMHours float64 `json:"totalTamHours"`
	TotalUsers    FlexInt `json:"totalUsers"`
}

// WorkloadRankings is the workload-rankings function payload.
type WorkloadRankings struct {
	Success  bool         `json:"success"`
	Rankings []RankedUser `json:"rankings"`
}

type RankedUser struct {
	UserName      string  `json:"userName"`
	TotalHours    float64 `json:"totalHours"`
	BillableHours float64 `json:"billableHours"`
	Rank          FlexInt `json:"rank"`
}

// SalesforceAccount is the optional salesforce-account function payload.
type SalesforceAccount struct {
	Success bool               `json:"success"`
	Account SalesforceAccountInfo `json:"account"`
}

type SalesforceAccountInfo struct {
	Name             string `json:"name"`
	Owner            string `json:"owner"`
	Type             string `json:"type"`
	Industry         string `json:"industry"`
	LastActivityDate string `json:"lastActivityDate"`
}
