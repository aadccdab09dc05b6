package hajjefy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is used when no HAJJEFY_BASE_URL override is configured.
const DefaultBaseURL = "https://hajjefy.com"

const requestTimeout = 30 * time.Second

// Window narrows a request to a date range: either a trailing number of days
// or an explicit from/to pair of ISO dates. Zero values are omitted from the
// query so the API applies its own defaults.
type Window struct {
	Days int
	From string
	To   string
}

func (w Window) values() url.Values {
	q := url.Values{}
	if w.Days > 0 {
		q.Set("days", strconv.Itoa(w.Days))
	}
	if w.From != "" {
		q.Set("from", w.From)
	}
	if w.To != "" {
		q.Set("to", w.To)
	}
	return q
}

// Client issues authenticated GETs against the Hajjefy API. It is stateless
// aside from the base URL, token and timeout fixed at construction; no
// retries, no caching.
type Client struct {
	baseURL string
	token   string
	hc      *http.Client
}

// NewClient builds a client for the given base URL and bearer token.
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		hc:      &http.Client{Timeout: requestTimeout},
	}
}

// DashboardOverview fetches totals, top accounts and recent days.
func (c *Client) DashboardOverview(ctx context.Context, w Window) (*DashboardOverview, error) {
	var out DashboardOverview
	if err := c.get(ctx, "/api/dashboard/overview", w.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BillableAnalysis fetches the billable/non-billable split.
func (c *Client) BillableAnalysis(ctx context.Context, w Window) (*BillableAnalysis, error) {
	var out BillableAnalysis
	if err := c.get(ctx, "/api/dashboard/billable-analysis", w.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserProfile fetches per-user analytics. The username is URL-escaped;
// display names routinely contain spaces.
func (c *Client) UserProfile(ctx context.Context, username string, w Window) (*UserProfile, error) {
	var out UserProfile
	path := "/api/dashboard/user-profile/" + url.PathEscape(username)
	if err := c.get(ctx, path, w.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TeamWorkload fetches the team workload overview rankings.
func (c *Client) TeamWorkload(ctx context.Context, w Window) (*TeamWorkload, error) {
	var out TeamWorkload
	if err := c.get(ctx, "/api/dashboard/team-workload-overview", w.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CapacityAnalysis fetches per-user utilization against workload schemes.
func (c *Client) CapacityAnalysis(ctx context.Context, w Window) (*CapacityAnalysis, error) {
	var out CapacityAnalysis
	if err := c.get(ctx, "/api/dashboard/capacity-analysis", w.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DetailedWorklogs fetches raw worklog entries, newest first.
func (c *Client) DetailedWorklogs(ctx context.Context, w Window, limit, offset int) (*WorklogsResponse, error) {
	q := w.values()
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	var out WorklogsResponse
	if err := c.get(ctx, "/api/dashboard/worklogs", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DailyHours fetches the per-day breakdown.
func (c *Client) DailyHours(ctx context.Context, w Window) (*DailyResponse, error) {
	var out DailyResponse
	if err := c.get(ctx, "/api/dashboard/daily", w.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AccountsBreakdown fetches per-account hours with categories.
func (c *Client) AccountsBreakdown(ctx context.Context, w Window) (*AccountsResponse, error) {
	var out AccountsResponse
	if err := c.get(ctx, "/api/dashboard/accounts", w.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SyncStatus fetches the worklog sync state.
func (c *Client) SyncStatus(ctx context.Context) (*SyncStatus, error) {
	var out SyncStatus
	if err := c.get(ctx, "/api/sync/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health fetches the API health probe.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.get(ctx, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TAMAnalysis fetches cross-charge hours per user, optionally narrowed to
// one customer.
func (c *Client) TAMAnalysis(ctx context.Context, w Window, customer string) (*TAMAnalysis, error) {
	q := w.values()
	if customer != "" {
		q.Set("customer", customer)
	}
	var out TAMAnalysis
	if err := c.get(ctx, "/.netlify/functions/tam-analysis", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// WorkloadRankings fetches total-hours rankings used to contextualize TAM
// hours.
func (c *Client) WorkloadRankings(ctx context.Context, w Window) (*WorkloadRankings, error) {
	var out WorkloadRankings
	if err := c.get(ctx, "/.netlify/functions/workload-rankings", w.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SalesforceAccount looks a customer up in the optional Salesforce
// integration. A 404 or 500 means the integration is absent or the account
// unknown; both return (nil, nil) rather than an error.
func (c *Client) SalesforceAccount(ctx context.Context, customer string) (*SalesforceAccount, error) {
	q := url.Values{}
	q.Set("customer", customer)
	var out SalesforceAccount
	if err := c.get(ctx, "/.netlify/functions/salesforce-account", q, &out); err != nil {
		if IsUnavailable(err) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return &AuthError{Status: resp.StatusCode, Message: "Authentication failed. Please check your HAJJEFY_API_TOKEN."}
	case resp.StatusCode == http.StatusForbidden:
		return &AuthError{Status: resp.StatusCode, Message: "Access denied. Token may lack required permissions."}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &APIError{Status: resp.StatusCode, URL: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
