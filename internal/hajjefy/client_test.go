package hajjefy

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetSendsAuthAndWindow(t *testing.T) {
	var gotAuth string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "token-123")
	_, err := c.DailyHours(context.Background(), Window{Days: 14, From: "2025-06-01", To: "2025-06-14"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer token-123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotQuery["days"][0] != "14" || gotQuery["from"][0] != "2025-06-01" || gotQuery["to"][0] != "2025-06-14" {
		t.Fatalf("query = %v", gotQuery)
	}
}

func TestWindowOmitsZeroValues(t *testing.T) {
	w := Window{}
	if len(w.values()) != 0 {
		t.Fatalf("zero window must encode no params, got %v", w.values())
	}
}

func TestAuthErrorsAreNormalized(t *testing.T) {
	cases := []struct {
		status  int
		message string
	}{
		{http.StatusUnauthorized, "Authentication failed. Please check your HAJJEFY_API_TOKEN."},
		{http.StatusForbidden, "Access denied. Token may lack required permissions."},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		c := NewClient(srv.URL, "bad-token")
		_, err := c.DashboardOverview(context.Background(), Window{Days: 30})

		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Fatalf("status %d: expected AuthError, got %v", tc.status, err)
		}
		if authErr.Status != tc.status || authErr.Message != tc.message {
			t.Fatalf("status %d: %+v", tc.status, authErr)
		}
		srv.Close()
	}
}

func TestAPIErrorPreservesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "token")
	_, err := c.CapacityAnalysis(context.Background(), Window{Days: 30})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusBadGateway {
		t.Fatalf("status = %d", apiErr.Status)
	}
	if IsUnavailable(err) || IsNotFound(err) {
		t.Fatal("502 is neither unavailable nor not-found")
	}
}

func TestIsUnavailable(t *testing.T) {
	if !IsUnavailable(&APIError{Status: 404}) || !IsUnavailable(&APIError{Status: 500}) {
		t.Fatal("404 and 500 mean the endpoint is unavailable")
	}
	if IsUnavailable(&APIError{Status: 503}) || IsUnavailable(errors.New("plain")) {
		t.Fatal("other failures are not unavailable")
	}
	if !IsNotFound(&APIError{Status: 404}) || IsNotFound(&APIError{Status: 500}) {
		t.Fatal("IsNotFound is 404 only")
	}
}

func TestSalesforceAccountAbsentIntegration(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		c := NewClient(srv.URL, "token")
		acc, err := c.SalesforceAccount(context.Background(), "RelateCare")
		if err != nil || acc != nil {
			t.Fatalf("status %d: want (nil, nil), got (%+v, %v)", status, acc, err)
		}
		srv.Close()
	}
}

func TestUserProfileEscapesUsername(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "token")
	if _, err := c.UserProfile(context.Background(), "John Smith", Window{Days: 30}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/dashboard/user-profile/John%20Smith" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestFlexIntDecodesNumbersAndStrings(t *testing.T) {
	var payload struct {
		A FlexInt `json:"a"`
		B FlexInt `json:"b"`
		C FlexInt `json:"c"`
		D FlexInt `json:"d"`
	}
	raw := `{"a": 142, "b": "142", "c": null, "d": "17.0"}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.A.Int() != 142 || payload.B.Int() != 142 {
		t.Fatalf("number/string mismatch: %+v", payload)
	}
	if payload.C.Int() != 0 {
		t.Fatalf("null must decode to 0, got %d", payload.C.Int())
	}
	if payload.D.Int() != 17 {
		t.Fatalf("float string must truncate to 17, got %d", payload.D.Int())
	}
}

func TestOverviewDecodesMixedCounters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"totals": {"hours": 120.5, "entries": "87", "activeDays": 20, "avgHoursPerDay": 6.0},
			"database": {"totalWorklogs": 4200, "uniqueAuthors": "12", "dateRange": {"earliest": "2024-01-01", "latest": "2025-06-30"}}
		}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "token")
	overview, err := c.DashboardOverview(context.Background(), Window{Days: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.Totals.Entries.Int() != 87 {
		t.Fatalf("entries = %d", overview.Totals.Entries.Int())
	}
	if overview.Database.UniqueAuthors.Int() != 12 {
		t.Fatalf("uniqueAuthors = %d", overview.Database.UniqueAuthors.Int())
	}
	if overview.Database.DateRange.Earliest != "2024-01-01" {
		t.Fatalf("earliest = %q", overview.Database.DateRange.Earliest)
	}
}
