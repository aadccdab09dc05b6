// Package tools implements the Hajjefy MCP tool catalog: one file per tool,
// each decoding and validating its own arguments, calling the API client and
// rendering a markdown report.
package tools

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
	"github.com/hajjefy/hajjefy-mcp-server/internal/protocol"
	"github.com/sirupsen/logrus"
)

// base carries the collaborators every tool shares. The client is built once
// at startup; tools hold no other state.
type base struct {
	client *hajjefy.Client
	logger *logrus.Entry
}

// windowArgs are the date-range arguments common to most tools.
type windowArgs struct {
	Days     int    `json:"days"`
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
}

// resolveWindow validates and defaults a date window. days must sit in
// [1,365]; explicit dates must be ISO and ordered. Violations surface as
// invalid-params before any remote call is made.
func resolveWindow(a windowArgs, defaultDays int) (hajjefy.Window, *protocol.ResponseError) {
	days := a.Days
	if days == 0 {
		days = defaultDays
	}
	if days < 1 || days > 365 {
		return hajjefy.Window{}, invalidParams(fmt.Sprintf("days must be between 1 and 365, got %d", a.Days))
	}
	for _, d := range []string{a.FromDate, a.ToDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return hajjefy.Window{}, invalidParams(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", d))
		}
	}
	if a.FromDate != "" && a.ToDate != "" && a.FromDate > a.ToDate {
		return hajjefy.Window{}, invalidParams(fmt.Sprintf("from_date %s is after to_date %s", a.FromDate, a.ToDate))
	}
	return hajjefy.Window{Days: days, From: a.FromDate, To: a.ToDate}, nil
}

func invalidParams(msg string) *protocol.ResponseError {
	return &protocol.ResponseError{Code: protocol.CodeInvalidParams, Message: msg}
}

func invalidArgs() *protocol.ResponseError {
	return &protocol.ResponseError{Code: protocol.CodeInvalidParams, Message: "invalid arguments"}
}

// toolError maps a failure during tool execution to a protocol error.
// Authentication failures keep their own code and verbatim message; anything
// else is an internal error tagged with the tool name.
func toolError(tool string, err error) *protocol.ResponseError {
	var authErr *hajjefy.AuthError
	if errors.As(err, &authErr) {
		return &protocol.ResponseError{Code: protocol.CodeAuthError, Message: authErr.Message}
	}
	return &protocol.ResponseError{Code: protocol.CodeInternalError, Message: fmt.Sprintf("Failed to execute tool '%s': %v", tool, err)}
}

// daysSchema is the shared schema for the days argument.
func daysSchema(def int) protocol.JSONSchema {
	return protocol.JSONSchema{
		Type:        "number",
		Description: fmt.Sprintf("Number of days to analyze (default: %d)", def),
		Minimum:     protocol.Bound(1),
		Maximum:     protocol.Bound(365),
	}
}

func dateSchema(desc string) protocol.JSONSchema {
	return protocol.JSONSchema{Type: "string", Format: "date", Description: desc}
}

// windowLabel renders the period either as the resolved range or the day
// count, matching whichever the caller supplied.
func windowLabel(w hajjefy.Window) string {
	if w.From != "" && w.To != "" {
		return fmt.Sprintf("%s to %s", w.From, w.To)
	}
	return fmt.Sprintf("%d days", w.Days)
}
