// Package customer maps raw time-tracking account codes to human-readable
// customer names and locates a customer's accounts from free-text input.
// One customer often spans several account codes (RELATECAREBILL,
// RELATECARECSM, ...), so lookups can return a set, not just one record.
package customer

import (
	"sort"
	"strings"
	"unicode"

	"github.com/hajjefy/hajjefy-mcp-server/internal/hajjefy"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ResolveName strips the first matching scheme suffix from the right end of
// an account code and resolves the remainder through the static name table.
// Codes absent from the table come back verbatim after stripping.
func ResolveName(code string) string {
	stripped := strings.ToUpper(strings.TrimSpace(code))
	for _, suffix := range accountSuffixes {
		if len(stripped) > len(suffix) && strings.HasSuffix(stripped, suffix) {
			stripped = strings.TrimSuffix(stripped, suffix)
			break
		}
	}
	if name, ok := customerNames[stripped]; ok {
		return name
	}
	return stripped
}

// FindAccount locates a single account for the input by, in order: exact
// case-insensitive code match, resolved-name equality or containment, raw
// code substring. The second return is false when nothing matches; absence
// is a valid outcome, not an error.
func FindAccount(accounts []hajjefy.AccountRecord, input string) (hajjefy.AccountRecord, bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return hajjefy.AccountRecord{}, false
	}

	for _, acc := range accounts {
		if strings.ToLower(acc.Account) == needle {
			return acc, true
		}
	}
	for _, acc := range accounts {
		name := strings.ToLower(ResolveName(acc.Account))
		if name == needle || strings.Contains(name, needle) {
			return acc, true
		}
	}
	for _, acc := range accounts {
		if strings.Contains(strings.ToLower(acc.Account), needle) {
			return acc, true
		}
	}
	return hajjefy.AccountRecord{}, false
}

// MatchAll collects every account belonging to the named customer: any
// record whose normalized code contains the normalized input, or whose
// resolved name contains the input case-insensitively. Customer analysis
// sums hours across this whole set.
func MatchAll(accounts []hajjefy.AccountRecord, input string) []hajjefy.AccountRecord {
	normInput := normalize(input)
	lowerInput := strings.ToLower(strings.TrimSpace(input))
	if normInput == "" && lowerInput == "" {
		return nil
	}

	var matched []hajjefy.AccountRecord
	for _, acc := range accounts {
		byCode := normInput != "" && strings.Contains(normalize(acc.Account), normInput)
		byName := lowerInput != "" && strings.Contains(strings.ToLower(ResolveName(acc.Account)), lowerInput)
		if byCode || byName {
			matched = append(matched, acc)
		}
	}
	return matched
}

// Similar suggests customers for a "did you mean" hint when nothing matched:
// resolved names sharing the first three characters of the input, ordered by
// edit distance to the input, deduplicated.
func Similar(accounts []hajjefy.AccountRecord, input string) []string {
	lowerInput := strings.ToLower(strings.TrimSpace(input))
	if lowerInput == "" {
		return nil
	}
	prefix := lowerInput
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	seen := make(map[string]bool)
	var names []string
	for _, acc := range accounts {
		name := ResolveName(acc.Account)
		lower := strings.ToLower(name)
		if seen[lower] || !strings.HasPrefix(lower, prefix) || lower == lowerInput {
			continue
		}
		seen[lower] = true
		names = append(names, name)
	}

	sort.SliceStable(names, func(i, j int) bool {
		return fuzzy.LevenshteinDistance(lowerInput, strings.ToLower(names[i])) <
			fuzzy.LevenshteinDistance(lowerInput, strings.ToLower(names[j]))
	})
	return names
}

// normalize lowercases and strips every non-letter so RELATECARE-BILL,
// "RelateCare Bill" and relatecarebill all compare equal.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
