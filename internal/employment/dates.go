package employment

import (
	"strings"
	"time"
)

// monthLayouts are the formats accepted for role dates. Parsers upstream
// emit "2006-01"; the rest cover common resume spellings.
var monthLayouts = []string{
	"2006-01",
	"2006-1",
	"2006-01-02",
	"January 2006",
	"Jan 2006",
	"01/2006",
	"1/2006",
	"2006",
}

var ongoingWords = map[string]bool{
	"present": true,
	"current": true,
	"now":     true,
	"ongoing": true,
	"today":   true,
}

// parseMonth parses a role date into the first day of its month.
// Returns false for empty, ongoing, or unparseable input.
func parseMonth(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || ongoingWords[strings.ToLower(s)] {
		return time.Time{}, false
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// resolveSpan turns a raw date range into concrete month endpoints.
// An open end resolves to now. An unparseable start yields ok=false,
// which callers treat as zero duration rather than an error.
func resolveSpan(start, end string, now time.Time) (time.Time, time.Time, bool) {
	s, ok := parseMonth(start)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	e, ok := parseMonth(end)
	if !ok {
		e = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	if e.Before(s) {
		return time.Time{}, time.Time{}, false
	}
	return s, e, true
}

// durationMonths is the year/month difference between a span's
// endpoints, used by the classifier's tenure heuristics. 2024-01
// through 2024-06 is 5 months. Aggregation counts covered months
// through spanMonths instead, which includes both endpoints.
func durationMonths(start, end string, now time.Time) int {
	s, e, ok := resolveSpan(start, end, now)
	if !ok {
		return 0
	}
	return (e.Year()-s.Year())*12 + int(e.Month()) - int(s.Month())
}

// spanMonths lists every month a span covers as "YYYY-MM" keys, so that
// overlapping roles of the same type union instead of double counting.
func spanMonths(start, end string, now time.Time) []string {
	s, e, ok := resolveSpan(start, end, now)
	if !ok {
		return nil
	}
	var months []string
	for cur := s; !cur.After(e); cur = cur.AddDate(0, 1, 0) {
		months = append(months, cur.Format("2006-01"))
	}
	return months
}
