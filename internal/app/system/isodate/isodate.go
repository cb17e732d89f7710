// Package isodate parses and produces the ISO-8601 timestamp strings used
// for announcement date fields.
//
// Announcement dates travel and persist as strings, and range queries
// compare them lexicographically. Parsing exists only for validation: a
// trailing literal "Z" is normalized to an explicit "+00:00" offset before
// interpretation, and timestamps without an offset are treated as UTC.
package isodate

import (
	"fmt"
	"strings"
	"time"
)

// layouts accepted after Z-normalization, tried in order.
var layouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse interprets s as an ISO-8601 timestamp. A trailing "Z" UTC marker is
// rewritten to "+00:00" first, matching how the rest of the school system
// normalizes dates before comparison.
func Parse(s string) (time.Time, error) {
	normalized := strings.ReplaceAll(s, "Z", "+00:00")
	for _, layout := range layouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("isodate: cannot parse %q as ISO-8601", s)
}

// Valid reports whether s parses as an ISO-8601 timestamp.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Now returns the current server time formatted the way created_at and the
// active-window comparisons expect. The fixed fractional width keeps
// lexicographic ordering consistent with chronological ordering.
func Now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000")
}
