package roster

import (
	"strings"
	"time"
)

// timeLayouts are tried in order for string timestamps. The API mostly emits
// RFC3339 but older endpoints drop the zone or send date-only values.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime coerces a loosely-typed timestamp into a time.Time. Numbers are
// epoch milliseconds, matching how the upstream clients serialize dates.
// Unparseable values report ok=false and never contaminate other outputs.
func ParseTime(value interface{}) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return v, !v.IsZero()
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return time.Time{}, false
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, trimmed); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	case float64:
		if v <= 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(v)).UTC(), true
	case int64:
		if v <= 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(v).UTC(), true
	case int:
		return ParseTime(int64(v))
	}
	return time.Time{}, false
}

// MatchStartTime resolves the start moment of a match payload from the first
// parseable candidate field, if any.
func MatchStartTime(match map[string]interface{}) (time.Time, bool) {
	if match == nil {
		return time.Time{}, false
	}
	for _, field := range startTimeFields {
		raw, ok := lookupPath(match, field)
		if !ok {
			continue
		}
		if t, parsed := ParseTime(raw); parsed {
			return t, true
		}
	}
	return time.Time{}, false
}
