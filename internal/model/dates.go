package model

import "time"

// dateLayouts are the formats ConvertDates recognizes. Storage round-trips
// through JSON text, which drops date typing; loads run everything free-form
// (settings, imported envelopes) back through here.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// ConvertDates walks maps and slices, replacing every string that parses as an
// ISO-8601 date with a time.Time. Non-date values pass through untouched.
func ConvertDates(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, val := range t {
			t[k] = ConvertDates(val)
		}
		return t
	case []interface{}:
		for i, val := range t {
			t[i] = ConvertDates(val)
		}
		return t
	case string:
		if ts, ok := parseDate(t); ok {
			return ts
		}
		return t
	default:
		return v
	}
}

func parseDate(s string) (time.Time, bool) {
	// Cheap pre-check so ordinary strings skip the parse attempts.
	if len(s) < 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
