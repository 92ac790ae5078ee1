package model

import (
	"testing"
	"time"
)

// TestConvertDatesWalksNestedStructures ensures RFC3339 strings are restored
// to time values at any depth while other values pass through.
func TestConvertDatesWalksNestedStructures(t *testing.T) {
	in := map[string]interface{}{
		"createdAt": "2025-03-01T09:30:00Z",
		"name":      "backup",
		"count":     3.0,
		"nested": map[string]interface{}{
			"when": "2025-03-02T10:00:00+02:00",
		},
		"list": []interface{}{"2025-03-03", "plain string"},
	}

	out := ConvertDates(in).(map[string]interface{})

	created, ok := out["createdAt"].(time.Time)
	if !ok {
		t.Fatalf("createdAt not converted: %T", out["createdAt"])
	}
	if created.UTC() != time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC) {
		t.Fatalf("unexpected createdAt: %v", created)
	}
	if out["name"] != "backup" {
		t.Fatalf("name changed: %v", out["name"])
	}
	if out["count"] != 3.0 {
		t.Fatalf("count changed: %v", out["count"])
	}
	nested := out["nested"].(map[string]interface{})
	if _, ok := nested["when"].(time.Time); !ok {
		t.Fatalf("nested date not converted: %T", nested["when"])
	}
	list := out["list"].([]interface{})
	if _, ok := list[0].(time.Time); !ok {
		t.Fatalf("date-only string not converted: %T", list[0])
	}
	if list[1] != "plain string" {
		t.Fatalf("plain string changed: %v", list[1])
	}
}

// TestConvertDatesLeavesLookalikesAlone ensures near-miss strings stay
// strings.
func TestConvertDatesLeavesLookalikes(t *testing.T) {
	in := []interface{}{"2025-13-99", "12345-67-89", "not a date", ""}
	out := ConvertDates(in).([]interface{})
	for i, v := range out {
		if _, ok := v.(string); !ok {
			t.Fatalf("value %d converted unexpectedly: %T", i, v)
		}
	}
}
