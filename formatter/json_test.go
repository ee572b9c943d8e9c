package formatter

import (
	"encoding/json"
	"testing"

	"github.com/theoremus-urban-solutions/gomi-schedule/schedule"
)

func TestBuildJSON_Shape(t *testing.T) {
	rb := NewResponseBuilder()
	buf, err := rb.BuildJSON(&schedule.Schedule{
		Ward:    "文京区",
		Version: "unknown",
		Pickups: []schedule.Pickup{{Day: "月", Type: schedule.Burnable}},
	})
	if err != nil {
		t.Fatalf("BuildJSON: %v", err)
	}

	var raw map[string]map[string]any
	if err := json.Unmarshal(buf, &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	s, ok := raw["schedule"]
	if !ok {
		t.Fatalf("missing schedule key: %s", buf)
	}
	for _, key := range []string{"station", "bulkyFees"} {
		if _, present := s[key]; present {
			t.Errorf("%s should be omitted when empty: %s", key, buf)
		}
	}
	pickups := s["pickups"].([]any)
	first := pickups[0].(map[string]any)
	if _, present := first["notes"]; present {
		t.Errorf("empty notes should be omitted: %s", buf)
	}
	if first["type"] != "burnable" {
		t.Errorf("type = %v", first["type"])
	}
}

func TestBuildErrorJSON(t *testing.T) {
	got := string(NewResponseBuilder().BuildErrorJSON("Missing query parameter"))
	if got != `{"error":"Missing query parameter"}` {
		t.Errorf("unexpected error body %s", got)
	}
}
