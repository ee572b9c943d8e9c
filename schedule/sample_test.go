package schedule

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		ward string
		want string
	}{
		{name: "romanized ward", ward: "Adachi-ku", want: "adachi-ku"},
		{name: "spaces collapse", ward: "  Bunkyo   Ward ", want: "bunkyo-ward"},
		{name: "japanese kept", ward: "文京区 収集日", want: "文京区-収集日"},
		{name: "punctuation only", ward: "--", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.ward); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.ward, got, tt.want)
			}
		})
	}
}

func TestSampleFileName(t *testing.T) {
	date := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	if got := SampleFileName("Adachi-ku", date); got != "adachi-ku@2026-10-14.json" {
		t.Errorf("unexpected file name %q", got)
	}
}

func TestWriteAndReadSample(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public", "data", "samples")
	date := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)
	want := AdachiSample(date)

	path, err := WriteSample(dir, want, date)
	if err != nil {
		t.Fatalf("WriteSample: %v", err)
	}
	if filepath.Base(path) != "adachi-ku@2026-10-14.json" {
		t.Errorf("unexpected path %s", path)
	}

	got, err := ReadSample(path)
	if err != nil {
		t.Fatalf("ReadSample: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sample mismatch (-want +got):\n%s", diff)
	}

	// The fixture must decode as a plain Schedule for the front end.
	raw, _ := os.ReadFile(path)
	var s Schedule
	if err := json.Unmarshal(raw, &s); err != nil {
		t.Fatalf("fixture is not a Schedule: %v", err)
	}
	if len(s.Pickups) != 5 || len(s.BulkyFees) != 2 {
		t.Errorf("unexpected fixture contents: %+v", s)
	}
}

func TestValidateSample(t *testing.T) {
	date := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(*SampleFile)
		wantErr bool
	}{
		{name: "stub is valid", mutate: func(*SampleFile) {}},
		{name: "empty pickups", mutate: func(s *SampleFile) { s.Pickups = nil }, wantErr: true},
		{name: "unknown type", mutate: func(s *SampleFile) { s.Pickups[0].Type = "glass" }, wantErr: true},
		{name: "negative fee", mutate: func(s *SampleFile) { s.BulkyFees[0].FeeYen = -1 }, wantErr: true},
		{name: "missing ward", mutate: func(s *SampleFile) { s.Ward = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := AdachiSample(date)
			tt.mutate(&s)
			err := ValidateSample(s)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSample() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPickupTypeValid(t *testing.T) {
	for _, pt := range PickupTypes {
		if !pt.Valid() {
			t.Errorf("%s should be valid", pt)
		}
	}
	if PickupType("glass").Valid() {
		t.Error("glass should not be valid")
	}
	if p := SentinelPickup(); p.Type != Bulk || p.Day != "—" || p.Notes != "No pickup rows found in dataset." {
		t.Errorf("unexpected sentinel %+v", p)
	}
}
