package catalog

import (
	"errors"
	"testing"
)

func TestSelectResource(t *testing.T) {
	tests := []struct {
		name      string
		resources []Resource
		wantURL   string
		wantKind  Kind
		wantErr   error
	}{
		{
			name: "csv preferred over xlsx",
			resources: []Resource{
				{Format: "XLSX", URL: "https://example.jp/a.xlsx"},
				{Format: "CSV", URL: "https://example.jp/a.csv"},
			},
			wantURL:  "https://example.jp/a.csv",
			wantKind: KindCSV,
		},
		{
			name: "first csv wins",
			resources: []Resource{
				{Format: "csv", URL: "https://example.jp/1.csv"},
				{Format: "csv", URL: "https://example.jp/2.csv"},
			},
			wantURL:  "https://example.jp/1.csv",
			wantKind: KindCSV,
		},
		{
			name: "csv without url skipped",
			resources: []Resource{
				{Format: "CSV"},
				{Format: "xls", URL: "https://example.jp/a.xls"},
			},
			wantURL:  "https://example.jp/a.xls",
			wantKind: KindExcel,
		},
		{
			name: "pdf and html are unusable",
			resources: []Resource{
				{Format: "PDF", URL: "https://example.jp/a.pdf"},
				{Format: "HTML", URL: "https://example.jp/"},
			},
			wantErr: ErrNoUsableResource,
		},
		{
			name:    "no resources",
			wantErr: ErrNoUsableResource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, kind, err := SelectResource(tt.resources)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.URL != tt.wantURL || kind != tt.wantKind {
				t.Errorf("got %s (%s), want %s (%s)", res.URL, kind, tt.wantURL, tt.wantKind)
			}
		})
	}
}

func TestPickPackage(t *testing.T) {
	results := []Package{
		{Title: "文京区 資源回収拠点"},
		{Title: "文京区 人口統計"},
		{Title: "文京区 収集日カレンダー"},
		{Title: "文京区 収集日一覧"},
	}
	if got := pickPackage(results, "収集"); got.Title != "文京区 収集日カレンダー" {
		t.Errorf("expected title match, got %q", got.Title)
	}
	if got := pickPackage(results[:2], "収集"); got.Title != "文京区 資源回収拠点" {
		t.Errorf("expected first result fallback, got %q", got.Title)
	}
	if got := pickPackage(results, ""); got.Title != results[0].Title {
		t.Errorf("empty hint should pick first, got %q", got.Title)
	}
}

func TestStatusError(t *testing.T) {
	err := error(&StatusError{Op: OpSearch, StatusCode: 503})
	if err.Error() != "Search failed: 503" {
		t.Errorf("unexpected message %q", err.Error())
	}
	var se *StatusError
	if !errors.As(err, &se) || se.StatusCode != 503 {
		t.Error("errors.As should unwrap StatusError")
	}
}
