package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/yourusername/polls-cli/pkg/analytics"
)

func testReport(t *testing.T) analytics.AnalyticsReport {
	t.Helper()
	now := time.Unix(1700000000, 0)
	snap, err := analytics.NewPollSnapshot(3, "release name?", []string{"aurora", "basalt"}, []uint64{10, 4}, 14, now.Unix()-7200, now.Unix()+90000, true)
	if err != nil {
		t.Fatalf("NewPollSnapshot failed: %v", err)
	}
	return analytics.ComputeSingle(snap, now)
}

func TestNewUnsupportedFormat(t *testing.T) {
	if _, err := New("xml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
	for _, format := range []string{"text", "json", "csv", "table", "JSON"} {
		if _, err := New(format); err != nil {
			t.Errorf("New(%q) failed: %v", format, err)
		}
	}
}

func TestJSONAnalyticsRoundTrip(t *testing.T) {
	r, err := New("json")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Analytics(&buf, testReport(t)); err != nil {
		t.Fatalf("Analytics failed: %v", err)
	}

	var decoded analytics.AnalyticsReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.LeadingOption != "aurora" {
		t.Errorf("LeadingOption = %q, want aurora", decoded.LeadingOption)
	}
	if decoded.TimeRemaining != "1 days, 1 hours" {
		t.Errorf("TimeRemaining = %q", decoded.TimeRemaining)
	}
}

func TestCSVExportRows(t *testing.T) {
	r, err := New("csv")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	export := PollExport{
		ID:         1,
		Question:   "a, question with commas",
		Creator:    "0x00000000000000000000000000000000000000aa",
		CreatedAt:  FormatTimestamp(1700000000),
		EndTime:    FormatTimestamp(1700090000),
		IsActive:   true,
		TotalVotes: 14,
		Options:    []string{"yes", "no"},
		Votes:      []uint64{10, 4},
	}

	var buf bytes.Buffer
	if err := r.Export(&buf, export); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 { // header + one row per option
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[1][1] != "a, question with commas" {
		t.Errorf("question not preserved through CSV quoting: %q", records[1][1])
	}
	if records[2][7] != "no" || records[2][8] != "4" {
		t.Errorf("second option row = %v", records[2])
	}
}

func TestCSVSummary(t *testing.T) {
	r, err := New("csv")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	summary := analytics.SystemSummary{
		TotalPolls: 1,
		Polls:      []analytics.PollStatus{{PollID: 2, Question: "q", TotalVotes: 9, Active: true}},
	}

	var buf bytes.Buffer
	if err := r.Summary(&buf, summary); err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 2 || records[1][0] != "2" || records[1][3] != "true" {
		t.Errorf("summary rows = %v", records)
	}
}

func TestTextAnalyticsContainsFields(t *testing.T) {
	r, err := New("text")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Analytics(&buf, testReport(t)); err != nil {
		t.Fatalf("Analytics failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"release name?", "aurora", "1 days, 1 hours", "10 votes"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestTableRendersAllOptions(t *testing.T) {
	r, err := New("table")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var buf bytes.Buffer
	if err := r.Analytics(&buf, testReport(t)); err != nil {
		t.Fatalf("Analytics failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"aurora", "basalt"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestBarScale(t *testing.T) {
	tests := []struct {
		percentage float64
		wantBlocks int
	}{
		{percentage: 0, wantBlocks: 0},
		{percentage: 1.9, wantBlocks: 0},
		{percentage: 50, wantBlocks: 25},
		{percentage: 100, wantBlocks: 50},
	}
	for _, tt := range tests {
		got := strings.Count(Bar(tt.percentage), "█")
		if got != tt.wantBlocks {
			t.Errorf("Bar(%v) has %d blocks, want %d", tt.percentage, got, tt.wantBlocks)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	got := FormatTimestamp(1700000000)
	if got != "2023-11-14 22:13:20 UTC" {
		t.Errorf("FormatTimestamp = %q", got)
	}
}
