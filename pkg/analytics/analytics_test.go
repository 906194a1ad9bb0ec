package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

func snapshot(t *testing.T, options []string, votes []uint64, isActive bool, endOffset int64, now time.Time) PollSnapshot {
	t.Helper()

	var total uint64
	for _, v := range votes {
		total += v
	}

	snap, err := NewPollSnapshot(1, "test question", options, votes, total, now.Unix()-3600, now.Unix()+endOffset, isActive)
	if err != nil {
		t.Fatalf("NewPollSnapshot failed: %v", err)
	}
	return snap
}

func TestNewPollSnapshotShapeMismatch(t *testing.T) {
	_, err := NewPollSnapshot(1, "q", []string{"A", "B", "C"}, []uint64{1, 2}, 3, 0, 0, true)
	if err == nil {
		t.Fatal("expected error for mismatched options and votes")
	}
}

func TestNewPollSnapshotCopiesInput(t *testing.T) {
	options := []string{"A", "B"}
	votes := []uint64{1, 2}

	snap, err := NewPollSnapshot(1, "q", options, votes, 3, 0, 0, true)
	if err != nil {
		t.Fatalf("NewPollSnapshot failed: %v", err)
	}

	options[0] = "mutated"
	votes[0] = 99
	if snap.Options[0] != "A" || snap.Votes[0] != 1 {
		t.Error("snapshot shares memory with caller slices")
	}
}

func TestComputeSingleLeadingOption(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tests := []struct {
		name        string
		options     []string
		votes       []uint64
		wantLeading string
		wantMargin  float64
	}{
		{
			name:        "clear leader",
			options:     []string{"A", "B", "C"},
			votes:       []uint64{10, 4, 1},
			wantLeading: "A",
			wantMargin:  40.0, // (10-4)/15*100
		},
		{
			name:        "tie resolves to first index",
			options:     []string{"A", "B", "C"},
			votes:       []uint64{5, 5, 3},
			wantLeading: "A",
			wantMargin:  200.0 / 13, // distinct runner-up is 3, not the tied 5
		},
		{
			name:        "leader not first",
			options:     []string{"A", "B"},
			votes:       []uint64{2, 7},
			wantLeading: "B",
			wantMargin:  float64(7-2) / 9 * 100,
		},
		{
			name:        "all tied",
			options:     []string{"A", "B", "C"},
			votes:       []uint64{4, 4, 4},
			wantLeading: "A",
			wantMargin:  float64(4) / 12 * 100, // distinct runner-up is 0
		},
		{
			name:        "single option",
			options:     []string{"A"},
			votes:       []uint64{3},
			wantLeading: "A",
			wantMargin:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := ComputeSingle(snapshot(t, tt.options, tt.votes, true, 3600, now), now)

			if report.LeadingOption != tt.wantLeading {
				t.Errorf("LeadingOption = %q, want %q", report.LeadingOption, tt.wantLeading)
			}
			if math.Abs(report.Margin-tt.wantMargin) > 1e-9 {
				t.Errorf("Margin = %v, want %v", report.Margin, tt.wantMargin)
			}
		})
	}
}

func TestComputeSingleZeroVotes(t *testing.T) {
	now := time.Unix(1700000000, 0)
	report := ComputeSingle(snapshot(t, []string{"A", "B"}, []uint64{0, 0}, true, 3600, now), now)

	if report.Margin != 0 {
		t.Errorf("Margin = %v, want 0", report.Margin)
	}
	if report.ParticipationRate != 0 {
		t.Errorf("ParticipationRate = %v, want 0", report.ParticipationRate)
	}
	for _, d := range report.OptionsDetail {
		if d.Percentage != 0 {
			t.Errorf("option %q percentage = %v, want 0", d.Option, d.Percentage)
		}
	}
	// First option still leads on a zero tally.
	if report.LeadingOption != "A" {
		t.Errorf("LeadingOption = %q, want A", report.LeadingOption)
	}
}

func TestComputeSingleEmptyOptions(t *testing.T) {
	now := time.Unix(1700000000, 0)
	report := ComputeSingle(snapshot(t, nil, nil, true, 3600, now), now)

	if report.LeadingOption != "" {
		t.Errorf("LeadingOption = %q, want empty", report.LeadingOption)
	}
	if report.Margin != 0 {
		t.Errorf("Margin = %v, want 0", report.Margin)
	}
	if len(report.OptionsDetail) != 0 {
		t.Errorf("OptionsDetail length = %d, want 0", len(report.OptionsDetail))
	}
}

func TestComputeSinglePercentagesSumTo100(t *testing.T) {
	now := time.Unix(1700000000, 0)
	gofakeit.Seed(11)

	for i := 0; i < 50; i++ {
		n := gofakeit.Number(2, 8)
		options := make([]string, n)
		votes := make([]uint64, n)
		var total uint64
		for j := range options {
			options[j] = gofakeit.BuzzWord()
			votes[j] = uint64(gofakeit.Number(0, 500))
			total += votes[j]
		}
		if total == 0 {
			votes[0] = 1
			total = 1
		}

		report := ComputeSingle(snapshot(t, options, votes, true, 3600, now), now)

		var sum float64
		for _, d := range report.OptionsDetail {
			sum += d.Percentage
		}
		if math.Abs(sum-100) > 1e-6 {
			t.Fatalf("percentages sum to %v, want 100 (votes %v)", sum, votes)
		}
	}
}

func TestComputeSingleTimeRemaining(t *testing.T) {
	now := time.Unix(1700000000, 0)

	tests := []struct {
		name      string
		isActive  bool
		endOffset int64
		want      string
	}{
		{
			name:      "closed wins over future end time",
			isActive:  false,
			endOffset: 90000,
			want:      RemainingClosed,
		},
		{
			name:      "active but past end time",
			isActive:  true,
			endOffset: -60,
			want:      RemainingExpired,
		},
		{
			name:      "active at exactly end time",
			isActive:  true,
			endOffset: 0,
			want:      RemainingExpired,
		},
		{
			name:      "one day and one hour left",
			isActive:  true,
			endOffset: 90000, // 1 day + 1 hour + 1800s, partial hour floors away
			want:      "1 days, 1 hours",
		},
		{
			name:      "under an hour left",
			isActive:  true,
			endOffset: 1800,
			want:      "0 days, 0 hours",
		},
		{
			name:      "exactly a week",
			isActive:  true,
			endOffset: 7 * 86400,
			want:      "7 days, 0 hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := ComputeSingle(snapshot(t, []string{"A", "B"}, []uint64{1, 2}, tt.isActive, tt.endOffset, now), now)
			if report.TimeRemaining != tt.want {
				t.Errorf("TimeRemaining = %q, want %q", report.TimeRemaining, tt.want)
			}
		})
	}
}

func TestComputeAggregate(t *testing.T) {
	now := time.Unix(1700000000, 0)

	polls := []PollSnapshot{
		snapshot(t, []string{"A", "B"}, []uint64{6, 4}, true, 3600, now),   // active
		snapshot(t, []string{"A", "B"}, []uint64{0, 0}, true, -3600, now),  // flagged active but expired
		snapshot(t, []string{"A", "B"}, []uint64{2, 3}, false, 3600, now),  // closed
	}

	summary := ComputeAggregate(polls, now)

	if summary.TotalPolls != 3 {
		t.Errorf("TotalPolls = %d, want 3", summary.TotalPolls)
	}
	if summary.ActiveCount != 1 {
		t.Errorf("ActiveCount = %d, want 1", summary.ActiveCount)
	}
	if summary.ClosedCount != 2 {
		t.Errorf("ClosedCount = %d, want 2", summary.ClosedCount)
	}
	if summary.TotalSystemVotes != 15 {
		t.Errorf("TotalSystemVotes = %d, want 15", summary.TotalSystemVotes)
	}
	if summary.AverageVotesPerPoll == nil {
		t.Fatal("AverageVotesPerPoll is absent, want 5.0")
	}
	if *summary.AverageVotesPerPoll != 5.0 {
		t.Errorf("AverageVotesPerPoll = %v, want 5.0", *summary.AverageVotesPerPoll)
	}

	if len(summary.Polls) != 3 {
		t.Fatalf("Polls length = %d, want 3", len(summary.Polls))
	}
	if !summary.Polls[0].Active || summary.Polls[1].Active || summary.Polls[2].Active {
		t.Errorf("per-poll active flags = %v %v %v, want true false false",
			summary.Polls[0].Active, summary.Polls[1].Active, summary.Polls[2].Active)
	}
}

func TestComputeAggregateEmpty(t *testing.T) {
	summary := ComputeAggregate(nil, time.Unix(1700000000, 0))

	if summary.TotalPolls != 0 || summary.ActiveCount != 0 || summary.ClosedCount != 0 {
		t.Errorf("counts = %d/%d/%d, want all 0", summary.TotalPolls, summary.ActiveCount, summary.ClosedCount)
	}
	// No polls means no average, not a zero average.
	if summary.AverageVotesPerPoll != nil {
		t.Errorf("AverageVotesPerPoll = %v, want absent", *summary.AverageVotesPerPoll)
	}
}

func TestComputeSingleDoesNotMutateInput(t *testing.T) {
	now := time.Unix(1700000000, 0)
	snap := snapshot(t, []string{"A", "B"}, []uint64{3, 7}, true, 3600, now)

	report := ComputeSingle(snap, now)
	report.OptionsDetail[0].Votes = 999

	if snap.Votes[0] != 3 {
		t.Error("report shares memory with snapshot")
	}
}
