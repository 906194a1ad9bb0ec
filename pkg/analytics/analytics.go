// Package analytics derives human-meaningful statistics from raw poll
// tallies fetched from the polls contract. All functions are pure: they
// copy their input, take the current time as a parameter, and never
// perform I/O, so they are safe to call concurrently.
package analytics

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSnapshot is returned when a snapshot's options and votes do
// not line up index-for-index.
var ErrInvalidSnapshot = errors.New("analytics: options and votes length mismatch")

// PollSnapshot is a point-in-time copy of one poll's on-chain state.
// votes[i] is the tally for options[i]; TotalVotes is trusted to equal
// the sum of votes (the contract enforces it, the engine does not).
type PollSnapshot struct {
	ID         uint64   `json:"id"`
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Votes      []uint64 `json:"votes"`
	TotalVotes uint64   `json:"total_votes"`
	CreatedAt  int64    `json:"created_at"`
	EndTime    int64    `json:"end_time"`
	IsActive   bool     `json:"is_active"`
}

// NewPollSnapshot builds a snapshot from already-fetched contract data.
// This is the only place shape is checked; everything downstream can
// assume options and votes are aligned.
func NewPollSnapshot(id uint64, question string, options []string, votes []uint64, totalVotes uint64, createdAt, endTime int64, isActive bool) (PollSnapshot, error) {
	if len(options) != len(votes) {
		return PollSnapshot{}, fmt.Errorf("%w: %d options, %d tallies", ErrInvalidSnapshot, len(options), len(votes))
	}

	snap := PollSnapshot{
		ID:         id,
		Question:   question,
		Options:    append([]string(nil), options...),
		Votes:      append([]uint64(nil), votes...),
		TotalVotes: totalVotes,
		CreatedAt:  createdAt,
		EndTime:    endTime,
		IsActive:   isActive,
	}
	return snap, nil
}

// OptionDetail is the per-option breakdown inside an AnalyticsReport.
type OptionDetail struct {
	Index      int     `json:"index"`
	Option     string  `json:"option"`
	Votes      uint64  `json:"votes"`
	Percentage float64 `json:"percentage"`
}

// AnalyticsReport is the derived view of a single poll. It is plain
// data: rendering (text, JSON, CSV) is a separate concern.
type AnalyticsReport struct {
	PollID            uint64         `json:"poll_id"`
	Question          string         `json:"question"`
	TotalVotes        uint64         `json:"total_votes"`
	ParticipationRate float64        `json:"participation_rate"`
	LeadingOption     string         `json:"leading_option"`
	Margin            float64        `json:"margin"`
	TimeRemaining     string         `json:"time_remaining,omitempty"`
	CreatedAt         int64          `json:"created_at"`
	OptionsDetail     []OptionDetail `json:"options_detail"`
}

// Time remaining labels for polls that can no longer be voted on.
const (
	RemainingClosed  = "Closed"
	RemainingExpired = "Expired"
)

// ComputeSingle derives the analytics report for one poll. A snapshot
// with no options yields a report with zero percentages and no leading
// option; it is a degenerate case, not an error.
func ComputeSingle(poll PollSnapshot, now time.Time) AnalyticsReport {
	leading, maxVotes := leadingOption(poll.Options, poll.Votes)
	second := secondHighestDistinct(poll.Votes, maxVotes)

	detail := make([]OptionDetail, len(poll.Options))
	voted := 0
	for i, option := range poll.Options {
		if poll.Votes[i] > 0 {
			voted++
		}
		detail[i] = OptionDetail{
			Index:      i,
			Option:     option,
			Votes:      poll.Votes[i],
			Percentage: percentage(poll.Votes[i], poll.TotalVotes),
		}
	}

	return AnalyticsReport{
		PollID:            poll.ID,
		Question:          poll.Question,
		TotalVotes:        poll.TotalVotes,
		ParticipationRate: percentage(uint64(voted), uint64(len(poll.Options))),
		LeadingOption:     leading,
		Margin:            percentage(maxVotes-second, poll.TotalVotes),
		TimeRemaining:     timeRemaining(poll.IsActive, poll.EndTime, now),
		CreatedAt:         poll.CreatedAt,
		OptionsDetail:     detail,
	}
}

// leadingOption scans options and tallies once, in order. The first
// option holding the maximum tally wins; later ties never displace it.
func leadingOption(options []string, votes []uint64) (string, uint64) {
	leading := ""
	var maxVotes uint64
	if len(options) > 0 {
		leading = options[0]
		maxVotes = votes[0]
	}
	for i := 1; i < len(options); i++ {
		if votes[i] > maxVotes {
			maxVotes = votes[i]
			leading = options[i]
		}
	}
	return leading, maxVotes
}

// secondHighestDistinct returns the highest tally strictly below max,
// or 0 when every option is tied at max (or there is only one option).
// Margin is measured against the next distinct value, not the
// second-ranked option: options tied for the lead are skipped, so the
// gap is taken to the best trailing tally instead of being 0.
func secondHighestDistinct(votes []uint64, max uint64) uint64 {
	var second uint64
	for _, v := range votes {
		if v < max && v > second {
			second = v
		}
	}
	return second
}

// percentage is the single division-by-zero policy for the engine:
// any ratio over an empty total is 0, never NaN, never an error.
func percentage(part, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// timeRemaining classifies a poll's clock state. Closed is reported
// regardless of the end time; an active poll past its end time is
// Expired; otherwise the remaining span is formatted as whole days and
// whole leftover hours.
func timeRemaining(isActive bool, endTime int64, now time.Time) string {
	if !isActive {
		return RemainingClosed
	}
	secs := endTime - now.Unix()
	if secs <= 0 {
		return RemainingExpired
	}
	days := secs / 86400
	hours := (secs % 86400) / 3600
	return fmt.Sprintf("%d days, %d hours", days, hours)
}

// PollStatus is one row of a SystemSummary.
type PollStatus struct {
	PollID     uint64 `json:"poll_id"`
	Question   string `json:"question"`
	TotalVotes uint64 `json:"total_votes"`
	Active     bool   `json:"active"`
}

// SystemSummary aggregates every poll in the system. The average is a
// pointer so an empty system reports it as absent rather than zero.
type SystemSummary struct {
	TotalPolls          int          `json:"total_polls"`
	ActiveCount         int          `json:"active_polls"`
	ClosedCount         int          `json:"closed_polls"`
	TotalSystemVotes    uint64       `json:"total_votes_cast"`
	AverageVotesPerPoll *float64     `json:"average_votes_per_poll,omitempty"`
	Polls               []PollStatus `json:"polls"`
}

// ComputeAggregate reduces a list of snapshots into a SystemSummary in
// one pass. A poll counts as active only while its flag is set and its
// end time is still ahead of now; a flagged poll past its end time is
// counted as closed.
func ComputeAggregate(polls []PollSnapshot, now time.Time) SystemSummary {
	summary := SystemSummary{
		TotalPolls: len(polls),
		Polls:      make([]PollStatus, 0, len(polls)),
	}

	for _, poll := range polls {
		active := poll.IsActive && poll.EndTime > now.Unix()
		if active {
			summary.ActiveCount++
		} else {
			summary.ClosedCount++
		}
		summary.TotalSystemVotes += poll.TotalVotes
		summary.Polls = append(summary.Polls, PollStatus{
			PollID:     poll.ID,
			Question:   poll.Question,
			TotalVotes: poll.TotalVotes,
			Active:     active,
		})
	}

	if len(polls) > 0 {
		avg := float64(summary.TotalSystemVotes) / float64(len(polls))
		summary.AverageVotesPerPoll = &avg
	}
	return summary
}
