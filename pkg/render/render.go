// Package render turns analytics records and poll exports into
// terminal output. The computation side hands over plain data; every
// format here (styled text, JSON, CSV, table) is interchangeable.
package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/yourusername/polls-cli/pkg/analytics"
)

// PollExport is the flattened, serialization-ready view of one poll.
type PollExport struct {
	ID         uint64   `json:"id"`
	Question   string   `json:"question"`
	Creator    string   `json:"creator"`
	CreatedAt  string   `json:"created_at"`
	EndTime    string   `json:"end_time"`
	IsActive   bool     `json:"is_active"`
	TotalVotes uint64   `json:"total_votes"`
	Options    []string `json:"options"`
	Votes      []uint64 `json:"votes"`
}

// NewPollExport flattens a snapshot into an export record.
func NewPollExport(snap analytics.PollSnapshot, creator string) PollExport {
	return PollExport{
		ID:         snap.ID,
		Question:   snap.Question,
		Creator:    creator,
		CreatedAt:  FormatTimestamp(snap.CreatedAt),
		EndTime:    FormatTimestamp(snap.EndTime),
		IsActive:   snap.IsActive,
		TotalVotes: snap.TotalVotes,
		Options:    snap.Options,
		Votes:      snap.Votes,
	}
}

// FormatTimestamp renders a unix timestamp the way every command
// displays times.
func FormatTimestamp(ts int64) string {
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04:05 UTC")
}

// Renderer writes one of the engine's output records in a concrete
// format.
type Renderer interface {
	Export(w io.Writer, e PollExport) error
	Analytics(w io.Writer, r analytics.AnalyticsReport) error
	Summary(w io.Writer, s analytics.SystemSummary) error
}

// New selects a renderer by format name.
func New(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "text":
		return TextRenderer{}, nil
	case "json":
		return jsonRenderer{}, nil
	case "csv":
		return csvRenderer{}, nil
	case "table":
		return tableRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q, use: text, json, csv, table", format)
	}
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	activeTag   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("Active")
	closedTag   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("Closed")
)

// Bar renders a percentage as a block bar, one block per two percent,
// matching the results view's scale.
func Bar(percentage float64) string {
	return strings.Repeat("█", int(percentage/2))
}

// TextRenderer is the default styled terminal output.
type TextRenderer struct{}

// Export writes a labeled field list for one poll.
func (TextRenderer) Export(w io.Writer, e PollExport) error {
	fmt.Fprintln(w, headerStyle.Render("Poll Details"))
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("ID:"), e.ID)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Question:"), e.Question)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Creator:"), e.Creator)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Created:"), e.CreatedAt)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("End Time:"), e.EndTime)
	status := closedTag
	if e.IsActive {
		status = activeTag
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Status:"), status)
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("Total Votes:"), e.TotalVotes)
	fmt.Fprintln(w, labelStyle.Render("Options:"))
	for i, option := range e.Options {
		fmt.Fprintf(w, "  %d: %s (%d votes)\n", i, option, e.Votes[i])
	}
	return nil
}

// Analytics writes the single-poll analytics view with a bar chart.
func (TextRenderer) Analytics(w io.Writer, r analytics.AnalyticsReport) error {
	fmt.Fprintln(w, headerStyle.Render("POLL ANALYTICS"))
	fmt.Fprintln(w, strings.Repeat("═", 50))
	fmt.Fprintf(w, "%s %d - %s\n", labelStyle.Render("Poll ID:"), r.PollID, r.Question)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Total Votes:"), valueStyle.Render(strconv.FormatUint(r.TotalVotes, 10)))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Leading Option:"), valueStyle.Render(r.LeadingOption))
	fmt.Fprintf(w, "%s %.1f%%\n", labelStyle.Render("Margin:"), r.Margin)
	fmt.Fprintf(w, "%s %.1f%%\n", labelStyle.Render("Participation:"), r.ParticipationRate)
	if r.TimeRemaining != "" {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Time Remaining:"), r.TimeRemaining)
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Created:"), FormatTimestamp(r.CreatedAt))

	fmt.Fprintln(w, headerStyle.Render("\nDETAILED RESULTS"))
	fmt.Fprintln(w, strings.Repeat("─", 50))
	for _, d := range r.OptionsDetail {
		fmt.Fprintf(w, "%s: %d votes (%.1f%%) %s\n", d.Option, d.Votes, d.Percentage, barStyle.Render(Bar(d.Percentage)))
	}
	return nil
}

// Summary writes the system-wide aggregate view.
func (TextRenderer) Summary(w io.Writer, s analytics.SystemSummary) error {
	for _, p := range s.Polls {
		status := closedTag
		if p.Active {
			status = activeTag
		}
		fmt.Fprintf(w, "%s %d - %s\n", labelStyle.Render("Poll"), p.PollID, p.Question)
		fmt.Fprintf(w, "  %s %d | %s %s\n", labelStyle.Render("Votes:"), p.TotalVotes, labelStyle.Render("Status:"), status)
	}

	fmt.Fprintln(w, headerStyle.Render("\nSYSTEM SUMMARY"))
	fmt.Fprintln(w, strings.Repeat("═", 30))
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("Total Polls:"), s.TotalPolls)
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("Active Polls:"), s.ActiveCount)
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("Closed Polls:"), s.ClosedCount)
	fmt.Fprintf(w, "%s %d\n", labelStyle.Render("Total Votes Cast:"), s.TotalSystemVotes)
	if s.AverageVotesPerPoll != nil {
		fmt.Fprintf(w, "%s %.1f\n", labelStyle.Render("Average Votes per Poll:"), *s.AverageVotesPerPoll)
	}
	return nil
}

type jsonRenderer struct{}

func (jsonRenderer) Export(w io.Writer, e PollExport) error {
	return writeJSON(w, e)
}

func (jsonRenderer) Analytics(w io.Writer, r analytics.AnalyticsReport) error {
	return writeJSON(w, r)
}

func (jsonRenderer) Summary(w io.Writer, s analytics.SystemSummary) error {
	return writeJSON(w, s)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type csvRenderer struct{}

// Export writes one row per option; poll-level fields repeat on each
// row so the file stays flat.
func (csvRenderer) Export(w io.Writer, e PollExport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "question", "creator", "created_at", "end_time", "is_active", "total_votes", "option", "votes"}); err != nil {
		return err
	}
	for i, option := range e.Options {
		row := []string{
			strconv.FormatUint(e.ID, 10),
			e.Question,
			e.Creator,
			e.CreatedAt,
			e.EndTime,
			strconv.FormatBool(e.IsActive),
			strconv.FormatUint(e.TotalVotes, 10),
			option,
			strconv.FormatUint(e.Votes[i], 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (csvRenderer) Analytics(w io.Writer, r analytics.AnalyticsReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"poll_id", "question", "option", "votes", "percentage", "leading_option", "margin", "time_remaining"}); err != nil {
		return err
	}
	for _, d := range r.OptionsDetail {
		row := []string{
			strconv.FormatUint(r.PollID, 10),
			r.Question,
			d.Option,
			strconv.FormatUint(d.Votes, 10),
			strconv.FormatFloat(d.Percentage, 'f', 1, 64),
			r.LeadingOption,
			strconv.FormatFloat(r.Margin, 'f', 1, 64),
			r.TimeRemaining,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (csvRenderer) Summary(w io.Writer, s analytics.SystemSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"poll_id", "question", "total_votes", "active"}); err != nil {
		return err
	}
	for _, p := range s.Polls {
		row := []string{
			strconv.FormatUint(p.PollID, 10),
			p.Question,
			strconv.FormatUint(p.TotalVotes, 10),
			strconv.FormatBool(p.Active),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type tableRenderer struct{}

func (tableRenderer) Export(w io.Writer, e PollExport) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "QUESTION", "CREATOR", "CREATED", "ENDS", "ACTIVE", "TOTAL", "OPTIONS", "VOTES")
	t.Row(
		strconv.FormatUint(e.ID, 10),
		e.Question,
		e.Creator,
		e.CreatedAt,
		e.EndTime,
		strconv.FormatBool(e.IsActive),
		strconv.FormatUint(e.TotalVotes, 10),
		strings.Join(e.Options, ", "),
		joinUints(e.Votes),
	)
	fmt.Fprintln(w, t.Render())
	return nil
}

func (tableRenderer) Analytics(w io.Writer, r analytics.AnalyticsReport) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("OPTION", "VOTES", "PERCENT")
	for _, d := range r.OptionsDetail {
		t.Row(d.Option, strconv.FormatUint(d.Votes, 10), fmt.Sprintf("%.1f%%", d.Percentage))
	}
	fmt.Fprintln(w, t.Render())
	return nil
}

func (tableRenderer) Summary(w io.Writer, s analytics.SystemSummary) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("POLL", "QUESTION", "VOTES", "ACTIVE")
	for _, p := range s.Polls {
		t.Row(strconv.FormatUint(p.PollID, 10), p.Question, strconv.FormatUint(p.TotalVotes, 10), strconv.FormatBool(p.Active))
	}
	fmt.Fprintln(w, t.Render())
	return nil
}

func joinUints(vals []uint64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return strings.Join(parts, ", ")
}
