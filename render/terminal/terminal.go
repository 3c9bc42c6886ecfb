// Package terminal renders dashboard snapshots and chat transcripts as
// ANSI-colored sections.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/term"

	"pulse/core"
)

const defaultWidth = 100

// Renderer pretty-prints a snapshot as sectioned cards to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the snapshot as ANSI-colored sections to w.
func (r *Renderer) Render(w io.Writer, snap *core.Snapshot) error {
	width := r.termWidth()

	writeHeader(w, snap)

	if len(snap.Metrics) > 0 {
		writeSection(w, "METRICS", width)
		writeMetrics(w, snap.Metrics)
	}
	if len(snap.Sentiment) > 0 {
		writeSection(w, "SENTIMENT", width)
		writeSentiment(w, snap.Sentiment)
	}
	if len(snap.Topics) > 0 {
		writeSection(w, "TOPICS", width)
		writeTopics(w, snap.Topics)
	}
	if len(snap.Sources) > 0 {
		writeSection(w, "SOURCES", width)
		writeSources(w, snap.Sources)
	}
	if len(snap.Mentions) > 0 {
		writeSection(w, "RECENT MENTIONS", width)
		writeMentions(w, snap.Mentions, width)
	}
	if len(snap.Insights) > 0 {
		writeSection(w, "AI INSIGHTS", width)
		writeInsights(w, snap.Insights, width)
	}

	fmt.Fprintln(w)
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

func writeHeader(w io.Writer, snap *core.Snapshot) {
	fmt.Fprintln(w, styleTitle.Render("Civic Pulse"))
	if !snap.FetchedAt.IsZero() {
		fmt.Fprintln(w, styleMeta.Render("fetched "+core.RelativeTime(snap.FetchedAt)))
	}
}

// writeSection renders a section heading with a horizontal rule.
func writeSection(w io.Writer, label string, width int) {
	n := min(width, 72)
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleSeparator.Render(strings.Repeat("─", n)))
	fmt.Fprintln(w, " "+styleSection.Render(label))
	fmt.Fprintln(w)
}

// writeMetrics renders one line per metric card: value, trend+change, title.
func writeMetrics(w io.Writer, metrics []core.Metric) {
	for _, m := range metrics {
		change := trendStyle(m.Trend).Render(m.Trend.Arrow() + m.Change)
		fmt.Fprintf(w, "  %s %s  %s\n",
			styleValue.Render(fmt.Sprintf("%-8s", m.Value)),
			change,
			styleLabel.Render(m.Title),
		)
	}
}

func writeSentiment(w io.Writer, days []core.SentimentData) {
	for _, d := range days {
		fmt.Fprintf(w, "  %-10s %s  %s  %s\n",
			d.Day,
			stylePositive.Render(fmt.Sprintf("+%d", d.Positive)),
			styleNeutral.Render(fmt.Sprintf("•%d", d.Neutral)),
			styleNegative.Render(fmt.Sprintf("-%d", d.Negative)),
		)
	}
}

func writeTopics(w io.Writer, topics []core.Topic) {
	var parts []string
	for _, t := range topics {
		parts = append(parts, sentimentStyle(t.Sentiment).Render(t.Text)+styleMeta.Render(fmt.Sprintf("×%s", formatNumber(t.Count))))
	}
	fmt.Fprintln(w, "  "+strings.Join(parts, "  "))
}

func writeSources(w io.Writer, sources []core.SourceData) {
	for _, s := range sources {
		fmt.Fprintf(w, "  %-16s %s\n", s.Name, styleValue.Render(formatNumber(s.Value)))
	}
}

func writeMentions(w io.Writer, mentions []core.Mention, width int) {
	contentWidth := max(width-4, 40)
	for _, m := range mentions {
		meta := fmt.Sprintf("%s  %s  %s", m.Author, m.Platform, m.Timestamp)
		fmt.Fprintln(w, "  "+sentimentStyle(m.Sentiment).Render("●")+" "+styleMeta.Render(meta))
		fmt.Fprintln(w, "    "+truncate(m.Content, contentWidth))
	}
}

func writeInsights(w io.Writer, insights []core.Insight, width int) {
	contentWidth := max(width-4, 40)
	for _, in := range insights {
		badge := priorityStyle(in.Priority).Render("[" + strings.ToUpper(string(in.Priority)) + "]")
		fmt.Fprintln(w, "  "+badge+" "+styleValue.Render(in.Title))
		if in.Description != "" {
			fmt.Fprintln(w, "    "+truncate(in.Description, contentWidth))
		}
		if in.Advice != "" {
			fmt.Fprintln(w, "    "+styleMeta.Render("→ "+truncate(in.Advice, contentWidth-2)))
		}
	}
}

// WriteMessage renders one chat message as a role-badged card. Used by the
// interactive chat loop to print turns as they land.
func WriteMessage(w io.Writer, msg core.ChatMessage) {
	badge := styleAssistantBadge.Render("ASSISTANT")
	if msg.Role == core.RoleUser {
		badge = styleUserBadge.Render("YOU")
	}
	fmt.Fprintln(w, " "+badge)
	for _, line := range strings.Split(strings.TrimSpace(msg.Content), "\n") {
		fmt.Fprintln(w, "  "+line)
	}
	fmt.Fprintln(w)
}

// WriteTranscript renders a whole chat transcript.
func WriteTranscript(w io.Writer, msgs []core.ChatMessage) {
	for _, m := range msgs {
		WriteMessage(w, m)
	}
}

// truncate shortens text to maxWidth, appending "..." if needed. Multi-line
// text is reduced to the first line.
func truncate(s string, maxWidth int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if maxWidth > 3 && len(s) > maxWidth {
		return s[:maxWidth-3] + "..."
	}
	return s
}

// formatNumber renders n with thousands separators (4132 → "4,132").
func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
