// Package export aggregates the six dashboard datasets into a sectioned CSV
// document. The six reads run concurrently behind a settle-all barrier; an
// endpoint failure degrades that endpoint to an empty dataset instead of
// aborting the export.
package export

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"pulse/api"
	"pulse/core"
)

// Exporter fans out over the dashboard read endpoints. It holds no state
// between invocations; re-invoking immediately after a completion or failure
// is safe.
type Exporter struct {
	Client *api.Client

	// Scrub, when non-nil, rewrites the snapshot before the document is
	// built (e.g. PII redaction).
	Scrub func(*core.Snapshot)
}

// Fetch issues all six reads concurrently and waits for every one to settle.
// Failed endpoints come back as empty datasets; their errors, wrapped with
// the endpoint name, are returned for logging.
func (e *Exporter) Fetch(ctx context.Context) (core.Snapshot, []error) {
	snap := core.Snapshot{FetchedAt: time.Now()}

	fetches := []struct {
		name string
		fn   func() error
	}{
		{"metrics", func() (err error) { snap.Metrics, err = e.Client.Metrics(ctx); return }},
		{"sentiment", func() (err error) { snap.Sentiment, err = e.Client.Sentiment(ctx); return }},
		{"topics", func() (err error) { snap.Topics, err = e.Client.Topics(ctx); return }},
		{"sources", func() (err error) { snap.Sources, err = e.Client.Sources(ctx); return }},
		{"mentions", func() (err error) { snap.Mentions, err = e.Client.Mentions(ctx); return }},
		{"insights", func() (err error) { snap.Insights, err = e.Client.Insights(ctx); return }},
	}

	outcomes := make([]error, len(fetches))
	var wg sync.WaitGroup
	wg.Add(len(fetches))
	for i, f := range fetches {
		go func(i int, name string, fn func() error) {
			defer wg.Done()
			if err := fn(); err != nil {
				outcomes[i] = fmt.Errorf("%s: %w", name, err)
			}
		}(i, f.name, f.fn)
	}
	wg.Wait()

	var errs []error
	for _, err := range outcomes {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return snap, errs
}

// Section is one named, column-projected table in the document.
type Section struct {
	Label   string
	Columns []string
	Rows    [][]string
}

// Document is the completed export: ordered non-empty sections, immutable
// once built.
type Document struct {
	Sections []Section
}

// BuildDocument projects the snapshot into sections in the canonical order:
// Metrics, Sentiment, Topics, Sources, Mentions, Insights. Empty datasets
// contribute no section.
func BuildDocument(snap core.Snapshot) Document {
	var doc Document

	add := func(label string, columns []string, rows [][]string) {
		if len(rows) == 0 {
			return
		}
		doc.Sections = append(doc.Sections, Section{Label: label, Columns: columns, Rows: rows})
	}

	add("METRICS", metricColumns, metricRows(snap.Metrics))
	add("SENTIMENT DATA", sentimentColumns, sentimentRows(snap.Sentiment))
	add("TOPICS", topicColumns, topicRows(snap.Topics))
	add("SOURCES", sourceColumns, sourceRows(snap.Sources))
	add("RECENT MENTIONS", mentionColumns, mentionRows(snap.Mentions))
	add("AI INSIGHTS", insightColumns, insightRows(snap.Insights))

	return doc
}

// String renders the document: each section as a bracketed label line plus
// CSV body, sections separated by a blank line.
func (d Document) String() string {
	var b strings.Builder
	for i, s := range d.Sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("=== " + s.Label + " ===\n")
		writeCSV(&b, s.Columns, s.Rows)
	}
	if len(d.Sections) > 0 {
		b.WriteByte('\n')
	}
	return b.String()
}

// Fixed column projections per endpoint. These are the export contract, not
// a dump of whatever fields the structs happen to carry.
var (
	metricColumns    = []string{"title", "value", "change", "trend", "icon", "color"}
	sentimentColumns = []string{"day", "positive", "neutral", "negative"}
	topicColumns     = []string{"text", "count", "sentiment"}
	sourceColumns    = []string{"name", "value", "color"}
	mentionColumns   = []string{"id", "author", "platform", "content", "sentiment", "timestamp", "topic"}
	insightColumns   = []string{"icon", "title", "priority", "description", "advice"}
)

func metricRows(in []core.Metric) [][]string {
	rows := make([][]string, 0, len(in))
	for _, m := range in {
		rows = append(rows, []string{m.Title, m.Value, m.Change, string(m.Trend), m.Icon, m.Color})
	}
	return rows
}

func sentimentRows(in []core.SentimentData) [][]string {
	rows := make([][]string, 0, len(in))
	for _, s := range in {
		rows = append(rows, []string{s.Day, strconv.Itoa(s.Positive), strconv.Itoa(s.Neutral), strconv.Itoa(s.Negative)})
	}
	return rows
}

func topicRows(in []core.Topic) [][]string {
	rows := make([][]string, 0, len(in))
	for _, t := range in {
		rows = append(rows, []string{t.Text, strconv.Itoa(t.Count), string(t.Sentiment)})
	}
	return rows
}

func sourceRows(in []core.SourceData) [][]string {
	rows := make([][]string, 0, len(in))
	for _, s := range in {
		rows = append(rows, []string{s.Name, strconv.Itoa(s.Value), s.Color})
	}
	return rows
}

func mentionRows(in []core.Mention) [][]string {
	rows := make([][]string, 0, len(in))
	for _, m := range in {
		rows = append(rows, []string{strconv.Itoa(m.ID), m.Author, m.Platform, m.Content, string(m.Sentiment), m.Timestamp, m.Topic})
	}
	return rows
}

func insightRows(in []core.Insight) [][]string {
	rows := make([][]string, 0, len(in))
	for _, i := range in {
		rows = append(rows, []string{i.Icon, i.Title, string(i.Priority), i.Description, i.Advice})
	}
	return rows
}
