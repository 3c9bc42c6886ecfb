package export

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/api"
	"pulse/core"
)

// dashServer serves the six read endpoints. Paths listed in fail return 500;
// paths listed in empty return an empty array.
func dashServer(t *testing.T, fail, empty map[string]bool) *httptest.Server {
	t.Helper()

	bodies := map[string]string{
		"metrics":   `[{"title":"citizenSatisfaction","value":"72%","change":"+4.3%","trend":"up","icon":"ThumbsUp","color":"text-chart-1"}]`,
		"sentiment": `[{"day":"monday","positive":45,"neutral":30,"negative":25},{"day":"tuesday","positive":52,"neutral":28,"negative":20}]`,
		"topics":    `[{"text":"verkeer","count":245,"sentiment":"negative"}]`,
		"sources":   `[{"name":"Twitter/X","value":45,"color":"#1DA1F2"}]`,
		"mentions":  `[{"id":1,"author":"@jan","platform":"Twitter","content":"Te veel verkeer, echt","sentiment":"negative","timestamp":"2h ago","topic":"verkeer"}]`,
		"insights":  `[{"icon":"TrendingUp","title":"Verkeer escaleert","priority":"high","description":"Meldingen stijgen","advice":"Plan een verkeersschouw"}]`,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/api/dashboard/")
		switch {
		case fail[name]:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail":"backend exploded"}`))
		case empty[name]:
			w.Write([]byte(`[]`))
		default:
			body, ok := bodies[name]
			require.True(t, ok, "unexpected path %s", r.URL.Path)
			w.Write([]byte(body))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAllSucceed(t *testing.T) {
	srv := dashServer(t, nil, nil)
	e := &Exporter{Client: api.New(srv.URL)}

	snap, errs := e.Fetch(context.Background())
	assert.Empty(t, errs)
	assert.Len(t, snap.Metrics, 1)
	assert.Len(t, snap.Sentiment, 2)
	assert.Len(t, snap.Topics, 1)
	assert.Len(t, snap.Sources, 1)
	assert.Len(t, snap.Mentions, 1)
	assert.Len(t, snap.Insights, 1)
}

func TestFetchDegradesFailuresToEmpty(t *testing.T) {
	srv := dashServer(t, map[string]bool{"metrics": true, "insights": true}, nil)
	e := &Exporter{Client: api.New(srv.URL)}

	snap, errs := e.Fetch(context.Background())
	require.Len(t, errs, 2)
	assert.Empty(t, snap.Metrics)
	assert.Empty(t, snap.Insights)
	assert.Len(t, snap.Sentiment, 2, "healthy endpoints are unaffected")
}

func TestDocumentSectionOrderAndOmission(t *testing.T) {
	srv := dashServer(t, map[string]bool{"metrics": true}, map[string]bool{"sources": true})
	e := &Exporter{Client: api.New(srv.URL)}

	snap, errs := e.Fetch(context.Background())
	require.Len(t, errs, 1)

	doc := BuildDocument(snap)
	var labels []string
	for _, s := range doc.Sections {
		labels = append(labels, s.Label)
	}
	// No METRICS (failed), no SOURCES (legitimately empty); order is fixed.
	assert.Equal(t, []string{"SENTIMENT DATA", "TOPICS", "RECENT MENTIONS", "AI INSIGHTS"}, labels)
}

func TestDocumentString(t *testing.T) {
	snap := core.Snapshot{
		Sentiment: []core.SentimentData{
			{Day: "monday", Positive: 45, Neutral: 30, Negative: 25},
			{Day: "tuesday", Positive: 52, Neutral: 28, Negative: 20},
		},
		Mentions: []core.Mention{
			{ID: 7, Author: "@jan", Platform: "Twitter", Content: `zei "nee", nogmaals`, Sentiment: core.SentimentNegative, Timestamp: "2h ago", Topic: "verkeer"},
		},
	}

	got := BuildDocument(snap).String()

	want := "=== SENTIMENT DATA ===\n" +
		"day,positive,neutral,negative\n" +
		"monday,45,30,25\n" +
		"tuesday,52,28,20\n" +
		"\n" +
		"=== RECENT MENTIONS ===\n" +
		"id,author,platform,content,sentiment,timestamp,topic\n" +
		"7,@jan,Twitter,\"zei \"\"nee\"\", nogmaals\",negative,2h ago,verkeer\n"
	assert.Equal(t, want, got)
}

func TestDocumentEmptySnapshot(t *testing.T) {
	assert.Empty(t, BuildDocument(core.Snapshot{}).String())
}

func TestExportAllWritesFile(t *testing.T) {
	srv := dashServer(t, map[string]bool{"topics": true}, nil)
	e := &Exporter{Client: api.New(srv.URL)}

	dir := t.TempDir()
	name, skipped, err := e.ExportAll(context.Background(), FileEmitter{Dir: dir})
	require.NoError(t, err)
	assert.Len(t, skipped, 1)
	assert.Equal(t, Filename(time.Now()), name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "=== METRICS ===")
	assert.NotContains(t, content, "=== TOPICS ===")

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	// Re-invocation right after a completed export is safe.
	_, _, err = e.ExportAll(context.Background(), FileEmitter{Dir: dir})
	require.NoError(t, err)
}

func TestFilename(t *testing.T) {
	d := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "dashboard-export-2026-08-30.csv", Filename(d))
}
