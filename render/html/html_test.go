package html

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse/core"
)

func TestRenderSnapshot(t *testing.T) {
	snap := &core.Snapshot{
		FetchedAt: time.Now(),
		Metrics: []core.Metric{
			{Title: "citizenSatisfaction", Value: "72%", Change: "+4.3%", Trend: core.TrendUp},
		},
		Topics: []core.Topic{
			{Text: "verkeer", Count: 245, Sentiment: core.SentimentNegative},
		},
		Insights: []core.Insight{
			{Title: "Verkeer escaleert", Priority: core.PriorityHigh, Description: "Meldingen stijgen **snel**.", Advice: "Plan een schouw."},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, snap))
	out := buf.String()

	assert.Contains(t, out, "Civic Pulse")
	assert.Contains(t, out, "72%")
	assert.Contains(t, out, "verkeer")
	assert.Contains(t, out, "text-red-600", "negative topic gets the red class")
	assert.Contains(t, out, "<strong>snel</strong>", "insight markdown is rendered")
	assert.Contains(t, out, "bg-red-100", "high priority badge class")
	assert.NotContains(t, out, "Sentiment by day", "empty sections are omitted")
}

func TestRenderEmptySnapshot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, &core.Snapshot{}))

	out := buf.String()
	assert.Contains(t, out, "Civic Pulse")
	assert.NotContains(t, out, "Metrics")
	assert.NotContains(t, out, "Recent mentions")
}
