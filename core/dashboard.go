// Package core defines the normalized dashboard data model — the record
// shapes the backend serves and every renderer and exporter consumes.
package core

import "time"

// Metric is one headline card on the dashboard overview.
type Metric struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  Trend  `json:"trend"`
	Icon   string `json:"icon"`
	Color  string `json:"color"`
}

// SentimentData is the per-day positive/neutral/negative breakdown.
type SentimentData struct {
	Day      string `json:"day"`
	Positive int    `json:"positive"`
	Neutral  int    `json:"neutral"`
	Negative int    `json:"negative"`
}

// Topic is one entry in the topics word cloud.
type Topic struct {
	Text      string    `json:"text"`
	Count     int       `json:"count"`
	Sentiment Sentiment `json:"sentiment"`
}

// SourceData is one slice of the source breakdown chart.
type SourceData struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Mention is a single citizen post picked up by the scraper.
type Mention struct {
	ID        int       `json:"id"`
	Author    string    `json:"author"`
	Platform  string    `json:"platform"`
	Content   string    `json:"content"`
	Sentiment Sentiment `json:"sentiment"`
	Timestamp string    `json:"timestamp"`
	Topic     string    `json:"topic"`
}

// Insight is an AI-generated recommendation.
type Insight struct {
	Icon        string   `json:"icon"`
	Title       string   `json:"title"`
	Priority    Priority `json:"priority"`
	Description string   `json:"description"`
	Advice      string   `json:"advice"`
}

// User is the authenticated profile returned by the auth endpoints.
type User struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  *string   `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot bundles the six dashboard datasets from a single fetch. A dataset
// that failed or legitimately returned nothing is an empty slice.
type Snapshot struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Metrics   []Metric        `json:"metrics"`
	Sentiment []SentimentData `json:"sentiment"`
	Topics    []Topic         `json:"topics"`
	Sources   []SourceData    `json:"sources"`
	Mentions  []Mention       `json:"mentions"`
	Insights  []Insight       `json:"insights"`
}

// Trend enumerates metric movement directions.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Arrow returns the display glyph for the trend. Unknown values render as a
// flat dash rather than being dropped.
func (t Trend) Arrow() string {
	switch t {
	case TrendUp:
		return "↑"
	case TrendDown:
		return "↓"
	default:
		return "–"
	}
}

// Sentiment enumerates sentiment classifications.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Priority enumerates insight urgency levels.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)
