package api

import (
	"context"

	"pulse/core"
)

// Metrics fetches the headline metric cards.
func (c *Client) Metrics(ctx context.Context) ([]core.Metric, error) {
	var out []core.Metric
	return out, c.getJSON(ctx, "/api/dashboard/metrics", &out)
}

// Sentiment fetches the per-day sentiment breakdown.
func (c *Client) Sentiment(ctx context.Context) ([]core.SentimentData, error) {
	var out []core.SentimentData
	return out, c.getJSON(ctx, "/api/dashboard/sentiment", &out)
}

// Topics fetches the word cloud topics.
func (c *Client) Topics(ctx context.Context) ([]core.Topic, error) {
	var out []core.Topic
	return out, c.getJSON(ctx, "/api/dashboard/topics", &out)
}

// Sources fetches the source breakdown.
func (c *Client) Sources(ctx context.Context) ([]core.SourceData, error) {
	var out []core.SourceData
	return out, c.getJSON(ctx, "/api/dashboard/sources", &out)
}

// Mentions fetches recent citizen mentions.
func (c *Client) Mentions(ctx context.Context) ([]core.Mention, error) {
	var out []core.Mention
	return out, c.getJSON(ctx, "/api/dashboard/mentions", &out)
}

// Insights fetches AI-generated insights.
func (c *Client) Insights(ctx context.Context) ([]core.Insight, error) {
	var out []core.Insight
	return out, c.getJSON(ctx, "/api/dashboard/insights", &out)
}

// ChatResponse is the assistant's reply to one message.
type ChatResponse struct {
	Response string `json:"response"`
}

// SendMessage posts one user message to the assistant.
func (c *Client) SendMessage(ctx context.Context, message string) (ChatResponse, error) {
	in := struct {
		Message string `json:"message"`
	}{Message: message}
	var out ChatResponse
	return out, c.postJSON(ctx, "/chat/", in, &out)
}

// ClearResponse acknowledges a cleared chat history.
type ClearResponse struct {
	Message string `json:"message"`
}

// ClearChat resets the server-side conversation history.
func (c *Client) ClearChat(ctx context.Context) (ClearResponse, error) {
	var out ClearResponse
	return out, c.delete(ctx, "/chat/", &out)
}
