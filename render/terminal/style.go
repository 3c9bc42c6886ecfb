package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"pulse/core"
)

var (
	// Sentiment colors — emerald for positive, slate for neutral, red for
	// negative.
	colorPositive = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}
	colorNeutral  = lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#94a3b8"}
	colorNegative = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}

	// UI colors.
	colorBright = lipgloss.AdaptiveColor{Light: "#0f172a", Dark: "#f1f5f9"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#64748b"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"} // blue
	colorAlert  = lipgloss.AdaptiveColor{Light: "#d97706", Dark: "#fbbf24"} // amber
)

var (
	styleTitle   = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleSection = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleMeta    = lipgloss.NewStyle().Foreground(colorDim)

	styleValue = lipgloss.NewStyle().Foreground(colorBright).Bold(true)
	styleLabel = lipgloss.NewStyle().Foreground(colorDim)

	stylePositive = lipgloss.NewStyle().Foreground(colorPositive)
	styleNeutral  = lipgloss.NewStyle().Foreground(colorNeutral)
	styleNegative = lipgloss.NewStyle().Foreground(colorNegative)

	styleHigh   = lipgloss.NewStyle().Foreground(colorNegative).Bold(true)
	styleMedium = lipgloss.NewStyle().Foreground(colorAlert)
	styleLow    = lipgloss.NewStyle().Foreground(colorDim)

	styleUserBadge      = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleAssistantBadge = lipgloss.NewStyle().Foreground(colorPositive).Bold(true)

	styleSeparator = lipgloss.NewStyle().Foreground(colorDim)
)

// sentimentStyle picks the color for a sentiment value. Unknown values fall
// through to the neutral style instead of being dropped.
func sentimentStyle(s core.Sentiment) lipgloss.Style {
	switch s {
	case core.SentimentPositive:
		return stylePositive
	case core.SentimentNegative:
		return styleNegative
	case core.SentimentNeutral:
		return styleNeutral
	default:
		return styleNeutral
	}
}

// priorityStyle picks the color for an insight priority.
func priorityStyle(p core.Priority) lipgloss.Style {
	switch p {
	case core.PriorityHigh:
		return styleHigh
	case core.PriorityMedium:
		return styleMedium
	case core.PriorityLow:
		return styleLow
	default:
		return styleLow
	}
}

// trendStyle picks the color for a metric trend.
func trendStyle(t core.Trend) lipgloss.Style {
	switch t {
	case core.TrendUp:
		return stylePositive
	case core.TrendDown:
		return styleNegative
	default:
		return styleNeutral
	}
}
