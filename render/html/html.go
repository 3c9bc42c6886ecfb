// Package html renders a dashboard snapshot as a standalone HTML report
// styled with Tailwind CSS v4 (CDN). Insight text is rendered as markdown
// via goldmark.
package html

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"pulse/core"
)

//go:embed templates/*.html
var content embed.FS

// Renderer renders a snapshot to a standalone HTML page.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// New creates an HTML Renderer with goldmark configured for GFM.
func New() *Renderer {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}

	r.tmpl = template.Must(
		template.New("page.html").
			Funcs(template.FuncMap{
				"markdown":       r.markdown,
				"sentimentClass": sentimentClass,
				"priorityClass":  priorityClass,
				"relative":       core.RelativeTime,
			}).
			ParseFS(content, "templates/*.html"),
	)
	return r
}

// Render writes the snapshot as a complete HTML page to w.
func (r *Renderer) Render(w io.Writer, snap *core.Snapshot) error {
	return r.tmpl.ExecuteTemplate(w, "page.html", snap)
}

// markdown converts markdown source to HTML for template embedding.
func (r *Renderer) markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		// Fall back to the raw text, escaped by the template engine upstream.
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// sentimentClass maps a sentiment to its text color class. Unknown values
// render in the neutral color.
func sentimentClass(s core.Sentiment) string {
	switch s {
	case core.SentimentPositive:
		return "text-emerald-600"
	case core.SentimentNegative:
		return "text-red-600"
	case core.SentimentNeutral:
		return "text-slate-500"
	default:
		return "text-slate-500"
	}
}

// priorityClass maps an insight priority to its badge class.
func priorityClass(p core.Priority) string {
	switch p {
	case core.PriorityHigh:
		return "bg-red-100 text-red-700"
	case core.PriorityMedium:
		return "bg-amber-100 text-amber-700"
	case core.PriorityLow:
		return "bg-slate-100 text-slate-600"
	default:
		return "bg-slate-100 text-slate-600"
	}
}
