// Package json renders a snapshot as JSON (serializes the normalized model
// as-is).
package json

import (
	"encoding/json"
	"io"

	"pulse/core"
)

// Renderer renders a snapshot to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// New creates a JSON Renderer with indentation enabled.
func New() *Renderer {
	return &Renderer{Indent: true}
}

// Render writes the snapshot as JSON to w.
func (r *Renderer) Render(w io.Writer, snap *core.Snapshot) error {
	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(snap)
}
