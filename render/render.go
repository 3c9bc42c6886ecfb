// Package render defines the interface for rendering dashboard snapshots
// into various output formats.
package render

import (
	"io"

	"pulse/core"
)

// Renderer writes a snapshot to the given writer in a specific format.
type Renderer interface {
	Render(w io.Writer, snap *core.Snapshot) error
}
