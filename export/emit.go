package export

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// Emitter receives a completed document as one atomic unit.
type Emitter interface {
	Emit(filename string, data []byte) error
}

// FileEmitter writes documents into Dir via a temporary file and rename, so
// a reader never observes a partially written export.
type FileEmitter struct {
	Dir string
}

func (e FileEmitter) Emit(filename string, data []byte) error {
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filename+"-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, filepath.Join(dir, filename))
}

// Filename returns the export name for the given date, e.g.
// dashboard-export-2026-08-30.csv.
func Filename(now time.Time) string {
	return "dashboard-export-" + now.Format("2006-01-02") + ".csv"
}

// ExportAll fetches every dataset, builds the document, and hands it to the
// emitter. Endpoint failures degrade to missing sections and come back in
// skipped; only an emit failure fails the export itself.
func (e *Exporter) ExportAll(ctx context.Context, em Emitter) (name string, skipped []error, err error) {
	snap, skipped := e.Fetch(ctx)
	if e.Scrub != nil {
		e.Scrub(&snap)
	}
	doc := BuildDocument(snap)

	name = Filename(time.Now())
	if err := em.Emit(name, []byte(doc.String())); err != nil {
		return "", skipped, err
	}
	return name, skipped, nil
}
