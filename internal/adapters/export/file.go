package export

import (
	"context"
	"io"

	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
)

// renderFunc writes one user in a specific format.
type renderFunc func(w io.Writer, user domain.User) error

// fileExporter is the part shared by all file-based formats.
type fileExporter struct {
	format string
	ext    string
	target ports.ExportTarget
	newID  IDFunc
	render renderFunc
}

func (e *fileExporter) export(ctx context.Context, user domain.User) error {
	name := FileName(user, e.ext, e.newID)

	w, err := e.target.Create(ctx, name)
	if err != nil {
		return domain.NewExportError(e.format, err)
	}
	if err := e.render(w, user); err != nil {
		discard(w)
		return domain.NewExportError(e.format, err)
	}
	return domain.NewExportError(e.format, w.Close())
}

// aborter is implemented by writers that can drop unpublished output.
type aborter interface {
	Abort() error
}

// discard drops a partially rendered output. Writers without Abort are
// closed, which is all they offer.
func discard(w io.WriteCloser) {
	if a, ok := w.(aborter); ok {
		a.Abort()
		return
	}
	w.Close()
}

// FileOption configures a file-based exporter.
type FileOption func(*fileExporter)

// WithIDFunc replaces the uuid generator used for file names.
func WithIDFunc(fn IDFunc) FileOption {
	return func(e *fileExporter) {
		if fn != nil {
			e.newID = fn
		}
	}
}

func newFileExporter(format, ext string, target ports.ExportTarget, render renderFunc, opts []FileOption) fileExporter {
	e := fileExporter{
		format: format,
		ext:    ext,
		target: target,
		newID:  newUUID,
		render: render,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// userRecord is the flat shape shared by the structured formats.
type userRecord struct {
	Name        string `json:"name" yaml:"name"`
	Email       string `json:"email" yaml:"email"`
	DateOfBirth string `json:"date_of_birth" yaml:"date_of_birth"`
}

func toRecord(u domain.User) userRecord {
	return userRecord{Name: u.Name, Email: u.Email, DateOfBirth: u.BirthDate()}
}
