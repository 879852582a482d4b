package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent error conditions in the hexport domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrPostNotFound is matched by every PostNotFoundError.
	ErrPostNotFound = errors.New("hexport: post not found")

	// ErrExportFailed is matched by every ExportError.
	ErrExportFailed = errors.New("hexport: export failed")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("hexport: invalid configuration")

	// ErrUnsupportedFormat is returned for an unknown export format.
	ErrUnsupportedFormat = errors.New("hexport: unsupported export format")

	// ErrUnsupportedStore is returned for an unknown post store.
	ErrUnsupportedStore = errors.New("hexport: unsupported post store")
)

// PostNotFoundError is returned in place of a Post when the repository
// has no post with the requested ID.
type PostNotFoundError struct {
	ID PostID
}

func (e *PostNotFoundError) Error() string {
	return fmt.Sprintf("post %q not found", string(e.ID))
}

// Is makes errors.Is(err, ErrPostNotFound) true.
func (e *PostNotFoundError) Is(target error) bool {
	return target == ErrPostNotFound
}

// ExportError reports an export adapter failure.
type ExportError struct {
	// Format is the adapter's output format (e.g., "csv", "pdf")
	Format string

	// Err is the underlying cause
	Err error
}

func (e *ExportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("export %s: failed", e.Format)
	}
	return fmt.Sprintf("export %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrExportFailed) true.
func (e *ExportError) Is(target error) bool {
	return target == ErrExportFailed
}

// NewExportError wraps err as an ExportError for the given format.
// It returns nil when err is nil.
func NewExportError(format string, err error) error {
	if err == nil {
		return nil
	}
	return &ExportError{Format: format, Err: err}
}
