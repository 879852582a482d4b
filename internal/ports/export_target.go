package ports

import (
	"context"
	"io"
)

// ExportTarget opens named outputs for file-based exporters.
// The returned writer must be closed; data becomes visible only after a
// successful Close. Writers that also implement Abort() error discard their
// output when aborted instead of closed.
type ExportTarget interface {
	Create(ctx context.Context, name string) (io.WriteCloser, error)
}
