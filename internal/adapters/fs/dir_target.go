package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bft-labs/hexport/internal/ports"
)

// DirTarget implements ports.ExportTarget by creating files in a directory.
// Each file is written to a temp name and renamed into place on Close, so a
// failed export never leaves a partial file behind.
type DirTarget struct {
	dir string
}

// NewDirTarget creates a DirTarget rooted at dir. The directory is created on
// first use.
func NewDirTarget(dir string) *DirTarget {
	return &DirTarget{dir: dir}
}

// Create opens name for writing inside the target directory.
func (t *DirTarget) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, fmt.Errorf("invalid export file name %q", name)
	}
	if err := os.MkdirAll(t.dir, 0o755); err != nil {
		return nil, err
	}

	path := filepath.Join(t.dir, name)
	f, err := os.CreateTemp(t.dir, "."+name+".*.tmp")
	if err != nil {
		return nil, err
	}
	return &atomicFile{File: f, path: path}, nil
}

// atomicFile renames its temp file to path on a successful Close.
// Abort removes it instead.
type atomicFile struct {
	*os.File
	path   string
	failed bool
}

func (f *atomicFile) Write(p []byte) (int, error) {
	n, err := f.File.Write(p)
	if err != nil {
		f.failed = true
	}
	return n, err
}

func (f *atomicFile) Close() error {
	tmp := f.File.Name()
	if err := f.File.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if f.failed {
		os.Remove(tmp)
		return fmt.Errorf("discarding %s after write failure", filepath.Base(f.path))
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, f.path)
}

// Abort discards the temp file without publishing it.
func (f *atomicFile) Abort() error {
	tmp := f.File.Name()
	f.File.Close()
	if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

var _ ports.ExportTarget = (*DirTarget)(nil)
