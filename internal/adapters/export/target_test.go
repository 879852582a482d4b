package export

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/bft-labs/hexport/internal/domain"
)

// memTarget keeps closed files in memory, keyed by name.
type memTarget struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemTarget() *memTarget {
	return &memTarget{files: map[string][]byte{}}
}

func (t *memTarget) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	return &memFile{target: t, name: name}, nil
}

func (t *memTarget) only() (string, []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for name, data := range t.files {
		return name, data
	}
	return "", nil
}

type memFile struct {
	bytes.Buffer
	target *memTarget
	name   string
}

func (f *memFile) Close() error {
	f.target.mu.Lock()
	defer f.target.mu.Unlock()
	f.target.files[f.name] = f.Bytes()
	return nil
}

var errDiskFull = errors.New("disk full")

// failingTarget fails either on Create or on the first Write.
type failingTarget struct {
	failCreate bool
	closed     bool
}

func (t *failingTarget) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	if t.failCreate {
		return nil, errDiskFull
	}
	return failingWriter{t}, nil
}

type failingWriter struct{ t *failingTarget }

func (w failingWriter) Write(p []byte) (int, error) { return 0, errDiskFull }
func (w failingWriter) Close() error                { w.t.closed = true; return nil }

func fixedID() string { return "1b4e28ba-2fa1-11d2-883f-0016d3cca427" }

func johnDoe() domain.User {
	return domain.User{
		Name:        "John Doe",
		Email:       "john.doe@mail.com",
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
