package app

import (
	"context"
	"sync"

	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
)

// recordingLogger keeps debug messages for assertions.
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) Debug(msg string, fields ...ports.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)
}
func (l *recordingLogger) Info(msg string, fields ...ports.Field)  {}
func (l *recordingLogger) Warn(msg string, fields ...ports.Field)  {}
func (l *recordingLogger) Error(msg string, fields ...ports.Field) {}

func (l *recordingLogger) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string{}, l.messages...)
}

// fakeRepo answers from a map and records every requested ID.
type fakeRepo struct {
	mu    sync.Mutex
	posts map[domain.PostID]domain.Post
	err   error
	calls []domain.PostID
}

func (r *fakeRepo) GetPostByID(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, id)
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// fakeExporter records every user it was asked to export.
type fakeExporter struct {
	format string
	err    error
	users  []domain.User
}

func (e *fakeExporter) Export(ctx context.Context, user domain.User) error {
	e.users = append(e.users, user)
	if e.err != nil {
		return domain.NewExportError(e.format, e.err)
	}
	return nil
}
