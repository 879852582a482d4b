// Package memory provides an in-process post store.
package memory

import (
	"context"
	"sync"

	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
)

// PostRepository implements ports.PostRepository with a map.
type PostRepository struct {
	mu sync.RWMutex
	m  map[domain.PostID]domain.Post
}

// NewPostRepository creates a repository seeded with posts.
func NewPostRepository(posts ...domain.Post) *PostRepository {
	r := &PostRepository{m: make(map[domain.PostID]domain.Post, len(posts))}
	for _, p := range posts {
		r.m[p.ID] = p
	}
	return r
}

// GetPostByID returns a copy of the stored post, or nil when absent.
func (r *PostRepository) GetPostByID(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.m[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Put stores or replaces a post.
func (r *PostRepository) Put(p domain.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[p.ID] = p
}

var _ ports.PostRepository = (*PostRepository)(nil)
