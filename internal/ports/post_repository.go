package ports

import (
	"context"

	"github.com/bft-labs/hexport/internal/domain"
)

// PostRepository looks up blog posts by ID.
type PostRepository interface {
	// GetPostByID returns the post with the given ID.
	// Returns (nil, nil) when no such post exists; errors are reserved for
	// storage failures.
	GetPostByID(ctx context.Context, id domain.PostID) (*domain.Post, error)
}
