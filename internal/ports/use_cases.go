package ports

import (
	"context"

	"github.com/bft-labs/hexport/internal/domain"
)

// GetPostByIDUseCase fetches a post.
// A missing post is reported as *domain.PostNotFoundError.
type GetPostByIDUseCase interface {
	Execute(ctx context.Context, id domain.PostID) (domain.Post, error)
}

// ExportUserUseCase exports a user through whichever exporter it was built with.
type ExportUserUseCase interface {
	Execute(ctx context.Context, user domain.User) error
}
