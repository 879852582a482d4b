package app

import (
	"context"

	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
)

// GetPostByID fetches a single post through a ports.PostRepository.
type GetPostByID struct {
	repo   ports.PostRepository
	logger ports.Logger
}

// NewGetPostByID binds the use case to repo for its whole lifetime.
func NewGetPostByID(repo ports.PostRepository, opts ...Option) *GetPostByID {
	o := buildOptions(opts)
	return &GetPostByID{repo: repo, logger: o.logger}
}

// Execute returns the post with the given ID.
// An absent post yields *domain.PostNotFoundError; repository errors are
// returned unchanged.
func (uc *GetPostByID) Execute(ctx context.Context, id domain.PostID) (domain.Post, error) {
	post, err := uc.repo.GetPostByID(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}
	if post == nil {
		uc.logger.Debug("post not found", ports.String("post_id", string(id)))
		return domain.Post{}, &domain.PostNotFoundError{ID: id}
	}
	return *post, nil
}

var _ ports.GetPostByIDUseCase = (*GetPostByID)(nil)
