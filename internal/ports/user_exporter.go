package ports

import (
	"context"

	"github.com/bft-labs/hexport/internal/domain"
)

// UserExporter exports a single user to some external format or system.
// Implementations report failures as *domain.ExportError.
type UserExporter interface {
	Export(ctx context.Context, user domain.User) error
}
