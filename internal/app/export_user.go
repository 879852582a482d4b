package app

import (
	"context"

	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
)

// ExportUser exports a user through a ports.UserExporter.
// It does not know which format the exporter writes.
type ExportUser struct {
	exporter ports.UserExporter
	logger   ports.Logger
}

// NewExportUser binds the use case to exporter for its whole lifetime.
func NewExportUser(exporter ports.UserExporter, opts ...Option) *ExportUser {
	o := buildOptions(opts)
	return &ExportUser{exporter: exporter, logger: o.logger}
}

// Execute hands user to the exporter exactly once and returns its error unchanged.
func (uc *ExportUser) Execute(ctx context.Context, user domain.User) error {
	err := uc.exporter.Export(ctx, user)
	if err != nil {
		uc.logger.Debug("export failed", ports.String("email", user.Email), ports.Err(err))
		return err
	}
	uc.logger.Debug("user exported", ports.String("email", user.Email))
	return nil
}

var _ ports.ExportUserUseCase = (*ExportUser)(nil)
