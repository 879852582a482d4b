package export

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
)

// CSVHeader is the first row of every CSV export.
var CSVHeader = []string{"name", "email", "date_of_birth"}

// CSVExporter writes a user as a two-row CSV file (header + record).
type CSVExporter struct {
	fileExporter
}

// NewCSVExporter creates a CSV exporter writing to target.
func NewCSVExporter(target ports.ExportTarget, opts ...FileOption) *CSVExporter {
	return &CSVExporter{newFileExporter(FormatCSV, "csv", target, renderCSV, opts)}
}

// Export writes user to a new CSV file.
func (e *CSVExporter) Export(ctx context.Context, user domain.User) error {
	return e.export(ctx, user)
}

func renderCSV(w io.Writer, user domain.User) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	if err := cw.Write([]string{user.Name, user.Email, user.BirthDate()}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

var _ ports.UserExporter = (*CSVExporter)(nil)
