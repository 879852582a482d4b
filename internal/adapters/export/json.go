package export

import (
	"context"
	"encoding/json"
	"io"

	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
)

// JSONExporter writes a user as an indented JSON object.
type JSONExporter struct {
	fileExporter
}

// NewJSONExporter creates a JSON exporter writing to target.
func NewJSONExporter(target ports.ExportTarget, opts ...FileOption) *JSONExporter {
	return &JSONExporter{newFileExporter(FormatJSON, "json", target, renderJSON, opts)}
}

// Export writes user to a new JSON file.
func (e *JSONExporter) Export(ctx context.Context, user domain.User) error {
	return e.export(ctx, user)
}

func renderJSON(w io.Writer, user domain.User) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toRecord(user))
}

var _ ports.UserExporter = (*JSONExporter)(nil)
