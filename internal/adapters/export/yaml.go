package export

import (
	"bytes"
	"context"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
)

// YAMLExporter writes a user as a YAML mapping.
type YAMLExporter struct {
	fileExporter
}

// NewYAMLExporter creates a YAML exporter writing to target.
func NewYAMLExporter(target ports.ExportTarget, opts ...FileOption) *YAMLExporter {
	return &YAMLExporter{newFileExporter(FormatYAML, "yaml", target, renderYAML, opts)}
}

// Export writes user to a new YAML file.
func (e *YAMLExporter) Export(ctx context.Context, user domain.User) error {
	return e.export(ctx, user)
}

// yaml.v3 reports writer errors as plain strings, so encode in memory and
// write once to keep the cause.
func renderYAML(w io.Writer, user domain.User) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toRecord(user)); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var _ ports.UserExporter = (*YAMLExporter)(nil)
