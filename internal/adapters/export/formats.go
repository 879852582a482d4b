package export

import (
	"fmt"
	"strings"

	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
)

// Supported export formats.
const (
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatHTTP = "http"
)

// Formats lists every format accepted by New, in display order.
func Formats() []string {
	return []string{FormatCSV, FormatPDF, FormatJSON, FormatYAML, FormatHTTP}
}

// Config selects and configures an exporter.
type Config struct {
	Format string

	// Target receives files for the file-based formats.
	Target ports.ExportTarget

	// HTTPClient, ServiceURL and AuthKey are used by FormatHTTP.
	HTTPClient ports.HTTPClient
	ServiceURL string
	AuthKey    string
}

// New returns the exporter for cfg.Format.
func New(cfg Config) (ports.UserExporter, error) {
	format := strings.ToLower(strings.TrimSpace(cfg.Format))

	if format == FormatHTTP {
		if cfg.HTTPClient == nil || cfg.ServiceURL == "" {
			return nil, fmt.Errorf("%w: http export needs a client and service url", domain.ErrInvalidConfig)
		}
		return NewHTTPExporter(cfg.HTTPClient, cfg.ServiceURL, cfg.AuthKey), nil
	}

	if cfg.Target == nil {
		switch format {
		case FormatCSV, FormatPDF, FormatJSON, FormatYAML:
			return nil, fmt.Errorf("%w: %s export needs a target", domain.ErrInvalidConfig, format)
		}
	}

	switch format {
	case FormatCSV:
		return NewCSVExporter(cfg.Target), nil
	case FormatPDF:
		return NewPDFExporter(cfg.Target), nil
	case FormatJSON:
		return NewJSONExporter(cfg.Target), nil
	case FormatYAML:
		return NewYAMLExporter(cfg.Target), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", domain.ErrUnsupportedFormat, cfg.Format, strings.Join(Formats(), ", "))
	}
}
