package cliconfig

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	logadapter "github.com/bft-labs/hexport/internal/adapters/log"
	"github.com/bft-labs/hexport/internal/domain"
)

// ParseLevel maps a config log level ("debug", "info", "warn", "error",
// "disabled") to zerolog.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("%w: unknown log level %q", domain.ErrInvalidConfig, level)
	}
}

// Logger builds the CLI's console logger. Unknown levels fall back to info.
func Logger(w io.Writer, level string) zerolog.Logger {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return logadapter.NewConsoleLogger(w, lvl)
}
