package log

import (
	"io"

	"github.com/rs/zerolog"

	logadapter "github.com/bft-labs/hexport/internal/adapters/log"
)

// ZerologAdapter implements Logger using zerolog.
type ZerologAdapter = logadapter.ZerologAdapter

// NewZerologLogger wraps an existing zerolog.Logger.
func NewZerologLogger(logger zerolog.Logger) *ZerologAdapter {
	return logadapter.NewZerologAdapterWithLogger(logger)
}

// NewConsoleLogger returns a human-readable logger writing to w at level.
func NewConsoleLogger(w io.Writer, level zerolog.Level) *ZerologAdapter {
	return logadapter.NewZerologAdapterWithLogger(logadapter.NewConsoleLogger(w, level))
}
