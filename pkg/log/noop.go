package log

import logadapter "github.com/bft-labs/hexport/internal/adapters/log"

// NoopLogger implements Logger by discarding all log messages.
type NoopLogger = logadapter.NoopLogger

// NewNoopLogger creates a new no-op logger.
func NewNoopLogger() *NoopLogger {
	return logadapter.NewNoopLogger()
}
