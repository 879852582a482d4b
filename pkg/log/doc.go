// Package log exposes the logging port used by hexport's use cases and
// adapters.
//
// Wrap an existing zerolog logger:
//
//	logger := log.NewZerologLogger(zerolog.New(os.Stderr))
//	uc := hexport.NewGetPostByID(repo, hexport.WithLogger(logger))
//
// Or build the console logger the hexport CLI uses:
//
//	logger := log.NewConsoleLogger(os.Stderr, zerolog.DebugLevel)
//
// Any type with Debug, Info, Warn and Error methods taking (msg string,
// fields ...log.Field) satisfies Logger.
package log
