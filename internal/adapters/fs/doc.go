// Package fs holds the file-system adapters: a JSON-file post store that can
// hot-reload itself, and an export directory that publishes files atomically.
package fs
