// Package export provides the ports.UserExporter adapters.
//
// File formats (CSV, PDF, JSON, YAML) render one user per file and write it
// through a ports.ExportTarget, so they can be pointed at a directory, a
// buffer or anything else that opens named writers. The HTTP exporter posts
// the user to a remote service instead.
//
// Every adapter reports failures as *domain.ExportError carrying its format.
package export
