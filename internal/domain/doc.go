// Package domain contains the core domain values and errors for hexport.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (SQL, file system, PDF rendering,
// logging) and contains only plain values and the errors use cases return.
//
// # Values
//
//   - [User]: A person to be exported (name, email, date of birth)
//   - [Post]: A blog post looked up by its [PostID]
//
// # Errors
//
// Negative outcomes are returned as error values, never raised as panics:
//
//   - [PostNotFoundError]: the requested post does not exist
//   - [ExportError]: an export adapter failed to write a user
//
// Both satisfy errors.Is against the package sentinels ([ErrPostNotFound],
// [ErrExportFailed]) so callers can branch without type assertions.
package domain
