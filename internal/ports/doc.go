// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// application needs from external systems without specifying how those needs
// are fulfilled.
//
// # Driven Ports
//
//   - [PostRepository]: Looks up a post by ID (memory, JSON file, MySQL)
//   - [UserExporter]: Exports one user (CSV, PDF, JSON, YAML, HTTP)
//   - [ExportTarget]: Opens named outputs for file-based exporters
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//   - [Logger]: Structured logging abstraction
//
// # Driving Ports
//
//   - [GetPostByIDUseCase]: What callers invoke to fetch a post
//   - [ExportUserUseCase]: What callers invoke to export a user
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them. Swapping one
// adapter for another never requires a change in internal/app.
package ports
