// Package hexport wires blog-post lookup and user export use cases to
// interchangeable adapters.
//
// Each use case depends on a single port interface. Any adapter implementing
// that port can be injected at construction:
//
//	repo := hexport.NewMemoryPostRepository(hexport.Post{ID: "p1", Title: "Hello"})
//	post, err := hexport.NewGetPostByID(repo).Execute(ctx, "p1")
//	if errors.Is(err, hexport.ErrPostNotFound) {
//	    // ...
//	}
//
//	target := hexport.NewDirTarget("exports")
//	err = hexport.NewExportUser(hexport.NewCSVExporter(target)).Execute(ctx, user)
package hexport

import (
	"github.com/bft-labs/hexport/internal/adapters/export"
	"github.com/bft-labs/hexport/internal/adapters/fs"
	"github.com/bft-labs/hexport/internal/adapters/memory"
	"github.com/bft-labs/hexport/internal/app"
	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
	"github.com/bft-labs/hexport/pkg/log"
)

// Domain values.
type (
	User   = domain.User
	Post   = domain.Post
	PostID = domain.PostID
)

// DateLayout is the date format used for a user's date of birth in exports.
const DateLayout = domain.DateLayout

// Errors.
type (
	// PostNotFoundError is returned by GetPostByID when no post has the ID.
	PostNotFoundError = domain.PostNotFoundError

	// ExportError wraps an exporter failure with the format that failed.
	ExportError = domain.ExportError
)

var (
	ErrPostNotFound      = domain.ErrPostNotFound
	ErrExportFailed      = domain.ErrExportFailed
	ErrUnsupportedFormat = domain.ErrUnsupportedFormat
)

// Ports.
type (
	PostRepository     = ports.PostRepository
	UserExporter       = ports.UserExporter
	ExportTarget       = ports.ExportTarget
	HTTPClient         = ports.HTTPClient
	GetPostByIDUseCase = ports.GetPostByIDUseCase
	ExportUserUseCase  = ports.ExportUserUseCase
)

// Use cases.
type (
	GetPostByID = app.GetPostByID
	ExportUser  = app.ExportUser
	Option      = app.Option
)

// NewGetPostByID returns the post lookup use case bound to repo.
func NewGetPostByID(repo PostRepository, opts ...Option) *GetPostByID {
	return app.NewGetPostByID(repo, opts...)
}

// NewExportUser returns the user export use case bound to exporter.
func NewExportUser(exporter UserExporter, opts ...Option) *ExportUser {
	return app.NewExportUser(exporter, opts...)
}

// WithLogger sets the logger a use case writes debug output to.
func WithLogger(logger log.Logger) Option {
	return app.WithLogger(logger)
}

// Adapters.
type (
	MemoryPostRepository = memory.PostRepository
	PostFileRepository   = fs.PostFileRepository
	DirTarget            = fs.DirTarget
	CSVExporter          = export.CSVExporter
	PDFExporter          = export.PDFExporter
	JSONExporter         = export.JSONExporter
	YAMLExporter         = export.YAMLExporter
	HTTPExporter         = export.HTTPExporter
)

// NewMemoryPostRepository returns a repository holding posts in memory.
func NewMemoryPostRepository(posts ...Post) *MemoryPostRepository {
	return memory.NewPostRepository(posts...)
}

// NewPostFileRepository loads a JSON array of posts from path.
// A nil logger discards reload messages.
func NewPostFileRepository(path string, logger log.Logger) (*PostFileRepository, error) {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return fs.NewPostFileRepository(path, logger)
}

// NewDirTarget returns an ExportTarget writing files atomically into dir.
func NewDirTarget(dir string) *DirTarget {
	return fs.NewDirTarget(dir)
}

// NewCSVExporter returns a UserExporter writing CSV files to target.
func NewCSVExporter(target ExportTarget) *CSVExporter {
	return export.NewCSVExporter(target)
}

// NewPDFExporter returns a UserExporter writing PDF files to target.
func NewPDFExporter(target ExportTarget) *PDFExporter {
	return export.NewPDFExporter(target)
}

// NewJSONExporter returns a UserExporter writing JSON files to target.
func NewJSONExporter(target ExportTarget) *JSONExporter {
	return export.NewJSONExporter(target)
}

// NewYAMLExporter returns a UserExporter writing YAML files to target.
func NewYAMLExporter(target ExportTarget) *YAMLExporter {
	return export.NewYAMLExporter(target)
}

// NewHTTPExporter returns a UserExporter posting users to serviceURL.
func NewHTTPExporter(client HTTPClient, serviceURL, authKey string) *HTTPExporter {
	return export.NewHTTPExporter(client, serviceURL, authKey)
}
