package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bft-labs/hexport/internal/adapters/export"
	"github.com/bft-labs/hexport/internal/adapters/fs"
	"github.com/bft-labs/hexport/internal/adapters/memory"
	"github.com/bft-labs/hexport/internal/adapters/mysql"
	"github.com/bft-labs/hexport/internal/cliconfig"
	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
)

// demoPosts seed the memory store.
func demoPosts() []domain.Post {
	return []domain.Post{
		{
			ID:          "p1",
			Title:       "Hello",
			Body:        "The first post.",
			Author:      "admin",
			PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "p2",
			Title:       "Ports and adapters",
			Body:        "Use cases depend on interfaces, adapters implement them.",
			Author:      "admin",
			PublishedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// watcher is implemented by repositories that can hot-reload.
type watcher interface {
	Watch(ctx context.Context, debounce time.Duration) error
}

// openPostRepository builds the repository selected by cfg.Store.
// The returned close function is never nil.
func openPostRepository(ctx context.Context, cfg cliconfig.Config, logger ports.Logger) (ports.PostRepository, func() error, error) {
	nop := func() error { return nil }

	switch cfg.Store {
	case cliconfig.StoreMemory:
		return memory.NewPostRepository(demoPosts()...), nop, nil
	case cliconfig.StoreFile:
		repo, err := fs.NewPostFileRepository(cfg.PostsFile, logger)
		if err != nil {
			return nil, nop, err
		}
		return repo, nop, nil
	case cliconfig.StoreMySQL:
		db, err := mysql.Open(ctx, cfg.MySQLDSN)
		if err != nil {
			return nil, nop, err
		}
		return mysql.NewPostRepository(db), db.Close, nil
	default:
		return nil, nop, fmt.Errorf("%w: %q", domain.ErrUnsupportedStore, cfg.Store)
	}
}

// newUserExporter builds the exporter selected by cfg.Format.
func newUserExporter(cfg cliconfig.Config) (ports.UserExporter, error) {
	return export.New(export.Config{
		Format:     cfg.Format,
		Target:     fs.NewDirTarget(cfg.OutputDir),
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		ServiceURL: cfg.ServiceURL,
		AuthKey:    cfg.AuthKey,
	})
}
