package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
)

// DefaultDebounceDelay is how long Watch waits after the last change event
// before reloading.
const DefaultDebounceDelay = 100 * time.Millisecond

// PostFileRepository implements ports.PostRepository over a JSON file holding
// an array of posts. The file is read into memory on Reload.
type PostFileRepository struct {
	path   string
	logger ports.Logger

	mu    sync.RWMutex
	posts map[domain.PostID]domain.Post
}

// NewPostFileRepository loads path and returns the repository.
func NewPostFileRepository(path string, logger ports.Logger) (*PostFileRepository, error) {
	r := &PostFileRepository{
		path:   path,
		logger: logger,
	}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// GetPostByID returns the post from the last successful load, or nil when absent.
func (r *PostFileRepository) GetPostByID(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Reload re-reads the file. On failure the previously loaded posts are kept.
func (r *PostFileRepository) Reload() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("read posts file: %w", err)
	}

	var list []domain.Post
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("parse posts file %s: %w", r.path, err)
	}

	posts := make(map[domain.PostID]domain.Post, len(list))
	for _, p := range list {
		if p.ID == "" {
			return fmt.Errorf("parse posts file %s: post with empty id", r.path)
		}
		posts[p.ID] = p
	}

	r.mu.Lock()
	r.posts = posts
	r.mu.Unlock()

	r.logger.Debug("posts loaded", ports.String("path", r.path), ports.Int("count", len(posts)))
	return nil
}

// Len returns the number of loaded posts.
func (r *PostFileRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts)
}

// Watch reloads the file whenever it is written or replaced, until ctx is
// done. It watches the parent directory so editors that save via rename are
// picked up too. Reload failures are logged and the old posts stay served.
func (r *PostFileRepository) Watch(ctx context.Context, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounceDelay
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(r.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	base := filepath.Base(r.path)

	var (
		timerMu sync.Mutex
		timer   *time.Timer
	)
	defer func() {
		timerMu.Lock()
		if timer != nil {
			timer.Stop()
		}
		timerMu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timerMu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				if ctx.Err() != nil {
					return
				}
				if err := r.Reload(); err != nil {
					r.logger.Warn("posts reload failed", ports.String("path", r.path), ports.Err(err))
					return
				}
				r.logger.Info("posts reloaded", ports.String("path", r.path))
			})
			timerMu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Error("posts watcher error", ports.Err(err))
		}
	}
}

var _ ports.PostRepository = (*PostFileRepository)(nil)
