package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bft-labs/hexport/internal/adapters/fs"
	"github.com/bft-labs/hexport/internal/app"
	"github.com/bft-labs/hexport/internal/domain"
	"github.com/bft-labs/hexport/internal/ports"
)

func newPostCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Look up blog posts",
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Print one post as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withPosts(cmd.Context(), func(ctx context.Context, uc ports.GetPostByIDUseCase) error {
				post, err := uc.Execute(ctx, domain.PostID(args[0]))
				if err != nil {
					return err
				}
				return writeJSON(c.stdout, post)
			})
		},
	}

	lookup := &cobra.Command{
		Use:   "lookup",
		Short: "Read post IDs from stdin, one per line, and print each post as a JSON line",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.lookup(cmd.Context())
		},
	}
	lookup.Flags().BoolVar(&c.cfg.Watch, "watch", c.cfg.Watch, "reload the posts file when it changes (file store only)")

	cmd.AddCommand(get, lookup)
	return cmd
}

// withPosts opens the configured repository, binds the use case to it and
// runs fn.
func (c *cli) withPosts(ctx context.Context, fn func(context.Context, ports.GetPostByIDUseCase) error) error {
	logger := c.portLogger()

	repo, closeRepo, err := openPostRepository(ctx, c.cfg, logger)
	if err != nil {
		return fmt.Errorf("open %s store: %w", c.cfg.Store, err)
	}
	defer func() {
		if err := closeRepo(); err != nil {
			c.log.Warn().Err(err).Msg("close post store")
		}
	}()

	if c.cfg.Watch {
		w, ok := repo.(watcher)
		if !ok {
			return fmt.Errorf("%w: %s store cannot be watched", domain.ErrInvalidConfig, c.cfg.Store)
		}
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			if err := w.Watch(watchCtx, fs.DefaultDebounceDelay); err != nil && !errors.Is(err, context.Canceled) {
				c.log.Warn().Err(err).Msg("posts file watcher stopped")
			}
		}()
	}

	return fn(ctx, app.NewGetPostByID(repo, app.WithLogger(logger)))
}

func (c *cli) lookup(ctx context.Context) error {
	return c.withPosts(ctx, func(ctx context.Context, uc ports.GetPostByIDUseCase) error {
		scanCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		lines, scanErr := scanLines(scanCtx, c.stdin)

		var total, missing int
	loop:
		for {
			var line string
			select {
			case <-ctx.Done():
				// interrupted, e.g. Ctrl-C while watching
				return nil
			case l, ok := <-lines:
				if !ok {
					break loop
				}
				line = l
			}

			id := strings.TrimSpace(line)
			if id == "" || strings.HasPrefix(id, "#") {
				continue
			}
			total++

			post, err := uc.Execute(ctx, domain.PostID(id))
			if err != nil && ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, domain.ErrPostNotFound) {
				missing++
				c.log.Warn().Str("post_id", id).Msg("post not found")
				continue
			}
			if err != nil {
				return err
			}
			if err := writeJSON(c.stdout, post); err != nil {
				return err
			}
		}
		if err := scanErr(); err != nil {
			return fmt.Errorf("read ids: %w", err)
		}

		if missing > 0 {
			return fmt.Errorf("%w: %d of %d ids", domain.ErrPostNotFound, missing, total)
		}
		return nil
	})
}

// scanLines streams lines from r until EOF or ctx is done. The returned
// function reports the scan error once the channel is closed.
func scanLines(ctx context.Context, r io.Reader) (<-chan string, func() error) {
	out := make(chan string)
	var err error

	go func() {
		defer close(out)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case out <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		err = sc.Err()
	}()

	return out, func() error { return err }
}

func writeJSON(w io.Writer, v interface{}) error {
	return json.NewEncoder(w).Encode(v)
}
