package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/hexport/internal/domain"
)

// syncBuffer is a bytes.Buffer safe for the watcher's concurrent log writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return cond()
}

func TestPostLookup_WatchReloadsFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "posts.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"p1","title":"Hello"}]`), 0o644))

	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	var stdout, stderr syncBuffer
	c := newCLI(pr, &stdout, &stderr)
	root := newRootCmd(c)
	root.SetArgs([]string{"--env-file", "", "--store", "file", "--posts-file", path, "post", "lookup", "--watch"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	send := func(id string) {
		_, err := io.WriteString(pw, id+"\n")
		require.NoError(t, err)
	}

	send("p1")
	require.True(t, waitFor(t, 2*time.Second, func() bool {
		return strings.Contains(stdout.String(), `"id":"p1"`)
	}), "p1 never printed; stderr: %s", stderr.String())

	// let the watcher register the directory before rewriting
	time.Sleep(150 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"p1","title":"Hello"},{"id":"p2","title":"New"}]`), 0o644))

	found := waitFor(t, 3*time.Second, func() bool {
		if strings.Contains(stdout.String(), `"id":"p2"`) {
			return true
		}
		send("p2")
		time.Sleep(50 * time.Millisecond)
		return strings.Contains(stdout.String(), `"id":"p2"`)
	})
	require.True(t, found, "p2 never served after rewrite; stderr: %s", stderr.String())

	// interrupting a watch is a clean exit
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("lookup did not return after cancel")
	}
}

func TestScanLines_StopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	go io.WriteString(pw, "a\nb\n")

	ctx, cancel := context.WithCancel(context.Background())
	lines, _ := scanLines(ctx, pr)

	require.Equal(t, "a", <-lines)
	cancel()
	// nobody receives "b", so the sender can only observe the cancel
	time.Sleep(100 * time.Millisecond)

	select {
	case line, ok := <-lines:
		assert.False(t, ok, "got %q after cancel, want closed channel", line)
	case <-time.After(2 * time.Second):
		t.Fatal("scanner goroutine still blocked after cancel")
	}
}

func TestRoot_RejectsUnknownFormat(t *testing.T) {
	res := run(t, "", "--format", "xml", "post", "get", "p1")

	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, domain.ErrUnsupportedFormat)
	assert.Empty(t, res.stdout)
}
