package source

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultPollInterval = 500 * time.Millisecond

// Follower reads a file and, at its end, blocks until more data is appended,
// like tail -f. Cancelling the context ends the stream with io.EOF.
type Follower struct {
	ctx     context.Context
	f       *os.File
	watcher *fsnotify.Watcher // nil when polling
	poll    time.Duration
	logger  *slog.Logger
}

// FollowOption configures a Follower.
type FollowOption func(*Follower)

// WithPollInterval sets the wait between reads when file notifications are
// unavailable.
func WithPollInterval(d time.Duration) FollowOption {
	return func(f *Follower) { f.poll = d }
}

// WithLogger sets the logger for watcher failures.
func WithLogger(l *slog.Logger) FollowOption {
	return func(f *Follower) { f.logger = l }
}

// Follow opens path for following. It uses fsnotify and falls back to
// polling if a watcher cannot be set up.
func Follow(ctx context.Context, path string, opts ...FollowOption) (*Follower, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	f := &Follower{
		ctx:    ctx,
		f:      file,
		poll:   defaultPollInterval,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		f.logger.Debug("fsnotify unavailable, polling", "path", path, "error", err)
		return f, nil
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		f.logger.Debug("failed to watch file, polling", "path", path, "error", err)
		return f, nil
	}
	f.watcher = watcher
	return f, nil
}

// Read implements io.Reader.
func (f *Follower) Read(p []byte) (int, error) {
	for {
		n, err := f.f.Read(p)
		if n > 0 {
			return n, nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		if err := f.wait(); err != nil {
			return 0, io.EOF
		}
	}
}

// Err returns the reason following stopped, or nil while it is active.
func (f *Follower) Err() error {
	return f.ctx.Err()
}

// Close stops watching and closes the file.
func (f *Follower) Close() error {
	if f.watcher != nil {
		f.watcher.Close()
	}
	return f.f.Close()
}

// wait blocks until the file may have grown.
func (f *Follower) wait() error {
	if f.watcher == nil {
		t := time.NewTimer(f.poll)
		defer t.Stop()
		select {
		case <-f.ctx.Done():
			return f.ctx.Err()
		case <-t.C:
			return nil
		}
	}

	for {
		select {
		case <-f.ctx.Done():
			return f.ctx.Err()
		case event, ok := <-f.watcher.Events:
			if !ok {
				return io.EOF
			}
			if event.Has(fsnotify.Write) {
				return nil
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				return io.EOF
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return io.EOF
			}
			f.logger.Warn("file watcher error", "file", f.f.Name(), "error", err)
			return nil
		}
	}
}
