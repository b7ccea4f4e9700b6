// SPDX-License-Identifier: MPL-2.0

// Package watch keeps an in-memory entry store in step with its snapshot file.
//
// The watcher monitors the directory holding the snapshot so that editors which
// save through a temporary file and a rename are seen. Events within the
// debounce window are coalesced into a single reload.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/regview/regview/internal/register"
	"github.com/regview/regview/internal/storefile"
	"github.com/regview/regview/pkg/types"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the quiet period after the last event before the
// snapshot is read again.
const defaultDebounce = 200 * time.Millisecond

// ErrInvalidWatchConfig is the sentinel error wrapped by InvalidWatchConfigError.
var ErrInvalidWatchConfig = errors.New("invalid watch config")

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Path is the snapshot file to follow.
		Path types.FilesystemPath
		// Debounce is the quiet period before a reload. Zero falls back to
		// defaultDebounce; negative values are invalid.
		Debounce time.Duration
		// Load parses the snapshot; nil means storefile.Load.
		Load func(types.FilesystemPath) (*register.MemStore, error)
		// OnReload is called after each successful reload with the number of
		// keys that were added, changed or removed.
		OnReload func(changed int)
	}

	// InvalidWatchConfigError collects the invalid fields of a Config.
	// It wraps ErrInvalidWatchConfig for errors.Is() compatibility.
	InvalidWatchConfigError struct {
		FieldErrors []error
	}

	// Watcher reloads a snapshot into a live store. Run must be called exactly
	// once; calling it a second time returns an error.
	Watcher struct {
		cfg      Config
		store    *register.MemStore
		fsw      *fsnotify.Watcher
		name     string
		debounce time.Duration
		started  atomic.Bool
	}
)

// Validate checks the watch configuration.
func (c Config) Validate() error {
	var errs []error
	if err := c.Path.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Debounce < 0 {
		errs = append(errs, fmt.Errorf("debounce %v must not be negative", c.Debounce))
	}
	if len(errs) > 0 {
		return &InvalidWatchConfigError{FieldErrors: errs}
	}
	return nil
}

// New creates a Watcher that syncs changes of cfg.Path into store.
func New(cfg Config, store *register.MemStore) (*Watcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Load == nil {
		cfg.Load = storefile.Load
	}

	abs, err := filepath.Abs(cfg.Path.String())
	if err != nil {
		return nil, fmt.Errorf("watch: resolve snapshot path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close() //nolint:errcheck // best-effort cleanup
		return nil, fmt.Errorf("watch: add directory %q: %w", filepath.Dir(abs), err)
	}

	debounce := cfg.Debounce
	if debounce == 0 {
		debounce = defaultDebounce
	}

	return &Watcher{
		cfg:      cfg,
		store:    store,
		fsw:      fsw,
		name:     filepath.Base(abs),
		debounce: debounce,
	}, nil
}

// Run blocks until ctx is cancelled, reloading the snapshot after changes.
// It returns nil on cancellation and propagates fatal watcher errors. Reloads
// run on the calling goroutine, so none is in flight once Run has returned.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return errors.New("watch: Run called more than once")
	}

	// debounceC is nil while no reload is pending.
	var (
		timer     *time.Timer
		debounceC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		if closeErr := w.fsw.Close(); closeErr != nil {
			slog.Warn("closing snapshot watcher", "error", closeErr)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-debounceC:
			debounceC = nil
			if ctx.Err() != nil {
				return nil
			}
			w.reload()

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch: fsnotify event channel closed unexpectedly")
			}
			if filepath.Base(evt.Name) != w.name || evt.Has(fsnotify.Chmod) && !evt.Has(fsnotify.Write) {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			debounceC = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch: fsnotify error channel closed unexpectedly")
			}
			if isFatalFsnotifyError(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			slog.Warn("snapshot watcher error", "error", err)
		}
	}
}

// reload reads the snapshot and syncs it into the live store. A snapshot that
// is missing or broken leaves the store untouched.
func (w *Watcher) reload() {
	fresh, err := w.cfg.Load(w.cfg.Path)
	if err != nil {
		slog.Warn("keeping entries after failed reload", "path", w.cfg.Path.String(), "error", err)
		return
	}
	changed := Sync(w.store, fresh)
	slog.Debug("reloaded entry snapshot", "path", w.cfg.Path.String(), "changed", changed)
	if w.cfg.OnReload != nil {
		w.cfg.OnReload(changed)
	}
}

// Sync makes dst hold exactly the entries of src. Keys present in both keep
// their position in dst; new keys are appended in src order. It returns the
// number of keys added, changed or removed.
func Sync(dst *register.MemStore, src register.Store) int {
	changed := 0
	for _, k := range dst.Keys() {
		if _, keep := src.Get(k); !keep {
			dst.Delete(k)
			changed++
		}
	}
	for _, k := range src.Keys() {
		v, _ := src.Get(k)
		if old, exists := dst.Get(k); exists && reflect.DeepEqual(old, v) {
			continue
		}
		dst.Set(k, v)
		changed++
	}
	return changed
}

// Error implements the error interface.
func (e *InvalidWatchConfigError) Error() string {
	if len(e.FieldErrors) == 1 {
		return fmt.Sprintf("invalid watch config: %v", e.FieldErrors[0])
	}
	return fmt.Sprintf("invalid watch config: %d field errors", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidWatchConfig for errors.Is() compatibility.
func (e *InvalidWatchConfigError) Unwrap() error { return ErrInvalidWatchConfig }
