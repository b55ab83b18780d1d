package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/gomdhtml/internal/logging"
	"github.com/yaklabco/gomdhtml/pkg/fsutil"
)

// DefaultDebounce is how long the watcher waits for a burst of events to settle.
const DefaultDebounce = 100 * time.Millisecond

// WatchOptions controls Watch.
type WatchOptions struct {
	Options

	// Debounce delays re-rendering until events stop for this long.
	// Zero means DefaultDebounce.
	Debounce time.Duration
}

// Watch runs once over opts, then re-processes Markdown files whenever their
// content changes, until ctx is cancelled. onResult receives the initial
// result and one result per batch of changed files. Cancellation is not an error.
func (r *Runner) Watch(ctx context.Context, opts WatchOptions, onResult func(*Result)) error {
	logger := logging.FromContext(ctx)

	d, err := newDiscoverer(opts.Options)
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	scope, err := d.watchScope(fsw, opts.paths())
	if err != nil {
		return err
	}

	// Watching starts before the first run so no edit made after onResult is missed.
	result, err := r.Run(ctx, opts.Options)
	if err != nil {
		return err
	}
	onResult(result)

	known := make(map[string]*fsutil.FileInfo)
	remember(known, result)

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timer := time.NewTimer(debounce)
	timer.Stop()

	pending := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			logger.Debug("fs event", logging.FieldPath, event.Name, logging.FieldEvent, event.Op.String())

			if event.Has(fsnotify.Create) {
				isDir, err := scope.addIfDir(fsw, event.Name)
				if err != nil {
					logger.Warn("watch new directory", logging.FieldPath, event.Name, logging.FieldError, err)
				}
				if isDir {
					continue
				}
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !scope.contains(event.Name) {
				continue
			}
			pending[event.Name] = struct{}{}
			timer.Reset(debounce)

		case werr, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", logging.FieldError, werr)

		case <-timer.C:
			changed := changedFiles(ctx, pending, known)
			clear(pending)
			if len(changed) == 0 {
				continue
			}

			result, err := r.RunFiles(ctx, changed, opts.Options)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			remember(known, result)
			onResult(result)
		}
	}
}

// remember records the source state of every successfully read file.
func remember(known map[string]*fsutil.FileInfo, result *Result) {
	for _, f := range result.Files {
		if f.Info != nil {
			known[f.Path] = f.Info
		}
	}
}

// changedFiles returns the pending files that still exist and whose content
// differs from what was last processed, in sorted order.
func changedFiles(ctx context.Context, pending map[string]struct{}, known map[string]*fsutil.FileInfo) []string {
	var out []string
	for path := range pending {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if info, ok := known[path]; ok {
			changed, err := fsutil.ContentChanged(ctx, info)
			if err == nil && !changed {
				continue
			}
		}
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// watchScope decides which events are relevant.
type watchScope struct {
	d     *discoverer
	files map[string]struct{}
	roots []string
}

// watchScope registers every directory to watch for the given input paths.
// Explicit files are watched through their parent directory.
func (d *discoverer) watchScope(fsw *fsnotify.Watcher, paths []string) (*watchScope, error) {
	scope := &watchScope{d: d, files: make(map[string]struct{})}

	for _, p := range paths {
		absPath := d.abs(p)
		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}

		if !info.IsDir() {
			scope.files[absPath] = struct{}{}
			if err := fsw.Add(filepath.Dir(absPath)); err != nil {
				return nil, fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
			}
			continue
		}

		scope.roots = append(scope.roots, absPath)
		if err := scope.addTree(fsw, absPath); err != nil {
			return nil, err
		}
	}

	return scope, nil
}

// addTree watches root and every directory below it that discovery would enter.
func (s *watchScope) addTree(fsw *fsnotify.Watcher, root string) error {
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}
		if !entry.IsDir() {
			return nil
		}
		if path != root && s.d.skipDir(path) {
			return filepath.SkipDir
		}
		if err := fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch directory %s: %w", root, err)
	}
	return nil
}

// addIfDir starts watching a newly created directory inside a root.
// It reports whether path was a directory, and any failure to watch it.
func (s *watchScope) addIfDir(fsw *fsnotify.Watcher, path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false, nil
	}
	if s.underRoot(path) && !s.d.skipDir(path) {
		return true, s.addTree(fsw, path)
	}
	return true, nil
}

// contains reports whether a changed path should be re-processed.
func (s *watchScope) contains(path string) bool {
	if _, ok := s.files[path]; ok {
		return true
	}
	return s.underRoot(path) && s.d.matches(path)
}

func (s *watchScope) underRoot(path string) bool {
	for _, root := range s.roots {
		rel, err := filepath.Rel(root, path)
		if err == nil && rel != ".." && !filepath.IsAbs(rel) && !startsWithParent(rel) {
			return true
		}
	}
	return false
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}
