package finder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jamesainslie/seek/pkg/seek/filter"
	"github.com/jamesainslie/seek/pkg/seek/logging"
	"github.com/jamesainslie/seek/pkg/seek/types"
)

// logger is the package-level logger for traversal.
var logger = logging.Get("finder")

// ErrTraversal signals that a run completed but hit at least one traversal or
// classification error. Run never returns it; callers that treat such errors
// as failures (strict mode) return it themselves.
var ErrTraversal = errors.New("traversal errors occurred")

// Emitter receives each matching entry as soon as it is found.
type Emitter interface {
	Emit(types.Entry) error
}

// Reporter receives non-fatal traversal and classification errors.
type Reporter interface {
	Report(*types.WalkError)
}

// Options configures a Finder.
type Options struct {
	// Emitter receives matches.
	Emitter Emitter

	// Reporter receives non-fatal errors. If nil, errors are only counted and logged.
	Reporter Reporter
}

// Finder runs the traversal-filter pipeline. It is single-threaded; a Finder
// must not be shared between goroutines while a run is in progress.
type Finder struct {
	opts  Options
	stats types.RunStats
}

// New creates a Finder. A nil Emitter discards matches, which is useful for
// counting with RunStats alone.
func New(opts Options) *Finder {
	if opts.Emitter == nil {
		opts.Emitter = discard{}
	}
	return &Finder{opts: opts}
}

type discard struct{}

func (discard) Emit(types.Entry) error { return nil }

// Run walks every root in cfg, in order, and emits matching entries in
// depth-first pre-order. Traversal problems are reported and counted but do
// not stop the run. The returned error is non-nil only when the emitter fails
// or ctx is cancelled; the statistics gathered up to that point are returned
// either way.
func (f *Finder) Run(ctx context.Context, cfg Config) (types.RunStats, error) {
	f.stats = types.RunStats{}
	start := time.Now()

	var err error
	for _, root := range cfg.paths {
		logger.Debug("walking root", "path", root)
		if err = f.walkRoot(ctx, cfg, root); err != nil {
			break
		}
	}

	f.stats.Elapsed = time.Since(start)
	logger.Debug("run complete",
		"visited", f.stats.Visited,
		"matched", f.stats.Matched,
		"errors", f.stats.Errors,
		"skipped", f.stats.Skipped,
		"elapsed", f.stats.Elapsed)

	return f.stats, err
}

// walkRoot visits a root path. The root is classified without following a
// symlink, but a root symlink that points at a directory is descended into.
func (f *Finder) walkRoot(ctx context.Context, cfg Config, root string) error {
	info, err := os.Lstat(root)
	if err != nil {
		f.fail(root, err)
		return nil
	}

	descend := info.IsDir()
	if info.Mode()&fs.ModeSymlink != 0 {
		if target, err := os.Stat(root); err == nil && target.IsDir() {
			descend = true
		}
	}

	return f.visit(ctx, cfg, root, rootName(root), info.Mode(), 0, descend)
}

// visit handles one entry and, for directories, its subtree.
func (f *Finder) visit(ctx context.Context, cfg Config, path, name string, mode fs.FileMode, depth int, descend bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.stats.Visited++
	if err := f.consider(cfg, path, name, mode, depth); err != nil {
		return err
	}
	if !descend {
		return nil
	}

	// os.ReadDir returns the entries it read before failing, so a partially
	// readable directory still yields its readable children.
	entries, err := os.ReadDir(path)
	if err != nil {
		f.fail(path, err)
	}

	for _, de := range entries {
		childName := de.Name()
		child := joinPath(path, childName)

		if filter.Excluded(child, childName, cfg.exclude) {
			logger.Debug("excluded", "path", child)
			continue
		}

		childMode := de.Type()
		if err := f.visit(ctx, cfg, child, childName, childMode, depth+1, childMode.IsDir()); err != nil {
			return err
		}
	}
	return nil
}

// consider classifies an entry, applies the type filter then the name filter,
// and emits the entry if both accept it.
func (f *Finder) consider(cfg Config, path, name string, mode fs.FileMode, depth int) error {
	typ, err := Classify(mode)
	if err != nil {
		f.fail(path, err)
		return nil
	}

	if !filter.TypeAccepted(typ, cfg.types) {
		return nil
	}

	if !utf8.ValidString(name) {
		f.stats.Skipped++
		logger.Debug("skipping name that is not valid UTF-8", "path", fmt.Sprintf("%q", path))
		return nil
	}

	if !filter.NameAccepted(name, cfg.names) {
		return nil
	}

	f.stats.Matched++
	entry := types.Entry{Path: path, Name: name, Type: typ, Depth: depth}
	if err := f.opts.Emitter.Emit(entry); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// fail records and reports a non-fatal error for path.
func (f *Finder) fail(path string, err error) {
	// Strip the *PathError wrapper; the path is already part of the report.
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}

	f.stats.Errors++
	logger.Debug("walk error", "path", path, "err", err)

	if f.opts.Reporter != nil {
		f.opts.Reporter.Report(&types.WalkError{Path: path, Err: err})
	}
}

// joinPath appends name to dir without cleaning, so emitted paths keep the
// root exactly as the user typed it ("." yields "./x").
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

// rootName returns the base name used to filter a root entry.
func rootName(root string) string {
	trimmed := strings.TrimRight(root, string(filepath.Separator))
	if trimmed == "" {
		return root
	}
	return filepath.Base(trimmed)
}
