package organize

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"sortd/internal/extmap"
	"sortd/internal/logging"
)

// Options configures a Runner.
type Options struct {
	// DefaultCategory receives unmapped extensions; empty means ignore them.
	DefaultCategory string
	// RenameAttempts bounds the collision probe; zero means the default.
	RenameAttempts int
	// HashChunkBytes sets the digest read size; zero means the default.
	HashChunkBytes int
	DryRun         bool
}

// Runner walks a source tree and organizes every classified file into
// category folders under the destination root.
type Runner struct {
	source  string
	dest    string
	mapping extmap.Map
	opts    Options
	engine  *Engine
	logger  *slog.Logger
}

// NewRunner validates the source and destination and builds a Runner. The
// source must be an existing directory; the destination must either not exist
// or be a directory. Violations are reported as ErrConfiguration. Both paths
// are made absolute so the nested-destination guard compares like with like.
func NewRunner(source, dest string, mapping extmap.Map, opts Options, logger *slog.Logger) (*Runner, error) {
	source, err := filepath.Abs(source)
	if err != nil {
		return nil, Wrap(ErrConfiguration, "resolve source", source, err)
	}
	dest, err = filepath.Abs(dest)
	if err != nil {
		return nil, Wrap(ErrConfiguration, "resolve destination", dest, err)
	}

	info, err := os.Stat(source)
	if err != nil || !info.IsDir() {
		return nil, Wrap(ErrConfiguration, "validate source", "source directory does not exist or is not a directory: "+source, nil)
	}
	if info, err := os.Stat(dest); err == nil && !info.IsDir() {
		return nil, Wrap(ErrConfiguration, "validate destination", "destination path exists but is not a directory: "+dest, nil)
	}
	if len(mapping) == 0 && opts.DefaultCategory == "" {
		return nil, Wrap(ErrConfiguration, "validate mapping", "extension map is empty and no default category is set", nil)
	}

	runLogger := logging.NewComponentLogger(logger, "organize")
	hasher := NewHasher(opts.HashChunkBytes)
	return &Runner{
		source:  source,
		dest:    dest,
		mapping: mapping,
		opts:    opts,
		engine:  NewEngine(hasher, opts.RenameAttempts, opts.DryRun, logger),
		logger:  runLogger,
	}, nil
}

// Run traverses the source tree once and returns the accumulated Summary.
// Per-file failures are folded into the counters; only context cancellation
// is returned as an error, alongside the partial summary.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	summary := Summary{DryRun: r.opts.DryRun}

	r.logger.Info("starting organization",
		logging.String("source", r.source),
		logging.String("destination", r.dest),
		logging.Bool("dry_run", r.opts.DryRun),
	)

	walkErr := filepath.WalkDir(r.source, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			// A directory vanished or was unreadable mid-walk; skip it and
			// keep going.
			r.logger.Warn("walk error", logging.String(logging.FieldPath, path), logging.Error(err))
			return nil
		}
		if d.IsDir() {
			if r.insideDest(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			r.logger.Debug("skipping non-regular file", logging.String(logging.FieldPath, path))
			return nil
		}
		if r.insideDest(path) {
			return nil
		}

		summary.Scanned++
		r.processFile(path, &summary)
		return nil
	})

	r.logSummary(summary)

	// Per-entry failures are swallowed above, so the only walk error left is
	// context cancellation.
	return summary, walkErr
}

func (r *Runner) processFile(path string, summary *Summary) {
	name := filepath.Base(path)
	category, ok := Classify(name, r.mapping, r.opts.DefaultCategory)
	if !ok {
		r.logger.Debug("ignoring file with no mapped extension", logging.String(logging.FieldPath, path))
		summary.Ignored++
		return
	}

	// The file may have vanished between the walk yielding it and now.
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("file disappeared before processing", logging.String(logging.FieldPath, path))
			summary.Errors++
			return
		}
	}

	summary.Considered++
	categoryDir := filepath.Join(r.dest, category)
	placement := r.engine.Place(path, categoryDir)
	summary.record(placement)
}

// insideDest reports whether path falls under the destination root, so a
// destination nested inside the source tree never gets re-processed.
func (r *Runner) insideDest(path string) bool {
	rel, err := filepath.Rel(r.dest, path)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel))
}

func (r *Runner) logSummary(summary Summary) {
	attrs := []logging.Attr{
		logging.Int("scanned", summary.Scanned),
		logging.Int("ignored", summary.Ignored),
		logging.Int("moved", summary.Moved),
		logging.Int("duplicates", summary.Duplicates),
	}
	if summary.DryRun {
		r.logger.Info("dry run finished", logging.Args(attrs...)...)
		return
	}
	attrs = append(attrs, logging.Int("unaccounted", summary.Unaccounted()))
	r.logger.Info("organization finished", logging.Args(attrs...)...)
}
