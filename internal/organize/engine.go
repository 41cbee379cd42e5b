package organize

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"sortd/internal/logging"
)

// Engine decides, for one file at a time, between a direct move, a
// move-with-rename, and a duplicate skip. It owns no traversal state; the
// Runner feeds it files.
type Engine struct {
	hasher         *Hasher
	renameAttempts int
	dryRun         bool
	logger         *slog.Logger
}

// NewEngine constructs a move engine. In dry-run mode Place still performs
// the hash comparisons so the simulated report is accurate, but never touches
// the filesystem.
func NewEngine(hasher *Hasher, renameAttempts int, dryRun bool, logger *slog.Logger) *Engine {
	if hasher == nil {
		hasher = NewHasher(0)
	}
	if renameAttempts <= 0 {
		renameAttempts = DefaultRenameAttempts
	}
	return &Engine{
		hasher:         hasher,
		renameAttempts: renameAttempts,
		dryRun:         dryRun,
		logger:         logging.NewComponentLogger(logger, "engine"),
	}
}

// Place moves sourcePath into categoryDir, resolving name collisions by
// content comparison. Failures never escape the per-file boundary: they are
// logged and reported through the returned Placement.
func (e *Engine) Place(sourcePath, categoryDir string) Placement {
	name := filepath.Base(sourcePath)
	candidate := filepath.Join(categoryDir, name)

	target := candidate
	outcome := OutcomeMoved

	if pathExists(candidate) {
		sourceDigest, err := e.hasher.Digest(sourcePath)
		if err != nil {
			e.logger.Error("cannot hash source file",
				logging.String(logging.FieldPath, sourcePath),
				logging.Error(err),
			)
			return Placement{Outcome: OutcomeSkippedError, Err: err}
		}
		destDigest, err := e.hasher.Digest(candidate)
		if err != nil {
			e.logger.Error("cannot hash existing destination file",
				logging.String(logging.FieldPath, candidate),
				logging.Error(err),
			)
			return Placement{Outcome: OutcomeSkippedError, Err: err}
		}

		if sourceDigest == destDigest {
			e.logger.Info("skipping identical duplicate",
				logging.String(logging.FieldPath, sourcePath),
				logging.String("existing", candidate),
				logging.Bool("dry_run", e.dryRun),
			)
			return Placement{Outcome: OutcomeSkippedDuplicate}
		}

		unique, exhausted := UniquePath(categoryDir, name, e.renameAttempts)
		if exhausted {
			// Probing gave up; the fallback path still collides and moving
			// onto it would overwrite a file with different content.
			err := Wrap(ErrResolverExhausted, "resolve unique name", candidate, nil)
			e.logger.Warn("no collision-free name found, refusing to overwrite",
				logging.String(logging.FieldPath, sourcePath),
				logging.Int("attempts", e.renameAttempts),
				logging.Error(err),
			)
			return Placement{Outcome: OutcomeSkippedError, Err: err}
		}
		target = unique
		if filepath.Base(target) != name {
			outcome = OutcomeRenamed
		}
	}

	if e.dryRun {
		if outcome == OutcomeRenamed {
			e.logger.Info("would move (renamed)",
				logging.String(logging.FieldPath, sourcePath),
				logging.String("target", target),
			)
		} else {
			e.logger.Info("would move",
				logging.String(logging.FieldPath, sourcePath),
				logging.String("target", target),
			)
		}
		return Placement{Outcome: outcome, Target: target}
	}

	if err := os.MkdirAll(categoryDir, 0o755); err != nil {
		wrapped := Wrap(ErrMove, "create category folder", categoryDir, err)
		e.logger.Error("cannot create destination folder",
			logging.String(logging.FieldPath, categoryDir),
			logging.Error(err),
		)
		return Placement{Outcome: OutcomeSkippedError, Err: wrapped}
	}

	if err := moveFile(sourcePath, target); err != nil {
		wrapped := Wrap(ErrMove, "move file", sourcePath, err)
		e.logger.Error("move failed",
			logging.String(logging.FieldPath, sourcePath),
			logging.String("target", target),
			logging.Error(err),
		)
		return Placement{Outcome: OutcomeSkippedError, Err: wrapped}
	}

	e.logger.Info("moved file",
		logging.String(logging.FieldPath, sourcePath),
		logging.String("target", target),
		logging.Bool("renamed", outcome == OutcomeRenamed),
	)
	return Placement{Outcome: outcome, Target: target}
}

// moveFile renames source onto target, falling back to copy+remove when the
// two paths live on different filesystems.
func moveFile(source, target string) error {
	renameErr := os.Rename(source, target)
	if renameErr == nil {
		return nil
	}

	var linkErr *os.LinkError
	if errors.As(renameErr, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if err := copyFile(source, target); err != nil {
			return err
		}
		return os.Remove(source)
	}
	return renameErr
}

// copyFile streams src to dst preserving the source mode. A failed copy
// removes the partial dst so the fallback never strands a truncated file.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}
