package organizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"

	"filesorter/internal/classify"
	"filesorter/internal/history"
	"filesorter/internal/logging"
	"filesorter/internal/services"
)

const stageOrganize = "organize"

// Organize sorts the immediate files of directory into category folders and
// returns what was placed where. With opts.Preview nothing on disk changes.
//
// A missing directory fails with services.ErrNotFound and unknown category
// names with services.ErrValidation. A failed create or move aborts the run
// with services.ErrIO: files already moved stay where they are and no history
// is written.
func (e *Engine) Organize(ctx context.Context, directory string, opts Options) (Summary, error) {
	started := time.Now()
	dir, err := e.resolveDirectory(directory)
	if err != nil {
		return nil, err
	}

	operation := stageOrganize
	if opts.Preview {
		operation = "preview"
	}
	ctx = withRun(ctx, dir, operation)
	logger := logging.WithContext(ctx, e.logger)

	table := opts.table()
	allowed, err := allowedCategories(table, opts.Categories)
	if err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(e.fs, dir)
	if err != nil {
		return nil, services.Wrap(services.ErrIO, stageOrganize, "list directory", fmt.Sprintf("Failed to list %s", dir), err)
	}

	logger.Info("starting organization",
		logging.Bool("preview", opts.Preview),
		logging.Bool("include_executables", opts.IncludeExecutables),
		logging.String("categories", strings.Join(opts.Categories, ",")),
		logging.Int("entries", len(entries)),
	)

	if !opts.Preview {
		if prior, err := e.history.Exists(dir); err == nil && prior {
			logging.WarnWithContext(logger, "replacing undo history of the previous run", "undo_history_replaced",
				logging.String("history", history.Path(dir)),
				logging.String(logging.FieldImpact, "the previous run can no longer be undone"),
				logging.String(logging.FieldErrorHint, "run undo before organizing again to keep the previous run reversible"),
			)
		}
	}

	summary := Summary{}
	ledger := history.NewLedger()
	ensured := make(map[string]struct{})
	excluded := 0

	for _, entry := range entries {
		name := entry.Name()
		src := filepath.Join(dir, name)

		info, ok := e.regularFile(src, entry)
		if !ok {
			continue
		}
		if history.IsArtifact(name) {
			continue
		}

		result := table.Classify(name, allowed)
		if !result.Placed() {
			if result.Kind == classify.Excluded {
				excluded++
			}
			logger.Debug("file skipped", logging.String("file", name), logging.String("reason", result.Kind.String()))
			continue
		}

		destDir := filepath.Join(dir, result.Category)
		if category, _ := table.Lookup(result.Category); category.DateBucketed {
			destDir = filepath.Join(destDir, info.ModTime().Local().Format(dateBucketLayout))
		}

		if !opts.Preview {
			if err := e.ensureDir(ctx, destDir, ensured); err != nil {
				return nil, err
			}
			target, err := e.placeFile(src, destDir)
			if err != nil {
				logging.ErrorWithContext(logger, "move failed; aborting run", "organize_move_failed",
					logging.String("file", name),
					logging.String("destination_dir", destDir),
					logging.Int("moved_before_failure", ledger.Len()),
					logging.Error(err),
					logging.String(logging.FieldErrorHint, "check permissions and free space; already moved files were not recorded for undo"),
				)
				return nil, services.Wrap(services.ErrIO, stageOrganize, "move file", fmt.Sprintf("Failed to move %s", name), err)
			}
			if err := ledger.Add(src, target); err != nil {
				return nil, services.Wrap(services.ErrIO, stageOrganize, "record move", "Ledger rejected move", err)
			}
			logger.Debug("file moved",
				logging.String("file", name),
				logging.String("category", result.Category),
				logging.String("destination", target),
			)
		}

		summary.add(result.Category, name)
	}

	if !opts.Preview {
		if err := e.history.Save(dir, ledger); err != nil {
			return nil, services.Wrap(services.ErrIO, stageOrganize, "write history", "Failed to write undo history", err)
		}
	}

	logger.Info("organization completed",
		logging.Bool("preview", opts.Preview),
		logging.Int("placed", summary.Total()),
		logging.Int("moved", ledger.Len()),
		logging.Int("excluded", excluded),
		logging.Int("categories", len(summary)),
		logging.Duration("elapsed", time.Since(started)),
	)
	return summary, nil
}

// resolveDirectory makes directory absolute and checks it is a directory.
func (e *Engine) resolveDirectory(directory string) (string, error) {
	if strings.TrimSpace(directory) == "" {
		return "", services.Wrap(services.ErrNotFound, stageOrganize, "resolve directory", "No directory given", nil)
	}
	dir, err := filepath.Abs(directory)
	if err != nil {
		return "", services.Wrap(services.ErrNotFound, stageOrganize, "resolve directory", fmt.Sprintf("Cannot resolve %s", directory), err)
	}
	info, err := e.fs.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", services.Wrap(services.ErrNotFound, stageOrganize, "resolve directory", fmt.Sprintf("Directory does not exist: %s", dir), err)
		}
		return "", services.Wrap(services.ErrIO, stageOrganize, "resolve directory", fmt.Sprintf("Cannot stat %s", dir), err)
	}
	if !info.IsDir() {
		return "", services.Wrap(services.ErrNotFound, stageOrganize, "resolve directory", fmt.Sprintf("Not a directory: %s", dir), nil)
	}
	return dir, nil
}

// regularFile reports whether a listing entry is a regular file, following a
// symlink to see what it points at. Directories are never organized.
func (e *Engine) regularFile(path string, entry os.FileInfo) (os.FileInfo, bool) {
	if entry.Mode().IsRegular() {
		return entry, true
	}
	if entry.Mode()&fs.ModeSymlink == 0 {
		return nil, false
	}
	target, err := e.fs.Stat(path)
	if err != nil || !target.Mode().IsRegular() {
		return nil, false
	}
	return target, true
}

func (e *Engine) ensureDir(ctx context.Context, dir string, ensured map[string]struct{}) error {
	if _, ok := ensured[dir]; ok {
		return nil
	}
	existed, err := afero.DirExists(e.fs, dir)
	if err != nil {
		return services.Wrap(services.ErrIO, stageOrganize, "check folder", fmt.Sprintf("Cannot stat %s", dir), err)
	}
	if !existed {
		if err := e.fs.MkdirAll(dir, 0o755); err != nil {
			return services.Wrap(services.ErrIO, stageOrganize, "create folder", fmt.Sprintf("Failed to create %s", dir), err)
		}
		logging.WithContext(ctx, e.logger).Info("created folder", logging.String("path", dir))
	}
	ensured[dir] = struct{}{}
	return nil
}

// allowedCategories validates requested names against the table. An empty
// request allows the whole table.
func allowedCategories(table classify.Table, requested []string) (classify.Allowed, error) {
	if len(requested) == 0 {
		return classify.Allow(table.Names()...), nil
	}
	var unknown []string
	for _, name := range requested {
		if !table.Has(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return nil, services.Wrap(services.ErrValidation, stageOrganize, "resolve categories",
			fmt.Sprintf("Unknown categories %s (valid: %s)", strings.Join(unknown, ", "), strings.Join(table.Names(), ", ")), nil)
	}
	return classify.Allow(requested...), nil
}
