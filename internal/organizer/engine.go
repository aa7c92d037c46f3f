package organizer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"filesorter/internal/classify"
	"filesorter/internal/history"
	"filesorter/internal/logging"
	"filesorter/internal/services"
)

// Options controls one organize run.
type Options struct {
	// IncludeExecutables enables the Executables category (.exe, .msi).
	IncludeExecutables bool
	// Preview computes the summary without creating directories, moving
	// files, or writing history.
	Preview bool
	// Categories restricts the run to these category names. Empty means every
	// category of the table.
	Categories []string
	// Table overrides the category table. The zero value selects
	// classify.DefaultTable(IncludeExecutables).
	Table classify.Table
}

func (o Options) table() classify.Table {
	if o.Table.IsZero() {
		return classify.DefaultTable(o.IncludeExecutables)
	}
	return o.Table
}

// Engine organizes directories and undoes the last run. It holds no per-run
// state and may be reused for any number of directories.
type Engine struct {
	fs      afero.Fs
	history *history.Store
	logger  *slog.Logger
	// rename moves src to dst and fails with an fs.ErrExist error when dst is
	// already taken.
	rename func(src, dst string) error
}

// NewEngine constructs an engine over the OS filesystem.
func NewEngine(logger *slog.Logger) *Engine {
	return NewEngineWithFS(afero.NewOsFs(), logger)
}

// NewEngineWithFS allows injecting the filesystem (used in tests).
func NewEngineWithFS(fsys afero.Fs, logger *slog.Logger) *Engine {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	e := &Engine{
		fs:      fsys,
		history: history.NewStore(fsys),
		logger:  logging.NewComponentLogger(logger, "organizer"),
	}
	e.rename = e.renameNoClobber
	return e
}

// OrganizeDirectory organizes directory on the OS filesystem without logging.
func OrganizeDirectory(ctx context.Context, directory string, opts Options) (Summary, error) {
	return NewEngine(nil).Organize(ctx, directory, opts)
}

// UndoLastOrganization reverts the last organize run of directory on the OS
// filesystem. It reports false when there was nothing to undo or the undo
// could not complete.
func UndoLastOrganization(ctx context.Context, directory string) bool {
	return NewEngine(nil).Undo(ctx, directory).OK()
}

// withRun stamps a run ID, directory, and operation onto ctx. An existing run
// ID set by the caller is kept so it can be reported back to users.
func withRun(ctx context.Context, dir, operation string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := services.RunIDFromContext(ctx); !ok {
		ctx = services.WithRunID(ctx, uuid.NewString())
	}
	ctx = services.WithDirectory(ctx, dir)
	return services.WithOperation(ctx, operation)
}
