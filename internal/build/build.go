package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goplus/cfgen/internal/compose"
	"github.com/goplus/cfgen/pkgs/buildsys"
)

// CacheFile is removed by a reconfigure.
const CacheFile = "CMakeCache.txt"

// ExitError reports that the generator ran and exited unsuccessfully. Code is
// its exit status, which cfgen exits with unchanged.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("generator exited with status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// Options controls the side effects around a configure run.
type Options struct {
	// Dir is the project directory. Relative build paths and the generator
	// working directory are taken relative to it.
	Dir string

	BuildRoot   string // removed by ClearAll, compose.DefaultBuildRoot if empty
	ClearAll    bool
	Clear       bool // remove the build directory; ignored with ClearAll
	Reconfigure bool // remove CMakeCache.txt before configuring
	DryRun      bool // print the invocation, touch nothing

	Stdout io.Writer // dry-run output, os.Stdout if nil
	Logger *slog.Logger
}

// Builder prepares build directories and runs the generator.
type Builder struct {
	sys  buildsys.BuildSystem
	opts Options
}

// NewBuilder returns a Builder driving sys.
func NewBuilder(sys buildsys.BuildSystem, opts Options) *Builder {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.BuildRoot == "" {
		opts.BuildRoot = compose.DefaultBuildRoot
	}
	return &Builder{sys: sys, opts: opts}
}

// Configure clears and creates the build directory of res as requested, then
// runs the generator once. A generator failure is returned as *ExitError.
func (b *Builder) Configure(ctx context.Context, res *compose.Result) error {
	log := b.opts.Logger
	if b.opts.DryRun {
		_, err := fmt.Fprintln(b.opts.Stdout, res.Invocation)
		return err
	}

	buildDir := b.path(res.BuildDir)
	switch {
	case b.opts.ClearAll:
		root := b.path(b.opts.BuildRoot)
		log.Info("clearing build root", slog.String("dir", root))
		if err := os.RemoveAll(root); err != nil {
			return fmt.Errorf("clear build root: %w", err)
		}
	case b.opts.Clear:
		log.Info("clearing build directory", slog.String("dir", buildDir))
		if err := os.RemoveAll(buildDir); err != nil {
			return fmt.Errorf("clear build directory: %w", err)
		}
	}

	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return fmt.Errorf("create build directory: %w", err)
	}

	if b.opts.Reconfigure {
		cache := filepath.Join(buildDir, CacheFile)
		log.Info("removing cmake cache", slog.String("file", cache))
		if err := os.Remove(cache); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove cmake cache: %w", err)
		}
	}

	log.Debug("running generator",
		slog.String("cmd", res.Invocation),
		slog.String("dir", b.opts.Dir),
	)
	if err := b.sys.Configure(ctx, b.opts.Dir, res.Args); err != nil {
		var ec interface{ ExitCode() int }
		if errors.As(err, &ec) && ec.ExitCode() > 0 {
			return &ExitError{Code: ec.ExitCode(), Err: err}
		}
		return fmt.Errorf("run %s: %w", b.sys.Name(), err)
	}
	return nil
}

func (b *Builder) path(p string) string {
	if filepath.IsAbs(p) || b.opts.Dir == "" {
		return filepath.FromSlash(p)
	}
	return filepath.Join(b.opts.Dir, filepath.FromSlash(p))
}
