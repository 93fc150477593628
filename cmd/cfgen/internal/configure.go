package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/goplus/cfgen/internal/build"
	"github.com/goplus/cfgen/internal/compose"
	"github.com/goplus/cfgen/internal/config"
	"github.com/goplus/cfgen/internal/env"
	"github.com/goplus/cfgen/internal/project"
	"github.com/goplus/cfgen/pkgs/buildsys"
	"github.com/goplus/cfgen/pkgs/buildsys/cmake"
	"github.com/goplus/cfgen/pkgs/flags"
	"github.com/goplus/cfgen/pkgs/toolchain"
	"github.com/spf13/cobra"
)

var (
	configureDev         bool
	configureReconfigure bool
	configureConfig      compose.Config
	configureGenerator   string
	configureBuildDir    string
	configureClear       bool
	configureClearAll    bool
	configureHost        string
	configureDryRun      bool
	configureVerbose     bool
)

// newBuildSystem returns the generator driver. Tests replace it.
var newBuildSystem = func(stdout, stderr io.Writer, env map[string]string) buildsys.BuildSystem {
	c := cmake.New()
	c.Stdout = stdout
	c.Stderr = stderr
	c.Env = env
	return c
}

var configureCmd = &cobra.Command{
	Use:   "configure [toolchain]",
	Short: "Configure a build directory for a toolchain",
	Long: `Configure composes the cmake invocation for the given toolchain and runs it
in _builds/<toolchain>[-<config>]. Without a toolchain argument the toolchain
is picked interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigure,
}

func init() {
	fs := configureCmd.Flags()
	fs.SortFlags = false
	for _, f := range flags.Default.All() {
		fs.Bool(f.Option(), false, f.Description)
	}
	fs.BoolVar(&configureDev, "dev", false, "Enable developer mode (also implied by Debug builds)")
	fs.BoolVarP(&configureReconfigure, "reconfigure", "r", false, "Remove CMakeCache.txt before configuring")
	fs.VarP(&configureConfig, "config", "c", "Build configuration: Debug, Release, RelWithDebInfo or MinSizeRel (single-config toolchains only)")
	fs.StringVarP(&configureGenerator, "generator", "G", "", "Override the generator of a single-config toolchain")
	fs.StringVarP(&configureBuildDir, "build-dir", "B", "", "Build directory, instead of _builds/<toolchain>[-<config>]")
	fs.BoolVar(&configureClear, "clear", false, "Remove the build directory before configuring")
	fs.BoolVar(&configureClearAll, "clear-all", false, "Remove all build directories before configuring")
	fs.StringVar(&configureHost, "host", "", "Host toolchain used for tools run during a cross build")
	fs.BoolVar(&configureDryRun, "dry-run", false, "Print the cmake invocation without running it")
	fs.BoolVarP(&configureVerbose, "verbose", "v", false, "Log each step")
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	log := newLogger(stderr, configureVerbose)

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	name := cfg.Project
	if name == "" {
		proj, err := project.Open(dir)
		if err != nil {
			return err
		}
		if name, err = proj.Name(); err != nil {
			return err
		}
	}
	log.Info("project", slog.String("name", name), slog.String("dir", dir))

	catalog, err := loadCatalog(dir, cfg)
	if err != nil {
		return err
	}
	var tc toolchain.Descriptor
	if len(args) == 1 {
		tc, err = catalog.Resolve(args[0])
	} else {
		tc, err = pickToolchain(cmd.InOrStdin(), stdout, catalog.All())
	}
	if err != nil {
		return err
	}
	var host *toolchain.Descriptor
	if configureHost != "" {
		h, err := catalog.Resolve(configureHost)
		if err != nil {
			return fmt.Errorf("host: %w", err)
		}
		host = &h
	}

	active, err := activeFlags(cmd, flags.Default, cfg.Flags)
	if err != nil {
		return err
	}
	active, warnings := compose.ApplyPolicy(flags.Default, tc, active)
	for _, w := range warnings {
		log.Warn(w)
	}

	// queries run even with --dry-run so the printed invocation carries the
	// same version-gated shims and generator as a real run
	sys := newBuildSystem(stdout, stderr, cfg.Env)
	version, err := sys.Version(ctx)
	if err != nil {
		log.Warn("cannot determine cmake version", slog.Any("err", err))
	} else {
		log.Info("cmake", slog.String("version", version))
	}

	if configureGenerator != "" {
		if tc.MultiConfig {
			log.Warn("--generator ignored for multi-config toolchain", slog.String("toolchain", tc.Name))
		} else {
			if err := checkGenerator(ctx, sys, configureGenerator); err != nil {
				if !configureDryRun {
					return err
				}
				log.Warn("generator not validated", slog.Any("err", err))
			}
			tc.Generator = configureGenerator
		}
	}
	if tc.MultiConfig && configureConfig != compose.Unset {
		log.Warn("--config ignored for multi-config toolchain", slog.String("toolchain", tc.Name))
	}

	buildRoot := env.BuildRoot(cfg.BuildRoot)
	res, err := compose.New(flags.Default).Compose(compose.Input{
		Toolchain:        tc,
		Host:             host,
		Config:           configureConfig,
		Active:           active,
		Dev:              configureDev,
		BuildDir:         configureBuildDir,
		BuildRoot:        buildRoot,
		Project:          name,
		GeneratorVersion: version,
	})
	if err != nil {
		return err
	}

	b := build.NewBuilder(sys, build.Options{
		Dir:         dir,
		BuildRoot:   buildRoot,
		ClearAll:    configureClearAll,
		Clear:       configureClear,
		Reconfigure: configureReconfigure,
		DryRun:      configureDryRun,
		Stdout:      stdout,
		Logger:      log,
	})
	return b.Configure(ctx, res)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadCatalog(dir string, cfg *config.Config) (*toolchain.Catalog, error) {
	root, err := env.PollyRoot(dir, cfg.PollyRoot)
	if err != nil {
		return nil, err
	}
	specs, err := cfg.ToolchainSpecs(dir)
	if err != nil {
		return nil, err
	}
	return toolchain.NewCatalog(root, specs...)
}

// activeFlags starts from the configured defaults and applies every flag
// given on the command line, so --with-x=false can switch a default off.
func activeFlags(cmd *cobra.Command, reg *flags.Registry, defaults []string) (flags.Set, error) {
	set, err := reg.NewSet(defaults...)
	if err != nil {
		return flags.Set{}, err
	}
	for _, f := range reg.All() {
		if !cmd.Flags().Changed(f.Option()) {
			continue
		}
		v, err := cmd.Flags().GetBool(f.Option())
		if err != nil {
			return flags.Set{}, err
		}
		if v {
			set, err = set.With(f.Key)
		} else {
			set, err = set.Without(f.Key)
		}
		if err != nil {
			return flags.Set{}, err
		}
	}
	return set, nil
}

func checkGenerator(ctx context.Context, sys buildsys.BuildSystem, name string) error {
	gens, err := sys.Generators(ctx)
	if err != nil {
		return fmt.Errorf("list generators: %w", err)
	}
	if !slices.Contains(gens, name) {
		return fmt.Errorf("generator %q is not supported by %s", name, sys.Name())
	}
	return nil
}
