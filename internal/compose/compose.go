// Package compose turns a resolved toolchain and a set of feature flags into a
// complete CMake configure invocation.
//
// Composition is pure: it touches neither the filesystem nor any process, and
// identical inputs always yield identical results.
package compose

import (
	"errors"
	"path"

	"github.com/goplus/cfgen/pkgs/buildsys/cmake"
	"github.com/goplus/cfgen/pkgs/flags"
	"github.com/goplus/cfgen/pkgs/toolchain"
)

// DefaultBuildRoot holds per-toolchain build directories.
const DefaultBuildRoot = "_builds"

// ErrMissingProjectName is matched by every *MissingProjectNameError.
var ErrMissingProjectName = errors.New("missing project name")

// MissingProjectNameError reports that no project prefix is available for
// project-scoped defines.
type MissingProjectNameError struct {
	Source string // where the name was looked up, if known
}

func (e *MissingProjectNameError) Error() string {
	if e.Source != "" {
		return "couldn't find PROJ_NAME in " + e.Source
	}
	return "project name is empty"
}

func (e *MissingProjectNameError) Is(target error) bool {
	return target == ErrMissingProjectName
}

// Arguments every invocation passes after the toolchain file.
var defaultDefines = []string{
	"-DHUNTER_STATUS_DEBUG=OFF",
	"-DHUNTER_USE_CACHE_SERVERS=YES",
}

// Input collects everything a composition depends on.
type Input struct {
	Toolchain toolchain.Descriptor
	Host      *toolchain.Descriptor // cross-compiling host toolchain, optional
	Config    Config                // ignored by multi-config toolchains
	Active    flags.Set
	Dev       bool

	BuildDir  string // overrides the derived build directory
	BuildRoot string // defaults to DefaultBuildRoot
	SourceDir string // defaults to "."
	Project   string

	// GeneratorVersion is the canonical cmake version ("v3.21.1"), or empty.
	GeneratorVersion string
}

// Result is a fully composed configure invocation.
type Result struct {
	Toolchain toolchain.Descriptor
	BuildDir  string
	Defines   []string // project defines and shims, in emission order

	// Args is the cmake argument vector, excluding the program name.
	Args       []string
	Invocation string
}

// Composer composes invocations against one flag registry.
type Composer struct {
	Registry *flags.Registry
	Shims    []Shim
}

// New returns a Composer using reg and DefaultShims.
func New(reg *flags.Registry) *Composer {
	return &Composer{Registry: reg, Shims: DefaultShims}
}

// Compose builds the invocation for in. It either returns a complete Result
// or an error, never both.
func (c *Composer) Compose(in Input) (*Result, error) {
	tc := in.Toolchain
	if tc.Name == "" || tc.Generator == "" {
		return nil, errors.New("compose: toolchain is not resolved")
	}
	if in.Project == "" {
		return nil, &MissingProjectNameError{}
	}
	prefix := "-D" + in.Project + "_"

	buildDir := in.BuildDir
	if buildDir == "" {
		root := in.BuildRoot
		if root == "" {
			root = DefaultBuildRoot
		}
		name := tc.Name
		if !tc.MultiConfig {
			name += "-" + in.Config.orDebug().String()
		}
		buildDir = path.Join(root, name)
	}

	var defines []string
	for _, frag := range c.Registry.Project(in.Active) {
		defines = append(defines, prefix+frag)
	}
	if !tc.MultiConfig {
		defines = append(defines, "-DCMAKE_BUILD_TYPE="+in.Config.orDebug().String())
	}
	if tc.IsEmscripten() {
		defines = append(defines, "-DEMSCRIPTEN_FORCE_COMPILERS=ON")
	}
	if in.Host != nil {
		defines = append(defines,
			prefix+"HOST_TOOLCHAIN_FILE="+in.Host.File,
			prefix+"HOST_GENERATOR="+in.Host.Generator,
		)
	}
	if in.Dev || in.Config == Unset || in.Config == Debug {
		defines = append(defines, prefix+"DEV=ON")
	}
	defines = append(defines, applyShims(c.Shims, Target{
		Toolchain:        tc,
		GeneratorVersion: in.GeneratorVersion,
	})...)

	src := in.SourceDir
	if src == "" {
		src = "."
	}
	args := []string{"-H" + src, "-B" + buildDir, "-G", tc.Generator}
	args = append(args, tc.GeneratorArgs...)
	args = append(args, "-DCMAKE_TOOLCHAIN_FILE="+tc.File)
	args = append(args, defaultDefines...)
	args = append(args, defines...)

	return &Result{
		Toolchain:  tc,
		BuildDir:   buildDir,
		Defines:    defines,
		Args:       args,
		Invocation: cmake.CommandLine("cmake", args),
	}, nil
}
