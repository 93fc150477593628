package compose

import (
	"github.com/goplus/cfgen/pkgs/buildsys/cmake"
	"github.com/goplus/cfgen/pkgs/toolchain"
)

// Shim adds raw generator arguments when its predicate holds for a target.
type Shim struct {
	Name    string
	Applies func(t Target) bool
	Args    func(t Target) []string
}

// Target is what shim predicates see.
type Target struct {
	Toolchain toolchain.Descriptor

	// GeneratorVersion is a canonical semver such as "v3.21.1", or empty when
	// the version of cmake is not known.
	GeneratorVersion string
}

// XcodeLegacyBuildSystem selects the legacy Xcode build system. CMake 3.19
// switched Xcode projects to the new build system, which many hunter packages
// fail to build under.
var XcodeLegacyBuildSystem = Shim{
	Name: "xcode-legacy-build-system",
	Applies: func(t Target) bool {
		return t.Toolchain.IsApple() && t.Toolchain.IsXcode() &&
			cmake.AtLeast(t.GeneratorVersion, "v3.19")
	},
	Args: func(Target) []string {
		return []string{"-DCMAKE_XCODE_BUILD_SYSTEM=1"}
	},
}

// DefaultShims are installed by New.
var DefaultShims = []Shim{XcodeLegacyBuildSystem}

func applyShims(shims []Shim, t Target) []string {
	var args []string
	for _, s := range shims {
		if s.Applies(t) {
			args = append(args, s.Args(t)...)
		}
	}
	return args
}
