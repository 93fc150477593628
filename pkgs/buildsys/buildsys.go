package buildsys

import "context"

// BuildSystem is the build-file generator cfgen hands a composed invocation to.
// *cmake.CMake is the real implementation; tests substitute fakes.
type BuildSystem interface {
	// Name is the program name used when rendering command lines.
	Name() string

	// Configure runs the generator with args in dir.
	// A non-zero exit status must be reported as an error exposing
	// ExitCode() int.
	Configure(ctx context.Context, dir string, args []string) error

	// Version returns the generator version as canonical semver ("v3.21.1").
	Version(ctx context.Context) (string, error)

	// Generators lists the generator names the build system accepts.
	Generators(ctx context.Context) ([]string, error)
}
