package env

import (
	"os"
	"path/filepath"

	"github.com/goplus/cfgen/internal/compose"
)

// Environment variables consulted when no explicit value is given.
const (
	PollyRootVar = "CFGEN_POLLY_ROOT"
	BuildRootVar = "CFGEN_BUILD_ROOT"
)

// DefaultPollyDir is where polly lives inside a project checkout.
var DefaultPollyDir = filepath.Join("hunter", "polly")

// PollyRoot returns the directory holding the polly toolchain files.
// Relative values are resolved against projectDir.
func PollyRoot(projectDir, override string) (string, error) {
	root := override
	if root == "" {
		root = os.Getenv(PollyRootVar)
	}
	if root == "" {
		root = DefaultPollyDir
	}
	if !filepath.IsAbs(root) {
		root = filepath.Join(projectDir, root)
	}
	return filepath.Abs(root)
}

// BuildRoot returns the directory per-toolchain build directories live in.
func BuildRoot(override string) string {
	if override != "" {
		return override
	}
	if root := os.Getenv(BuildRootVar); root != "" {
		return root
	}
	return compose.DefaultBuildRoot
}
