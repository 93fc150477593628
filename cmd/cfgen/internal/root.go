package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/goplus/cfgen/internal/build"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cfgen",
	Short: "cfgen configures CMake build directories",
	Long: `cfgen composes a CMake configure invocation from a toolchain, a build
configuration and a set of feature flags, prepares the build directory and
runs cmake in it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cfgen: %v\n", err)
	}
	return exitCode(err)
}

// exitCode maps err to a process exit status. A failing generator passes its
// own status through.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *build.ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return 1
}
