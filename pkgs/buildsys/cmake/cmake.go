// Package cmake drives the cmake executable: configure runs, version and
// generator discovery, and command line rendering.
package cmake

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"golang.org/x/mod/semver"
	"golang.org/x/sys/execabs"

	"github.com/goplus/cfgen/pkgs/buildsys"
)

// CMake runs a cmake executable.
type CMake struct {
	Path   string // executable, "cmake" when empty
	Stdout io.Writer
	Stderr io.Writer
	Env    map[string]string // set on top of the inherited environment
}

var _ buildsys.BuildSystem = (*CMake)(nil)

// New returns a CMake using cmake from PATH and the process stdio.
func New() *CMake {
	return &CMake{
		Path:   "cmake",
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Name returns the executable cmake is run as.
func (c *CMake) Name() string {
	if c.Path == "" {
		return "cmake"
	}
	return c.Path
}

// Configure runs cmake with args in dir. A non-zero exit status is returned as
// *execabs.ExitError.
func (c *CMake) Configure(ctx context.Context, dir string, args []string) error {
	cmd := c.command(ctx, args)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	return cmd.Run()
}

// Version returns the canonical semantic version of cmake, e.g. "v3.21.1".
func (c *CMake) Version(ctx context.Context) (string, error) {
	out, err := c.output(ctx, "--version")
	if err != nil {
		return "", err
	}
	return ParseVersion(out)
}

// Generators returns the generator names cmake supports.
func (c *CMake) Generators(ctx context.Context) ([]string, error) {
	out, err := c.output(ctx, "--help")
	if err != nil {
		return nil, err
	}
	return ParseGenerators(out), nil
}

func (c *CMake) command(ctx context.Context, args []string) *execabs.Cmd {
	cmd := execabs.CommandContext(ctx, c.Name(), args...)
	if len(c.Env) > 0 {
		// exec keeps the last value of a duplicated key
		cmd.Env = append(os.Environ(), envList(c.Env)...)
	}
	return cmd
}

func (c *CMake) output(ctx context.Context, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := c.command(ctx, args)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &OutputError{Args: args, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return stdout.Bytes(), nil
}

// OutputError is returned when a cmake query exits unsuccessfully.
type OutputError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *OutputError) Error() string {
	msg := "cmake " + strings.Join(e.Args, " ") + ": " + e.Err.Error()
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *OutputError) Unwrap() error { return e.Err }

var versionRE = regexp.MustCompile(`cmake(?:3)? version (\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z.-]+)?)`)

// ParseVersion extracts the version from "cmake --version" output and returns
// it in canonical semver form.
func ParseVersion(out []byte) (string, error) {
	m := versionRE.FindSubmatch(out)
	if m == nil {
		return "", &VersionError{Output: firstLine(out)}
	}
	v := semver.Canonical("v" + string(m[1]))
	if v == "" {
		return "", &VersionError{Output: firstLine(out)}
	}
	return v, nil
}

// VersionError reports cmake version output that could not be parsed.
type VersionError struct {
	Output string
}

func (e *VersionError) Error() string {
	return "cannot parse cmake version from " + strconv.Quote(e.Output)
}

// AtLeast reports whether version is valid and not older than min. Both are
// semver strings with a leading "v".
func AtLeast(version, min string) bool {
	if !semver.IsValid(version) || !semver.IsValid(min) {
		return false
	}
	return semver.Compare(version, min) >= 0
}

// ParseGenerators extracts generator names from "cmake --help" output.
// Names too long for the name column sit on a line of their own, with the
// "= description" part on the following line.
func ParseGenerators(out []byte) []string {
	var gens []string
	inSection := false
	wrapped := ""
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if !inSection {
			if strings.HasPrefix(line, "Generators") {
				inSection = true
			}
			continue
		}
		key, _, ok := strings.Cut(line, "=")
		if !ok {
			wrapped = generatorName(line)
			continue
		}
		name := generatorName(key)
		if name == "" {
			name = wrapped
		}
		wrapped = ""
		if name != "" {
			gens = append(gens, name)
		}
	}
	return gens
}

func generatorName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "* ")
	s = strings.TrimSuffix(s, " [arch]")
	return strings.TrimSpace(s)
}

// CommandLine renders name and args as one POSIX shell command line that
// splits back into exactly name and args. In "-DKEY=value" only the value is
// quoted.
func CommandLine(name string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, shellquote.Join(name))
	for _, a := range args {
		parts = append(parts, quoteArg(a))
	}
	return strings.Join(parts, " ")
}

func quoteArg(s string) string {
	key, value, ok := strings.Cut(s, "=")
	if !ok || !strings.HasPrefix(key, "-D") || value == "" || shellquote.Join(key) != key {
		return shellquote.Join(s)
	}
	return key + "=" + shellquote.Join(value)
}

func firstLine(out []byte) string {
	line, _, _ := bytes.Cut(out, []byte("\n"))
	return strings.TrimSpace(string(line))
}

// envList renders env as KEY=value pairs in key order.
func envList(env map[string]string) []string {
	list := make([]string, 0, len(env))
	for _, k := range slices.Sorted(maps.Keys(env)) {
		list = append(list, k+"="+env[k])
	}
	return list
}
