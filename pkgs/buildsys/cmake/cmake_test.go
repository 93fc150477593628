package cmake

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kballard/go-shellquote"
	"golang.org/x/sys/execabs"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		out     string
		want    string
		wantErr bool
	}{
		{"cmake version 3.21.1\n\nCMake suite maintained and supported by Kitware (kitware.com/cmake).\n", "v3.21.1", false},
		{"cmake version 3.19\n", "v3.19.0", false},
		{"cmake3 version 3.17.5\n", "v3.17.5", false},
		{"cmake version 3.22.0-rc1\n", "v3.22.0-rc1", false},
		{"garbage\n", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.out, func(t *testing.T) {
			got, err := ParseVersion([]byte(tt.out))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion(%q) error = %v, wantErr %v", tt.out, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %q, want %q", tt.out, got, tt.want)
			}
		})
	}
}

func TestAtLeast(t *testing.T) {
	tests := []struct {
		version, min string
		want         bool
	}{
		{"v3.19.0", "v3.19", true},
		{"v3.21.1", "v3.19", true},
		{"v3.18.4", "v3.19", false},
		{"v4.0.0", "v3.19", true},
		{"v3.19.0-rc1", "v3.19", false},
		{"", "v3.19", false},
		{"3.21.1", "v3.19", false},
	}
	for _, tt := range tests {
		if got := AtLeast(tt.version, tt.min); got != tt.want {
			t.Errorf("AtLeast(%q, %q) = %v, want %v", tt.version, tt.min, got, tt.want)
		}
	}
}

const helpOutput = `Usage

  cmake [options] <path-to-source>

Options
  -G <generator-name>          = Specify a build system generator.

Generators

The following generators are available on this platform (* marks default):
* Unix Makefiles               = Generates standard UNIX makefiles.
  Ninja                        = Generates build.ninja files.
  Visual Studio 16 2019 [arch] = Generates Visual Studio 2019 project files.
                                 Optional [arch] can be "Win64" or "ARM".
  Xcode                        = Generate Xcode project files.
  CodeBlocks - Ninja           = Generates CodeBlocks project files.
  Sublime Text 2 - Unix Makefiles
                               = Generates Sublime Text 2 project files.
  Eclipse CDT4 - MinGW Makefiles
                               = Generates Eclipse CDT 4.0 project files.
  Kate - Ninja                 = Generates Kate project files.
`

func TestParseGenerators(t *testing.T) {
	want := []string{
		"Unix Makefiles", "Ninja", "Visual Studio 16 2019", "Xcode", "CodeBlocks - Ninja",
		"Sublime Text 2 - Unix Makefiles", "Eclipse CDT4 - MinGW Makefiles", "Kate - Ninja",
	}
	if diff := cmp.Diff(want, ParseGenerators([]byte(helpOutput))); diff != "" {
		t.Errorf("ParseGenerators mismatch (-want +got):\n%s", diff)
	}
}

func TestCommandLine(t *testing.T) {
	got := CommandLine("cmake", []string{
		"-H.", "-B_builds/gcc", "-G", "Unix Makefiles",
		"-DFoo_HOST_GENERATOR=Visual Studio 16 2019", "-DX=ON", "-DEMPTY=",
	})
	want := `cmake -H. -B_builds/gcc -G 'Unix Makefiles' -DFoo_HOST_GENERATOR='Visual Studio 16 2019' -DX=ON -DEMPTY=`
	if got != want {
		t.Errorf("CommandLine =\n%s\nwant\n%s", got, want)
	}
}

func TestCommandLineRoundTrip(t *testing.T) {
	tests := [][]string{
		{"-H.", "-B_builds/gcc-9-Debug", "-G", "Unix Makefiles"},
		{"-DCMAKE_TOOLCHAIN_FILE=/home/u/proj(1)/hunter/polly/gcc.cmake"},
		{"-DX=a;rm -rf /", "-DY=a&b", "-DZ=a|b"},
		{"-DGLOB=*.cmake", "-DQ=what?", "-DREDIR=<in>out"},
		{`-DMSG=say "hi" $HOME`, "-DAPOS=it's", "-DTICK=`id`"},
		{`-DCMAKE_TOOLCHAIN_FILE=C:\polly\vs.cmake`, "~/src"},
		{"-Dweird key=v", "plain(arg)"},
	}
	for _, args := range tests {
		line := CommandLine("cmake", args)
		words, err := shellquote.Split(line)
		if err != nil {
			t.Errorf("Split(%s): %v", line, err)
			continue
		}
		if diff := cmp.Diff(append([]string{"cmake"}, args...), words); diff != "" {
			t.Errorf("%s does not split back (-want +got):\n%s", line, diff)
		}
	}
}

func TestCommandLineKeepsDefineKeyBare(t *testing.T) {
	got := CommandLine("cmake", []string{"-DCMAKE_TOOLCHAIN_FILE=/home/u/proj(1)/x.cmake", "-DX=a;b"})
	want := `cmake -DCMAKE_TOOLCHAIN_FILE=/home/u/proj\(1\)/x.cmake -DX=a\;b`
	if got != want {
		t.Errorf("CommandLine =\n%s\nwant\n%s", got, want)
	}
}

func TestEnvList(t *testing.T) {
	got := envList(map[string]string{"B": "1", "A": "x=y", "C": ""})
	if diff := cmp.Diff([]string{"A=x=y", "B=1", "C="}, got); diff != "" {
		t.Errorf("envList mismatch (-want +got):\n%s", diff)
	}
}

func TestMissingExecutable(t *testing.T) {
	c := &CMake{Path: "cfgen-no-such-cmake"}
	if _, err := c.Version(context.Background()); err == nil {
		t.Fatal("Version succeeded without an executable")
	}
	err := c.Configure(context.Background(), t.TempDir(), []string{"-H."})
	var ee *execabs.ExitError
	if err == nil || errors.As(err, &ee) {
		t.Fatalf("Configure without an executable = %v, want start error", err)
	}
}

func TestEnvReachesCMake(t *testing.T) {
	if _, err := execabs.LookPath("cmake"); err != nil {
		t.Skip("cmake not found in PATH")
	}
	c := New()
	c.Env = map[string]string{"CFGEN_TEST_VAR": "from config"}
	out, err := c.output(context.Background(), "-E", "environment")
	if err != nil {
		t.Fatalf("cmake -E environment: %v", err)
	}
	if !strings.Contains(string(out), "CFGEN_TEST_VAR=from config") {
		t.Errorf("environment lacks CFGEN_TEST_VAR:\n%s", out)
	}
}

func TestConfigureE2E(t *testing.T) {
	if _, err := execabs.LookPath("cmake"); err != nil {
		t.Skip("cmake not found in PATH")
	}

	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "CMakeLists.txt"), []byte(
		"cmake_minimum_required(VERSION 3.5)\nproject(dummy NONE)\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	toolchainFile := filepath.Join(src, "toolchain.cmake")
	if err := os.WriteFile(toolchainFile, []byte("# dummy toolchain\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	build := filepath.Join(src, "_builds", "dummy")

	c := New()
	c.Stdout, c.Stderr = nil, nil
	ctx := context.Background()

	v, err := c.Version(ctx)
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if !AtLeast(v, "v3.0") {
		t.Errorf("Version = %q", v)
	}

	err = c.Configure(ctx, src, []string{
		"-H.", "-B" + build, "-DCMAKE_TOOLCHAIN_FILE=" + toolchainFile, "-DFOO=BAR",
	})
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(build, "CMakeCache.txt"))
	if err != nil {
		t.Fatalf("read cache: %v", err)
	}
	if !strings.Contains(string(data), "FOO:UNINITIALIZED=BAR") {
		t.Errorf("cache missing FOO define")
	}

	err = c.Configure(ctx, src, []string{"-H.", "-B" + build, "-Gcfgen-bogus-generator"})
	var ee *execabs.ExitError
	if !errors.As(err, &ee) || ee.ExitCode() == 0 {
		t.Fatalf("Configure with bogus generator error = %v, want exit error", err)
	}
}
