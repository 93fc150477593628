package toolchain

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveBuiltin(t *testing.T) {
	root := t.TempDir()
	c, err := NewCatalog(root)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	tests := []struct {
		name        string
		generator   string
		multiConfig bool
		platform    Platform
	}{
		{"osx-10-14-dep-10-10-cxx17", "Xcode", true, Apple},
		{"ios-11-4-dep-9-0-bitcode-cxx17", "Xcode", true, Apple},
		{"gcc-8-cxx17-fpic", "Unix Makefiles", false, Generic},
		{"emscripten-cxx17", "Unix Makefiles", false, Web},
		{"vs-16-2019-win64-cxx17", "Visual Studio 16 2019", true, Windows},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := c.Resolve(tt.name)
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tt.name, err)
			}
			if d.Generator != tt.generator {
				t.Errorf("Generator = %q, want %q", d.Generator, tt.generator)
			}
			if d.MultiConfig != tt.multiConfig {
				t.Errorf("MultiConfig = %v, want %v", d.MultiConfig, tt.multiConfig)
			}
			if d.Platform != tt.platform {
				t.Errorf("Platform = %v, want %v", d.Platform, tt.platform)
			}
			if want := filepath.Join(root, tt.name+".cmake"); d.File != want {
				t.Errorf("File = %q, want %q", d.File, want)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	c, err := NewCatalog(t.TempDir())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	_, err = c.Resolve("gcc-99")
	if !errors.Is(err, ErrUnknownToolchain) {
		t.Fatalf("Resolve error = %v, want ErrUnknownToolchain", err)
	}
	var ute *UnknownToolchainError
	if !errors.As(err, &ute) || ute.Name != "gcc-99" {
		t.Fatalf("Resolve error = %#v, want UnknownToolchainError{gcc-99}", err)
	}
}

func TestCatalogExtra(t *testing.T) {
	root := t.TempDir()
	c, err := NewCatalog(root,
		Spec{Name: "gcc-9", Generator: "Unix Makefiles"},
		Spec{Name: "ninja-clang", Generator: "Ninja", File: "custom/clang.cmake"},
		Spec{Name: "abs", Generator: "Ninja", File: filepath.Join(root, "elsewhere", "abs.cmake")},
	)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	names := c.Names()
	if got := names[len(names)-3:]; !cmp.Equal(got, []string{"gcc-9", "ninja-clang", "abs"}) {
		t.Errorf("extra names = %v, want declaration order", got)
	}
	d, err := c.Resolve("ninja-clang")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(root, "custom", "clang.cmake"); d.File != want {
		t.Errorf("File = %q, want %q", d.File, want)
	}
	d, err = c.Resolve("abs")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(root, "elsewhere", "abs.cmake"); d.File != want {
		t.Errorf("File = %q, want %q", d.File, want)
	}
}

func TestCatalogRejectsBadSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"duplicate builtin", Spec{Name: "gcc-8-cxx17-fpic", Generator: "Ninja"}},
		{"empty name", Spec{Generator: "Ninja"}},
		{"empty generator", Spec{Name: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(t.TempDir(), tt.spec); err == nil {
				t.Fatal("NewCatalog succeeded, want error")
			}
		})
	}
}

func TestResolveReturnsCopy(t *testing.T) {
	c, err := NewCatalog(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	d, _ := c.Resolve("vs-15-2017-win64-cxx17")
	d.GeneratorArgs[0] = "mutated"
	again, _ := c.Resolve("vs-15-2017-win64-cxx17")
	if diff := cmp.Diff([]string{"-T", "host=x64"}, again.GeneratorArgs); diff != "" {
		t.Errorf("catalog mutated through descriptor (-want +got):\n%s", diff)
	}
}

func TestDescriptorPredicates(t *testing.T) {
	d := Descriptor{Name: "emscripten-cxx17", Generator: "Unix Makefiles", Platform: Web}
	if !d.IsEmscripten() || d.IsApple() || d.IsXcode() {
		t.Errorf("emscripten predicates wrong: %+v", d)
	}
	d = Descriptor{Name: "ios-11", Generator: "Xcode", Platform: Apple}
	if d.IsEmscripten() || !d.IsApple() || !d.IsXcode() {
		t.Errorf("ios predicates wrong: %+v", d)
	}
}

func TestParsePlatform(t *testing.T) {
	for _, p := range []Platform{Generic, Apple, Windows, Web} {
		got, err := ParsePlatform(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePlatform(%q) = %v, %v", p.String(), got, err)
		}
	}
	if got, err := ParsePlatform(""); err != nil || got != Generic {
		t.Errorf("ParsePlatform(\"\") = %v, %v", got, err)
	}
	if _, err := ParsePlatform("amiga"); err == nil {
		t.Error("ParsePlatform(amiga) succeeded")
	}
}
