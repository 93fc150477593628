// Package toolchain provides the catalog of polly toolchains known to cfgen.
package toolchain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownToolchain is matched by every *UnknownToolchainError.
var ErrUnknownToolchain = errors.New("unknown toolchain")

// UnknownToolchainError reports a toolchain name with no descriptor.
type UnknownToolchainError struct {
	Name string
}

func (e *UnknownToolchainError) Error() string {
	return fmt.Sprintf("unknown toolchain: %q", e.Name)
}

func (e *UnknownToolchainError) Is(target error) bool {
	return target == ErrUnknownToolchain
}

// Descriptor describes a single toolchain: which CMake generator drives it and
// where its toolchain file lives.
type Descriptor struct {
	Name        string
	Generator   string
	MultiConfig bool // generator selects the build configuration itself
	File        string
	Platform    Platform

	// GeneratorArgs follow -G on the command line (e.g. "-A", "x64").
	GeneratorArgs []string
	Description   string
}

// IsEmscripten reports whether d is an Emscripten-class toolchain.
func (d Descriptor) IsEmscripten() bool {
	return strings.Contains(d.Name, "emscripten")
}

// IsApple reports whether d targets macOS or iOS.
func (d Descriptor) IsApple() bool {
	return d.Platform == Apple
}

// IsXcode reports whether d uses the Xcode project generator.
func (d Descriptor) IsXcode() bool {
	return strings.Contains(d.Generator, "Xcode")
}

// Spec is a catalog entry before its toolchain file is resolved.
// An empty File means <root>/<Name>.cmake.
type Spec struct {
	Name          string
	Generator     string
	MultiConfig   bool
	File          string
	Platform      Platform
	GeneratorArgs []string
	Description   string
}

// Catalog is an immutable, ordered set of toolchain descriptors.
type Catalog struct {
	list  []Descriptor
	index map[string]int
}

// NewCatalog builds a catalog from the built-in toolchains followed by extra.
// Toolchain files are resolved against root and made absolute.
func NewCatalog(root string, extra ...Spec) (*Catalog, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve toolchain root: %w", err)
	}
	specs := make([]Spec, 0, len(builtin)+len(extra))
	specs = append(specs, builtin...)
	specs = append(specs, extra...)

	c := &Catalog{
		list:  make([]Descriptor, 0, len(specs)),
		index: make(map[string]int, len(specs)),
	}
	for _, s := range specs {
		if s.Name == "" {
			return nil, errors.New("toolchain with empty name")
		}
		if s.Generator == "" {
			return nil, fmt.Errorf("toolchain %q: empty generator", s.Name)
		}
		if _, dup := c.index[s.Name]; dup {
			return nil, fmt.Errorf("toolchain %q defined twice", s.Name)
		}
		file := s.File
		if file == "" {
			file = filepath.Join(absRoot, s.Name+".cmake")
		} else if !filepath.IsAbs(file) {
			file = filepath.Join(absRoot, file)
		}
		c.index[s.Name] = len(c.list)
		c.list = append(c.list, Descriptor{
			Name:          s.Name,
			Generator:     s.Generator,
			MultiConfig:   s.MultiConfig,
			File:          filepath.Clean(file),
			Platform:      s.Platform,
			GeneratorArgs: append([]string(nil), s.GeneratorArgs...),
			Description:   s.Description,
		})
	}
	return c, nil
}

// Resolve returns the descriptor registered under name.
func (c *Catalog) Resolve(name string) (Descriptor, error) {
	i, ok := c.index[name]
	if !ok {
		return Descriptor{}, &UnknownToolchainError{Name: name}
	}
	d := c.list[i]
	d.GeneratorArgs = append([]string(nil), d.GeneratorArgs...)
	return d, nil
}

// All returns every descriptor in declaration order.
func (c *Catalog) All() []Descriptor {
	out := make([]Descriptor, len(c.list))
	for i, d := range c.list {
		d.GeneratorArgs = append([]string(nil), d.GeneratorArgs...)
		out[i] = d
	}
	return out
}

// Names returns all toolchain names in declaration order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.list))
	for i, d := range c.list {
		names[i] = d.Name
	}
	return names
}
