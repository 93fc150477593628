// Package config loads the optional per-project .cfgen.yaml file.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/goplus/cfgen/pkgs/toolchain"
)

// FileName is the configuration file looked up in the project directory.
const FileName = ".cfgen.yaml"

// Config is the content of .cfgen.yaml.
type Config struct {
	Project    string            `yaml:"project,omitempty"`
	PollyRoot  string            `yaml:"pollyRoot,omitempty"`
	BuildRoot  string            `yaml:"buildRoot,omitempty"`
	Env        map[string]string `yaml:"env,omitempty"` // set for every cmake run
	Flags      []string          `yaml:"flags,omitempty"`
	Toolchains []ToolchainEntry  `yaml:"toolchains,omitempty"`
}

// ToolchainEntry declares a project-specific toolchain.
type ToolchainEntry struct {
	Name          string   `yaml:"name"`
	Generator     string   `yaml:"generator"`
	MultiConfig   bool     `yaml:"multiConfig,omitempty"`
	Platform      string   `yaml:"platform,omitempty"`
	File          string   `yaml:"file,omitempty"`
	GeneratorArgs []string `yaml:"generatorArgs,omitempty"`
	Description   string   `yaml:"description,omitempty"`
}

// Load reads dir/.cfgen.yaml. A missing file yields an empty Config.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates data against the configuration schema and decodes it.
func Parse(data []byte) (*Config, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if doc == nil {
		return &Config{}, nil
	}
	// round-trip through JSON so the validator sees JSON types only
	js, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	if err := validate(js); err != nil {
		return nil, err
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// ToolchainSpecs converts the declared toolchains to catalog specs. Relative
// toolchain files are resolved against projectDir.
func (c *Config) ToolchainSpecs(projectDir string) ([]toolchain.Spec, error) {
	specs := make([]toolchain.Spec, 0, len(c.Toolchains))
	for _, e := range c.Toolchains {
		p, err := toolchain.ParsePlatform(e.Platform)
		if err != nil {
			return nil, fmt.Errorf("toolchain %q: %w", e.Name, err)
		}
		file := e.File
		if file != "" && !filepath.IsAbs(file) {
			file = filepath.Join(projectDir, file)
		}
		specs = append(specs, toolchain.Spec{
			Name:          e.Name,
			Generator:     e.Generator,
			MultiConfig:   e.MultiConfig,
			File:          file,
			Platform:      p,
			GeneratorArgs: e.GeneratorArgs,
			Description:   e.Description,
		})
	}
	return specs, nil
}
