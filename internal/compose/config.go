package compose

import (
	"fmt"
	"strings"
)

// Config is a CMake build configuration. The zero value means unset.
type Config string

const (
	Unset          Config = ""
	Debug          Config = "Debug"
	Release        Config = "Release"
	RelWithDebInfo Config = "RelWithDebInfo"
	MinSizeRel     Config = "MinSizeRel"
)

// Configs lists the valid configurations in help order.
var Configs = []Config{Debug, Release, RelWithDebInfo, MinSizeRel}

// ParseConfig validates s as a configuration name. Empty is Unset.
func ParseConfig(s string) (Config, error) {
	if s == "" {
		return Unset, nil
	}
	for _, c := range Configs {
		if string(c) == s {
			return c, nil
		}
	}
	names := make([]string, len(Configs))
	for i, c := range Configs {
		names[i] = string(c)
	}
	return Unset, fmt.Errorf("invalid config %q (choose from %s)", s, strings.Join(names, ", "))
}

func (c Config) String() string { return string(c) }

// Set implements the pflag.Value interface.
func (c *Config) Set(s string) error {
	v, err := ParseConfig(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Type implements the pflag.Value interface.
func (c *Config) Type() string { return "config" }

// orDebug returns c, or Debug when c is unset.
func (c Config) orDebug() Config {
	if c == Unset {
		return Debug
	}
	return c
}
