// Package flags declares the project feature flags cfgen understands and maps
// selected flags to project-scoped CMake defines.
package flags

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ErrUnknownFlag is matched by every *UnknownFlagError.
var ErrUnknownFlag = errors.New("unknown flag")

// UnknownFlagError reports a key that is not part of a registry.
type UnknownFlagError struct {
	Key string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("unknown flag: %q", e.Key)
}

func (e *UnknownFlagError) Is(target error) bool {
	return target == ErrUnknownFlag
}

// Flag maps a semantic option to the define fragment that follows the
// "<Project>_" prefix.
type Flag struct {
	Key         string
	Define      string
	Description string
}

// Option returns the command line name of f, e.g. "with-java".
func (f Flag) Option() string {
	return strings.ReplaceAll(f.Key, "_", "-")
}

// Registry is an ordered, immutable list of flags. Declaration order is the
// order of help text and of emitted defines.
type Registry struct {
	flags []Flag
	index map[string]uint
}

// New returns a registry holding flags in the given order.
func New(flags ...Flag) (*Registry, error) {
	r := &Registry{
		flags: make([]Flag, len(flags)),
		index: make(map[string]uint, len(flags)),
	}
	for i, f := range flags {
		if f.Key == "" {
			return nil, errors.New("flag with empty key")
		}
		if f.Define == "" {
			return nil, fmt.Errorf("flag %q: empty define", f.Key)
		}
		if _, dup := r.index[f.Key]; dup {
			return nil, fmt.Errorf("flag %q declared twice", f.Key)
		}
		r.flags[i] = f
		r.index[f.Key] = uint(i)
	}
	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(flags ...Flag) *Registry {
	r, err := New(flags...)
	if err != nil {
		panic(err)
	}
	return r
}

// All returns the flags in declaration order.
func (r *Registry) All() []Flag {
	return append([]Flag(nil), r.flags...)
}

// Len returns the number of declared flags.
func (r *Registry) Len() int {
	return len(r.flags)
}

// Lookup returns the flag declared under key.
func (r *Registry) Lookup(key string) (Flag, bool) {
	i, ok := r.index[key]
	if !ok {
		return Flag{}, false
	}
	return r.flags[i], true
}

// NewSet returns the set of active flags named by keys.
func (r *Registry) NewSet(keys ...string) (Set, error) {
	s := Set{reg: r, bits: bitset.New(uint(len(r.flags)))}
	for _, k := range keys {
		i, ok := r.index[k]
		if !ok {
			return Set{}, &UnknownFlagError{Key: k}
		}
		s.bits.Set(i)
	}
	return s, nil
}

// Project returns the define fragments of the active flags in registry order.
// Flags that are not active are skipped.
func (r *Registry) Project(active Set) []string {
	var out []string
	for _, f := range r.flags {
		if active.Has(f.Key) {
			out = append(out, f.Define)
		}
	}
	return out
}
