package flags

import "github.com/bits-and-blooms/bitset"

// Set is an immutable set of active flags of one registry. The zero Set is
// empty.
type Set struct {
	reg  *Registry
	bits *bitset.BitSet
}

// Has reports whether key is active.
func (s Set) Has(key string) bool {
	if s.reg == nil {
		return false
	}
	i, ok := s.reg.index[key]
	return ok && s.bits.Test(i)
}

// Len returns the number of active flags.
func (s Set) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Keys returns the active keys in registry order.
func (s Set) Keys() []string {
	if s.reg == nil {
		return nil
	}
	var keys []string
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		keys = append(keys, s.reg.flags[i].Key)
	}
	return keys
}

// With returns a copy of s with key active.
func (s Set) With(key string) (Set, error) {
	return s.update(key, true)
}

// Without returns a copy of s with key inactive.
func (s Set) Without(key string) (Set, error) {
	return s.update(key, false)
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	if s.bits == nil {
		return s
	}
	return Set{reg: s.reg, bits: s.bits.Clone()}
}

func (s Set) update(key string, on bool) (Set, error) {
	if s.reg == nil {
		return Set{}, &UnknownFlagError{Key: key}
	}
	i, ok := s.reg.index[key]
	if !ok {
		return Set{}, &UnknownFlagError{Key: key}
	}
	out := s.Clone()
	if on {
		out.bits.Set(i)
	} else {
		out.bits.Clear(i)
	}
	return out, nil
}
