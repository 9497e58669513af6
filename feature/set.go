package feature

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Set is a bit-set of features.
//
// Every Set spans the whole vocabulary, so subset and equality tests are
// word-wise comparisons. Operations never modify their receiver; the zero
// value is an empty set.
type Set struct {
	bs *bitset.BitSet
}

// NewSet returns a set containing the given features.
func NewSet(fs ...Feature) Set {
	bs := bitset.New(uint(Count))
	for _, f := range fs {
		if f.Valid() {
			bs.Set(uint(f))
		}
	}
	return Set{bs: bs}
}

// ParseSet resolves every name and returns the resulting set.
func ParseSet(names ...string) (Set, error) {
	fs := make([]Feature, 0, len(names))
	for _, n := range names {
		f, err := Parse(n)
		if err != nil {
			return Set{}, err
		}
		fs = append(fs, f)
	}
	return NewSet(fs...), nil
}

func (s Set) bits() *bitset.BitSet {
	if s.bs == nil {
		return bitset.New(uint(Count))
	}
	return s.bs
}

// Has reports whether f is in the set.
func (s Set) Has(f Feature) bool {
	return s.bs != nil && s.bs.Test(uint(f))
}

// HasAny reports whether any of fs is in the set.
func (s Set) HasAny(fs ...Feature) bool {
	for _, f := range fs {
		if s.Has(f) {
			return true
		}
	}
	return false
}

// With returns a copy of s with fs added.
func (s Set) With(fs ...Feature) Set {
	bs := s.bits().Clone()
	for _, f := range fs {
		if f.Valid() {
			bs.Set(uint(f))
		}
	}
	return Set{bs: bs}
}

// Union returns s ∪ other.
func (s Set) Union(other Set) Set {
	return Set{bs: s.bits().Union(other.bits())}
}

// Intersect returns s ∩ other.
func (s Set) Intersect(other Set) Set {
	return Set{bs: s.bits().Intersection(other.bits())}
}

// Difference returns s \ other.
func (s Set) Difference(other Set) Set {
	return Set{bs: s.bits().Difference(other.bits())}
}

// IsSuperset reports whether every feature of other is in s.
func (s Set) IsSuperset(other Set) bool {
	return s.bits().IsSuperSet(other.bits())
}

// Equal reports whether both sets hold the same features.
func (s Set) Equal(other Set) bool {
	return s.bits().Equal(other.bits())
}

// Disjoint reports whether s and other share no feature.
func (s Set) Disjoint(other Set) bool {
	return s.bits().IntersectionCardinality(other.bits()) == 0
}

// Len returns the number of features in the set.
func (s Set) Len() int {
	if s.bs == nil {
		return 0
	}
	return int(s.bs.Count())
}

// IsEmpty reports whether the set has no features.
func (s Set) IsEmpty() bool {
	return s.Len() == 0
}

// Features returns the members in identifier order.
func (s Set) Features() []Feature {
	if s.bs == nil {
		return nil
	}
	out := make([]Feature, 0, s.bs.Count())
	for i, ok := s.bs.NextSet(0); ok; i, ok = s.bs.NextSet(i + 1) {
		out = append(out, Feature(i))
	}
	return out
}

// Names returns the canonical names of the members in identifier order.
func (s Set) Names() []string {
	fs := s.Features()
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	return out
}

// Key returns a string that is equal for two sets iff the sets are equal.
// It is meant to be used as a map key.
func (s Set) Key() string {
	fs := s.Features()
	var b strings.Builder
	b.Grow(len(fs) * 2)
	for _, f := range fs {
		b.WriteByte(byte(f >> 8))
		b.WriteByte(byte(f))
	}
	return b.String()
}

func (s Set) String() string {
	return "{" + strings.Join(s.Names(), ", ") + "}"
}
