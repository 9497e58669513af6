package index

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// LanguageSet is a set of language ids backed by a 32-bit Roaring bitmap.
//
// Ids are dense and follow insertion order, so iterating a set yields
// languages in the order they were added to the index.
type LanguageSet struct {
	rb *roaring.Bitmap
}

// NewLanguageSet creates a new empty set.
func NewLanguageSet() *LanguageSet {
	return &LanguageSet{rb: roaring.New()}
}

// Add adds a language id to the set.
func (s *LanguageSet) Add(id uint32) {
	s.rb.Add(id)
}

// Contains checks if a language id is in the set.
func (s *LanguageSet) Contains(id uint32) bool {
	return s.rb.Contains(id)
}

// IsEmpty returns true if the set is empty.
func (s *LanguageSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of languages in the set.
func (s *LanguageSet) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *LanguageSet) Clone() *LanguageSet {
	return &LanguageSet{rb: s.rb.Clone()}
}

// Iterator returns an iterator over the ids in ascending order.
func (s *LanguageSet) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// And computes the intersection in place.
func (s *LanguageSet) And(other *LanguageSet) {
	s.rb.And(other.rb)
}

// Or computes the union in place.
func (s *LanguageSet) Or(other *LanguageSet) {
	s.rb.Or(other.rb)
}

// AndNot removes every id of other in place.
func (s *LanguageSet) AndNot(other *LanguageSet) {
	s.rb.AndNot(other.rb)
}

// Clear removes all elements from the set.
func (s *LanguageSet) Clear() {
	s.rb.Clear()
}
