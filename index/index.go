package index

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/phonogo/feature"
	"github.com/hupe1980/phonogo/phoneme"
)

var (
	// ErrUnrecognizedPhoneme is returned when a phoneme lacks a row or column
	// feature of its grid.
	ErrUnrecognizedPhoneme = errors.New("unrecognized phoneme")

	// ErrAmbiguousPhoneme is returned when a phoneme carries several row or
	// several column features of its grid.
	ErrAmbiguousPhoneme = errors.New("ambiguous phoneme")
)

// UnrecognizedError reports a phoneme that cannot be positioned in its grid.
type UnrecognizedError struct {
	Glyph string
	Class feature.Feature
}

func (e *UnrecognizedError) Error() string {
	return fmt.Sprintf("%v: %s %q has no row or column feature", ErrUnrecognizedPhoneme, e.Class, e.Glyph)
}

func (e *UnrecognizedError) Unwrap() error { return ErrUnrecognizedPhoneme }

// AmbiguousError reports a phoneme that fits more than one bucket.
type AmbiguousError struct {
	Glyph string
	Class feature.Feature
	Rows  int
	Cols  int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%v: %s %q has %d row and %d column features", ErrAmbiguousPhoneme, e.Class, e.Glyph, e.Rows, e.Cols)
}

func (e *AmbiguousError) Unwrap() error { return ErrAmbiguousPhoneme }

// Cell addresses one bucket of the index.
type Cell struct {
	Class  feature.Feature
	Row    int
	Column int
}

// Locate returns the bucket coordinates of an exact feature set.
//
// ok is false for diphthongs, triphthongs and apical vowels, which are
// never indexed. A set with more than one row or column feature is
// rejected with an *AmbiguousError.
func Locate(glyph string, exact feature.Set) (Cell, bool, error) {
	if phoneme.ShapeOf(exact) != phoneme.Monophthong {
		return Cell{}, false, nil
	}
	class, err := phoneme.ClassOf(exact)
	if err != nil {
		return Cell{}, false, fmt.Errorf("%q: %w", glyph, err)
	}
	axes, _ := feature.For(class)
	row, col, ok := axes.Coordinates(exact)
	if !ok {
		return Cell{}, false, &UnrecognizedError{Glyph: glyph, Class: class}
	}
	rows, cols := countTags(axes.Rows, exact), countTags(axes.Columns, exact)
	if rows > 1 || cols > 1 {
		return Cell{}, false, &AmbiguousError{Glyph: glyph, Class: class, Rows: rows, Cols: cols}
	}
	return Cell{Class: class, Row: row, Column: col}, true, nil
}

func countTags(tags []feature.Feature, s feature.Set) int {
	n := 0
	for _, f := range tags {
		if s.Has(f) {
			n++
		}
	}
	return n
}

// Entry is one exact feature set seen in the corpus.
type Entry struct {
	// Glyph is the first glyph that introduced the feature set.
	Glyph    string
	Features feature.Set
	// Languages lists every language with this feature set, in insertion
	// order. Re-adding a language appends it again.
	Languages []string

	ids *LanguageSet
}

// IDs returns the language ids of the entry.
func (e Entry) IDs() *LanguageSet {
	if e.ids == nil {
		return NewLanguageSet()
	}
	return e.ids.Clone()
}

func (e *Entry) snapshot() Entry {
	return Entry{
		Glyph:     e.Glyph,
		Features:  e.Features,
		Languages: append([]string(nil), e.Languages...),
		ids:       e.ids.Clone(),
	}
}

type bucket struct {
	entries []*Entry
}

type grid struct {
	axes    feature.Axes
	buckets [][]*bucket
}

func newGrid(axes feature.Axes) grid {
	b := make([][]*bucket, len(axes.Rows))
	for i := range b {
		b[i] = make([]*bucket, len(axes.Columns))
	}
	return grid{axes: axes, buckets: b}
}

// Stats describes the contents of a LanguageIndex.
type Stats struct {
	Languages int `json:"languages"`
	Entries   int `json:"entries"`
	Skipped   int `json:"skipped"`
}

// LanguageIndex is a cross-language phoneme index.
//
// Consonants and vowels live in two grids addressed by their row and column
// features; every bucket holds the exact feature sets seen at that
// position. A flat side index keeps every exact feature set in first-seen
// order for feature queries.
//
// AddLanguage takes an exclusive lock; readers share it.
type LanguageIndex struct {
	mu     sync.RWMutex
	parser phoneme.Parser

	consonants grid
	vowels     grid

	entries map[string]*Entry
	order   []*Entry

	names   []string
	ids     map[string]uint32
	raw     [][]feature.Set
	skipped int
}

// New creates an empty index using p to parse glyphs.
func New(p phoneme.Parser) *LanguageIndex {
	return &LanguageIndex{
		parser:     p,
		consonants: newGrid(feature.ConsonantAxes),
		vowels:     newGrid(feature.VowelAxes),
		entries:    make(map[string]*Entry),
		ids:        make(map[string]uint32),
	}
}

// Parser returns the parser used by the index.
func (x *LanguageIndex) Parser() phoneme.Parser {
	return x.parser
}

type placement struct {
	glyph string
	exact feature.Set
	cell  Cell
}

// AddLanguage indexes the glyphs of one language.
//
// Every glyph is parsed and positioned before the index is touched, so a
// failing call leaves the index unchanged. Diphthongs, triphthongs and
// apical vowels are skipped.
func (x *LanguageIndex) AddLanguage(name string, glyphs []string) error {
	raw := make([]feature.Set, 0, len(glyphs))
	places := make([]placement, 0, len(glyphs))

	for _, g := range glyphs {
		f, err := x.parser.Parse(g)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		exact := f.Exact()
		raw = append(raw, exact)

		cell, ok, err := Locate(g, exact)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if ok {
			places = append(places, placement{glyph: g, exact: exact, cell: cell})
		}
	}

	x.mu.Lock()
	defer x.mu.Unlock()

	id, ok := x.ids[name]
	if !ok {
		id = uint32(len(x.names))
		x.ids[name] = id
		x.names = append(x.names, name)
		x.raw = append(x.raw, nil)
	}
	x.raw[id] = append(x.raw[id], raw...)
	x.skipped += len(glyphs) - len(places)

	// Glyphs sharing a feature set list the language once per call.
	seen := make(map[*Entry]bool, len(places))
	for _, p := range places {
		e := x.entry(p)
		if seen[e] {
			continue
		}
		seen[e] = true
		e.Languages = append(e.Languages, name)
		e.ids.Add(id)
	}
	return nil
}

// entry returns the entry for p, creating it on first sight.
func (x *LanguageIndex) entry(p placement) *Entry {
	key := p.exact.Key()
	if e, ok := x.entries[key]; ok {
		return e
	}

	g := x.grid(p.cell.Class)
	b := g.buckets[p.cell.Row][p.cell.Column]
	if b == nil {
		b = &bucket{}
		g.buckets[p.cell.Row][p.cell.Column] = b
	}

	e := &Entry{Glyph: p.glyph, Features: p.exact, ids: NewLanguageSet()}
	b.entries = append(b.entries, e)
	x.entries[key] = e
	x.order = append(x.order, e)
	return e
}

func (x *LanguageIndex) grid(class feature.Feature) *grid {
	if class == feature.Vowel {
		return &x.vowels
	}
	return &x.consonants
}

// Lookup returns the entries stored at c, in first-seen order.
func (x *LanguageIndex) Lookup(c Cell) []Entry {
	x.mu.RLock()
	defer x.mu.RUnlock()

	g := x.grid(c.Class)
	if c.Row < 0 || c.Row >= len(g.buckets) || c.Column < 0 || c.Column >= len(g.buckets[c.Row]) {
		return nil
	}
	b := g.buckets[c.Row][c.Column]
	if b == nil {
		return nil
	}
	out := make([]Entry, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.snapshot()
	}
	return out
}

// Entries returns every indexed exact feature set in first-seen order.
func (x *LanguageIndex) Entries() []Entry {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := make([]Entry, len(x.order))
	for i, e := range x.order {
		out[i] = e.snapshot()
	}
	return out
}

// Containing returns the languages having a phoneme whose exact feature
// set is a superset of s.
func (x *LanguageIndex) Containing(s feature.Set) *LanguageSet {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := NewLanguageSet()
	for _, e := range x.order {
		if e.Features.IsSuperset(s) {
			out.Or(e.ids)
		}
	}
	return out
}

// Languages returns the language names in insertion order.
func (x *LanguageIndex) Languages() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	return append([]string(nil), x.names...)
}

// Universe returns the ids of every language.
func (x *LanguageIndex) Universe() *LanguageSet {
	x.mu.RLock()
	defer x.mu.RUnlock()

	s := NewLanguageSet()
	for i := range x.names {
		s.Add(uint32(i))
	}
	return s
}

// Names resolves the ids of s in ascending id order.
func (x *LanguageIndex) Names(s *LanguageSet) []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := make([]string, 0, s.Cardinality())
	for id := range s.Iterator() {
		if int(id) < len(x.names) {
			out = append(out, x.names[id])
		}
	}
	return out
}

// Phonemes returns the exact feature sets of every glyph added for lang,
// irregular shapes included.
func (x *LanguageIndex) Phonemes(lang string) ([]feature.Set, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	id, ok := x.ids[lang]
	if !ok {
		return nil, false
	}
	return append([]feature.Set(nil), x.raw[id]...), true
}

// Stats returns counters describing the index.
func (x *LanguageIndex) Stats() Stats {
	x.mu.RLock()
	defer x.mu.RUnlock()

	return Stats{
		Languages: len(x.names),
		Entries:   len(x.order),
		Skipped:   x.skipped,
	}
}
