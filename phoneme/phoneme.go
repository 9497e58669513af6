package phoneme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/phonogo/feature"
)

// ErrUnclassified is returned when a phoneme carries neither or both of the
// major-class tags.
var ErrUnclassified = errors.New("neither a vowel nor a consonant")

// PlainLabel is the series label of phonemes without series-forming features.
const PlainLabel = "plain"

// Parser turns a transcription token into its feature sets.
//
// Implementations must be safe for concurrent use.
type Parser interface {
	Parse(token string) (Features, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(token string) (Features, error)

// Parse implements Parser.
func (fn ParserFunc) Parse(token string) (Features, error) { return fn(token) }

// Features is the parser output for one token.
type Features struct {
	// Pre holds features of diacritics written before the base symbol.
	Pre feature.Set
	// Core holds the inherent features of the base symbol.
	Core feature.Set
	// Post holds features of diacritics written after the base symbol.
	Post feature.Set
}

// Exact returns Pre ∪ Core ∪ Post.
func (f Features) Exact() feature.Set {
	return f.Pre.Union(f.Core).Union(f.Post)
}

// Shape is the structural kind of a vowel.
type Shape int

const (
	Monophthong Shape = iota
	Diphthong
	Triphthong
	ApicalVowel
)

func (s Shape) String() string {
	switch s {
	case Diphthong:
		return "diphthong"
	case Triphthong:
		return "triphthong"
	case ApicalVowel:
		return "apical"
	default:
		return "monophthong"
	}
}

// ShapeOf returns the shape recorded in s.
func ShapeOf(s feature.Set) Shape {
	switch {
	case s.Has(feature.Diphthong):
		return Diphthong
	case s.Has(feature.Triphthong):
		return Triphthong
	case s.Has(feature.Apical):
		return ApicalVowel
	default:
		return Monophthong
	}
}

// ClassOf returns the major class recorded in s.
func ClassOf(s feature.Set) (feature.Feature, error) {
	c, v := s.Has(feature.Consonant), s.Has(feature.Vowel)
	switch {
	case c && !v:
		return feature.Consonant, nil
	case v && !c:
		return feature.Vowel, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnclassified, s)
	}
}

// Phoneme is a classified symbol.
//
// Core positions the phoneme inside a table; Series selects the table.
// The two sets are always disjoint.
type Phoneme struct {
	Glyph  string
	Core   feature.Set
	Series feature.Set
}

// Classify splits parser output into positional and series-forming features.
func Classify(glyph string, f Features) Phoneme {
	diacritics := f.Pre.Union(f.Post)
	series := diacritics.Intersect(feature.SeriesForming)
	return Phoneme{
		Glyph:  glyph,
		Core:   f.Core.Union(diacritics.Difference(series)),
		Series: series,
	}
}

// Parse runs p on glyph and classifies the result.
func Parse(p Parser, glyph string) (Phoneme, error) {
	f, err := p.Parse(glyph)
	if err != nil {
		return Phoneme{}, err
	}
	return Classify(glyph, f), nil
}

// Class returns the major class of the phoneme.
func (p Phoneme) Class() (feature.Feature, error) {
	c, err := ClassOf(p.Core)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", p.Glyph, err)
	}
	return c, nil
}

// Shape returns the vowel shape of the phoneme.
func (p Phoneme) Shape() Shape {
	return ShapeOf(p.Core)
}

// SeriesLabel returns the sorted, " & "-joined series names, or PlainLabel.
func (p Phoneme) SeriesLabel() string {
	if p.Series.IsEmpty() {
		return PlainLabel
	}
	names := p.Series.Names()
	sort.Strings(names)
	return strings.Join(names, " & ")
}

func (p Phoneme) String() string {
	return p.Glyph
}

// Summary returns the glyph followed by every feature on a second line.
func (p Phoneme) Summary() string {
	return p.Glyph + "\n" + strings.Join(p.Core.Union(p.Series).Names(), ", ")
}
