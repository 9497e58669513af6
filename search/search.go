package search

import (
	"errors"
	"fmt"
	"sort"

	"github.com/hupe1980/phonogo/feature"
	"github.com/hupe1980/phonogo/index"
)

var (
	// ErrNoTerms is returned when a multi-term query gets no terms.
	ErrNoTerms = errors.New("no search terms")

	// ErrNegatedRating is returned when FeatureRating gets a negated term.
	ErrNegatedRating = errors.New("feature rating needs a positive term")
)

// Match is one indexed phoneme returned by Query.
type Match struct {
	// Glyph is the representative glyph of the exact feature set.
	Glyph     string   `json:"glyph"`
	Languages []string `json:"languages"`
}

// Rating is the number of phonemes of a language carrying a feature.
type Rating struct {
	Count    int    `json:"count"`
	Language string `json:"language"`
}

// Engine answers queries against a LanguageIndex.
//
// Engine holds no state of its own; it is safe for concurrent use as long
// as the index is.
type Engine struct {
	index *index.LanguageIndex
}

// New creates an Engine over x. Query glyphs are parsed with x's parser.
func New(x *index.LanguageIndex) *Engine {
	return &Engine{index: x}
}

// lookup parses glyph and returns its exact feature set and bucket.
// ok is false for shapes that are never indexed.
func (e *Engine) lookup(glyph string) (feature.Set, []index.Entry, bool, error) {
	f, err := e.index.Parser().Parse(glyph)
	if err != nil {
		return feature.Set{}, nil, false, err
	}
	exact := f.Exact()
	cell, ok, err := index.Locate(glyph, exact)
	if err != nil || !ok {
		return exact, nil, false, err
	}
	return exact, e.index.Lookup(cell), true, nil
}

// ExactQuery returns the languages having a phoneme with exactly the
// features of glyph, in insertion order.
func (e *Engine) ExactQuery(glyph string) ([]string, error) {
	exact, entries, ok, err := e.lookup(glyph)
	if err != nil || !ok {
		return nil, err
	}
	for _, en := range entries {
		if en.Features.Equal(exact) {
			return en.Languages, nil
		}
	}
	return nil, nil
}

// Query returns every indexed phoneme whose features are a superset of
// glyph's, in first-seen order.
func (e *Engine) Query(glyph string) ([]Match, error) {
	exact, entries, ok, err := e.lookup(glyph)
	if err != nil || !ok {
		return nil, err
	}
	var out []Match
	for _, en := range entries {
		if en.Features.IsSuperset(exact) {
			out = append(out, Match{Glyph: en.Glyph, Languages: en.Languages})
		}
	}
	return out, nil
}

func (e *Engine) querySet(glyph string) (*index.LanguageSet, error) {
	exact, entries, ok, err := e.lookup(glyph)
	if err != nil {
		return nil, err
	}
	out := index.NewLanguageSet()
	if !ok {
		return out, nil
	}
	for _, en := range entries {
		if en.Features.IsSuperset(exact) {
			out.Or(en.IDs())
		}
	}
	return out, nil
}

// QueryMultiple combines glyph queries.
//
// Languages matching any positive term are kept; with no positive term
// every language is. Languages matching a negated term are then removed.
func (e *Engine) QueryMultiple(terms ...string) ([]string, error) {
	return e.combine(terms, e.querySet, false)
}

// FeaturesQuery returns the languages having, for every positive feature
// name, some phoneme with that feature, and none for the negated ones.
func (e *Engine) FeaturesQuery(terms ...string) ([]string, error) {
	return e.combine(terms, e.featureSet, true)
}

func (e *Engine) featureSet(name string) (*index.LanguageSet, error) {
	f, err := feature.Parse(name)
	if err != nil {
		return nil, err
	}
	return e.index.Containing(feature.NewSet(f)), nil
}

// combine folds the positive term sets with OR (or AND when intersect is
// set) and subtracts the negated ones.
func (e *Engine) combine(terms []string, resolve func(string) (*index.LanguageSet, error), intersect bool) ([]string, error) {
	if len(terms) == 0 {
		return nil, ErrNoTerms
	}

	var (
		result    *index.LanguageSet
		negatives []*index.LanguageSet
	)
	for _, t := range terms {
		v, negated := splitTerm(t)
		s, err := resolve(v)
		if err != nil {
			return nil, fmt.Errorf("term %q: %w", t, err)
		}
		switch {
		case negated:
			negatives = append(negatives, s)
		case result == nil:
			result = s
		case intersect:
			result.And(s)
		default:
			result.Or(s)
		}
	}

	if result == nil {
		result = e.index.Universe()
	}
	for _, s := range negatives {
		result.AndNot(s)
	}
	return e.index.Names(result), nil
}

// FeatureRating ranks the languages having the named feature by how many of
// their phonemes carry it. Ties are ordered by language name.
func (e *Engine) FeatureRating(name string) ([]Rating, error) {
	v, negated := splitTerm(name)
	if negated {
		return nil, fmt.Errorf("term %q: %w", name, ErrNegatedRating)
	}
	f, err := feature.Parse(v)
	if err != nil {
		return nil, err
	}

	langs, err := e.FeaturesQuery(v)
	if err != nil {
		return nil, err
	}

	out := make([]Rating, 0, len(langs))
	for _, lang := range langs {
		raw, _ := e.index.Phonemes(lang)
		n := 0
		for _, s := range raw {
			if s.Has(f) {
				n++
			}
		}
		out = append(out, Rating{Count: n, Language: lang})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Language < out[j].Language
	})
	return out, nil
}
