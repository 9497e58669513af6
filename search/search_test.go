package search_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/phonogo/feature"
	"github.com/hupe1980/phonogo/index"
	"github.com/hupe1980/phonogo/ipa"
	"github.com/hupe1980/phonogo/phoneme"
	"github.com/hupe1980/phonogo/search"
	"github.com/hupe1980/phonogo/testutil"
)

func newEngine(t *testing.T, langs ...[]string) *search.Engine {
	t.Helper()
	x := index.New(testutil.NewParser())
	for _, l := range langs {
		require.NoError(t, x.AddLanguage(l[0], l[1:]))
	}
	return search.New(x)
}

func TestExactAndSupersetQuery(t *testing.T) {
	e := newEngine(t, []string{"X", "t", "tʰ"})

	langs, err := e.ExactQuery("t")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, langs)

	matches, err := e.Query("t")
	require.NoError(t, err)
	assert.Equal(t, []search.Match{
		{Glyph: "t", Languages: []string{"X"}},
		{Glyph: "tʰ", Languages: []string{"X"}},
	}, matches)

	matches, err = e.Query("tʰ")
	require.NoError(t, err)
	assert.Equal(t, []search.Match{{Glyph: "tʰ", Languages: []string{"X"}}}, matches)
}

func TestExactQuery_InsertionOrder(t *testing.T) {
	e := newEngine(t, []string{"A", "m"}, []string{"B", "m"})

	langs, err := e.ExactQuery("m")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, langs)
}

func TestQuery_VariantSpellingsListLanguageOnce(t *testing.T) {
	x := index.New(ipa.New())
	require.NoError(t, x.AddLanguage("X", []string{"g", "ɡ", "ts", "t\u0361s"}))
	e := search.New(x)

	langs, err := e.ExactQuery("g")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, langs)

	matches, err := e.Query("ts")
	require.NoError(t, err)
	assert.Equal(t, []search.Match{{Glyph: "ts", Languages: []string{"X"}}}, matches)
}

func TestExactQuery_NoEqualSet(t *testing.T) {
	e := newEngine(t, []string{"X", "tʰ"})

	langs, err := e.ExactQuery("t")
	require.NoError(t, err)
	assert.Empty(t, langs)

	langs, err = e.ExactQuery("ŋ")
	require.NoError(t, err)
	assert.Empty(t, langs)
}

func TestExactIsSubsetOfQuery(t *testing.T) {
	rng := testutil.NewRNG(3)
	x := index.New(testutil.NewParser())
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(t, x.AddLanguage(name, rng.Inventory(12)))
	}
	e := search.New(x)

	for _, g := range testutil.Tabulatable {
		exact, err := e.ExactQuery(g)
		require.NoError(t, err)
		matches, err := e.Query(g)
		require.NoError(t, err)

		union := map[string]bool{}
		for _, m := range matches {
			for _, l := range m.Languages {
				union[l] = true
			}
		}
		for _, l := range exact {
			assert.True(t, union[l], "%s: %s missing from query result", g, l)
		}
	}
}

func TestQuery_IrregularIsEmpty(t *testing.T) {
	e := newEngine(t, []string{"X", "a", "ai"})

	for _, g := range testutil.Irregular {
		matches, err := e.Query(g)
		require.NoError(t, err)
		assert.Empty(t, matches)

		langs, err := e.ExactQuery(g)
		require.NoError(t, err)
		assert.Empty(t, langs)
	}
}

func TestQuery_Errors(t *testing.T) {
	e := newEngine(t, []string{"X", "t"})

	_, err := e.Query("X")
	var ue *index.UnrecognizedError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "X", ue.Glyph)

	_, err = e.ExactQuery("Q")
	assert.ErrorIs(t, err, phoneme.ErrUnclassified)

	_, err = e.Query("nope")
	assert.ErrorIs(t, err, testutil.ErrUnknownGlyph)
}

func TestQueryMultiple(t *testing.T) {
	e := newEngine(t,
		[]string{"A", "p", "t", "a"},
		[]string{"B", "pʰ", "t", "i"},
		[]string{"C", "k", "i"},
	)

	tests := []struct {
		name  string
		terms []string
		want  []string
	}{
		{"single", []string{"p"}, []string{"A", "B"}},
		{"or", []string{"pʰ", "k"}, []string{"B", "C"}},
		{"negated", []string{"t", "-pʰ"}, []string{"A"}},
		{"only negated", []string{"-i"}, []string{"A"}},
		{"negate everything", []string{"-p", "-k"}, nil},
		{"irregular", []string{"ai"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.QueryMultiple(tt.terms...)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryMultiple_NegatingAllPhonemesIsEmpty(t *testing.T) {
	inventories := [][]string{
		{"A", "m", "a"},
		{"B", "n", "i", "ai"},
		{"C", "s", "z", "u"},
	}
	e := newEngine(t, inventories...)

	var terms []string
	for _, inv := range inventories {
		for _, g := range inv[1:] {
			terms = append(terms, "-"+g)
		}
	}
	got, err := e.QueryMultiple(terms...)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNoTerms(t *testing.T) {
	e := newEngine(t)

	_, err := e.QueryMultiple()
	assert.ErrorIs(t, err, search.ErrNoTerms)

	_, err = e.FeaturesQuery()
	assert.ErrorIs(t, err, search.ErrNoTerms)
}

func TestFeaturesQuery(t *testing.T) {
	e := newEngine(t,
		[]string{"A", "p", "t", "ɬ", "a"},
		[]string{"B", "pʰ", "t", "i"},
		[]string{"C", "k", "iː", "ã"},
	)

	tests := []struct {
		name  string
		terms []string
		want  []string
	}{
		{"single", []string{"aspirated"}, []string{"B"}},
		{"and", []string{"plosive", "front"}, []string{"A", "B", "C"}},
		{"and narrows", []string{"bilabial", "close"}, []string{"B"}},
		{"negated", []string{"plosive", "-aspirated"}, []string{"A", "C"}},
		{"only negated", []string{"-long"}, []string{"A", "B"}},
		{"lateral manner", []string{"lateral   fricative"}, []string{"A"}},
		{"superset of tag", []string{"nasalised", "open"}, []string{"C"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.FeaturesQuery(tt.terms...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFeaturesQuery_MutuallyExclusive(t *testing.T) {
	e := newEngine(t,
		[]string{"A", "p", "t", "m"},
		[]string{"B", "a", "i"},
	)

	got, err := e.FeaturesQuery("nasal", "open")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = e.FeaturesQuery("consonant", "vowel")
	require.NoError(t, err)
	assert.Empty(t, got)

	// The conjunction is over languages, not over single phonemes.
	e = newEngine(t, []string{"C", "m", "a"})
	got, err = e.FeaturesQuery("nasal", "open")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, got)
}

func TestFeaturesQuery_UnknownFeature(t *testing.T) {
	e := newEngine(t, []string{"A", "p"})

	_, err := e.FeaturesQuery("plosive", "-squeaky")
	assert.ErrorIs(t, err, feature.ErrUnknownFeature)
}

func TestFeatureRating(t *testing.T) {
	e := newEngine(t,
		[]string{"C", "pʰ"},
		[]string{"A", "pʰ", "tʰ", "kʰ"},
		[]string{"B", "tʰ"},
		[]string{"D", "p", "t"},
	)

	got, err := e.FeatureRating("aspirated")
	require.NoError(t, err)
	assert.Equal(t, []search.Rating{
		{Count: 3, Language: "A"},
		{Count: 1, Language: "B"},
		{Count: 1, Language: "C"},
	}, got)

	_, err = e.FeatureRating("-aspirated")
	assert.ErrorIs(t, err, search.ErrNegatedRating)

	_, err = e.FeatureRating("squeaky")
	assert.ErrorIs(t, err, feature.ErrUnknownFeature)
}

func TestFeatureRating_CountsIrregularPhonemes(t *testing.T) {
	e := newEngine(t, []string{"A", "a", "ai", "au"})

	got, err := e.FeatureRating("vowel")
	require.NoError(t, err)
	assert.Equal(t, []search.Rating{{Count: 3, Language: "A"}}, got)
}
