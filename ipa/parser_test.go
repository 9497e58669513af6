package ipa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/phonogo/feature"
	"github.com/hupe1980/phonogo/phoneme"
)

func TestParseConsonants(t *testing.T) {
	p := New()

	tests := []struct {
		token string
		pre   []feature.Feature
		core  []feature.Feature
		post  []feature.Feature
	}{
		{"t", nil, []feature.Feature{feature.Consonant, feature.Plosive, feature.Alveolar, feature.Voiceless}, nil},
		{"tʰ", nil, []feature.Feature{feature.Consonant, feature.Plosive, feature.Alveolar, feature.Voiceless}, []feature.Feature{feature.Aspirated}},
		{"ⁿd", []feature.Feature{feature.PreNasalised}, []feature.Feature{feature.Consonant, feature.Plosive, feature.Alveolar, feature.Voiced}, nil},
		{"kʷʰ", nil, []feature.Feature{feature.Consonant, feature.Plosive, feature.Velar, feature.Voiceless}, []feature.Feature{feature.Labialised, feature.Aspirated}},
		{"t\u0361s", nil, []feature.Feature{feature.Consonant, feature.Affricate, feature.Alveolar, feature.Voiceless}, nil},
		{"tʃ", nil, []feature.Feature{feature.Consonant, feature.Affricate, feature.Postalveolar, feature.Voiceless}, nil},
		{"ɬ", nil, []feature.Feature{feature.Consonant, feature.LateralFricative, feature.Alveolar, feature.Voiceless}, nil},
		{"pʼ", nil, []feature.Feature{feature.Consonant, feature.Plosive, feature.Bilabial, feature.Voiceless}, []feature.Feature{feature.Ejective}},
		{"n\u0325", nil, []feature.Feature{feature.Consonant, feature.Nasal, feature.Alveolar, feature.Voiced}, []feature.Feature{feature.Devoiced}},
		{"t\u032a", nil, []feature.Feature{feature.Consonant, feature.Plosive, feature.Alveolar, feature.Voiceless}, []feature.Feature{feature.Dentalised}},
		{"kp", nil, []feature.Feature{feature.Consonant, feature.Plosive, feature.LabialVelar, feature.Voiceless}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			f, err := p.Parse(tt.token)
			require.NoError(t, err)
			assert.Equal(t, feature.NewSet(tt.pre...).Names(), f.Pre.Names())
			assert.Equal(t, feature.NewSet(tt.core...).Names(), f.Core.Names())
			assert.Equal(t, feature.NewSet(tt.post...).Names(), f.Post.Names())
		})
	}
}

func TestParsePrecomposedAndDecomposed(t *testing.T) {
	p := New()

	pre, err := p.Parse("\u00e7")
	require.NoError(t, err)
	dec, err := p.Parse("c\u0327")
	require.NoError(t, err)

	assert.True(t, pre.Core.Equal(dec.Core))
	assert.True(t, pre.Core.Has(feature.Fricative))
	assert.True(t, pre.Core.Has(feature.Palatal))

	a1, err := p.Parse("\u00e3")
	require.NoError(t, err)
	a2, err := p.Parse("a\u0303")
	require.NoError(t, err)
	assert.True(t, a1.Exact().Equal(a2.Exact()))
	assert.True(t, a1.Post.Has(feature.Nasalised))
}

func TestParseVowels(t *testing.T) {
	p := New()

	f, err := p.Parse("iː")
	require.NoError(t, err)
	assert.Equal(t, []string{"vowel", "close", "front", "unrounded"}, f.Core.Names())
	assert.Equal(t, []string{"long"}, f.Post.Names())

	f, err = p.Parse("ai")
	require.NoError(t, err)
	assert.Equal(t, []string{"vowel", "diphthong"}, f.Core.Names())
	assert.Equal(t, phoneme.Diphthong, phoneme.ShapeOf(f.Core))

	f, err = p.Parse("aui")
	require.NoError(t, err)
	assert.Equal(t, []string{"vowel", "triphthong"}, f.Core.Names())

	f, err = p.Parse("ɿ")
	require.NoError(t, err)
	assert.Equal(t, []string{"vowel", "apical"}, f.Core.Names())
}

func TestParseIgnoresStress(t *testing.T) {
	p := New()

	a, err := p.Parse("ˈa")
	require.NoError(t, err)
	b, err := p.Parse(" a ")
	require.NoError(t, err)
	assert.True(t, a.Exact().Equal(b.Exact()))
}

func TestParseIgnoresTone(t *testing.T) {
	p := New()

	plain, err := p.Parse("e")
	require.NoError(t, err)
	for _, tok := range []string{"\u00e9", "e\u0301", "\u00e8", "e\u030c", "e\u0304", "e˥˩"} {
		f, err := p.Parse(tok)
		require.NoError(t, err, tok)
		assert.True(t, plain.Exact().Equal(f.Exact()), tok)
	}

	f, err := p.Parse("a\u0303\u0301")
	require.NoError(t, err)
	assert.Equal(t, []string{"nasalised"}, f.Post.Names())

	_, err = p.Parse("˥")
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestParseModifiedLetters(t *testing.T) {
	p := New()

	tests := []struct {
		letter, spelled string
	}{
		{"ɫ", "lˠ"},
		{"ɚ", "ə˞"},
		{"ɝ", "ɜ˞"},
	}
	for _, tt := range tests {
		t.Run(tt.letter, func(t *testing.T) {
			a, err := p.Parse(tt.letter)
			require.NoError(t, err)
			b, err := p.Parse(tt.spelled)
			require.NoError(t, err)
			assert.True(t, a.Exact().Equal(b.Exact()))
		})
	}

	f, err := p.Parse("ɫ")
	require.NoError(t, err)
	assert.True(t, f.Core.Has(feature.LateralApproximant))
	assert.Equal(t, []string{"velarised"}, f.Post.Names())
}

func TestParseErrors(t *testing.T) {
	p := New()

	tests := []struct {
		token string
		want  error
	}{
		{"", ErrEmptyToken},
		{"ˈ", ErrEmptyToken},
		{"7", ErrUnknownSymbol},
		{"ʰ", ErrUnknownSymbol},
		{"ʲt", ErrMisplacedModifier},
		{"mb", ErrUnsupportedCluster},
		{"aiuo", ErrUnsupportedCluster},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			_, err := p.Parse(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var se *SymbolError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.token, se.Token)
		})
	}
}

func TestParseClassifies(t *testing.T) {
	p := New()

	ph, err := phoneme.Parse(p, "tʷʰ")
	require.NoError(t, err)
	assert.Equal(t, "aspirated & labialised", ph.SeriesLabel())

	ph, err = phoneme.Parse(p, "t\u032a")
	require.NoError(t, err)
	assert.Equal(t, phoneme.PlainLabel, ph.SeriesLabel())
	assert.True(t, ph.Core.Has(feature.Dentalised))
}
