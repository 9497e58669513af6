package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTerms(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", []string{}},
		{"p t k", []string{"p", "t", "k"}},
		{"  pʰ   -tʰ ", []string{"pʰ", "-tʰ"}},
		{"plosive -pre-aspirated", []string{"plosive", "-pre-aspirated"}},
		{"lateral   fricative -lateral\tapproximant", []string{"lateral fricative", "-lateral approximant"}},
		{"lateral affricate nasal", []string{"lateral affricate", "nasal"}},
		{"- m", []string{"-m"}},
		{"Lateral Fricative -LATERAL approximant", []string{"lateral fricative", "-lateral approximant"}},
		{"Nasal", []string{"Nasal"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseTerms(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTerms_DanglingNegation(t *testing.T) {
	_, err := ParseTerms("p -")
	assert.Error(t, err)
}

func TestSplitTerm(t *testing.T) {
	v, neg := splitTerm(" -tʰ")
	assert.Equal(t, "tʰ", v)
	assert.True(t, neg)

	v, neg = splitTerm("nasal")
	assert.Equal(t, "nasal", v)
	assert.False(t, neg)
}
