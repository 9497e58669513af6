package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/phonogo/feature"
	"github.com/hupe1980/phonogo/phoneme"
	"github.com/hupe1980/phonogo/table"
	"github.com/hupe1980/phonogo/testutil"
)

func parseAll(t *testing.T, glyphs ...string) []phoneme.Phoneme {
	t.Helper()
	p := testutil.NewParser()
	out := make([]phoneme.Phoneme, 0, len(glyphs))
	for _, g := range glyphs {
		ph, err := phoneme.Parse(p, g)
		require.NoError(t, err)
		out = append(out, ph)
	}
	return out
}

func TestBuild_Consonants(t *testing.T) {
	tbl, err := table.Build(feature.ConsonantAxes, parseAll(t, "k", "t", "p", "m", "d", "b", "n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"plosive", "nasal"}, tbl.RowNames())
	assert.Equal(t, []string{"bilabial", "alveolar", "velar"}, tbl.ColumnNames())

	assert.Equal(t, "b, p", tbl.Cell(0, 0))
	assert.Equal(t, "d, t", tbl.Cell(0, 1))
	assert.Equal(t, "k", tbl.Cell(0, 2))
	assert.Equal(t, "m", tbl.Cell(1, 0))
	assert.Equal(t, "n", tbl.Cell(1, 1))
	assert.Equal(t, "", tbl.Cell(1, 2))

	assert.Equal(t, [][]string{
		{"", "bilabial", "alveolar", "velar"},
		{"plosive", "b, p", "d, t", "k"},
		{"nasal", "m", "n", ""},
	}, tbl.Grid())
}

func TestBuild_CanonicalOrderNotDiscoveryOrder(t *testing.T) {
	tbl, err := table.Build(feature.VowelAxes, parseAll(t, "a", "u", "ə", "i"))
	require.NoError(t, err)
	assert.Equal(t, []string{"close", "mid", "open"}, tbl.RowNames())
	assert.Equal(t, []string{"front", "central", "back"}, tbl.ColumnNames())
}

func TestBuild_CoverageLaw(t *testing.T) {
	rng := testutil.NewRNG(42)
	for i := 0; i < 50; i++ {
		glyphs := rng.Inventory(1 + rng.Intn(len(testutil.Tabulatable)))

		var cons, vows []phoneme.Phoneme
		for _, ph := range parseAll(t, glyphs...) {
			if ph.Core.Has(feature.Vowel) {
				vows = append(vows, ph)
			} else {
				cons = append(cons, ph)
			}
		}
		for _, group := range []struct {
			axes feature.Axes
			in   []phoneme.Phoneme
		}{{feature.ConsonantAxes, cons}, {feature.VowelAxes, vows}} {
			tbl, err := table.Build(group.axes, group.in)
			require.NoError(t, err, "seed %d", rng.Seed())
			assert.Equal(t, len(group.in), tbl.Len())

			// No row or column is entirely empty.
			for r := range tbl.Rows {
				n := 0
				for c := range tbl.Columns {
					n += len(tbl.Cells[r][c])
				}
				assert.NotZero(t, n, "empty row %s", tbl.Rows[r])
			}
			for c := range tbl.Columns {
				n := 0
				for r := range tbl.Rows {
					n += len(tbl.Cells[r][c])
				}
				assert.NotZero(t, n, "empty column %s", tbl.Columns[c])
			}
		}
	}
}

func TestBuild_CoverageError(t *testing.T) {
	_, err := table.Build(feature.ConsonantAxes, parseAll(t, "t", "X"))
	require.ErrorIs(t, err, table.ErrCoverage)

	var ce *table.CoverageError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, []string{"X"}, ce.Glyphs)
	assert.Contains(t, err.Error(), "X")
}

func TestBuild_AmbiguousCell(t *testing.T) {
	_, err := table.Build(feature.ConsonantAxes, parseAll(t, "t", "Ʒ"))
	require.ErrorIs(t, err, table.ErrAmbiguousCell)

	var ae *table.AmbiguousError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Ʒ", ae.Glyph)
	assert.Equal(t, []string{"plosive/alveolar", "plosive/velar"}, ae.Cells)
}

func TestBuild_Empty(t *testing.T) {
	tbl, err := table.Build(feature.VowelAxes, nil)
	require.NoError(t, err)
	assert.Empty(t, tbl.Rows)
	assert.Empty(t, tbl.Columns)
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, [][]string{{""}}, tbl.Grid())
}
