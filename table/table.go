package table

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/phonogo/feature"
	"github.com/hupe1980/phonogo/phoneme"
)

var (
	// ErrCoverage is returned when a phoneme fits no cell of its table.
	ErrCoverage = errors.New("table coverage")

	// ErrAmbiguousCell is returned when a phoneme fits more than one cell.
	ErrAmbiguousCell = errors.New("ambiguous table cell")
)

// CoverageError lists the phonemes that could not be placed.
//
// It usually points at a parser defect: a missing or unrecognised
// manner/place or height/backness tag.
type CoverageError struct {
	Glyphs []string
}

func (e *CoverageError) Error() string {
	return fmt.Sprintf("%v: not all phonemes made their way into the table: %s", ErrCoverage, strings.Join(e.Glyphs, ", "))
}

func (e *CoverageError) Unwrap() error { return ErrCoverage }

// AmbiguousError reports a phoneme whose core set matches several cells.
type AmbiguousError struct {
	Glyph string
	// Cells holds "row/column" names of every matching cell.
	Cells []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%v: %q matches %s", ErrAmbiguousCell, e.Glyph, strings.Join(e.Cells, ", "))
}

func (e *AmbiguousError) Unwrap() error { return ErrAmbiguousCell }

// Table is a dense grid of glyphs.
//
// Rows and Columns only hold axis values used by at least one phoneme, in
// canonical order. Cells[r][c] holds the sorted glyphs at (Rows[r], Columns[c]).
type Table struct {
	Rows    []feature.Feature
	Columns []feature.Feature
	Cells   [][][]string
}

// Build lays out phonemes sharing one major class and one series on axes.
func Build(axes feature.Axes, phonemes []phoneme.Phoneme) (*Table, error) {
	var pooled feature.Set
	for _, p := range phonemes {
		pooled = pooled.Union(p.Core)
	}

	t := &Table{
		Rows:    axes.UsedRows(pooled),
		Columns: axes.UsedColumns(pooled),
	}
	t.Cells = make([][][]string, len(t.Rows))
	for r := range t.Cells {
		t.Cells[r] = make([][]string, len(t.Columns))
	}

	var orphans []string
	for _, p := range phonemes {
		var hits []string
		for r, row := range t.Rows {
			if !p.Core.Has(row) {
				continue
			}
			for c, col := range t.Columns {
				if p.Core.Has(col) {
					t.Cells[r][c] = append(t.Cells[r][c], p.Glyph)
					hits = append(hits, row.String()+"/"+col.String())
				}
			}
		}
		switch {
		case len(hits) == 0:
			orphans = append(orphans, p.Glyph)
		case len(hits) > 1:
			return nil, &AmbiguousError{Glyph: p.Glyph, Cells: hits}
		}
	}
	if len(orphans) > 0 {
		return nil, &CoverageError{Glyphs: orphans}
	}

	for r := range t.Cells {
		for c := range t.Cells[r] {
			sort.Strings(t.Cells[r][c])
		}
	}
	return t, nil
}

// Cell returns the glyphs at (r, c) joined with ", ".
func (t *Table) Cell(r, c int) string {
	return strings.Join(t.Cells[r][c], ", ")
}

// RowNames returns the names of the used rows.
func (t *Table) RowNames() []string {
	return featureNames(t.Rows)
}

// ColumnNames returns the names of the used columns.
func (t *Table) ColumnNames() []string {
	return featureNames(t.Columns)
}

// Len returns the number of glyphs placed in the table.
func (t *Table) Len() int {
	n := 0
	for r := range t.Cells {
		for c := range t.Cells[r] {
			n += len(t.Cells[r][c])
		}
	}
	return n
}

// Grid returns the table as strings: a header row of column names preceded
// by an empty corner, then one row per used row name followed by its cells.
func (t *Table) Grid() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, append([]string{""}, t.ColumnNames()...))
	for r, row := range t.Rows {
		line := make([]string, 0, len(t.Columns)+1)
		line = append(line, row.String())
		for c := range t.Columns {
			line = append(line, t.Cell(r, c))
		}
		out = append(out, line)
	}
	return out
}

func featureNames(fs []feature.Feature) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	return out
}
