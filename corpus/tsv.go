package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hupe1980/phonogo/inventory"
)

// ErrMalformedRow is returned for a row without a language name.
var ErrMalformedRow = errors.New("malformed row")

// Layout describes where a tab-separated corpus keeps its data.
type Layout struct {
	// NameColumn is the zero-based column holding the language name.
	NameColumn int
	// InventoryColumns are joined, in order, into one comma-separated
	// inventory. Missing trailing columns count as empty.
	InventoryColumns []int
	// SkipHeader drops the first row.
	SkipHeader bool
}

// DefaultLayout matches the phoneme database export: name in the second
// column, consonants and vowels in the eleventh and twelfth.
var DefaultLayout = Layout{
	NameColumn:       1,
	InventoryColumns: []int{10, 11},
	SkipHeader:       true,
}

// Tie bars and thin spaces are typographic only.
var cleaner = strings.NewReplacer("\u0361", "", "\u2009", "")

// ReadTSV reads every record of a tab-separated corpus.
func ReadTSV(r io.Reader, layout Layout) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	var records []Record
	for line := 1; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("corpus: line %d: %w", line, err)
		}
		if line == 1 && layout.SkipHeader {
			continue
		}
		if isBlank(row) {
			continue
		}

		rec, err := layout.record(row)
		if err != nil {
			return nil, fmt.Errorf("corpus: line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (l Layout) record(row []string) (Record, error) {
	if l.NameColumn >= len(row) {
		return Record{}, fmt.Errorf("%w: no column %d", ErrMalformedRow, l.NameColumn)
	}
	name := strings.TrimSpace(row[l.NameColumn])
	if name == "" {
		return Record{}, fmt.Errorf("%w: empty name", ErrMalformedRow)
	}

	parts := make([]string, 0, len(l.InventoryColumns))
	for _, c := range l.InventoryColumns {
		if c < len(row) {
			parts = append(parts, cleaner.Replace(strings.TrimSpace(row[c])))
		}
	}
	return Record{Name: name, Phonemes: inventory.Split(strings.Join(parts, ", "))}, nil
}

func isBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
