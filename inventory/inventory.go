package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/phonogo/feature"
	"github.com/hupe1980/phonogo/phoneme"
	"github.com/hupe1980/phonogo/table"
)

// DefaultConcurrency bounds TabulateAll when no limit is configured.
const DefaultConcurrency = 8

// Series is one table of an inventory.
type Series struct {
	// Label is the " & "-joined series names, or "plain".
	Label string
	// Heading is the label as displayed above the table.
	Heading string
	Table   *table.Table
}

// Inventory is the tabulated phoneme inventory of one language.
type Inventory struct {
	Name        string
	Consonants  []Series
	Vowels      []Series
	Apical      []string
	Diphthongs  []string
	Triphthongs []string
}

// Len returns the number of phonemes in the inventory.
func (inv *Inventory) Len() int {
	n := len(inv.Apical) + len(inv.Diphthongs) + len(inv.Triphthongs)
	for _, s := range inv.Consonants {
		n += s.Table.Len()
	}
	for _, s := range inv.Vowels {
		n += s.Table.Len()
	}
	return n
}

// Record is an unparsed inventory.
type Record struct {
	Name     string
	Phonemes []string
}

// Tabulator groups phonemes into series and builds their tables.
type Tabulator struct {
	parser      phoneme.Parser
	concurrency int
}

// Option configures a Tabulator.
type Option func(*Tabulator)

// WithConcurrency bounds the number of inventories TabulateAll works on at once.
func WithConcurrency(n int) Option {
	return func(t *Tabulator) {
		t.concurrency = n
	}
}

// NewTabulator creates a Tabulator that parses tokens with p.
func NewTabulator(p phoneme.Parser, optFns ...Option) *Tabulator {
	t := &Tabulator{parser: p, concurrency: DefaultConcurrency}
	for _, fn := range optFns {
		fn(t)
	}
	if t.concurrency <= 0 {
		t.concurrency = DefaultConcurrency
	}
	return t
}

// Split breaks a comma-separated inventory into trimmed, non-empty tokens.
func Split(phonoString string) []string {
	parts := strings.Split(phonoString, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Tabulate classifies a comma-separated inventory.
func (t *Tabulator) Tabulate(name, phonoString string) (*Inventory, error) {
	return t.TabulateTokens(name, Split(phonoString))
}

// TabulateTokens classifies an already split inventory.
func (t *Tabulator) TabulateTokens(name string, tokens []string) (*Inventory, error) {
	inv := &Inventory{Name: name}
	consonants := newGrouping()
	vowels := newGrouping()

	for _, tok := range tokens {
		ph, err := phoneme.Parse(t.parser, tok)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		class, err := ph.Class()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		if class == feature.Consonant {
			consonants.add(ph)
			continue
		}
		switch ph.Shape() {
		case phoneme.Diphthong:
			inv.Diphthongs = append(inv.Diphthongs, ph.Glyph)
		case phoneme.Triphthong:
			inv.Triphthongs = append(inv.Triphthongs, ph.Glyph)
		case phoneme.ApicalVowel:
			inv.Apical = append(inv.Apical, ph.Glyph)
		default:
			vowels.add(ph)
		}
	}

	var err error
	if inv.Consonants, err = consonants.build(feature.ConsonantAxes); err != nil {
		return nil, fmt.Errorf("%s: consonants: %w", name, err)
	}
	if inv.Vowels, err = vowels.build(feature.VowelAxes); err != nil {
		return nil, fmt.Errorf("%s: vowels: %w", name, err)
	}
	return inv, nil
}

// TabulateAll tabulates records concurrently. Results keep the input order;
// the first error cancels the remaining work.
func (t *Tabulator) TabulateAll(ctx context.Context, records []Record) ([]*Inventory, error) {
	out := make([]*Inventory, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.concurrency)

	for i, rec := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			inv, err := t.TabulateTokens(rec.Name, rec.Phonemes)
			if err != nil {
				return err
			}
			out[i] = inv
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

type grouping struct {
	groups map[string][]phoneme.Phoneme
}

func newGrouping() *grouping {
	return &grouping{groups: make(map[string][]phoneme.Phoneme)}
}

func (g *grouping) add(p phoneme.Phoneme) {
	label := p.SeriesLabel()
	g.groups[label] = append(g.groups[label], p)
}

// build orders series by label length, shortest first, so "plain" and
// single-feature series come before combinations. Equal lengths fall back
// to lexicographic order.
func (g *grouping) build(axes feature.Axes) ([]Series, error) {
	labels := make([]string, 0, len(g.groups))
	for l := range g.groups {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(labels[i]), utf8.RuneCountInString(labels[j])
		if li != lj {
			return li < lj
		}
		return labels[i] < labels[j]
	})

	out := make([]Series, 0, len(labels))
	for _, l := range labels {
		tbl, err := table.Build(axes, g.groups[l])
		if err != nil {
			return nil, fmt.Errorf("%s series: %w", l, err)
		}
		out = append(out, Series{Label: l, Heading: Heading(l), Table: tbl})
	}
	return out, nil
}

// Heading returns the display heading of a series label.
func Heading(label string) string {
	r, size := utf8.DecodeRuneInString(label)
	if r == utf8.RuneError {
		return label + " series:"
	}
	return string(unicode.ToUpper(r)) + label[size:] + " series:"
}
