package ipa

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/hupe1980/phonogo/feature"
	"github.com/hupe1980/phonogo/phoneme"
)

var (
	// ErrEmptyToken is returned for tokens without any symbol.
	ErrEmptyToken = errors.New("empty token")

	// ErrUnknownSymbol is returned for symbols outside the supported inventory.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrMisplacedModifier is returned for a diacritic that cannot precede a base.
	ErrMisplacedModifier = errors.New("modifier before base symbol")

	// ErrUnsupportedCluster is returned for tokens made of several base
	// symbols that are neither a known affricate nor a polyphthong.
	ErrUnsupportedCluster = errors.New("unsupported cluster")
)

// SymbolError describes why a token could not be parsed.
type SymbolError struct {
	Token  string
	Symbol string
	Err    error
}

func (e *SymbolError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("ipa: %v in %q", e.Err, e.Token)
	}
	return fmt.Sprintf("ipa: %v %q in %q", e.Err, e.Symbol, e.Token)
}

func (e *SymbolError) Unwrap() error { return e.Err }

type entry struct {
	core  feature.Set
	vowel bool
}

// Parser is a table-driven IPA feature parser.
//
// Tokens are decomposed (NFD) before matching, so precomposed and
// decomposed spellings parse alike. Parser is safe for concurrent use.
type Parser struct {
	bases  map[string]entry
	maxLen int
}

var _ phoneme.Parser = (*Parser)(nil)

// New creates a Parser over the built-in symbol tables.
func New() *Parser {
	p := &Parser{bases: make(map[string]entry, len(consonants)+len(vowels)+len(apicals))}
	for sym, b := range consonants {
		p.add(sym, entry{core: feature.NewSet(feature.Consonant, b.manner, b.place, b.voice)})
	}
	for sym, v := range vowels {
		p.add(sym, entry{core: feature.NewSet(feature.Vowel, v.height, v.backness, v.rounding), vowel: true})
	}
	for sym := range apicals {
		p.add(sym, entry{core: feature.NewSet(feature.Vowel, feature.Apical)})
	}
	return p
}

func (p *Parser) add(sym string, e entry) {
	key := norm.NFD.String(sym)
	p.bases[key] = e
	if n := utf8.RuneCountInString(key); n > p.maxLen {
		p.maxLen = n
	}
}

// Parse implements phoneme.Parser.
func (p *Parser) Parse(token string) (phoneme.Features, error) {
	runes := p.runes(token)
	if len(runes) == 0 {
		return phoneme.Features{}, &SymbolError{Token: token, Err: ErrEmptyToken}
	}

	var (
		pre, post []feature.Feature
		found     []entry
	)
	for i := 0; i < len(runes); {
		if e, n := p.match(runes[i:]); n > 0 {
			found = append(found, e)
			i += n
			continue
		}
		m, ok := modifiers[runes[i]]
		if !ok {
			return phoneme.Features{}, &SymbolError{Token: token, Symbol: string(runes[i]), Err: ErrUnknownSymbol}
		}
		if len(found) == 0 {
			if !m.hasPre {
				return phoneme.Features{}, &SymbolError{Token: token, Symbol: string(runes[i]), Err: ErrMisplacedModifier}
			}
			pre = append(pre, m.pre)
		} else {
			post = append(post, m.post)
		}
		i++
	}
	if len(found) == 0 {
		return phoneme.Features{}, &SymbolError{Token: token, Err: ErrUnknownSymbol}
	}

	core, err := combine(found)
	if err != nil {
		return phoneme.Features{}, &SymbolError{Token: token, Err: err}
	}
	return phoneme.Features{
		Pre:  feature.NewSet(pre...),
		Core: core,
		Post: feature.NewSet(post...),
	}, nil
}

func (p *Parser) runes(token string) []rune {
	s := norm.NFD.String(strings.TrimSpace(token))
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case ignored[r]:
		case letters[r] != nil:
			out = append(out, letters[r]...)
		default:
			out = append(out, r)
		}
	}
	return out
}

// match returns the longest base symbol at the start of rs.
func (p *Parser) match(rs []rune) (entry, int) {
	n := min(p.maxLen, len(rs))
	for ; n > 0; n-- {
		if e, ok := p.bases[string(rs[:n])]; ok {
			return e, n
		}
	}
	return entry{}, 0
}

func combine(found []entry) (feature.Set, error) {
	if len(found) == 1 {
		return found[0].core, nil
	}
	for _, e := range found {
		if !e.vowel {
			return feature.Set{}, ErrUnsupportedCluster
		}
	}
	switch len(found) {
	case 2:
		return feature.NewSet(feature.Vowel, feature.Diphthong), nil
	case 3:
		return feature.NewSet(feature.Vowel, feature.Triphthong), nil
	default:
		return feature.Set{}, ErrUnsupportedCluster
	}
}
