package testutil

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/hupe1980/phonogo/feature"
	"github.com/hupe1980/phonogo/phoneme"
)

// ErrUnknownGlyph is returned by Parser for tokens outside the fixture vocabulary.
var ErrUnknownGlyph = errors.New("unknown glyph")

// Parser is a map-backed phoneme.Parser.
// It is safe for concurrent use once populated.
type Parser struct {
	entries map[string]phoneme.Features
}

// NewParser returns a Parser preloaded with the fixture vocabulary.
func NewParser() *Parser {
	p := &Parser{entries: make(map[string]phoneme.Features)}
	for glyph, f := range fixtures() {
		p.entries[glyph] = f
	}
	return p
}

// Add registers (or replaces) a token.
func (p *Parser) Add(glyph string, f phoneme.Features) {
	p.entries[glyph] = f
}

// Parse implements phoneme.Parser.
func (p *Parser) Parse(token string) (phoneme.Features, error) {
	f, ok := p.entries[token]
	if !ok {
		return phoneme.Features{}, fmt.Errorf("%w: %q", ErrUnknownGlyph, token)
	}
	return f, nil
}

// Glyphs returns the registered tokens, sorted.
func (p *Parser) Glyphs() []string {
	out := make([]string, 0, len(p.entries))
	for g := range p.entries {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// Cons returns the core set of a consonant.
func Cons(manner, place feature.Feature, extra ...feature.Feature) feature.Set {
	return feature.NewSet(append([]feature.Feature{feature.Consonant, manner, place}, extra...)...)
}

// Vow returns the core set of a monophthong.
func Vow(height, backness feature.Feature, extra ...feature.Feature) feature.Set {
	return feature.NewSet(append([]feature.Feature{feature.Vowel, height, backness}, extra...)...)
}

// Core wraps a core set into parser output.
func Core(core feature.Set) phoneme.Features {
	return phoneme.Features{Core: core}
}

// WithPost returns parser output with post-base diacritic features.
func WithPost(core feature.Set, post ...feature.Feature) phoneme.Features {
	return phoneme.Features{Core: core, Post: feature.NewSet(post...)}
}

// WithPre returns parser output with pre-base diacritic features.
func WithPre(core feature.Set, pre ...feature.Feature) phoneme.Features {
	return phoneme.Features{Core: core, Pre: feature.NewSet(pre...)}
}

// Tabulatable lists the fixture glyphs that land in a table.
var Tabulatable = []string{
	"p", "pʰ", "b", "t", "tʰ", "tʷ", "d", "ⁿd", "k", "kʰ", "g", "ʔ",
	"m", "n", "ŋ", "s", "z", "ʃ", "h", "r", "l", "j", "w",
	"i", "iː", "u", "e", "o", "ə", "ɛ", "ɔ", "a", "aː", "ã",
}

// Irregular lists the fixture glyphs with an irregular vowel shape.
var Irregular = []string{"ai", "au", "aui", "ɿ"}

func fixtures() map[string]phoneme.Features {
	return map[string]phoneme.Features{
		"p":  Core(Cons(feature.Plosive, feature.Bilabial, feature.Voiceless)),
		"pʰ": WithPost(Cons(feature.Plosive, feature.Bilabial, feature.Voiceless), feature.Aspirated),
		"b":  Core(Cons(feature.Plosive, feature.Bilabial, feature.Voiced)),
		"t":  Core(Cons(feature.Plosive, feature.Alveolar, feature.Voiceless)),
		"tʰ": WithPost(Cons(feature.Plosive, feature.Alveolar, feature.Voiceless), feature.Aspirated),
		"tʷ": WithPost(Cons(feature.Plosive, feature.Alveolar, feature.Voiceless), feature.Labialised),
		"t̪": WithPost(Cons(feature.Plosive, feature.Alveolar, feature.Voiceless), feature.Dentalised),
		"d":  Core(Cons(feature.Plosive, feature.Alveolar, feature.Voiced)),
		"ⁿd": WithPre(Cons(feature.Plosive, feature.Alveolar, feature.Voiced), feature.PreNasalised),
		"k":  Core(Cons(feature.Plosive, feature.Velar, feature.Voiceless)),
		"kʰ": WithPost(Cons(feature.Plosive, feature.Velar, feature.Voiceless), feature.Aspirated),
		"g":  Core(Cons(feature.Plosive, feature.Velar, feature.Voiced)),
		"ʔ":  Core(Cons(feature.Plosive, feature.Glottal, feature.Voiceless)),
		"m":  Core(Cons(feature.Nasal, feature.Bilabial, feature.Voiced)),
		"n":  Core(Cons(feature.Nasal, feature.Alveolar, feature.Voiced)),
		"ŋ":  Core(Cons(feature.Nasal, feature.Velar, feature.Voiced)),
		"s":  Core(Cons(feature.Fricative, feature.Alveolar, feature.Voiceless)),
		"z":  Core(Cons(feature.Fricative, feature.Alveolar, feature.Voiced)),
		"ʃ":  Core(Cons(feature.Fricative, feature.Postalveolar, feature.Voiceless)),
		"h":  Core(Cons(feature.Fricative, feature.Glottal, feature.Voiceless)),
		"ɬ":  Core(Cons(feature.LateralFricative, feature.Alveolar, feature.Voiceless)),
		"r":  Core(Cons(feature.Trill, feature.Alveolar, feature.Voiced)),
		"l":  Core(Cons(feature.LateralApproximant, feature.Alveolar, feature.Voiced)),
		"j":  Core(Cons(feature.Approximant, feature.Palatal, feature.Voiced)),
		"w":  Core(Cons(feature.Approximant, feature.LabialVelar, feature.Voiced)),

		"i":  Core(Vow(feature.Close, feature.Front, feature.Unrounded)),
		"iː": WithPost(Vow(feature.Close, feature.Front, feature.Unrounded), feature.Long),
		"u":  Core(Vow(feature.Close, feature.Back, feature.Rounded)),
		"e":  Core(Vow(feature.CloseMid, feature.Front, feature.Unrounded)),
		"o":  Core(Vow(feature.CloseMid, feature.Back, feature.Rounded)),
		"ə":  Core(Vow(feature.Mid, feature.Central, feature.Unrounded)),
		"ɛ":  Core(Vow(feature.OpenMid, feature.Front, feature.Unrounded)),
		"ɔ":  Core(Vow(feature.OpenMid, feature.Back, feature.Rounded)),
		"a":  Core(Vow(feature.Open, feature.Front, feature.Unrounded)),
		"aː": WithPost(Vow(feature.Open, feature.Front, feature.Unrounded), feature.Long),
		"ã":  WithPost(Vow(feature.Open, feature.Front, feature.Unrounded), feature.Nasalised),

		"ai":  Core(feature.NewSet(feature.Vowel, feature.Diphthong)),
		"au":  Core(feature.NewSet(feature.Vowel, feature.Diphthong)),
		"aui": Core(feature.NewSet(feature.Vowel, feature.Triphthong)),
		"ɿ":   Core(feature.NewSet(feature.Vowel, feature.Apical)),

		// Malformed parser output.
		"X": Core(feature.NewSet(feature.Consonant, feature.Plosive)),
		"Y": Core(feature.NewSet(feature.Vowel, feature.Front)),
		"Q": Core(feature.NewSet(feature.Plosive, feature.Alveolar)),
		"Ʒ": Core(feature.NewSet(feature.Consonant, feature.Plosive, feature.Alveolar, feature.Velar)),
	}
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Inventory returns n distinct glyphs drawn from Tabulatable.
// n is clamped to len(Tabulatable).
func (r *RNG) Inventory(n int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n > len(Tabulatable) {
		n = len(Tabulatable)
	}
	perm := r.rand.Perm(len(Tabulatable))
	out := make([]string, n)
	for i := range out {
		out[i] = Tabulatable[perm[i]]
	}
	return out
}

// Subset returns every element of glyphs with probability p.
func (r *RNG) Subset(glyphs []string, p float64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, g := range glyphs {
		if r.rand.Float64() < p {
			out = append(out, g)
		}
	}
	return out
}
