package feature

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFeature is returned when a feature name is not part of the vocabulary.
var ErrUnknownFeature = errors.New("unknown feature")

// Feature is a single articulatory feature tag.
//
// Identifiers are stable: they double as bit positions in a Set.
type Feature uint16

// Major classes.
const (
	Consonant Feature = iota
	Vowel
)

// Consonant manners (table rows), in canonical order.
const (
	Plosive Feature = iota + Vowel + 1
	Implosive
	Nasal
	Trill
	Tap
	Fricative
	Affricate
	LateralFricative
	LateralAffricate
	Approximant
	LateralApproximant
)

// Consonant places (table columns), in canonical order.
const (
	Bilabial Feature = iota + LateralApproximant + 1
	LabialVelar
	LabialPalatal
	Labiodental
	Dental
	Alveolar
	Postalveolar
	HissingHushing
	Retroflex
	AlveoloPalatal
	Palatal
	Velar
	Uvular
	Pharyngeal
	Glottal
	Epiglottal
)

// Vowel heights (table rows), in canonical order.
const (
	Close Feature = iota + Epiglottal + 1
	NearClose
	CloseMid
	Mid
	OpenMid
	NearOpen
	Open
)

// Vowel backness (table columns), in canonical order.
const (
	Front Feature = iota + Open + 1
	NearFront
	Central
	NearBack
	Back
)

// Irregular vowel shapes. Phonemes carrying one of these are never tabulated
// or indexed.
const (
	Diphthong Feature = iota + Back + 1
	Triphthong
	Apical
)

// Series-forming features.
const (
	PreGlottalised Feature = iota + Apical + 1
	PreAspirated
	PreNasalised
	PreLabialised
	Aspirated
	Ejective
	Pharyngealised
	Nasalised
	Labialised
	Velarised
	Faucalised
	Palatalised
	HalfLong
	Long
	CreakyVoiced
	BreathyVoiced
	LateralReleased
	Rhotic
	AdvancedTongueRoot
	RetractedTongueRoot
)

// Refining features: they narrow a phoneme down without moving it to
// another table.
const (
	Voiced Feature = iota + RetractedTongueRoot + 1
	Voiceless
	Rounded
	Unrounded
	Devoiced
	Syllabic
	NonSyllabic
	Dentalised
	Advanced
	Retracted
	Centralised
	MidCentralised
	Raised
	Lowered
	MoreRounded
	LessRounded
	Unreleased
	NasalReleased
	ExtraShort
	Glottalised

	// Count is the size of the vocabulary.
	Count
)

var names = [Count]string{
	Consonant: "consonant",
	Vowel:     "vowel",

	Plosive:            "plosive",
	Implosive:          "implosive",
	Nasal:              "nasal",
	Trill:              "trill",
	Tap:                "tap",
	Fricative:          "fricative",
	Affricate:          "affricate",
	LateralFricative:   "lateral fricative",
	LateralAffricate:   "lateral affricate",
	Approximant:        "approximant",
	LateralApproximant: "lateral approximant",

	Bilabial:       "bilabial",
	LabialVelar:    "labial-velar",
	LabialPalatal:  "labial-palatal",
	Labiodental:    "labiodental",
	Dental:         "dental",
	Alveolar:       "alveolar",
	Postalveolar:   "postalveolar",
	HissingHushing: "hissing-hushing",
	Retroflex:      "retroflex",
	AlveoloPalatal: "alveolo-palatal",
	Palatal:        "palatal",
	Velar:          "velar",
	Uvular:         "uvular",
	Pharyngeal:     "pharyngeal",
	Glottal:        "glottal",
	Epiglottal:     "epiglottal",

	Close:     "close",
	NearClose: "near-close",
	CloseMid:  "close-mid",
	Mid:       "mid",
	OpenMid:   "open-mid",
	NearOpen:  "near-open",
	Open:      "open",

	Front:     "front",
	NearFront: "near-front",
	Central:   "central",
	NearBack:  "near-back",
	Back:      "back",

	Diphthong:  "diphthong",
	Triphthong: "triphthong",
	Apical:     "apical",

	PreGlottalised:      "pre-glottalised",
	PreAspirated:        "pre-aspirated",
	PreNasalised:        "pre-nasalised",
	PreLabialised:       "pre-labialised",
	Aspirated:           "aspirated",
	Ejective:            "ejective",
	Pharyngealised:      "pharyngealised",
	Nasalised:           "nasalised",
	Labialised:          "labialised",
	Velarised:           "velarised",
	Faucalised:          "faucalised",
	Palatalised:         "palatalised",
	HalfLong:            "half-long",
	Long:                "long",
	CreakyVoiced:        "creaky-voiced",
	BreathyVoiced:       "breathy-voiced",
	LateralReleased:     "lateral-released",
	Rhotic:              "rhotic",
	AdvancedTongueRoot:  "advanced-tongue-root",
	RetractedTongueRoot: "retracted-tongue-root",

	Voiced:         "voiced",
	Voiceless:      "voiceless",
	Rounded:        "rounded",
	Unrounded:      "unrounded",
	Devoiced:       "devoiced",
	Syllabic:       "syllabic",
	NonSyllabic:    "non-syllabic",
	Dentalised:     "dentalised",
	Advanced:       "advanced",
	Retracted:      "retracted",
	Centralised:    "centralised",
	MidCentralised: "mid-centralised",
	Raised:         "raised",
	Lowered:        "lowered",
	MoreRounded:    "more-rounded",
	LessRounded:    "less-rounded",
	Unreleased:     "unreleased",
	NasalReleased:  "nasal-released",
	ExtraShort:     "extra-short",
	Glottalised:    "glottalised",
}

var byName = func() map[string]Feature {
	m := make(map[string]Feature, Count)
	for f := Feature(0); f < Count; f++ {
		m[names[f]] = f
	}
	return m
}()

// String returns the canonical name of the feature.
func (f Feature) String() string {
	if f >= Count {
		return fmt.Sprintf("feature(%d)", uint16(f))
	}
	return names[f]
}

// Valid reports whether f belongs to the vocabulary.
func (f Feature) Valid() bool {
	return f < Count
}

// Parse resolves a feature name. Runs of whitespace inside the name are
// collapsed, so "lateral   fricative" resolves to LateralFricative.
func Parse(name string) (Feature, error) {
	key := strings.ToLower(strings.Join(strings.Fields(name), " "))
	if f, ok := byName[key]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
}

// MustParse is like Parse but panics on unknown names.
func MustParse(name string) Feature {
	f, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return f
}

// All returns the whole vocabulary in identifier order.
func All() []Feature {
	out := make([]Feature, Count)
	for i := range out {
		out[i] = Feature(i)
	}
	return out
}
