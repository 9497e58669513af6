package ipa

import (
	"github.com/hupe1980/phonogo/feature"
)

type base struct {
	manner, place feature.Feature
	voice         feature.Feature
}

type vowel struct {
	height, backness feature.Feature
	rounding         feature.Feature
}

const (
	vl = feature.Voiceless
	vd = feature.Voiced
	ur = feature.Unrounded
	rd = feature.Rounded
)

// consonants maps base symbols (and fixed multi-symbol bases such as
// affricates) to their manner, place and voicing.
var consonants = map[string]base{
	// plosives
	"p": {feature.Plosive, feature.Bilabial, vl},
	"b": {feature.Plosive, feature.Bilabial, vd},
	"t": {feature.Plosive, feature.Alveolar, vl},
	"d": {feature.Plosive, feature.Alveolar, vd},
	"ʈ": {feature.Plosive, feature.Retroflex, vl},
	"ɖ": {feature.Plosive, feature.Retroflex, vd},
	"c": {feature.Plosive, feature.Palatal, vl},
	"ɟ": {feature.Plosive, feature.Palatal, vd},
	"k": {feature.Plosive, feature.Velar, vl},
	"g": {feature.Plosive, feature.Velar, vd},
	"ɡ": {feature.Plosive, feature.Velar, vd},
	"q": {feature.Plosive, feature.Uvular, vl},
	"ɢ": {feature.Plosive, feature.Uvular, vd},
	"ʡ": {feature.Plosive, feature.Epiglottal, vl},
	"ʔ": {feature.Plosive, feature.Glottal, vl},

	"kp": {feature.Plosive, feature.LabialVelar, vl},
	"gb": {feature.Plosive, feature.LabialVelar, vd},
	"ɡb": {feature.Plosive, feature.LabialVelar, vd},

	// implosives
	"ɓ": {feature.Implosive, feature.Bilabial, vd},
	"ɗ": {feature.Implosive, feature.Alveolar, vd},
	"ᶑ": {feature.Implosive, feature.Retroflex, vd},
	"ʄ": {feature.Implosive, feature.Palatal, vd},
	"ɠ": {feature.Implosive, feature.Velar, vd},
	"ʛ": {feature.Implosive, feature.Uvular, vd},

	// nasals
	"m": {feature.Nasal, feature.Bilabial, vd},
	"ɱ": {feature.Nasal, feature.Labiodental, vd},
	"n": {feature.Nasal, feature.Alveolar, vd},
	"ɳ": {feature.Nasal, feature.Retroflex, vd},
	"ȵ": {feature.Nasal, feature.AlveoloPalatal, vd},
	"ɲ": {feature.Nasal, feature.Palatal, vd},
	"ŋ": {feature.Nasal, feature.Velar, vd},
	"ɴ": {feature.Nasal, feature.Uvular, vd},

	"ŋm": {feature.Nasal, feature.LabialVelar, vd},

	// trills
	"ʙ": {feature.Trill, feature.Bilabial, vd},
	"r": {feature.Trill, feature.Alveolar, vd},
	"ʀ": {feature.Trill, feature.Uvular, vd},
	"ʜ": {feature.Trill, feature.Epiglottal, vl},
	"ʢ": {feature.Trill, feature.Epiglottal, vd},

	// taps
	"ⱱ": {feature.Tap, feature.Labiodental, vd},
	"ɾ": {feature.Tap, feature.Alveolar, vd},
	"ɽ": {feature.Tap, feature.Retroflex, vd},

	// fricatives
	"ɸ": {feature.Fricative, feature.Bilabial, vl},
	"β": {feature.Fricative, feature.Bilabial, vd},
	"f": {feature.Fricative, feature.Labiodental, vl},
	"v": {feature.Fricative, feature.Labiodental, vd},
	"θ": {feature.Fricative, feature.Dental, vl},
	"ð": {feature.Fricative, feature.Dental, vd},
	"s": {feature.Fricative, feature.Alveolar, vl},
	"z": {feature.Fricative, feature.Alveolar, vd},
	"ʃ": {feature.Fricative, feature.Postalveolar, vl},
	"ʒ": {feature.Fricative, feature.Postalveolar, vd},
	"ɧ": {feature.Fricative, feature.HissingHushing, vl},
	"ʂ": {feature.Fricative, feature.Retroflex, vl},
	"ʐ": {feature.Fricative, feature.Retroflex, vd},
	"ɕ": {feature.Fricative, feature.AlveoloPalatal, vl},
	"ʑ": {feature.Fricative, feature.AlveoloPalatal, vd},
	"ç": {feature.Fricative, feature.Palatal, vl},
	"ʝ": {feature.Fricative, feature.Palatal, vd},
	"x": {feature.Fricative, feature.Velar, vl},
	"ɣ": {feature.Fricative, feature.Velar, vd},
	"χ": {feature.Fricative, feature.Uvular, vl},
	"ʁ": {feature.Fricative, feature.Uvular, vd},
	"ħ": {feature.Fricative, feature.Pharyngeal, vl},
	"ʕ": {feature.Fricative, feature.Pharyngeal, vd},
	"h": {feature.Fricative, feature.Glottal, vl},
	"ɦ": {feature.Fricative, feature.Glottal, vd},
	"ʍ": {feature.Fricative, feature.LabialVelar, vl},

	// affricates
	"pf": {feature.Affricate, feature.Labiodental, vl},
	"bv": {feature.Affricate, feature.Labiodental, vd},
	"tθ": {feature.Affricate, feature.Dental, vl},
	"dð": {feature.Affricate, feature.Dental, vd},
	"ts": {feature.Affricate, feature.Alveolar, vl},
	"dz": {feature.Affricate, feature.Alveolar, vd},
	"tʃ": {feature.Affricate, feature.Postalveolar, vl},
	"dʒ": {feature.Affricate, feature.Postalveolar, vd},
	"ʈʂ": {feature.Affricate, feature.Retroflex, vl},
	"ɖʐ": {feature.Affricate, feature.Retroflex, vd},
	"tɕ": {feature.Affricate, feature.AlveoloPalatal, vl},
	"dʑ": {feature.Affricate, feature.AlveoloPalatal, vd},
	"cç": {feature.Affricate, feature.Palatal, vl},
	"ɟʝ": {feature.Affricate, feature.Palatal, vd},
	"kx": {feature.Affricate, feature.Velar, vl},
	"qχ": {feature.Affricate, feature.Uvular, vl},
	"ʦ":  {feature.Affricate, feature.Alveolar, vl},
	"ʣ":  {feature.Affricate, feature.Alveolar, vd},
	"ʧ":  {feature.Affricate, feature.Postalveolar, vl},
	"ʤ":  {feature.Affricate, feature.Postalveolar, vd},
	"ʨ":  {feature.Affricate, feature.AlveoloPalatal, vl},
	"ʥ":  {feature.Affricate, feature.AlveoloPalatal, vd},

	// lateral fricatives and affricates
	"ɬ":  {feature.LateralFricative, feature.Alveolar, vl},
	"ɮ":  {feature.LateralFricative, feature.Alveolar, vd},
	"tɬ": {feature.LateralAffricate, feature.Alveolar, vl},
	"dɮ": {feature.LateralAffricate, feature.Alveolar, vd},

	// approximants
	"ʋ": {feature.Approximant, feature.Labiodental, vd},
	"ɹ": {feature.Approximant, feature.Alveolar, vd},
	"ɻ": {feature.Approximant, feature.Retroflex, vd},
	"j": {feature.Approximant, feature.Palatal, vd},
	"ɰ": {feature.Approximant, feature.Velar, vd},
	"w": {feature.Approximant, feature.LabialVelar, vd},
	"ɥ": {feature.Approximant, feature.LabialPalatal, vd},

	// lateral approximants
	"l": {feature.LateralApproximant, feature.Alveolar, vd},
	"ɭ": {feature.LateralApproximant, feature.Retroflex, vd},
	"ʎ": {feature.LateralApproximant, feature.Palatal, vd},
	"ʟ": {feature.LateralApproximant, feature.Velar, vd},
}

var vowels = map[string]vowel{
	"i": {feature.Close, feature.Front, ur},
	"y": {feature.Close, feature.Front, rd},
	"ɨ": {feature.Close, feature.Central, ur},
	"ʉ": {feature.Close, feature.Central, rd},
	"ɯ": {feature.Close, feature.Back, ur},
	"u": {feature.Close, feature.Back, rd},

	"ɪ": {feature.NearClose, feature.NearFront, ur},
	"ʏ": {feature.NearClose, feature.NearFront, rd},
	"ʊ": {feature.NearClose, feature.NearBack, rd},

	"e": {feature.CloseMid, feature.Front, ur},
	"ø": {feature.CloseMid, feature.Front, rd},
	"ɘ": {feature.CloseMid, feature.Central, ur},
	"ɵ": {feature.CloseMid, feature.Central, rd},
	"ɤ": {feature.CloseMid, feature.Back, ur},
	"o": {feature.CloseMid, feature.Back, rd},

	"ə": {feature.Mid, feature.Central, ur},

	"ɛ": {feature.OpenMid, feature.Front, ur},
	"œ": {feature.OpenMid, feature.Front, rd},
	"ɜ": {feature.OpenMid, feature.Central, ur},
	"ɞ": {feature.OpenMid, feature.Central, rd},
	"ʌ": {feature.OpenMid, feature.Back, ur},
	"ɔ": {feature.OpenMid, feature.Back, rd},

	"æ": {feature.NearOpen, feature.Front, ur},
	"ɐ": {feature.NearOpen, feature.Central, ur},

	"a": {feature.Open, feature.Front, ur},
	"ɶ": {feature.Open, feature.Front, rd},
	"ɑ": {feature.Open, feature.Back, ur},
	"ɒ": {feature.Open, feature.Back, rd},
}

// apicals are the sinological apical vowels.
var apicals = map[string]bool{
	"ɿ": true,
	"ʅ": true,
	"ʮ": true,
	"ʯ": true,
}

// modifier describes a diacritic or modifier letter. pre applies when the
// mark precedes the base symbol (only if hasPre), post when it follows it.
type modifier struct {
	pre, post feature.Feature
	hasPre    bool
}

func postOnly(f feature.Feature) modifier { return modifier{post: f} }

func both(pre, post feature.Feature) modifier {
	return modifier{pre: pre, post: post, hasPre: true}
}

var modifiers = map[rune]modifier{
	// modifier letters
	'ʰ': both(feature.PreAspirated, feature.Aspirated),
	'ʱ': both(feature.PreAspirated, feature.BreathyVoiced),
	'ʷ': both(feature.PreLabialised, feature.Labialised),
	'ⁿ': both(feature.PreNasalised, feature.NasalReleased),
	'ᵐ': both(feature.PreNasalised, feature.NasalReleased),
	'ᵑ': both(feature.PreNasalised, feature.NasalReleased),
	'ˀ': both(feature.PreGlottalised, feature.Glottalised),
	'ʲ': postOnly(feature.Palatalised),
	'ˠ': postOnly(feature.Velarised),
	'ˤ': postOnly(feature.Pharyngealised),
	'ː': postOnly(feature.Long),
	'ˑ': postOnly(feature.HalfLong),
	'ʼ': postOnly(feature.Ejective),
	'ˡ': postOnly(feature.LateralReleased),
	'˞': postOnly(feature.Rhotic),

	// combining diacritics, as they appear after NFD
	'\u0303': postOnly(feature.Nasalised),           // tilde
	'\u0325': postOnly(feature.Devoiced),            // ring below
	'\u030a': postOnly(feature.Devoiced),            // ring above
	'\u0324': postOnly(feature.BreathyVoiced),       // diaeresis below
	'\u0330': postOnly(feature.CreakyVoiced),        // tilde below
	'\u032a': postOnly(feature.Dentalised),          // bridge below
	'\u0329': postOnly(feature.Syllabic),            // vertical line below
	'\u030d': postOnly(feature.Syllabic),            // vertical line above
	'\u032f': postOnly(feature.NonSyllabic),         // inverted breve below
	'\u0311': postOnly(feature.NonSyllabic),         // inverted breve
	'\u0339': postOnly(feature.MoreRounded),         // right half ring below
	'\u031c': postOnly(feature.LessRounded),         // left half ring below
	'\u031f': postOnly(feature.Advanced),            // plus sign below
	'\u0320': postOnly(feature.Retracted),           // minus sign below
	'\u0308': postOnly(feature.Centralised),         // diaeresis
	'\u033d': postOnly(feature.MidCentralised),      // x above
	'\u031d': postOnly(feature.Raised),              // up tack below
	'\u031e': postOnly(feature.Lowered),             // down tack below
	'\u0318': postOnly(feature.AdvancedTongueRoot),  // left tack below
	'\u0319': postOnly(feature.RetractedTongueRoot), // right tack below
	'\u031a': postOnly(feature.Unreleased),          // left angle above
	'\u0306': postOnly(feature.ExtraShort),          // breve
	'\u0334': postOnly(feature.Velarised),           // tilde overlay
}

// ignored marks are dropped before parsing: tie bars, thin spaces, stress
// and tone. Tone is suprasegmental and carries no segment feature.
var ignored = map[rune]bool{
	'\u0361': true, // tie bar above
	'\u035c': true, // tie bar below
	'\u2009': true, // thin space
	'ˈ':      true,
	'ˌ':      true,

	'\u0301': true, // acute, high tone
	'\u0300': true, // grave, low tone
	'\u0302': true, // circumflex, falling tone
	'\u030c': true, // caron, rising tone
	'\u0304': true, // macron, mid tone
	'\u030b': true, // double acute, extra high tone
	'\u030f': true, // double grave, extra low tone
	'˥':      true,
	'˦':      true,
	'˧':      true,
	'˨':      true,
	'˩':      true,
}

// letters are single code points spelling a base plus a modifier.
var letters = map[rune][]rune{
	'ɫ': {'l', 'ˠ'},
	'ɚ': {'ə', '˞'},
	'ɝ': {'ɜ', '˞'},
}
