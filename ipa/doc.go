// Package ipa provides a table-driven feature parser for IPA transcriptions.
//
// Parser implements phoneme.Parser. A token consists of optional pre-base
// modifiers, one base symbol (or a fixed multi-symbol base such as an
// affricate, or two or three vowels forming a polyphthong) and optional
// post-base diacritics:
//
//	p := ipa.New()
//	f, err := p.Parse("ⁿdʷ")
//	// f.Pre  = {pre-nasalised}
//	// f.Core = {consonant, plosive, alveolar, voiced}
//	// f.Post = {labialised}
//
// Tie bars, thin spaces and stress marks are ignored. Two vowels yield a
// {vowel, diphthong} core, three a {vowel, triphthong} core; the
// sinological apical vowels ɿ ʅ ʮ ʯ yield {vowel, apical}.
//
// Failures are reported as *SymbolError wrapping ErrEmptyToken,
// ErrUnknownSymbol, ErrMisplacedModifier or ErrUnsupportedCluster.
package ipa
