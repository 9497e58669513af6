// Package index implements the cross-language phoneme index.
//
// Each glyph of a language is parsed into its exact feature set (pre-base,
// core and post-base features together) and stored in a bucket addressed by
// its manner and place (consonants) or height and backness (vowels):
//
//	x := index.New(ipa.New())
//	_ = x.AddLanguage("A", []string{"m", "t", "tʰ"})
//	_ = x.AddLanguage("B", []string{"m"})
//
// Every bucket maps an exact feature set to an Entry holding the first
// glyph that introduced it and the languages that have it, in insertion
// order. Language ids are dense and assigned in insertion order; LanguageSet
// stores them in a Roaring bitmap so the search package can combine result
// sets cheaply.
//
// Diphthongs, triphthongs and apical vowels are recognised and skipped. A
// phoneme without a row or column feature fails with *UnrecognizedError.
package index
