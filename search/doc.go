// Package search implements queries over an index.LanguageIndex.
//
//   - ExactQuery: languages with a phoneme of exactly the query's features.
//   - Query: every indexed phoneme at least as specific as the query.
//   - QueryMultiple: OR of glyph queries minus negated ("-") glyphs.
//   - FeaturesQuery: AND of feature names minus negated feature names.
//   - FeatureRating: languages ranked by how many phonemes carry a feature.
//
// Query glyphs that are diphthongs, triphthongs or apical vowels are never
// indexed, so they match nothing; this is an empty result, not an error.
//
// ParseTerms turns a free-form query line into terms for QueryMultiple and
// FeaturesQuery.
package search
