// Package phoneme classifies parsed transcription symbols.
//
// A Parser reports three feature sets for a token: features of diacritics
// before the base symbol, inherent features of the base, and features of
// diacritics after it. Classify folds them into a Phoneme whose Series set
// holds the series-forming diacritic features (aspiration, length,
// nasalisation ...) and whose Core set holds everything else:
//
//	Series = SeriesForming ∩ (Pre ∪ Post)
//	Core   = Core ∪ ((Pre ∪ Post) \ Series)
//
// Series decides which table a phoneme belongs to, Core decides its cell.
package phoneme
