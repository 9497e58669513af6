// Package feature defines the articulatory feature vocabulary and bit-set
// feature sets used throughout phonogo.
//
// # Vocabulary
//
// Every feature is a Feature constant with a stable identifier and a
// canonical name:
//
//	f, err := feature.Parse("lateral fricative") // feature.LateralFricative
//
// The vocabulary is split into groups: major class, consonant manners and
// places, vowel heights and backness, irregular vowel shapes, series-forming
// features and refining features.
//
// # Sets
//
// Set is a bit-set spanning the vocabulary. Subset, superset and equality
// tests are word-wise operations:
//
//	t := feature.NewSet(feature.Consonant, feature.Plosive, feature.Alveolar, feature.Voiceless)
//	th := t.With(feature.Aspirated)
//	th.IsSuperset(t) // true
//
// # Axes
//
// Axes pairs an ordered row vocabulary with an ordered column vocabulary.
// ConsonantAxes spans manner × place, VowelAxes spans height × backness.
// Order is significant: it fixes both table layout and index coordinates.
package feature
