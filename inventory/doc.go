// Package inventory turns a language's phoneme list into classification tables.
//
// A Tabulator parses every token, separates consonants from vowels, sets
// diphthongs, triphthongs and apical vowels aside as flat lists, and groups
// the rest by series label. Each group becomes one table:
//
//	tab := inventory.NewTabulator(ipa.New())
//	inv, err := tab.Tabulate("Hindi", "p, pʰ, b, bʱ, t̪, t̪ʰ, a, aː, i, iː")
//
// Series are ordered by label length, shortest first, ties broken
// lexicographically; "plain" therefore precedes most other series.
//
// # Concurrency
//
// Tabulation is pure. TabulateAll processes many inventories concurrently,
// bounded by WithConcurrency.
package inventory
