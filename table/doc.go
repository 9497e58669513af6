// Package table lays out phonemes of one series on a classification grid.
//
// Build picks the rows and columns actually used by the input (in the
// canonical order of the axes, never discovery order) and places every
// phoneme in the cell named by its row and column tags.
//
// Every phoneme must land in exactly one cell. A phoneme matching no cell
// fails with a *CoverageError, one matching several cells fails with an
// *AmbiguousError. Both indicate malformed parser output and are fatal.
package table
