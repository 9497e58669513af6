// Package render emits tabulated inventories as HTML.
//
// HTML writes a fragment meant for embedding in a larger page: a title,
// one table per consonant and vowel series, then inline lists of apical
// vowels, diphthongs and triphthongs. Document wraps several fragments in
// a standalone page. All text is escaped by html/template.
package render
