package phonogo

import (
	"github.com/hupe1980/phonogo/corpus"
	"github.com/hupe1980/phonogo/feature"
	"github.com/hupe1980/phonogo/index"
	"github.com/hupe1980/phonogo/phoneme"
	"github.com/hupe1980/phonogo/search"
	"github.com/hupe1980/phonogo/table"
)

// Sentinel errors of the subpackages, re-exported so callers can use
// errors.Is without importing them.
var (
	ErrNoTerms             = search.ErrNoTerms
	ErrNegatedRating       = search.ErrNegatedRating
	ErrUnrecognizedPhoneme = index.ErrUnrecognizedPhoneme
	ErrAmbiguousPhoneme    = index.ErrAmbiguousPhoneme
	ErrTableCoverage       = table.ErrCoverage
	ErrAmbiguousCell       = table.ErrAmbiguousCell
	ErrUnclassified        = phoneme.ErrUnclassified
	ErrUnknownFeature      = feature.ErrUnknownFeature
	ErrDuplicateLanguage   = corpus.ErrDuplicateLanguage
)

type (
	// UnrecognizedError reports a phoneme without a row or column feature.
	UnrecognizedError = index.UnrecognizedError
	// AmbiguousPhonemeError reports a phoneme that fits several index buckets.
	AmbiguousPhonemeError = index.AmbiguousError
	// CoverageError reports phonemes that found no table cell.
	CoverageError = table.CoverageError
	// AmbiguousError reports a phoneme matching several table cells.
	AmbiguousError = table.AmbiguousError
)
