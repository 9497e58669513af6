package phonogo

import (
	"context"
	"io"
	"time"

	"github.com/hupe1980/phonogo/corpus"
	"github.com/hupe1980/phonogo/index"
	"github.com/hupe1980/phonogo/inventory"
	"github.com/hupe1980/phonogo/ipa"
	"github.com/hupe1980/phonogo/phoneme"
	"github.com/hupe1980/phonogo/render"
	"github.com/hupe1980/phonogo/search"
)

type (
	// Match is one indexed phoneme returned by Query.
	Match = search.Match
	// Rating is one entry of a FeatureRating result.
	Rating = search.Rating
	// Inventory is a tabulated phoneme inventory.
	Inventory = inventory.Inventory
	// Record is a named list of phoneme tokens.
	Record = inventory.Record
	// Stats describes the contents of the index.
	Stats = index.Stats
)

// Phonogo bundles a language index, its query engine and an inventory
// tabulator that share one feature parser.
//
// Every Phonogo is independent; there is no package-level instance.
type Phonogo struct {
	parser    phoneme.Parser
	index     *index.LanguageIndex
	engine    *search.Engine
	tabulator *inventory.Tabulator
	metrics   MetricsCollector
	logger    *Logger
}

// New creates an empty Phonogo.
func New(optFns ...Option) *Phonogo {
	opts := applyOptions(optFns)

	x := index.New(opts.parser)
	return &Phonogo{
		parser:    opts.parser,
		index:     x,
		engine:    search.New(x),
		tabulator: inventory.NewTabulator(opts.parser, inventory.WithConcurrency(opts.concurrency)),
		metrics:   opts.metricsCollector,
		logger:    opts.logger,
	}
}

func applyOptions(optFns []Option) options {
	opts := options{
		concurrency:      inventory.DefaultConcurrency,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.parser == nil {
		opts.parser = ipa.New()
	}
	if opts.metricsCollector == nil {
		opts.metricsCollector = NoopMetricsCollector{}
	}
	if opts.logger == nil {
		opts.logger = NoopLogger()
	}
	return opts
}

// Parser returns the feature parser.
func (pg *Phonogo) Parser() phoneme.Parser {
	return pg.parser
}

// Index returns the underlying language index.
func (pg *Phonogo) Index() *index.LanguageIndex {
	return pg.index
}

// AddLanguage indexes the glyphs of one language. It must not be called
// twice for the same language; LoadCorpus enforces that.
func (pg *Phonogo) AddLanguage(ctx context.Context, name string, glyphs []string) error {
	start := time.Now()
	err := pg.index.AddLanguage(name, glyphs)
	pg.metrics.RecordAddLanguage(len(glyphs), time.Since(start), err)
	pg.logger.LogAddLanguage(ctx, name, len(glyphs), err)
	return err
}

// LoadCorpus adds every record, rejecting repeated language names.
func (pg *Phonogo) LoadCorpus(ctx context.Context, records []Record) error {
	start := time.Now()
	err := corpus.Load(ctx, records, pg)
	pg.logger.LogLoad(ctx, len(records), time.Since(start), err)
	return err
}

// ExactQuery returns the languages having a phoneme with exactly the
// features of glyph.
func (pg *Phonogo) ExactQuery(ctx context.Context, glyph string) ([]string, error) {
	start := time.Now()
	langs, err := pg.engine.ExactQuery(glyph)
	pg.record(ctx, "exact", []string{glyph}, len(langs), start, err)
	return langs, err
}

// Query returns every indexed phoneme at least as specific as glyph.
func (pg *Phonogo) Query(ctx context.Context, glyph string) ([]Match, error) {
	start := time.Now()
	matches, err := pg.engine.Query(glyph)
	pg.record(ctx, "superset", []string{glyph}, len(matches), start, err)
	return matches, err
}

// QueryMultiple ORs glyph queries and subtracts negated ("-") ones.
func (pg *Phonogo) QueryMultiple(ctx context.Context, terms ...string) ([]string, error) {
	start := time.Now()
	langs, err := pg.engine.QueryMultiple(terms...)
	pg.record(ctx, "multiple", terms, len(langs), start, err)
	return langs, err
}

// FeaturesQuery ANDs feature names and subtracts negated ("-") ones.
func (pg *Phonogo) FeaturesQuery(ctx context.Context, terms ...string) ([]string, error) {
	start := time.Now()
	langs, err := pg.engine.FeaturesQuery(terms...)
	pg.record(ctx, "features", terms, len(langs), start, err)
	return langs, err
}

// FeatureRating ranks languages by the number of phonemes carrying the
// named feature.
func (pg *Phonogo) FeatureRating(ctx context.Context, name string) ([]Rating, error) {
	start := time.Now()
	ratings, err := pg.engine.FeatureRating(name)
	pg.record(ctx, "rating", []string{name}, len(ratings), start, err)
	return ratings, err
}

func (pg *Phonogo) record(ctx context.Context, kind string, terms []string, results int, start time.Time, err error) {
	pg.metrics.RecordQuery(kind, time.Since(start), err)
	pg.logger.LogQuery(ctx, kind, terms, results, err)
}

// Tabulate parses a comma separated inventory and arranges it into tables.
func (pg *Phonogo) Tabulate(ctx context.Context, name, phonoString string) (*Inventory, error) {
	start := time.Now()
	inv, err := pg.tabulator.Tabulate(name, phonoString)
	n := 0
	if inv != nil {
		n = inv.Len()
	}
	pg.metrics.RecordTabulate(1, time.Since(start), err)
	pg.logger.LogTabulate(ctx, name, n, err)
	return inv, err
}

// TabulateAll tabulates many inventories concurrently. Results keep the
// order of records.
func (pg *Phonogo) TabulateAll(ctx context.Context, records []Record) ([]*Inventory, error) {
	start := time.Now()
	invs, err := pg.tabulator.TabulateAll(ctx, records)
	pg.metrics.RecordTabulate(len(records), time.Since(start), err)
	pg.logger.LogBatchTabulate(ctx, len(records), err)
	return invs, err
}

// RenderHTML writes the markup fragment of inv.
func (pg *Phonogo) RenderHTML(w io.Writer, inv *Inventory) error {
	return render.HTML(w, inv)
}

// RenderDocument writes a standalone page holding the fragments of invs.
func (pg *Phonogo) RenderDocument(w io.Writer, title string, invs ...*Inventory) error {
	return render.Document(w, title, invs...)
}

// Languages returns the indexed languages in insertion order.
func (pg *Phonogo) Languages() []string {
	return pg.index.Languages()
}

// Stats returns index counters.
func (pg *Phonogo) Stats() Stats {
	return pg.index.Stats()
}
