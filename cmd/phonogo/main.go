// Command phonogo tabulates phoneme inventories and searches them across
// languages.
//
// The corpus is read from the store named in the configuration file, or
// from a SQLite database. Query commands print JSON to stdout:
//
//	phonogo exact tʰ
//	phonogo query t
//	phonogo multi -- t -pʰ
//	phonogo features -- lateral fricative -voiced
//	phonogo rating aspirated
//	phonogo render -o out.html English French
//	phonogo serve
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/hupe1980/phonogo"
	"github.com/hupe1980/phonogo/corpus"
	"github.com/hupe1980/phonogo/search"
)

const version = "0.1.0"

// CLI defines the command-line interface for phonogo.
var CLI struct {
	Globals

	Render   RenderCmd   `cmd:"" help:"Render inventories as HTML tables"`
	Exact    ExactCmd    `cmd:"" help:"Languages having a phoneme with exactly the given features"`
	Query    QueryCmd    `cmd:"" help:"Indexed phonemes refining the given one"`
	Multi    MultiCmd    `cmd:"" help:"Languages having a phoneme refining any positive glyph"`
	Features FeaturesCmd `cmd:"" help:"Languages carrying every positive feature"`
	Rating   RatingCmd   `cmd:"" help:"Rank languages by the number of phonemes with a feature"`
	Serve    ServeCmd    `cmd:"" help:"Start the REST API server"`
	Push     PushCmd     `cmd:"" help:"Upload a corpus file to the configured store"`
	Convert  ConvertCmd  `cmd:"" help:"Copy the configured corpus into a SQLite database"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// Globals are flags shared by every command.
type Globals struct {
	Config    string `short:"c" help:"YAML configuration file" type:"path"`
	Corpus    string `help:"Corpus blob name, overrides the configuration"`
	SQLite    string `name:"sqlite" help:"SQLite DSN to read the corpus from"`
	LogLevel  string `help:"Log level (debug, info, warn, error)"`
	LogFormat string `help:"Log format (text, json)"`
}

// config loads the configuration file and applies flag overrides.
func (g *Globals) config() (Config, error) {
	cfg, err := LoadConfig(g.Config)
	if err != nil {
		return Config{}, err
	}
	if g.Corpus != "" {
		cfg.Corpus.Name = g.Corpus
	}
	if g.SQLite != "" {
		cfg.Corpus.SQLite = g.SQLite
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}
	return cfg, nil
}

// env is a loaded Phonogo together with the records it was built from.
type env struct {
	cfg     Config
	logger  *phonogo.Logger
	pg      *phonogo.Phonogo
	records []corpus.Record
}

func (g *Globals) load(ctx context.Context) (*env, error) {
	cfg, err := g.config()
	if err != nil {
		return nil, err
	}
	logger, err := cfg.Log.Logger()
	if err != nil {
		return nil, err
	}

	records, err := cfg.LoadRecords(ctx)
	if err != nil {
		return nil, err
	}

	pg := phonogo.New(phonogo.WithLogger(logger))
	if err := pg.LoadCorpus(ctx, records); err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, pg: pg, records: records}, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderCmd renders inventories of the corpus.
type RenderCmd struct {
	Languages []string `arg:"" optional:"" help:"Languages to render; all when omitted"`
	Out       string   `short:"o" help:"Output file (default stdout)" type:"path"`
	Title     string   `help:"Document title" default:"Phoneme inventories"`
	Fragment  bool     `help:"Write bare fragments instead of a full document"`
}

func (c *RenderCmd) Run(g *Globals) error {
	ctx := context.Background()
	cfg, err := g.config()
	if err != nil {
		return err
	}
	logger, err := cfg.Log.Logger()
	if err != nil {
		return err
	}
	records, err := cfg.LoadRecords(ctx)
	if err != nil {
		return err
	}
	records, err = selectRecords(records, c.Languages)
	if err != nil {
		return err
	}

	pg := phonogo.New(phonogo.WithLogger(logger))
	invs, err := pg.TabulateAll(ctx, records)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if !c.Fragment {
		return pg.RenderDocument(w, c.Title, invs...)
	}
	for _, inv := range invs {
		if err := pg.RenderHTML(w, inv); err != nil {
			return err
		}
	}
	return nil
}

func selectRecords(records []corpus.Record, names []string) ([]corpus.Record, error) {
	if len(names) == 0 {
		return records, nil
	}
	byName := make(map[string]corpus.Record, len(records))
	for _, r := range records {
		byName[r.Name] = r
	}
	out := make([]corpus.Record, 0, len(names))
	for _, n := range names {
		r, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("unknown language %q", n)
		}
		out = append(out, r)
	}
	return out, nil
}

// ExactCmd runs an exact query.
type ExactCmd struct {
	Glyph string `arg:"" help:"IPA glyph"`
}

func (c *ExactCmd) Run(g *Globals) error {
	ctx := context.Background()
	e, err := g.load(ctx)
	if err != nil {
		return err
	}
	langs, err := e.pg.ExactQuery(ctx, c.Glyph)
	if err != nil {
		return err
	}
	return printJSON(os.Stdout, exactResponse{Glyph: c.Glyph, Languages: nonNil(langs)})
}

// QueryCmd runs a superset query.
type QueryCmd struct {
	Glyph string `arg:"" help:"IPA glyph"`
}

func (c *QueryCmd) Run(g *Globals) error {
	ctx := context.Background()
	e, err := g.load(ctx)
	if err != nil {
		return err
	}
	matches, err := e.pg.Query(ctx, c.Glyph)
	if err != nil {
		return err
	}
	if matches == nil {
		matches = []phonogo.Match{}
	}
	return printJSON(os.Stdout, queryResponse{Glyph: c.Glyph, Matches: matches})
}

// MultiCmd runs a disjunctive query.
type MultiCmd struct {
	Terms []string `arg:"" passthrough:"" help:"IPA glyphs; prefix with - to negate (use -- first)"`
}

func (c *MultiCmd) Run(g *Globals) error {
	return runTerms(g, c.Terms, (*phonogo.Phonogo).QueryMultiple)
}

// FeaturesCmd runs a conjunctive query.
type FeaturesCmd struct {
	Terms []string `arg:"" passthrough:"" help:"Feature names; prefix with - to negate (use -- first)"`
}

func (c *FeaturesCmd) Run(g *Globals) error {
	return runTerms(g, c.Terms, (*phonogo.Phonogo).FeaturesQuery)
}

func runTerms(g *Globals, args []string, query func(*phonogo.Phonogo, context.Context, ...string) ([]string, error)) error {
	// Rejoining lets "lateral fricative" arrive as two arguments.
	terms, err := search.ParseTerms(strings.Join(dropDashes(args), " "))
	if err != nil {
		return err
	}

	ctx := context.Background()
	e, err := g.load(ctx)
	if err != nil {
		return err
	}
	langs, err := query(e.pg, ctx, terms...)
	if err != nil {
		return err
	}
	return printJSON(os.Stdout, termsResponse{Terms: terms, Languages: nonNil(langs)})
}

func dropDashes(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a != "--" {
			out = append(out, a)
		}
	}
	return out
}

// RatingCmd ranks languages by feature count.
type RatingCmd struct {
	Feature []string `arg:"" help:"Feature name"`
}

func (c *RatingCmd) Run(g *Globals) error {
	ctx := context.Background()
	e, err := g.load(ctx)
	if err != nil {
		return err
	}
	name := strings.Join(c.Feature, " ")
	ratings, err := e.pg.FeatureRating(ctx, name)
	if err != nil {
		return err
	}
	if ratings == nil {
		ratings = []phonogo.Rating{}
	}
	return printJSON(os.Stdout, ratingResponse{Feature: name, Ratings: ratings})
}

// ServeCmd starts the REST API.
type ServeCmd struct {
	Addr string `help:"Listen address, overrides the configuration"`
}

func (c *ServeCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := g.load(ctx)
	if err != nil {
		return err
	}
	addr := e.cfg.Server.Addr
	if c.Addr != "" {
		addr = c.Addr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(e.pg, e.records, e.logger, e.cfg.Server),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		e.logger.Info("listening", "addr", addr, "languages", len(e.records))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// PushCmd uploads a local corpus file to the configured store.
type PushCmd struct {
	Path string `arg:"" help:"Tab-separated corpus file" type:"existingfile"`
	Name string `help:"Blob name; a .zst, .lz4 or .xz suffix compresses the upload"`
}

func (c *PushCmd) Run(g *Globals) error {
	ctx := context.Background()
	cfg, err := g.config()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}
	// Refuse to publish a file the loader could not read back.
	if _, err := corpus.ReadTSV(bytes.NewReader(data), cfg.Corpus.Layout()); err != nil {
		return err
	}

	store, err := cfg.Store.OpenStore(ctx)
	if err != nil {
		return err
	}
	name := c.Name
	if name == "" {
		name = cfg.Corpus.Name
	}
	if err := corpus.Put(ctx, store, name, data); err != nil {
		return err
	}
	fmt.Printf("pushed %s as %s\n", c.Path, name)
	return nil
}

// ConvertCmd writes the configured corpus into a SQLite database.
type ConvertCmd struct {
	DSN string `arg:"" help:"Target SQLite DSN"`
}

func (c *ConvertCmd) Run(g *Globals) error {
	ctx := context.Background()
	cfg, err := g.config()
	if err != nil {
		return err
	}
	records, err := cfg.LoadRecords(ctx)
	if err != nil {
		return err
	}

	db, err := corpus.OpenSQLite(c.DSN)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := corpus.SaveSQLite(ctx, db, records); err != nil {
		return err
	}
	fmt.Printf("wrote %d languages from %s to %s\n", len(records), corpus.Base(cfg.Corpus.Name), c.DSN)
	return nil
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println("phonogo", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("phonogo"),
		kong.Description("Phoneme inventory tables and cross-language phoneme search"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&CLI.Globals)
	ctx.FatalIfErrorf(err)
}
