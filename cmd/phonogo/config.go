package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/phonogo"
	"github.com/hupe1980/phonogo/blobstore"
	"github.com/hupe1980/phonogo/blobstore/minio"
	"github.com/hupe1980/phonogo/blobstore/s3"
	"github.com/hupe1980/phonogo/corpus"
)

// Config is the on-disk configuration of the command.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Corpus CorpusConfig `yaml:"corpus"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

// StoreConfig selects where corpus files are kept.
type StoreConfig struct {
	// Kind is one of "local", "memory", "s3" or "minio".
	Kind string `yaml:"kind"`
	// Root is the directory of a local store.
	Root string `yaml:"root"`

	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`

	Minio minio.Config `yaml:"minio"`
}

// CorpusConfig names the corpus to load.
type CorpusConfig struct {
	// Name is the blob holding a tab-separated export.
	Name string `yaml:"name"`
	// SQLite, when set, is a database DSN read instead of Name.
	SQLite string `yaml:"sqlite"`
	// Query overrides the SQLite select statement.
	Query string `yaml:"query"`

	NameColumn       int   `yaml:"name_column"`
	InventoryColumns []int `yaml:"inventory_columns"`
	SkipHeader       *bool `yaml:"skip_header"`
}

// LogConfig configures the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	RateLimit   float64  `yaml:"rate_limit"`
	Burst       int      `yaml:"burst"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{Kind: "local", Root: "."},
		Corpus: CorpusConfig{
			Name:             "inventories.tsv",
			NameColumn:       corpus.DefaultLayout.NameColumn,
			InventoryColumns: append([]int(nil), corpus.DefaultLayout.InventoryColumns...),
		},
		Log:    LogConfig{Level: "info", Format: "text"},
		Server: ServerConfig{Addr: ":8080", RateLimit: 50, Burst: 100, CORSOrigins: []string{"*"}},
	}
}

// LoadConfig reads path over the defaults. An empty path yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Layout returns the TSV layout of the corpus.
func (c CorpusConfig) Layout() corpus.Layout {
	l := corpus.Layout{
		NameColumn:       c.NameColumn,
		InventoryColumns: c.InventoryColumns,
		SkipHeader:       true,
	}
	if c.SkipHeader != nil {
		l.SkipHeader = *c.SkipHeader
	}
	return l
}

// Logger builds the configured logger.
func (c LogConfig) Logger() (*phonogo.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("config: log level: %w", err)
	}
	switch strings.ToLower(c.Format) {
	case "", "text":
		return phonogo.NewTextLogger(level), nil
	case "json":
		return phonogo.NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("config: unknown log format %q", c.Format)
	}
}

var errUnknownStore = errors.New("unknown store kind")

// OpenStore connects to the configured blob store.
func (c StoreConfig) OpenStore(ctx context.Context) (blobstore.BlobStore, error) {
	switch strings.ToLower(c.Kind) {
	case "", "local":
		return blobstore.NewLocalStore(c.Root), nil
	case "memory":
		return blobstore.NewMemoryStore(), nil
	case "s3":
		var opts []s3.Option
		if c.Prefix != "" {
			opts = append(opts, s3.WithPrefix(c.Prefix))
		}
		if c.Region != "" {
			opts = append(opts, s3.WithRegion(c.Region))
		}
		if c.Endpoint != "" {
			opts = append(opts, s3.WithEndpoint(c.Endpoint))
		}
		store, err := s3.New(ctx, c.Bucket, opts...)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "minio":
		store, err := minio.New(c.Minio)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("config: %w %q", errUnknownStore, c.Kind)
	}
}

// LoadRecords reads the configured corpus.
func (c Config) LoadRecords(ctx context.Context) ([]corpus.Record, error) {
	if c.Corpus.SQLite != "" {
		db, err := corpus.OpenSQLite(c.Corpus.SQLite)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return corpus.ReadSQLite(ctx, db, c.Corpus.Query)
	}

	store, err := c.Store.OpenStore(ctx)
	if err != nil {
		return nil, err
	}
	return corpus.Open(ctx, store, c.Corpus.Name, c.Corpus.Layout())
}
