package corpus

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/hupe1980/phonogo/blobstore"
	"github.com/hupe1980/phonogo/inventory"
)

// ErrDuplicateLanguage is returned when a language is loaded twice.
var ErrDuplicateLanguage = errors.New("duplicate language")

// Record is one language and its phoneme tokens.
type Record = inventory.Record

// Adder is the sink Load feeds records into.
type Adder interface {
	AddLanguage(ctx context.Context, name string, glyphs []string) error
	Languages() []string
}

// Open reads a tab-separated corpus from store. A .zst, .lz4 or .xz
// extension selects the matching decompressor.
func Open(ctx context.Context, store blobstore.BlobStore, name string, layout Layout) ([]Record, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", name, err)
	}
	defer blob.Close()

	r, err := NewReader(CompressionFor(name), blob)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return ReadTSV(r, layout)
}

// Put compresses data according to the extension of name and stores it.
func Put(ctx context.Context, store blobstore.BlobStore, name string, data []byte) error {
	var buf bytes.Buffer
	w, err := NewWriter(CompressionFor(name), &buf)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("corpus: compress %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("corpus: compress %s: %w", name, err)
	}
	return store.Put(ctx, name, buf.Bytes())
}

// Base strips the directory and any compression extension from name.
func Base(name string) string {
	base := path.Base(name)
	if CompressionFor(base) != CompressionNone {
		base = strings.TrimSuffix(base, path.Ext(base))
	}
	return base
}

// Load adds every record to dst in order. Nothing is added when a name
// repeats, either inside records or against a language dst already has.
func Load(ctx context.Context, records []Record, dst Adder) error {
	seen := make(map[string]struct{}, len(records))
	for _, name := range dst.Languages() {
		seen[name] = struct{}{}
	}
	for _, r := range records {
		if _, ok := seen[r.Name]; ok {
			return fmt.Errorf("corpus: %w: %q", ErrDuplicateLanguage, r.Name)
		}
		seen[r.Name] = struct{}{}
	}

	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := dst.AddLanguage(ctx, r.Name, r.Phonemes); err != nil {
			return err
		}
	}
	return nil
}
