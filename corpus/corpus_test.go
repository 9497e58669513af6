package corpus_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/phonogo/blobstore"
	"github.com/hupe1980/phonogo/corpus"
)

// row builds a line in the database export layout.
func row(name, consonants, vowels string) string {
	cols := make([]string, 12)
	cols[0] = "id"
	cols[1] = name
	cols[10] = consonants
	cols[11] = vowels
	return strings.Join(cols, "\t")
}

var fixture = strings.Join([]string{
	row("Name", "Consonants", "Vowels"),
	row("Alpha", "p, t\u0361s, k", "a, i"),
	row("Beta", "m, n", ""),
	"",
	row("Gamma", "", "u"),
}, "\n") + "\n"

func TestReadTSV(t *testing.T) {
	records, err := corpus.ReadTSV(strings.NewReader(fixture), corpus.DefaultLayout)
	require.NoError(t, err)

	assert.Equal(t, []corpus.Record{
		{Name: "Alpha", Phonemes: []string{"p", "ts", "k", "a", "i"}},
		{Name: "Beta", Phonemes: []string{"m", "n"}},
		{Name: "Gamma", Phonemes: []string{"u"}},
	}, records)
}

func TestReadTSV_CustomLayout(t *testing.T) {
	in := "Zulu\tb, d\ng\nXhosa\tk\n"
	records, err := corpus.ReadTSV(strings.NewReader(in), corpus.Layout{NameColumn: 0, InventoryColumns: []int{1}})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Zulu", records[0].Name)
	assert.Equal(t, []string{"b", "d"}, records[0].Phonemes)
	assert.Equal(t, "g", records[1].Name)
	assert.Empty(t, records[1].Phonemes)
}

func TestReadTSV_Malformed(t *testing.T) {
	_, err := corpus.ReadTSV(strings.NewReader("x\t \ty\n"), corpus.Layout{NameColumn: 1})
	require.ErrorIs(t, err, corpus.ErrMalformedRow)
	assert.Contains(t, err.Error(), "line 1")

	_, err = corpus.ReadTSV(strings.NewReader("only\n"), corpus.Layout{NameColumn: 3})
	require.ErrorIs(t, err, corpus.ErrMalformedRow)
}

func TestCompressionFor(t *testing.T) {
	tests := map[string]corpus.Compression{
		"inv.tsv":       corpus.CompressionNone,
		"inv.tsv.zst":   corpus.CompressionZSTD,
		"inv.tsv.ZSTD":  corpus.CompressionZSTD,
		"a/b/inv.lz4":   corpus.CompressionLZ4,
		"inv.tsv.xz":    corpus.CompressionXZ,
		"inv.tsv.gzip2": corpus.CompressionNone,
	}
	for name, want := range tests {
		assert.Equal(t, want, corpus.CompressionFor(name), name)
	}
	assert.Equal(t, "lz4", corpus.CompressionLZ4.String())
}

func TestOpen_Compressed(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	for _, name := range []string{"inv.tsv", "inv.tsv.zst", "inv.tsv.lz4", "inv.tsv.xz"} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, corpus.Put(ctx, store, name, []byte(fixture)))

			records, err := corpus.Open(ctx, store, name, corpus.DefaultLayout)
			require.NoError(t, err)
			require.Len(t, records, 3)
			assert.Equal(t, "Alpha", records[0].Name)
			assert.Equal(t, []string{"p", "ts", "k", "a", "i"}, records[0].Phonemes)
		})
	}
}

func TestOpen_CompressedDiffersFromPlain(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, corpus.Put(ctx, store, "inv.tsv.zst", []byte(fixture)))

	blob, err := store.Open(ctx, "inv.tsv.zst")
	require.NoError(t, err)
	defer blob.Close()
	assert.NotEqual(t, int64(len(fixture)), blob.Size())
}

func TestOpen_NotFound(t *testing.T) {
	_, err := corpus.Open(context.Background(), blobstore.NewMemoryStore(), "missing.tsv", corpus.DefaultLayout)
	require.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestOpen_CorruptStream(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "inv.tsv.xz", []byte("not xz at all")))

	_, err := corpus.Open(ctx, store, "inv.tsv.xz", corpus.DefaultLayout)
	require.Error(t, err)
}

func TestBase(t *testing.T) {
	assert.Equal(t, "inv.tsv", corpus.Base("data/inv.tsv.zst"))
	assert.Equal(t, "inv.tsv", corpus.Base("inv.tsv"))
}

func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := corpus.OpenSQLite(filepath.Join(t.TempDir(), "corpus.sqlite"))
	require.NoError(t, err)
	defer db.Close()

	in := []corpus.Record{
		{Name: "Alpha", Phonemes: []string{"p", "t", "a"}},
		{Name: "Beta", Phonemes: []string{"m"}},
	}
	require.NoError(t, corpus.SaveSQLite(ctx, db, in))

	out, err := corpus.ReadSQLite(ctx, db, "")
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// Replacing a language keeps a single row.
	require.NoError(t, corpus.SaveSQLite(ctx, db, []corpus.Record{{Name: "Beta", Phonemes: []string{"n"}}}))
	out, err = corpus.ReadSQLite(ctx, db, "SELECT name, phonemes FROM inventories WHERE name = 'Beta'")
	require.NoError(t, err)
	assert.Equal(t, []corpus.Record{{Name: "Beta", Phonemes: []string{"n"}}}, out)
}

func TestSQLite_BadQuery(t *testing.T) {
	db, err := corpus.OpenSQLite(filepath.Join(t.TempDir(), "corpus.sqlite"))
	require.NoError(t, err)
	defer db.Close()

	_, err = corpus.ReadSQLite(context.Background(), db, "SELECT nope FROM nowhere")
	require.Error(t, err)
}

type recorder struct {
	names []string
	fail  string
}

func (r *recorder) AddLanguage(_ context.Context, name string, _ []string) error {
	if name == r.fail {
		return errors.New("boom")
	}
	r.names = append(r.names, name)
	return nil
}

func (r *recorder) Languages() []string { return r.names }

func TestLoad(t *testing.T) {
	ctx := context.Background()
	dst := &recorder{}

	require.NoError(t, corpus.Load(ctx, []corpus.Record{{Name: "A"}, {Name: "B"}}, dst))
	assert.Equal(t, []string{"A", "B"}, dst.names)

	err := corpus.Load(ctx, []corpus.Record{{Name: "C"}, {Name: "A"}}, dst)
	require.ErrorIs(t, err, corpus.ErrDuplicateLanguage)
	assert.Equal(t, []string{"A", "B"}, dst.names, "nothing is added on a duplicate")

	err = corpus.Load(ctx, []corpus.Record{{Name: "D"}, {Name: "D"}}, dst)
	require.ErrorIs(t, err, corpus.ErrDuplicateLanguage)
}

func TestLoad_StopsOnError(t *testing.T) {
	dst := &recorder{fail: "B"}
	err := corpus.Load(context.Background(), []corpus.Record{{Name: "A"}, {Name: "B"}, {Name: "C"}}, dst)
	require.EqualError(t, err, "boom")
	assert.Equal(t, []string{"A"}, dst.names)
}

func TestLoad_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dst := &recorder{}
	err := corpus.Load(ctx, []corpus.Record{{Name: "A"}}, dst)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, dst.names)
}
