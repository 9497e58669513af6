// Package corpus reads phoneme inventories from tab-separated exports and
// SQLite databases and loads them into an index.
//
// Corpus files can live in any blobstore.BlobStore and may be compressed
// with zstd, LZ4 or xz; the codec follows the file extension.
//
//	store := blobstore.NewLocalStore("./data")
//	records, err := corpus.Open(ctx, store, "inventories.tsv.zst", corpus.DefaultLayout)
//	if err != nil {
//		return err
//	}
//	err = pg.LoadCorpus(ctx, records)
package corpus
