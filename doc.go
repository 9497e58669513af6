// Package phonogo tabulates and searches phoneme inventories.
//
// Phonogo classifies IPA transcription symbols by articulatory feature,
// arranges each inventory into classification tables (manner × place for
// consonants, height × backness for vowels) split by series such as
// aspirated or long, renders those tables as HTML, and keeps a
// cross-language index for phoneme and feature search.
//
// # Quick Start
//
//	ctx := context.Background()
//	pg := phonogo.New()
//
//	_ = pg.AddLanguage(ctx, "A", []string{"p", "t", "tʰ", "a"})
//	_ = pg.AddLanguage(ctx, "B", []string{"p", "i"})
//
//	pg.ExactQuery(ctx, "t")                 // [A]
//	pg.Query(ctx, "t")                      // t: [A], tʰ: [A]
//	pg.QueryMultiple(ctx, "p", "-tʰ")       // [B]
//	pg.FeaturesQuery(ctx, "plosive", "close") // [B]
//	pg.FeatureRating(ctx, "plosive")        // A: 3, B: 1
//
// # Tables
//
//	inv, _ := pg.Tabulate(ctx, "A", "p, t, tʰ, a, ai")
//	_ = pg.RenderHTML(os.Stdout, inv)
//
// The consonants of inv land in two tables, "plain" and "aspirated", with
// t and tʰ in the same cell of their own table. Series tables are ordered
// by the length of their label, then alphabetically.
//
// # Corpora
//
// Package corpus reads tab-separated exports and SQLite databases from any
// blobstore backend. LoadCorpus rejects repeated language names:
//
//	records, err := corpus.Open(ctx, blobstore.NewLocalStore("data"), "inventories.tsv.xz", corpus.DefaultLayout)
//	if err != nil {
//		return err
//	}
//	err = pg.LoadCorpus(ctx, records)
//
// # Concurrency
//
// AddLanguage takes an exclusive lock on the index; queries share it.
// Load the corpus first, then query from as many goroutines as needed.
package phonogo
