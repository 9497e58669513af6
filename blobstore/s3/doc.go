// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("corpora/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	records, err := corpus.Open(ctx, store, "inventories.tsv.zst", corpus.DefaultLayout)
//
// # Features
//
//   - Whole-object downloads through the transfer manager
//   - Multipart uploads for large corpora
//   - Automatic pagination for listing
//   - Custom endpoints for S3-compatible services
package s3
