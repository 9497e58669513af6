// Package blobstore provides storage abstraction for corpus files.
//
// BlobStore is the interface for reading and writing the delimited and
// compressed corpus files phonogo loads its languages from.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: Local filesystem
//   - MemoryStore: In-memory, for tests
//   - s3.Store: Amazon S3 through the transfer manager
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)   // Open for reading
//	    Put(ctx, name, data) error      // Atomic write
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
