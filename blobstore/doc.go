// Package blobstore provides the storage abstraction used to persist tables.
//
// A BlobStore holds immutable named blobs. Implementations must be safe for
// concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local directory, atomic writes, mmap reads on unix
//   - MemoryStore: in-process map, for tests
//   - RateLimitedStore: wraps another store with a request rate limit
//   - s3.Store: Amazon S3 (and S3-compatible endpoints)
//   - minio.Store: MinIO
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error
//	    Delete(ctx, name) error
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
