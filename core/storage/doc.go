// Package storage wraps the MinIO Go client for reading site content from
// S3-compatible object storage (AWS S3 or self-hosted MinIO).
//
// Only the read side is exposed: the server never writes to storage, it
// mirrors a bucket into its static root through the sync command.
//
// # Client Interface
//
// Client abstracts the provider so the mirror can be tested against the
// testify mock in core/storage/mocks.
//
//   - BucketExists: verifies access to the source bucket.
//   - ListObjects: lists objects (prefix/recursive).
//   - GetObject: retrieves content as a stream.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
