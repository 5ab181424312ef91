// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so raw logs can be
// kept in AWS S3 or a self-hosted MinIO instance, and so tests can use the
// mock in core/storage/mocks.
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket checks, see EnsureBucket.
//   - PutObject: uploads a raw log.
//   - GetObject: streams a raw log back for analysis.
//   - ListObjects / RemoveObject: listing and deleting stored logs.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
