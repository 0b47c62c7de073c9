// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so label manifests can be kept in a bucket
// instead of the repository checkout. This supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "labels")
package storage
