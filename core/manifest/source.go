package manifest

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"label-sync/core/reconcile"
	"label-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// FileSource reads the manifest from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the file path.
func (s *FileSource) Name() string {
	return s.path
}

// Load reads and validates the manifest file.
func (s *FileSource) Load(ctx context.Context) ([]reconcile.Label, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, reconcile.NewConfigurationError(s.path, "failed to read", err)
	}
	return Parse(s.path, data, FormatFor(s.path))
}

// StorageSource reads the manifest from an object storage bucket.
type StorageSource struct {
	client storage.Client
	bucket string
	object string
}

// NewStorageSource creates a source for bucket/object.
func NewStorageSource(client storage.Client, bucket, object string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, object: object}
}

// Name returns the object location.
func (s *StorageSource) Name() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.object)
}

// Load downloads and validates the manifest object.
func (s *StorageSource) Load(ctx context.Context) ([]reconcile.Label, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, reconcile.NewConfigurationError(s.Name(), "failed to check bucket", err)
	}
	if !exists {
		return nil, reconcile.NewConfigurationError(s.Name(), "bucket does not exist", nil)
	}

	reader, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, reconcile.NewConfigurationError(s.Name(), "failed to get object", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, reconcile.NewConfigurationError(s.Name(), "failed to read object", err)
	}
	return Parse(s.Name(), data, FormatFor(s.object))
}

// NewSource builds the source selected by cfg. Relative file paths are joined to
// workspace. client may be nil unless cfg.Source is "storage".
func NewSource(cfg Config, workspace string, client storage.Client, bucket string) (reconcile.Source, error) {
	switch cfg.Source {
	case SourceFile, "":
		path := cfg.Path
		if !filepath.IsAbs(path) && workspace != "" {
			path = filepath.Join(workspace, path)
		}
		return NewFileSource(path), nil
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("labels source %q requires a storage client", cfg.Source)
		}
		return NewStorageSource(client, bucket, cfg.Object), nil
	default:
		return nil, fmt.Errorf("unknown labels source %q", cfg.Source)
	}
}
