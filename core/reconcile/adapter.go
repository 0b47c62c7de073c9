package reconcile

import "context"

// Source provides the desired label set.
// Implementations live in core/manifest (local file, object storage).
type Source interface {
	// Name describes where the manifest is read from (e.g., a file path).
	Name() string

	// Load reads and parses the manifest. Failures should be returned as
	// *ConfigurationError so callers can tell them apart from remote errors.
	Load(ctx context.Context) ([]Label, error)
}

// Remote is the repository whose labels are reconciled.
// The GitHub implementation lives in core/github; tests use an in-memory fake.
type Remote interface {
	// Name identifies the remote scope (e.g., "owner/repo").
	Name() string

	// List returns every label currently defined on the remote.
	List(ctx context.Context) ([]Label, error)

	// Create adds a new label.
	Create(ctx context.Context, label Label) error

	// Update changes the label currently named currentName to match label.
	Update(ctx context.Context, currentName string, label Label) error

	// Delete removes the named label.
	Delete(ctx context.Context, name string) error
}
