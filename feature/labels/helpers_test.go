package labels_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"label-sync/core/audit"
	"label-sync/core/database"
	"label-sync/core/reconcile"

	"github.com/stretchr/testify/require"
)

// fakeRemote is an in-memory label remote. Names match case-insensitively.
type fakeRemote struct {
	mu      sync.Mutex
	labels  []reconcile.Label
	lists   int
	listErr error
	failOn  map[string]error
	block   chan struct{}
	started chan struct{}
}

func newFakeRemote(labels ...reconcile.Label) *fakeRemote {
	return &fakeRemote{labels: labels, failOn: map[string]error{}}
}

func (r *fakeRemote) Name() string { return "octo/repo" }

func (r *fakeRemote) List(ctx context.Context) ([]reconcile.Label, error) {
	r.mu.Lock()
	r.lists++
	started, block := r.started, r.block
	r.started = nil
	r.mu.Unlock()

	if started != nil {
		close(started)
		<-block
	}
	if r.listErr != nil {
		return nil, r.listErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]reconcile.Label(nil), r.labels...), nil
}

func (r *fakeRemote) index(name string) int {
	for i, l := range r.labels {
		if strings.EqualFold(l.Name, name) {
			return i
		}
	}
	return -1
}

func (r *fakeRemote) Create(ctx context.Context, label reconcile.Label) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failOn[label.Name]; err != nil {
		return err
	}
	r.labels = append(r.labels, label)
	return nil
}

func (r *fakeRemote) Update(ctx context.Context, currentName string, label reconcile.Label) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failOn[label.Name]; err != nil {
		return err
	}
	i := r.index(currentName)
	if i < 0 {
		return fmt.Errorf("label %q not found", currentName)
	}
	r.labels[i] = label
	return nil
}

func (r *fakeRemote) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.failOn[name]; err != nil {
		return err
	}
	i := r.index(name)
	if i < 0 {
		return errors.New("not found")
	}
	r.labels = append(r.labels[:i], r.labels[i+1:]...)
	return nil
}

func (r *fakeRemote) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.labels))
	for _, l := range r.labels {
		out = append(out, l.Name)
	}
	return out
}

type staticSource struct {
	labels []reconcile.Label
	err    error
}

func (s staticSource) Name() string { return "static" }

func (s staticSource) Load(ctx context.Context) ([]reconcile.Label, error) {
	return s.labels, s.err
}

// setupStore creates a migrated in-memory journal.
func setupStore(t *testing.T) *audit.GormStore {
	t.Helper()
	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
	})
	require.NoError(t, err)

	store := audit.NewStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func strPtr(s string) *string { return &s }
