package reconcile

import (
	"context"
	"fmt"
	"strings"

	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string {
	return &s
}

// mockRemote is a testify mock of Remote.
type mockRemote struct {
	mock.Mock
}

func (m *mockRemote) Name() string {
	return "mock/repo"
}

func (m *mockRemote) List(ctx context.Context) ([]Label, error) {
	args := m.Called(ctx)
	if labels, ok := args.Get(0).([]Label); ok {
		return labels, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRemote) Create(ctx context.Context, label Label) error {
	return m.Called(ctx, label).Error(0)
}

func (m *mockRemote) Update(ctx context.Context, currentName string, label Label) error {
	return m.Called(ctx, currentName, label).Error(0)
}

func (m *mockRemote) Delete(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

// memRemote is an in-memory Remote that behaves like the GitHub label API:
// lookups by name are case-insensitive.
type memRemote struct {
	labels []Label
	calls  map[OperationKind]int
	failOn map[string]error
}

func newMemRemote(labels ...Label) *memRemote {
	return &memRemote{
		labels: append([]Label(nil), labels...),
		calls:  make(map[OperationKind]int),
		failOn: make(map[string]error),
	}
}

func (r *memRemote) Name() string {
	return "mem/repo"
}

func (r *memRemote) List(ctx context.Context) ([]Label, error) {
	return append([]Label(nil), r.labels...), nil
}

func (r *memRemote) find(name string) int {
	for i, l := range r.labels {
		if strings.EqualFold(l.Name, name) {
			return i
		}
	}
	return -1
}

func (r *memRemote) Create(ctx context.Context, label Label) error {
	r.calls[OperationCreate]++
	if err := r.failOn[label.Name]; err != nil {
		return err
	}
	if r.find(label.Name) >= 0 {
		return fmt.Errorf("label %s already exists", label.Name)
	}
	if label.Description == nil {
		label.Description = strPtr("")
	}
	r.labels = append(r.labels, label)
	return nil
}

func (r *memRemote) Update(ctx context.Context, currentName string, label Label) error {
	r.calls[OperationUpdate]++
	if err := r.failOn[currentName]; err != nil {
		return err
	}
	i := r.find(currentName)
	if i < 0 {
		return fmt.Errorf("label %s not found", currentName)
	}
	updated := r.labels[i]
	updated.Name = label.Name
	updated.Color = label.Color
	if label.Description != nil {
		updated.Description = label.Description
	}
	r.labels[i] = updated
	return nil
}

func (r *memRemote) Delete(ctx context.Context, name string) error {
	r.calls[OperationDelete]++
	if err := r.failOn[name]; err != nil {
		return err
	}
	i := r.find(name)
	if i < 0 {
		return fmt.Errorf("label %s not found", name)
	}
	r.labels = append(r.labels[:i], r.labels[i+1:]...)
	return nil
}

// staticSource is a Source returning fixed labels or a fixed error.
type staticSource struct {
	labels []Label
	err    error
}

func (s *staticSource) Name() string {
	return "static"
}

func (s *staticSource) Load(ctx context.Context) ([]Label, error) {
	return s.labels, s.err
}
