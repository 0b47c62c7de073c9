package audit

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Store persists and reads journaled runs.
type Store interface {
	// Record saves a finished run together with its operations.
	Record(ctx context.Context, run *Run) error
	// Recent returns the latest runs, newest first. An empty repository
	// matches every repository.
	Recent(ctx context.Context, repository string, limit int) ([]Run, error)
}

// GormStore implements Store on top of GORM.
type GormStore struct {
	db *gorm.DB
}

// NewStore creates a GORM backed store.
func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the journal tables.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Run{}, &OperationRecord{}); err != nil {
		return fmt.Errorf("failed to migrate journal tables: %w", err)
	}
	return nil
}

// Record saves a finished run together with its operations.
func (s *GormStore) Record(ctx context.Context, run *Run) error {
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record run %s: %w", run.ID, err)
	}
	return nil
}

// Recent returns the latest runs, newest first.
func (s *GormStore) Recent(ctx context.Context, repository string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := s.db.WithContext(ctx).
		Preload("Operations", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq")
		}).
		Order("started_at DESC").
		Limit(limit)
	if repository != "" {
		query = query.Where("repository = ?", repository)
	}

	var runs []Run
	if err := query.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to load runs: %w", err)
	}
	return runs, nil
}
