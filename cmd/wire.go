package cmd

import (
	"context"
	"fmt"

	"label-sync/core/audit"
	"label-sync/core/config"
	"label-sync/core/database"
	"label-sync/core/github"
	"label-sync/core/manifest"
	"label-sync/core/reconcile"
	"label-sync/core/storage"
	"label-sync/feature/labels"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newSource builds the manifest source selected in the configuration.
func newSource(cfg *config.Config) (reconcile.Source, error) {
	if !cfg.Labels.IsValidSource() {
		return nil, fmt.Errorf("unknown labels source %q, expected %q or %q", cfg.Labels.Source, manifest.SourceFile, manifest.SourceStorage)
	}

	var client storage.Client
	if cfg.Labels.Source == manifest.SourceStorage {
		c, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		client = c
	}

	return manifest.NewSource(cfg.Labels, cfg.GitHub.Workspace, client, cfg.Storage.Bucket)
}

// newRemote builds the GitHub remote for the configured repository.
func newRemote(cfg *config.Config, l *zap.Logger) (*github.Remote, error) {
	owner, repo, err := cfg.GitHub.OwnerRepo()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve target repository: %w", err)
	}

	client, err := github.NewClient(cfg.GitHub)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return github.NewRemote(client, owner, repo,
		github.WithRetry(github.RetryConfigFrom(cfg.GitHub)),
		github.WithLogger(l),
	), nil
}

// openJournal connects the run journal when it is enabled. It returns a nil
// store when journaling is disabled.
func openJournal(ctx context.Context, cfg *config.Config) (*audit.GormStore, *gorm.DB, error) {
	if !cfg.Database.Enabled {
		return nil, nil, nil
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	store := audit.NewStore(db)
	if err := store.Migrate(ctx); err != nil {
		closeDB(db)
		return nil, nil, err
	}
	return store, db, nil
}

func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// newLabelService wires the source, remote and optional journal into a service.
// The returned cleanup releases the database connection.
func newLabelService(ctx context.Context, cfg *config.Config, l *zap.Logger) (*labels.Service, func(), error) {
	source, err := newSource(cfg)
	if err != nil {
		return nil, nil, err
	}

	remote, err := newRemote(cfg, l)
	if err != nil {
		return nil, nil, err
	}

	// The journal is optional; a sync still runs without it.
	var store audit.Store
	gstore, db, err := openJournal(ctx, cfg)
	if err != nil {
		l.Warn("Optional run journal unavailable", zap.Error(err))
	} else if gstore != nil {
		store = gstore
		l.Info("Run journal enabled", zap.String("driver", cfg.Database.Driver))
	}

	svc := labels.NewService(source, remote, store, l, cfg.Input.Delete)
	return svc, func() { closeDB(db) }, nil
}
