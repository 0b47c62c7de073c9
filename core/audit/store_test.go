package audit

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"label-sync/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates a migrated in-memory SQLite journal.
func setupTestDB(t *testing.T, dbName string) *GormStore {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	store := NewStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

// setupMockDB creates a mock GORM DB for testing error paths.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func sampleReport() *reconcile.Report {
	desc := "Something isn't working"
	report := &reconcile.Report{}
	report.Summary = reconcile.ReportSummary{Planned: 3, Created: 1, Updated: 1, Skipped: 1}
	report.Outcomes = []reconcile.Outcome{
		{
			Operation: reconcile.Operation{Kind: reconcile.OperationDelete, Label: reconcile.Label{Name: "wontfix", Color: "ffffff"}},
			Status:    reconcile.StatusSkipped,
		},
		{
			Operation: reconcile.Operation{
				Kind:    reconcile.OperationUpdate,
				Label:   reconcile.Label{Name: "bug", Color: "ff0000", Description: &desc},
				Current: &reconcile.Label{Name: "Bug", Color: "d73a4a"},
			},
			Status: reconcile.StatusUpdated,
		},
		{
			Operation: reconcile.Operation{Kind: reconcile.OperationCreate, Label: reconcile.Label{Name: "feature", Color: "a2eeef"}},
			Status:    reconcile.StatusCreated,
		},
	}
	return report
}

func TestRun_Finish(t *testing.T) {
	t.Run("Succeeded", func(t *testing.T) {
		run := NewRun("octo/repo", ".github/labels.json", false)
		run.Finish(sampleReport(), nil)

		assert.Len(t, run.ID, 36)
		assert.Equal(t, StatusSucceeded, run.Status)
		assert.Equal(t, 3, run.Planned)
		assert.Equal(t, 1, run.Skipped)
		require.Len(t, run.Operations, 3)
		assert.Equal(t, "Bug", run.Operations[1].Label, "updates are journaled under the live name")
		assert.Equal(t, 2, run.Operations[1].Seq)
		assert.Equal(t, "skipped", run.Operations[0].Status)
		assert.False(t, run.FinishedAt.Before(run.StartedAt))
	})

	t.Run("FailedBeforeApply", func(t *testing.T) {
		run := NewRun("octo/repo", ".github/labels.json", true)
		run.Finish(nil, errors.New("invalid label manifest"))

		assert.Equal(t, StatusFailed, run.Status)
		assert.Equal(t, "invalid label manifest", run.Error)
		assert.Empty(t, run.Operations)
	})
}

func TestGormStore_RecordAndRecent(t *testing.T) {
	store := setupTestDB(t, "journal_roundtrip")
	ctx := context.Background()

	older := NewRun("octo/repo", "labels.json", false)
	older.StartedAt = time.Now().Add(-time.Hour).UTC()
	older.Finish(sampleReport(), nil)
	require.NoError(t, store.Record(ctx, older))

	newer := NewRun("octo/repo", "labels.json", true)
	newer.Finish(nil, errors.New("failed to list labels"))
	require.NoError(t, store.Record(ctx, newer))

	other := NewRun("octo/other", "labels.json", true)
	other.Finish(nil, nil)
	require.NoError(t, store.Record(ctx, other))

	runs, err := store.Recent(ctx, "octo/repo", 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.ID, runs[0].ID, "newest first")
	assert.Equal(t, StatusFailed, runs[0].Status)
	assert.Equal(t, older.ID, runs[1].ID)

	require.Len(t, runs[1].Operations, 3)
	assert.Equal(t, []string{"wontfix", "Bug", "feature"}, []string{
		runs[1].Operations[0].Label, runs[1].Operations[1].Label, runs[1].Operations[2].Label,
	})
	require.NotNil(t, runs[1].Operations[1].Description)
	assert.Equal(t, "Something isn't working", *runs[1].Operations[1].Description)

	all, err := store.Recent(ctx, "", 2)
	require.NoError(t, err)
	assert.Len(t, all, 2, "limit applies")
}

func TestGormStore_RecordError(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	sqlMock.ExpectBegin()
	sqlMock.ExpectExec("INSERT INTO `sync_runs`").WillReturnError(errors.New("connection reset"))
	sqlMock.ExpectRollback()

	run := NewRun("octo/repo", "labels.json", false)
	run.Finish(nil, nil)
	err := store.Record(context.Background(), run)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Contains(t, err.Error(), run.ID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestGormStore_RecentError(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewStore(db)

	sqlMock.ExpectQuery("SELECT \\* FROM `sync_runs`").WillReturnError(errors.New("table missing"))

	_, err := store.Recent(context.Background(), "octo/repo", 5)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "table missing")
}
