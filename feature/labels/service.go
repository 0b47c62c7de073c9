package labels

import (
	"context"
	"errors"

	"label-sync/core/audit"
	"label-sync/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrJournalDisabled is returned by History when no database is configured.
var ErrJournalDisabled = errors.New("run journal is disabled")

// Service runs label synchronizations for one repository.
type Service struct {
	spec          *reconcile.Spec
	store         audit.Store
	logger        *zap.Logger
	deleteEnabled bool
	group         singleflight.Group
}

// NewService creates a new label sync service. store may be nil, in which case
// runs are not journaled.
func NewService(source reconcile.Source, remote reconcile.Remote, store audit.Store, logger *zap.Logger, deleteEnabled bool) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		spec:          &reconcile.Spec{Source: source, Remote: remote},
		store:         store,
		logger:        logger,
		deleteEnabled: deleteEnabled,
	}
}

// Repository returns the name of the target repository.
func (s *Service) Repository() string {
	return s.spec.Remote.Name()
}

// DeleteEnabled reports whether the delete gate is open.
func (s *Service) DeleteEnabled() bool {
	return s.deleteEnabled
}

// Sync reconciles the repository labels with the manifest. Concurrent calls
// share a single run. The report is returned even on failure whenever apply
// started, so callers can see what was done before the abort.
func (s *Service) Sync(ctx context.Context) (*reconcile.Report, error) {
	v, err, shared := s.group.Do(s.Repository(), func() (interface{}, error) {
		return s.sync(ctx)
	})
	if shared {
		s.logger.Debug("Joined in-flight label sync", zap.String("repository", s.Repository()))
	}

	report, _ := v.(*reconcile.Report)
	return report, err
}

func (s *Service) sync(ctx context.Context) (*reconcile.Report, error) {
	l := s.logger.With(
		zap.String("repository", s.Repository()),
		zap.String("source", s.spec.Source.Name()),
	)

	if !s.deleteEnabled {
		l.Info("Will not delete any existing labels")
	}

	run := audit.NewRun(s.Repository(), s.spec.Source.Name(), s.deleteEnabled)

	plan, report, err := reconcile.ReconcileAndApply(ctx, s.spec, reconcile.ApplyOptions{
		DeleteEnabled: s.deleteEnabled,
	}, l)
	if plan != nil {
		l.Info("Label plan built",
			zap.Int("live", len(plan.Live)),
			zap.Int("desired", len(plan.Desired)),
			zap.Int("operations", len(plan.Operations)),
		)
		if !plan.HasChanges() {
			l.Info("Labels are up to date")
		}
	}

	run.Finish(report, err)
	s.journal(ctx, l, run)

	if err != nil {
		l.Error("Label sync failed", zap.Error(err))
		return report, err
	}

	l.Info("Label sync complete",
		zap.Int("created", report.Summary.Created),
		zap.Int("updated", report.Summary.Updated),
		zap.Int("deleted", report.Summary.Deleted),
		zap.Int("skipped", report.Summary.Skipped),
	)
	return report, nil
}

// journal records the run. A journal failure never fails the sync.
func (s *Service) journal(ctx context.Context, l *zap.Logger, run *audit.Run) {
	if s.store == nil {
		return
	}
	if err := s.store.Record(context.WithoutCancel(ctx), run); err != nil {
		l.Warn("Failed to journal label sync", zap.String("run_id", run.ID), zap.Error(err))
	}
}

// History returns the latest journaled runs of the repository, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]audit.Run, error) {
	if s.store == nil {
		return nil, ErrJournalDisabled
	}
	return s.store.Recent(ctx, s.Repository(), limit)
}
