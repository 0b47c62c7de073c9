package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Applier executes operations against a Remote, one at a time and in order.
type Applier struct {
	remote Remote
	logger *zap.Logger
}

// NewApplier creates an Applier. A nil logger is replaced with a no-op logger.
func NewApplier(remote Remote, logger *zap.Logger) *Applier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Applier{remote: remote, logger: logger}
}

// Apply executes ops sequentially.
//
// Deletes are only sent when opts.DeleteEnabled is true; otherwise they are
// recorded as skipped. The first failing remote call aborts the run: the failure
// is recorded in the report, later operations are not attempted and a
// *RemoteWriteError is returned together with the partial report.
func (a *Applier) Apply(ctx context.Context, ops []Operation, opts ApplyOptions) (*Report, error) {
	report := &Report{
		Outcomes: make([]Outcome, 0, len(ops)),
	}
	report.Summary.Planned = len(ops)

	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		l := a.logger.With(
			zap.String("operation", string(op.Kind)),
			zap.String("label", op.TargetName()),
		)

		if op.Kind == OperationDelete && !opts.DeleteEnabled {
			l.Info("Skipping label deletion (deletes disabled)")
			report.add(Outcome{Operation: op, Status: StatusSkipped})
			continue
		}

		status, err := a.applyOne(ctx, op)
		if err != nil {
			l.Error("Label operation failed", zap.Error(err))
			report.add(Outcome{Operation: op, Status: StatusFailed, Error: err.Error()})
			return report, &RemoteWriteError{Operation: op, Err: err}
		}

		l.Info("Label "+string(status), zap.String("color", op.Label.Color))
		report.add(Outcome{Operation: op, Status: status})
	}

	return report, nil
}

// applyOne issues the remote call for a single operation.
func (a *Applier) applyOne(ctx context.Context, op Operation) (OutcomeStatus, error) {
	switch op.Kind {
	case OperationCreate:
		return StatusCreated, a.remote.Create(ctx, op.Label)
	case OperationUpdate:
		return StatusUpdated, a.remote.Update(ctx, op.TargetName(), op.Label)
	case OperationDelete:
		return StatusDeleted, a.remote.Delete(ctx, op.Label.Name)
	default:
		return StatusFailed, fmt.Errorf("unknown operation kind %q", op.Kind)
	}
}
