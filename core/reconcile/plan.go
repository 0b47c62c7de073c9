package reconcile

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// Spec bundles the two sides of a reconciliation.
type Spec struct {
	// Source provides the desired labels.
	Source Source

	// Remote provides the live labels and receives the mutations.
	Remote Remote
}

// BuildPlan loads the manifest, normalizes it, fetches the live labels and
// computes the operations. It does NOT execute anything; use ApplyPlan for that.
//
// A manifest failure is returned as a *ConfigurationError before the remote is
// contacted. A listing failure is returned as a *RemoteReadError.
func BuildPlan(ctx context.Context, spec *Spec) (*Plan, error) {
	desired, err := spec.Source.Load(ctx)
	if err != nil {
		var cfgErr *ConfigurationError
		if errors.As(err, &cfgErr) {
			return nil, err
		}
		return nil, NewConfigurationError(spec.Source.Name(), "failed to load", err)
	}
	desired = Normalize(desired)

	live, err := spec.Remote.List(ctx)
	if err != nil {
		return nil, &RemoteReadError{Remote: spec.Remote.Name(), Err: err}
	}

	return &Plan{
		Live:       live,
		Desired:    desired,
		Operations: Diff(live, desired),
		Built:      time.Now(),
	}, nil
}

// ApplyPlan executes the operations of a plan against the spec's remote.
func ApplyPlan(ctx context.Context, spec *Spec, plan *Plan, opts ApplyOptions, logger *zap.Logger) (*Report, error) {
	return NewApplier(spec.Remote, logger).Apply(ctx, plan.Operations, opts)
}

// ReconcileAndApply is a convenience wrapper that plans and applies in one call.
// The returned plan is nil when planning failed.
func ReconcileAndApply(ctx context.Context, spec *Spec, opts ApplyOptions, logger *zap.Logger) (*Plan, *Report, error) {
	plan, err := BuildPlan(ctx, spec)
	if err != nil {
		return nil, nil, err
	}

	report, err := ApplyPlan(ctx, spec, plan, opts, logger)
	return plan, report, err
}
