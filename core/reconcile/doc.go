// Package reconcile converges the live label set of a repository to a declared
// manifest.
//
// The package is split into three steps that run in order:
//
// 1. Normalize: strips one leading '#' from every desired color.
//
// 2. Diff: a pure function over the live and desired collections that returns
//    the ordered create/update/delete operations. Names match case-insensitively;
//    color and description are payload.
//
// 3. Apply: executes the operations one at a time against a Remote. Deletes are
//    gated by ApplyOptions.DeleteEnabled and reported as skipped when the gate is
//    off. The first failing call aborts the run.
//
// # Errors
//
// Each failure class has its own type so callers can react with errors.Is:
//   - ErrConfiguration: the manifest could not be loaded or validated
//   - ErrRemoteRead: the live listing failed, nothing was applied
//   - ErrRemoteWrite: a mutation failed, the run stopped part way
//
// # Usage Example
//
//	spec := &reconcile.Spec{
//	    Source: manifest.NewFileSource(".github/labels.json"),
//	    Remote: github.NewRemote(client, "owner", "repo"),
//	}
//
//	plan, report, err := reconcile.ReconcileAndApply(ctx, spec,
//	    reconcile.ApplyOptions{DeleteEnabled: true}, logger)
package reconcile
