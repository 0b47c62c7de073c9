package reconcile

import "golang.org/x/text/cases"

// Diff computes the ordered operations that converge live to desired.
//
// Updates and deletes come first, in live order, followed by creates in desired
// order. Names are matched case-insensitively. An update is emitted when the
// colors differ or when the desired label declares a description that differs
// from the live one; an unset desired description never triggers an update.
//
// If desired contains case-insensitive duplicates, the last occurrence supplies
// the values and a single operation is emitted for the name. Manifests loaded
// through core/manifest are rejected before reaching this point.
func Diff(live, desired []Label) []Operation {
	fold := cases.Fold()

	// Index desired once by folded name; pending marks names not yet matched.
	index := make(map[string]Label, len(desired))
	pending := make(map[string]bool, len(desired))
	for _, l := range desired {
		key := fold.String(l.Name)
		index[key] = l
		pending[key] = true
	}

	ops := make([]Operation, 0, len(live)+len(desired))

	for _, current := range live {
		key := fold.String(current.Name)
		want, ok := index[key]
		if !ok {
			ops = append(ops, Operation{Kind: OperationDelete, Label: current})
			continue
		}

		if needsUpdate(current, want) {
			matched := current
			ops = append(ops, Operation{Kind: OperationUpdate, Label: want, Current: &matched})
		}
		delete(pending, key)
	}

	for _, l := range desired {
		key := fold.String(l.Name)
		if !pending[key] {
			continue
		}
		ops = append(ops, Operation{Kind: OperationCreate, Label: index[key]})
		delete(pending, key)
	}

	return ops
}

// needsUpdate reports whether the live label differs from the desired one.
func needsUpdate(current, want Label) bool {
	// Colors compare verbatim; only the leading '#' is normalized away.
	if current.Color != want.Color {
		return true
	}
	if want.Description == nil {
		return false
	}
	return current.Description == nil || *current.Description != *want.Description
}
