package reconcile

import "time"

// Label is a named classification tag on a repository.
type Label struct {
	// Name identifies the label. Identity is case-insensitive.
	Name string `json:"name" yaml:"name"`

	// Color is the hex color without a leading '#' once normalized.
	Color string `json:"color" yaml:"color"`

	// Description is optional. Nil means the manifest did not declare one,
	// which is not the same as an empty description.
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// DescriptionValue returns the description or "" when unset.
func (l Label) DescriptionValue() string {
	if l.Description == nil {
		return ""
	}
	return *l.Description
}

// OperationKind represents the type of change an Operation performs.
type OperationKind string

const (
	// OperationCreate creates a label that does not exist on the remote.
	OperationCreate OperationKind = "create"
	// OperationUpdate changes the color or description of an existing label.
	OperationUpdate OperationKind = "update"
	// OperationDelete removes a label that is not in the manifest.
	OperationDelete OperationKind = "delete"
)

// Operation is a single required change computed by Diff.
type Operation struct {
	// Kind specifies the change to perform.
	Kind OperationKind `json:"kind"`

	// Label carries the values to apply: the desired label for create and
	// update, the live label for delete.
	Label Label `json:"label"`

	// Current is the matched live label for updates. The remote update call is
	// keyed by its name. Nil for create and delete.
	Current *Label `json:"current,omitempty"`
}

// TargetName returns the name the remote call is keyed by.
func (o Operation) TargetName() string {
	if o.Kind == OperationUpdate && o.Current != nil {
		return o.Current.Name
	}
	return o.Label.Name
}

// OutcomeStatus is the result of applying one Operation.
type OutcomeStatus string

const (
	StatusCreated OutcomeStatus = "created"
	StatusUpdated OutcomeStatus = "updated"
	StatusDeleted OutcomeStatus = "deleted"
	// StatusSkipped marks a delete that was not sent because deletes are disabled.
	StatusSkipped OutcomeStatus = "skipped"
	// StatusFailed marks an operation whose remote call returned an error.
	StatusFailed OutcomeStatus = "failed"
)

// Outcome records what happened to one Operation.
type Outcome struct {
	Operation Operation     `json:"operation"`
	Status    OutcomeStatus `json:"status"`
	Error     string        `json:"error,omitempty"`
}

// Report collects the outcomes of an apply pass in operation order.
type Report struct {
	// Outcomes holds one entry per attempted or skipped operation.
	// Operations after an aborting failure are not listed.
	Outcomes []Outcome `json:"outcomes"`

	// Summary provides aggregate counts.
	Summary ReportSummary `json:"summary"`
}

// ReportSummary provides aggregate statistics for a Report.
type ReportSummary struct {
	Planned int `json:"planned"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// add records an outcome and bumps the matching counter.
func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
	switch o.Status {
	case StatusCreated:
		r.Summary.Created++
	case StatusUpdated:
		r.Summary.Updated++
	case StatusDeleted:
		r.Summary.Deleted++
	case StatusSkipped:
		r.Summary.Skipped++
	case StatusFailed:
		r.Summary.Failed++
	}
}

// Plan holds the inputs and computed operations of one reconciliation.
type Plan struct {
	// Live is the remote snapshot the plan was computed against.
	Live []Label `json:"live"`

	// Desired is the normalized manifest.
	Desired []Label `json:"desired"`

	// Operations is the ordered output of Diff.
	Operations []Operation `json:"operations"`

	// Built is when the live snapshot was taken.
	Built time.Time `json:"built"`
}

// HasChanges returns true if the plan contains any operation.
func (p *Plan) HasChanges() bool {
	return len(p.Operations) > 0
}

// ApplyOptions controls apply behavior.
type ApplyOptions struct {
	// DeleteEnabled gates delete operations. When false, deletes are reported
	// as skipped and no remote delete call is made.
	DeleteEnabled bool
}
