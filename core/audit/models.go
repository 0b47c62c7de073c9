package audit

import (
	"time"

	"label-sync/core/reconcile"

	"github.com/google/uuid"
)

// Run statuses.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Run is one journaled reconciliation.
type Run struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Repository    string    `gorm:"size:255;index" json:"repository"`
	Source        string    `gorm:"size:512" json:"source"`
	DeleteEnabled bool      `json:"delete_enabled"`
	Status        string    `gorm:"size:16" json:"status"`
	Error         string    `gorm:"type:text" json:"error,omitempty"`
	Planned       int       `json:"planned"`
	Created       int       `json:"created"`
	Updated       int       `json:"updated"`
	Deleted       int       `json:"deleted"`
	Skipped       int       `json:"skipped"`
	Failed        int       `json:"failed"`
	StartedAt     time.Time `gorm:"index" json:"started_at"`
	FinishedAt    time.Time `json:"finished_at"`

	Operations []OperationRecord `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"operations,omitempty"`
}

// TableName overrides the table name used by GORM.
func (Run) TableName() string {
	return "sync_runs"
}

// OperationRecord is the outcome of one operation within a run.
type OperationRecord struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	RunID       string  `gorm:"size:36;index" json:"-"`
	Seq         int     `json:"seq"`
	Kind        string  `gorm:"size:16" json:"kind"`
	Label       string  `gorm:"size:255" json:"label"`
	Color       string  `gorm:"size:16" json:"color"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	Status      string  `gorm:"size:16" json:"status"`
	Error       string  `gorm:"type:text" json:"error,omitempty"`
}

// TableName overrides the table name used by GORM.
func (OperationRecord) TableName() string {
	return "sync_operations"
}

// NewRun starts a run record with a fresh id.
func NewRun(repository, source string, deleteEnabled bool) *Run {
	return &Run{
		ID:            uuid.NewString(),
		Repository:    repository,
		Source:        source,
		DeleteEnabled: deleteEnabled,
		StartedAt:     time.Now().UTC(),
	}
}

// Finish fills in the outcome of the run. report may be nil when the run failed
// before anything was applied.
func (r *Run) Finish(report *reconcile.Report, err error) {
	r.FinishedAt = time.Now().UTC()
	r.Status = StatusSucceeded
	if err != nil {
		r.Status = StatusFailed
		r.Error = err.Error()
	}
	if report == nil {
		return
	}

	s := report.Summary
	r.Planned, r.Created, r.Updated, r.Deleted, r.Skipped, r.Failed =
		s.Planned, s.Created, s.Updated, s.Deleted, s.Skipped, s.Failed

	r.Operations = make([]OperationRecord, 0, len(report.Outcomes))
	for i, o := range report.Outcomes {
		r.Operations = append(r.Operations, OperationRecord{
			RunID:       r.ID,
			Seq:         i + 1,
			Kind:        string(o.Operation.Kind),
			Label:       o.Operation.TargetName(),
			Color:       o.Operation.Label.Color,
			Description: o.Operation.Label.Description,
			Status:      string(o.Status),
			Error:       o.Error,
		})
	}
}
