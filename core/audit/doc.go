// Package audit journals reconciliation runs.
//
// Each run is stored with its repository, manifest source, delete gate, final
// status and one row per operation outcome, in the order the operations were
// applied. The journal is what GET /labels/runs and the history command read.
package audit
