// Package labels exposes repository label synchronization as a service.
//
// # Service
//
// Service ties a manifest source and a GitHub remote together. Sync plans and
// applies the changes, journals the run when a database is configured, and
// collapses concurrent requests for the same repository into one run.
//
// # Endpoints
//
//   - POST /labels/sync: run a synchronization and return its report.
//   - GET /labels/runs: list recent journaled runs.
package labels
