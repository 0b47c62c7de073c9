// Package github implements the label remote on top of the GitHub REST API.
//
// NewClient builds an authenticated go-github client from Config; NewRemote wraps
// it as a reconcile.Remote scoped to one repository. Listing follows pagination.
//
// Transient failures (rate limits, abuse limits, 5xx responses, transport errors)
// are retried with bounded exponential backoff. Validation, conflict and
// not-found responses are returned immediately.
package github
