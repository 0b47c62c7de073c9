package github

import (
	"context"
	"errors"
	"math"
	"net"
	"net/http"
	"time"

	gh "github.com/google/go-github/v66/github"
)

// RetryConfig bounds retries of transient API failures.
type RetryConfig struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// DefaultRetryConfig returns the retry settings used when none are configured.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:   3,
		InitialDelay: 500 * time.Millisecond,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}
}

// RetryConfigFrom derives retry settings from Config.
func RetryConfigFrom(cfg Config) RetryConfig {
	rc := DefaultRetryConfig()
	if cfg.MaxRetries >= 0 {
		rc.MaxRetries = cfg.MaxRetries
	}
	if cfg.RetryDelayMs > 0 {
		rc.InitialDelay = time.Duration(cfg.RetryDelayMs) * time.Millisecond
	}
	return rc
}

// isTransient reports whether err is worth retrying. Rate limits, server errors
// and transport failures are; validation, conflict and not-found responses are not.
func isTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return true
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return true
	}
	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) {
		return respErr.Response != nil && respErr.Response.StatusCode >= http.StatusInternalServerError
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// backoffDelay returns the wait before retry attempt N (1-based).
// Server-provided hints win over the exponential schedule.
func backoffDelay(cfg RetryConfig, attempt int, err error) time.Duration {
	var delay time.Duration

	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	switch {
	case errors.As(err, &abuseErr) && abuseErr.RetryAfter != nil:
		delay = *abuseErr.RetryAfter
	case errors.As(err, &rateErr) && time.Until(rateErr.Rate.Reset.Time) > 0:
		delay = time.Until(rateErr.Rate.Reset.Time)
	default:
		mult := cfg.Multiplier
		if mult < 1.0 {
			mult = 1.0
		}
		delay = time.Duration(float64(cfg.InitialDelay) * math.Pow(mult, float64(attempt-1)))
	}

	if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}
	return delay
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
