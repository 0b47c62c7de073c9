package github

import (
	"fmt"
	"strings"
)

// Config holds configuration for the GitHub API.
// The keys line up with the environment GitHub Actions provides
// (GITHUB_TOKEN, GITHUB_REPOSITORY, GITHUB_API_URL, GITHUB_WORKSPACE).
type Config struct {
	// Token authenticates API calls.
	Token string `mapstructure:"token" default:""`
	// Repository is the target in "owner/repo" form.
	Repository string `mapstructure:"repository" default:""`
	// APIURL is the REST base URL. Set it for GitHub Enterprise Server.
	APIURL string `mapstructure:"api_url" default:"https://api.github.com/"`
	// Workspace is the checkout directory relative manifest paths resolve against.
	Workspace string `mapstructure:"workspace" default:"."`
	// TimeoutSeconds bounds each HTTP round trip.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxRetries is how many times a transient failure is retried.
	MaxRetries int `mapstructure:"max_retries" default:"3"`
	// RetryDelayMs is the initial backoff delay in milliseconds.
	RetryDelayMs int `mapstructure:"retry_delay_ms" default:"500"`
}

// OwnerRepo splits Repository into owner and repository name.
func (c Config) OwnerRepo() (string, string, error) {
	owner, repo, ok := strings.Cut(c.Repository, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("invalid repository %q, expected owner/repo", c.Repository)
	}
	return owner, repo, nil
}
