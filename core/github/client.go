package github

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v66/github"
)

// NewClient creates an authenticated GitHub client based on the configuration.
// The client is built once by the caller and handed to NewRemote.
func NewClient(cfg Config) (*gh.Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("github token is required")
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	httpClient := &http.Client{
		Timeout: timeoutDuration,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   timeoutDuration,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   timeoutDuration,
			ResponseHeaderTimeout: timeoutDuration,
		},
	}

	client := gh.NewClient(httpClient).WithAuthToken(cfg.Token)

	if cfg.APIURL != "" {
		base := cfg.APIURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid github api url %q: %w", cfg.APIURL, err)
		}
		client.BaseURL = u
	}

	return client, nil
}
