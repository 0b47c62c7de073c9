package github

import (
	"context"
	"fmt"
	"net/url"

	"label-sync/core/reconcile"

	gh "github.com/google/go-github/v66/github"
	"go.uber.org/zap"
)

// listPageSize is the largest page the labels endpoint serves.
const listPageSize = 100

// Remote implements reconcile.Remote for the labels of one repository.
type Remote struct {
	client *gh.Client
	owner  string
	repo   string
	retry  RetryConfig
	logger *zap.Logger
}

// Option configures a Remote.
type Option func(*Remote)

// WithRetry overrides the retry settings.
func WithRetry(cfg RetryConfig) Option {
	return func(r *Remote) {
		r.retry = cfg
	}
}

// WithLogger sets the logger used for retry warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Remote) {
		r.logger = logger
	}
}

// NewRemote creates a Remote for owner/repo.
func NewRemote(client *gh.Client, owner, repo string, opts ...Option) *Remote {
	r := &Remote{
		client: client,
		owner:  owner,
		repo:   repo,
		retry:  DefaultRetryConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns "owner/repo".
func (r *Remote) Name() string {
	return r.owner + "/" + r.repo
}

// List returns every label of the repository, following pagination.
func (r *Remote) List(ctx context.Context) ([]reconcile.Label, error) {
	var labels []reconcile.Label
	opts := &gh.ListOptions{PerPage: listPageSize}

	for {
		var page []*gh.Label
		var resp *gh.Response
		err := r.do(ctx, "list", func() (*gh.Response, error) {
			var err error
			page, resp, err = r.client.Issues.ListLabels(ctx, r.owner, r.repo, opts)
			return resp, err
		})
		if err != nil {
			return nil, err
		}

		for _, l := range page {
			labels = append(labels, fromGitHub(l))
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return labels, nil
}

// Create adds a new label.
func (r *Remote) Create(ctx context.Context, label reconcile.Label) error {
	return r.do(ctx, "create", func() (*gh.Response, error) {
		_, resp, err := r.client.Issues.CreateLabel(ctx, r.owner, r.repo, toGitHub(label))
		return resp, err
	})
}

// Update edits the label named currentName. The label's name is sent as well,
// so a case-only difference is corrected by the same call.
//
// go-github interpolates the name into the request path verbatim, so names are
// path-escaped here.
func (r *Remote) Update(ctx context.Context, currentName string, label reconcile.Label) error {
	return r.do(ctx, "update", func() (*gh.Response, error) {
		_, resp, err := r.client.Issues.EditLabel(ctx, r.owner, r.repo, url.PathEscape(currentName), toGitHub(label))
		return resp, err
	})
}

// Delete removes the named label.
func (r *Remote) Delete(ctx context.Context, name string) error {
	return r.do(ctx, "delete", func() (*gh.Response, error) {
		return r.client.Issues.DeleteLabel(ctx, r.owner, r.repo, url.PathEscape(name))
	})
}

// do runs call, retrying transient failures with backoff.
func (r *Remote) do(ctx context.Context, op string, call func() (*gh.Response, error)) error {
	attempt := 0
	for {
		_, err := call()
		if err == nil {
			return nil
		}

		attempt++
		if attempt > r.retry.MaxRetries || !isTransient(err) {
			return fmt.Errorf("github %s on %s: %w", op, r.Name(), err)
		}

		delay := backoffDelay(r.retry, attempt, err)
		r.logger.Warn("Transient GitHub API error, retrying",
			zap.String("operation", op),
			zap.String("repository", r.Name()),
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if err := sleep(ctx, delay); err != nil {
			return err
		}
	}
}

func fromGitHub(l *gh.Label) reconcile.Label {
	return reconcile.Label{
		Name:        l.GetName(),
		Color:       l.GetColor(),
		Description: l.Description,
	}
}

func toGitHub(l reconcile.Label) *gh.Label {
	return &gh.Label{
		Name:        gh.String(l.Name),
		Color:       gh.String(l.Color),
		Description: l.Description,
	}
}
