// Package gitlab wraps the GitLab API for issue retrieval. Dates are parsed
// at this boundary; a malformed date in an API payload surfaces as an error
// here and never reaches the scheduling engine.
package gitlab

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"time"

	gl "gitlab.com/gitlab-org/api/client-go"
)

// Issue is the slice of a GitLab issue the scheduler cares about.
type Issue struct {
	Title       string
	Description string
	CreatedAt   *time.Time
	DueDate     *time.Time
	ClosedAt    *time.Time
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	Token      string
	ProjectID  string
	SkipVerify bool   // disable TLS certificate verification
	CABundle   string // path to a CA bundle file, mutually exclusive with SkipVerify
}

// Client fetches issues from a single GitLab project.
type Client struct {
	api       *gl.Client
	projectID string
}

// New creates a Client for the configured GitLab instance.
func New(opts Options) (*Client, error) {
	clientOpts := []gl.ClientOptionFunc{gl.WithBaseURL(opts.BaseURL)}

	if opts.SkipVerify || opts.CABundle != "" {
		tlsCfg := &tls.Config{}
		if opts.SkipVerify {
			tlsCfg.InsecureSkipVerify = true
		}
		if opts.CABundle != "" {
			pem, err := os.ReadFile(opts.CABundle)
			if err != nil {
				return nil, fmt.Errorf("read CA bundle: %w", err)
			}
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(pem) {
				return nil, fmt.Errorf("no certificates found in CA bundle %s", opts.CABundle)
			}
			tlsCfg.RootCAs = pool
		}
		clientOpts = append(clientOpts, gl.WithHTTPClient(&http.Client{
			Transport: &http.Transport{TLSClientConfig: tlsCfg},
		}))
	}

	api, err := gl.NewClient(opts.Token, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create gitlab client: %w", err)
	}
	return &Client{api: api, projectID: opts.ProjectID}, nil
}

// ProjectName returns the project's display name with namespace.
func (c *Client) ProjectName(ctx context.Context) (string, error) {
	p, _, err := c.api.Projects.GetProject(c.projectID, nil, gl.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("get project %s: %w", c.projectID, err)
	}
	return p.NameWithNamespace, nil
}

// Issues lists all issues of the project across pages.
func (c *Client) Issues(ctx context.Context) ([]Issue, error) {
	opt := &gl.ListProjectIssuesOptions{
		ListOptions: gl.ListOptions{PerPage: 100, Page: 1},
	}

	var issues []Issue
	for {
		page, resp, err := c.api.Issues.ListProjectIssues(c.projectID, opt, gl.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("list issues for project %s: %w", c.projectID, err)
		}
		for _, raw := range page {
			issues = append(issues, convertIssue(raw))
		}
		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}
	return issues, nil
}

func convertIssue(raw *gl.Issue) Issue {
	is := Issue{
		Title:       raw.Title,
		Description: raw.Description,
		CreatedAt:   raw.CreatedAt,
		ClosedAt:    raw.ClosedAt,
	}
	if raw.DueDate != nil {
		due := time.Time(*raw.DueDate)
		is.DueDate = &due
	}
	return is
}
