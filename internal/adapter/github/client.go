package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"
)

// Client is a go-github-backed client for the check-run and PR-comment
// resources of a single repository. The owner/repo context is fixed at
// construction so every request composes it the same way.
type Client struct {
	gh    *github.Client
	owner string
	repo  string
	log   Logger
}

// NewClient creates a client authenticated with the given token. The
// token should be a personal access token or GITHUB_TOKEN from Actions.
func NewClient(token, owner, repo string, log Logger) *Client {
	if log == nil {
		log = nopLogger{}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)

	return &Client{
		gh:    github.NewClient(tc),
		owner: owner,
		repo:  repo,
		log:   log,
	}
}

// SetBaseURL points the client at a custom API endpoint (for testing).
func (c *Client) SetBaseURL(raw string) error {
	parsed, err := url.Parse(strings.TrimRight(raw, "/") + "/")
	if err != nil {
		return fmt.Errorf("parse base URL: %w", err)
	}
	c.gh.BaseURL = parsed
	return nil
}

// CreateCheckRun creates a completed check-run and returns its id.
// The Checks API accepts at most 50 annotations per call; the caller is
// responsible for truncating.
func (c *Client) CreateCheckRun(ctx context.Context, input CreateCheckInput) (int64, error) {
	opts := BuildCreateCheckRunOptions(input)
	c.log.Debugw("creating check run", "owner", c.owner, "repo", c.repo, "payload", opts)

	run, _, err := c.gh.Checks.CreateCheckRun(ctx, c.owner, c.repo, opts)
	if err != nil {
		return 0, fmt.Errorf("create check run: %w", err)
	}
	return run.GetID(), nil
}

// UpdateCheckRun refreshes an existing check-run's output. The Checks
// API accepts at most 50 annotations per call; the caller chunks.
func (c *Client) UpdateCheckRun(ctx context.Context, input UpdateCheckInput) error {
	opts := BuildUpdateCheckRunOptions(input)
	c.log.Debugw("updating check run", "owner", c.owner, "repo", c.repo, "check_run_id", input.CheckRunID, "payload", opts)

	_, _, err := c.gh.Checks.UpdateCheckRun(ctx, c.owner, c.repo, input.CheckRunID, opts)
	if err != nil {
		return fmt.Errorf("update check run: %w", err)
	}
	return nil
}

// FindInProgressCheckRun locates the most recent in-progress check-run
// named jobName on the head commit. The API returns the latest run
// first; an empty result yields ErrNoCheckRun rather than indexing
// blindly.
func (c *Client) FindInProgressCheckRun(ctx context.Context, jobName, headSHA string) (int64, error) {
	opts := &github.ListCheckRunsOptions{
		CheckName:   github.String(jobName),
		Status:      github.String("in_progress"),
		Filter:      github.String("latest"),
		ListOptions: github.ListOptions{PerPage: 100},
	}
	c.log.Debugw("listing check runs", "owner", c.owner, "repo", c.repo, "ref", headSHA, "payload", opts)

	result, _, err := c.gh.Checks.ListCheckRunsForRef(ctx, c.owner, c.repo, headSHA, opts)
	if err != nil {
		return 0, fmt.Errorf("list check runs for %s: %w", headSHA, err)
	}
	if result == nil || len(result.CheckRuns) == 0 {
		return 0, ErrNoCheckRun
	}
	return result.CheckRuns[0].GetID(), nil
}

// ListComments fetches every comment on the pull request, following
// pagination until exhausted.
func (c *Client) ListComments(ctx context.Context, prNumber int) ([]IssueComment, error) {
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []IssueComment
	for {
		comments, resp, err := c.gh.Issues.ListComments(ctx, c.owner, c.repo, prNumber, opts)
		if err != nil {
			return nil, fmt.Errorf("list comments: %w", err)
		}
		for _, comment := range comments {
			all = append(all, IssueComment{ID: comment.GetID(), Body: comment.GetBody()})
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return all, nil
}

// CreateComment posts a new comment on the pull request and returns its id.
func (c *Client) CreateComment(ctx context.Context, prNumber int, body string) (int64, error) {
	c.log.Debugw("creating comment", "owner", c.owner, "repo", c.repo, "pr", prNumber, "body_bytes", len(body))

	comment, _, err := c.gh.Issues.CreateComment(ctx, c.owner, c.repo, prNumber, &github.IssueComment{Body: github.String(body)})
	if err != nil {
		return 0, fmt.Errorf("create comment: %w", err)
	}
	return comment.GetID(), nil
}

// UpdateComment replaces the body of an existing comment.
func (c *Client) UpdateComment(ctx context.Context, commentID int64, body string) error {
	c.log.Debugw("updating comment", "owner", c.owner, "repo", c.repo, "comment_id", commentID, "body_bytes", len(body))

	_, _, err := c.gh.Issues.EditComment(ctx, c.owner, c.repo, commentID, &github.IssueComment{Body: github.String(body)})
	if err != nil {
		return fmt.Errorf("edit comment %d: %w", commentID, err)
	}
	return nil
}
