package report

import (
	"context"
	"fmt"

	githubadapter "github.com/bkyoung/test-reporter/internal/adapter/github"
)

// CommentsClient is the remote PR-comment surface consumed by the
// publisher. ListComments returns every comment on the pull request,
// paging through the history internally.
type CommentsClient interface {
	ListComments(ctx context.Context, prNumber int) ([]githubadapter.IssueComment, error)
	CreateComment(ctx context.Context, prNumber int, body string) (int64, error)
	UpdateComment(ctx context.Context, commentID int64, body string) error
}

// CommentPublisher renders aggregated summary tables into a markdown
// comment on the pull request. Prior comments are located purely by the
// deterministic identifier trailing the body, so re-runs update in place
// instead of stacking duplicates.
type CommentPublisher struct {
	comments CommentsClient
	prNumber int
	log      Logger
}

// NewCommentPublisher constructs a CommentPublisher. prNumber may be
// zero when no pull-request context exists; Publish then skips with a
// warning. A nil logger is replaced with a no-op logger.
func NewCommentPublisher(comments CommentsClient, prNumber int, log Logger) *CommentPublisher {
	if log == nil {
		log = NopLogger{}
	}
	return &CommentPublisher{comments: comments, prNumber: prNumber, log: log}
}

// Publish posts or refreshes the summary comment for the given check
// names. With updateComment set, the PR's comment history is searched for
// a body ending in the computed identifier and that comment is edited in
// place; otherwise (or when no match exists) a new comment is created.
func (p *CommentPublisher) Publish(ctx context.Context, checkNames []string, updateComment bool, summary Summary) error {
	if p.prNumber <= 0 {
		p.log.Warnw("no pull request context, skipping summary comment", "checks", checkNames)
		return nil
	}

	identifier := githubadapter.BuildCommentIdentifier(checkNames)
	body := githubadapter.RenderComment(summary.Overview, summary.Details, summary.Flaky, identifier)

	if updateComment {
		comments, err := p.comments.ListComments(ctx, p.prNumber)
		if err != nil {
			return fmt.Errorf("list comments on PR #%d: %w", p.prNumber, err)
		}

		for _, c := range comments {
			if !githubadapter.IsManagedComment(c.Body, identifier) {
				continue
			}
			p.log.Infow("updating summary comment",
				"pr", p.prNumber,
				"comment_id", c.ID,
				"checks", checkNames,
			)
			if err := p.comments.UpdateComment(ctx, c.ID, body); err != nil {
				return fmt.Errorf("update comment %d on PR #%d: %w", c.ID, p.prNumber, err)
			}
			return nil
		}
	}

	p.log.Infow("creating summary comment", "pr", p.prNumber, "checks", checkNames)
	if _, err := p.comments.CreateComment(ctx, p.prNumber, body); err != nil {
		return fmt.Errorf("create comment on PR #%d: %w", p.prNumber, err)
	}
	return nil
}
