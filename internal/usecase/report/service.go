// Package report implements the reporting engine: aggregating parsed test
// results into summary tables, projecting them onto GitHub check-runs
// within the API's annotation batch limit, and reconciling the summary
// comment on the pull request.
package report

import (
	"context"

	"github.com/bkyoung/test-reporter/internal/domain"
)

// CommentOptions controls the summary-comment output path.
type CommentOptions struct {
	// Enabled turns the comment path on.
	Enabled bool

	// Update edits a prior managed comment in place instead of always
	// creating a new one.
	Update bool
}

// RunRequest carries one full reporting invocation.
type RunRequest struct {
	Results   []domain.TestResult
	HeadSHA   string
	Checks    ReportOptions
	Comment   CommentOptions
	Aggregate AggregateOptions
}

// Service drives both output paths for a result set: each result goes to
// the check reporter independently, then the aggregated tables go to the
// comment publisher. Nothing is cached between runs; all remote state is
// rediscovered per invocation.
type Service struct {
	reporter  *CheckReporter
	publisher *CommentPublisher
	log       Logger
}

// NewService constructs the reporting service.
func NewService(reporter *CheckReporter, publisher *CommentPublisher, log Logger) *Service {
	if log == nil {
		log = NopLogger{}
	}
	return &Service{reporter: reporter, publisher: publisher, log: log}
}

// Run reports every test result and then publishes the summary comment.
// The first failing remote call aborts the run.
func (s *Service) Run(ctx context.Context, req RunRequest) error {
	for _, result := range req.Results {
		if err := s.reporter.Report(ctx, result, req.HeadSHA, req.Checks); err != nil {
			return err
		}
	}

	if !req.Comment.Enabled {
		return nil
	}

	summary := Aggregate(req.Results, req.Aggregate)
	return s.publisher.Publish(ctx, domain.CheckNames(req.Results), req.Comment.Update, summary)
}
