package report

import (
	"context"
	"fmt"

	githubadapter "github.com/bkyoung/test-reporter/internal/adapter/github"
	"github.com/bkyoung/test-reporter/internal/domain"
)

// MaxAnnotationsPerCall is the GitHub Checks API ceiling on annotations
// carried by a single create or update call. Annotations beyond this
// limit are chunked (update) or dropped (create); the API rejects larger
// payloads outright.
const MaxAnnotationsPerCall = 50

// ChecksClient is the remote check-run surface consumed by the reporter.
// Implementations must return githubadapter.ErrNoCheckRun (possibly
// wrapped) from FindInProgressCheckRun when nothing matches; transport
// failures are returned as-is and are fatal to the run.
type ChecksClient interface {
	CreateCheckRun(ctx context.Context, input githubadapter.CreateCheckInput) (int64, error)
	UpdateCheckRun(ctx context.Context, input githubadapter.UpdateCheckInput) error
	FindInProgressCheckRun(ctx context.Context, jobName, headSHA string) (int64, error)
}

// Annotator emits a single annotation as a standalone line-level
// diagnostic, outside of any check-run. Used by annotate-only mode.
type Annotator interface {
	Annotate(a domain.Annotation)
}

// ReportOptions enumerates the switches of a single check-run report.
type ReportOptions struct {
	// CheckAnnotations controls whether annotations are sent at all.
	CheckAnnotations bool

	// AnnotateOnly skips check-run creation entirely and emits each
	// eligible annotation as a standalone diagnostic instead.
	AnnotateOnly bool

	// UpdateCheck updates an existing in-progress check-run instead of
	// creating a completed one.
	UpdateCheck bool

	// AnnotateNotice lets notice-level annotations surface.
	AnnotateNotice bool

	// JobName identifies the in-progress check-run to update.
	JobName string
}

// CheckReporter projects test results onto the GitHub check-run resource.
type CheckReporter struct {
	checks    ChecksClient
	annotator Annotator
	log       Logger
}

// NewCheckReporter constructs a CheckReporter. A nil logger is replaced
// with a no-op logger.
func NewCheckReporter(checks ChecksClient, annotator Annotator, log Logger) *CheckReporter {
	if log == nil {
		log = NopLogger{}
	}
	return &CheckReporter{checks: checks, annotator: annotator, log: log}
}

// Report publishes one test result as a check-run (or as standalone
// diagnostics in annotate-only mode) for the given head commit.
//
// The conclusion depends only on the failed count: skipped tests and
// empty runs never fail a check. Transport errors propagate unretried;
// a missing in-progress check-run under UpdateCheck is an application
// error carrying githubadapter.ErrNoCheckRun.
func (r *CheckReporter) Report(ctx context.Context, result domain.TestResult, headSHA string, opts ReportOptions) error {
	conclusion := result.Conclusion()
	title := result.Title()
	eligible := FilterAnnotations(result.Annotations, opts.AnnotateNotice)

	r.log.Infow("reporting test result",
		"check", result.CheckName,
		"title", title,
		"conclusion", string(conclusion),
		"annotations", len(eligible),
	)

	if opts.AnnotateOnly {
		for _, a := range eligible {
			r.annotator.Annotate(a)
		}
		return nil
	}

	if opts.UpdateCheck {
		return r.updateCheckRun(ctx, result, headSHA, title, eligible, opts)
	}

	return r.createCheckRun(ctx, result, headSHA, title, conclusion, eligible, opts)
}

// updateCheckRun refreshes the most recent in-progress check-run matching
// the job name. With annotations enabled, the eligible list is split into
// consecutive chunks of at most MaxAnnotationsPerCall and one update call
// is issued per chunk, each awaited before the next so the final chunk's
// title and summary win deterministically. With annotations disabled, a
// single empty-annotation update still refreshes title and summary.
func (r *CheckReporter) updateCheckRun(ctx context.Context, result domain.TestResult, headSHA, title string, eligible []domain.Annotation, opts ReportOptions) error {
	runID, err := r.checks.FindInProgressCheckRun(ctx, opts.JobName, headSHA)
	if err != nil {
		return fmt.Errorf("find in-progress check run %q for %s: %w", opts.JobName, headSHA, err)
	}

	if !opts.CheckAnnotations {
		return r.checks.UpdateCheckRun(ctx, githubadapter.UpdateCheckInput{
			CheckRunID: runID,
			Name:       opts.JobName,
			Title:      title,
			Summary:    result.Summary,
		})
	}

	chunks := chunkAnnotations(eligible, MaxAnnotationsPerCall)
	for i, chunk := range chunks {
		r.log.Debugw("updating check run chunk",
			"check", result.CheckName,
			"run_id", runID,
			"chunk", i+1,
			"chunks", len(chunks),
			"annotations", len(chunk),
		)
		err := r.checks.UpdateCheckRun(ctx, githubadapter.UpdateCheckInput{
			CheckRunID:  runID,
			Name:        opts.JobName,
			Title:       title,
			Summary:     result.Summary,
			Annotations: chunk,
		})
		if err != nil {
			return fmt.Errorf("update check run %d: %w", runID, err)
		}
	}
	return nil
}

// createCheckRun issues a single completed check-run. Only the first
// MaxAnnotationsPerCall eligible annotations fit into a create call; the
// remainder is dropped, which is an API ceiling rather than an error.
func (r *CheckReporter) createCheckRun(ctx context.Context, result domain.TestResult, headSHA, title string, conclusion domain.Conclusion, eligible []domain.Annotation, opts ReportOptions) error {
	var annotations []domain.Annotation
	if opts.CheckAnnotations {
		annotations = eligible
		if len(annotations) > MaxAnnotationsPerCall {
			r.log.Debugw("truncating annotations to API ceiling",
				"check", result.CheckName,
				"eligible", len(eligible),
				"sent", MaxAnnotationsPerCall,
			)
			annotations = annotations[:MaxAnnotationsPerCall]
		}
	}

	_, err := r.checks.CreateCheckRun(ctx, githubadapter.CreateCheckInput{
		Name:        result.CheckName,
		HeadSHA:     headSHA,
		Conclusion:  conclusion,
		Title:       title,
		Summary:     result.Summary,
		Annotations: annotations,
	})
	if err != nil {
		return fmt.Errorf("create check run %q: %w", result.CheckName, err)
	}
	return nil
}

// chunkAnnotations splits annotations into consecutive chunks of at most
// size elements, preserving order. An empty input yields no chunks.
func chunkAnnotations(annotations []domain.Annotation, size int) [][]domain.Annotation {
	var chunks [][]domain.Annotation
	for start := 0; start < len(annotations); start += size {
		end := start + size
		if end > len(annotations) {
			end = len(annotations)
		}
		chunks = append(chunks, annotations[start:end])
	}
	return chunks
}
