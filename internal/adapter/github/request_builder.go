package github

import (
	"github.com/google/go-github/v68/github"

	"github.com/bkyoung/test-reporter/internal/domain"
)

// CreateCheckInput contains all data needed to create a completed
// check-run. The owner/repo context lives on the Client and is composed
// into the request there, never merged into this struct.
type CreateCheckInput struct {
	Name        string
	HeadSHA     string
	Conclusion  domain.Conclusion
	Title       string
	Summary     string
	Annotations []domain.Annotation
}

// UpdateCheckInput contains all data needed to refresh an existing
// check-run's output. Annotations may be empty; the title and summary
// are sent either way.
type UpdateCheckInput struct {
	CheckRunID  int64
	Name        string
	Title       string
	Summary     string
	Annotations []domain.Annotation
}

// BuildCreateCheckRunOptions maps a CreateCheckInput to the wire request.
// The run is reported as already completed; GitHub derives timing itself.
func BuildCreateCheckRunOptions(in CreateCheckInput) github.CreateCheckRunOptions {
	return github.CreateCheckRunOptions{
		Name:       in.Name,
		HeadSHA:    in.HeadSHA,
		Status:     github.String("completed"),
		Conclusion: github.String(string(in.Conclusion)),
		Output:     buildCheckRunOutput(in.Title, in.Summary, in.Annotations),
	}
}

// BuildUpdateCheckRunOptions maps an UpdateCheckInput to the wire request.
// Status and conclusion are left untouched so an in-progress run stays
// in progress until its own workflow completes it.
func BuildUpdateCheckRunOptions(in UpdateCheckInput) github.UpdateCheckRunOptions {
	return github.UpdateCheckRunOptions{
		Name:   in.Name,
		Output: buildCheckRunOutput(in.Title, in.Summary, in.Annotations),
	}
}

func buildCheckRunOutput(title, summary string, annotations []domain.Annotation) *github.CheckRunOutput {
	return &github.CheckRunOutput{
		Title:       github.String(title),
		Summary:     github.String(summary),
		Annotations: BuildCheckAnnotations(annotations),
	}
}

// BuildCheckAnnotations converts domain annotations to the Checks API
// shape. Columns are only valid on single-line annotations, so they are
// dropped when the annotation spans lines. This function is pure and
// preserves input order.
func BuildCheckAnnotations(annotations []domain.Annotation) []*github.CheckRunAnnotation {
	if len(annotations) == 0 {
		return nil
	}

	out := make([]*github.CheckRunAnnotation, 0, len(annotations))
	for _, a := range annotations {
		wire := &github.CheckRunAnnotation{
			Path:            github.String(a.Path),
			StartLine:       github.Int(a.StartLine),
			EndLine:         github.Int(a.EndLine),
			AnnotationLevel: github.String(string(a.Level)),
			Title:           github.String(a.Title),
			Message:         github.String(a.Message),
		}
		if a.StartLine == a.EndLine && a.StartColumn > 0 && a.EndColumn > 0 {
			wire.StartColumn = github.Int(a.StartColumn)
			wire.EndColumn = github.Int(a.EndColumn)
		}
		out = append(out, wire)
	}
	return out
}
