package domain

import (
	"fmt"
	"strings"
)

// AnnotationLevel is the severity attached to a single reportable test case.
type AnnotationLevel string

const (
	// LevelNotice marks informational entries (typically passing tests).
	LevelNotice AnnotationLevel = "notice"

	// LevelWarning marks entries that deserve attention but do not fail the run.
	LevelWarning AnnotationLevel = "warning"

	// LevelFailure marks failing test cases.
	LevelFailure AnnotationLevel = "failure"
)

// CaseStatus is the final outcome of a test case after all retries.
type CaseStatus string

const (
	// StatusSuccess means the case passed.
	StatusSuccess CaseStatus = "success"

	// StatusSkipped means the case was skipped.
	StatusSkipped CaseStatus = "skipped"

	// StatusFailure means the case failed. Any status that is neither
	// success nor skipped is treated as failure-like by consumers.
	StatusFailure CaseStatus = "failure"
)

// Conclusion is the overall check-run outcome derived from a TestResult.
type Conclusion string

const (
	// ConclusionSuccess is reported when no test failed.
	ConclusionSuccess Conclusion = "success"

	// ConclusionFailure is reported when at least one test failed.
	ConclusionFailure Conclusion = "failure"
)

// Annotation is one reportable test case or issue with a source location.
// Line and column numbers are 1-based.
type Annotation struct {
	Path        string          `json:"path"`
	Title       string          `json:"title"`
	Message     string          `json:"message"`
	StartLine   int             `json:"start_line"`
	EndLine     int             `json:"end_line"`
	StartColumn int             `json:"start_column"`
	EndColumn   int             `json:"end_column"`
	Level       AnnotationLevel `json:"annotation_level"`
	Status      CaseStatus      `json:"status"`
	Retries     int             `json:"retries"`
}

// FirstLine returns the first line of the annotation message.
// Messages can be multi-line (stack traces); logs only want the headline.
func (a Annotation) FirstLine() string {
	if idx := strings.IndexByte(a.Message, '\n'); idx >= 0 {
		return a.Message[:idx]
	}
	return a.Message
}

// Flaky reports whether the case needed one or more retries before
// reaching its final status.
func (a Annotation) Flaky() bool {
	return a.Retries > 0
}

// StatusLabel returns the three-way label used in detail tables:
// "pass" for successful cases, "skipped" for skipped ones, and the
// annotation level for everything else.
func (a Annotation) StatusLabel() string {
	switch a.Status {
	case StatusSuccess:
		return "pass"
	case StatusSkipped:
		return "skipped"
	default:
		return string(a.Level)
	}
}

// TestResult holds the parsed outcome of one logical test suite or job.
// TotalCount covers passed, failed, and unclassified tests; Skipped is
// tracked separately, so a run of only skipped tests has TotalCount 0.
type TestResult struct {
	CheckName   string       `json:"checkName"`
	TotalCount  int          `json:"totalCount"`
	Passed      int          `json:"passed"`
	Skipped     int          `json:"skipped"`
	Failed      int          `json:"failed"`
	Summary     string       `json:"summary"`
	Annotations []Annotation `json:"annotations"`
}

// Conclusion derives the overall pass/fail outcome. Only Failed counts:
// skipped tests and empty runs never fail a check.
func (r TestResult) Conclusion() Conclusion {
	if r.Failed > 0 {
		return ConclusionFailure
	}
	return ConclusionSuccess
}

// Title renders the human-readable check-run title.
func (r TestResult) Title() string {
	if r.TotalCount == 0 && r.Skipped == 0 {
		return "No test results found!"
	}
	return fmt.Sprintf("%d tests run, %d passed, %d skipped, %d failed.",
		r.TotalCount, r.Passed, r.Skipped, r.Failed)
}

// CheckNames returns the check names of the given results in input order.
func CheckNames(results []TestResult) []string {
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.CheckName)
	}
	return names
}

// Table is a presentation table: a header row followed by data rows.
// Rendering (markdown, console) is an adapter concern.
type Table [][]string

// HasData reports whether the table contains at least one row beyond
// the header.
func (t Table) HasData() bool {
	return len(t) > 1
}
