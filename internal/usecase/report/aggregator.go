package report

import (
	"fmt"

	"github.com/bkyoung/test-reporter/internal/domain"
)

// AggregateOptions controls which summary tables are built.
type AggregateOptions struct {
	// IncludePassed lets notice-level (passing) annotations appear in the
	// detail table.
	IncludePassed bool

	// DetailedSummary enables the per-test detail table. The flaky table
	// is collected during the detail pass, so it requires this too.
	DetailedSummary bool

	// FlakySummary enables the flaky-test table.
	FlakySummary bool
}

// Summary holds the three presentation tables built from a set of results.
type Summary struct {
	// Overview has one row per test result with its counts. Always built.
	Overview domain.Table

	// Details has one row per eligible annotation. Empty unless
	// DetailedSummary was requested.
	Details domain.Table

	// Flaky has one row per annotation that needed retries. Empty unless
	// both DetailedSummary and FlakySummary were requested.
	Flaky domain.Table
}

// noAnnotationsHint is appended to the detail placeholder when passing
// entries were filtered out and enabling include-passed would reveal them.
const noAnnotationsHint = " Enable the include-passed option to list passed tests."

// Aggregate folds test results into the overview, detail, and flaky tables.
//
// The overview is always produced. The detail table is produced only when
// DetailedSummary is set; a result with no eligible annotations gets a single
// placeholder row. Flaky rows are collected while walking the detail table's
// annotations, so a disabled detail pass always yields an empty flaky table.
func Aggregate(results []domain.TestResult, opts AggregateOptions) Summary {
	summary := Summary{
		Overview: domain.Table{{"", "Tests", "Passed", "Skipped", "Failed"}},
	}

	for _, r := range results {
		summary.Overview = append(summary.Overview, []string{
			r.CheckName,
			fmt.Sprintf("%d ran", r.TotalCount),
			fmt.Sprintf("%d passed", r.Passed),
			fmt.Sprintf("%d skipped", r.Skipped),
			fmt.Sprintf("%d failed", r.Failed),
		})
	}

	if !opts.DetailedSummary {
		return summary
	}

	summary.Details = domain.Table{{"Check", "Test", "Result"}}
	if opts.FlakySummary {
		summary.Flaky = domain.Table{{"Check", "Test", "Retries"}}
	}

	for _, r := range results {
		eligible := FilterAnnotations(r.Annotations, opts.IncludePassed)
		if len(eligible) == 0 {
			placeholder := "No test annotations available."
			if !opts.IncludePassed {
				placeholder += noAnnotationsHint
			}
			summary.Details = append(summary.Details, []string{r.CheckName, placeholder, ""})
			continue
		}

		for _, a := range eligible {
			summary.Details = append(summary.Details, []string{r.CheckName, a.Title, a.StatusLabel()})

			if opts.FlakySummary && a.Flaky() {
				summary.Flaky = append(summary.Flaky, []string{
					r.CheckName, a.Title, fmt.Sprintf("%d", a.Retries),
				})
			}
		}
	}

	return summary
}
