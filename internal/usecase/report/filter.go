package report

import "github.com/bkyoung/test-reporter/internal/domain"

// FilterAnnotations returns the annotations eligible for an output surface.
// Notice-level annotations (passing tests, informational entries) are dropped
// unless includeNotices is set. The function is pure and preserves input order.
//
// The same rule gates both check-run annotations (flag: annotate-notice) and
// the detailed summary table (flag: include-passed).
func FilterAnnotations(annotations []domain.Annotation, includeNotices bool) []domain.Annotation {
	if includeNotices {
		return annotations
	}

	var filtered []domain.Annotation
	for _, a := range annotations {
		if a.Level == domain.LevelNotice {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}
