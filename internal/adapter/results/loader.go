// Package results loads already-parsed test results from disk. Parsing
// raw test-report formats (JUnit XML and friends) into this shape is the
// job of an upstream collaborator; this loader only decodes and
// validates its output.
package results

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bkyoung/test-reporter/internal/domain"
)

// Load reads a JSON file containing a list of test results. Unknown
// fields are rejected so silent schema drift between the parser and this
// tool fails fast.
func Load(path string) ([]domain.TestResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open results file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var results []domain.TestResult
	if err := dec.Decode(&results); err != nil {
		return nil, fmt.Errorf("decode results file %s: %w", path, err)
	}

	for i, r := range results {
		if err := validate(r); err != nil {
			return nil, fmt.Errorf("results file %s, entry %d: %w", path, i, err)
		}
	}
	return results, nil
}

func validate(r domain.TestResult) error {
	if r.CheckName == "" {
		return fmt.Errorf("checkName must not be empty")
	}
	if r.TotalCount < 0 || r.Passed < 0 || r.Skipped < 0 || r.Failed < 0 {
		return fmt.Errorf("counts must be non-negative (check %q)", r.CheckName)
	}
	for _, a := range r.Annotations {
		if a.Retries < 0 {
			return fmt.Errorf("annotation %q: retries must be non-negative", a.Title)
		}
	}
	return nil
}
