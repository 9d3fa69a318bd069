package results_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bkyoung/test-reporter/internal/adapter/results"
	"github.com/bkyoung/test-reporter/internal/domain"
)

func writeResultsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeResultsFile(t, `[
		{
			"checkName": "unit",
			"totalCount": 5,
			"passed": 4,
			"skipped": 0,
			"failed": 1,
			"summary": "one regression",
			"annotations": [
				{
					"path": "pkg/a_test.go",
					"title": "TestBroken",
					"message": "assertion failed",
					"start_line": 3,
					"end_line": 3,
					"annotation_level": "failure",
					"status": "failure",
					"retries": 1
				}
			]
		},
		{"checkName": "integration", "totalCount": 2, "passed": 2}
	]`)

	loaded, err := results.Load(path)

	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "unit", loaded[0].CheckName)
	assert.Equal(t, 1, loaded[0].Failed)
	require.Len(t, loaded[0].Annotations, 1)
	assert.Equal(t, domain.LevelFailure, loaded[0].Annotations[0].Level)
	assert.Equal(t, 1, loaded[0].Annotations[0].Retries)
	assert.Empty(t, loaded[1].Annotations)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := results.Load(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open results file")
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	path := writeResultsFile(t, `[{"checkName": "unit", "totalCount": 1, "passed": 1, "bogus": true}]`)

	_, err := results.Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode results file")
}

func TestLoad_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "empty check name",
			content: `[{"checkName": "", "totalCount": 1, "passed": 1}]`,
			wantErr: "checkName must not be empty",
		},
		{
			name:    "negative count",
			content: `[{"checkName": "unit", "totalCount": -1}]`,
			wantErr: "counts must be non-negative",
		},
		{
			name:    "negative retries",
			content: `[{"checkName": "unit", "totalCount": 1, "passed": 1, "annotations": [{"title": "TestA", "retries": -2}]}]`,
			wantErr: "retries must be non-negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeResultsFile(t, tc.content)

			_, err := results.Load(path)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_EmptyList(t *testing.T) {
	path := writeResultsFile(t, `[]`)

	loaded, err := results.Load(path)

	require.NoError(t, err)
	assert.Empty(t, loaded)
}
