package github_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	githubadapter "github.com/bkyoung/test-reporter/internal/adapter/github"
	"github.com/bkyoung/test-reporter/internal/domain"
)

func TestBuildCreateCheckRunOptions(t *testing.T) {
	opts := githubadapter.BuildCreateCheckRunOptions(githubadapter.CreateCheckInput{
		Name:       "unit",
		HeadSHA:    "abc123",
		Conclusion: domain.ConclusionSuccess,
		Title:      "3 tests run, 3 passed, 0 skipped, 0 failed.",
		Summary:    "all green",
	})

	assert.Equal(t, "unit", opts.Name)
	assert.Equal(t, "abc123", opts.HeadSHA)
	assert.Equal(t, "completed", opts.GetStatus())
	assert.Equal(t, "success", opts.GetConclusion())
	require.NotNil(t, opts.Output)
	assert.Equal(t, "3 tests run, 3 passed, 0 skipped, 0 failed.", opts.Output.GetTitle())
	assert.Equal(t, "all green", opts.Output.GetSummary())
	assert.Nil(t, opts.Output.Annotations)
}

func TestBuildUpdateCheckRunOptions(t *testing.T) {
	opts := githubadapter.BuildUpdateCheckRunOptions(githubadapter.UpdateCheckInput{
		CheckRunID: 42,
		Name:       "build-and-test",
		Title:      "title",
		Summary:    "summary",
		Annotations: []domain.Annotation{
			{Path: "a.go", StartLine: 1, EndLine: 1, Level: domain.LevelFailure},
		},
	})

	assert.Equal(t, "build-and-test", opts.Name)
	assert.Nil(t, opts.Status)
	assert.Nil(t, opts.Conclusion)
	require.NotNil(t, opts.Output)
	assert.Len(t, opts.Output.Annotations, 1)
}

func TestBuildCheckAnnotations(t *testing.T) {
	t.Run("maps fields and keeps order", func(t *testing.T) {
		wire := githubadapter.BuildCheckAnnotations([]domain.Annotation{
			{Path: "a.go", Title: "TestA", Message: "first", StartLine: 1, EndLine: 1, Level: domain.LevelFailure},
			{Path: "b.go", Title: "TestB", Message: "second", StartLine: 5, EndLine: 9, Level: domain.LevelWarning},
		})

		require.Len(t, wire, 2)
		assert.Equal(t, "a.go", wire[0].GetPath())
		assert.Equal(t, "TestA", wire[0].GetTitle())
		assert.Equal(t, "failure", wire[0].GetAnnotationLevel())
		assert.Equal(t, "TestB", wire[1].GetTitle())
		assert.Equal(t, 5, wire[1].GetStartLine())
		assert.Equal(t, 9, wire[1].GetEndLine())
	})

	t.Run("columns only on single-line annotations", func(t *testing.T) {
		wire := githubadapter.BuildCheckAnnotations([]domain.Annotation{
			{Path: "a.go", StartLine: 3, EndLine: 3, StartColumn: 4, EndColumn: 12, Level: domain.LevelFailure},
			{Path: "b.go", StartLine: 3, EndLine: 7, StartColumn: 4, EndColumn: 12, Level: domain.LevelFailure},
		})

		require.Len(t, wire, 2)
		assert.Equal(t, 4, wire[0].GetStartColumn())
		assert.Equal(t, 12, wire[0].GetEndColumn())
		assert.Nil(t, wire[1].StartColumn)
		assert.Nil(t, wire[1].EndColumn)
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		assert.Nil(t, githubadapter.BuildCheckAnnotations(nil))
		assert.Nil(t, githubadapter.BuildCheckAnnotations([]domain.Annotation{}))
	})
}
