package actions_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bkyoung/test-reporter/internal/adapter/actions"
	"github.com/bkyoung/test-reporter/internal/domain"
)

func TestAnnotator_WorkflowCommands(t *testing.T) {
	testCases := []struct {
		name       string
		annotation domain.Annotation
		want       string
	}{
		{
			name: "failure maps to error",
			annotation: domain.Annotation{
				Path:      "pkg/a_test.go",
				Title:     "TestBroken",
				Message:   "assertion failed",
				StartLine: 3,
				EndLine:   3,
				Level:     domain.LevelFailure,
			},
			want: "::error file=pkg/a_test.go,line=3,endLine=3,col=0,endColumn=0,title=TestBroken::assertion failed\n",
		},
		{
			name: "warning level",
			annotation: domain.Annotation{
				Path:      "pkg/b_test.go",
				Title:     "TestFlappy",
				Message:   "passed on retry",
				StartLine: 7,
				EndLine:   9,
				Level:     domain.LevelWarning,
			},
			want: "::warning file=pkg/b_test.go,line=7,endLine=9,col=0,endColumn=0,title=TestFlappy::passed on retry\n",
		},
		{
			name: "notice level",
			annotation: domain.Annotation{
				Path:      "pkg/c_test.go",
				Title:     "TestFine",
				Message:   "ok",
				StartLine: 1,
				EndLine:   1,
				Level:     domain.LevelNotice,
			},
			want: "::notice file=pkg/c_test.go,line=1,endLine=1,col=0,endColumn=0,title=TestFine::ok\n",
		},
		{
			name: "columns included when present",
			annotation: domain.Annotation{
				Path:        "pkg/d_test.go",
				Title:       "TestExact",
				Message:     "off by one",
				StartLine:   4,
				EndLine:     4,
				StartColumn: 2,
				EndColumn:   10,
				Level:       domain.LevelFailure,
			},
			want: "::error file=pkg/d_test.go,line=4,endLine=4,col=2,endColumn=10,title=TestExact::off by one\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			annotator := actions.NewAnnotator(&buf, false)

			annotator.Annotate(tc.annotation)

			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestAnnotator_EscapesWorkflowCommandData(t *testing.T) {
	var buf bytes.Buffer
	annotator := actions.NewAnnotator(&buf, false)

	annotator.Annotate(domain.Annotation{
		Path:      "pkg/a_test.go",
		Title:     "TestTable/case: 50%, worst",
		Message:   "expected: 1\r\nactual: 2\n100% wrong",
		StartLine: 3,
		EndLine:   3,
		Level:     domain.LevelFailure,
	})

	out := buf.String()
	assert.Contains(t, out, "title=TestTable/case%3A 50%25%2C worst")
	assert.Contains(t, out, "::expected: 1%0D%0Aactual: 2%0A100%25 wrong\n")
}

func TestAnnotator_InteractiveOutput(t *testing.T) {
	var buf bytes.Buffer
	annotator := actions.NewAnnotator(&buf, true)

	annotator.Annotate(domain.Annotation{
		Path:      "pkg/a_test.go",
		Title:     "TestBroken",
		Message:   "assertion failed\nstack trace follows",
		StartLine: 3,
		EndLine:   3,
		Level:     domain.LevelFailure,
	})

	assert.Equal(t, "Failure: TestBroken (pkg/a_test.go:3): assertion failed\n", buf.String())
}
