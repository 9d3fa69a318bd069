// Package actions emits line-level diagnostics for annotate-only mode.
//
// Inside a CI job the diagnostics are GitHub Actions workflow commands,
// which the runner turns into file annotations without any check-run.
// On an interactive terminal they are printed human-readably instead.
package actions

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bkyoung/test-reporter/internal/domain"
)

// Annotator writes one diagnostic per annotation. It is not subject to
// the Checks API batch limit since no check-run is involved.
type Annotator struct {
	out         io.Writer
	interactive bool
	caser       cases.Caser
}

// NewAnnotator constructs an annotator writing to out. interactive
// selects human-readable output over workflow commands.
func NewAnnotator(out io.Writer, interactive bool) *Annotator {
	return &Annotator{
		out:         out,
		interactive: interactive,
		caser:       cases.Title(language.English),
	}
}

// IsOutputTerminal reports whether stdout is a terminal, i.e. a human is
// watching rather than a CI log collector.
func IsOutputTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Annotate emits a single diagnostic at a severity derived from the
// annotation level: failure maps to error, warning to warning, notice to
// notice. Gating of notice-level entries happens upstream.
func (a *Annotator) Annotate(ann domain.Annotation) {
	if a.interactive {
		fmt.Fprintf(a.out, "%s: %s (%s:%d): %s\n",
			a.caser.String(string(ann.Level)), ann.Title, ann.Path, ann.StartLine, ann.FirstLine())
		return
	}

	fmt.Fprintf(a.out, "::%s file=%s,line=%d,endLine=%d,col=%d,endColumn=%d,title=%s::%s\n",
		commandFor(ann.Level),
		escapeProperty(ann.Path),
		ann.StartLine,
		ann.EndLine,
		ann.StartColumn,
		ann.EndColumn,
		escapeProperty(ann.Title),
		escapeData(ann.Message),
	)
}

func commandFor(level domain.AnnotationLevel) string {
	switch level {
	case domain.LevelFailure:
		return "error"
	case domain.LevelWarning:
		return "warning"
	default:
		return "notice"
	}
}

// escapeData escapes a workflow command's message payload.
// See https://docs.github.com/en/actions/reference/workflow-commands-for-github-actions
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	s = strings.ReplaceAll(s, "\n", "%0A")
	return s
}

// escapeProperty escapes a workflow command property value, which
// additionally cannot contain separators.
func escapeProperty(s string) string {
	s = escapeData(s)
	s = strings.ReplaceAll(s, ":", "%3A")
	s = strings.ReplaceAll(s, ",", "%2C")
	return s
}
