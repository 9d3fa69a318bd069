// Package cli wires the cobra command surface. All real work is
// delegated to the report service; the CLI only translates flags into a
// run request.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bkyoung/test-reporter/internal/domain"
	"github.com/bkyoung/test-reporter/internal/usecase/report"
)

// ErrVersionRequested indicates the user requested the CLI version and
// no further work should be done.
var ErrVersionRequested = errors.New("version requested")

// ReportRunner defines the dependency required to run the report command.
type ReportRunner interface {
	Run(ctx context.Context, req report.RunRequest) error
}

// ResultsLoader loads already-parsed test results from a file.
type ResultsLoader func(path string) ([]domain.TestResult, error)

// Arguments encapsulates IO writers injected from the host process.
type Arguments struct {
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Defaults carries config-derived default flag values.
type Defaults struct {
	CommitSHA        string
	JobName          string
	CheckAnnotations bool
	AnnotateOnly     bool
	UpdateCheck      bool
	AnnotateNotice   bool
	CommentEnabled   bool
	UpdateComment    bool
	DetailedSummary  bool
	FlakySummary     bool
	IncludePassed    bool
}

// Dependencies captures the collaborators for the CLI.
type Dependencies struct {
	Runner      ReportRunner
	LoadResults ResultsLoader
	Args        Arguments
	Defaults    Defaults
	Version     string
}

// NewRootCommand constructs the root Cobra command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	versionString := deps.Version
	if versionString == "" {
		versionString = "v0.0.0"
	}

	root := &cobra.Command{
		Use:   "test-reporter",
		Short: "Publish parsed test results as GitHub checks, annotations, and PR comments",
	}
	root.SilenceUsage = true
	root.SilenceErrors = true

	outWriter := deps.Args.OutWriter
	if outWriter == nil {
		outWriter = os.Stdout
	}
	errWriter := deps.Args.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	root.SetOut(outWriter)
	root.SetErr(errWriter)

	root.AddCommand(reportCommand(deps))

	var showVersion bool
	root.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version and exit")
	versionHandler := func(cmd *cobra.Command, args []string) error {
		if showVersion {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString)
			return ErrVersionRequested
		}
		return nil
	}
	root.PersistentPreRunE = versionHandler
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if err := versionHandler(cmd, args); err != nil {
			return err
		}
		return cmd.Help()
	}

	return root
}

func reportCommand(deps Dependencies) *cobra.Command {
	var resultsPath string
	var commitSHA string
	var jobName string

	var checkAnnotations bool
	var annotateOnly bool
	var updateCheck bool
	var annotateNotice bool

	var commentEnabled bool
	var updateComment bool
	var detailedSummary bool
	var flakySummary bool
	var includePassed bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report a set of parsed test results to GitHub",
		RunE: func(cmd *cobra.Command, args []string) error {
			if resultsPath == "" {
				return fmt.Errorf("--results is required")
			}
			if commitSHA == "" {
				return fmt.Errorf("no commit SHA: pass --commit or configure github.commitSha")
			}

			results, err := deps.LoadResults(resultsPath)
			if err != nil {
				return err
			}

			req := report.RunRequest{
				Results: results,
				HeadSHA: commitSHA,
				Checks: report.ReportOptions{
					CheckAnnotations: checkAnnotations,
					AnnotateOnly:     annotateOnly,
					UpdateCheck:      updateCheck,
					AnnotateNotice:   annotateNotice,
					JobName:          jobName,
				},
				Comment: report.CommentOptions{
					Enabled: commentEnabled,
					Update:  updateComment,
				},
				Aggregate: report.AggregateOptions{
					IncludePassed:   includePassed,
					DetailedSummary: detailedSummary,
					FlakySummary:    flakySummary,
				},
			}
			return deps.Runner.Run(cmd.Context(), req)
		},
	}

	cmd.Flags().StringVar(&resultsPath, "results", "", "Path to the parsed test results file (JSON)")
	cmd.Flags().StringVar(&commitSHA, "commit", deps.Defaults.CommitSHA, "Commit SHA to report against")
	cmd.Flags().StringVar(&jobName, "job-name", deps.Defaults.JobName, "Name of the in-progress check run to update")

	cmd.Flags().BoolVar(&checkAnnotations, "check-annotations", deps.Defaults.CheckAnnotations, "Attach annotations to the check run")
	cmd.Flags().BoolVar(&annotateOnly, "annotate-only", deps.Defaults.AnnotateOnly, "Emit standalone annotations without a check run")
	cmd.Flags().BoolVar(&updateCheck, "update-check", deps.Defaults.UpdateCheck, "Update an existing in-progress check run instead of creating one")
	cmd.Flags().BoolVar(&annotateNotice, "annotate-notice", deps.Defaults.AnnotateNotice, "Include notice-level annotations")

	cmd.Flags().BoolVar(&commentEnabled, "comment", deps.Defaults.CommentEnabled, "Publish a summary comment on the pull request")
	cmd.Flags().BoolVar(&updateComment, "update-comment", deps.Defaults.UpdateComment, "Update a prior summary comment instead of creating a new one")
	cmd.Flags().BoolVar(&detailedSummary, "detailed-summary", deps.Defaults.DetailedSummary, "Include the per-test detail table in the comment")
	cmd.Flags().BoolVar(&flakySummary, "flaky-summary", deps.Defaults.FlakySummary, "Include the flaky-test table in the comment")
	cmd.Flags().BoolVar(&includePassed, "include-passed", deps.Defaults.IncludePassed, "Show passed tests in the detail table")

	return cmd
}
