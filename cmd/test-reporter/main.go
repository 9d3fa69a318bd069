package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bkyoung/test-reporter/internal/adapter/actions"
	"github.com/bkyoung/test-reporter/internal/adapter/cli"
	gitadapter "github.com/bkyoung/test-reporter/internal/adapter/git"
	githubadapter "github.com/bkyoung/test-reporter/internal/adapter/github"
	"github.com/bkyoung/test-reporter/internal/adapter/observability"
	"github.com/bkyoung/test-reporter/internal/adapter/results"
	"github.com/bkyoung/test-reporter/internal/config"
	"github.com/bkyoung/test-reporter/internal/usecase/report"
	"github.com/bkyoung/test-reporter/internal/version"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, cli.ErrVersionRequested) {
			return
		}
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(config.LoaderOptions{
		ConfigPaths: defaultConfigPaths(),
		FileName:    "test-reporter",
		EnvPrefix:   "TEST_REPORTER",
	})
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger init failed: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg.GitHub = discoverRepoContext(cfg.GitHub, cfg.Git, logger)

	if cfg.GitHub.Token == "" {
		return fmt.Errorf("no GitHub token: set TEST_REPORTER_GITHUB_TOKEN or GITHUB_TOKEN")
	}
	if cfg.GitHub.Owner == "" || cfg.GitHub.Repo == "" {
		return fmt.Errorf("no repository context: configure github.owner and github.repo or run inside a checkout with an origin remote")
	}

	client := githubadapter.NewClient(cfg.GitHub.Token, cfg.GitHub.Owner, cfg.GitHub.Repo, logger)
	annotator := actions.NewAnnotator(os.Stdout, actions.IsOutputTerminal())

	reporter := report.NewCheckReporter(client, annotator, logger)
	publisher := report.NewCommentPublisher(client, cfg.GitHub.PullNumber, logger)
	service := report.NewService(reporter, publisher, logger)

	root := cli.NewRootCommand(cli.Dependencies{
		Runner:      service,
		LoadResults: results.Load,
		Args: cli.Arguments{
			OutWriter: os.Stdout,
			ErrWriter: os.Stderr,
		},
		Defaults: cli.Defaults{
			CommitSHA:        cfg.GitHub.CommitSHA,
			JobName:          cfg.Checks.JobName,
			CheckAnnotations: cfg.Checks.Annotations,
			AnnotateOnly:     cfg.Checks.AnnotateOnly,
			UpdateCheck:      cfg.Checks.UpdateCheck,
			AnnotateNotice:   cfg.Checks.AnnotateNotice,
			CommentEnabled:   cfg.Comment.Enabled,
			UpdateComment:    cfg.Comment.Update,
			DetailedSummary:  cfg.Comment.DetailedSummary,
			FlakySummary:     cfg.Comment.FlakySummary,
			IncludePassed:    cfg.Comment.IncludePassed,
		},
		Version: version.Version(),
	})

	return root.ExecuteContext(ctx)
}

// discoverRepoContext fills owner, repo, and commit SHA from the local
// checkout when they were not configured. Discovery failures are only
// warnings; validation of the final values happens in run.
func discoverRepoContext(gh config.GitHubConfig, gitCfg config.GitConfig, logger interface {
	Warnw(msg string, keysAndValues ...interface{})
}) config.GitHubConfig {
	if gh.Owner != "" && gh.Repo != "" && gh.CommitSHA != "" {
		return gh
	}

	repoDir := gitCfg.RepositoryDir
	if repoDir == "" {
		repoDir = "."
	}
	engine := gitadapter.NewEngine(repoDir)

	if gh.Owner == "" || gh.Repo == "" {
		owner, repo, err := engine.OriginOwnerRepo()
		if err != nil {
			logger.Warnw("could not discover owner/repo from git remote", "error", err)
		} else {
			gh.Owner, gh.Repo = owner, repo
		}
	}

	if gh.CommitSHA == "" {
		sha, err := engine.HeadSHA()
		if err != nil {
			logger.Warnw("could not discover HEAD commit", "error", err)
		} else {
			gh.CommitSHA = sha
		}
	}

	return gh
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home+"/.config/test-reporter")
	}
	return paths
}
