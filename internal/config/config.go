package config

// Config represents the full application configuration.
type Config struct {
	GitHub  GitHubConfig  `mapstructure:"github"`
	Checks  ChecksConfig  `mapstructure:"checks"`
	Comment CommentConfig `mapstructure:"comment"`
	Git     GitConfig     `mapstructure:"git"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GitHubConfig holds the repository context and credentials. Owner,
// repo, and commit SHA may be left empty and discovered from the local
// checkout.
type GitHubConfig struct {
	Token      string `mapstructure:"token"`
	Owner      string `mapstructure:"owner"`
	Repo       string `mapstructure:"repo"`
	PullNumber int    `mapstructure:"pullNumber"`
	CommitSHA  string `mapstructure:"commitSha"`
}

// ChecksConfig holds the check-run reporting switches.
type ChecksConfig struct {
	Annotations    bool   `mapstructure:"annotations"`
	AnnotateOnly   bool   `mapstructure:"annotateOnly"`
	UpdateCheck    bool   `mapstructure:"updateCheck"`
	AnnotateNotice bool   `mapstructure:"annotateNotice"`
	JobName        string `mapstructure:"jobName"`
}

// CommentConfig holds the summary-comment switches.
type CommentConfig struct {
	Enabled         bool `mapstructure:"enabled"`
	Update          bool `mapstructure:"update"`
	DetailedSummary bool `mapstructure:"detailedSummary"`
	FlakySummary    bool `mapstructure:"flakySummary"`
	IncludePassed   bool `mapstructure:"includePassed"`
}

// GitConfig configures local repository discovery.
type GitConfig struct {
	RepositoryDir string `mapstructure:"repositoryDir"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console or json
}
