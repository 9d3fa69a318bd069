package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// LoaderOptions describes how configuration should be discovered.
type LoaderOptions struct {
	ConfigPaths []string
	FileName    string
	EnvPrefix   string
}

// Load returns the merged configuration from files and environment
// variables. Environment variables win over file values; the GitHub
// token is usually supplied as TEST_REPORTER_GITHUB_TOKEN or falls back
// to GITHUB_TOKEN.
func Load(opts LoaderOptions) (Config, error) {
	v := viper.New()

	name := opts.FileName
	if name == "" {
		name = "test-reporter"
	}

	configFile := locateConfigFile(name, opts.ConfigPaths)
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(name)
	}

	prefix := opts.EnvPrefix
	if prefix == "" {
		prefix = "TEST_REPORTER"
	}
	v.SetEnvPrefix(prefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AllowEmptyEnv(true)

	setDefaults(v)

	if configFile != "" {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.GitHub.Token == "" {
		cfg.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}

	return cfg, nil
}

func locateConfigFile(name string, paths []string) string {
	searchPaths := append([]string{}, paths...)
	searchPaths = append(searchPaths, ".")
	for _, dir := range searchPaths {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name+".yaml")
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

func setDefaults(v *viper.Viper) {
	// Empty defaults register the keys with viper so AutomaticEnv can
	// resolve them; without registration Unmarshal never sees env-only
	// values.
	v.SetDefault("github.token", "")
	v.SetDefault("github.owner", "")
	v.SetDefault("github.repo", "")
	v.SetDefault("github.pullNumber", 0)
	v.SetDefault("github.commitSha", "")

	v.SetDefault("git.repositoryDir", ".")

	v.SetDefault("checks.annotations", true)
	v.SetDefault("checks.annotateOnly", false)
	v.SetDefault("checks.updateCheck", false)
	v.SetDefault("checks.annotateNotice", false)
	v.SetDefault("checks.jobName", "")

	v.SetDefault("comment.enabled", true)
	v.SetDefault("comment.update", true)
	v.SetDefault("comment.detailedSummary", false)
	v.SetDefault("comment.flakySummary", false)
	v.SetDefault("comment.includePassed", false)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
