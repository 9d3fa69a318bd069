// Package git discovers repository context from the local checkout:
// the head commit to report against and the owner/repo of the origin
// remote. Configured values always take precedence; discovery is the
// fallback for local runs.
package git

import (
	"fmt"
	"strings"

	goGit "github.com/go-git/go-git/v5"
)

// Engine resolves repository context backed by go-git.
type Engine struct {
	repoDir string
}

// NewEngine constructs a Git engine for the provided repository directory.
func NewEngine(repoDir string) *Engine {
	return &Engine{repoDir: repoDir}
}

// HeadSHA returns the hash of the checked-out commit.
func (e *Engine) HeadSHA() (string, error) {
	repo, err := goGit.PlainOpenWithOptions(e.repoDir, &goGit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("open repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolve HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// OriginOwnerRepo parses the origin remote URL into owner and repository
// name. Both SSH and HTTPS GitHub remote forms are supported.
func (e *Engine) OriginOwnerRepo() (string, string, error) {
	repo, err := goGit.PlainOpenWithOptions(e.repoDir, &goGit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", "", fmt.Errorf("open repo: %w", err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", "", fmt.Errorf("resolve origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", "", fmt.Errorf("origin remote has no URL")
	}
	return ParseRemoteURL(urls[0])
}

// ParseRemoteURL extracts owner and repo from a GitHub remote URL.
// Supported forms:
//   - git@github.com:owner/repo.git
//   - https://github.com/owner/repo.git
//   - https://github.com/owner/repo
func ParseRemoteURL(raw string) (string, string, error) {
	path := raw
	switch {
	case strings.HasPrefix(raw, "git@"):
		idx := strings.Index(raw, ":")
		if idx < 0 {
			return "", "", fmt.Errorf("unsupported remote URL: %s", raw)
		}
		path = raw[idx+1:]
	case strings.HasPrefix(raw, "https://"), strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "ssh://"):
		idx := strings.Index(raw, "://")
		rest := raw[idx+3:]
		slash := strings.Index(rest, "/")
		if slash < 0 {
			return "", "", fmt.Errorf("unsupported remote URL: %s", raw)
		}
		path = rest[slash+1:]
	}

	path = strings.TrimSuffix(path, "/")
	path = strings.TrimSuffix(path, ".git")

	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("cannot extract owner/repo from remote URL: %s", raw)
	}
	return parts[0], parts[1], nil
}
