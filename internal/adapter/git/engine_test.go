package git_test

import (
	"os"
	"path/filepath"
	"testing"

	goGit "github.com/go-git/go-git/v5"
	gitConfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gitadapter "github.com/bkyoung/test-reporter/internal/adapter/git"
)

func TestParseRemoteURL(t *testing.T) {
	testCases := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{"ssh scp form", "git@github.com:acme/widgets.git", "acme", "widgets", false},
		{"ssh scp form without suffix", "git@github.com:acme/widgets", "acme", "widgets", false},
		{"https with suffix", "https://github.com/acme/widgets.git", "acme", "widgets", false},
		{"https without suffix", "https://github.com/acme/widgets", "acme", "widgets", false},
		{"https trailing slash", "https://github.com/acme/widgets/", "acme", "widgets", false},
		{"ssh url form", "ssh://git@github.com/acme/widgets.git", "acme", "widgets", false},
		{"enterprise host", "https://github.example.com/acme/widgets.git", "acme", "widgets", false},
		{"missing repo", "https://github.com/acme", "", "", true},
		{"bare host", "https://github.com", "", "", true},
		{"garbage", "not-a-remote", "", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			owner, repo, err := gitadapter.ParseRemoteURL(tc.url)

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantOwner, owner)
			assert.Equal(t, tc.wantRepo, repo)
		})
	}
}

func TestEngine_HeadSHA(t *testing.T) {
	dir := t.TempDir()
	repo, err := goGit.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello"), 0o644))
	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("README.md")
	require.NoError(t, err)
	commit, err := worktree.Commit("initial commit", &goGit.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com"},
	})
	require.NoError(t, err)

	engine := gitadapter.NewEngine(dir)
	sha, err := engine.HeadSHA()

	require.NoError(t, err)
	assert.Equal(t, commit.String(), sha)
}

func TestEngine_HeadSHANoRepo(t *testing.T) {
	engine := gitadapter.NewEngine(t.TempDir())

	_, err := engine.HeadSHA()

	require.Error(t, err)
}

func TestEngine_OriginOwnerRepo(t *testing.T) {
	dir := t.TempDir()
	repo, err := goGit.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = repo.CreateRemote(&gitConfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"git@github.com:acme/widgets.git"},
	})
	require.NoError(t, err)

	engine := gitadapter.NewEngine(dir)
	owner, repoName, err := engine.OriginOwnerRepo()

	require.NoError(t, err)
	assert.Equal(t, "acme", owner)
	assert.Equal(t, "widgets", repoName)
}

func TestEngine_OriginOwnerRepoMissingRemote(t *testing.T) {
	dir := t.TempDir()
	_, err := goGit.PlainInit(dir, false)
	require.NoError(t, err)

	engine := gitadapter.NewEngine(dir)
	_, _, err = engine.OriginOwnerRepo()

	require.Error(t, err)
}
