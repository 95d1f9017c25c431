package gitmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbuilder/gitmeta/pkg/git"
)

func TestReadConfig_PresentAtRevision(t *testing.T) {
	t.Parallel()

	repoDir, repo := git.CreateTestRepo(t, git.TestRepoConfig{
		Files: map[string]string{ConfigFilePath: "tagged config\n"},
	})
	head, err := repo.Head()
	require.NoError(t, err)

	git.TagLightweight(t, repo, "1.0.0", head.Hash())
	git.CommitTestFiles(t, repo, repoDir, map[string]string{ConfigFilePath: "newer config\n"}, "Update config", nil)

	handle, err := git.Open(repoDir)
	require.NoError(t, err)

	content, err := ReadConfig(handle, "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "tagged config\n", string(content))
}

func TestReadConfig_AbsentAtRevisionFallsBack(t *testing.T) {
	t.Parallel()

	repoDir, repo := git.CreateTestRepo(t, git.TestRepoConfig{
		Files: map[string]string{"README.md": "# no config yet\n"},
	})
	head, err := repo.Head()
	require.NoError(t, err)

	git.TagLightweight(t, repo, "0.9.0", head.Hash())
	git.CommitTestFiles(t, repo, repoDir, map[string]string{ConfigFilePath: "default branch config\n"}, "Add config", nil)

	handle, err := git.Open(repoDir)
	require.NoError(t, err)

	content, err := ReadConfig(handle, "0.9.0")
	require.NoError(t, err)
	assert.Equal(t, "default branch config\n", string(content))
}

func TestReadConfig_EmptyAtRevisionFallsBack(t *testing.T) {
	t.Parallel()

	repoDir, repo := git.CreateTestRepo(t, git.TestRepoConfig{
		Files: map[string]string{ConfigFilePath: ""},
	})
	head, err := repo.Head()
	require.NoError(t, err)

	git.TagLightweight(t, repo, "0.9.0", head.Hash())
	git.CommitTestFiles(t, repo, repoDir, map[string]string{ConfigFilePath: "filled in later\n"}, "Fill config", nil)

	handle, err := git.Open(repoDir)
	require.NoError(t, err)

	content, err := ReadConfig(handle, "0.9.0")
	require.NoError(t, err)
	assert.Equal(t, "filled in later\n", string(content),
		"an existing-but-empty config at the revision still triggers the fallback")
}

func TestReadConfig_UnresolvableRevisionFallsBack(t *testing.T) {
	t.Parallel()

	repoDir, _ := git.CreateTestRepo(t, git.TestRepoConfig{
		Files: map[string]string{ConfigFilePath: "default branch config\n"},
	})

	handle, err := git.Open(repoDir)
	require.NoError(t, err)

	content, err := ReadConfig(handle, "no-such-revision")
	require.NoError(t, err)
	assert.Equal(t, "default branch config\n", string(content))
}

func TestReadConfig_NoRevisionReadsDefaultBranch(t *testing.T) {
	t.Parallel()

	repoDir, _ := git.CreateTestRepo(t, git.TestRepoConfig{
		Files: map[string]string{ConfigFilePath: "default branch config\n"},
	})

	handle, err := git.Open(repoDir)
	require.NoError(t, err)

	content, err := ReadConfig(handle, "")
	require.NoError(t, err)
	assert.Equal(t, "default branch config\n", string(content))
}

func TestReadConfig_AbsentEverywhere(t *testing.T) {
	t.Parallel()

	repoDir, _ := git.CreateTestRepo(t, git.TestRepoConfig{})

	handle, err := git.Open(repoDir)
	require.NoError(t, err)

	content, err := ReadConfig(handle, "")
	require.NoError(t, err)
	assert.Nil(t, content)
}
