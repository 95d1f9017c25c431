package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileAt_ReadsFileAtBranch(t *testing.T) {
	t.Parallel()

	repoDir, _ := CreateTestRepo(t, TestRepoConfig{
		Files: map[string]string{"doc/cljdoc.edn": "{:languages [\"clojure\"]}\n"},
	})

	handle, err := Open(repoDir)
	require.NoError(t, err)

	content, err := handle.FileAt("master", "doc/cljdoc.edn")
	require.NoError(t, err)
	assert.Equal(t, "{:languages [\"clojure\"]}\n", string(content))
}

func TestFileAt_ReadsHistoricalRevision(t *testing.T) {
	t.Parallel()

	repoDir, repo := CreateTestRepo(t, TestRepoConfig{
		Files: map[string]string{"doc/cljdoc.edn": "old\n"},
	})
	firstHead, err := repo.Head()
	require.NoError(t, err)
	first := firstHead.Hash()

	CommitTestFiles(t, repo, repoDir, map[string]string{"doc/cljdoc.edn": "new\n"}, "Update config", nil)

	handle, err := Open(repoDir)
	require.NoError(t, err)

	content, err := handle.FileAt(first.String(), "doc/cljdoc.edn")
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(content))

	content, err = handle.FileAt("master", "doc/cljdoc.edn")
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(content))
}

func TestFileAt_ReadsAtAnnotatedTagRevision(t *testing.T) {
	t.Parallel()

	repoDir, repo := CreateTestRepo(t, TestRepoConfig{
		Files: map[string]string{"doc/cljdoc.edn": "tagged\n"},
	})
	head, err := repo.Head()
	require.NoError(t, err)

	TagAnnotated(t, repo, "1.0.0", head.Hash())
	CommitTestFiles(t, repo, repoDir, map[string]string{"doc/cljdoc.edn": "later\n"}, "Update config", nil)

	handle, err := Open(repoDir)
	require.NoError(t, err)

	content, err := handle.FileAt("1.0.0", "doc/cljdoc.edn")
	require.NoError(t, err)
	assert.Equal(t, "tagged\n", string(content))
}

func TestFileAt_AbsentFileIsNotAnError(t *testing.T) {
	t.Parallel()

	repoDir, _ := CreateTestRepo(t, TestRepoConfig{})

	handle, err := Open(repoDir)
	require.NoError(t, err)

	content, err := handle.FileAt("master", "doc/cljdoc.edn")
	require.NoError(t, err)
	assert.Nil(t, content)
}

func TestFileAt_EmptyFileIsPresent(t *testing.T) {
	t.Parallel()

	repoDir, _ := CreateTestRepo(t, TestRepoConfig{
		Files: map[string]string{"doc/cljdoc.edn": ""},
	})

	handle, err := Open(repoDir)
	require.NoError(t, err)

	content, err := handle.FileAt("master", "doc/cljdoc.edn")
	require.NoError(t, err)
	assert.NotNil(t, content, "an existing empty file is present, not absent")
	assert.Empty(t, content)
}

func TestFileAt_UnresolvableRevision(t *testing.T) {
	t.Parallel()

	repoDir, _ := CreateTestRepo(t, TestRepoConfig{})

	handle, err := Open(repoDir)
	require.NoError(t, err)

	_, err = handle.FileAt("no-such-revision", "doc/cljdoc.edn")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRevisionNotFound)
}
