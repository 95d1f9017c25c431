package git

import (
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findTagRef(t *testing.T, handle *Repository, name string) TagRef {
	t.Helper()

	tags, err := handle.Tags()
	require.NoError(t, err)
	for _, tag := range tags {
		if tag.Name == plumbing.NewTagReferenceName(name) {
			return tag
		}
	}
	t.Fatalf("tag %s not found", name)
	return TagRef{}
}

func TestPeel_LightweightTag(t *testing.T) {
	t.Parallel()

	repoDir, repo := CreateTestRepo(t, TestRepoConfig{})
	head, err := repo.Head()
	require.NoError(t, err)

	TagLightweight(t, repo, "0.1.6", head.Hash())

	handle, err := Open(repoDir)
	require.NoError(t, err)

	tag := findTagRef(t, handle, "0.1.6")
	peeled, err := handle.Peel(tag)
	require.NoError(t, err)

	assert.Equal(t, KindLightweight, peeled.Kind)
	assert.Equal(t, head.Hash(), peeled.Commit)
	assert.Equal(t, tag.Hash, peeled.Commit, "lightweight tag's own hash is the commit")
}

func TestPeel_AnnotatedTag(t *testing.T) {
	t.Parallel()

	repoDir, repo := CreateTestRepo(t, TestRepoConfig{})
	head, err := repo.Head()
	require.NoError(t, err)

	tagObjHash := TagAnnotated(t, repo, "1.0.0", head.Hash())

	handle, err := Open(repoDir)
	require.NoError(t, err)

	tag := findTagRef(t, handle, "1.0.0")
	assert.Equal(t, tagObjHash, tag.Hash)

	peeled, err := handle.Peel(tag)
	require.NoError(t, err)

	assert.Equal(t, KindAnnotated, peeled.Kind)
	assert.Equal(t, head.Hash(), peeled.Commit)
	assert.NotEqual(t, tag.Hash, peeled.Commit, "annotated tag object hash differs from the commit")
}

func TestPeel_UnsupportedRefKind(t *testing.T) {
	t.Parallel()

	repoDir, _ := CreateTestRepo(t, TestRepoConfig{})

	handle, err := Open(repoDir)
	require.NoError(t, err)

	// A ref pointing at an object that exists as neither tag nor commit.
	bogus := TagRef{
		Name: plumbing.NewTagReferenceName("broken"),
		Hash: plumbing.NewHash("0123456789abcdef0123456789abcdef01234567"),
	}
	_, err = handle.Peel(bogus)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedRefKind)
}

func TestRefKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "lightweight", KindLightweight.String())
	assert.Equal(t, "annotated", KindAnnotated.String())
	assert.Equal(t, "unknown", RefKind(42).String())
}
