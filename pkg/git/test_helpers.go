package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// TestRepoConfig contains configuration for creating a test repository
type TestRepoConfig struct {
	Files  map[string]string // Map of filename to content for the initial commit
	Origin string            // Optional URL for the "origin" remote
	Author *object.Signature // Author for commits (uses default if nil)
}

// CreateTestRepo creates a temporary Git repository with the specified files
// committed on master. Returns the repository path and the underlying go-git
// handle for further fixture setup (tags, extra commits).
func CreateTestRepo(t *testing.T, config TestRepoConfig) (string, *git.Repository) {
	t.Helper()

	repoDir := t.TempDir()

	repo, err := git.PlainInit(repoDir, false)
	if err != nil {
		t.Fatalf("Failed to init repository: %v", err)
	}

	if config.Origin != "" {
		_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: git.DefaultRemoteName,
			URLs: []string{config.Origin},
		})
		if err != nil {
			t.Fatalf("Failed to create origin remote: %v", err)
		}
	}

	files := config.Files
	if len(files) == 0 {
		files = map[string]string{"README.md": "# test repository\n"}
	}
	CommitTestFiles(t, repo, repoDir, files, "Initial commit", config.Author)

	return repoDir, repo
}

// CommitTestFiles writes the given files into the working tree and commits
// them, returning the new commit hash
func CommitTestFiles(
	t *testing.T,
	repo *git.Repository,
	repoDir string,
	files map[string]string,
	message string,
	author *object.Signature,
) plumbing.Hash {
	t.Helper()

	workTree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Failed to get worktree: %v", err)
	}

	if author == nil {
		author = testSignature()
	}

	for filename, content := range files {
		filePath := filepath.Join(repoDir, filename)

		dir := filepath.Dir(filePath)
		if dir != repoDir {
			if err := os.MkdirAll(dir, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", dir, err)
			}
		}

		if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write file %s: %v", filename, err)
		}

		if _, err := workTree.Add(filename); err != nil {
			t.Fatalf("Failed to add file %s: %v", filename, err)
		}
	}

	hash, err := workTree.Commit(message, &git.CommitOptions{Author: author})
	if err != nil {
		t.Fatalf("Failed to commit: %v", err)
	}
	return hash
}

// TagLightweight creates a lightweight tag pointing directly at target
func TagLightweight(t *testing.T, repo *git.Repository, name string, target plumbing.Hash) {
	t.Helper()

	if _, err := repo.CreateTag(name, target, nil); err != nil {
		t.Fatalf("Failed to create lightweight tag %s: %v", name, err)
	}
}

// TagAnnotated creates an annotated tag targeting target and returns the tag
// object's own hash, which differs from the target commit hash
func TagAnnotated(t *testing.T, repo *git.Repository, name string, target plumbing.Hash) plumbing.Hash {
	t.Helper()

	ref, err := repo.CreateTag(name, target, &git.CreateTagOptions{
		Tagger:  testSignature(),
		Message: "release " + name,
	})
	if err != nil {
		t.Fatalf("Failed to create annotated tag %s: %v", name, err)
	}
	return ref.Hash()
}

func testSignature() *object.Signature {
	return &object.Signature{
		Name:  "Test Author",
		Email: "test@example.com",
		When:  time.Now(),
	}
}
