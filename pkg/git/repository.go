package git

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repository is an opaque handle to an on-disk repository. It is the only
// long-lived entity in this package and may serve many requests; see the
// package documentation for the concurrency contract.
type Repository struct {
	repo *git.Repository
	dir  string
}

// Open locates the repository at directory, honoring the usual repository
// discovery conventions (walking up to find the metadata directory).
// Returns ErrRepositoryNotFound if no repository is found.
func Open(directory string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(directory, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrRepositoryNotFound, directory)
		}
		return nil, fmt.Errorf("failed to open repository at %s: %w", directory, err)
	}

	return &Repository{repo: repo, dir: directory}, nil
}

// Clone performs a full (non-shallow) clone of uri into targetDir. The auth
// provider supplies transport credentials; nil clones anonymously. Clone
// performs network I/O and may block indefinitely on an unresponsive remote;
// callers needing bounded latency wrap the context externally.
// Returns ErrCloneFailed on transport or authentication errors.
func Clone(ctx context.Context, uri, targetDir string, auth AuthProvider) (*Repository, error) {
	cloneOptions := &git.CloneOptions{
		URL: uri,
	}

	if auth != nil {
		method, err := auth.AuthMethod()
		if err != nil {
			return nil, fmt.Errorf("failed to configure clone authentication: %w", err)
		}
		cloneOptions.Auth = method
	}

	startTime := time.Now()
	slog.Info("Starting git clone", "repository", uri, "target", targetDir)

	repo, err := git.PlainCloneContext(ctx, targetDir, false, cloneOptions)
	if err != nil {
		slog.Error("Git clone failed",
			"error", err,
			"repository", uri,
			"duration", time.Since(startTime).String())
		return nil, fmt.Errorf("%w: %s: %v", ErrCloneFailed, uri, err)
	}

	slog.Info("Git clone completed",
		"repository", uri,
		"duration", time.Since(startTime).String())

	return &Repository{repo: repo, dir: targetDir}, nil
}

// Dir returns the directory the handle was opened or cloned at
func (r *Repository) Dir() string {
	return r.dir
}

// Checkout switches the working tree to revision (a branch name, tag name,
// or commit SHA). The working tree is shared mutable state; callers must
// serialize Checkout against other uses of the same handle.
// Returns ErrCheckoutFailed if the revision cannot be resolved to a commit.
func (r *Repository) Checkout(revision string) error {
	commit, err := r.resolveCommit(revision)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrCheckoutFailed, revision)
	}

	workTree, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to get worktree: %w", err)
	}

	if err := workTree.Checkout(&git.CheckoutOptions{Hash: commit.Hash}); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCheckoutFailed, revision, err)
	}
	return nil
}

// Tags enumerates all tag references. The order is lexical by ref name,
// stable for a given repository state.
func (r *Repository) Tags() ([]TagRef, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	var tags []TagRef
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, TagRef{
			Name: ref.Name(),
			Hash: ref.Hash(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})
	return tags, nil
}

// OriginURL returns the first configured URL of the "origin" remote
func (r *Repository) OriginURL() (string, error) {
	remote, err := r.repo.Remote(git.DefaultRemoteName)
	if err != nil {
		return "", fmt.Errorf("failed to read origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("origin remote has no URL configured")
	}
	return urls[0], nil
}
