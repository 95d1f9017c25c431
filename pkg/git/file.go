package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// FileAt resolves revision to a commit and reads the file at path from that
// commit's tree. Returns (nil, nil) when no entry matches the path at a
// valid revision; an existing-but-empty file yields a non-nil empty slice,
// so callers can tell the two apart. Returns ErrRevisionNotFound when the
// revision itself cannot be resolved.
func (r *Repository) FileAt(revision, path string) ([]byte, error) {
	commit, err := r.resolveCommit(revision)
	if err != nil {
		return nil, err
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to get tree for revision %s: %w", revision, err)
	}

	file, err := tree.File(path)
	if errors.Is(err, object.ErrFileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s at revision %s: %w", path, revision, err)
	}

	content, err := file.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s at revision %s: %w", path, revision, err)
	}
	return []byte(content), nil
}

// resolveCommit resolves a revision string (branch, tag, or commit SHA) to a
// commit object, peeling through an annotated tag when the revision names one.
func (r *Repository) resolveCommit(revision string) (*object.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRevisionNotFound, revision)
	}

	commit, err := r.repo.CommitObject(*hash)
	if err == nil {
		return commit, nil
	}
	if !errors.Is(err, plumbing.ErrObjectNotFound) {
		return nil, fmt.Errorf("failed to load commit %s: %w", hash, err)
	}

	// The revision resolved to a tag object rather than a commit.
	tagObj, tagErr := r.repo.TagObject(*hash)
	if tagErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrRevisionNotFound, revision)
	}
	commit, err = tagObj.Commit()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRevisionNotFound, revision)
	}
	return commit, nil
}
