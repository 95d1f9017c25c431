package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
)

// Peel classifies a tag ref as annotated or lightweight and resolves the
// commit it ultimately points at. An annotated tag is itself an object whose
// hash differs from the target commit; a lightweight tag points directly at
// the commit. Returns ErrUnsupportedRefKind if the ref object is neither
// form, which should not occur for well-formed tag refs.
func (r *Repository) Peel(tag TagRef) (PeeledTag, error) {
	tagObj, err := r.repo.TagObject(tag.Hash)
	switch {
	case err == nil:
		commit, commitErr := tagObj.Commit()
		if commitErr != nil {
			return PeeledTag{}, fmt.Errorf("%w: annotated tag %s does not target a commit: %v",
				ErrUnsupportedRefKind, tag.Name, commitErr)
		}
		return PeeledTag{Kind: KindAnnotated, Commit: commit.Hash}, nil

	case errors.Is(err, plumbing.ErrObjectNotFound):
		// No tag object behind the ref, so it must point straight at a commit.
		if _, commitErr := r.repo.CommitObject(tag.Hash); commitErr != nil {
			return PeeledTag{}, fmt.Errorf("%w: %s", ErrUnsupportedRefKind, tag.Name)
		}
		return PeeledTag{Kind: KindLightweight, Commit: tag.Hash}, nil

	default:
		return PeeledTag{}, fmt.Errorf("failed to inspect tag %s: %w", tag.Name, err)
	}
}
