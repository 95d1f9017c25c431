package gitmeta

import (
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/docbuilder/gitmeta/pkg/git"
)

// FindTag scans the repository's tags for a ref named "refs/tags/<name>".
// Ref names are unique within a repository, so at most one match exists.
// Returns nil when no tag matches.
func FindTag(repo *git.Repository, name string) (*git.TagRef, error) {
	tags, err := repo.Tags()
	if err != nil {
		return nil, err
	}

	want := plumbing.NewTagReferenceName(name)
	for i := range tags {
		if tags[i].Name == want {
			return &tags[i], nil
		}
	}
	return nil, nil
}

// ResolveVersionTag finds the tag matching a version string. The exact name
// always takes precedence; only when it is absent is the "v"-prefixed
// fallback tried. Returns nil when neither form exists.
func ResolveVersionTag(repo *git.Repository, version string) (*git.TagRef, error) {
	tag, err := FindTag(repo, version)
	if err != nil || tag != nil {
		return tag, err
	}
	return FindTag(repo, "v"+version)
}
