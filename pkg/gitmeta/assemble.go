package gitmeta

import (
	"fmt"
	"log/slog"

	"github.com/docbuilder/gitmeta/pkg/git"
)

// Assemble builds the metadata record for one version request.
//
// The origin URL is normalized first and is always present in the result.
// When no tag matches the version a warning is logged and the record is
// returned with Commit and Tag absent; that is a soft outcome, not an
// error. When a tag matches, Commit is the peeled commit SHA and Tag.SHA
// is the tag's own object id (the tag object for an annotated tag, the
// commit itself for a lightweight one).
func Assemble(repo *git.Repository, version string) (*RepoMetadata, error) {
	url, err := OriginURL(repo)
	if err != nil {
		return nil, err
	}

	tag, err := ResolveVersionTag(repo, version)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		slog.Warn("No tag matches requested version",
			"version", version,
			"repository", url)
		return &RepoMetadata{URL: url}, nil
	}

	peeled, err := repo.Peel(*tag)
	if err != nil {
		return nil, err
	}

	var tagSHA string
	switch peeled.Kind {
	case git.KindAnnotated:
		tagSHA = tag.Hash.String()
	case git.KindLightweight:
		tagSHA = peeled.Commit.String()
	default:
		return nil, fmt.Errorf("%w: %s", git.ErrUnsupportedRefKind, tag.Name)
	}

	return &RepoMetadata{
		URL:    url,
		Commit: peeled.Commit.String(),
		Tag: &TagInfo{
			Name: tag.Name.Short(),
			SHA:  tagSHA,
		},
	}, nil
}
