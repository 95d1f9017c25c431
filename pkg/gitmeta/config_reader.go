package gitmeta

import (
	"errors"
	"log/slog"

	"github.com/docbuilder/gitmeta/pkg/git"
)

const (
	// ConfigFilePath is the project configuration file convention, relative
	// to the repository root. Its content format is owned by the downstream
	// configuration parser and opaque here.
	ConfigFilePath = "doc/cljdoc.edn"

	// DefaultBranch is the branch consulted when the configuration cannot be
	// read at the requested revision
	DefaultBranch = "master"
)

// ReadConfig fetches the project configuration file at revision, falling
// back to the default branch when that yields no usable content. The
// fallback fires when the file is absent at the revision, when it exists
// but is empty, and when the revision itself does not resolve. An empty
// revision skips straight to the default branch. Returns nil when the file
// is absent on the default branch too.
//
// Treating an existing-but-empty file the same as an absent one is a
// documented quirk of the metadata contract, kept so a placeholder config
// committed at a release tag does not mask the maintained one on the
// default branch.
func ReadConfig(repo *git.Repository, revision string) ([]byte, error) {
	if revision != "" {
		content, err := repo.FileAt(revision, ConfigFilePath)
		switch {
		case err != nil && !errors.Is(err, git.ErrRevisionNotFound):
			return nil, err
		case err != nil:
			slog.Warn("Config revision did not resolve, falling back to default branch",
				"revision", revision,
				"branch", DefaultBranch,
				"path", ConfigFilePath)
		case len(content) > 0:
			return content, nil
		default:
			slog.Debug("Config absent or empty at revision, falling back to default branch",
				"revision", revision,
				"branch", DefaultBranch,
				"path", ConfigFilePath)
		}
	}

	return repo.FileAt(DefaultBranch, ConfigFilePath)
}
