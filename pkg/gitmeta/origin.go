package gitmeta

import (
	"errors"
	"fmt"
	"strings"

	"github.com/docbuilder/gitmeta/pkg/git"
)

// ErrInvalidOriginScheme indicates an origin URL that could not be rewritten
// into the canonical https form. This is a hard failure rather than a silent
// pass-through, so unexpected remote configurations never reach downstream
// consumers unnoticed.
var ErrInvalidOriginScheme = errors.New("origin URL does not normalize to https")

const (
	sshShorthandPrefix = "git@github.com:"
	sshSchemePrefix    = "ssh://git@"
	httpsScheme        = "https://"
)

// NormalizeOriginURL rewrites SSH-style remote URL forms into the canonical
// https form: "git@github.com:org/repo.git" becomes
// "https://github.com/org/repo.git" and "ssh://git@host/path" becomes
// "https://host/path". URLs already using https pass through unchanged, so
// the function is idempotent. Any result not starting with https fails with
// ErrInvalidOriginScheme.
func NormalizeOriginURL(raw string) (string, error) {
	url := raw
	if strings.HasPrefix(url, sshShorthandPrefix) {
		url = "https://github.com/" + strings.TrimPrefix(url, sshShorthandPrefix)
	}
	if strings.HasPrefix(url, sshSchemePrefix) {
		url = httpsScheme + strings.TrimPrefix(url, sshSchemePrefix)
	}

	if !strings.HasPrefix(url, httpsScheme) {
		return "", fmt.Errorf("%w: %s", ErrInvalidOriginScheme, raw)
	}
	return url, nil
}

// OriginURL reads the repository's "origin" remote and returns it in
// canonical https form
func OriginURL(repo *git.Repository) (string, error) {
	raw, err := repo.OriginURL()
	if err != nil {
		return "", err
	}
	return NormalizeOriginURL(raw)
}
