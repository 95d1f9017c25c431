package git

import (
	"errors"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
)

// Sentinel errors for repository operations. Callers match them with errors.Is.
var (
	// ErrRepositoryNotFound indicates no repository was found at the given directory
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrCloneFailed indicates a clone failed due to a transport or authentication error
	ErrCloneFailed = errors.New("clone failed")

	// ErrCheckoutFailed indicates a revision could not be resolved to a commit for checkout
	ErrCheckoutFailed = errors.New("checkout failed")

	// ErrRevisionNotFound indicates a revision string resolved to nothing
	ErrRevisionNotFound = errors.New("revision not found")

	// ErrUnsupportedRefKind indicates a tag ref points at neither a tag object nor a commit.
	// This should not occur for well-formed tag refs.
	ErrUnsupportedRefKind = errors.New("unsupported ref kind")
)

// RefKind classifies a tag reference. It is a closed set with exactly two
// cases; code consuming it switches over both and treats anything else as
// ErrUnsupportedRefKind.
type RefKind int

const (
	// KindLightweight is a tag ref pointing directly at a commit
	KindLightweight RefKind = iota

	// KindAnnotated is a tag ref pointing at a tag object with its own identity
	KindAnnotated
)

// String returns the human-readable name of the ref kind
func (k RefKind) String() string {
	switch k {
	case KindLightweight:
		return "lightweight"
	case KindAnnotated:
		return "annotated"
	default:
		return "unknown"
	}
}

// TagRef is a tag reference as enumerated by Repository.Tags.
//
// Hash is the ref's own object id: the tag object's hash for an annotated
// tag, the target commit's hash for a lightweight one. Use Repository.Peel
// to classify the ref and obtain the commit it ultimately points at.
type TagRef struct {
	// Name is the full reference name, e.g. "refs/tags/1.2.0"
	Name plumbing.ReferenceName

	// Hash is the object id the ref points at directly
	Hash plumbing.Hash
}

// PeeledTag is the result of peeling a TagRef down to its target commit.
// Commit always identifies a commit object, never a tag object. For
// KindLightweight the commit equals the ref's own hash; for KindAnnotated
// the two differ.
type PeeledTag struct {
	Kind   RefKind
	Commit plumbing.Hash
}

// AuthProvider supplies transport credentials for Clone. It replaces any
// process-wide transport configuration: production code and tests pass
// whichever provider they need, and a nil provider clones anonymously.
type AuthProvider interface {
	// AuthMethod returns the transport auth method to use for a clone
	AuthMethod() (transport.AuthMethod, error)
}

// BasicAuth is an AuthProvider using HTTP basic authentication
type BasicAuth struct {
	Username string
	Password string
}

// AuthMethod returns an HTTP basic auth transport method
func (b *BasicAuth) AuthMethod() (transport.AuthMethod, error) {
	return &githttp.BasicAuth{
		Username: b.Username,
		Password: b.Password,
	}, nil
}
