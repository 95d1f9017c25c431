package gitmeta

// TagInfo identifies the tag a version resolved to.
//
// Name is the short tag name (no "refs/tags/" prefix). SHA is the tag's own
// object id: for an annotated tag this is the tag object's hash and differs
// from the commit; for a lightweight tag it equals the commit hash.
type TagInfo struct {
	Name string `json:"name"`
	SHA  string `json:"sha"`
}

// RepoMetadata is the per-version metadata record consumed by the
// documentation pipeline.
//
// URL is always present and always begins with "https://" after
// normalization. Commit and Tag are derived together from the same resolved
// tag ref: both present when a tag matched the requested version, both
// absent when none did.
type RepoMetadata struct {
	URL    string   `json:"url"`
	Commit string   `json:"commit,omitempty"`
	Tag    *TagInfo `json:"tag,omitempty"`
}
