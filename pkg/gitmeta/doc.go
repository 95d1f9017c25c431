// Package gitmeta assembles versioned build metadata from a repository for
// the documentation pipeline.
//
// Given a repository handle and a semantic version string it locates the
// matching tag (exact name first, then a "v"-prefixed fallback), peels the
// tag down to an immutable commit SHA, and canonicalizes the repository's
// origin URL into a single comparable https form. It also fetches the
// project configuration file at an arbitrary historical revision with a
// default-branch fallback.
//
// A missing tag is a soft outcome: Assemble logs a warning and returns a
// partial record with the commit and tag absent. Downstream consumers treat
// that absence as "documentation metadata unavailable for this version",
// not as a pipeline failure. Hard failures (unresolvable revisions, origin
// URLs that cannot be normalized to https) surface as errors.
package gitmeta
