// Package git provides the repository operations the documentation pipeline
// needs from a version-control engine.
//
// This package implements a thin wrapper around the go-git library. It knows
// how to open or clone a repository on disk, enumerate tags, peel a tag
// reference down to the commit it ultimately points at, switch the working
// tree to an arbitrary revision, and fetch a file's content at a specific
// point in history.
//
// Key Components:
//
// # Repository
//
// Repository is an opaque handle to an on-disk repository. It is obtained via
// Open (existing directory) or Clone (remote URI) and exposes:
//   - Tags: enumerate all tag references
//   - Peel: classify a tag as annotated or lightweight and resolve its commit
//   - Checkout: switch the working tree to a revision
//   - FileAt: read a file's bytes at an arbitrary revision
//   - OriginURL: read the configured "origin" remote URL
//
// # Concurrency
//
// All operations are synchronous and blocking. The working tree is shared
// mutable state: Checkout mutates it, so concurrent Checkout calls against
// the same handle must be serialized by the caller. Read-only operations
// (Tags, Peel, FileAt, OriginURL) work off the object database, not the
// working tree, and may run concurrently across distinct handles. No
// operation retries internally; transient failures propagate to the caller.
//
// # Transport authentication
//
// Clone takes an explicit AuthProvider value instead of consulting any
// process-wide transport state, so tests and production can substitute
// providers freely. A nil provider performs an anonymous clone.
package git
