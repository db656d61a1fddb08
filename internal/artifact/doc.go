// Package artifact manages the fixed output directory where fetched images
// and generated HTML pages are written.
//
// The namespace is flat: artifacts are addressed by bare filename, exactly as
// supplied by the caller. Writes are create-only (O_EXCL); an existing
// filename blocks a new write rather than being overwritten, which doubles as
// the collision-detection mechanism between invocations. Artifacts are never
// deleted or updated by this package.
package artifact
