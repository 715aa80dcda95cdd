// Package derive produces the presentation assets for each source file:
// bounded-resolution images, thumbnails, poster frames, and web transcodes.
//
// Derivation is idempotent by construction. Every output lives at a
// deterministic path built from the owning source's identity token, and an
// existing output is never regenerated; freshness is caller-enforced by
// deleting stale outputs. Tool output is written to a sibling scratch file
// and renamed into place, so an interrupted run never leaves a half-written
// file that a later run would mistake for a completed one.
package derive
