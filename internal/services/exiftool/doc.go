// Package exiftool provides a thin client for tag queries against the
// exiftool binary.
//
// Queries use the tab-separated table output (-T) so a single invocation can
// fetch several tags. Absent tags come back as the "-" sentinel, which the
// client normalizes to an empty string.
package exiftool
