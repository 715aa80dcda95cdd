// Package capture resolves the canonical capture moment for a source file.
//
// Resolution walks a fallback chain and cannot fail for an existing file:
// embedded EXIF metadata read in-process, then an exiftool query for
// DateTimeOriginal and CreateDate, then the filesystem birth time where the
// platform records one, and finally the modification time. The resolved
// moment is reduced to day and minute precision; seconds and timezone are
// deliberately discarded.
package capture
