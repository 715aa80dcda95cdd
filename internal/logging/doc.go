// Package logging centralizes slog construction and the structured field
// vocabulary used across the build pipeline.
//
// Loggers are created from config (console or JSON format, optional log file
// alongside stdout). Attr helpers mirror the slog constructors so call sites
// read uniformly, and WithContext derives standard fields (run id, stage,
// source file) from a context annotated by internal/services.
package logging
