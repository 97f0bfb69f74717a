// Package logging assembles structured slog loggers and formatting helpers
// used across tubetag.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so batch workers tag every line with
// the run identifier and input line number. NewNop provides a silent logger
// for tests and library callers that do not care about diagnostics.
package logging
