// Package logging assembles structured slog loggers and formatting helpers
// used across sortd.
//
// It owns the configurable console/JSON handlers, centralizes level and
// output plumbing, and exposes attribute helpers so every component emits
// log lines with the same shape. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup.
package logging
