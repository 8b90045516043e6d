// Package logging assembles the structured slog loggers used across
// pigmatch.
//
// It centralizes level and format plumbing so every component emits data
// with the same shape, and provides a no-op logger for tests and wiring code
// that cannot fail. Prefer these constructors over hand-rolled slog setup.
package logging
