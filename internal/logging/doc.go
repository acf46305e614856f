// Package logging assembles the structured slog loggers used across
// soundcheck.
//
// It centralizes level and format plumbing so the CLI, the preference store,
// and the batch runner emit log lines with the same shape, and it provides a
// no-op logger for tests and for wiring code that cannot fail. The
// classification core itself never logs; decisions are returned as values.
package logging
