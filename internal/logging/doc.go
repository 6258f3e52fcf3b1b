// Package logging assembles the structured slog loggers used across
// papervault.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and provides a no-op logger for tests and wiring code that cannot
// fail. Components attach themselves with a "component" attribute, which the
// console handler renders as a message prefix.
//
// Prefer these constructors over hand-rolled slog setup so every part of the
// system emits log lines with the same shape.
package logging
