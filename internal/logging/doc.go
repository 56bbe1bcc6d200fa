// Package logging assembles the slog loggers used by the converter.
//
// It owns the console and JSON handlers, level and output plumbing, and a set
// of standardized field keys so every component tags its lines the same way.
// Context helpers pull the run ID and stage out of a context.Context. NewNop
// gives tests and optional wiring a logger that cannot fail.
package logging
