// Package services defines shared utilities consumed by the conversion driver
// and its collaborators.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and stage names for logging.
//   - Structured error markers plus the Wrap helper so decode, extraction, and
//     I/O failures stay distinguishable with errors.Is all the way up to the CLI.
package services
