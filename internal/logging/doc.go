// Package logging configures log/slog for maamarim runs.
//
// Without --debug, warnings and errors go to stderr as text. With --debug,
// JSON logs at debug level are also written to ~/.maamarim/logs/maamarim.log
// with size-based rotation.
package logging
