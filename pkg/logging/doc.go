// Package logging provides a process-wide structured logger for the engine.
//
// The package wraps [log/slog] and exposes a single global logger instance
// that is initialized once and then retrieved via GetLogger. Subsystems
// obtain a logger through this package rather than constructing their own
// slog.Logger values, so that log level and output destination are
// controlled from a single place.
//
// The default level is Warn: a library embedded in a larger system should be
// silent unless asked. Hosts that want operator tracing call Init with
// LevelDebug, and materializing operators report their buffer sizes.
package logging
