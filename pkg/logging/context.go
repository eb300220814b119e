package logging

import "log/slog"

// WithOperator creates a logger with operator context. Use this so every log
// line names the operator that emitted it.
//
// Example:
//
//	log := logging.WithOperator("sort")
//	log.Debug("input drained", "rows", n)
func WithOperator(name string) *slog.Logger {
	return GetLogger().With("operator", name)
}
