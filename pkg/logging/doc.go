// Package logging provides structured diagnostic logging for ec2inv.
//
// It is a thin wrapper around Go's standard slog package. Every log entry
// carries a subsystem identifier so output can be filtered by component:
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//	logging.Debug("Collector", "region %s: fetched page %d", region, page)
//	logging.Error("Catalog", err, "could not list regions")
//
// Diagnostic logs go to the writer passed to Init (stderr in the CLI). They
// are distinct from the inventory report itself, including its WARNING and
// ERROR lines, which the tool prints to standard output.
package logging
