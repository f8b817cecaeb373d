// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Output goes to stderr by default, keeping stdout free for command results.
//
// Logger also implements paths.ErrorSink, so failures that the path layer
// absorbs (a deleted working directory, an unreadable stat) end up as
// structured "path operation failed" entries carrying op, kind, path,
// target_dir and code fields.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	m := paths.NewManager(filesystem.NewLocal(), logger)
//	logger.Info("Layout ready", zap.String("root", root.String()))
package logging
