// Package main is the entry point for pathctl, the path diagnostics tool of
// the AgentOS desktop.
//
// Configuration:
//   - Environment variables (LOG_LEVEL, LOG_DEV, AGENTOS_HOME, AGENTOS_ROOT,
//     AGENTOS_DIR_PERM, METRICS_ENABLED, METRICS_NAMESPACE)
//   - CLI flags (override env vars)
//
// Usage:
//
//	# Expand an aliased path
//	pathctl resolve ~/projects/demo
//
//	# Create the per-user tree and print its status
//	pathctl layout --ensure
//
//	# Recover from a deleted working directory
//	pathctl cwd --revert-to ~/projects
//
//	# Development logs and metrics on stderr
//	pathctl --log-dev --metrics mkdir ~/projects/demo src
package main
