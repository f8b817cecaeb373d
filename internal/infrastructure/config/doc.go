// Package config provides 12-factor configuration management for the desktop
// OS layer.
//
// Configuration is loaded from environment variables with sensible defaults.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - Paths: Home override, application root and directory mode
//   - Metrics: Prometheus collection settings
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	local := filesystem.NewLocal(
//	    filesystem.WithHome(cfg.Paths.Home),
//	    filesystem.WithDirPerm(cfg.Paths.DirPerm.Perm()),
//	)
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - AGENTOS_HOME, AGENTOS_ROOT, AGENTOS_DIR_PERM
//   - METRICS_ENABLED, METRICS_NAMESPACE
package config
