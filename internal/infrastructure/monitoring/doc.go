/*
Package monitoring provides metrics collection for the path layer.

# Overview

PathMetrics implements paths.Observer and exports Prometheus counters for
every path operation the Manager performs.

# Metrics

  - <ns>_path_operations_total{op,status}: operations by outcome
  - <ns>_path_errors_total{op,kind}: failures by error kind
  - <ns>_path_absorbed_errors_total{op}: failures logged and replaced by a fallback

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewPathMetrics(reg, "desktop")
	m := paths.NewManager(local, logger, paths.WithObserver(metrics))
*/
package monitoring
