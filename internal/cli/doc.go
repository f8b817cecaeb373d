// Package cli implements pathctl, a diagnostic command line over the path
// layer.
//
// Commands:
//   - resolve: expand ~ and relative paths
//   - canonical: absolute, symlink-free form of an existing path
//   - exists: existence report, --strict to fail on stat errors
//   - mkdir: recursive directory creation
//   - cwd: working directory with fallback (--revert-to)
//   - chdir: change directory (--create)
//   - layout: show or create the ~/.agentos tree (--ensure, --app)
//
// Configuration comes from the environment (see infrastructure/config);
// --log-level and --log-dev override it. Logs go to stderr, results to
// stdout.
package cli
