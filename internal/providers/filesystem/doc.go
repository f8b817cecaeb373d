// Package filesystem provides the OS filesystem provider used by the path layer.
//
// Local implements paths.Provider:
//   - Exists: stat through afero, missing paths are not errors
//   - MkdirAll: recursive, idempotent directory creation
//   - Getwd/Chdir: the process-wide working directory
//   - HomeDir: the user's home directory (overridable)
//   - Join/IsAbs/Abs: host path syntax
//
// Stat and mkdir can be pointed at any afero.Fs, which lets tests run
// against an in-memory tree:
//
//	local := filesystem.NewLocal(filesystem.WithFs(afero.NewMemMapFs()))
//
// Example Usage:
//
//	m := paths.NewManager(filesystem.NewLocal(), logger)
//	ok := m.ExistsAt("/etc/hosts")
package filesystem
