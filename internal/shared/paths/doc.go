// Package paths provides the path abstraction of the desktop OS layer.
//
// A FilePath is an immutable value wrapping a raw path string. Pure queries
// (IsEmpty, AbsolutePath, Filename, Complete, ...) never touch the disk.
// Everything that needs the operating system goes through a Manager, which
// calls a Provider and reports absorbed failures to an ErrorSink.
//
// # Failure Semantics
//
// Fallible operations return *Error, classified as one of:
//   - KindNotFound: the path does not exist
//   - KindPermissionDenied: the OS refused access
//   - KindIOError: any other OS failure (Code carries the errno)
//   - KindUnexpected: a non-OS failure or a provider panic
//
// Exists, ExistsAt and SafeCurrentPath never fail. They log what went wrong
// to the sink and fall back to false or to a usable directory.
//
// # Directory Structure
//
// Layout describes the per-user application tree, rooted at ~/.agentos by
// default:
//
//	~/.agentos/
//	  ├── native-apps/
//	  ├── apps/
//	  ├── user/{documents,downloads,projects}/
//	  ├── system/
//	  ├── lib/
//	  ├── cache/
//	  └── tmp/
//
// # Usage
//
//	m := paths.NewManager(filesystem.NewLocal(), logger)
//
//	src := m.ResolveAliasedPath("~/project/src", m.HomePath())
//	if err := m.CreateDirectory(src, ""); err != nil {
//	    return err
//	}
//
//	cwd := m.SafeCurrentPath(m.HomePath())
//
//	layout := m.Layout(paths.DefaultRoot)
//	if err := layout.Ensure(m); err != nil {
//	    return err
//	}
package paths
