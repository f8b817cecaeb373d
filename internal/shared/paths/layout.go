package paths

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
)

// DefaultRoot is the aliased root of the per-user application tree.
const DefaultRoot = "~/.agentos"

// Layout subdirectories, relative to the root.
const (
	NativeAppsDir = "native-apps"
	AppsDir       = "apps"
	UserDir       = "user"
	SystemDir     = "system"
	LibDir        = "lib"
	CacheDir      = "cache"
	TmpDir        = "tmp"
)

// User subdirectories, relative to the root.
var (
	DocumentsDir = filepath.Join(UserDir, "documents")
	DownloadsDir = filepath.Join(UserDir, "downloads")
	ProjectsDir  = filepath.Join(UserDir, "projects")
)

// Layout is the canonical directory tree of the desktop application.
//
//	<root>/
//	  ├── native-apps/   (prebuilt applications)
//	  ├── apps/          (user apps)
//	  ├── user/
//	  │   ├── documents/
//	  │   ├── downloads/
//	  │   └── projects/
//	  ├── system/
//	  ├── lib/
//	  ├── cache/
//	  └── tmp/
type Layout struct {
	Root FilePath
}

// NewLayout returns the layout rooted at root.
func NewLayout(root FilePath) Layout {
	return Layout{Root: root}
}

// Layout resolves an aliased root such as DefaultRoot against the user's
// home directory.
func (m *Manager) Layout(aliasedRoot string) Layout {
	if aliasedRoot == "" {
		aliasedRoot = DefaultRoot
	}
	return NewLayout(m.ResolveAliasedPath(aliasedRoot, m.HomePath()))
}

func (l Layout) NativeApps() FilePath { return l.Root.Complete(NativeAppsDir) }
func (l Layout) Apps() FilePath       { return l.Root.Complete(AppsDir) }
func (l Layout) User() FilePath       { return l.Root.Complete(UserDir) }
func (l Layout) System() FilePath     { return l.Root.Complete(SystemDir) }
func (l Layout) Lib() FilePath        { return l.Root.Complete(LibDir) }
func (l Layout) Cache() FilePath      { return l.Root.Complete(CacheDir) }
func (l Layout) Tmp() FilePath        { return l.Root.Complete(TmpDir) }
func (l Layout) Documents() FilePath  { return l.Root.Complete(DocumentsDir) }
func (l Layout) Downloads() FilePath  { return l.Root.Complete(DownloadsDir) }
func (l Layout) Projects() FilePath   { return l.Root.Complete(ProjectsDir) }

// StandardDirectories returns all directories that should exist.
func (l Layout) StandardDirectories() []FilePath {
	return []FilePath{
		l.NativeApps(),
		l.Apps(),
		l.User(),
		l.System(),
		l.Lib(),
		l.Cache(),
		l.Tmp(),
		l.Documents(),
		l.Downloads(),
		l.Projects(),
	}
}

// Ensure creates every standard directory that is missing. It keeps going
// after a failure and returns all failures combined.
func (l Layout) Ensure(m *Manager) error {
	var errs error
	for _, dir := range l.StandardDirectories() {
		errs = multierr.Append(errs, m.EnsureDirectory(dir))
	}
	return errs
}

// IsUserspacePath checks if p is inside a directory apps may write to.
func (l Layout) IsUserspacePath(p FilePath) bool {
	return p.IsWithin(l.Apps()) ||
		p.IsWithin(l.User()) ||
		p.IsWithin(l.Tmp()) ||
		p.IsWithin(l.Cache())
}

// IsSystemPath checks if p is inside the system directory.
func (l Layout) IsSystemPath(p FilePath) bool {
	return p.IsWithin(l.System())
}

// App holds the directories of one application.
type App struct {
	ID     string
	layout Layout
}

// App returns the paths of the application with the given ID.
func (l Layout) App(appID string) App {
	return App{ID: appID, layout: l}
}

// Root returns the app's root directory.
func (a App) Root() FilePath {
	return a.layout.Apps().Complete(a.ID)
}

// DataDir returns the app's data directory.
func (a App) DataDir() FilePath {
	return a.Root().Complete("data")
}

// ConfigDir returns the app's config directory.
func (a App) ConfigDir() FilePath {
	return a.Root().Complete("config")
}

// CacheDir returns the app's cache directory.
func (a App) CacheDir() FilePath {
	return a.layout.Cache().Complete(a.ID)
}

// TempDir returns the app's temp directory.
func (a App) TempDir() FilePath {
	return a.layout.Tmp().Complete(a.ID)
}

// Ensure creates the app's data, config, cache and temp directories.
func (a App) Ensure(m *Manager) error {
	if err := ValidateAppID(a.ID); err != nil {
		return err
	}
	var errs error
	for _, dir := range []FilePath{a.DataDir(), a.ConfigDir(), a.CacheDir(), a.TempDir()} {
		errs = multierr.Append(errs, m.EnsureDirectory(dir))
	}
	return errs
}

// ValidateAppID checks if an app ID is valid for path construction.
func ValidateAppID(appID string) error {
	if appID == "" {
		return fmt.Errorf("app ID cannot be empty")
	}
	if filepath.IsAbs(appID) {
		return fmt.Errorf("app ID cannot be an absolute path")
	}
	if filepath.Clean(appID) != appID || appID == "." || appID == ".." ||
		strings.HasPrefix(appID, ".."+string(filepath.Separator)) {
		return fmt.Errorf("app ID contains invalid path components")
	}
	return nil
}
