package filesystem

import (
	"os"
	"path/filepath"

	"github.com/GriffinCanCode/AgentOS/desktop/internal/shared/paths"
	"github.com/spf13/afero"
)

// DefaultDirPerm is the mode used for directories created by MkdirAll.
const DefaultDirPerm os.FileMode = 0755

// Local is the OS filesystem provider. Stat and directory creation go
// through an afero.Fs (the real OS by default); the working directory and
// home lookup always use the process state.
type Local struct {
	fs      afero.Fs
	home    string
	dirPerm os.FileMode
}

var _ paths.Provider = (*Local)(nil)

// Option configures a Local provider.
type Option func(*Local)

// WithFs replaces the backing filesystem used for stat and mkdir.
func WithFs(fs afero.Fs) Option {
	return func(l *Local) {
		if fs != nil {
			l.fs = fs
		}
	}
}

// WithHome overrides the home directory reported by HomeDir.
func WithHome(home string) Option {
	return func(l *Local) {
		l.home = home
	}
}

// WithDirPerm sets the mode for created directories.
func WithDirPerm(perm os.FileMode) Option {
	return func(l *Local) {
		if perm != 0 {
			l.dirPerm = perm
		}
	}
}

// NewLocal creates a provider backed by the host OS.
func NewLocal(opts ...Option) *Local {
	l := &Local{
		fs:      afero.NewOsFs(),
		dirPerm: DefaultDirPerm,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Exists reports whether path exists. A missing path is not an error.
func (l *Local) Exists(path string) (bool, error) {
	return afero.Exists(l.fs, path)
}

// MkdirAll creates path and any missing parents.
func (l *Local) MkdirAll(path string) error {
	return l.fs.MkdirAll(path, l.dirPerm)
}

// Getwd returns the process working directory.
func (l *Local) Getwd() (string, error) {
	return os.Getwd()
}

// Chdir changes the process working directory.
func (l *Local) Chdir(path string) error {
	return os.Chdir(path)
}

// HomeDir returns the configured home, the user's home directory, or the
// temp directory when neither is known.
func (l *Local) HomeDir() string {
	if l.home != "" {
		return l.home
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home
	}
	return os.TempDir()
}

// Join joins elem onto base.
func (l *Local) Join(base, elem string) string {
	return filepath.Join(base, elem)
}

// IsAbs reports whether path is absolute on the host OS.
func (l *Local) IsAbs(path string) bool {
	return filepath.IsAbs(path)
}

// Abs returns the absolute path with symlinks evaluated. The path must exist.
func (l *Local) Abs(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
