package paths

import (
	"errors"
	"fmt"
)

// Manager performs the path operations that need the operating system.
// It owns no state besides its collaborators and holds no locks; the
// process working directory it reads and changes is shared by the whole
// process, so callers must serialize MakeCurrentPath themselves.
type Manager struct {
	provider Provider
	sink     ErrorSink
	observer Observer
}

// Option configures a Manager.
type Option func(*Manager)

// WithObserver attaches an operation observer.
func WithObserver(o Observer) Option {
	return func(m *Manager) {
		if o != nil {
			m.observer = o
		}
	}
}

// NewManager creates a manager over provider. Absorbed failures are sent to
// sink; a nil sink discards them.
func NewManager(provider Provider, sink ErrorSink, opts ...Option) *Manager {
	if sink == nil {
		sink = nopSink{}
	}
	m := &Manager{
		provider: provider,
		sink:     sink,
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

var _ Existence = (*Manager)(nil)

// ============================================================================
// Queries
// ============================================================================

// HomePath returns the user's home directory as reported by the provider.
func (m *Manager) HomePath() FilePath {
	return New(m.provider.HomeDir())
}

// Exists reports whether p exists. The empty path never exists. Stat
// failures are logged and reported as false; use Stat to tell them apart.
func (m *Manager) Exists(p FilePath) bool {
	return m.exists(OpExists, p.path)
}

// ExistsAt is Exists for a raw string.
func (m *Manager) ExistsAt(path string) bool {
	return m.exists(OpExistsAt, path)
}

func (m *Manager) exists(op, path string) bool {
	if path == "" {
		return false
	}
	ok, err := m.stat(op, path)
	if err != nil {
		m.absorb(op, path, err)
		return false
	}
	m.observer.ObserveOperation(op, nil)
	return ok
}

// Stat is the fallible existence query: a missing path is (false, nil) and
// a path that could not be checked returns an error.
func (m *Manager) Stat(p FilePath) (bool, error) {
	if p.IsEmpty() {
		return false, nil
	}
	ok, err := m.stat(OpStat, p.path)
	m.observer.ObserveOperation(OpStat, err)
	return ok, err
}

func (m *Manager) stat(op, path string) (bool, error) {
	var exists bool
	err := m.call(op, path, func() error {
		var statErr error
		exists, statErr = m.provider.Exists(path)
		return statErr
	})
	return exists, err
}

// CurrentPath returns the process working directory.
func (m *Manager) CurrentPath() (FilePath, error) {
	cwd, err := m.getwd(OpCurrentPath)
	m.observer.ObserveOperation(OpCurrentPath, err)
	return cwd, err
}

func (m *Manager) getwd(op string) (FilePath, error) {
	var cwd string
	err := m.call(op, "", func() error {
		var wdErr error
		cwd, wdErr = m.provider.Getwd()
		return wdErr
	})
	if err != nil {
		return FilePath{}, err
	}
	return New(cwd), nil
}

// SafeCurrentPath returns the working directory. If it cannot be read (for
// example because it was deleted), revertTo is used when it exists and the
// user's home directory otherwise; the process is moved there and the
// fallback is returned. It never fails: every error along the way is logged.
func (m *Manager) SafeCurrentPath(revertTo FilePath) FilePath {
	cwd, err := m.getwd(OpSafeCurrentPath)
	if err == nil {
		m.observer.ObserveOperation(OpSafeCurrentPath, nil)
		return cwd
	}
	m.absorb(OpSafeCurrentPath, "", err)

	safePath := revertTo
	if !m.Exists(safePath) {
		safePath = m.HomePath()
	}

	if err := m.MakeCurrentPath(safePath, false); err != nil {
		m.absorb(OpSafeCurrentPath, safePath.path, err)
	}
	return safePath
}

// Canonicalize returns an absolute form of p with symlinks evaluated.
func (m *Manager) Canonicalize(p FilePath) (FilePath, error) {
	if p.IsEmpty() {
		err := &Error{Kind: KindUnexpected, Op: OpCanonicalize, Err: ErrEmptyPath}
		m.observer.ObserveOperation(OpCanonicalize, err)
		return FilePath{}, err
	}

	var abs string
	err := m.call(OpCanonicalize, p.path, func() error {
		var absErr error
		abs, absErr = m.provider.Abs(p.path)
		return absErr
	})
	m.observer.ObserveOperation(OpCanonicalize, err)
	if err != nil {
		return FilePath{}, err
	}
	return New(abs), nil
}

// ============================================================================
// Alias resolution
// ============================================================================

// ResolveAliasedPath expands the home alias in aliasedPath. Paths without an
// alias resolve against the working directory: absolute paths are kept and
// relative ones are joined onto SafeCurrentPath(userHome). A non-empty input
// never resolves to the empty path.
func (m *Manager) ResolveAliasedPath(aliasedPath string, userHome FilePath) FilePath {
	if resolved, ok := resolveHomeAlias(aliasedPath, userHome); ok {
		return resolved
	}
	if m.provider.IsAbs(aliasedPath) {
		return New(aliasedPath)
	}
	cwd := m.SafeCurrentPath(userHome)
	return New(m.provider.Join(cwd.path, aliasedPath))
}

// ============================================================================
// Mutations
// ============================================================================

// MakeCurrentPath changes the process working directory to p, creating it
// first when autoCreate is set.
func (m *Manager) MakeCurrentPath(p FilePath, autoCreate bool) error {
	err := m.makeCurrentPath(p, autoCreate)
	m.observer.ObserveOperation(OpMakeCurrentPath, err)
	return err
}

func (m *Manager) makeCurrentPath(p FilePath, autoCreate bool) error {
	if autoCreate {
		if err := m.EnsureDirectory(p); err != nil {
			return err
		}
	}
	return m.call(OpMakeCurrentPath, p.path, func() error {
		return m.provider.Chdir(p.path)
	})
}

// EnsureDirectory creates p unless it already exists.
func (m *Manager) EnsureDirectory(p FilePath) error {
	if m.Exists(p) {
		m.observer.ObserveOperation(OpEnsureDirectory, nil)
		return nil
	}
	err := m.CreateDirectory(p, "")
	m.observer.ObserveOperation(OpEnsureDirectory, err)
	return err
}

// CreateDirectory creates p, or p joined with relative when relative is
// non-empty, along with every missing parent. Creating a directory that
// already exists succeeds.
func (m *Manager) CreateDirectory(p FilePath, relative string) error {
	target := p.path
	if relative != "" {
		target = m.provider.Join(p.path, relative)
	}

	err := m.call(OpCreateDirectory, p.path, func() error {
		return m.provider.MkdirAll(target)
	})
	var pathErr *Error
	if errors.As(err, &pathErr) {
		pathErr.Target = target
	}
	m.observer.ObserveOperation(OpCreateDirectory, err)
	return err
}

// ============================================================================
// Helpers
// ============================================================================

// call runs a provider call, turning a returned error or a panic into *Error.
func (m *Manager) call(op, path string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Error{Kind: KindUnexpected, Op: op, Path: path, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if callErr := fn(); callErr != nil {
		return newError(op, path, callErr)
	}
	return nil
}

// absorb records a failure that will not be returned to the caller.
func (m *Manager) absorb(op, path string, err error) {
	m.sink.LogError(path, err)
	m.observer.ObserveAbsorbed(op)
}
