package paths

// Provider is the OS filesystem contract the path layer calls into.
//
// The process working directory is modeled only through the Getwd/Chdir
// pair; nothing in this package caches it.
type Provider interface {
	// Exists reports whether path exists. A missing path is (false, nil);
	// any other stat failure is returned as an error.
	Exists(path string) (bool, error)

	// MkdirAll creates path and every missing parent. Existing directories
	// are not an error.
	MkdirAll(path string) error

	// Getwd returns the process working directory.
	Getwd() (string, error)

	// Chdir sets the process working directory.
	Chdir(path string) error

	// HomeDir returns the current user's home directory.
	HomeDir() string

	// Join joins elem onto base using the host separator.
	Join(base, elem string) string

	// IsAbs reports whether path is absolute on the host OS.
	IsAbs(path string) bool

	// Abs returns an absolute, symlink-free form of path.
	Abs(path string) (string, error)
}

// ErrorSink receives failures that an operation absorbs instead of returning.
type ErrorSink interface {
	LogError(path string, err error)
}

// Observer is notified of operation outcomes, typically for metrics.
type Observer interface {
	ObserveOperation(op string, err error)
	ObserveAbsorbed(op string)
}

// Existence is the capability of answering "does this path exist" without
// failing, for both path values and raw strings.
type Existence interface {
	Exists(p FilePath) bool
	ExistsAt(path string) bool
}

type nopSink struct{}

func (nopSink) LogError(string, error) {}

type nopObserver struct{}

func (nopObserver) ObserveOperation(string, error) {}
func (nopObserver) ObserveAbsorbed(string)         {}
