package paths

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Home directory aliases recognized by ResolveAliased.
const (
	HomePathAlias     = "~/"
	HomePathLeafAlias = "~"
)

// FilePath is an immutable path value. It may name any kind of file
// (directory, symlink, regular file) or nothing at all: the empty path is
// the "no path" sentinel and is distinct from the root path.
//
// The raw string is stored exactly as given. FilePath never normalizes or
// validates it; legality is left to the OS when the path is used. Two values
// are equal only when their strings are equal, so "/a" and "/a/" differ.
type FilePath struct {
	path string
}

// New creates a FilePath from a raw string.
func New(path string) FilePath {
	return FilePath{path: path}
}

// IsEmpty reports whether the path holds no path at all.
func (p FilePath) IsEmpty() bool {
	return p.path == ""
}

// AbsolutePath returns the raw path string as constructed. It is absolute
// only if the caller built it from an absolute string; use
// Manager.Canonicalize for a guaranteed absolute form.
func (p FilePath) AbsolutePath() string {
	return p.path
}

// String implements fmt.Stringer.
func (p FilePath) String() string {
	return p.path
}

// Equal reports structural equality.
func (p FilePath) Equal(other FilePath) bool {
	return p.path == other.path
}

// Filename returns the last element of the path.
func (p FilePath) Filename() string {
	if p.IsEmpty() {
		return ""
	}
	return filepath.Base(p.path)
}

// Extension returns the filename extension including the dot.
func (p FilePath) Extension() string {
	return filepath.Ext(p.Filename())
}

// Stem returns the filename without its extension.
func (p FilePath) Stem() string {
	name := p.Filename()
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Parent returns the lexical parent directory. The empty path has no parent
// and is returned unchanged.
func (p FilePath) Parent() FilePath {
	if p.IsEmpty() {
		return p
	}
	return New(filepath.Dir(p.path))
}

// Complete resolves child against p. An absolute child replaces p, an empty
// child returns p, and a relative child is joined onto p.
func (p FilePath) Complete(child string) FilePath {
	switch {
	case child == "":
		return p
	case filepath.IsAbs(child), p.IsEmpty():
		return New(child)
	default:
		return New(filepath.Join(p.path, child))
	}
}

// IsWithin reports whether p lies inside scope (or is scope itself),
// comparing whole path segments.
func (p FilePath) IsWithin(scope FilePath) bool {
	if p.IsEmpty() || scope.IsEmpty() {
		return false
	}
	rel, err := filepath.Rel(scope.path, p.path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Match reports whether the path matches a doublestar glob pattern
// such as "**/*.go".
func (p FilePath) Match(pattern string) (bool, error) {
	if !doublestar.ValidatePathPattern(pattern) {
		return false, doublestar.ErrBadPattern
	}
	return doublestar.PathMatch(pattern, p.path)
}
