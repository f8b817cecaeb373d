package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalExistsInMemory(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/home/alice/project", 0o755))
	require.NoError(t, afero.WriteFile(mem, "/home/alice/notes.txt", []byte("hi"), 0o644))

	local := NewLocal(WithFs(mem))

	tests := []struct {
		path string
		want bool
	}{
		{"/home/alice", true},
		{"/home/alice/project", true},
		{"/home/alice/notes.txt", true},
		{"/home/alice/missing", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ok, err := local.Exists(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestLocalMkdirAllIsIdempotent(t *testing.T) {
	mem := afero.NewMemMapFs()
	local := NewLocal(WithFs(mem), WithDirPerm(0o700))

	require.NoError(t, local.MkdirAll("/a/b/c"))
	require.NoError(t, local.MkdirAll("/a/b/c"))

	for _, dir := range []string{"/a", "/a/b", "/a/b/c"} {
		info, err := mem.Stat(dir)
		require.NoError(t, err, dir)
		assert.True(t, info.IsDir(), dir)
	}

	info, err := mem.Stat("/a/b/c")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}

func TestLocalMkdirAllOverFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	err := NewLocal().MkdirAll(filepath.Join(file, "sub"))
	require.Error(t, err)

	var pathErr *fs.PathError
	require.True(t, errors.As(err, &pathErr))
	assert.True(t, errors.Is(err, syscall.ENOTDIR))
}

func TestLocalOptions(t *testing.T) {
	local := NewLocal(WithFs(nil), WithDirPerm(0))

	assert.NotNil(t, local.fs)
	assert.Equal(t, DefaultDirPerm, local.dirPerm)
}

func TestLocalHomeDir(t *testing.T) {
	assert.Equal(t, "/srv/home", NewLocal(WithHome("/srv/home")).HomeDir())

	t.Setenv("HOME", "/tmp/fake-home")
	assert.Equal(t, "/tmp/fake-home", NewLocal().HomeDir())

	t.Setenv("HOME", "")
	assert.Equal(t, os.TempDir(), NewLocal().HomeDir())
}

func TestLocalWorkingDirectory(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	chdirForTest(t, dir)

	local := NewLocal()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, local.MkdirAll(sub))
	require.NoError(t, local.Chdir(sub))

	cwd, err := local.Getwd()
	require.NoError(t, err)
	assert.Equal(t, sub, cwd)

	err = local.Chdir(filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLocalPathSyntax(t *testing.T) {
	local := NewLocal()

	assert.Equal(t, "/a/b", local.Join("/a", "b"))
	assert.Equal(t, "/a/b", local.Join("/a/", "./b"))
	assert.True(t, local.IsAbs("/a"))
	assert.False(t, local.IsAbs("a"))
	assert.False(t, local.IsAbs("~/a"))
}

func TestLocalAbs(t *testing.T) {
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	chdirForTest(t, dir)

	target := filepath.Join(dir, "real")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

	local := NewLocal()

	abs, err := local.Abs("link")
	require.NoError(t, err)
	assert.Equal(t, target, abs)

	_, err = local.Abs("missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
