package file

import (
	"bytes"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xishang0128/efd-unpacker-go/validator"
)

func TestLocalFileRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0644))

	f, err := NewLocalFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.EqualValues(t, 10, f.Size())

	data, err := f.Read(2, 3)
	require.NoError(t, err)
	assert.Equal(t, "234", string(data))

	data, err = f.Read(8, 100)
	require.NoError(t, err)
	assert.Equal(t, "89", string(data))

	data, err = f.Read(20, 4)
	require.NoError(t, err)
	assert.Empty(t, data)

	all, err := io.ReadAll(f.Section())
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(all))
}

func TestLocalFileMissing(t *testing.T) {
	_, err := NewLocalFile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSpoolFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSpoolFile(dir, bytes.NewReader([]byte("spooled data")))
	require.NoError(t, err)

	assert.EqualValues(t, 12, s.Size())
	assert.Equal(t, dir, filepath.Dir(s.Name()))

	data, err := s.Read(8, 4)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))

	name := s.Name()
	require.NoError(t, s.Close())
	_, err = os.Stat(name)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writeEFD(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte{0x01}, 0644))
	return path
}

func TestResolveArgument(t *testing.T) {
	dir := t.TempDir()
	path := writeEFD(t, dir, "my supply.efd")

	got, ok := ResolveArgument(path)
	assert.True(t, ok)
	assert.Equal(t, path, got)

	fileURL := SchemeFile + (&url.URL{Path: filepath.ToSlash(path)}).EscapedPath()
	got, ok = ResolveArgument(fileURL)
	assert.True(t, ok, fileURL)
	assert.Equal(t, filepath.Clean(path), filepath.Clean(got))

	_, ok = ResolveArgument("")
	assert.False(t, ok)

	_, ok = ResolveArgument(filepath.Join(dir, "missing.efd"))
	assert.False(t, ok)
}

func TestResolveArgumentRelative(t *testing.T) {
	dir := t.TempDir()
	writeEFD(t, dir, "rel.efd")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	got, ok := ResolveArgument("rel.efd")
	require.True(t, ok)
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "rel.efd", filepath.Base(got))
}

func TestResolveArgumentEFDScheme(t *testing.T) {
	if os.PathSeparator != '/' {
		t.Skip("efd:// paths are drive relative on windows")
	}
	dir := t.TempDir()
	writeEFD(t, dir, "scheme.efd")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	// The leading slash is dropped so the path resolves against the working directory.
	got, ok := ResolveArgument(SchemeEFD + "host/scheme.efd")
	require.True(t, ok)
	assert.Equal(t, "scheme.efd", filepath.Base(got))
}

func TestResolvePathReportsValidation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	got, err := ResolvePath(path)
	assert.Equal(t, path, got)
	assert.ErrorIs(t, err, validator.ErrInvalidFormat)
}
