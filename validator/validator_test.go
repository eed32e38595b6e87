package validator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xishang0128/efd-unpacker-go/common/i18n"
)

func writeFile(t *testing.T, path string, data []byte) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func skipIfPrivileged(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}
}

func TestValidateEFDFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		path string
		want *Error
	}{
		{"valid", writeFile(t, filepath.Join(dir, "test.efd"), []byte("EFD test content")), nil},
		{"upper case extension", writeFile(t, filepath.Join(dir, "TEST.EFD"), []byte("x")), nil},
		{"missing", filepath.Join(dir, "nonexistent.efd"), ErrFileNotFound},
		{"directory", filepath.Join(dir), ErrNotAFile},
		{"wrong extension", writeFile(t, filepath.Join(dir, "test.txt"), []byte("test content")), ErrInvalidFormat},
		{"empty", writeFile(t, filepath.Join(dir, "empty.efd"), nil), ErrEmptyFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEFDFile(tt.path)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateEFDFileMessages(t *testing.T) {
	dir := t.TempDir()

	err := ValidateEFDFile(filepath.Join(dir, "nonexistent.efd"))
	assert.Contains(t, err.Error(), "does not exist")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	err = ValidateEFDFile(writeFile(t, filepath.Join(dir, "test.txt"), []byte("x")))
	assert.Contains(t, err.Error(), "Invalid file format")

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, KindInvalidFormat, verr.Kind)
}

func TestValidateEFDFileUnreadable(t *testing.T) {
	skipIfPrivileged(t)

	path := writeFile(t, filepath.Join(t.TempDir(), "locked.efd"), []byte("data"))
	require.NoError(t, os.Chmod(path, 0000))
	t.Cleanup(func() { os.Chmod(path, 0644) })

	assert.ErrorIs(t, ValidateEFDFile(path), ErrReadPermission)
}

func TestValidateOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, filepath.Join(dir, "file.txt"), []byte("x"))

	tests := []struct {
		name string
		path string
		want *Error
	}{
		{"existing", dir, nil},
		{"missing nested", filepath.Join(dir, "a", "b", "c"), nil},
		{"empty", "", ErrEmptyOutputPath},
		{"whitespace", "   ", ErrEmptyOutputPath},
		{"file", file, ErrOutputNotDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputDirectory(tt.path)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateOutputDirectoryUnderFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("ENOTDIR semantics differ on windows")
	}
	file := writeFile(t, filepath.Join(t.TempDir(), "file.txt"), []byte("x"))

	assert.ErrorIs(t, ValidateOutputDirectory(filepath.Join(file, "child")), ErrInvalidOutputPath)
}

func TestValidateOutputDirectoryReadOnly(t *testing.T) {
	skipIfPrivileged(t)

	dir := t.TempDir()
	ro := filepath.Join(dir, "ro")
	require.NoError(t, os.Mkdir(ro, 0555))
	t.Cleanup(func() { os.Chmod(ro, 0755) })

	assert.ErrorIs(t, ValidateOutputDirectory(ro), ErrWritePermission)
	assert.ErrorIs(t, ValidateOutputDirectory(filepath.Join(ro, "new", "dir")), ErrCreatePermission)
}

func TestCreateOutputDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "output", "nested")

	require.NoError(t, CreateOutputDirectory(out))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Existing directories are accepted as is.
	assert.NoError(t, CreateOutputDirectory(out))
	assert.ErrorIs(t, CreateOutputDirectory(""), ErrEmptyOutputPath)
}

func TestCreateFailedMessage(t *testing.T) {
	t.Cleanup(func() { i18n.SetLanguage(i18n.English) })

	err := newError(KindCreateFailed, "/x", errors.New("disk full"))
	assert.Equal(t, "Failed to create output directory: disk full", err.Error())

	i18n.SetLanguage(i18n.Russian)
	assert.Equal(t, "Не удалось создать папку для распаковки: disk full", err.Error())
	assert.Equal(t, "Файл пуст", ErrEmptyFile.Error())
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "", NormalizePath(""))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, home, NormalizePath("~"))
	assert.Equal(t, filepath.Join(home, "tmplts"), NormalizePath("~/tmplts"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "rel", "file.efd"), NormalizePath(filepath.Join("rel", "file.efd")))
}

func TestGetFileInfo(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "info.efd"), []byte("12345"))

	info, err := GetFileInfo(path)
	require.NoError(t, err)
	assert.EqualValues(t, 5, info.Size)
	assert.True(t, info.Readable)
	assert.True(t, info.Writable)
	assert.False(t, info.Modified.IsZero())

	_, err = GetFileInfo(filepath.Join(t.TempDir(), "missing.efd"))
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "empty-file", KindEmptyFile.String())
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestKindMessages(t *testing.T) {
	i18n.SetLanguage(i18n.English)

	tests := []struct {
		kind Kind
		name string
		msg  string
	}{
		{KindFileNotFound, "file-not-found", "File does not exist"},
		{KindNotAFile, "not-a-file", "Path is not a file"},
		{KindInvalidFormat, "invalid-format", "Invalid file format. Expected .efd file"},
		{KindReadPermission, "permission-denied", "No permission to read file"},
		{KindEmptyFile, "empty-file", "File is empty"},
		{KindSizeUnreadable, "size-unreadable", "Cannot access file size"},
		{KindEmptyOutputPath, "empty-output-path", "Output directory path is empty"},
		{KindOutputNotDirectory, "output-not-directory", "Output path exists but is not a directory"},
		{KindWritePermission, "output-permission-denied", "No permission to write to output directory"},
		{KindCreatePermission, "output-create-denied", "No permission to create output directory"},
		{KindInvalidOutputPath, "invalid-output-path", "Invalid output directory path"},
		{KindCreateFailed, "directory-creation-failed", "Failed to create output directory: " + fs.ErrPermission.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.kind.String())

			err := newError(tt.kind, "/x", fs.ErrPermission)
			assert.Equal(t, tt.msg, err.Error())
			assert.ErrorIs(t, err, &Error{Kind: tt.kind})
			assert.ErrorIs(t, err, fs.ErrPermission)
		})
	}

	assert.Equal(t, "unknown", Kind(99).Message())
}
