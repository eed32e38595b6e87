// Package validator checks supply files and output directories before unpacking.
package validator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Extension is the file name suffix of supply files, compared case-insensitively
const Extension = ".efd"

// FileInfo describes an input file
type FileInfo struct {
	Size     int64       `json:"size"`
	Modified time.Time   `json:"modified"`
	Mode     fs.FileMode `json:"mode"`
	Readable bool        `json:"readable"`
	Writable bool        `json:"writable"`
}

// NormalizePath expands a leading ~ and makes path absolute.
// Empty input and paths that cannot be resolved are returned unchanged.
func NormalizePath(path string) string {
	if path == "" {
		return path
	}

	expanded := path
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		expanded = filepath.Join(home, path[1:])
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return path
	}
	return abs
}

// ValidateEFDFile checks that path names an existing, readable, non-empty
// regular file with the .efd extension. Checks run in that order and the first
// failure is returned as *Error.
func ValidateEFDFile(path string) error {
	normalized := NormalizePath(path)

	info, err := os.Stat(normalized)
	if err != nil {
		return newError(KindFileNotFound, normalized, err)
	}

	if !info.Mode().IsRegular() {
		return newError(KindNotAFile, normalized, nil)
	}

	if !strings.HasSuffix(strings.ToLower(normalized), Extension) {
		return newError(KindInvalidFormat, normalized, nil)
	}

	if !canRead(normalized) {
		return newError(KindReadPermission, normalized, nil)
	}

	// Re-stat so a file truncated or replaced since the first check is caught.
	info, err = os.Stat(normalized)
	if err != nil {
		return newError(KindSizeUnreadable, normalized, err)
	}
	if info.Size() == 0 {
		return newError(KindEmptyFile, normalized, nil)
	}

	return nil
}

// ValidateOutputDirectory checks that dir is a writable directory, or that it
// can be created under its nearest existing ancestor.
func ValidateOutputDirectory(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return newError(KindEmptyOutputPath, dir, nil)
	}

	normalized := NormalizePath(dir)

	info, err := os.Stat(normalized)
	switch {
	case err == nil:
		if !info.IsDir() {
			return newError(KindOutputNotDirectory, normalized, nil)
		}
		if !canWrite(normalized) {
			return newError(KindWritePermission, normalized, nil)
		}
		return nil
	case errors.Is(err, fs.ErrNotExist):
	default:
		return newError(KindInvalidOutputPath, normalized, err)
	}

	parent, err := existingAncestor(normalized)
	if err != nil {
		return newError(KindInvalidOutputPath, normalized, err)
	}

	info, err = os.Stat(parent)
	if err != nil || !info.IsDir() {
		return newError(KindInvalidOutputPath, normalized, err)
	}
	if !canWrite(parent) {
		return newError(KindCreatePermission, normalized, nil)
	}

	return nil
}

// CreateOutputDirectory validates dir and creates it when missing.
func CreateOutputDirectory(dir string) error {
	if err := ValidateOutputDirectory(dir); err != nil {
		return err
	}

	normalized := NormalizePath(dir)
	if err := os.MkdirAll(normalized, 0755); err != nil {
		return newError(KindCreateFailed, normalized, err)
	}
	return nil
}

// GetFileInfo returns information about the file at path
func GetFileInfo(path string) (*FileInfo, error) {
	normalized := NormalizePath(path)

	info, err := os.Stat(normalized)
	if err != nil {
		return nil, err
	}

	return &FileInfo{
		Size:     info.Size(),
		Modified: info.ModTime(),
		Mode:     info.Mode(),
		Readable: canRead(normalized),
		Writable: canOpenForWrite(normalized, info),
	}, nil
}

// existingAncestor walks up from path until it finds an existing entry.
// The working directory is used when no ancestor exists.
func existingAncestor(path string) (string, error) {
	parent := filepath.Dir(path)
	for {
		_, err := os.Stat(parent)
		if err == nil {
			return parent, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}

		next := filepath.Dir(parent)
		if next == parent {
			break
		}
		parent = next
	}

	return os.Getwd()
}

func canRead(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// canWrite probes a directory by creating and removing a temporary file.
func canWrite(dir string) bool {
	f, err := os.CreateTemp(dir, ".efd-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}

func canOpenForWrite(path string, info fs.FileInfo) bool {
	if info.IsDir() {
		return canWrite(path)
	}
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
