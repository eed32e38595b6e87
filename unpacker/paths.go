package unpacker

import (
	"errors"
	"path"
	"path/filepath"
	"strings"
)

// ErrUnsafePath is returned for entry names that would land outside the output directory
var ErrUnsafePath = errors.New("unsafe entry path")

// EntryPath maps a container entry name to a path relative to the output
// directory. Both \ and / separate directories.
func EntryPath(name string) (string, error) {
	n := strings.ReplaceAll(name, `\`, "/")
	if strings.TrimSpace(n) == "" {
		return "", ErrUnsafePath
	}
	if strings.HasPrefix(n, "/") || (len(n) >= 2 && n[1] == ':') {
		return "", ErrUnsafePath
	}

	cleaned := path.Clean(n)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrUnsafePath
	}

	rel := filepath.FromSlash(cleaned)
	if !filepath.IsLocal(rel) {
		return "", ErrUnsafePath
	}
	return rel, nil
}

// isDirEntry reports names that only describe a directory
func isDirEntry(name string) bool {
	return strings.HasSuffix(name, `\`) || strings.HasSuffix(name, "/")
}
