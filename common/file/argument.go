package file

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/xishang0128/efd-unpacker-go/validator"
)

const (
	SchemeFile = "file://"
	SchemeEFD  = "efd://"
)

var errEmptyArgument = errors.New("empty file argument")

// ResolveArgument turns a command line or file association argument into an
// absolute path of a valid .efd file. file:// URLs are percent-decoded, efd://
// URLs contribute their path without the leading slash.
func ResolveArgument(arg string) (string, bool) {
	path, err := ResolvePath(arg)
	if err != nil {
		return "", false
	}
	return path, true
}

// ResolvePath is ResolveArgument reporting why an argument was rejected. The
// resolved path is returned even when validation fails.
func ResolvePath(arg string) (string, error) {
	path := arg

	switch {
	case strings.HasPrefix(path, SchemeFile):
		decoded, err := url.PathUnescape(strings.TrimPrefix(path, SchemeFile))
		if err != nil {
			return "", err
		}
		path = decoded
	case strings.HasPrefix(path, SchemeEFD):
		u, err := url.Parse(path)
		if err != nil {
			return "", err
		}
		path = strings.TrimPrefix(u.Path, "/")
	}

	if strings.TrimSpace(path) == "" {
		return "", errEmptyArgument
	}

	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", err
		}
		path = abs
	}

	return path, validator.ValidateEFDFile(path)
}
