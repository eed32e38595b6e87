// Package osutil locates 1C:Enterprise template folders and opens folders in
// the platform file manager.
package osutil

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// TemplatesLocationKey is the 1cestart.cfg key that lists template folders
const TemplatesLocationKey = "ConfigurationTemplatesLocation"

// DefaultTemplatesDir returns the folder the 1C launcher uses for templates
// when nothing else is configured.
func DefaultTemplatesDir() string {
	home, _ := os.UserHomeDir()
	cwd, _ := os.Getwd()
	return defaultTemplatesDir(runtime.GOOS, os.Getenv, home, cwd)
}

func defaultTemplatesDir(goos string, getenv func(string) string, home, cwd string) string {
	if goos == "windows" {
		if appData := getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "1C", "1cv8", "tmplts")
		}
		return filepath.Join(cwd, "tmplts")
	}
	return filepath.Join(home, ".1cv8", "1C", "1cv8", "tmplts")
}

// CEStartConfigPaths lists the 1cestart.cfg files checked on this platform
func CEStartConfigPaths() []string {
	home, _ := os.UserHomeDir()
	return ceStartConfigPaths(runtime.GOOS, os.Getenv, home)
}

func ceStartConfigPaths(goos string, getenv func(string) string, home string) []string {
	if goos != "windows" {
		if home == "" {
			return nil
		}
		return []string{filepath.Join(home, ".1C", "1cestart", "1cestart.cfg")}
	}

	var paths []string
	for _, env := range []string{"APPDATA", "ALLUSERSPROFILE"} {
		if dir := getenv(env); dir != "" {
			paths = append(paths, filepath.Join(dir, "1C", "1CEStart", "1cestart.cfg"))
		}
	}
	return paths
}

// TemplatesLocationsFrom1CEStart returns the template folders configured in
// every readable 1cestart.cfg, in file order. Missing files are skipped.
func TemplatesLocationsFrom1CEStart() []string {
	var out []string
	for _, p := range CEStartConfigPaths() {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		out = append(out, ParseCEStart(data)...)
	}
	return out
}

// ParseCEStart extracts the ConfigurationTemplatesLocation values of a
// 1cestart.cfg. The file may be UTF-16 with a BOM or UTF-8.
func ParseCEStart(data []byte) []string {
	text, err := decodeText(data)
	if err != nil {
		return nil
	}

	var out []string
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		key, value, ok := strings.Cut(sc.Text(), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), TemplatesLocationKey) {
			continue
		}
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	return out
}

func decodeText(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	// UTF-16LE without BOM still shows NUL high bytes on ASCII text
	if !hasBOM(data) && len(data) >= 2 && data[0] != 0 && data[1] == 0 {
		dec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	}
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, []byte{0xFF, 0xFE}) ||
		bytes.HasPrefix(data, []byte{0xFE, 0xFF}) ||
		bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF})
}

// OpenFolder shows path in the platform file manager
func OpenFolder(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", path)
	}

	name, args := openCommand(runtime.GOOS, path)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("run %s: %w", name, err)
	}
	// explorer.exe exits with 1 even on success, so the process is not awaited
	go cmd.Wait()
	return nil
}

func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "explorer", []string{filepath.Clean(path)}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}
