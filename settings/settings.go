// Package settings persists the output folder of the last successful unpack
// and builds the list of suggested output folders.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xishang0128/efd-unpacker-go/common/i18n"
	"github.com/xishang0128/efd-unpacker-go/common/osutil"
)

const (
	// EnvSettingsFile overrides the settings file location
	EnvSettingsFile = "EFD_UNPACKER_SETTINGS_FILE"

	appDir   = "efd_unpacker"
	fileName = "settings.json"
)

// Values is the on-disk document
type Values struct {
	OutputPath string `json:"output_path,omitempty"`
}

// PathItem is one suggested output folder
type PathItem struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// Store reads and writes the settings file
type Store struct {
	path string

	// Overridable for tests
	defaultPath  func() string
	ceStartPaths func() []string

	mu sync.Mutex
}

// DefaultFile returns the settings file location
func DefaultFile() (string, error) {
	if p := os.Getenv(EnvSettingsFile); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Open returns a store backed by DefaultFile
func Open() (*Store, error) {
	p, err := DefaultFile()
	if err != nil {
		return nil, fmt.Errorf("locate settings file: %w", err)
	}
	return New(p), nil
}

// New returns a store backed by the file at path. The file is created on the
// first write.
func New(path string) *Store {
	return &Store{
		path:         path,
		defaultPath:  osutil.DefaultTemplatesDir,
		ceStartPaths: osutil.TemplatesLocationsFrom1CEStart,
	}
}

// Path returns the settings file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file. A missing file yields empty Values.
func (s *Store) Load() (Values, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (Values, error) {
	var v Values
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return v, nil
	}
	if err != nil {
		return v, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return v, nil
}

// DefaultOutputPath is the templates folder used when nothing was stored
func (s *Store) DefaultOutputPath() string {
	return s.defaultPath()
}

// OutputPath returns the last used output folder, or the default one.
// Unreadable settings fall back to the default.
func (s *Store) OutputPath() string {
	v, err := s.Load()
	if err != nil || v.OutputPath == "" {
		return s.defaultPath()
	}
	return v.OutputPath
}

// SetOutputPath stores path as the last used output folder
func (s *Store) SetOutputPath(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.load()
	if err != nil {
		v = Values{}
	}
	v.OutputPath = path
	return s.save(v)
}

// Reset forgets the last used output folder
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.load()
	if err != nil {
		v = Values{}
	}
	v.OutputPath = ""
	return s.save(v)
}

func (s *Store) save(v Values) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+fileName+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// OutputPathItems lists the suggested output folders in display order:
// the manual selection (when it differs from the last used folder), the last
// used folder, the folders from 1cestart.cfg and the default folder. Folders
// are deduplicated by their cleaned path.
func (s *Store) OutputPathItems(manual string) []PathItem {
	labels := i18n.I18nMsg.SettingsService
	lastUsed := s.OutputPath()
	defaultPath := s.defaultPath()

	seen := make(map[string]bool)
	var items []PathItem
	add := func(path, label string) {
		key := filepath.Clean(path)
		if seen[key] {
			return
		}
		seen[key] = true
		items = append(items, PathItem{Path: path, Label: label})
	}

	if manual != "" && filepath.Clean(manual) != filepath.Clean(lastUsed) {
		add(manual, manual)
	}
	if lastUsed != "" {
		add(lastUsed, lastUsed+" "+labels.LastUsed)
	}
	for _, p := range s.ceStartPaths() {
		add(p, p)
	}
	add(defaultPath, defaultPath+" "+labels.Default)
	return items
}
