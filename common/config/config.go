// Package config loads environment overrides, optionally from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvLanguage     = "EFD_UNPACKER_LANG"
	EnvSettingsFile = "EFD_UNPACKER_SETTINGS_FILE"
	EnvWorkers      = "EFD_UNPACKER_WORKERS"
	EnvOutput       = "EFD_UNPACKER_OUTPUT"
	EnvVerbose      = "EFD_UNPACKER_VERBOSE"
)

const logtag = "[config]"

// Config holds the environment overrides of the tool
type Config struct {
	Language     string
	SettingsFile string
	Workers      int
	Output       string
	Verbose      bool
}

// Load reads configPath into the environment, or .env from the working
// directory when configPath is empty. A missing .env is not an error but a
// missing configPath is. Variables already set are kept.
func Load(configPath string) (*Config, error) {
	if configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			return nil, fmt.Errorf("load env from %s: %w", configPath, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env from .env: %w", err)
	}

	cfg := FromEnv()
	if cfg.Verbose {
		log.Printf("%s config : %+v", logtag, *cfg)
	}
	return cfg, nil
}

// FromEnv builds a Config from the current environment
func FromEnv() *Config {
	return &Config{
		Language:     os.Getenv(EnvLanguage),
		SettingsFile: os.Getenv(EnvSettingsFile),
		Workers:      getenvInt(EnvWorkers, 0),
		Output:       os.Getenv(EnvOutput),
		Verbose:      getenvBool(EnvVerbose),
	}
}

func getenvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		log.Printf("%s %s = %q is not a valid count, using %d", logtag, key, val, defaultValue)
		return defaultValue
	}
	return n
}

func getenvBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}
