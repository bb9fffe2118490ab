package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/carstack/carcompare/internal/report"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".carcompare"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk YAML structure of the .carcompare file.
// Every field is optional; unset fields leave the flag defaults alone.
type File struct {
	// Catalog overrides the vehicle catalog path.
	Catalog string `yaml:"catalog"`

	// BasePath overrides the path component of generated share URLs.
	BasePath string `yaml:"basePath"`

	// Fields overrides the list of specifications shown in the
	// comparison table. Order in the file is render order.
	Fields []report.Field `yaml:"fields"`
}

// LoadConfigFile loads user overrides from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .carcompare in the current directory
// 3. Look for .carcompare in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// ReportFields returns the specification list to render, preferring the
// config file override over the built-in default set.
func (c *Config) ReportFields() []report.Field {
	if c.Overrides != nil && len(c.Overrides.Fields) > 0 {
		return c.Overrides.Fields
	}
	return report.DefaultFields()
}
