package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "carcompare"

	// DefaultCatalogFile is the file name of the vehicle catalog inside
	// the XDG data directory. The catalog is the source of all vehicle
	// data; comparisons only reference vehicles by identifier.
	DefaultCatalogFile = "catalog.yml"

	// DefaultSlot is the persistence slot comparisons are saved under.
	// A slot is one named comparison; the default slot is what every
	// command operates on unless --slot says otherwise.
	DefaultSlot = "comparison"

	// DefaultBasePath is the path component of generated share URLs.
	DefaultBasePath = "/compare"

	// DefaultBatchWindow is how long URL publication waits after a
	// selection change before emitting, so that a burst of changes
	// collapses into a single shareable URL.
	DefaultBatchWindow = 150 * time.Millisecond
)

// Config holds all configuration options for carcompare.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ReportConfig, PersistConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
type Config struct {
	// CatalogPath is the path to the vehicle catalog YAML file.
	// Defaults to catalog.yml inside the XDG data directory.
	CatalogPath string

	// DBDir is the directory holding the comparison database.
	// Defaults to the XDG data directory so comparisons survive across
	// invocations and are visible to concurrently running instances.
	DBDir string

	// Slot is the name of the persistence slot to operate on.
	Slot string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .carcompare in the current
	// directory and then in the user's home directory.
	ConfigFilePath string

	// Overrides holds user overrides loaded from the config file.
	// Nil when no config file was found.
	Overrides *File

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of the aligned text
	// table. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// aligned text table. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// DiffOnly restricts the report to rows where the vehicles disagree.
	DiffOnly bool

	// ReportFile is the path to write the report to in addition to
	// standard output. Empty means standard output only.
	ReportFile string

	// BasePath is the path component of generated share URLs.
	BasePath string

	// BatchWindow is the URL publication debounce interval.
	BatchWindow time.Duration
}

// NewConfig creates a new Config with default values.
// Flag parsing and the config file loader overwrite fields afterwards.
func NewConfig() *Config {
	return &Config{
		CatalogPath: filepath.Join(XDGDataDir(), DefaultCatalogFile),
		DBDir:       XDGDataDir(),
		Slot:        DefaultSlot,
		BasePath:    DefaultBasePath,
		BatchWindow: DefaultBatchWindow,
	}
}

// XDGDataDir returns the XDG data directory for carcompare.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/carcompare
// On macOS: ~/Library/Application Support/carcompare
// On Windows: %LOCALAPPDATA%\carcompare
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for carcompare.
// On Linux: ~/.config/carcompare
// On macOS: ~/Library/Application Support/carcompare
// On Windows: %APPDATA%\carcompare
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any command work begins.
func (c *Config) Validate() error {
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.Slot == "" {
		return ErrEmptySlot
	}
	if c.BatchWindow < 0 {
		return ErrInvalidBatchWindow
	}
	return nil
}

// ApplyOverrides merges config file overrides into the Config.
// Only fields the file actually sets are applied, so flag defaults
// survive an empty or partial file.
func (c *Config) ApplyOverrides(f *File) {
	if f == nil {
		return
	}
	c.Overrides = f
	if f.Catalog != "" {
		c.CatalogPath = f.Catalog
	}
	if f.BasePath != "" {
		c.BasePath = f.BasePath
	}
}
