package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/carstack/carcompare/internal/report"
)

// TestNewConfig tests that defaults point at the XDG data directory.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	c := NewConfig()

	if c.DBDir != XDGDataDir() {
		t.Errorf("got %q, expected the XDG data dir", c.DBDir)
	}
	if c.CatalogPath != filepath.Join(XDGDataDir(), DefaultCatalogFile) {
		t.Errorf("got %q, expected the catalog inside the XDG data dir", c.CatalogPath)
	}
	if c.Slot != DefaultSlot {
		t.Errorf("got %q, expected %q", c.Slot, DefaultSlot)
	}
	if c.BasePath != DefaultBasePath {
		t.Errorf("got %q, expected %q", c.BasePath, DefaultBasePath)
	}
	if c.BatchWindow != DefaultBatchWindow {
		t.Errorf("got %v, expected %v", c.BatchWindow, DefaultBatchWindow)
	}
}

// TestValidate tests the configuration validation rules.
func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		if err := NewConfig().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("conflicting report formats", func(t *testing.T) {
		t.Parallel()
		c := NewConfig()
		c.JSONReport = true
		c.MarkdownReport = true
		if err := c.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("got %v, expected ErrConflictingReportFormats", err)
		}
	})

	t.Run("empty slot", func(t *testing.T) {
		t.Parallel()
		c := NewConfig()
		c.Slot = ""
		if err := c.Validate(); !errors.Is(err, ErrEmptySlot) {
			t.Errorf("got %v, expected ErrEmptySlot", err)
		}
	})

	t.Run("negative batch window", func(t *testing.T) {
		t.Parallel()
		c := NewConfig()
		c.BatchWindow = -time.Millisecond
		if err := c.Validate(); !errors.Is(err, ErrInvalidBatchWindow) {
			t.Errorf("got %v, expected ErrInvalidBatchWindow", err)
		}
	})

	t.Run("zero batch window is valid", func(t *testing.T) {
		t.Parallel()
		c := NewConfig()
		c.BatchWindow = 0
		if err := c.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

// TestLoadConfigFile tests loading user overrides from a YAML file.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("full file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `catalog: /srv/fleet/catalog.yml
basePath: /fleet/compare
fields:
  - path: price
    label: Sticker Price
  - path: specifications.engine.horsepower
    label: Power
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		f, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Catalog != "/srv/fleet/catalog.yml" {
			t.Errorf("got %q, expected the catalog override", f.Catalog)
		}
		if f.BasePath != "/fleet/compare" {
			t.Errorf("got %q, expected the base path override", f.BasePath)
		}
		if len(f.Fields) != 2 || f.Fields[1].Label != "Power" {
			t.Errorf("got %+v, expected two field overrides", f.Fields)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("got %v, expected ErrConfigNotFound", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("fields: [unterminated"), 0600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected a parse error")
		}
	})
}

// TestFindConfigFile tests explicit path resolution.
// The cwd and home fallbacks are environment dependent, so only the
// explicit branch is covered here.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte(""), 0600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("got %q, expected %q", got, path)
		}
	})

	t.Run("explicit missing path", func(t *testing.T) {
		t.Parallel()
		if got := FindConfigFile(filepath.Join(t.TempDir(), "nope")); got != "" {
			t.Errorf("got %q, expected empty string", got)
		}
	})
}

// TestApplyOverrides tests that only set fields are merged.
func TestApplyOverrides(t *testing.T) {
	t.Parallel()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		t.Parallel()
		c := NewConfig()
		c.ApplyOverrides(&File{BasePath: "/fleet"})
		if c.BasePath != "/fleet" {
			t.Errorf("got %q, expected the override", c.BasePath)
		}
		if c.CatalogPath != filepath.Join(XDGDataDir(), DefaultCatalogFile) {
			t.Errorf("got %q, expected the default catalog path", c.CatalogPath)
		}
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()
		c := NewConfig()
		c.ApplyOverrides(nil)
		if c.Overrides != nil {
			t.Error("expected no overrides to be recorded")
		}
	})
}

// TestReportFields tests the field list override.
func TestReportFields(t *testing.T) {
	t.Parallel()

	t.Run("default set without overrides", func(t *testing.T) {
		t.Parallel()
		if got := NewConfig().ReportFields(); len(got) == 0 {
			t.Error("expected the built-in field set")
		}
	})

	t.Run("file fields win", func(t *testing.T) {
		t.Parallel()
		c := NewConfig()
		c.ApplyOverrides(&File{Fields: []report.Field{{Path: "price", Label: "Sticker Price"}}})
		got := c.ReportFields()
		if len(got) != 1 || got[0].Label != "Sticker Price" {
			t.Errorf("got %+v, expected the single override field", got)
		}
	})
}
