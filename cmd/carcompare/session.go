package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carstack/carcompare/internal/catalog"
	"github.com/carstack/carcompare/internal/config"
	"github.com/carstack/carcompare/internal/database"
	"github.com/carstack/carcompare/internal/log"
	"github.com/carstack/carcompare/internal/model"
	"github.com/carstack/carcompare/internal/persist"
	"github.com/carstack/carcompare/internal/selection"
	"github.com/carstack/carcompare/internal/shareurl"
)

// session bundles the wired-up application for one command invocation:
// configuration, logger, catalog, database, the selection store with its
// persistence adapter attached, and the share URL synchronizer.
//
// Design decision: Every command builds a session rather than sharing
// package-level state. This keeps commands independently testable with
// their own temp directories and matches dependency injection used
// throughout the internal packages.
type session struct {
	cfg     *config.Config
	logger  *slog.Logger
	catalog *catalog.Catalog
	db      *database.SlotDB
	store   *selection.Store
	adapter *persist.Adapter
	sync    *shareurl.Synchronizer
	out     io.Writer
}

// buildConfig creates a Config from the persistent cobra flags and the
// optional .carcompare file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Root().PersistentFlags()

	var err error
	cfg.Verbose, err = flags.GetBool("verbose")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// Load user overrides from the config file.
	// If the user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		overrides, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyOverrides(overrides)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Flags win over the config file.
	if dbDir, err := flags.GetString("db-dir"); err != nil {
		return nil, err
	} else if dbDir != "" {
		cfg.DBDir = dbDir
	}

	if catalogPath, err := flags.GetString("catalog"); err != nil {
		return nil, err
	} else if catalogPath != "" {
		cfg.CatalogPath = catalogPath
	}

	if slot, err := flags.GetString("slot"); err != nil {
		return nil, err
	} else if slot != "" {
		cfg.Slot = slot
	}

	return cfg, nil
}

// newSession wires the application together for one command invocation.
// The saved comparison is restored before the command body runs, and every
// later mutation is written back automatically.
func newSession(cmd *cobra.Command, cfg *config.Config) (*session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	logger := log.New(cmd.ErrOrStderr(), cfg.Verbose)
	out := cmd.OutOrStdout()

	cat, err := catalog.Load(cfg.CatalogPath, logger)
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogNotFound) {
			// Commands that only inspect the saved comparison still work
			// without a catalog. Lookups fail with a pointer to init.
			logger.Debug("no catalog file", "path", cfg.CatalogPath)
			cat = nil
		} else {
			return nil, err
		}
	}

	if err := os.MkdirAll(cfg.DBDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &session{
		cfg:    cfg,
		logger: logger,
		db:     db,
		out:    out,
	}
	s.catalog = cat
	s.store = selection.New(logger, selection.Callbacks{
		OnAdded: func(v *model.Vehicle) {
			fmt.Fprintf(out, "Added %s\n", v.DisplayName())
		},
		OnRemoved: func(v *model.Vehicle) {
			fmt.Fprintf(out, "Removed %s\n", v.DisplayName())
		},
		OnCleared: func() {
			fmt.Fprintln(out, "Comparison cleared")
		},
		OnCapacityReached: func(v *model.Vehicle) {
			fmt.Fprintf(out, "Comparison is full (%d vehicles max); %s was not added\n",
				selection.MaxItems, v.DisplayName())
		},
	})

	s.adapter = persist.New(s.store, db, cfg.Slot, logger)
	s.adapter.Hydrate(cmd.Context())
	s.adapter.Attach()

	s.sync = shareurl.New(s.store, func(rawURL string) {
		fmt.Fprintf(out, "Share URL: %s\n", rawURL)
	}, logger,
		shareurl.WithBasePath(cfg.BasePath),
		shareurl.WithBatchWindow(cfg.BatchWindow),
	)

	return s, nil
}

// Close releases the database connection.
func (s *session) Close() error {
	return s.db.Close()
}

// resolveVehicle resolves a command line argument to a catalog vehicle.
// It accepts the vehicle identifier, the model name, or "make model",
// matched case-insensitively.
func (s *session) resolveVehicle(arg string) (*model.Vehicle, error) {
	if s.catalog == nil {
		return nil, fmt.Errorf("no vehicle catalog at %s (run \"carcompare init --with-catalog\" to create one)", s.cfg.CatalogPath)
	}

	if v, ok := s.catalog.ByID(arg); ok {
		return v, nil
	}

	var matches []*model.Vehicle
	for _, v := range s.catalog.All() {
		if strings.EqualFold(arg, v.Model) || strings.EqualFold(arg, v.Make+" "+v.Model) {
			matches = append(matches, v)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("unknown vehicle %q (run \"carcompare list\" to see the catalog)", arg)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for _, v := range matches {
			names = append(names, fmt.Sprintf("%s (%s)", v.DisplayName(), v.ID))
		}
		return nil, fmt.Errorf("ambiguous vehicle %q: matches %s", arg, strings.Join(names, ", "))
	}
}

// printSelection writes the current comparison state, one vehicle per line.
func (s *session) printSelection() {
	items := s.store.Items()
	fmt.Fprintf(s.out, "Comparing %d of %d vehicles:\n", len(items), selection.MaxItems)
	for _, v := range items {
		fmt.Fprintf(s.out, "  - %s (%s)\n", v.DisplayName(), v.ID)
	}
	if !s.store.CanCompare() {
		fmt.Fprintf(s.out, "Add at least %d vehicles to compare\n", selection.MinItems)
	}
}
