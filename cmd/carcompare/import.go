package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carstack/carcompare/internal/model"
	"github.com/carstack/carcompare/internal/shareurl"
)

// NewImportCmd creates the import command.
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <url>",
		Short: "Load a comparison from a share URL",
		Long: `Import replaces the current comparison with the one encoded in a URL.

Identifiers in the URL that are malformed or not in the catalog are
dropped; whatever remains becomes the new comparison. A URL without a
comparison parameter leaves the current comparison untouched.

Examples:
  carcompare import "/compare?cmp=550e8400-e29b-41d4-a716-446655440000,6ba7b810-9dad-11d1-80b4-00c04fd430c8"`,
		Args: cobra.ExactArgs(1),
		RunE: runImportCmd,
	}
}

// runImportCmd executes the import command.
func runImportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	rawURL := args[0]
	if !shareurl.HasComparisonInURL(rawURL) {
		fmt.Fprintln(s.out, "No comparison in URL; nothing imported")
		return nil
	}
	if s.catalog == nil {
		return fmt.Errorf("no vehicle catalog at %s (run \"carcompare init --with-catalog\" to create one)", cfg.CatalogPath)
	}

	var vehicles []*model.Vehicle
	for _, id := range shareurl.DecodeURL(rawURL) {
		v, ok := s.catalog.ByID(id)
		if !ok {
			s.logger.Warn("dropping identifier not in catalog", "id", id)
			continue
		}
		vehicles = append(vehicles, v)
	}

	s.sync.Enable()
	s.store.Replace(vehicles)
	s.printSelection()
	s.sync.Flush()
	return nil
}
