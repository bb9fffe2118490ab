package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carstack/carcompare/internal/model"
	"github.com/carstack/carcompare/internal/report"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the vehicles in the catalog",
		Long: `List prints every vehicle in the catalog with its identifier and price.

Vehicles already in the comparison are marked with an asterisk.`,
		Args: cobra.NoArgs,
		RunE: runListCmd,
	}
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.catalog == nil {
		return fmt.Errorf("no vehicle catalog at %s (run \"carcompare init --with-catalog\" to create one)", cfg.CatalogPath)
	}

	for _, v := range s.catalog.All() {
		marker := " "
		if s.store.Contains(v.ID) {
			marker = "*"
		}
		fmt.Fprintf(s.out, "%s %-30s %10s  %s\n",
			marker, v.DisplayName(), report.FormatValue(model.Number(v.Price)), v.ID)
	}
	return nil
}
