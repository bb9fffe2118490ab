package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/carstack/carcompare/internal/config"
)

//go:embed templates/carcompare.yaml templates/catalog.yml
var templates embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a carcompare configuration file",
		Long: `Init creates a new .carcompare configuration file in the current directory.

The generated file documents every setting with commented examples,
including how to customize the specifications shown in comparison tables.

With --with-catalog, init also writes a starter vehicle catalog to the
configured catalog path so the tool is usable immediately.

Examples:
  # Create .carcompare in current directory
  carcompare init

  # Create config file at a specific path
  carcompare init -o myconfig.yaml

  # Also create a starter catalog
  carcompare init --with-catalog

  # Force overwrite existing file
  carcompare init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing files")
	cmd.Flags().Bool("with-catalog", false,
		"Also write a starter catalog to the catalog path")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}
	withCatalog, err := cmd.Flags().GetBool("with-catalog")
	if err != nil {
		return err
	}

	if err := writeTemplate("templates/carcompare.yaml", outputPath, force); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", outputPath)

	if withCatalog {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}
		if err := writeTemplate("templates/catalog.yml", cfg.CatalogPath, force); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created starter catalog: %s\n", cfg.CatalogPath)
	}
	return nil
}

// writeTemplate copies an embedded template to disk, refusing to overwrite
// unless forced.
func writeTemplate(name, outputPath string, force bool) error {
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := templates.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return nil
}
