// Package main provides the entry point for the carcompare CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for carcompare.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carcompare",
		Short: "Side-by-side vehicle comparison tool",
		Long: `carcompare builds side-by-side comparisons of vehicles from a catalog.

A comparison holds between 2 and 4 vehicles. It is saved automatically,
so the selection survives across invocations and is shared live between
concurrently running instances. Comparisons can be rendered as text,
Markdown, or JSON tables and exchanged as URLs.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("db-dir", "", "Directory holding the comparison database (default: XDG data dir)")
	cmd.PersistentFlags().String("catalog", "", "Vehicle catalog file (default: catalog.yml in the XDG data dir)")
	cmd.PersistentFlags().StringP("config", "c", "", "Configuration file path (default: .carcompare in current or home directory)")
	cmd.PersistentFlags().StringP("slot", "s", "", "Named comparison slot to operate on (default: comparison)")

	// Add subcommands
	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewRemoveCmd())
	cmd.AddCommand(NewToggleCmd())
	cmd.AddCommand(NewClearCmd())
	cmd.AddCommand(NewShowCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewShareCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewWatchCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
