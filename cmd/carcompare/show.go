package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current comparison",
		Long: `Show prints the vehicles currently in the comparison and its share URL.

The comparison is restored from the database, so this reflects changes made
by other carcompare instances as well.`,
		Args: cobra.NoArgs,
		RunE: runShowCmd,
	}
}

// runShowCmd executes the show command.
func runShowCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	s.printSelection()
	fmt.Fprintf(s.out, "Share URL: %s\n", s.sync.ComparisonURL())
	return nil
}
