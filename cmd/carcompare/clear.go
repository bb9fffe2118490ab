package main

import (
	"github.com/spf13/cobra"
)

// NewClearCmd creates the clear command.
func NewClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all vehicles from the comparison",
		Long: `Clear empties the comparison in one operation.

Clearing an already empty comparison does nothing.`,
		Args: cobra.NoArgs,
		RunE: runClearCmd,
	}
}

// runClearCmd executes the clear command.
func runClearCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	s.sync.Enable()

	s.store.Clear()
	s.sync.Flush()
	return nil
}
