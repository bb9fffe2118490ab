package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRemoveCmd creates the remove command.
func NewRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <vehicle>...",
		Short: "Remove vehicles from the comparison",
		Long: `Remove takes one or more vehicles out of the comparison.

Removing a vehicle that is not selected is a no-op.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRemoveCmd,
	}
}

// runRemoveCmd executes the remove command.
func runRemoveCmd(cmd *cobra.Command, args []string) error {
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

	for _, arg := range args {
		id := arg
		// Accept the same naming forms as add when a catalog is present.
		if v, err := s.resolveVehicle(arg); err == nil {
			id = v.ID
		}
		if !s.store.Remove(id) {
			fmt.Fprintf(s.out, "%s is not in the comparison\n", arg)
		}
	}

	s.printSelection()
	s.sync.Flush()
	return nil
}
