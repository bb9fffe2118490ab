package main

import (
	"github.com/spf13/cobra"
)

// NewToggleCmd creates the toggle command.
func NewToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <vehicle>...",
		Short: "Toggle vehicles in and out of the comparison",
		Long: `Toggle adds a vehicle when it is not selected and removes it when it is.

This is how a selection checkbox behaves: one command flips the state.
Toggling an unselected vehicle into a full comparison is refused.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runToggleCmd,
	}
}

// runToggleCmd executes the toggle command.
func runToggleCmd(cmd *cobra.Command, args []string) error {
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
		v, err := s.resolveVehicle(arg)
		if err != nil {
			return err
		}
		s.store.Toggle(v)
	}

	s.printSelection()
	s.sync.Flush()
	return nil
}
