package main

import (
	"github.com/spf13/cobra"
)

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <vehicle>...",
		Short: "Add vehicles to the comparison",
		Long: `Add puts one or more catalog vehicles into the comparison.

A vehicle can be named by its identifier, its model name, or "make model".
The comparison holds at most 4 vehicles; adding beyond that is refused.
Adding a vehicle that is already selected is a no-op.

Examples:
  # Add by model name
  carcompare add Camry

  # Add several at once
  carcompare add "Toyota Camry" "Honda Accord"

  # Add by identifier
  carcompare add 550e8400-e29b-41d4-a716-446655440000`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAddCmd,
	}
}

// runAddCmd executes the add command.
func runAddCmd(cmd *cobra.Command, args []string) error {
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
		s.store.Add(v)
	}

	s.printSelection()
	s.sync.Flush()
	return nil
}
