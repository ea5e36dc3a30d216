// Package cmd implements the motion CLI commands.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version information set at build time.
var Version = "0.1.0-dev"

// NewRootCmd returns the root cobra command with all subcommands
// registered. Used in tests and for command discovery.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "motion",
		Short: "Motion - frame-driven animation toolkit",
		Long: `Motion is a frame-driven animation engine: easing curves, progress
state machines and a visibility-gated frame scheduler.

The CLI ships a terminal fade demo and a curve plotter.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newDemoCmd())
	root.AddCommand(newPlotCmd())
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
