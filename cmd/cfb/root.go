package main

import (
	"github.com/spf13/cobra"
)

// Execute wires the subcommands and runs the CLI.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:           "cfb",
		Short:         "cfb - inspect Compound File Binary containers",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newLsCommand())
	rootCmd.AddCommand(newCatCommand())

	return rootCmd.Execute()
}
