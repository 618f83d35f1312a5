package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the starksnap command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "starksnap",
		Short:         "Starknet wallet provider backed by the Starknet Snap",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("env-file", ".env", "Optional env file loaded before reading STARKSNAP_* variables")

	rootCmd.AddCommand(newServeCmd())
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
