package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/msjuck/teemo/core/config"
)

// initCmd writes a starter configuration and sample command file.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default config and sample command file.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		logger := log.New(cmd.ErrOrStderr(), "", 0)
		return config.Initialize(appFs, dir, logger)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
