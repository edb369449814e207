package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/msjuck/teemo/core/directive"
)

// checkCmd parses a command file and prints the execution plan without
// launching anything.
var checkCmd = &cobra.Command{
	Use:   "check <commandfile>",
	Short: "Parse a command file and show what would run.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		contents, err := afero.ReadFile(appFs, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, line := range directive.Split(string(contents)) {
			d, err := directive.Parse(line.Text)
			if err != nil {
				return fmt.Errorf("line %d: %w", line.Number, err)
			}

			if d.Piped() {
				fmt.Fprintf(out, "line %d: pipe [%s] into [%s]\n",
					line.Number, strings.Join(d.Argv, " "), strings.Join(d.PipeArgv, " "))
			} else {
				fmt.Fprintf(out, "line %d: run [%s]\n", line.Number, strings.Join(d.Argv, " "))
			}
			if d.HasDelay {
				fmt.Fprintf(out, "line %d: wait %gs\n", line.Number, d.Delay)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
