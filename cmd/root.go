package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/msjuck/teemo/core/config"
)

var (
	appFs   = afero.NewOsFs()
	cfgPath string
)

func loadConfig() (*config.Configuration, error) {
	return config.Load(appFs, cfgPath)
}

// rootCmd represents the base command. Called with a file argument it runs
// the file directly; called bare it prints a usage line and exits cleanly.
var rootCmd = &cobra.Command{
	Use:   "teemo [commandfile]",
	Short: "Run a batch of shell commands from a file.",
	Long: `Runs shell commands listed one per line in a file, with optional
"@<seconds>" delays after commands and two-stage "left | right" pipes.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "usage: teemo <commandfile>\n")
			return nil
		}

		// Only the first argument is consulted; extras are ignored.
		return runFile(cmd, args[0])
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
