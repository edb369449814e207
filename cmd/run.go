package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msjuck/teemo/core/config"
	"github.com/msjuck/teemo/core/runner"
)

var (
	stripDelay bool
	traceMode  string
)

// runCmd is the explicit form of the bare "teemo FILE" invocation, with
// flag overrides for the configuration.
var runCmd = &cobra.Command{
	Use:   "run <commandfile>",
	Short: "Run a command file.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFile(cmd, args[0])
	},
}

func runFile(cmd *cobra.Command, path string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("strip-delay") {
		cfg.StripDelaySuffix = stripDelay
	}
	if cmd.Flags().Changed("trace") {
		cfg.Trace = traceMode
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	var trace runner.Trace = runner.NopTrace
	if cfg.Trace != config.TraceOff {
		trace = runner.NewConsoleTrace(cmd.OutOrStdout(), cfg.Trace == config.TraceOn)
	}

	r := runner.New(cfg, trace, cmd.OutOrStdout(), cmd.ErrOrStderr())
	return r.RunFile(appFs, path)
}

func init() {
	rootCmd.AddCommand(runCmd)

	for _, cmd := range []*cobra.Command{rootCmd, runCmd} {
		cmd.Flags().BoolVar(&stripDelay, "strip-delay", false, "Strip the @N delay marker from command arguments before launch.")
		cmd.Flags().StringVar(&traceMode, "trace", config.TraceAuto, "Trace output: auto, on or off.")
	}
}
