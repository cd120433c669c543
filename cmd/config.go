package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/audionetwork-grabber/internal/config"
	"github.com/oshokin/audionetwork-grabber/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var initConfigCmd = &cobra.Command{
	Use:   "init-config [path]",
	Short: "Write a configuration file with default settings.",
	Long: `Writes a configuration file populated with default settings.
Without a path argument the file is created in the current directory as '` +
		config.DefaultConfigFilename + `'. An existing file is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultConfigFilename
		if len(args) > 0 {
			path = args[0]
		}

		if err := config.WriteDefaultConfig(path); err != nil {
			return err
		}

		logger.Infof(cmd.Context(), "Wrote default configuration to '%s'", path)

		return nil
	},
}

//nolint:gochecknoinits // Cobra requires the init function to register subcommands before execution.
func init() {
	rootCmd.AddCommand(initConfigCmd)
}
