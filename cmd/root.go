package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/audionetwork-grabber/internal/app"
	"github.com/oshokin/audionetwork-grabber/internal/config"
	"github.com/oshokin/audionetwork-grabber/internal/logger"
	"github.com/oshokin/audionetwork-grabber/internal/version"
)

// Exit codes reported to the shell.
const (
	exitCodeError       = 1
	exitCodeInterrupted = 127
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "audionetwork-grabber [flags] {url}",
		Short: "Download preview audio and cover art from a song or album page.",
		Long: `AudioNetwork Grabber is a CLI tool for downloading preview audio from a song or album page.
It saves every preview into a per-album folder named from the release year and
album title, together with the album cover as folder.jpg.`,
		Version:           version.Short(),
		Args:              cobra.ExactArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				return fmt.Errorf("failed to parse flags: %w", err)
			}

			logger.SetLevel(appConfig.ParsedLogLevel)

			return app.ExecuteRootCommand(cmd.Context(), appConfig, args[0])
		},
	}
)

// Execute runs the root command and maps the outcome to a process exit code:
// 0 on success, 127 when interrupted by a signal, 1 on any other failure.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	err := rootCmd.ExecuteContext(ctx)
	isInterrupted := ctx.Err() != nil || errors.Is(err, context.Canceled)

	stop()

	_ = logger.Logger().Sync() //nolint:errcheck // Flushing logs on shutdown, the error is not actionable.

	switch exitCode(err, isInterrupted) {
	case exitCodeInterrupted:
		fmt.Fprintln(os.Stderr, "Interrupted.")
		os.Exit(exitCodeInterrupted)
	case exitCodeError:
		fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		os.Exit(exitCodeError)
	}
}

// exitCode classifies the command outcome into a process exit code.
// An interrupt wins over whatever error the aborted run surfaced.
func exitCode(err error, isInterrupted bool) int {
	switch {
	case err == nil:
		return 0
	case isInterrupted:
		return exitCodeInterrupted
	default:
		return exitCodeError
	}
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	rootCmdFlags := rootCmd.Flags()

	rootCmdFlags.StringP(
		"output",
		"o",
		"",
		"directory to save downloaded files (the path will be created if it doesn't exist).")

	rootCmdFlags.Bool(
		"embed-tags",
		false,
		"write ID3v2 tags into downloaded MP3 previews.")

	rootCmdFlags.String(
		"log-level",
		"",
		"logging verbosity: debug, info, warn, error.")

	rootCmdFlags.String(
		"user-agent",
		"",
		"User-Agent header sent with every request.")
}

func initConfig(_ *cobra.Command, _ []string) error {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	return nil
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if flag := flags.Lookup("embed-tags"); flag != nil && flag.Changed {
		cfg.EmbedTags, _ = flags.GetBool("embed-tags")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("user-agent"); flag != nil && flag.Changed {
		cfg.UserAgent, _ = flags.GetString("user-agent")
	}

	return config.ValidateConfig(cfg)
}
