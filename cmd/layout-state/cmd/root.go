package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/notes-release/internal/config"
	"github.com/oshokin/notes-release/internal/logger"
	"github.com/oshokin/notes-release/internal/service/client"
	"github.com/oshokin/notes-release/internal/service/server"
	"github.com/oshokin/notes-release/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel is the minimum level written to the console.
	logLevel string
	// language overrides layout.language for tooltips.
	language string
	// stateFile overrides layout.state_file.
	stateFile string

	// rootCmd groups the server and client commands.
	rootCmd = &cobra.Command{
		Use:   "layout-state",
		Short: "Host and control the shared sidebar layout flag.",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return logger.Setup(logLevel)
		},
	}

	// serveCmd runs the gRPC server.
	serveCmd = &cobra.Command{
		Use:   "serve [listen-address]",
		Short: "Run the layout gRPC server.",
		Long: `Starts the gRPC server that owns the sidebar flag.

Only the port of layout.server_addr is used for listening (e.g., :7070).
A listen address argument overrides the config (e.g., :9090, 127.0.0.1:7070).
The layout is persisted to a JSON file and restored on start.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: firstArg(args),
				StateFile:     stateFile,
				Language:      language,
			}

			return server.Run(ctx, options)
		},
	}

	// toggleCmd flips the flag once.
	toggleCmd = &cobra.Command{
		Use:   "toggle [server-address]",
		Short: "Flip the sidebar once and print the new layout.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  clientCommand(client.Toggle),
	}

	// statusCmd prints the flag.
	statusCmd = &cobra.Command{
		Use:   "status [server-address]",
		Short: "Print the current layout.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  clientCommand(client.Status),
	}

	// watchCmd follows the flag.
	watchCmd = &cobra.Command{
		Use:   "watch [server-address]",
		Short: "Print the layout and every change until interrupted.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  clientCommand(client.Watch),
	}
)

// Execute runs the layout-state CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// clientCommand adapts a client entry point to a cobra RunE.
func clientCommand(run func(context.Context, *client.Options) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		options := &client.Options{
			ConfigPath:    configPath,
			ServerAddress: firstArg(args),
			Language:      language,
			Output:        cmd.OutOrStdout(),
		}

		return run(ctx, options)
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	flags.StringVarP(&language, "language", "l", "", "tooltip language, e.g. en, ru or zh-Hans")

	serveCmd.Flags().StringVarP(&stateFile, "state-file", "s", "", "path to persist the layout state")

	rootCmd.AddCommand(serveCmd, toggleCmd, statusCmd, watchCmd)
}
