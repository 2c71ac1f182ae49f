package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/notes-release/internal/config"
	"github.com/oshokin/notes-release/internal/logger"
	"github.com/oshokin/notes-release/internal/service/packager"
	"github.com/oshokin/notes-release/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel is the minimum level written to the console.
	logLevel string
	// appName overrides release.app_name.
	appName string
	// variant overrides release.variant.
	variant string
	// arch overrides release.arch.
	arch string
	// generatorCommand overrides release.generator, split on whitespace.
	generatorCommand string
	// signingKey overrides release.signing_key.
	signingKey string

	// rootCmd represents the base command for building the Squirrel installer.
	rootCmd = &cobra.Command{
		Use:   "squirrel-packager [root-dir]",
		Short: "Build the Windows Squirrel installer and list its artifacts.",
		Long: `Packages the prebuilt application found in out/{variant}/{app}-win32-{arch}
into a Squirrel installer by running the installer generator, then prints the
artifact paths and records them with checksums in artifacts.yaml.

The root directory defaults to release.root_dir from the configuration file,
or the current directory. Flags override values from the configuration file.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return logger.Setup(logLevel)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var rootDir string
			if len(args) > 0 {
				rootDir = args[0]
			}

			options := &packager.Options{
				ConfigPath:       configPath,
				RootDir:          rootDir,
				AppName:          appName,
				Variant:          variant,
				Arch:             arch,
				GeneratorCommand: strings.Fields(generatorCommand),
				SigningKey:       signingKey,
			}

			return packager.Run(ctx, options)
		},
	}
)

// Execute runs the squirrel-packager CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.StringVar(&appName, "app-name", "", "application name, also the executable name")
	flags.StringVar(&variant, "variant", "", "build variant: stable, beta, canary or internal")
	flags.StringVar(&arch, "arch", "", "target architecture, e.g. x64 or arm64")
	flags.StringVar(&generatorCommand, "generator", "", "installer generator command, config path is appended")
	flags.StringVar(&signingKey, "signing-key", "", "armored OpenPGP private key used to sign artifacts.yaml")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
}
