package main

import (
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/doddi/doddi-rust-analyzer/internal"
	"github.com/doddi/doddi-rust-analyzer/internal/domain/entities"
)

const positionalArgs = 3

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	keywords := make([]string, 0, len(appContext.GetControllers()))
	for _, controller := range appContext.GetControllers() {
		keywords = append(keywords, controller.GetBind().Use)
	}

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("rust-analyzer <dir> <commit> <%s>", strings.Join(keywords, "|")),
		Short: "Muse analyzer reporting outdated Cargo dependencies",
		Long: `A Muse analyzer plugin for Rust projects. It runs cargo outdated
in the working directory and reports every outdated dependency
at the line of Cargo.toml where it is declared.

Commands:
  version     Print the analyzer protocol version
  applicable  Print whether a Cargo.lock is present
  run         Print the findings as a JSON array

The <dir> and <commit> arguments are part of the Muse contract
and are currently not used.`,
		Args: func(command *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(positionalArgs)(command, args); err != nil {
				return err
			}
			_, err := appContext.ControllerFor(args[2])
			return err
		},
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
		RunE: func(command *cobra.Command, args []string) error {
			controller, err := appContext.ControllerFor(args[2])
			if err != nil {
				return err
			}
			logger.Debugf("Dispatching %q (dir: %s, commit: %s)", args[2], args[0], args[1])
			return controller.Execute(command, args)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.PersistentFlags().StringP("config", "c", "",
		fmt.Sprintf("Path to config file (default: $%s, falls back to built-in defaults)", entities.ConfigEnvVar))
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output on stderr")
	cmd.Flags().String("format", "",
		fmt.Sprintf("Output format for run (%s, default %s)",
			strings.Join(appContext.OutputFormats(), ", "), entities.OutputFormatMuse))

	return cmd
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logger.WarnLevel)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'rust-analyzer': %s", err)
	}
}
