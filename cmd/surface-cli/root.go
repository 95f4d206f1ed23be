package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-surface/internal/logger"
	"github.com/goliatone/go-surface/pkg/document"
)

type rootFlags struct {
	verbose bool
	noColor bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "surface-cli",
		Short:         "Build, validate, and inspect declarative surface documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable ANSI styling in output")

	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newDocsCmd(flags))
	cmd.AddCommand(newComposeCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the CLI logger. Output goes to stderr so command output
// on stdout stays clean for piping.
func newLogger(flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: true,
		Writer:        os.Stderr,
	})
}

// parseSource resolves a path argument into a document source. URLs load
// over HTTP, anything else is a file path.
func parseSource(raw string) document.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return document.SourceFromURL(path)
	}
	return document.SourceFromFile(path)
}
