package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-surface/pkg/openapi"
	"github.com/goliatone/go-surface/pkg/registry"
)

type schemaOptions struct {
	output  string
	title   string
	version string
}

func newSchemaCmd() *cobra.Command {
	opts := schemaOptions{}

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Export the component catalog as an OpenAPI document",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := openapi.ExportJSON(registry.Default(),
				openapi.WithTitle(opts.title),
				openapi.WithVersion(opts.version),
			)
			if err != nil {
				return err
			}

			if opts.output != "" {
				if err := os.WriteFile(opts.output, out, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", opts.output, err)
				}
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Override the document title")
	cmd.Flags().StringVar(&opts.version, "version", "", "Override the document version")

	return cmd
}
