package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-surface/pkg/compose"
	"github.com/goliatone/go-surface/pkg/document"
)

type composeOptions struct {
	output string
	wire   bool
	name   string
}

// newComposer is swappable so tests can drive the prompts with a scripted
// driver instead of a terminal.
var newComposer = func() *compose.Composer {
	return compose.New()
}

func newComposeCmd() *cobra.Command {
	opts := composeOptions{}

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Assemble a surface interactively and save it as a document",
		RunE: func(cmd *cobra.Command, args []string) error {
			surface, err := newComposer().Run(cmd.Context())
			if err != nil {
				return err
			}

			if opts.wire {
				out, err := surface.EncodeIndent("", "  ")
				if err != nil {
					return err
				}
				if opts.output != "" {
					if err := os.WriteFile(opts.output, out, 0o644); err != nil {
						return fmt.Errorf("write %s: %w", opts.output, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "surface written to %s\n", opts.output)
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			header := document.Header{Name: opts.name, Version: document.FormatVersion}
			if opts.output != "" {
				if err := document.Save(opts.output, header, surface); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "document written to %s\n", opts.output)
				return nil
			}

			out, err := document.Marshal(header, surface)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.wire, "wire", false, "Emit wire JSON instead of a YAML document")
	cmd.Flags().StringVar(&opts.name, "name", "untitled", "Surface name recorded in the document header")

	return cmd
}
