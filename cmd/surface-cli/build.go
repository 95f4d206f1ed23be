package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-surface/pkg/document"
	"github.com/goliatone/go-surface/pkg/orchestrator"
)

type buildOptions struct {
	sourcePath string
	format     string
	output     string
	indent     int
}

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile a surface document and emit the encoded result",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(root)
			if err != nil {
				return err
			}

			src := parseSource(opts.sourcePath)
			if src == nil {
				return fmt.Errorf("source is required")
			}

			orch := orchestrator.New(
				orchestrator.WithLoader(document.NewLoader(document.WithHTTPFallback(30*time.Second))),
				orchestrator.WithLogger(log),
			)

			indent := ""
			if opts.indent > 0 {
				indent = strings.Repeat(" ", opts.indent)
			}

			out, err := orch.Generate(cmd.Context(), orchestrator.Request{
				Source:  src,
				Format:  opts.format,
				Indent:  indent,
				NoColor: root.noColor,
			})
			if err != nil {
				return err
			}

			if opts.output != "" {
				if err := os.WriteFile(opts.output, out, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", opts.output, err)
				}
				log.WithFields(map[string]any{"path": opts.output, "bytes": len(out)}).Info("surface written")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.sourcePath, "source", "s", "", "Path or URL of the surface document")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "wire", "Output format (wire, term)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().IntVar(&opts.indent, "indent", 0, "Indent JSON output with the given number of spaces")
	cmd.MarkFlagRequired("source") //nolint:errcheck

	return cmd
}
