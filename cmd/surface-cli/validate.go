package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-surface/pkg/document"
	"github.com/goliatone/go-surface/pkg/orchestrator"
	"github.com/goliatone/go-surface/pkg/validation"
)

type validateOptions struct {
	sourcePath string
	asJSON     bool
}

func newValidateCmd(root *rootFlags) *cobra.Command {
	opts := validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a surface document and report diagnostics",
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

			list, err := orch.Validate(cmd.Context(), src)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				if list == nil {
					list = []*validation.Error{}
				}
				payload, err := json.MarshalIndent(list, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal diagnostics: %w", err)
				}
				fmt.Fprintln(out, string(payload))
			} else if len(list) == 0 {
				fmt.Fprintf(out, "%s: ok\n", src.Location())
			} else {
				for _, diag := range list {
					fmt.Fprintln(out, diag.Error())
				}
			}

			if len(list) > 0 {
				noun := "problems"
				if len(list) == 1 {
					noun = "problem"
				}
				return fmt.Errorf("%s: %d validation %s", src.Location(), len(list), noun)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.sourcePath, "source", "s", "", "Path or URL of the surface document")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Emit diagnostics as JSON")
	cmd.MarkFlagRequired("source") //nolint:errcheck

	return cmd
}
