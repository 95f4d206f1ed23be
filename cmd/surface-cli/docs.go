package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-surface/pkg/docs"
)

type docsOptions struct {
	dir    string
	format string
	title  string
}

func newDocsCmd(root *rootFlags) *cobra.Command {
	opts := docsOptions{}

	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate reference pages for the component catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(root)
			if err != nil {
				return err
			}

			gen, err := docs.New(
				docs.WithFormat(docs.Format(opts.format)),
				docs.WithTitle(opts.title),
			)
			if err != nil {
				return err
			}

			pages, err := gen.Generate(cmd.Context())
			if err != nil {
				return err
			}

			if err := os.MkdirAll(opts.dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", opts.dir, err)
			}
			for name, content := range pages {
				path := filepath.Join(opts.dir, name)
				if err := os.WriteFile(path, content, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
			}

			log.WithFields(map[string]any{"dir": opts.dir, "pages": len(pages)}).Info("docs generated")
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d pages to %s\n", len(pages), opts.dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "docs", "Directory to write pages into")
	cmd.Flags().StringVar(&opts.format, "format", "markdown", "Page format (markdown, html)")
	cmd.Flags().StringVar(&opts.title, "title", "", "Override the index page title")

	return cmd
}
