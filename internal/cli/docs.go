package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/template"

	"github.com/peter-hanzo/specdoc/internal/config"
	"github.com/peter-hanzo/specdoc/internal/loader"
	"github.com/peter-hanzo/specdoc/internal/render"
	"github.com/peter-hanzo/specdoc/internal/templates"
	embeddedtmpl "github.com/peter-hanzo/specdoc/templates"
	"github.com/spf13/cobra"
)

func DocsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Render endpoint documentation from a specification document",
		RunE:  runDocs,
	}

	config.BindCommonFlags(cmd)
	cmd.Flags().String("templates", "", "Custom templates directory")
	cmd.Flags().Bool("strict", false, "Also report everything a full OpenAPI 3.x build objects to")

	return cmd
}

func runDocs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cfg.Verbose)

	result, err := loader.LoadFile(cfg.Spec)
	if err != nil {
		return fmt.Errorf("loading spec: %w", err)
	}

	logger.Debug("parsed specification", "endpoints", len(result.Document.Endpoints))

	if cfg.Docs.Strict {
		for _, w := range loader.StrictWarnings(result.RawData) {
			cmd.PrintErrf("Warning: %s\n", w)
		}
	}

	engine, err := templates.NewEngine(embeddedtmpl.FS, cfg.Docs.Templates, template.FuncMap{
		"indent": func(depth int) string { return strings.Repeat("  ", depth+2) },
	})
	if err != nil {
		return fmt.Errorf("creating template engine: %w", err)
	}

	docs := make([]render.Doc, 0, len(result.Document.Endpoints))
	for _, ep := range result.Document.Endpoints {
		docs = append(docs, render.Endpoint(ep))
	}

	out, err := engine.Execute("docs.tmpl", docs)
	if err != nil {
		return fmt.Errorf("rendering docs: %w", err)
	}

	cmd.Print(out)
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
