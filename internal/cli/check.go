package cli

import (
	"fmt"
	"os"

	"github.com/peter-hanzo/specdoc/internal/config"
	"github.com/peter-hanzo/specdoc/internal/diagnose"
	"github.com/spf13/cobra"
)

func CheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report syntax diagnostics for a document",
		RunE:  runCheck,
	}

	config.BindCommonFlags(cmd)

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.Spec)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	linter := diagnose.Linter{Mode: cfg.Mode}
	diags := linter.Check(string(data))
	if len(diags) == 0 {
		cmd.PrintErrln("No problems found")
		return nil
	}

	for _, d := range diags {
		cmd.Printf("%s [%d-%d]: %s\n", d.Severity, d.From, d.To, d.Message)
	}

	return fmt.Errorf("%d problem(s) found", len(diags))
}
