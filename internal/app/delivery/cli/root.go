// Package cli implements calcctl, a terminal front end to the calculator
// catalog, the scoring framework and the cardiovascular risk engine.
package cli

import (
	"calculator-service/internal/app/contracts"
	"calculator-service/internal/app/services/core/catalog"
	"calculator-service/internal/app/services/core/framework"
	"calculator-service/internal/app/services/core/scoring"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type app struct {
	catalog *catalog.Catalog
	log     *zap.Logger
}

// NewRootCommand builds the calcctl command tree. A nil logger logs nothing.
func NewRootCommand(logger *zap.Logger) *cobra.Command {
	return newRootCommand(logger, catalog.New(), scoring.NewRegistry())
}

func newRootCommand(logger *zap.Logger, calculatorCatalog *catalog.Catalog, registry contracts.ScoringRegistry) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &app{catalog: calculatorCatalog, log: logger}

	var noColor bool
	root := &cobra.Command{
		Use:   "calcctl",
		Short: "Run clinical calculators from the terminal",
		Long: `calcctl lists the available clinical calculators, scores an answers
file through the same framework the HTTP service uses, and evaluates the
cardiovascular risk engine.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor || !isTerminal(cmd.OutOrStdout()) {
				color.NoColor = true
			}
			return framework.VerifyConfigs(calculatorCatalog.List(), registry, logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		a.newListCommand(),
		a.newScoreCommand(registry),
		a.newRiskCommand(),
	)
	return root
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
