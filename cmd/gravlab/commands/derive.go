package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	showLatex  bool
	saveReport bool
)

func deriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Expand the dRGT potential to quadratic order and verify Fierz-Pauli",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(2)
		},
	}
	cmd.Flags().BoolVar(&showLatex, "latex", false, "also print LaTeX forms of the key slices")
	cmd.Flags().BoolVar(&saveReport, "save", false, "write the report and a manifest to the artifact directory")
	return cmd
}

func runDerive(order int) error {
	r, err := appCtx.Derivation.Derive(order)
	if err != nil {
		return err
	}
	fmt.Print(appCtx.Derivation.RenderText(r))
	if showLatex {
		fmt.Printf("\nLaTeX forms:\n  e1 linear slice:    %s\n  e2 quadratic slice: %s\n",
			r.Latex.E1Linear, r.Latex.E2Quadratic)
	}
	if saveReport {
		m, err := appCtx.Derivation.SaveReport(r)
		if err != nil {
			return err
		}
		fmt.Printf("\nReport saved: %s (run %s)\n", m.Artifacts[0].Name, m.RunID)
	}
	return nil
}
