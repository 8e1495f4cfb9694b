package commands

import (
	"github.com/spf13/cobra"
)

func deriveFullCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive-full",
		Short: "Expand all symmetric polynomials e0..e4 to quartic order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(4)
		},
	}
	cmd.Flags().BoolVar(&showLatex, "latex", false, "also print LaTeX forms of the key slices")
	cmd.Flags().BoolVar(&saveReport, "save", false, "write the report and a manifest to the artifact directory")
	return cmd
}
