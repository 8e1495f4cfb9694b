package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"gravlab/internal/domain"
	"gravlab/internal/store"
)

var (
	scenarioPath string
	distanceMpc  float64
	massesEV     []float64
	fMinHz       float64
	fMaxHz       float64
	freqSamples  int
	noFigures    bool
	saveResults  bool
)

func dispersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dispersion",
		Short: "Simulate GW dispersion from a massive graviton",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := domain.DefaultScenario()
			if scenarioPath != "" {
				loaded, err := store.LoadScenario(scenarioPath)
				if err != nil {
					return err
				}
				sc = loaded
			}
			// Flags beat both the defaults and the scenario file.
			if cmd.Flags().Changed("distance-mpc") {
				sc.DistanceMpc = distanceMpc
			}
			if cmd.Flags().Changed("masses") {
				sc.MassesEV = massesEV
			}
			if cmd.Flags().Changed("f-min") {
				sc.FMinHz = fMinHz
			}
			if cmd.Flags().Changed("f-max") {
				sc.FMaxHz = fMaxHz
			}
			if cmd.Flags().Changed("samples") {
				sc.FrequencySamples = freqSamples
			}

			sum, err := appCtx.Simulation.Simulate(sc, domain.SimulateOptions{
				Figures:     !noFigures,
				SaveResults: saveResults,
			})
			if err != nil {
				return err
			}

			fmt.Print(appCtx.Simulation.RenderText(sum))
			if len(sum.Artifacts) > 0 {
				fmt.Printf("\nArtifacts in %s:\n", appCtx.Artifacts.Dir())
				for _, a := range sum.Artifacts {
					fmt.Printf("  %-32s %8d bytes  %s\n", a.Name, a.Bytes, a.Digest.Short())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file; omitted fields keep their defaults")
	cmd.Flags().Float64Var(&distanceMpc, "distance-mpc", 400, "source distance in Mpc")
	cmd.Flags().Float64SliceVar(&massesEV, "masses", nil, "graviton masses in eV (e.g. 1e-23,1e-22)")
	cmd.Flags().Float64Var(&fMinHz, "f-min", 20, "lower edge of the detector band in Hz")
	cmd.Flags().Float64Var(&fMaxHz, "f-max", 500, "upper edge of the detector band in Hz")
	cmd.Flags().IntVar(&freqSamples, "samples", 1000, "frequency grid points")
	cmd.Flags().BoolVar(&noFigures, "no-figures", false, "skip figure rendering")
	cmd.Flags().BoolVar(&saveResults, "save-results", false, "write dispersion_results.json and a manifest")
	return cmd
}
