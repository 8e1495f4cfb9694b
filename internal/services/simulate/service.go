// Package simulate runs the graviton dispersion pipeline: it evaluates
// the scenario curves, renders the diagnostic figure and writes the
// requested artifacts.
package simulate

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gravlab/internal/dispersion"
	"gravlab/internal/domain"
	"gravlab/internal/figures"
	"gravlab/internal/logging"
	"gravlab/internal/units"
)

// Artifact names match the historical script outputs so downstream
// tooling keeps finding them.
const (
	figurePNG   = "gw_dispersion_simulation.png"
	figurePDF   = "gw_dispersion_simulation.pdf"
	resultsJSON = "dispersion_results.json"
)

// Service evaluates dispersion scenarios. It computes the per-mass
// summary table, optionally renders the four-panel figure, and
// optionally persists results plus a provenance manifest.
type Service struct {
	store   domain.ArtifactStore
	log     *logging.Logger
	dpi     int
	version string
}

// New returns a simulation service writing artifacts through store.
func New(store domain.ArtifactStore, log *logging.Logger, dpi int, version string) *Service {
	return &Service{store: store, log: log, dpi: dpi, version: version}
}

// Simulate evaluates sc and returns its summary. Figures and results
// are written only when the corresponding option is set; the summary's
// Artifacts field lists whatever was written.
func (s *Service) Simulate(sc domain.Scenario, opts domain.SimulateOptions) (domain.SimulationSummary, error) {
	start := time.Now()

	curves, err := dispersion.Run(sc)
	if err != nil {
		return domain.SimulationSummary{}, err
	}

	dist := sc.DistanceMpc * units.Megaparsec
	summary := domain.SimulationSummary{
		RunID:              domain.RunID(uuid.NewString()),
		DistanceMpc:        sc.DistanceMpc,
		FMinHz:             sc.FMinHz,
		FMaxHz:             sc.FMaxHz,
		SummaryFrequencyHz: sc.SummaryFrequencyHz,
		BandLowHz:          sc.Demo.FLowHz,
		BandHighHz:         sc.Demo.FHighHz,
		FitIndex:           dispersion.FitMassPowerLaw(curves.Scan.Masses, sc.SummaryFrequencyHz, dist),
	}
	for _, m := range sc.MassesEV {
		summary.Masses = append(summary.Masses, domain.MassSummary{
			MassEV:     m,
			DelayS:     dispersion.TimeDelay(sc.SummaryFrequencyHz, m, dist),
			BandDeltaS: dispersion.TimeDelay(sc.Demo.FLowHz, m, dist) - dispersion.TimeDelay(sc.Demo.FHighHz, m, dist),
			CutoffHz:   dispersion.CutoffFrequency(m),
		})
	}

	s.log.Info("scenario evaluated",
		zap.Float64("distance_mpc", sc.DistanceMpc),
		zap.Int("masses", len(sc.MassesEV)),
		zap.Float64("fit_index", summary.FitIndex),
		zap.Duration("elapsed", time.Since(start)))

	if opts.Figures {
		png, pdf, err := figures.Render(sc, curves, s.dpi)
		if err != nil {
			return domain.SimulationSummary{}, err
		}
		for _, out := range []struct {
			name string
			data []byte
		}{{figurePNG, png}, {figurePDF, pdf}} {
			art, err := s.store.WriteArtifact(out.name, out.data)
			if err != nil {
				return domain.SimulationSummary{}, fmt.Errorf("saving figure: %w", err)
			}
			summary.Artifacts = append(summary.Artifacts, art)
		}
		s.log.Info("figure rendered", zap.Int("dpi", s.dpi), zap.String("dir", s.store.Dir()))
	}

	if opts.SaveResults {
		if err := s.saveResults(sc, &summary); err != nil {
			return domain.SimulationSummary{}, err
		}
	}

	return summary, nil
}

// saveResults writes the JSON summary and the run manifest. The JSON
// file cannot list its own digest, so only the manifest covers it.
func (s *Service) saveResults(sc domain.Scenario, summary *domain.SimulationSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	art, err := s.store.WriteArtifact(resultsJSON, append(data, '\n'))
	if err != nil {
		return fmt.Errorf("saving results: %w", err)
	}
	summary.Artifacts = append(summary.Artifacts, art)

	scCopy := sc
	m := domain.Manifest{
		RunID:      summary.RunID,
		CreatedUTC: time.Now().UTC().Unix(),
		Tool:       domain.ToolName,
		Version:    s.version,
		Command:    "dispersion",
		Scenario:   &scCopy,
		Artifacts:  summary.Artifacts,
	}
	if err := s.store.WriteManifest(m); err != nil {
		return fmt.Errorf("saving manifest: %w", err)
	}
	s.log.Info("results saved",
		zap.String("run_id", string(summary.RunID)),
		zap.Int("artifacts", len(summary.Artifacts)))
	return nil
}

// RenderText formats the summary the way the analysis scripts printed
// it, with the propagation cutoffs and the fitted scaling appended.
func (s *Service) RenderText(sum domain.SimulationSummary) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintf(&b, "%s\n   NUMERICAL RESULTS: GRAVITON-INDUCED GW DISPERSION\n%s\n", rule, rule)
	fmt.Fprintf(&b, "\nSource distance: D = %g Mpc = %.2e m\n", sum.DistanceMpc, sum.DistanceMpc*units.Megaparsec)
	fmt.Fprintf(&b, "Detector band:   %g - %g Hz\n", sum.FMinHz, sum.FMaxHz)

	fmt.Fprintf(&b, "\n--- Time delays at f = %g Hz ---\n", sum.SummaryFrequencyHz)
	for _, m := range sum.Masses {
		fmt.Fprintf(&b, "  m_g = %g eV:  dt = %.3e s = %.3f ms\n", m.MassEV, m.DelayS, m.DelayS*1e3)
	}

	fmt.Fprintf(&b, "\n--- Differential delay between %g Hz and %g Hz ---\n", sum.BandLowHz, sum.BandHighHz)
	for _, m := range sum.Masses {
		fmt.Fprintf(&b, "  m_g = %g eV:  dt(%gHz) - dt(%gHz) = %.3e s\n",
			m.MassEV, sum.BandLowHz, sum.BandHighHz, m.BandDeltaS)
	}

	b.WriteString("\n--- Propagation cutoffs and delay scaling ---\n")
	for _, m := range sum.Masses {
		fmt.Fprintf(&b, "  m_g = %g eV:  f_c = %.3e Hz\n", m.MassEV, m.CutoffHz)
	}
	fmt.Fprintf(&b, "  fitted power-law index of dt vs m_g: %.3f (expected 2 for quadratic dispersion)\n", sum.FitIndex)

	b.WriteString("\n--- Consistency note for the E-S framework ---\n")
	b.WriteString("The framework places the scalar mass at m_Phi = M_P ~ 10^19 GeV = 10^28 eV,\n")
	b.WriteString("50 orders of magnitude above the LIGO bound. At that mass no signal below\n")
	b.WriteString("f ~ 10^43 Hz would propagate, so any viable screening mechanism must\n")
	b.WriteString("suppress the effective graviton mass dramatically.\n")

	return b.String()
}

var _ domain.SimulationService = (*Service)(nil)
