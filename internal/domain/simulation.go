package domain

// SimulateOptions toggles the heavier simulation outputs.
type SimulateOptions struct {
	Figures     bool // render and store the diagnostic figure
	SaveResults bool // write dispersion_results.json and a manifest
}

// SimulationSummary is the machine-readable digest of one dispersion run.
type SimulationSummary struct {
	RunID              RunID         `json:"run_id"`
	DistanceMpc        float64       `json:"distance_mpc"`
	FMinHz             float64       `json:"f_min_hz"`
	FMaxHz             float64       `json:"f_max_hz"`
	SummaryFrequencyHz float64       `json:"summary_frequency_hz"`
	BandLowHz          float64       `json:"band_low_hz"`
	BandHighHz         float64       `json:"band_high_hz"`
	Masses             []MassSummary `json:"masses"`
	FitIndex           float64       `json:"fit_index"` // power-law index of delay vs mass, ~2
	Artifacts          []Artifact    `json:"artifacts,omitempty"`
}

// MassSummary is one row of the summary table.
type MassSummary struct {
	MassEV     float64 `json:"mass_ev"`
	DelayS     float64 `json:"delay_s"`      // at the summary frequency
	BandDeltaS float64 `json:"band_delta_s"` // delay(band low) - delay(band high)
	CutoffHz   float64 `json:"cutoff_hz"`
}
