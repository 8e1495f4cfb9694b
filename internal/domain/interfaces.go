package domain

// ArtifactStore persists run outputs and their provenance manifest under
// a single output directory.
type ArtifactStore interface {
	WriteArtifact(name string, data []byte) (Artifact, error)
	WriteManifest(m Manifest) error
	ReadManifest() (Manifest, bool, error)
	Dir() string
}

// DerivationService runs the symbolic expansion and formats its reports.
type DerivationService interface {
	Derive(order int) (DerivationReport, error)
	RenderText(r DerivationReport) string
	SaveReport(r DerivationReport) (Manifest, error)
}

// SimulationService runs the dispersion model end to end.
type SimulationService interface {
	Simulate(sc Scenario, opts SimulateOptions) (SimulationSummary, error)
	RenderText(s SimulationSummary) string
}
