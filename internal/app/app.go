package app

import "gravlab/internal/domain"

type App struct {
	Derivation domain.DerivationService
	Simulation domain.SimulationService
	Artifacts  domain.ArtifactStore
}

func New(derivation domain.DerivationService, simulation domain.SimulationService, artifacts domain.ArtifactStore) *App {
	return &App{
		Derivation: derivation,
		Simulation: simulation,
		Artifacts:  artifacts,
	}
}
