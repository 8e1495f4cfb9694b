package app

import (
	"gravlab/internal/logging"
	derivationsvc "gravlab/internal/services/derivation"
	simulatesvc "gravlab/internal/services/simulate"
	"gravlab/internal/store"
)

const defaultFigureDPI = 150

// NewWire constructs the dependency graph from cfg. The output
// directory must already exist; the CLI creates it on startup.
func NewWire(cfg Config) *App {
	log := cfg.Log
	if log == nil {
		log = logging.NewNop()
	}
	dpi := cfg.FigureDPI
	if dpi <= 0 {
		dpi = defaultFigureDPI
	}

	// File-based artifact store shared by both services
	artifacts := store.NewArtifactFileStore(cfg.OutDir)

	// High-level services
	deriveSvc := derivationsvc.New(artifacts, log, cfg.Version)
	simulateSvc := simulatesvc.New(artifacts, log, dpi, cfg.Version)

	return New(deriveSvc, simulateSvc, artifacts)
}
