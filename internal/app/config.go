package app

import "gravlab/internal/logging"

// Config holds runtime wiring options for building the app.
type Config struct {
	OutDir    string          // artifact directory, e.g. "." or results/
	FigureDPI int             // raster resolution for PNG figures
	Version   string          // build version stamped into manifests
	Log       *logging.Logger // optional; defaults to a nop logger
}
