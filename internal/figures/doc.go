// Package figures renders the four-panel dispersion diagnostic: delay
// curves, fractional velocity reduction, the two-chirp waveform overlay,
// and the delay-versus-mass constraint plot. Panels are laid out on one
// canvas and encoded twice, PNG and vector PDF. Callers own all file
// writes; this package only returns bytes.
package figures
