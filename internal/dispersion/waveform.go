package dispersion

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Chirp evaluates sin(2 pi f t + phase) under a Gaussian envelope of the
// given width, centred on the mean of the time grid. Because the centre
// follows the grid, passing a shifted grid shifts the carrier phase while
// the pulse stays put, which is how the delayed-arrival overlay is drawn.
func Chirp(times []float64, freqHz, phase, width float64) []float64 {
	if len(times) == 0 {
		return nil
	}
	centre := stat.Mean(times, nil)
	out := make([]float64, len(times))
	for i, t := range times {
		env := (t - centre) / width
		out[i] = math.Sin(2*math.Pi*freqHz*t+phase) * math.Exp(-env*env)
	}
	return out
}

// shifted returns the time grid offset by delta.
func shifted(times []float64, delta float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = t + delta
	}
	return out
}
