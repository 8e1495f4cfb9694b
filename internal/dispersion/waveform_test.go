package dispersion_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"gravlab/internal/dispersion"
)

func TestChirpEnvelopeBound(t *testing.T) {
	times := floats.Span(make([]float64, 401), -0.2, 0.2)
	wave := dispersion.Chirp(times, 50, 0, 0.05)
	require.Len(t, wave, len(times))

	centre := stat.Mean(times, nil)
	for i, ts := range times {
		env := math.Exp(-math.Pow((ts-centre)/0.05, 2))
		assert.LessOrEqual(t, math.Abs(wave[i]), env+1e-12)
	}
	// The tails are effectively silent: (0.2/0.05)^2 = 16 e-foldings.
	assert.Less(t, math.Abs(wave[0]), 1e-6)
	assert.Less(t, math.Abs(wave[len(wave)-1]), 1e-6)
}

func TestChirpPhase(t *testing.T) {
	times := []float64{-0.01, 0, 0.01}
	wave := dispersion.Chirp(times, 50, math.Pi/2, 0.05)
	// At the grid centre the envelope is 1 and sin(phase) carries through.
	assert.InDelta(t, 1.0, wave[1], 1e-12)
}

func TestChirpShiftedGridMovesCarrierNotEnvelope(t *testing.T) {
	times := floats.Span(make([]float64, 801), -0.2, 0.2)
	const delta, freq, width = 0.013, 50.0, 0.05

	shiftIn := make([]float64, len(times))
	for i, ts := range times {
		shiftIn[i] = ts - delta
	}
	got := dispersion.Chirp(shiftIn, freq, 0, width)

	centre := stat.Mean(times, nil)
	for i, ts := range times {
		env := math.Exp(-math.Pow((ts-centre)/width, 2))
		want := math.Sin(2*math.Pi*freq*(ts-delta)) * env
		assert.InDelta(t, want, got[i], 1e-9)
	}
}

func TestChirpEmptyGrid(t *testing.T) {
	assert.Nil(t, dispersion.Chirp(nil, 50, 0, 0.05))
}
