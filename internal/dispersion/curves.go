package dispersion

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"gravlab/internal/domain"
	"gravlab/internal/units"
)

// Curves holds everything the diagnostic figure plots.
type Curves struct {
	Freqs    []float64
	Delays   [][]float64 // per scenario mass, over Freqs
	Deficits [][]float64 // per scenario mass, over Freqs
	Demo     DemoCurves
	Scan     ScanCurves
}

// DemoCurves is the two-component waveform comparison for the demo mass.
type DemoCurves struct {
	Times    []float64
	Massless []float64
	Massive  []float64
	Delta    float64 // arrival spread between the two components (s)
}

// ScanCurves is the delay-versus-mass sweep at the reference frequencies.
type ScanCurves struct {
	Masses []float64
	Delays [][]float64 // per reference frequency, over Masses
}

// Run evaluates the scenario over its frequency, time and mass grids.
func Run(sc domain.Scenario) (*Curves, error) {
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("dispersion: %w", err)
	}
	dist := sc.DistanceMpc * units.Megaparsec

	freqs := floats.Span(make([]float64, sc.FrequencySamples), sc.FMinHz, sc.FMaxHz)
	delays := make([][]float64, len(sc.MassesEV))
	deficits := make([][]float64, len(sc.MassesEV))
	for i, m := range sc.MassesEV {
		d := make([]float64, len(freqs))
		v := make([]float64, len(freqs))
		for j, f := range freqs {
			d[j] = TimeDelay(f, m, dist)
			v[j] = VelocityDeficit(f, m)
		}
		delays[i] = d
		deficits[i] = v
	}

	demo := runDemo(sc.Demo, dist)

	masses := floats.LogSpan(make([]float64, sc.MassScan.Samples), sc.MassScan.MinEV, sc.MassScan.MaxEV)
	scanDelays := make([][]float64, len(sc.MassScan.FrequenciesHz))
	for i, f := range sc.MassScan.FrequenciesHz {
		d := make([]float64, len(masses))
		for j, m := range masses {
			d[j] = TimeDelay(f, m, dist)
		}
		scanDelays[i] = d
	}

	return &Curves{
		Freqs:    freqs,
		Delays:   delays,
		Deficits: deficits,
		Demo:     demo,
		Scan:     ScanCurves{Masses: masses, Delays: scanDelays},
	}, nil
}

// runDemo builds the massless and massive arrivals of a two-component
// pulse. In the massive case the low-frequency component lags and the high
// one leads, split symmetrically about the nominal arrival.
func runDemo(d domain.WaveformDemo, dist float64) DemoCurves {
	times := floats.Span(make([]float64, d.Samples), d.TMinS, d.TMaxS)
	delta := TimeDelay(d.FLowHz, d.MassEV, dist) - TimeDelay(d.FHighHz, d.MassEV, dist)

	low := Chirp(times, d.FLowHz, 0, d.EnvelopeWidth)
	high := Chirp(times, d.FHighHz, 0, d.EnvelopeWidth)
	lowLate := Chirp(shifted(times, -delta/2), d.FLowHz, 0, d.EnvelopeWidth)
	highEarly := Chirp(shifted(times, delta/2), d.FHighHz, 0, d.EnvelopeWidth)

	massless := make([]float64, len(times))
	massive := make([]float64, len(times))
	for i := range times {
		massless[i] = d.AmpLow*low[i] + d.AmpHigh*high[i]
		massive[i] = d.AmpLow*lowLate[i] + d.AmpHigh*highEarly[i]
	}
	return DemoCurves{Times: times, Massless: massless, Massive: massive, Delta: delta}
}
