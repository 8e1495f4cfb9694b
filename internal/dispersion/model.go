package dispersion

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"gravlab/internal/units"
)

// maxMassRatio caps (m c^2 / E)^2 inside the group-velocity root so the
// velocity stays real at and below the cutoff frequency.
const maxMassRatio = 0.9999

// massRatio2 returns (m c^2 / h f)^2 for a graviton mass in eV/c^2 and a
// frequency in Hz.
func massRatio2(freqHz, massEV float64) float64 {
	r := massEV * units.ElectronVolt / (units.Planck * freqHz)
	return r * r
}

// GroupVelocity returns the group velocity in m/s at freqHz for a graviton
// of mass massEV (eV/c^2).
func GroupVelocity(freqHz, massEV float64) float64 {
	r2 := massRatio2(freqHz, massEV)
	if r2 > maxMassRatio {
		r2 = maxMassRatio
	}
	return units.C * math.Sqrt(1-r2)
}

// VelocityDeficit returns the fractional slowdown (c - v_g)/c in the
// small-mass limit, 1/2 (m c^2 / h f)^2.
func VelocityDeficit(freqHz, massEV float64) float64 {
	return 0.5 * massRatio2(freqHz, massEV)
}

// TimeDelay returns the arrival delay in seconds relative to a massless
// wave after travelling distM metres, D/(2c) (m c^2 / h f)^2. The quadratic
// form is kept unclamped; it is numerically stable for small mass ratios.
func TimeDelay(freqHz, massEV, distM float64) float64 {
	return distM / (2 * units.C) * massRatio2(freqHz, massEV)
}

// CutoffFrequency returns m c^2 / h in Hz. Below it the mode does not
// propagate.
func CutoffFrequency(massEV float64) float64 {
	return massEV * units.ElectronVolt / units.Planck
}

// FitMassPowerLaw regresses log10(delay) on log10(mass) at freqHz over the
// masses that propagate there, returning the fitted power-law index. The
// quadratic dispersion formula makes the index 2; a different value signals
// a broken sweep. NaN is returned when fewer than two masses qualify.
func FitMassPowerLaw(masses []float64, freqHz, distM float64) float64 {
	var lx, ly []float64
	for _, m := range masses {
		if CutoffFrequency(m) >= freqHz {
			continue
		}
		lx = append(lx, math.Log10(m))
		ly = append(ly, math.Log10(TimeDelay(freqHz, m, distM)))
	}
	if len(lx) < 2 {
		return math.NaN()
	}
	_, slope := stat.LinearRegression(lx, ly, nil, false)
	return slope
}
