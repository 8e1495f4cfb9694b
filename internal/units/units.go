// Package units collects the physical constants shared by the dispersion model.
package units

// SI values. C, Planck and ElectronVolt are exact under the 2019 SI
// redefinition; Parsec is the rounded value used throughout the paper.
const (
	C            = 299792458       // speed of light (m/s)
	Planck       = 6.62607015e-34  // Planck constant (J*s)
	ElectronVolt = 1.602176634e-19 // electron volt (J)

	Parsec     = 3.086e16     // parsec (m)
	Megaparsec = 1e6 * Parsec // megaparsec (m)
)
