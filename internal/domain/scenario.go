package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidScenario marks any scenario validation failure.
var ErrInvalidScenario = errors.New("invalid scenario")

// Scenario configures one dispersion simulation run. The zero value is not
// usable; start from DefaultScenario and override fields.
type Scenario struct {
	DistanceMpc        float64   `yaml:"distance_mpc" json:"distance_mpc"`
	FMinHz             float64   `yaml:"f_min_hz" json:"f_min_hz"`
	FMaxHz             float64   `yaml:"f_max_hz" json:"f_max_hz"`
	FrequencySamples   int       `yaml:"frequency_samples" json:"frequency_samples"`
	MassesEV           []float64 `yaml:"masses_ev" json:"masses_ev"`
	SummaryFrequencyHz float64   `yaml:"summary_frequency_hz" json:"summary_frequency_hz"`

	Demo     WaveformDemo `yaml:"waveform_demo" json:"waveform_demo"`
	MassScan MassScan     `yaml:"mass_scan" json:"mass_scan"`
}

// WaveformDemo configures the two-chirp arrival comparison.
type WaveformDemo struct {
	FLowHz        float64 `yaml:"f_low_hz" json:"f_low_hz"`
	FHighHz       float64 `yaml:"f_high_hz" json:"f_high_hz"`
	MassEV        float64 `yaml:"mass_ev" json:"mass_ev"`
	TMinS         float64 `yaml:"t_min_s" json:"t_min_s"`
	TMaxS         float64 `yaml:"t_max_s" json:"t_max_s"`
	Samples       int     `yaml:"samples" json:"samples"`
	AmpLow        float64 `yaml:"amp_low" json:"amp_low"`
	AmpHigh       float64 `yaml:"amp_high" json:"amp_high"`
	EnvelopeWidth float64 `yaml:"envelope_width" json:"envelope_width"`
}

// MassScan configures the log-spaced delay-versus-mass sweep.
type MassScan struct {
	MinEV         float64   `yaml:"min_ev" json:"min_ev"`
	MaxEV         float64   `yaml:"max_ev" json:"max_ev"`
	Samples       int       `yaml:"samples" json:"samples"`
	FrequenciesHz []float64 `yaml:"frequencies_hz" json:"frequencies_hz"`
}

// DefaultScenario returns the GW170817-scale reference setup: a source at
// 400 Mpc observed across the 20-500 Hz ground-detector band.
func DefaultScenario() Scenario {
	return Scenario{
		DistanceMpc:        400,
		FMinHz:             20,
		FMaxHz:             500,
		FrequencySamples:   1000,
		MassesEV:           []float64{1e-23, 1e-22, 1e-21, 1e-20},
		SummaryFrequencyHz: 100,
		Demo: WaveformDemo{
			FLowHz:        50,
			FHighHz:       200,
			MassEV:        1e-22,
			TMinS:         -0.2,
			TMaxS:         0.2,
			Samples:       2000,
			AmpLow:        0.7,
			AmpHigh:       0.5,
			EnvelopeWidth: 0.05,
		},
		MassScan: MassScan{
			MinEV:         1e-24,
			MaxEV:         1e-19,
			Samples:       100,
			FrequenciesHz: []float64{50, 100},
		},
	}
}

// Validate reports the first problem found, wrapped in ErrInvalidScenario.
// Field names in the message use the scenario-file spelling.
func (s Scenario) Validate() error {
	switch {
	case s.DistanceMpc <= 0:
		return invalid("distance_mpc must be positive")
	case s.FMinHz <= 0:
		return invalid("f_min_hz must be positive")
	case s.FMaxHz <= s.FMinHz:
		return invalid("f_max_hz must exceed f_min_hz")
	case s.FrequencySamples < 2:
		return invalid("frequency_samples must be at least 2")
	case len(s.MassesEV) == 0:
		return invalid("masses_ev must not be empty")
	case s.SummaryFrequencyHz <= 0:
		return invalid("summary_frequency_hz must be positive")
	}
	for _, m := range s.MassesEV {
		if m <= 0 {
			return invalid("masses_ev entries must be positive")
		}
	}
	if err := s.Demo.validate(); err != nil {
		return err
	}
	return s.MassScan.validate()
}

func (d WaveformDemo) validate() error {
	switch {
	case d.FLowHz <= 0:
		return invalid("waveform_demo.f_low_hz must be positive")
	case d.FHighHz <= d.FLowHz:
		return invalid("waveform_demo.f_high_hz must exceed f_low_hz")
	case d.MassEV <= 0:
		return invalid("waveform_demo.mass_ev must be positive")
	case d.TMaxS <= d.TMinS:
		return invalid("waveform_demo.t_max_s must exceed t_min_s")
	case d.Samples < 2:
		return invalid("waveform_demo.samples must be at least 2")
	case d.EnvelopeWidth <= 0:
		return invalid("waveform_demo.envelope_width must be positive")
	}
	return nil
}

func (m MassScan) validate() error {
	switch {
	case m.MinEV <= 0:
		return invalid("mass_scan.min_ev must be positive")
	case m.MaxEV <= m.MinEV:
		return invalid("mass_scan.max_ev must exceed min_ev")
	case m.Samples < 2:
		return invalid("mass_scan.samples must be at least 2")
	case len(m.FrequenciesHz) == 0:
		return invalid("mass_scan.frequencies_hz must not be empty")
	}
	for _, f := range m.FrequenciesHz {
		if f <= 0 {
			return invalid("mass_scan.frequencies_hz entries must be positive")
		}
	}
	return nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidScenario, msg)
}
