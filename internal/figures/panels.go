package figures

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"gravlab/internal/dispersion"
	"gravlab/internal/domain"
)

// Markers on the constraint panel: the LIGO graviton-mass bound and the
// delay magnitude a ground detector could plausibly time.
const (
	ligoMassBoundEV = 1e-22
	delayThresholdS = 1e-3
	scanDelayFloorS = 1e-6
	scanDelayCeilS  = 1e6
)

var (
	blue = color.RGBA{B: 255, A: 255}
	red  = color.RGBA{R: 255, A: 255}
	gray = color.RGBA{R: 128, G: 128, B: 128, A: 255}

	dashed = []vg.Length{vg.Points(6), vg.Points(3)}
	dotted = []vg.Length{vg.Points(1), vg.Points(2.5)}
)

// delayPanel plots arrival time delay against frequency, one line per
// graviton mass, log-scale Y.
func delayPanel(sc domain.Scenario, curves *dispersion.Curves) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("GW Arrival Time Delay vs Frequency\n(Source at %g Mpc)", sc.DistanceMpc)
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Time delay Δt (seconds)"
	logY(p)
	p.Add(plotter.NewGrid())

	for i, m := range sc.MassesEV {
		line, err := plotter.NewLine(pairs(curves.Freqs, curves.Delays[i]))
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(massLabel(m), line)
	}
	p.Legend.Top = true
	return p, nil
}

// deficitPanel plots the fractional velocity reduction (c - v_g)/c.
func deficitPanel(sc domain.Scenario, curves *dispersion.Curves) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Fractional Velocity Reduction"
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "(c - v_g)/c"
	logY(p)
	p.Add(plotter.NewGrid())

	for i, m := range sc.MassesEV {
		line, err := plotter.NewLine(pairs(curves.Freqs, curves.Deficits[i]))
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(massLabel(m), line)
	}
	p.Legend.Top = true
	return p, nil
}

// waveformPanel overlays the massless and massive two-chirp arrivals,
// time axis in milliseconds.
func waveformPanel(sc domain.Scenario, curves *dispersion.Curves) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Waveform Dispersion Effect\nΔt = %.2f ms between %g Hz and %g Hz",
		curves.Demo.Delta*1e3, sc.Demo.FLowHz, sc.Demo.FHighHz)
	p.X.Label.Text = "Time (ms)"
	p.Y.Label.Text = "Strain h(t)"
	p.Add(plotter.NewGrid())

	ms := scaled(curves.Demo.Times, 1e3)
	massless, err := plotter.NewLine(pairs(ms, curves.Demo.Massless))
	if err != nil {
		return nil, err
	}
	massless.Color = blue

	massive, err := plotter.NewLine(pairs(ms, curves.Demo.Massive))
	if err != nil {
		return nil, err
	}
	massive.Color = red
	massive.Dashes = dashed

	p.Add(massless, massive)
	p.Legend.Add("Massless graviton", massless)
	p.Legend.Add(massLabel(sc.Demo.MassEV)+" (LIGO limit)", massive)
	p.Legend.Top = true
	return p, nil
}

// scanPanel is the log-log constraint plot of delay against graviton
// mass at the reference frequencies, with the LIGO bound and the 1 ms
// detectability threshold marked.
func scanPanel(sc domain.Scenario, curves *dispersion.Curves) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Observable Time Delay vs Graviton Mass\n(Source at %g Mpc)", sc.DistanceMpc)
	p.X.Label.Text = "Graviton mass m_g (eV)"
	p.Y.Label.Text = "Time delay (seconds)"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	logY(p)
	p.Add(plotter.NewGrid())

	colors := []color.Color{blue, red}
	for i, f := range sc.MassScan.FrequenciesHz {
		line, err := plotter.NewLine(pairs(curves.Scan.Masses, curves.Scan.Delays[i]))
		if err != nil {
			return nil, err
		}
		line.Color = colors[i%len(colors)]
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("f = %g Hz", f), line)
	}

	bound, err := plotter.NewLine(plotter.XYs{
		{X: ligoMassBoundEV, Y: scanDelayFloorS},
		{X: ligoMassBoundEV, Y: scanDelayCeilS},
	})
	if err != nil {
		return nil, err
	}
	bound.Color = color.Black
	bound.Dashes = dashed

	threshold, err := plotter.NewLine(plotter.XYs{
		{X: sc.MassScan.MinEV, Y: delayThresholdS},
		{X: sc.MassScan.MaxEV, Y: delayThresholdS},
	})
	if err != nil {
		return nil, err
	}
	threshold.Color = gray
	threshold.Dashes = dotted

	p.Add(bound, threshold)
	p.Legend.Add("LIGO limit", bound)
	p.Legend.Add("1 ms threshold", threshold)
	p.Legend.Top = true

	p.X.Min, p.X.Max = sc.MassScan.MinEV, sc.MassScan.MaxEV
	p.Y.Min, p.Y.Max = scanDelayFloorS, scanDelayCeilS
	return p, nil
}

func logY(p *plot.Plot) {
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
}

func massLabel(m float64) string {
	return fmt.Sprintf("m_g = %g eV", m)
}

func pairs(xs, ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	return xys
}

func scaled(xs []float64, factor float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x * factor
	}
	return out
}
