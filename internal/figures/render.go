package figures

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"

	"gravlab/internal/dispersion"
	"gravlab/internal/domain"
)

// Canvas size of the 2x2 diagnostic figure.
const (
	figWidth  = 12 * vg.Inch
	figHeight = 10 * vg.Inch
)

// Render draws the four diagnostic panels and encodes the canvas twice,
// as PNG at the given DPI and as vector PDF.
func Render(sc domain.Scenario, curves *dispersion.Curves, dpi int) (png, pdf []byte, err error) {
	panels, err := buildPanels(sc, curves)
	if err != nil {
		return nil, nil, err
	}

	png, err = encodePNG(panels, dpi)
	if err != nil {
		return nil, nil, err
	}
	pdf, err = encodePDF(panels)
	if err != nil {
		return nil, nil, err
	}
	return png, pdf, nil
}

func buildPanels(sc domain.Scenario, curves *dispersion.Curves) ([][]*plot.Plot, error) {
	delay, err := delayPanel(sc, curves)
	if err != nil {
		return nil, fmt.Errorf("figures: delay panel: %w", err)
	}
	deficit, err := deficitPanel(sc, curves)
	if err != nil {
		return nil, fmt.Errorf("figures: deficit panel: %w", err)
	}
	waveform, err := waveformPanel(sc, curves)
	if err != nil {
		return nil, fmt.Errorf("figures: waveform panel: %w", err)
	}
	scan, err := scanPanel(sc, curves)
	if err != nil {
		return nil, fmt.Errorf("figures: scan panel: %w", err)
	}
	return [][]*plot.Plot{{delay, deficit}, {waveform, scan}}, nil
}

func encodePNG(panels [][]*plot.Plot, dpi int) ([]byte, error) {
	img := vgimg.NewWith(vgimg.UseWH(figWidth, figHeight), vgimg.UseDPI(dpi))
	drawPanels(panels, draw.New(img))

	var buf bytes.Buffer
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("figures: encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

func encodePDF(panels [][]*plot.Plot) ([]byte, error) {
	c := vgpdf.New(figWidth, figHeight)
	drawPanels(panels, draw.New(c))

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("figures: encoding pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawPanels(panels [][]*plot.Plot, dc draw.Canvas) {
	tiles := draw.Tiles{
		Rows: 2, Cols: 2,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	cs := plot.Align(panels, tiles, dc)
	for r := range panels {
		for c := range panels[r] {
			panels[r][c].Draw(cs[r][c])
		}
	}
}
