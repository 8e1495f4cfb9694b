package simulate_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gravlab/internal/domain"
	"gravlab/internal/logging"
	"gravlab/internal/services/simulate"
	"gravlab/internal/store"
)

func smallScenario() domain.Scenario {
	sc := domain.DefaultScenario()
	sc.FrequencySamples = 16
	sc.Demo.Samples = 64
	sc.MassScan.Samples = 8
	return sc
}

func newService(t *testing.T) (*simulate.Service, string) {
	t.Helper()
	dir := t.TempDir()
	return simulate.New(store.NewArtifactFileStore(dir), logging.NewNop(), 72, "test"), dir
}

func TestSimulateSummary(t *testing.T) {
	svc, dir := newService(t)
	sc := smallScenario()

	sum, err := svc.Simulate(sc, domain.SimulateOptions{})
	require.NoError(t, err)

	assert.NotEmpty(t, sum.RunID)
	assert.Equal(t, 400.0, sum.DistanceMpc)
	assert.Equal(t, 20.0, sum.FMinHz)
	assert.Equal(t, 500.0, sum.FMaxHz)
	assert.Equal(t, 50.0, sum.BandLowHz)
	assert.Equal(t, 200.0, sum.BandHighHz)
	require.Len(t, sum.Masses, len(sc.MassesEV))

	// m_g = 1e-22 eV at 100 Hz over 400 Mpc.
	row := sum.Masses[1]
	assert.InEpsilon(t, 1e-22, row.MassEV, 1e-12)
	assert.InEpsilon(t, 1.2037e-3, row.DelayS, 1e-3)
	assert.InEpsilon(t, 4.5138e-3, row.BandDeltaS, 1e-3)
	assert.InEpsilon(t, 2.418e-8, row.CutoffHz, 1e-3)

	assert.InEpsilon(t, 2.0, sum.FitIndex, 1e-3)

	// Nothing requested, nothing written.
	assert.Empty(t, sum.Artifacts)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSimulateWritesFigures(t *testing.T) {
	svc, dir := newService(t)

	sum, err := svc.Simulate(smallScenario(), domain.SimulateOptions{Figures: true})
	require.NoError(t, err)
	require.Len(t, sum.Artifacts, 2)
	assert.Equal(t, "gw_dispersion_simulation.png", sum.Artifacts[0].Name)
	assert.Equal(t, "gw_dispersion_simulation.pdf", sum.Artifacts[1].Name)

	png, err := os.ReadFile(filepath.Join(dir, "gw_dispersion_simulation.png"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))

	pdf, err := os.ReadFile(filepath.Join(dir, "gw_dispersion_simulation.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestSimulateSaveResults(t *testing.T) {
	svc, dir := newService(t)
	sc := smallScenario()

	sum, err := svc.Simulate(sc, domain.SimulateOptions{SaveResults: true})
	require.NoError(t, err)
	require.Len(t, sum.Artifacts, 1)
	assert.Equal(t, "dispersion_results.json", sum.Artifacts[0].Name)

	data, err := os.ReadFile(filepath.Join(dir, "dispersion_results.json"))
	require.NoError(t, err)
	var onDisk domain.SimulationSummary
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, sum.RunID, onDisk.RunID)
	assert.Len(t, onDisk.Masses, len(sc.MassesEV))

	m, found, err := store.NewArtifactFileStore(dir).ReadManifest()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, sum.RunID, m.RunID)
	assert.Equal(t, "dispersion", m.Command)
	require.NotNil(t, m.Scenario)
	assert.Equal(t, sc.DistanceMpc, m.Scenario.DistanceMpc)
	assert.Len(t, m.Artifacts, 1)
}

func TestSimulateInvalidScenario(t *testing.T) {
	svc, _ := newService(t)
	sc := smallScenario()
	sc.DistanceMpc = -1

	_, err := svc.Simulate(sc, domain.SimulateOptions{})
	require.ErrorIs(t, err, domain.ErrInvalidScenario)
}

func TestRenderText(t *testing.T) {
	svc, _ := newService(t)
	sum, err := svc.Simulate(smallScenario(), domain.SimulateOptions{})
	require.NoError(t, err)

	text := svc.RenderText(sum)
	for _, want := range []string{
		"NUMERICAL RESULTS",
		"Source distance: D = 400 Mpc",
		"--- Time delays at f = 100 Hz ---",
		"m_g = 1e-22 eV",
		"dt(50Hz) - dt(200Hz)",
		"expected 2 for quadratic dispersion",
	} {
		assert.True(t, strings.Contains(text, want), "missing %q", want)
	}
}
