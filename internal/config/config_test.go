package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gravlab/internal/config"
)

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("GRAVLAB_OUT_DIR", "/tmp/runs")
	t.Setenv("GRAVLAB_FIGURE_DPI", "72")
	t.Setenv("GRAVLAB_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/runs", cfg.Output.Dir)
	assert.Equal(t, 72, cfg.Output.FigureDPI)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, 150, cfg.Output.FigureDPI)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoadRejectsBadValue(t *testing.T) {
	t.Setenv("GRAVLAB_FIGURE_DPI", "many")
	_, err := config.Load()
	assert.Error(t, err)
}
