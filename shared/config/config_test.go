package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 16*time.Millisecond, cfg.PointerSampleInterval())
	assert.Equal(t, time.Second, cfg.ResetCooldown())
	assert.Equal(t, "#ff00ff", cfg.CloneColor)
	assert.True(t, cfg.ShowGrid)
	assert.Empty(t, cfg.RemoteAddr)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.WindowWidth = 1920
	cfg.FillColor = "#123456"
	cfg.RemoteAddr = "127.0.0.1:9090"
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"window_title": "Teste", "reset_cooldown_ms": 250}`), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "Teste", cfg.WindowTitle)
	assert.Equal(t, 250*time.Millisecond, cfg.ResetCooldown())
	assert.Equal(t, DefaultConfig().WindowWidth, cfg.WindowWidth)
}

func TestLoadNormalizesInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"window_width": -1, "target_fps": 0, "pointer_sample_ms": -5, "min_zoom": 4, "max_zoom": 2, "smooth_factor": 3}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, def.WindowWidth, cfg.WindowWidth)
	assert.Equal(t, def.TargetFPS, cfg.TargetFPS)
	assert.Equal(t, def.PointerSampleMS, cfg.PointerSampleMS)
	assert.Equal(t, def.MinZoom, cfg.MinZoom)
	assert.Equal(t, def.MaxZoom, cfg.MaxZoom)
	assert.Equal(t, def.SmoothFactor, cfg.SmoothFactor)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFrom(filepath.Join(dir, "nao-existe.json"))
	assert.True(t, os.IsNotExist(err))

	bad := filepath.Join(dir, "ruim.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = LoadFrom(bad)
	assert.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.LineColor = "#0000ff"
	cfg.ResetCooldownMS = 500
	require.NoError(t, cfg.SaveTo(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "line_color: '#0000ff'")

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadYAMLPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("window_title: Teste YAML\nshow_grid: false\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "Teste YAML", cfg.WindowTitle)
	assert.False(t, cfg.ShowGrid)
	assert.Equal(t, DefaultConfig().GridSlices, cfg.GridSlices)
}

func TestLoadKeepsResetCooldown(t *testing.T) {
	tests := []struct {
		body string
		want time.Duration
	}{
		{`{"reset_cooldown_ms": 0}`, time.Second},
		{`{"reset_cooldown_ms": -10}`, time.Second},
		{`{"reset_cooldown_ms": 300}`, 300 * time.Millisecond},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))

		cfg, err := LoadFrom(path)
		require.NoError(t, err, tt.body)
		assert.Equal(t, tt.want, cfg.ResetCooldown(), tt.body)
	}
}
