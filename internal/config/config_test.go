package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 500*time.Millisecond, cfg.ProbeInterval())
	assert.Equal(t, time.Second, cfg.ActivationTimeout())
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "specrun.yaml")
	content := `
watchdog:
  probe_ms: 250
logging:
  level: debug
report:
  color: never
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Watchdog.ProbeMs)
	assert.Equal(t, 250*time.Millisecond, cfg.ProbeInterval())
	// unset fields fall back to defaults
	assert.Equal(t, 1000, cfg.Watchdog.ActivationMs)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "never", cfg.Report.Color)
}

func TestLoad_NegativeValuesDefaulted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "specrun.yaml")
	content := `
watchdog:
  probe_ms: -1
  activation_ms: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Watchdog.ProbeMs)
	assert.Equal(t, 1000, cfg.Watchdog.ActivationMs)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "specrun.yaml")
	require.NoError(t, os.WriteFile(path, []byte("watchdog: ["), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
