package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.Equal(t, "data", cfg.Paths.DataDir)
	assert.Equal(t, "crashes.csv", cfg.Inputs.CrashFile)
	assert.Equal(t, "bicycles.csv", cfg.Inputs.VehicleFile)
	assert.Equal(t, "cyclists.csv", cfg.Export.CyclistsFile)
	assert.False(t, cfg.Export.SQLite)
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "crashprep.yaml")

	content := `
paths:
  data_dir: /srv/crash/raw
inputs:
  crash_file: CRASH_2019.csv
export:
  sqlite: true
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, "/srv/crash/raw", cfg.Paths.DataDir)
	assert.Equal(t, "CRASH_2019.csv", cfg.Inputs.CrashFile)
	assert.True(t, cfg.Export.SQLite)
	// Unset file keys keep defaults.
	assert.Equal(t, "persons.csv", cfg.Inputs.PersonFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "crashprep.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("logging:\n  level: warn\n"), 0644))

	t.Setenv("CRASHPREP_LOGGING_LEVEL", "debug")

	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidLevel(t *testing.T) {
	t.Setenv("CRASHPREP_LOGGING_LEVEL", "verbose")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestPathHelpers(t *testing.T) {
	cfg := &Config{
		Paths: PathsConfig{DataDir: "data", ReportsDir: "reports", LogsDir: "logs"},
	}

	assert.Equal(t, filepath.Join("data", "crashes.csv"), cfg.InputPath("crashes.csv"))
	assert.Equal(t, filepath.Join("reports", "cyclists.csv"), cfg.ReportPath("cyclists.csv"))
	assert.Equal(t, filepath.Join("logs", "crashprep.log"), cfg.LogPath("crashprep.log"))
}

func TestEnsureDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &Config{
		Paths: PathsConfig{
			DataDir:    filepath.Join(tmpDir, "data"),
			ReportsDir: filepath.Join(tmpDir, "reports"),
			LogsDir:    filepath.Join(tmpDir, "logs"),
		},
	}

	require.NoError(t, cfg.EnsureDirectories())
	assert.DirExists(t, cfg.Paths.ReportsDir)
	assert.DirExists(t, cfg.Paths.LogsDir)
}
