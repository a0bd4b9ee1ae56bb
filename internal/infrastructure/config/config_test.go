package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyForking/halite3-bot-1/internal/infrastructure/config"
)

func TestLoadConfigFillsDefaultsWhenFileIsMissing(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.json"))

	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Expansion.ReturnDistance)
	assert.Equal(t, 1000, cfg.Strategy.SpawnHaliteFloor)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoadConfigHonorsValuesPresentInFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"expansion":{"return_distance":20},"ships":{"carefulness_limit":250}}`), 0644))

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Expansion.ReturnDistance)
	assert.Equal(t, 250, cfg.Ships.CarefulnessLimit)
	// unspecified fields still take their defaults.
	assert.Equal(t, 10, cfg.Expansion.ExpansionDistance)
}

func TestLoadConfigRejectsInvalidTelemetryDriver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"telemetry":{"enabled":true,"driver":"mysql"}}`), 0644))

	_, err := config.LoadConfig(path)

	assert.Error(t, err)
}

func TestSetDefaultsLeavesExplicitZeroTimeStepAtDefault(t *testing.T) {
	var cfg config.Config
	config.SetDefaults(&cfg)

	assert.Equal(t, 1.0, cfg.Pheromones.TimeStep)
	assert.Equal(t, 3, cfg.Pheromones.NSteps)
}

func TestSetDefaultsFillsTelemetryOnlyWhenEnabled(t *testing.T) {
	var cfg config.Config
	cfg.Telemetry.Enabled = true
	config.SetDefaults(&cfg)

	assert.Equal(t, "sqlite", cfg.Telemetry.Driver)
	assert.Equal(t, "halite-telemetry.db", cfg.Telemetry.DSN)

	var disabled config.Config
	config.SetDefaults(&disabled)
	assert.Empty(t, disabled.Telemetry.Driver)
}

func TestValidateConfigRejectsNegativeFields(t *testing.T) {
	var cfg config.Config
	config.SetDefaults(&cfg)
	cfg.Expansion.ReturnDistance = -5

	err := config.ValidateConfig(&cfg)

	assert.Error(t, err)
}

func TestValidateConfigAcceptsDefaults(t *testing.T) {
	var cfg config.Config
	config.SetDefaults(&cfg)

	err := config.ValidateConfig(&cfg)

	assert.NoError(t, err)
}
