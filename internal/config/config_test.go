package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spelltower.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, 10, c.Grid.Width)
	assert.Equal(t, 10, c.Grid.Height)
	assert.Equal(t, 55.0, c.Grid.CellSize)
	assert.Equal(t, 10, c.Player.StartHealth)
	assert.Equal(t, 100, c.Player.StartGold)
	assert.Equal(t, 25, c.Economy.TowerCost)
	assert.Equal(t, []int{30, 50, 70}, c.Economy.UpgradeCosts)
	assert.Equal(t, []float64{1.5, 2, 3}, c.Economy.UpgradeRateFactors)
	assert.Equal(t, []float64{15, 20, 25}, c.Economy.UpgradeRangeBonus)
	assert.Equal(t, 1.2, c.Economy.TrainedRateBoost)
	assert.Equal(t, 0.5, c.Waves.SpawnInterval)
	assert.Equal(t, 3.0, c.Waves.MinWaveTime)
	assert.Equal(t, 3, c.Shop.OfferSize)
	assert.Equal(t, 2, c.Passives.OfferSize)
	assert.Equal(t, 3, c.MaxLevel())
}

func TestLoadPartialOverride(t *testing.T) {
	path := writeConfig(t, `
grid:
  width: 14
player:
  start_gold: 250
waves:
  spawn_interval: 0.25
sim:
  seed: 42
`)
	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 14, c.Grid.Width)
	assert.Equal(t, 10, c.Grid.Height)
	assert.Equal(t, 250, c.Player.StartGold)
	assert.Equal(t, 10, c.Player.StartHealth)
	assert.Equal(t, 0.25, c.Waves.SpawnInterval)
	assert.Equal(t, int64(42), c.Sim.Seed)
	assert.Equal(t, 25, c.Economy.TowerCost)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative gold", "player:\n  start_gold: -5\n"},
		{"negative cadence", "waves:\n  spawn_interval: -1\n"},
		{"tiny grid", "grid:\n  width: 1\n"},
		{"mismatched upgrades", "economy:\n  upgrade_costs: [10, 20]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "grid: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse config")
}
