// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the simulation constants. Zero fields are filled by ApplyDefaults.
type Config struct {
	Grid        GridConfig    `yaml:"grid"`
	Player      PlayerConfig  `yaml:"player"`
	Economy     EconomyConfig `yaml:"economy"`
	Waves       WavesConfig   `yaml:"waves"`
	Shop        OfferConfig   `yaml:"shop"`
	Passives    OfferConfig   `yaml:"passives"`
	Sim         SimConfig     `yaml:"sim"`
	CatalogPath string        `yaml:"catalog_path"`
}

type GridConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cell_size"` // simulation units per cell
}

type PlayerConfig struct {
	StartHealth int `yaml:"start_health"`
	StartGold   int `yaml:"start_gold"`
}

type EconomyConfig struct {
	TowerCost          int       `yaml:"tower_cost"`
	KillReward         int       `yaml:"kill_reward"`
	UpgradeCosts       []int     `yaml:"upgrade_costs"`
	UpgradeRateFactors []float64 `yaml:"upgrade_rate_factors"`
	UpgradeRangeBonus  []float64 `yaml:"upgrade_range_bonus"`
	TrainedRateBoost   float64   `yaml:"trained_rate_boost"` // applied once when a tower is built
}

type WavesConfig struct {
	BaseQuota     int     `yaml:"base_quota"`
	QuotaStep     int     `yaml:"quota_step"`
	SwarmEvery    int     `yaml:"swarm_every"`
	SwarmFactor   int     `yaml:"swarm_factor"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	MinWaveTime   float64 `yaml:"min_wave_time"`
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedPerWave  float64 `yaml:"speed_per_wave"`
	BaseHealth    float64 `yaml:"base_health"`
	HealthPerWave float64 `yaml:"health_per_wave"`
}

type OfferConfig struct {
	OfferSize int `yaml:"offer_size"`
}

type SimConfig struct {
	MaxDeltaTime float64 `yaml:"max_delta_time"`
	Seed         int64   `yaml:"seed"` // 0 - seed from the clock
}

// Default returns a config with every field at its default value.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// Load reads a YAML file and fills the missing fields with defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (g *GridConfig) ApplyDefaults() {
	if g.Width == 0 {
		g.Width = 10
	}
	if g.Height == 0 {
		g.Height = 10
	}
	if g.CellSize == 0 {
		g.CellSize = 55
	}
}

func (p *PlayerConfig) ApplyDefaults() {
	if p.StartHealth == 0 {
		p.StartHealth = 10
	}
	if p.StartGold == 0 {
		p.StartGold = 100
	}
}

func (e *EconomyConfig) ApplyDefaults() {
	if e.TowerCost == 0 {
		e.TowerCost = 25
	}
	if e.KillReward == 0 {
		e.KillReward = 10
	}
	if len(e.UpgradeCosts) == 0 {
		e.UpgradeCosts = []int{30, 50, 70}
	}
	if len(e.UpgradeRateFactors) == 0 {
		e.UpgradeRateFactors = []float64{1.5, 2, 3}
	}
	if len(e.UpgradeRangeBonus) == 0 {
		e.UpgradeRangeBonus = []float64{15, 20, 25}
	}
	if e.TrainedRateBoost == 0 {
		e.TrainedRateBoost = 1.2
	}
}

func (w *WavesConfig) ApplyDefaults() {
	if w.BaseQuota == 0 {
		w.BaseQuota = 4
	}
	if w.QuotaStep == 0 {
		w.QuotaStep = 2
	}
	if w.SwarmEvery == 0 {
		w.SwarmEvery = 5
	}
	if w.SwarmFactor == 0 {
		w.SwarmFactor = 2
	}
	if w.SpawnInterval == 0 {
		w.SpawnInterval = 0.5
	}
	if w.MinWaveTime == 0 {
		w.MinWaveTime = 3.0
	}
	if w.BaseSpeed == 0 {
		w.BaseSpeed = 50
	}
	if w.SpeedPerWave == 0 {
		w.SpeedPerWave = 1.0
	}
	if w.BaseHealth == 0 {
		w.BaseHealth = 100
	}
	if w.HealthPerWave == 0 {
		w.HealthPerWave = 1
	}
}

func (o *OfferConfig) applyDefaults(size int) {
	if o.OfferSize == 0 {
		o.OfferSize = size
	}
}

func (s *SimConfig) ApplyDefaults() {
	if s.MaxDeltaTime == 0 {
		s.MaxDeltaTime = MaxDeltaTime
	}
}

func (c *Config) ApplyDefaults() {
	c.Grid.ApplyDefaults()
	c.Player.ApplyDefaults()
	c.Economy.ApplyDefaults()
	c.Waves.ApplyDefaults()
	c.Shop.applyDefaults(3)
	c.Passives.applyDefaults(2)
	c.Sim.ApplyDefaults()
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Grid.Width < 2 || c.Grid.Height < 1:
		return fmt.Errorf("%w: grid %dx%d is too small", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.Grid.CellSize <= 0:
		return fmt.Errorf("%w: cell_size must be positive", ErrInvalidConfig)
	case c.Player.StartHealth <= 0:
		return fmt.Errorf("%w: start_health must be positive", ErrInvalidConfig)
	case c.Player.StartGold < 0 || c.Economy.TowerCost < 0 || c.Economy.KillReward < 0:
		return fmt.Errorf("%w: gold amounts must not be negative", ErrInvalidConfig)
	case len(c.Economy.UpgradeCosts) != len(c.Economy.UpgradeRateFactors) ||
		len(c.Economy.UpgradeCosts) != len(c.Economy.UpgradeRangeBonus):
		return fmt.Errorf("%w: upgrade tables differ in length", ErrInvalidConfig)
	case c.Economy.TrainedRateBoost <= 0:
		return fmt.Errorf("%w: trained_rate_boost must be positive", ErrInvalidConfig)
	case c.Waves.BaseQuota <= 0 || c.Waves.QuotaStep < 0 || c.Waves.SwarmEvery <= 0 || c.Waves.SwarmFactor <= 0:
		return fmt.Errorf("%w: wave quota settings must be positive", ErrInvalidConfig)
	case c.Waves.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn_interval must be positive", ErrInvalidConfig)
	case c.Waves.MinWaveTime < 0:
		return fmt.Errorf("%w: min_wave_time must not be negative", ErrInvalidConfig)
	case c.Waves.BaseSpeed <= 0 || c.Waves.BaseHealth <= 0:
		return fmt.Errorf("%w: demon base stats must be positive", ErrInvalidConfig)
	case c.Shop.OfferSize <= 0 || c.Passives.OfferSize <= 0:
		return fmt.Errorf("%w: offer sizes must be positive", ErrInvalidConfig)
	case c.Sim.MaxDeltaTime <= 0:
		return fmt.Errorf("%w: max_delta_time must be positive", ErrInvalidConfig)
	}
	for i, cost := range c.Economy.UpgradeCosts {
		if cost < 0 {
			return fmt.Errorf("%w: upgrade cost %d is negative", ErrInvalidConfig, i)
		}
		if c.Economy.UpgradeRateFactors[i] <= 0 {
			return fmt.Errorf("%w: upgrade rate factor %d must be positive", ErrInvalidConfig, i)
		}
	}
	return nil
}

// MaxLevel is the highest upgrade level a tower can reach.
func (c *Config) MaxLevel() int {
	return len(c.Economy.UpgradeCosts)
}
