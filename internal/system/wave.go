// internal/system/wave.go
package system

import (
	"log"

	"spelltower/internal/component"
	"spelltower/internal/config"
	"spelltower/internal/defs"
	"spelltower/internal/entity"
	"spelltower/internal/event"
	"spelltower/internal/utils"
)

// Quota returns how many demons wave n (1-indexed) spawns. Every SwarmEvery-th
// wave multiplies the count by SwarmFactor.
func Quota(n int, cfg config.WavesConfig) int {
	if n < 1 {
		return 0
	}
	count := cfg.BaseQuota + (n-1)*cfg.QuotaStep
	if n%cfg.SwarmEvery == 0 {
		count *= cfg.SwarmFactor
	}
	return count
}

// WaveSystem спавнит демонов текущей волны и определяет её конец.
type WaveSystem struct {
	ecs             *entity.ECS
	cfg             config.WavesConfig
	cellSize        float64
	catalog         *defs.Catalog
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, cfg config.WavesConfig, cellSize float64, catalog *defs.Catalog, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		cfg:             cfg,
		cellSize:        cellSize,
		catalog:         catalog,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Start begins wave n: the quota is computed and the first spawn is one
// interval away.
func (s *WaveSystem) Start(n int) *component.Wave {
	wave := &component.Wave{
		Number:     n,
		Quota:      Quota(n, s.cfg),
		SpawnTimer: s.cfg.SpawnInterval,
		Interval:   s.cfg.SpawnInterval,
	}
	s.ecs.Wave = wave
	log.Printf("Wave %d started, %d demons", n, wave.Quota)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Wave: n, Quota: wave.Quota}})
	return wave
}

// Update advances the wave clock and spawns on cadence.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}
	wave.Elapsed += deltaTime
	if wave.Quota <= 0 {
		return
	}
	wave.SpawnTimer -= deltaTime
	if wave.SpawnTimer <= 0 {
		s.spawnEnemy(wave)
		wave.SpawnTimer = wave.Interval
	}
}

// Cleared reports whether the wave is over: nothing left to spawn, no live
// enemies and at least MinWaveTime since the start.
func (s *WaveSystem) Cleared() bool {
	wave := s.ecs.Wave
	if wave == nil {
		return false
	}
	return wave.Quota <= 0 && len(s.ecs.Enemies) == 0 && wave.Elapsed >= s.cfg.MinWaveTime
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	if len(s.ecs.Routes) == 0 {
		log.Printf("Error: no route to spawn wave %d demon on", wave.Number)
		wave.Quota = 0
		return
	}
	route := s.ecs.Routes[s.rng.Intn(len(s.ecs.Routes))]
	archetype := s.catalog.DemonFor(s.rng.Float64())

	baseSpeed := s.cfg.BaseSpeed + float64(wave.Number)*s.cfg.SpeedPerWave
	baseHealth := s.cfg.BaseHealth + float64(wave.Number)*s.cfg.HealthPerWave
	speed, health := archetype.Stats(baseSpeed, baseHealth)

	path := component.NewPath(route, s.cellSize)
	e := s.ecs.AddEnemy(&component.Enemy{
		Archetype: archetype.ID,
		Color:     archetype.Color,
		Element:   archetype.Element,
		Weakness:  archetype.Weakness,
		Position:  path.Start(),
		Path:      path,
		Health:    health,
		MaxHealth: health,
		BaseSpeed: speed,
		Status:    component.NewStatusEffects(),
		Alive:     true,
	})
	wave.Quota--
	wave.Spawned++
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemyData{EnemyID: int(e.ID), Archetype: archetype.ID}})
}
