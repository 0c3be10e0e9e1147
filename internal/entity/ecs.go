// internal/entity/ecs.go
package entity

import (
	"spelltower/internal/component"
	"spelltower/internal/types"
	"spelltower/pkg/gridmap"
)

// ECS хранит все сущности одной партии. Враги и башни лежат в срезах в
// порядке создания: системы перебирают их в этом порядке.
type ECS struct {
	GameTime float64
	NextID   types.EntityID
	Routes   gridmap.RouteSet
	Enemies  []*component.Enemy
	Towers   []*component.Tower
	Effects  []*component.AttackEffect
	Wave     *component.Wave
}

func NewECS() *ECS {
	return &ECS{NextID: 1}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy assigns an id and appends the enemy to the live set.
func (ecs *ECS) AddEnemy(e *component.Enemy) *component.Enemy {
	e.ID = ecs.NewEntity()
	ecs.Enemies = append(ecs.Enemies, e)
	return e
}

// AddTower assigns an id and appends the tower.
func (ecs *ECS) AddTower(t *component.Tower) *component.Tower {
	t.ID = ecs.NewEntity()
	ecs.Towers = append(ecs.Towers, t)
	return t
}

// TowerAt returns the tower standing on c.
func (ecs *ECS) TowerAt(c gridmap.Coord) *component.Tower {
	for _, t := range ecs.Towers {
		if t.Cell == c {
			return t
		}
	}
	return nil
}

// RemoveEnemies drops every enemy for which drop returns true, keeping order.
func (ecs *ECS) RemoveEnemies(drop func(*component.Enemy) bool) {
	kept := ecs.Enemies[:0]
	for _, e := range ecs.Enemies {
		if !drop(e) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(ecs.Enemies); i++ {
		ecs.Enemies[i] = nil
	}
	ecs.Enemies = kept
}

// AliveCount returns the number of enemies still alive.
func (ecs *ECS) AliveCount() int {
	n := 0
	for _, e := range ecs.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}
