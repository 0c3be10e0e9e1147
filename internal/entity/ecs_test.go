package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spelltower/internal/component"
	"spelltower/pkg/gridmap"
)

func TestIDsAreSequential(t *testing.T) {
	ecs := NewECS()
	a := ecs.AddEnemy(&component.Enemy{Alive: true})
	b := ecs.AddTower(&component.Tower{Cell: gridmap.Coord{X: 1, Y: 1}})
	c := ecs.AddEnemy(&component.Enemy{Alive: true})
	assert.Less(t, a.ID, b.ID)
	assert.Less(t, b.ID, c.ID)
}

func TestTowerAt(t *testing.T) {
	ecs := NewECS()
	tw := ecs.AddTower(&component.Tower{Cell: gridmap.Coord{X: 2, Y: 3}})
	assert.Same(t, tw, ecs.TowerAt(gridmap.Coord{X: 2, Y: 3}))
	assert.Nil(t, ecs.TowerAt(gridmap.Coord{X: 3, Y: 2}))
}

func TestRemoveEnemiesKeepsOrder(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 5; i++ {
		ecs.AddEnemy(&component.Enemy{Alive: i%2 == 0})
	}
	assert.Equal(t, 3, ecs.AliveCount())

	ecs.RemoveEnemies(func(e *component.Enemy) bool { return !e.Alive })
	if assert.Len(t, ecs.Enemies, 3) {
		assert.Less(t, ecs.Enemies[0].ID, ecs.Enemies[1].ID)
		assert.Less(t, ecs.Enemies[1].ID, ecs.Enemies[2].ID)
	}
}
