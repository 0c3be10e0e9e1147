package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spelltower/pkg/gridmap"
)

func TestTakeDamageIsMonotonicAndClamped(t *testing.T) {
	e := &Enemy{Health: 100, MaxHealth: 100, Alive: true}

	prev := e.Health
	for i := 0; i < 6; i++ {
		e.TakeDamage(18)
		if e.Alive {
			assert.Less(t, e.Health, prev)
		}
		prev = e.Health
	}
	assert.False(t, e.Alive)
	assert.Equal(t, 0.0, e.Health)

	e.TakeDamage(50)
	assert.False(t, e.Alive)
	assert.Equal(t, 0.0, e.Health)
	assert.Equal(t, 0.0, e.HealthRatio())
}

func TestTakeDamageIgnoresNonPositive(t *testing.T) {
	e := &Enemy{Health: 10, Alive: true}
	e.TakeDamage(0)
	e.TakeDamage(-5)
	assert.Equal(t, 10.0, e.Health)
}

func TestPathFromRoute(t *testing.T) {
	route := gridmap.Route{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}}
	p := NewPath(route, 10)

	assert.Equal(t, 1, p.Index)
	assert.Equal(t, Position{X: 5, Y: 15}, p.Start())
	assert.Equal(t, Position{X: 15, Y: 25}, p.Points[2])
	assert.False(t, p.Done())
	p.Index = 3
	assert.True(t, p.Done())
}

func TestStatusFlags(t *testing.T) {
	s := NewStatusEffects()
	assert.Equal(t, 1.0, s.SlowFactor)
	assert.False(t, s.Slowed() || s.Poisoned() || s.Reversed() || s.Tinted())
	s.SlowTimer, s.DotTimer, s.ReverseTimer = 1, 1, 1
	assert.True(t, s.Slowed() && s.Poisoned() && s.Reversed())
}

func TestEffectProgress(t *testing.T) {
	e := AttackEffect{Timer: 0.15, Duration: 0.3}
	assert.InDelta(t, 0.5, e.Progress(), 1e-9)
	e.Timer = 1
	assert.Equal(t, 1.0, e.Progress())
}
