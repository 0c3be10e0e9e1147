// internal/component/enemy.go
package component

import (
	"image/color"

	"spelltower/internal/defs"
	"spelltower/internal/types"
)

// Enemy - демон на маршруте.
type Enemy struct {
	ID        types.EntityID
	Archetype string
	Color     color.RGBA
	Element   defs.Element
	Weakness  defs.Element // не участвует в расчёте урона

	Position
	Path      Path
	Health    float64
	MaxHealth float64
	BaseSpeed float64
	Status    StatusEffects

	Alive    bool
	Rewarded bool
}

// TakeDamage subtracts amount from health. Health is floored at zero and the
// enemy dies once; later hits change nothing.
func (e *Enemy) TakeDamage(amount float64) {
	if !e.Alive || amount <= 0 {
		return
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.Alive = false
	}
}

// ReachedEnd is true once the route index advanced past the final waypoint.
func (e *Enemy) ReachedEnd() bool {
	return e.Path.Done()
}

// Speed returns base speed scaled by the current slow.
func (e *Enemy) Speed() float64 {
	return e.BaseSpeed * e.Status.SlowFactor
}

// HealthRatio returns health as a fraction of max health.
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return e.Health / e.MaxHealth
}
