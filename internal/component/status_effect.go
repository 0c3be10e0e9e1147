// internal/component/status_effect.go
package component

import "spelltower/internal/defs"

// StatusEffects - таймеры статусов врага. Все таймеры в секундах симуляции.
type StatusEffects struct {
	SlowFactor float64 // множитель скорости, 1.0 без замедления
	SlowTimer  float64

	DotRate  float64 // урон в секунду
	DotTimer float64

	ReverseTimer float64

	// Tint is feedback only.
	Tint      defs.Element
	TintTimer float64
}

// NewStatusEffects returns a bundle with no active effects.
func NewStatusEffects() StatusEffects {
	return StatusEffects{SlowFactor: 1.0}
}

func (s *StatusEffects) Slowed() bool   { return s.SlowTimer > 0 }
func (s *StatusEffects) Poisoned() bool { return s.DotTimer > 0 }
func (s *StatusEffects) Reversed() bool { return s.ReverseTimer > 0 }
func (s *StatusEffects) Tinted() bool   { return s.TintTimer > 0 && s.Tint != "" }
