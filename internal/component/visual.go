// internal/component/visual.go
package component

import (
	"image/color"

	"spelltower/internal/defs"
)

// EffectKind различает выстрел и вспышку апгрейда.
type EffectKind string

const (
	EffectAttack  EffectKind = "attack"
	EffectUpgrade EffectKind = "upgrade"
)

// AttackEffect - визуальный эффект, который рендер рисует летящим от башни к цели.
type AttackEffect struct {
	Kind         EffectKind
	Element      defs.Element
	Color        color.RGBA
	FromX, FromY float64
	ToX, ToY     float64
	Timer        float64 // сколько эффект уже живёт
	Duration     float64
}

// Progress returns how far along its lifetime the effect is, in [0, 1].
func (e *AttackEffect) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := e.Timer / e.Duration
	if p > 1 {
		return 1
	}
	return p
}
