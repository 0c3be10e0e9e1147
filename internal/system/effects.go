// internal/system/effects.go
package system

import (
	"image/color"

	"spelltower/internal/component"
	"spelltower/internal/defs"
)

const (
	TintDuration          = 1.0
	AttackEffectDuration  = 0.3
	UpgradeEffectDuration = 0.5
)

// onHit - эффект стихии при попадании.
type onHit struct {
	slowFactor float64
	slowFor    float64
	reverseFor float64
	dotRate    float64
	dotFor     float64
	damageMult float64
}

var onHitTable = map[defs.Element]onHit{
	defs.ElementFrost:  {slowFactor: 0.5, slowFor: 2},
	defs.ElementWind:   {reverseFor: 1},
	defs.ElementToxin:  {dotRate: 5, dotFor: 3},
	defs.ElementEarth:  {slowFactor: 0.8, slowFor: 2},
	defs.ElementShadow: {slowFactor: 0.7, slowFor: 1.5},
	defs.ElementHoly:   {damageMult: 1.5},
	defs.ElementShield: {damageMult: 1.25},
}

// ApplyEffect resolves one hit of element on target: the element's status
// effect, then the (possibly scaled) damage, then the feedback tint. It
// returns the visual effect to show; the caller decides where it goes.
// Elements without an entry deal damage unmodified.
func ApplyEffect(element defs.Element, target *component.Enemy, damage float64, from component.Position, tint color.RGBA) component.AttackEffect {
	rule := onHitTable[element]
	st := &target.Status
	if rule.slowFor > 0 {
		st.SlowFactor = rule.slowFactor
		st.SlowTimer = rule.slowFor
	}
	if rule.reverseFor > 0 {
		st.ReverseTimer = rule.reverseFor
	}
	if rule.dotFor > 0 {
		st.DotRate = rule.dotRate
		st.DotTimer = rule.dotFor
	}
	if rule.damageMult > 0 {
		damage *= rule.damageMult
	}

	target.TakeDamage(damage)

	if element.Tinted() {
		st.Tint = element
		st.TintTimer = TintDuration
	}

	return component.AttackEffect{
		Kind:     component.EffectAttack,
		Element:  element,
		Color:    tint,
		FromX:    from.X,
		FromY:    from.Y,
		ToX:      target.X,
		ToY:      target.Y,
		Duration: AttackEffectDuration,
	}
}
