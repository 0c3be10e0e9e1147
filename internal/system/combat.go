// internal/system/combat.go
package system

import (
	"math"

	"spelltower/internal/component"
	"spelltower/internal/entity"
)

// Multipliers - глобальные бонусы пассивок, которые читают башни.
type Multipliers struct {
	AttackSpeed float64
	Damage      float64
	Range       float64
}

// NoBonus is the neutral set of multipliers.
var NoBonus = Multipliers{AttackSpeed: 1, Damage: 1, Range: 1}

// CombatSystem - башни выбирают цель и бьют её.
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

// EffectiveRange returns the tower's range with the range bonus applied.
func EffectiveRange(t *component.Tower, m Multipliers) float64 {
	return t.State.Range * m.Range
}

// AttackInterval returns seconds between attacks.
func AttackInterval(t *component.Tower, m Multipliers) float64 {
	return 1.0 / (t.State.AttackRate * m.AttackSpeed)
}

// Update ticks every tower's cooldown and lets ready towers engage one target.
func (s *CombatSystem) Update(deltaTime float64, m Multipliers) {
	for _, t := range s.ecs.Towers {
		t.State.Cooldown -= deltaTime
		if t.State.Cooldown > 0 {
			continue
		}
		target := s.findTarget(t, EffectiveRange(t, m))
		if target == nil {
			continue
		}
		s.engage(t, target, m)
	}
}

// findTarget возвращает первого живого врага в радиусе в порядке появления.
func (s *CombatSystem) findTarget(t *component.Tower, rangeRadius float64) *component.Enemy {
	for _, e := range s.ecs.Enemies {
		if !e.Alive {
			continue
		}
		if math.Hypot(e.X-t.X, e.Y-t.Y) <= rangeRadius {
			return e
		}
	}
	return nil
}

// engage splits damage evenly across the tower's elements and resolves each hit.
func (s *CombatSystem) engage(t *component.Tower, target *component.Enemy, m Multipliers) {
	elements := t.Spec.Elements()
	damage := t.State.Damage * m.Damage / float64(len(elements))
	for _, elem := range elements {
		fx := ApplyEffect(elem, target, damage, t.Position, target.Color)
		s.ecs.Effects = append(s.ecs.Effects, &fx)
	}
	t.State.Cooldown = AttackInterval(t, m)
}
