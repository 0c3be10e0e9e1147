// internal/system/tower.go
package system

import (
	"spelltower/internal/component"
	"spelltower/internal/defs"
	"spelltower/pkg/gridmap"
)

// NewTower builds a tower on cell from a private copy of spec. The attack
// rate starts at rateBoost times the catalog value.
func NewTower(spec defs.TowerSpec, cell gridmap.Coord, cellSize, rateBoost float64) *component.Tower {
	x, y := cell.Center(cellSize)
	spec = spec.Clone()
	return &component.Tower{
		Cell:     cell,
		Position: component.Position{X: x, Y: y},
		Spec:     spec,
		State: component.TowerState{
			Range:      spec.Range,
			Damage:     spec.Damage,
			AttackRate: spec.AttackRate * rateBoost,
			ShowRange:  true,
		},
	}
}

// ApplyUpgrade raises the tower one level: attack rate times rateFactor,
// range plus rangeBonus. It also returns the upgrade flash.
func ApplyUpgrade(t *component.Tower, rateFactor, rangeBonus float64) component.AttackEffect {
	t.State.AttackRate *= rateFactor
	t.State.Range += rangeBonus
	t.State.Level++
	return component.AttackEffect{
		Kind:     component.EffectUpgrade,
		Color:    t.Spec.Color,
		FromX:    t.X,
		FromY:    t.Y,
		ToX:      t.X,
		ToY:      t.Y,
		Duration: UpgradeEffectDuration,
	}
}
