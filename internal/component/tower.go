// internal/component/tower.go
package component

import (
	"spelltower/internal/defs"
	"spelltower/internal/types"
	"spelltower/pkg/gridmap"
)

// Tower - поставленная башня. Spec - личная копия шаблона из каталога,
// изменяемые значения живут в State.
type Tower struct {
	ID   types.EntityID
	Cell gridmap.Coord
	Position
	Spec  defs.TowerSpec
	State TowerState
}

// TowerState - то, что меняется апгрейдами и тиками.
type TowerState struct {
	Range      float64
	Damage     float64
	AttackRate float64 // атак в секунду
	Cooldown   float64
	Level      int
	ShowRange  bool
}
