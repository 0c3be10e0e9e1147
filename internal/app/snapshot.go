// internal/app/snapshot.go
package app

import (
	"fmt"
	"image/color"

	"spelltower/internal/component"
	"spelltower/internal/defs"
	"spelltower/internal/state"
	"spelltower/internal/system"
	"spelltower/internal/utils"
	"spelltower/pkg/gridmap"
)

// Snapshot is a read-only copy of everything a frontend draws. It shares no
// memory with the game.
type Snapshot struct {
	Mode      state.Mode
	Suspended state.Mode // режим под экраном Info
	InfoPage  int

	Gold   int
	Health int
	Wave   int
	Quota  int // осталось заспавнить в текущей волне
	Speed  float64

	GridWidth, GridHeight int
	CellSize              float64

	Routes  []gridmap.Route
	Enemies []EnemyView
	Towers  []TowerView
	Effects []EffectView

	Shop         []defs.TowerSpec
	Reserved     *defs.TowerSpec
	TowerCost    int
	PassiveOffer []defs.Passive
	Stacks       map[string]int
	Multipliers  map[defs.PassiveKind]float64

	PendingUpgrade *gridmap.Coord
	UpgradeCost    int
	UpgradeMaxed   bool
}

type EnemyView struct {
	ID          int
	Archetype   string
	Color       color.RGBA
	X, Y        float64
	HealthRatio float64
	Slowed      bool
	Poisoned    bool
	Reversed    bool
	Tint        defs.Element
}

type TowerView struct {
	ID        int
	Cell      gridmap.Coord
	X, Y      float64
	SpecID    string
	Name      string
	Color     color.RGBA
	Design    defs.Element
	Cooldown  float64 // доля интервала до следующей атаки, 0 - готова
	Level     int
	Range     float64 // с учётом пассивки дальности
	ShowRange bool
}

type EffectView struct {
	Kind     component.EffectKind
	Element  defs.Element
	Color    color.RGBA
	X, Y     float64 // текущая точка снаряда
	FromX    float64
	FromY    float64
	ToX, ToY float64
	Progress float64
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	suspended, _ := g.StateMachine.Suspended()
	s := Snapshot{
		Mode:         g.Mode(),
		Suspended:    suspended,
		InfoPage:     g.infoPage,
		Gold:         g.Wallet.Gold,
		Health:       g.Wallet.Health,
		Wave:         g.Wave,
		Speed:        g.SpeedMultiplier,
		GridWidth:    g.cfg.Grid.Width,
		GridHeight:   g.cfg.Grid.Height,
		CellSize:     g.cfg.Grid.CellSize,
		TowerCost:    g.cfg.Economy.TowerCost,
		Stacks:       g.Passives.OwnedStacks(),
		Multipliers:  g.Passives.Multipliers(),
		PassiveOffer: append([]defs.Passive(nil), g.passiveOffer...),
	}
	if g.ECS.Wave != nil {
		s.Quota = g.ECS.Wave.Quota
	}

	for _, r := range g.ECS.Routes {
		s.Routes = append(s.Routes, append(gridmap.Route(nil), r...))
	}
	for _, spec := range g.shop {
		s.Shop = append(s.Shop, spec.Clone())
	}
	if g.reserved != nil {
		r := g.reserved.Clone()
		s.Reserved = &r
	}

	for _, e := range g.ECS.Enemies {
		if !e.Alive {
			continue
		}
		s.Enemies = append(s.Enemies, EnemyView{
			ID:          int(e.ID),
			Archetype:   e.Archetype,
			Color:       e.Color,
			X:           e.X,
			Y:           e.Y,
			HealthRatio: e.HealthRatio(),
			Slowed:      e.Status.Slowed(),
			Poisoned:    e.Status.Poisoned(),
			Reversed:    e.Status.Reversed(),
			Tint:        e.Status.Tint,
		})
	}

	m := g.Multipliers()
	for _, t := range g.ECS.Towers {
		interval := system.AttackInterval(t, m)
		s.Towers = append(s.Towers, TowerView{
			ID:        int(t.ID),
			Cell:      t.Cell,
			X:         t.X,
			Y:         t.Y,
			SpecID:    t.Spec.ID,
			Name:      t.Spec.Name,
			Color:     t.Spec.Color,
			Design:    t.Spec.Design,
			Cooldown:  utils.Clamp01(t.State.Cooldown / interval),
			Level:     t.State.Level,
			Range:     system.EffectiveRange(t, m),
			ShowRange: t.State.ShowRange,
		})
	}

	for _, fx := range g.ECS.Effects {
		p := fx.Progress()
		s.Effects = append(s.Effects, EffectView{
			Kind:     fx.Kind,
			Element:  fx.Element,
			Color:    fx.Color,
			X:        utils.Lerp(fx.FromX, fx.ToX, p),
			Y:        utils.Lerp(fx.FromY, fx.ToY, p),
			FromX:    fx.FromX,
			FromY:    fx.FromY,
			ToX:      fx.ToX,
			ToY:      fx.ToY,
			Progress: p,
		})
	}

	if g.pendingUpgrade != nil {
		c := g.pendingUpgrade.Cell
		s.PendingUpgrade = &c
		cost, ok := g.UpgradeCost(c)
		s.UpgradeCost = cost
		s.UpgradeMaxed = !ok
	}
	return s
}

// StatusLine is a one-line summary of the session, used by the HUD, the
// terminal frontend and the clipboard export.
func (s Snapshot) StatusLine() string {
	line := fmt.Sprintf("%s | wave %d | gold %d | health %d | towers %d | enemies %d | x%g",
		s.Mode, s.Wave, s.Gold, s.Health, len(s.Towers), len(s.Enemies), s.Speed)
	if owned := len(s.Stacks); owned > 0 {
		line += fmt.Sprintf(" | passives %d", owned)
	}
	return line
}
