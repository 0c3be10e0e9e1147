// internal/app/tower_management.go
package app

import (
	"log"

	"spelltower/internal/defs"
	"spelltower/internal/economy"
	"spelltower/internal/event"
	"spelltower/internal/state"
	"spelltower/internal/system"
	"spelltower/pkg/gridmap"
)

// canBuild - режимы, в которых можно покупать и ставить башни.
func (g *Game) canBuild() bool {
	switch g.Mode() {
	case state.Shopping, state.Playing, state.Paused:
		return true
	}
	return false
}

// refillShop draws a fresh offer of distinct specs.
func (g *Game) refillShop() {
	idx := g.Rng.Sample(len(g.catalog.Towers), g.cfg.Shop.OfferSize)
	g.shop = make([]defs.TowerSpec, len(idx))
	for i, j := range idx {
		g.shop[i] = g.catalog.Towers[j].Clone()
	}
}

// PurchaseTower pays for shop slot and reserves its spec for placement.
// The slot leaves the offer.
func (g *Game) PurchaseTower(slot int) bool {
	if g.cancelPromptOnInput() {
		return g.reject("purchase", "upgrade prompt dismissed")
	}
	if !g.canBuild() {
		return g.reject("purchase", "mode "+g.Mode().String())
	}
	if g.reserved != nil {
		return g.reject("purchase", "a tower is already waiting to be placed")
	}
	if slot < 0 || slot >= len(g.shop) {
		return g.reject("purchase", "no such slot")
	}
	if !g.Wallet.Spend(g.cfg.Economy.TowerCost) {
		return g.reject("purchase", "not enough gold")
	}
	spec := g.shop[slot]
	g.shop = append(g.shop[:slot], g.shop[slot+1:]...)
	g.reserved = &spec
	log.Printf("Purchased %s, gold %d", spec.Name, g.Wallet.Gold)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPurchased, Data: event.TowerData{SpecID: spec.ID, Cost: g.cfg.Economy.TowerCost}})
	return true
}

// PlaceTower binds the reserved spec to cell c.
func (g *Game) PlaceTower(c gridmap.Coord) bool {
	if g.cancelPromptOnInput() {
		return g.reject("place", "upgrade prompt dismissed")
	}
	if !g.canBuild() {
		return g.reject("place", "mode "+g.Mode().String())
	}
	if g.reserved == nil {
		return g.reject("place", "nothing purchased")
	}
	if !c.InBounds(g.cfg.Grid.Width, g.cfg.Grid.Height) {
		return g.reject("place", "outside the grid")
	}
	if !g.Wallet.CanAfford(g.cfg.Economy.TowerCost) {
		return g.reject("place", "not enough gold")
	}
	if g.ECS.Routes.Contains(c) {
		return g.reject("place", "cell is on a route")
	}
	if g.ECS.TowerAt(c) != nil {
		return g.reject("place", "cell is occupied")
	}

	t := g.ECS.AddTower(system.NewTower(*g.reserved, c, g.cfg.Grid.CellSize, g.cfg.Economy.TrainedRateBoost))
	g.reserved = nil
	log.Printf("Placed %s at (%d,%d)", t.Spec.Name, c.X, c.Y)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{TowerID: int(t.ID), SpecID: t.Spec.ID, X: c.X, Y: c.Y}})
	return true
}

// UpgradeCost returns the price of the next level of the tower on c, with the
// upgrade-cost passive applied. ok is false when there is no tower or it is maxed.
func (g *Game) UpgradeCost(c gridmap.Coord) (cost int, ok bool) {
	t := g.ECS.TowerAt(c)
	if t == nil || t.State.Level >= g.cfg.MaxLevel() {
		return 0, false
	}
	base := g.cfg.Economy.UpgradeCosts[t.State.Level]
	return economy.UpgradeCost(base, g.Passives.Multiplier(defs.PassiveUpgradeCost)), true
}

// RequestUpgrade opens the upgrade prompt for the tower on c.
func (g *Game) RequestUpgrade(c gridmap.Coord) bool {
	if g.cancelPromptOnInput() {
		return g.reject("upgrade", "upgrade prompt dismissed")
	}
	from := g.Mode()
	if from != state.Shopping && from != state.Playing {
		return g.reject("upgrade", "mode "+from.String())
	}
	t := g.ECS.TowerAt(c)
	if t == nil {
		return g.reject("upgrade", "no tower on cell")
	}
	if !g.StateMachine.SetState(state.UpgradePrompt) {
		return false
	}
	g.pendingUpgrade = t
	g.upgradeReturn = from
	return true
}

// ConfirmUpgrade closes the prompt and, when the tower is below the cap and
// the player can pay, raises it one level. It reports whether it upgraded.
func (g *Game) ConfirmUpgrade() bool {
	if g.Mode() != state.UpgradePrompt || g.pendingUpgrade == nil {
		return g.reject("confirm upgrade", "no pending upgrade")
	}
	t := g.pendingUpgrade
	g.closePrompt()

	cost, ok := g.UpgradeCost(t.Cell)
	if !ok {
		return g.reject("confirm upgrade", "tower at max level")
	}
	if !g.Wallet.Spend(cost) {
		return g.reject("confirm upgrade", "not enough gold")
	}
	lvl := t.State.Level
	fx := system.ApplyUpgrade(t, g.cfg.Economy.UpgradeRateFactors[lvl], g.cfg.Economy.UpgradeRangeBonus[lvl])
	g.ECS.Effects = append(g.ECS.Effects, &fx)
	log.Printf("Upgraded %s at (%d,%d) to level %d for %d gold", t.Spec.Name, t.Cell.X, t.Cell.Y, t.State.Level, cost)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerData{
		TowerID: int(t.ID), SpecID: t.Spec.ID, X: t.Cell.X, Y: t.Cell.Y, Level: t.State.Level, Cost: cost,
	}})
	return true
}

// CancelUpgrade closes the prompt without side effects.
func (g *Game) CancelUpgrade() bool {
	if g.Mode() != state.UpgradePrompt {
		return false
	}
	g.closePrompt()
	return true
}

func (g *Game) closePrompt() {
	g.pendingUpgrade = nil
	g.StateMachine.SetState(g.upgradeReturn)
}

// cancelPromptOnInput treats any other input during the prompt as a cancel.
func (g *Game) cancelPromptOnInput() bool {
	if g.Mode() != state.UpgradePrompt {
		return false
	}
	g.closePrompt()
	return true
}

// Occupied reports whether a tower stands on c.
func (g *Game) Occupied(c gridmap.Coord) bool {
	return g.ECS.TowerAt(c) != nil
}
