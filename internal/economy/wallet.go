// internal/economy/wallet.go
package economy

import "math"

// Wallet - золото и здоровье игрока.
type Wallet struct {
	Gold   int
	Health int
}

func NewWallet(gold, health int) *Wallet {
	return &Wallet{Gold: gold, Health: health}
}

// CanAfford reports whether the balance covers cost.
func (w *Wallet) CanAfford(cost int) bool {
	return w.Gold >= cost
}

// Spend deducts cost if affordable.
func (w *Wallet) Spend(cost int) bool {
	if cost < 0 || !w.CanAfford(cost) {
		return false
	}
	w.Gold -= cost
	return true
}

func (w *Wallet) Earn(amount int) {
	if amount > 0 {
		w.Gold += amount
	}
}

// Hurt removes player health and reports whether the player is out of it.
func (w *Wallet) Hurt(amount int) bool {
	w.Health -= amount
	return w.Dead()
}

func (w *Wallet) Dead() bool {
	return w.Health <= 0
}

// floorScaled multiplies base by mult and floors the result. The epsilon keeps
// products such as 30*0.9 from landing one below the intended integer.
func floorScaled(base int, mult float64) int {
	return int(math.Floor(float64(base)*mult + 1e-9))
}

// UpgradeCost applies the upgrade-cost multiplier to a base price.
func UpgradeCost(base int, mult float64) int {
	return floorScaled(base, mult)
}

// KillReward applies the gold multiplier to the flat kill reward.
func KillReward(base int, mult float64) int {
	return floorScaled(base, mult)
}
