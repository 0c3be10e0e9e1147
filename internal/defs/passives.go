// internal/defs/passives.go
package defs

import "image/color"

// PassiveKind - вид глобального множителя, на который влияет пассивка.
type PassiveKind string

const (
	PassiveAttackSpeed PassiveKind = "attack_speed"
	PassiveDamage      PassiveKind = "damage"
	PassiveGold        PassiveKind = "gold"
	PassiveRange       PassiveKind = "range"
	PassiveUpgradeCost PassiveKind = "upgrade_cost"

	// Tracked as owned stacks only; nothing reads them yet.
	PassiveElemental  PassiveKind = "elemental"
	PassiveSpellPower PassiveKind = "spell_power"
	PassiveCritical   PassiveKind = "critical"
	PassiveChain      PassiveKind = "chain"
)

// WiredKinds are the kinds backed by a multiplier consumed by towers or the economy.
var WiredKinds = []PassiveKind{PassiveAttackSpeed, PassiveDamage, PassiveGold, PassiveRange, PassiveUpgradeCost}

var knownKinds = map[PassiveKind]bool{
	PassiveAttackSpeed: true, PassiveDamage: true, PassiveGold: true, PassiveRange: true,
	PassiveUpgradeCost: true, PassiveElemental: true, PassiveSpellPower: true,
	PassiveCritical: true, PassiveChain: true,
}

// Wired reports whether k moves a multiplier.
func (k PassiveKind) Wired() bool {
	for _, w := range WiredKinds {
		if w == k {
			return true
		}
	}
	return false
}

// Passive is one entry of the passive catalog.
type Passive struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Short       string      `json:"short"`
	Description string      `json:"description"`
	Color       color.RGBA  `json:"color"`
	Kind        PassiveKind `json:"kind"`
	Step        float64     `json:"step"`
}
