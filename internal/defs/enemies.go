// internal/defs/enemies.go
package defs

import "image/color"

// DemonArchetype holds the static data for one demon type. Archetypes form an
// ordered table of bins over [0,1): a draw r selects the first archetype whose
// Threshold is greater than r.
type DemonArchetype struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Color       color.RGBA `json:"color"`
	Threshold   float64    `json:"threshold"`
	HealthMult  float64    `json:"health_mult"`
	SpeedMult   float64    `json:"speed_mult"`
	SpeedBonus  float64    `json:"speed_bonus,omitempty"`
	Element     Element    `json:"element"`
	Weakness    Element    `json:"weakness"`
}

// Stats scales the wave's base speed and health by the archetype's multipliers.
// Health is floored to a whole number.
func (a DemonArchetype) Stats(baseSpeed, baseHealth float64) (speed, health float64) {
	speed = baseSpeed*a.SpeedMult + a.SpeedBonus
	health = float64(int(baseHealth * a.HealthMult))
	return speed, health
}
