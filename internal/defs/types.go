// internal/defs/types.go
package defs

import "image/color"

// Element - стихия или дизайн-тег башни/демона.
type Element string

const (
	ElementFlame     Element = "flame"
	ElementFrost     Element = "frost"
	ElementLightning Element = "lightning"
	ElementArrow     Element = "arrow"
	ElementWind      Element = "wind"
	ElementToxin     Element = "toxin"
	ElementEarth     Element = "earth"
	ElementShadow    Element = "shadow"
	ElementHoly      Element = "holy"
	ElementShield    Element = "shield"

	// Design tags. They carry no on-hit effect of their own.
	ElementSniper  Element = "sniper"
	ElementBurst   Element = "burst"
	ElementSwirl   Element = "swirl"
	ElementBastion Element = "bastion"
	ElementHybrid  Element = "hybrid"

	// Tags only found on hybrid towers.
	ElementArcaneSurge Element = "arcane_surge"
	ElementRapidFire   Element = "rapid_fire"

	// Demon affinities.
	ElementFire    Element = "fire"
	ElementDark    Element = "dark"
	ElementSerpent Element = "serpent"
)

var knownElements = map[Element]bool{
	ElementFlame: true, ElementFrost: true, ElementLightning: true, ElementArrow: true,
	ElementWind: true, ElementToxin: true, ElementEarth: true, ElementShadow: true,
	ElementHoly: true, ElementShield: true, ElementSniper: true, ElementBurst: true,
	ElementSwirl: true, ElementBastion: true, ElementHybrid: true,
	ElementArcaneSurge: true, ElementRapidFire: true,
	ElementFire: true, ElementDark: true, ElementSerpent: true,
}

// Known reports whether e is part of the closed element set.
func (e Element) Known() bool {
	return knownElements[e]
}

// Tinted reports whether hitting an enemy with e leaves a status tint.
func (e Element) Tinted() bool {
	_, ok := ElementTints[e]
	return ok
}

// ElementTints are the feedback colors attached to a hit enemy.
var ElementTints = map[Element]color.RGBA{
	ElementFlame:     {255, 150, 50, 80},
	ElementFrost:     {173, 216, 230, 80},
	ElementLightning: {255, 255, 100, 80},
	ElementArrow:     {220, 220, 220, 80},
	ElementWind:      {200, 200, 255, 80},
	ElementToxin:     {150, 0, 150, 80},
	ElementEarth:     {139, 69, 19, 80},
	ElementShadow:    {100, 100, 100, 80},
	ElementHoly:      {255, 255, 255, 80},
	ElementShield:    {200, 200, 200, 80},
}

// ElementInfo is one spellbook entry.
type ElementInfo struct {
	Element     Element
	Name        string
	Color       color.RGBA
	Description string
}

// Spellbook lists the elements shown on the info screen.
var Spellbook = []ElementInfo{
	{ElementFlame, "Flame", color.RGBA{255, 69, 0, 255}, "Explosive, searing bursts."},
	{ElementFrost, "Frost", color.RGBA{173, 216, 230, 255}, "Icy blasts that slow enemies."},
	{ElementLightning, "Lightning", color.RGBA{255, 255, 0, 255}, "Chain lightning strikes."},
	{ElementArrow, "Arrow", color.RGBA{192, 192, 192, 255}, "Piercing, swift projectiles."},
	{ElementWind, "Wind", color.RGBA{123, 104, 238, 255}, "Gusts that push foes back."},
	{ElementToxin, "Toxin", color.RGBA{75, 0, 130, 255}, "Poison clouds that drain vitality."},
	{ElementEarth, "Earth", color.RGBA{139, 69, 19, 255}, "Crushing impacts."},
	{ElementShadow, "Shadow", color.RGBA{75, 0, 130, 255}, "Weakening, sapping energy."},
	{ElementHoly, "Holy", color.RGBA{255, 215, 0, 255}, "Divine smiting power."},
	{ElementShield, "Shield", color.RGBA{200, 200, 200, 255}, "Enemies hit take 25% extra damage."},
}
