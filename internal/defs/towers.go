// internal/defs/towers.go
package defs

import (
	"image/color"
	"strings"
)

// TowerSpec holds all the static data for a spelltower. Specs are values:
// a placed tower keeps its own copy and never writes back to the catalog.
type TowerSpec struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Color      color.RGBA `json:"color"`
	Range      float64    `json:"range"`
	Damage     float64    `json:"damage"`
	AttackRate float64    `json:"attack_rate"` // attacks per second
	Tooltip    string     `json:"tooltip"`
	Design     Element    `json:"design"`
	Hybrid     []Element  `json:"hybrid,omitempty"`
}

// IsHybrid reports whether the tower splits its damage across two elements.
func (s TowerSpec) IsHybrid() bool {
	return len(s.Hybrid) > 0
}

// Elements returns the tags the tower attacks with: both hybrid tags, or the design tag.
func (s TowerSpec) Elements() []Element {
	if s.IsHybrid() {
		out := make([]Element, len(s.Hybrid))
		copy(out, s.Hybrid)
		return out
	}
	return []Element{s.Design}
}

// Clone returns a copy that shares no memory with s.
func (s TowerSpec) Clone() TowerSpec {
	c := s
	if s.Hybrid != nil {
		c.Hybrid = append([]Element(nil), s.Hybrid...)
	}
	return c
}

// TypeLabel is the "Type:" line shown in the shop.
func (s TowerSpec) TypeLabel() string {
	var typ string
	if s.IsHybrid() {
		parts := make([]string, len(s.Hybrid))
		for i, e := range s.Hybrid {
			parts[i] = string(e)
		}
		typ = strings.Join(parts, ", ")
	} else {
		typ = string(s.Design)
	}
	if typ == "" {
		return "Unknown"
	}
	return strings.ToUpper(typ[:1]) + typ[1:]
}

// RateAttackRate возвращает рейтинг 1–5; меньшая частота атак даёт больше звёзд.
func RateAttackRate(rate float64) int {
	switch {
	case rate <= 0.6:
		return 5
	case rate <= 0.8:
		return 4
	case rate <= 1.0:
		return 3
	case rate <= 1.2:
		return 2
	default:
		return 1
	}
}

// RateDamage returns a 1-5 damage rating.
func RateDamage(damage float64) int {
	switch {
	case damage < 25:
		return 1
	case damage < 35:
		return 2
	case damage < 45:
		return 3
	case damage < 55:
		return 4
	default:
		return 5
	}
}

// RateRange returns a 1-5 range rating.
func RateRange(r float64) int {
	switch {
	case r < 70:
		return 1
	case r < 80:
		return 2
	case r < 100:
		return 3
	case r < 120:
		return 4
	default:
		return 5
	}
}
