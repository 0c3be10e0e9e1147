// internal/economy/passives.go
package economy

import (
	"sort"

	"spelltower/internal/defs"
)

// PassiveRegistry - глобальные множители и купленные стаки пассивок.
// Множители меняются только через Choose, стаки только растут.
type PassiveRegistry struct {
	multipliers map[defs.PassiveKind]float64
	stacks      map[string]int
}

func NewPassiveRegistry() *PassiveRegistry {
	r := &PassiveRegistry{
		multipliers: make(map[defs.PassiveKind]float64, len(defs.WiredKinds)),
		stacks:      make(map[string]int),
	}
	for _, k := range defs.WiredKinds {
		r.multipliers[k] = 1.0
	}
	return r
}

// Choose takes one stack of p. Wired kinds multiply their multiplier by the step.
func (r *PassiveRegistry) Choose(p defs.Passive) {
	r.stacks[p.ID]++
	if p.Kind.Wired() {
		r.multipliers[p.Kind] *= p.Step
	}
}

// Multiplier returns the current multiplier of kind; unwired kinds stay at 1.
func (r *PassiveRegistry) Multiplier(kind defs.PassiveKind) float64 {
	if m, ok := r.multipliers[kind]; ok {
		return m
	}
	return 1.0
}

func (r *PassiveRegistry) Stacks(id string) int {
	return r.stacks[id]
}

// Multipliers returns a copy of the wired multipliers.
func (r *PassiveRegistry) Multipliers() map[defs.PassiveKind]float64 {
	out := make(map[defs.PassiveKind]float64, len(r.multipliers))
	for k, v := range r.multipliers {
		out[k] = v
	}
	return out
}

// OwnedStacks returns a copy of the stack counts.
func (r *PassiveRegistry) OwnedStacks() map[string]int {
	out := make(map[string]int, len(r.stacks))
	for k, v := range r.stacks {
		out[k] = v
	}
	return out
}

// Owned lists the ids with at least one stack, sorted.
func (r *PassiveRegistry) Owned() []string {
	ids := make([]string, 0, len(r.stacks))
	for id := range r.stacks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
