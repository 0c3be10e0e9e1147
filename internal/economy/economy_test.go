package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spelltower/internal/defs"
)

func passive(t *testing.T, id string) defs.Passive {
	t.Helper()
	c, err := defs.DefaultCatalog()
	require.NoError(t, err)
	p, ok := c.Passive(id)
	require.True(t, ok, id)
	return p
}

func TestWallet(t *testing.T) {
	w := NewWallet(100, 10)
	assert.True(t, w.Spend(25))
	assert.Equal(t, 75, w.Gold)
	assert.False(t, w.Spend(80))
	assert.Equal(t, 75, w.Gold)
	assert.False(t, w.Spend(-1))

	w.Earn(40)
	assert.Equal(t, 115, w.Gold)

	assert.False(t, w.Hurt(9))
	assert.True(t, w.Hurt(1))
	assert.True(t, w.Dead())
}

func TestRegistryStartsNeutral(t *testing.T) {
	r := NewPassiveRegistry()
	for _, k := range defs.WiredKinds {
		assert.Equal(t, 1.0, r.Multiplier(k))
	}
	assert.Equal(t, 1.0, r.Multiplier(defs.PassiveCritical))
	assert.Empty(t, r.Owned())
}

func TestArcaneInsightStacksMultiplicatively(t *testing.T) {
	r := NewPassiveRegistry()
	p := passive(t, "arcane_insight")
	r.Choose(p)
	r.Choose(p)

	assert.InDelta(t, 0.81, r.Multiplier(defs.PassiveUpgradeCost), 1e-9)
	assert.Equal(t, 2, r.Stacks("arcane_insight"))
	assert.Equal(t, 24, UpgradeCost(30, r.Multiplier(defs.PassiveUpgradeCost)))
	assert.Equal(t, 40, UpgradeCost(50, r.Multiplier(defs.PassiveUpgradeCost)))
}

func TestUnwiredPassiveOnlyStacks(t *testing.T) {
	r := NewPassiveRegistry()
	before := r.Multipliers()
	r.Choose(passive(t, "chain_reaction"))

	assert.Equal(t, before, r.Multipliers())
	assert.Equal(t, 1, r.Stacks("chain_reaction"))
	assert.Equal(t, []string{"chain_reaction"}, r.Owned())
}

func TestKillRewardWithGoldPassive(t *testing.T) {
	r := NewPassiveRegistry()
	assert.Equal(t, 10, KillReward(10, r.Multiplier(defs.PassiveGold)))
	r.Choose(passive(t, "wealth_magnet"))
	assert.Equal(t, 11, KillReward(10, r.Multiplier(defs.PassiveGold)))
	r.Choose(passive(t, "wealth_magnet"))
	assert.Equal(t, 12, KillReward(10, r.Multiplier(defs.PassiveGold)))
}

func TestUpgradeCostFloors(t *testing.T) {
	assert.Equal(t, 27, UpgradeCost(30, 0.9))
	assert.Equal(t, 63, UpgradeCost(70, 0.9))
	assert.Equal(t, 30, UpgradeCost(30, 1))
}
