package defs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogValidates(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)
	require.NoError(t, c.Validate(3, 2))

	assert.Len(t, c.Towers, 11)
	assert.Len(t, c.Demons, 10)
	assert.Len(t, c.Passives, 9)

	hybrid, ok := c.Tower("hybrid_vanguard")
	require.True(t, ok)
	assert.True(t, hybrid.IsHybrid())
	assert.Equal(t, []Element{ElementArcaneSurge, ElementRapidFire}, hybrid.Elements())
	assert.Equal(t, "Arcane_surge, rapid_fire", hybrid.TypeLabel())

	frost, ok := c.Tower("glacial_sentinel")
	require.True(t, ok)
	assert.Equal(t, []Element{ElementFrost}, frost.Elements())
}

func TestTowerLookupReturnsPrivateCopy(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	spec, ok := c.Tower("elemental_conflux")
	require.True(t, ok)
	spec.Hybrid[0] = ElementHoly
	spec.Damage = 1

	again, _ := c.Tower("elemental_conflux")
	assert.Equal(t, ElementRapidFire, again.Hybrid[0])
	assert.Equal(t, 42.0, again.Damage)
}

func TestDemonBins(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Equal(t, "fast", c.DemonFor(0).ID)
	assert.Equal(t, "fast", c.DemonFor(0.0999).ID)
	assert.Equal(t, "tank", c.DemonFor(0.1).ID)
	assert.Equal(t, "special", c.DemonFor(0.35).ID)
	assert.Equal(t, "celestial", c.DemonFor(0.95).ID)
	assert.Equal(t, "celestial", c.DemonFor(0.999999).ID)
}

func TestDemonStats(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	tank := c.DemonFor(0.15)
	speed, health := tank.Stats(51, 101)
	assert.InDelta(t, 35.7, speed, 1e-9)
	assert.Equal(t, 202.0, health)

	special := c.DemonFor(0.35)
	speed, health = special.Stats(51, 101)
	assert.InDelta(t, 56.0, speed, 1e-9)
	assert.Equal(t, 121.0, health) // 121.2 floored
}

func TestValidateRejects(t *testing.T) {
	base, err := DefaultCatalog()
	require.NoError(t, err)

	clone := func() *Catalog {
		c := &Catalog{
			Towers:   append([]TowerSpec(nil), base.Towers...),
			Demons:   append([]DemonArchetype(nil), base.Demons...),
			Passives: append([]Passive(nil), base.Passives...),
		}
		return c
	}

	t.Run("empty towers", func(t *testing.T) {
		c := clone()
		c.Towers = nil
		assert.True(t, errors.Is(c.Validate(3, 2), ErrEmptyCatalog))
	})
	t.Run("empty passives", func(t *testing.T) {
		c := clone()
		c.Passives = nil
		assert.ErrorIs(t, c.Validate(3, 2), ErrEmptyCatalog)
	})
	t.Run("shop larger than catalog", func(t *testing.T) {
		c := clone()
		c.Towers = c.Towers[:2]
		assert.ErrorIs(t, c.Validate(3, 2), ErrInvalidCatalog)
	})
	t.Run("unknown element", func(t *testing.T) {
		c := clone()
		c.Towers[0].Design = "plasma"
		assert.ErrorIs(t, c.Validate(3, 2), ErrInvalidCatalog)
	})
	t.Run("hybrid with one tag", func(t *testing.T) {
		c := clone()
		c.Towers[0].Hybrid = []Element{ElementFrost}
		assert.ErrorIs(t, c.Validate(3, 2), ErrInvalidCatalog)
	})
	t.Run("thresholds not ending at one", func(t *testing.T) {
		c := clone()
		c.Demons = c.Demons[:9]
		assert.ErrorIs(t, c.Validate(3, 2), ErrInvalidCatalog)
	})
	t.Run("thresholds out of order", func(t *testing.T) {
		c := clone()
		c.Demons[1], c.Demons[2] = c.Demons[2], c.Demons[1]
		assert.ErrorIs(t, c.Validate(3, 2), ErrInvalidCatalog)
	})
	t.Run("unknown passive kind", func(t *testing.T) {
		c := clone()
		c.Passives[0].Kind = "luck"
		assert.ErrorIs(t, c.Validate(3, 2), ErrInvalidCatalog)
	})
}

func TestLoadCatalogFromDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{towersFile, demonsFile, passivesFile} {
		data, err := defaultData.ReadFile("data/" + name)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}

	c, err := LoadCatalog(dir)
	require.NoError(t, err)
	assert.NoError(t, c.Validate(3, 2))

	_, err = LoadCatalog(t.TempDir())
	assert.Error(t, err)
}

func TestLoadCatalogMalformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, towersFile), []byte("{not json"), 0o644))
	_, err := LoadCatalog(dir)
	assert.ErrorContains(t, err, towersFile)
}

func TestRatings(t *testing.T) {
	assert.Equal(t, 5, RateAttackRate(0.5))
	assert.Equal(t, 3, RateAttackRate(1.0))
	assert.Equal(t, 1, RateAttackRate(1.5))
	assert.Equal(t, 1, RateDamage(20))
	assert.Equal(t, 5, RateDamage(55))
	assert.Equal(t, 4, RateRange(110))
}

func TestPassiveKinds(t *testing.T) {
	assert.True(t, PassiveUpgradeCost.Wired())
	assert.False(t, PassiveChain.Wired())
	assert.True(t, ElementFrost.Tinted())
	assert.False(t, ElementSniper.Tinted())
}

func TestStarsClamp(t *testing.T) {
	assert.Equal(t, "***--", Stars(3))
	assert.Equal(t, "-----", Stars(-1))
	assert.Equal(t, "*****", Stars(9))
}

func TestCardLines(t *testing.T) {
	spec := TowerSpec{Name: "Bolt", Design: ElementArrow, Range: 110, Damage: 20, AttackRate: 0.5}
	lines := spec.CardLines()
	require.Len(t, lines, 5)
	assert.Equal(t, "Type: Arrow", lines[1])
	assert.Contains(t, lines[2], "*****")
	assert.Contains(t, lines[3], "*----")
	assert.Contains(t, lines[4], "****-")
}

func TestInfoPages(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	title, lines := c.InfoPage(1)
	assert.Equal(t, "Spellbook", title)
	assert.Len(t, lines, len(Spellbook))

	title, lines = c.InfoPage(2)
	assert.Equal(t, "Demonology", title)
	assert.Len(t, lines, len(c.Demons))

	title, _ = c.InfoPage(-1)
	assert.Equal(t, "Passives", title)
	title, _ = c.InfoPage(len(InfoTitles))
	assert.Equal(t, "How to Play", title)
}
