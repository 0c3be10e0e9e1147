package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spelltower/internal/app"
	"spelltower/internal/config"
	"spelltower/internal/defs"
	"spelltower/internal/state"
	"spelltower/pkg/gridmap"
)

func newTestGame(t *testing.T) *app.Game {
	t.Helper()
	base, err := defs.DefaultCatalog()
	require.NoError(t, err)
	catalog := &defs.Catalog{
		Towers: []defs.TowerSpec{{
			ID: "bolt", Name: "Bolt", Range: 1000, Damage: 1000, AttackRate: 10, Design: defs.ElementArrow,
		}},
		Demons:   base.Demons,
		Passives: base.Passives,
	}
	cfg := config.Default()
	cfg.Shop.OfferSize = 1
	route := make(gridmap.Route, cfg.Grid.Width)
	for x := range route {
		route[x] = gridmap.Coord{X: x, Y: 5}
	}
	g, err := app.New(cfg, catalog, app.WithSeed(3), app.WithRoutes(route))
	require.NoError(t, err)
	return g
}

func TestExecuteLeavesIntroOnlyOnToggleOrConfirm(t *testing.T) {
	g := newTestGame(t)
	assert.False(t, Execute(g, CmdSlot1))
	assert.False(t, Execute(g, CmdInfo))
	assert.Equal(t, state.Intro, g.Mode())

	assert.True(t, Execute(g, CmdConfirm))
	assert.Equal(t, state.Shopping, g.Mode())
}

func TestBuildAndUpgradeThroughCommands(t *testing.T) {
	g := newTestGame(t)
	require.True(t, Execute(g, CmdToggle))

	require.True(t, Execute(g, CmdSlot1))
	assert.Equal(t, 75, g.Wallet.Gold)

	cell := gridmap.Coord{X: 2, Y: 4}
	assert.False(t, ClickCell(g, gridmap.Coord{X: 2, Y: 5}, false), "route cell")
	require.True(t, ClickCell(g, cell, false))
	require.NotNil(t, g.ECS.TowerAt(cell))

	require.True(t, ClickCell(g, cell, false))
	assert.Equal(t, state.UpgradePrompt, g.Mode())
	assert.True(t, Execute(g, CmdConfirm))
	assert.Equal(t, 1, g.ECS.TowerAt(cell).State.Level)
	assert.Equal(t, 45, g.Wallet.Gold)
	assert.Equal(t, state.Shopping, g.Mode())

	require.True(t, ClickCell(g, cell, true))
	assert.True(t, Execute(g, CmdCancel))
	assert.Equal(t, 1, g.ECS.TowerAt(cell).State.Level)

	assert.False(t, Execute(g, CmdConfirm), "nothing to confirm outside the prompt")
}

func TestInfoPagesWrap(t *testing.T) {
	g := newTestGame(t)
	require.True(t, Execute(g, CmdToggle))
	require.True(t, Execute(g, CmdInfo))
	assert.Equal(t, state.Info, g.Mode())

	assert.True(t, Execute(g, CmdNextPage))
	assert.Equal(t, 1, g.InfoPage())
	assert.True(t, Execute(g, CmdPrevPage))
	assert.True(t, Execute(g, CmdPrevPage))
	assert.Equal(t, config.InfoPageCount-1, g.InfoPage())
	assert.False(t, Execute(g, CmdSlot1), "shop is hidden behind info")

	assert.True(t, Execute(g, CmdCancel))
	assert.Equal(t, state.Shopping, g.Mode())
}

func TestPassiveChosenBySlot(t *testing.T) {
	g := newTestGame(t)
	require.True(t, Execute(g, CmdToggle))
	require.True(t, Execute(g, CmdSlot1))
	require.True(t, ClickCell(g, gridmap.Coord{X: 1, Y: 4}, false))
	require.True(t, Execute(g, CmdNextWave))

	for i := 0; i < 2000 && g.Mode() != state.PassiveChoice; i++ {
		g.Update(1.0 / 60)
	}
	require.Equal(t, state.PassiveChoice, g.Mode())
	assert.False(t, Execute(g, CmdSlot3), "only two choices")
	assert.True(t, Execute(g, CmdSlot2))
	assert.Equal(t, state.Shopping, g.Mode())
	assert.Len(t, g.Passives.Owned(), 1)
}

func TestToggleAndSpeed(t *testing.T) {
	g := newTestGame(t)
	require.True(t, Execute(g, CmdToggle))
	require.True(t, Execute(g, CmdToggle))
	assert.Equal(t, state.Playing, g.Mode())
	require.True(t, Execute(g, CmdToggle))
	assert.Equal(t, state.Paused, g.Mode())

	assert.True(t, Execute(g, CmdSpeed))
	assert.Equal(t, 2.0, g.SpeedMultiplier)
}

func TestResetFromAnywhere(t *testing.T) {
	g := newTestGame(t)
	require.True(t, Execute(g, CmdToggle))
	require.True(t, Execute(g, CmdInfo))
	assert.True(t, Execute(g, CmdReset))
	assert.Equal(t, state.Intro, g.Mode())
	assert.Equal(t, 100, g.Wallet.Gold)
}

func TestCopyStatus(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	g := newTestGame(t)
	assert.True(t, Execute(g, CmdCopy))
	assert.Contains(t, copied, "wave 0")
	assert.Contains(t, copied, "gold 100")

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	assert.False(t, CopyStatus(g))
}

func TestCommandNames(t *testing.T) {
	assert.Equal(t, "next wave", CmdNextWave.String())
	assert.Equal(t, "unknown", Command(99).String())
}
