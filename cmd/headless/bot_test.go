package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spelltower/internal/app"
	"spelltower/internal/config"
	"spelltower/internal/system"
	"spelltower/pkg/gridmap"
)

func newTestGame(t *testing.T, seed int64) *app.Game {
	t.Helper()
	g, err := app.NewFromFiles("", app.WithSeed(seed))
	require.NoError(t, err)
	return g
}

func TestBotFirstWaveAccountsForEveryDemon(t *testing.T) {
	g := newTestGame(t, 11)
	r := newBot(g).play(1, 1.0/config.TickRate, 600*config.TickRate)
	require.Len(t, r.Waves, 1)

	w := r.Waves[0]
	assert.Equal(t, 1, w.Wave)
	assert.Equal(t, system.Quota(1, g.Config().Waves), w.Kills+w.Leaks)
	assert.Equal(t, g.Config().Player.StartHealth-w.Leaks, w.Health)
	assert.NotEmpty(t, w.Passive)
	assert.Positive(t, w.Towers)
}

func TestBotBuildsNextToRoute(t *testing.T) {
	g := newTestGame(t, 4)
	require.True(t, g.StartGame())
	b := newBot(g)
	b.build()

	require.NotEmpty(t, g.ECS.Towers)
	for _, tw := range g.ECS.Towers {
		assert.False(t, g.ECS.Routes.Contains(tw.Cell))
		near := false
		for _, route := range g.ECS.Routes {
			for _, c := range route {
				if c.Adjacent(tw.Cell) {
					near = true
				}
			}
		}
		assert.True(t, near, "tower at %v touches the route", tw.Cell)
	}
	assert.Nil(t, g.Snapshot().Reserved)
	assert.Less(t, g.Wallet.Gold, 2*g.Config().Economy.TowerCost)
}

func TestBotIsDeterministic(t *testing.T) {
	a := newBot(newTestGame(t, 21)).play(2, 1.0/30, 30*600)
	b := newBot(newTestGame(t, 21)).play(2, 1.0/30, 30*600)
	assert.Equal(t, a, b)
}

func TestBuildSitesSkipRouteAndTowers(t *testing.T) {
	g := newTestGame(t, 2)
	b := newBot(g)
	for _, c := range b.buildSites() {
		assert.False(t, g.ECS.Routes.Contains(c))
		assert.True(t, c.InBounds(g.Config().Grid.Width, g.Config().Grid.Height))
	}
	assert.NotContains(t, b.buildSites(), gridmap.Coord{X: -1, Y: 5})
}

func TestReportPrint(t *testing.T) {
	var buf bytes.Buffer
	Report{Seed: 3, Ticks: 10, Waves: []WaveResult{{Wave: 1, Kills: 4, Gold: 140, Health: 10, Towers: 1, Passive: "Rapid Fire"}}, GameOver: true}.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "seed 3")
	assert.Contains(t, out, "Rapid Fire")
	assert.Contains(t, out, "game over")
}
