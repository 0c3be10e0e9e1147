// cmd/headless/bot.go
package main

import (
	"fmt"
	"io"
	"sort"

	"spelltower/internal/app"
	"spelltower/internal/event"
	"spelltower/internal/state"
	"spelltower/pkg/gridmap"
)

const maxTowers = 8

// WaveResult - итог одной волны.
type WaveResult struct {
	Wave    int
	Kills   int
	Leaks   int
	Gold    int
	Health  int
	Towers  int
	Passive string
}

// Report is what a headless run prints.
type Report struct {
	Seed     int64
	Waves    []WaveResult
	GameOver bool
	Ticks    int
}

func (r Report) Print(w io.Writer) {
	fmt.Fprintf(w, "seed %d, %d ticks\n", r.Seed, r.Ticks)
	for _, wr := range r.Waves {
		fmt.Fprintf(w, "wave %2d: killed %2d leaked %2d | gold %4d health %2d towers %d | %s\n",
			wr.Wave, wr.Kills, wr.Leaks, wr.Gold, wr.Health, wr.Towers, wr.Passive)
	}
	if r.GameOver {
		fmt.Fprintln(w, "game over")
	}
}

// bot plays the game with a fixed greedy policy: fill free cells next to the
// route with the first shop offer, then spend the rest on the cheapest upgrade.
type bot struct {
	g            *app.Game
	kills, leaks int
}

func newBot(g *app.Game) *bot {
	b := &bot{g: g}
	g.EventDispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(func(event.Event) { b.kills++ }))
	g.EventDispatcher.Subscribe(event.EnemyLeaked, event.ListenerFunc(func(event.Event) { b.leaks++ }))
	return b
}

// buildSites lists free cells touching the route, in route order.
func (b *bot) buildSites() []gridmap.Coord {
	cfg := b.g.Config()
	seen := make(map[gridmap.Coord]bool)
	var sites []gridmap.Coord
	for _, route := range b.g.ECS.Routes {
		for _, c := range route {
			for _, d := range []gridmap.Coord{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}} {
				n := gridmap.Coord{X: c.X + d.X, Y: c.Y + d.Y}
				if seen[n] || !n.InBounds(cfg.Grid.Width, cfg.Grid.Height) {
					continue
				}
				seen[n] = true
				if b.g.ECS.Routes.Contains(n) || b.g.ECS.TowerAt(n) != nil {
					continue
				}
				sites = append(sites, n)
			}
		}
	}
	return sites
}

func (b *bot) place() bool {
	for _, c := range b.buildSites() {
		if b.g.PlaceTower(c) {
			return true
		}
	}
	return false
}

func (b *bot) upgradeCheapest() bool {
	type candidate struct {
		cell gridmap.Coord
		cost int
	}
	var cands []candidate
	for _, t := range b.g.ECS.Towers {
		if cost, ok := b.g.UpgradeCost(t.Cell); ok && cost <= b.g.Wallet.Gold {
			cands = append(cands, candidate{t.Cell, cost})
		}
	}
	if len(cands) == 0 {
		return false
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].cost < cands[j].cost })
	return b.g.RequestUpgrade(cands[0].cell) && b.g.ConfirmUpgrade()
}

// build spends gold between waves.
func (b *bot) build() {
	for {
		s := b.g.Snapshot()
		switch {
		case s.Reserved != nil:
			if !b.place() {
				return
			}
		case len(s.Towers) < maxTowers && len(s.Shop) > 0 && s.Gold >= 2*s.TowerCost:
			if !b.g.PurchaseTower(0) {
				return
			}
		case b.upgradeCheapest():
		default:
			return
		}
	}
}

// play runs up to waves waves with a fixed step dt. maxTicks bounds a single wave.
func (b *bot) play(waves int, dt float64, maxTicks int) Report {
	r := Report{Seed: b.g.Rng.Seed()}
	if b.g.Mode() == state.Intro {
		b.g.StartGame()
	}
	for w := 0; w < waves; w++ {
		b.build()
		if !b.g.StartWave() {
			break
		}
		b.kills, b.leaks = 0, 0
		for i := 0; i < maxTicks; i++ {
			m := b.g.Mode()
			if m == state.PassiveChoice || m == state.GameOver {
				break
			}
			b.g.Update(dt)
			r.Ticks++
		}

		s := b.g.Snapshot()
		res := WaveResult{
			Wave: s.Wave, Kills: b.kills, Leaks: b.leaks,
			Gold: s.Gold, Health: s.Health, Towers: len(s.Towers),
		}
		switch s.Mode {
		case state.GameOver:
			r.Waves = append(r.Waves, res)
			r.GameOver = true
			return r
		case state.PassiveChoice:
			res.Passive = s.PassiveOffer[0].Name
			b.g.ChoosePassive(0)
		}
		r.Waves = append(r.Waves, res)
		if b.g.Mode() != state.Shopping {
			break
		}
	}
	return r
}
