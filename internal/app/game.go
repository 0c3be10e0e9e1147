// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"spelltower/internal/component"
	"spelltower/internal/config"
	"spelltower/internal/defs"
	"spelltower/internal/economy"
	"spelltower/internal/entity"
	"spelltower/internal/event"
	"spelltower/internal/state"
	"spelltower/internal/system"
	"spelltower/internal/utils"
	"spelltower/pkg/gridmap"
)

// Game holds the whole simulation: world, economy, mode and pending decisions.
// It is not safe for concurrent use; frontends drive it from one goroutine.
type Game struct {
	cfg     *config.Config
	catalog *defs.Catalog
	Rng     *utils.PRNGService

	ECS                *entity.ECS
	EventDispatcher    *event.Dispatcher
	StateMachine       *state.StateMachine
	Wallet             *economy.Wallet
	Passives           *economy.PassiveRegistry
	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	StatusEffectSystem *system.StatusEffectSystem
	CombatSystem       *system.CombatSystem
	VisualEffectSystem *system.VisualEffectSystem

	Wave            int
	SpeedMultiplier float64
	Verbose         bool

	shop           []defs.TowerSpec
	reserved       *defs.TowerSpec
	passiveOffer   []defs.Passive
	pendingUpgrade *component.Tower
	upgradeReturn  state.Mode
	infoPage       int

	fixedRoutes gridmap.RouteSet
}

// Option configures a Game at construction.
type Option func(*Game)

// WithSeed makes every random draw of the game reproducible.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.Rng = utils.NewPRNGService(seed)
	}
}

// WithRoutes replaces generated routes. Each reset reuses them.
func WithRoutes(routes ...gridmap.Route) Option {
	return func(g *Game) {
		g.fixedRoutes = append(gridmap.RouteSet(nil), routes...)
	}
}

// WithListener subscribes l to every core event.
func WithListener(l event.Listener) Option {
	return func(g *Game) {
		g.EventDispatcher.SubscribeAll(l)
	}
}

// WithVerbose logs rejected inputs.
func WithVerbose(v bool) Option {
	return func(g *Game) {
		g.Verbose = v
	}
}

// New validates cfg and catalog and builds a game in the intro mode.
func New(cfg *config.Config, catalog *defs.Catalog, opts ...Option) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog: %w", defs.ErrEmptyCatalog)
	}
	if err := catalog.Validate(cfg.Shop.OfferSize, cfg.Passives.OfferSize); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	g := &Game{
		cfg:             cfg,
		catalog:         catalog,
		EventDispatcher: event.NewDispatcher(),
		SpeedMultiplier: 1.0,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Rng == nil {
		g.Rng = utils.NewPRNGService(cfg.Sim.Seed)
	}
	for i, r := range g.fixedRoutes {
		if err := r.Validate(cfg.Grid.Width, cfg.Grid.Height); err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}
	}
	g.StateMachine = state.NewStateMachine(g.onModeChange)
	g.reset()
	log.Printf("Game created: %dx%d grid, seed %d", cfg.Grid.Width, cfg.Grid.Height, g.Rng.Seed())
	return g, nil
}

// reset rebuilds the world. Subscriptions on the dispatcher survive.
func (g *Game) reset() {
	g.ECS = entity.NewECS()
	if len(g.fixedRoutes) > 0 {
		g.ECS.Routes = append(gridmap.RouteSet(nil), g.fixedRoutes...)
	} else {
		gen := gridmap.NewPathGenerator(g.cfg.Grid.Width, g.cfg.Grid.Height, g.Rng)
		g.ECS.Routes = gridmap.RouteSet{gen.Generate()}
	}

	g.Wallet = economy.NewWallet(g.cfg.Player.StartGold, g.cfg.Player.StartHealth)
	g.Passives = economy.NewPassiveRegistry()
	g.WaveSystem = system.NewWaveSystem(g.ECS, g.cfg.Waves, g.cfg.Grid.CellSize, g.catalog, g.Rng, g.EventDispatcher)
	g.MovementSystem = system.NewMovementSystem(g.ECS)
	g.StatusEffectSystem = system.NewStatusEffectSystem(g.ECS)
	g.CombatSystem = system.NewCombatSystem(g.ECS)
	g.VisualEffectSystem = system.NewVisualEffectSystem(g.ECS)

	g.Wave = 0
	g.reserved = nil
	g.passiveOffer = nil
	g.pendingUpgrade = nil
	g.infoPage = 0
	g.refillShop()
	g.StateMachine.Reset()
}

// Config returns the configuration the game runs with.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// Catalog returns the definitions the game runs with.
func (g *Game) Catalog() *defs.Catalog {
	return g.catalog
}

// Mode returns the current mode.
func (g *Game) Mode() state.Mode {
	return g.StateMachine.Current()
}

// Multipliers returns the passive bonuses the towers read.
func (g *Game) Multipliers() system.Multipliers {
	return system.Multipliers{
		AttackSpeed: g.Passives.Multiplier(defs.PassiveAttackSpeed),
		Damage:      g.Passives.Multiplier(defs.PassiveDamage),
		Range:       g.Passives.Multiplier(defs.PassiveRange),
	}
}

// Update advances the simulation by deltaTime seconds. Only the playing mode
// moves the clock.
func (g *Game) Update(deltaTime float64) {
	if g.Mode() != state.Playing || deltaTime <= 0 {
		return
	}
	dt := deltaTime * g.SpeedMultiplier
	g.ECS.GameTime += dt

	g.WaveSystem.Update(dt)
	g.StatusEffectSystem.Update(dt)
	g.MovementSystem.Update(dt)
	if g.settleEnemies() {
		return
	}
	g.CombatSystem.Update(dt, g.Multipliers())
	g.VisualEffectSystem.Update(dt)

	if g.WaveSystem.Cleared() {
		g.endWave()
	}
}

// settleEnemies handles leaks and kill rewards and drops finished enemies.
// It reports whether the game ended.
func (g *Game) settleEnemies() bool {
	over := false
	for _, e := range g.ECS.Enemies {
		switch {
		case e.Alive && e.ReachedEnd():
			e.Alive = false
			e.Rewarded = true // утечка не оплачивается
			dead := g.Wallet.Hurt(1)
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: event.EnemyData{EnemyID: int(e.ID), Archetype: e.Archetype}})
			if dead {
				over = true
			}
		case !e.Alive && !e.Rewarded:
			reward := economy.KillReward(g.cfg.Economy.KillReward, g.Passives.Multiplier(defs.PassiveGold))
			g.Wallet.Earn(reward)
			e.Rewarded = true
			g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{EnemyID: int(e.ID), Archetype: e.Archetype, Reward: reward}})
		}
	}
	g.ECS.RemoveEnemies(func(e *component.Enemy) bool { return !e.Alive && e.Rewarded })

	if over {
		log.Printf("Game over on wave %d", g.Wave)
		g.StateMachine.SetState(state.GameOver)
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.WaveData{Wave: g.Wave}})
	}
	return over
}

func (g *Game) endWave() {
	idx := g.Rng.Sample(len(g.catalog.Passives), g.cfg.Passives.OfferSize)
	g.passiveOffer = make([]defs.Passive, len(idx))
	for i, j := range idx {
		g.passiveOffer[i] = g.catalog.Passives[j]
	}
	g.ECS.Wave = nil
	log.Printf("Wave %d cleared, gold %d, health %d", g.Wave, g.Wallet.Gold, g.Wallet.Health)
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WaveData{Wave: g.Wave}})
	g.StateMachine.SetState(state.PassiveChoice)
}

func (g *Game) onModeChange(from, to state.Mode) {
	g.EventDispatcher.Dispatch(event.Event{Type: event.ModeChanged, Data: event.ModeData{From: from.String(), To: to.String()}})
}

// reject logs a refused input when verbose.
func (g *Game) reject(action, reason string) bool {
	if g.Verbose {
		log.Printf("Rejected %s: %s", action, reason)
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.InputRejected, Data: event.RejectData{Action: action, Reason: reason}})
	return false
}
