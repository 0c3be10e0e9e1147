// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"spelltower/internal/app"
	"spelltower/internal/config"
	"spelltower/internal/layout"
	"spelltower/internal/render"
	"spelltower/internal/ui"
)

type AppGame struct {
	game           *app.Game
	renderer       *render.Renderer
	controller     *ui.Controller
	lastUpdateTime time.Time
	maxDeltaTime   float64
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > a.maxDeltaTime {
		deltaTime = a.maxDeltaTime
	}
	a.lastUpdateTime = now
	a.controller.Update(a.game)
	a.game.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	s := a.game.Snapshot()
	cfg := a.game.Config()
	a.renderer.Draw(screen, s)
	a.controller.Draw(screen, s, cfg.Player.StartHealth, cfg.Waves.SwarmEvery)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config (defaults are built in)")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	verbose := flag.Bool("v", false, "log rejected inputs")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	opts := []app.Option{app.WithVerbose(*verbose)}
	if *seed != 0 {
		opts = append(opts, app.WithSeed(*seed))
	}
	game, err := app.NewFromFiles(*configPath, opts...)
	if err != nil {
		log.Fatal(err)
	}

	cfg := game.Config()
	l := layout.New(config.ScreenWidth, config.ScreenHeight, cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.CellSize)
	a := &AppGame{
		game:           game,
		renderer:       render.NewRenderer(l, game.Catalog()),
		controller:     ui.NewController(l),
		lastUpdateTime: time.Now(),
		maxDeltaTime:   cfg.Sim.MaxDeltaTime,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Spelltower Clash")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
