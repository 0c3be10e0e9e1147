// cmd/tui/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"spelltower/internal/app"
	"spelltower/internal/config"
	"spelltower/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config (defaults are built in)")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	logPath := flag.String("log", "", "write the game log to this file")
	flag.Parse()

	// лог в терминал ломает картинку
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	var opts []app.Option
	if *seed != 0 {
		opts = append(opts, app.WithSeed(*seed))
	}
	game, err := app.NewFromFiles(*configPath, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	run(screen, tui.NewSession(game), tui.NewRenderer(game.Catalog()))
}

func run(screen tcell.Screen, session *tui.Session, renderer *tui.Renderer) {
	ticker := time.NewTicker(time.Second / config.TickRate)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	maxDelta := session.Game.Config().Sim.MaxDeltaTime
	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			if !session.HandleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt > maxDelta {
				dt = maxDelta
			}
			last = now
			session.Game.Update(dt)
			renderer.Draw(screen, session.Game.Snapshot(), session.Cursor)
		}
	}
}
