// cmd/headless/main.go
package main

import (
	"flag"
	"log"
	"os"

	"spelltower/internal/app"
	"spelltower/internal/config"
	"spelltower/internal/event"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config (defaults are built in)")
	seed := flag.Int64("seed", 1, "random seed")
	waves := flag.Int("waves", 10, "number of waves to play")
	verbose := flag.Bool("v", false, "log every core event")
	flag.Parse()

	opts := []app.Option{app.WithSeed(*seed), app.WithVerbose(*verbose)}
	if *verbose {
		opts = append(opts, app.WithListener(event.Logger{}))
	}
	game, err := app.NewFromFiles(*configPath, opts...)
	if err != nil {
		log.Fatal(err)
	}

	dt := 1.0 / config.TickRate
	report := newBot(game).play(*waves, dt, 600*config.TickRate)
	report.Print(os.Stdout)
	if report.GameOver {
		os.Exit(2)
	}
}
