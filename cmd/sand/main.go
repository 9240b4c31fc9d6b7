//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"sandfall/internal/app"
	"sandfall/internal/core"
	"sandfall/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	core.SetLogger(app.NewLogger(os.Stderr, cfg.Verbose))

	world := sand.NewWithConfig(sand.FromMap(cfg.SimConfig()))
	world.Reset(cfg.Seed)

	game := app.New(world, cfg.Scale, cfg.Seed)
	size := world.Size()

	ebiten.SetWindowTitle("sandfall")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
