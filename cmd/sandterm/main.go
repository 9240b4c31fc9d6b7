package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"sandfall/internal/app"
	"sandfall/internal/core"
	"sandfall/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	fit := flag.Bool("fit", true, "size the grid to the terminal, ignoring -w and -h")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	core.SetLogger(app.NewLogger(logOut, cfg.Verbose))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	if *fit {
		w, h := screen.Size()
		cfg.Width = w
		cfg.Height = 2 * max(h-statusRows, 1)
	}
	world := sand.NewWithConfig(sand.FromMap(cfg.SimConfig()))
	world.Reset(cfg.Seed)

	run(screen, newView(screen, world), cfg.TPS)
	screen.Fini()
}

func run(screen tcell.Screen, v *view, tps int) {
	timer := core.NewFixedStep(tps)
	ticker := time.NewTicker(timer.Interval())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.handleKey(ev) {
					return
				}
			case *tcell.EventMouse:
				v.handleMouse(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if !v.paused {
				for n := timer.Advance(); n > 0; n-- {
					v.world.Step()
				}
			}
			v.draw()
		}
	}
}
