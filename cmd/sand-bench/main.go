package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"sandfall/internal/app"
	"sandfall/internal/core"
	"sandfall/internal/render"
	"sandfall/internal/sims/sand"

	"gopkg.in/errgo.v1"
)

type job struct {
	sc   scenario
	seed int64
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 2000, "maximum ticks to simulate per scenario")
	seeds := flag.Int("seeds", 4, "seeds to run per scenario, starting at -seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	only := flag.String("scenario", "", "comma-separated scenarios to run (default all)")
	snapshot := flag.String("png", "", "write the final frame of the first run to this PNG file")
	flag.Parse()

	core.SetLogger(app.NewLogger(os.Stderr, cfg.Verbose))

	selected, err := selectScenarios(*only)
	if err != nil {
		log.Fatal(err)
	}
	simCfg := sand.FromMap(cfg.SimConfig())

	var jobs []job
	for _, sc := range selected {
		for i := 0; i < *seeds; i++ {
			jobs = append(jobs, job{sc: sc, seed: cfg.Seed + int64(i)})
		}
	}
	core.Logger().Info("sand bench starting", "runs", len(jobs), "workers", *workers, "steps", *steps, "w", simCfg.Width, "h", simCfg.Height)

	queue := make(chan int)
	results := make([]result, len(jobs))
	var first *sand.World
	var wg sync.WaitGroup
	for i := 0; i < max(*workers, 1); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				res, w := runScenario(simCfg, jobs[idx].sc, jobs[idx].seed, *steps)
				results[idx] = res
				if idx == 0 {
					first = w
				}
			}
		}()
	}
	for idx := range jobs {
		queue <- idx
	}
	close(queue)
	wg.Wait()

	sort.SliceStable(results, func(i, j int) bool { return results[i].scenario < results[j].scenario })
	failed := false
	fmt.Printf("%-12s %8s %10s %10s %12s\n", "scenario", "seed", "particles", "settled", "per tick")
	for _, res := range results {
		settled := "never"
		if res.settledAt >= 0 {
			settled = fmt.Sprint(res.settledAt)
		}
		fmt.Printf("%-12s %8d %10d %10s %12s\n", res.scenario, res.seed, res.particles, settled, res.perTick)
		if res.err != nil {
			failed = true
			fmt.Printf("  invariant violated: %v\n", res.err)
		}
	}

	if *snapshot != "" && first != nil {
		if err := writePNG(*snapshot, first); err != nil {
			log.Fatal(err)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func selectScenarios(list string) ([]scenario, error) {
	if strings.TrimSpace(list) == "" {
		return scenarios, nil
	}
	var out []scenario
	for _, name := range strings.Split(list, ",") {
		sc, ok := findScenario(strings.TrimSpace(name))
		if !ok {
			return nil, errgo.Newf("unknown scenario %q", name)
		}
		out = append(out, sc)
	}
	return out, nil
}

func writePNG(path string, w *sand.World) error {
	size := w.Size()
	img := &image.RGBA{
		Pix:    render.FrameBytes(w.Frame()),
		Stride: 4 * size.W,
		Rect:   image.Rect(0, 0, size.W, size.H),
	}
	f, err := os.Create(path)
	if err != nil {
		return errgo.Mask(err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errgo.Notef(err, "cannot encode %s", path)
	}
	return errgo.Mask(f.Close())
}
