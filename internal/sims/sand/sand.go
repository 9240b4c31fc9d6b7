// Package sand implements a falling-material cellular automaton: typed
// particles on a dense grid moved once per tick under gravity and friction,
// with chunk-level activity tracking so idle regions are skipped.
package sand

import (
	"image"
	"image/color"

	"sandfall/internal/core"
	prng "sandfall/pkg/core"
)

// World owns the complete simulation state. It is not safe for concurrent
// use; ticks and edits must be issued from a single goroutine.
type World struct {
	cfg Config

	w, h int

	grid      *Grid
	activity  *ActivityMap
	scheduler Scheduler
	rng       *prng.RNG

	tick  uint64
	count int
	stats Stats

	pending  []Edit
	spawners []Spawner

	path     []image.Point
	editPath []image.Point
	visit    func(x, y int)

	frame        []color.RGBA
	cycle        []color.RGBA
	display      []uint8
	chunkStates  []ChunkState
	displayDirty bool
}

// Stats summarises the most recent tick.
type Stats struct {
	Tick         uint64
	Particles    int
	Moved        int
	Awake        int
	ActiveChunks int
}

// New returns a sand world with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sand world configured from the provided options.
// Width and height are rounded up to whole chunks.
func NewWithConfig(cfg Config) *World {
	cfg = cfg.normalize()
	w := &World{
		cfg:          cfg,
		w:            cfg.Width,
		h:            cfg.Height,
		grid:         newGrid(cfg.Width, cfg.Height),
		activity:     newActivityMap(cfg.Width, cfg.Height, cfg.ChunkSize),
		rng:          prng.NewRNG(cfg.Seed),
		frame:        make([]color.RGBA, cfg.Width*cfg.Height),
		cycle:        gradient(cfg.Palettes[Chromatic], gradientSteps),
		display:      make([]uint8, cfg.Width*cfg.Height),
		displayDirty: true,
	}
	w.visit = w.simulate
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the particle store for inspection.
func (w *World) Grid() *Grid { return w.grid }

// Activity exposes the chunk activity map.
func (w *World) Activity() *ActivityMap { return w.activity }

// Tick returns the number of completed ticks since the last reset.
func (w *World) Tick() uint64 { return w.tick }

// Stats returns the statistics of the most recent tick.
func (w *World) Stats() Stats { return w.stats }

// SetRNG replaces the random source driving scheduling, tie-breaks and
// painting.
func (w *World) SetRNG(r *prng.RNG) {
	if r != nil {
		w.rng = r
	}
}

// Reset empties the world and reseeds the random source. A zero seed falls
// back to the configured one. Registered spawners are kept.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.grid.clear()
	w.activity.reset()
	w.pending = w.pending[:0]
	w.tick = 0
	w.count = 0
	w.stats = Stats{}
	w.displayDirty = true
	core.Logger().Info("sand world reset", "w", w.w, "h", w.h, "chunk", w.cfg.ChunkSize, "seed", effective)
}

// Step advances the simulation by one tick: the rule engine runs over the
// active chunks, then queued edits and spawners are applied.
func (w *World) Step() {
	w.tick++
	w.stats = Stats{Tick: w.tick}
	w.stats.ActiveChunks = w.activity.advance()
	w.scheduler.Run(w.activity, w.rng, w.visit)
	w.applyPending()
	w.runSpawners()
	w.stats.Particles = w.count
	w.displayDirty = true

	if debugChecks {
		if err := w.Validate(); err != nil {
			panic(err)
		}
	}
	core.Logger().Debug("sand tick",
		"tick", w.tick,
		"particles", w.stats.Particles,
		"moved", w.stats.Moved,
		"awake", w.stats.Awake,
		"chunks", w.stats.ActiveChunks)
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
