//go:build ebiten

package app

import (
	"fmt"
	"image"
	"time"

	"sandfall/internal/render"
	"sandfall/internal/sims/sand"
	"sandfall/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the parameter panel.
const HUDWidth = 240

// Game adapts a sand world to the ebiten.Game interface.
type Game struct {
	world   *sand.World
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	tool    *Tool

	scale     int
	paused    bool
	tickOnce  bool
	materials bool
	seed      int64
}

// New constructs a Game for the provided world.
func New(world *sand.World, scale int, seed int64) *Game {
	size := world.Size()
	g := &Game{
		world:   world,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(world, scale),
		hud:     ui.NewHUD(world, HUDWidth),
		tool:    NewTool(),
		scale:   scale,
		seed:    seed,
	}
	palette := world.Palette()
	swatches := make([]ui.Swatch, 0, len(sand.Materials()))
	for _, m := range sand.Materials() {
		swatches = append(swatches, ui.Swatch{Label: m.String(), Color: palette[m]})
	}
	g.hud.SetSwatches(swatches)
	g.selectMaterial(0)
	return g
}

func (g *Game) selectMaterial(i int) {
	ms := sand.Materials()
	if i < 0 || i >= len(ms) {
		return
	}
	g.tool.Select(ms[i])
	g.hud.Select(i)
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	for i, key := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4} {
		if inpututil.IsKeyJustPressed(key) {
			g.selectMaterial(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.materials = !g.materials
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.tool.Grow(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.tool.Grow(1)
	}

	g.overlay.Update()
	g.handlePointer()
	if i := g.hud.Update(g.world.Size().W * g.scale); i >= 0 {
		g.selectMaterial(i)
	}

	if !g.paused || g.tickOnce {
		g.world.Step()
		g.tickOnce = false
	}
	g.hud.SetStatus(g.statusLines()...)
	return nil
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	cell := image.Pt(mx/g.scale, my/g.scale)
	size := g.world.Size()
	if !cell.In(image.Rect(0, 0, size.W, size.H)) {
		g.tool.Release()
		g.overlay.SetBrush(image.Rectangle{})
		return
	}
	g.overlay.SetBrush(g.tool.Footprint(cell))

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.world.AddSpawner(sand.Spawner{At: cell, Radius: g.tool.Radius, Material: g.tool.Material, Interval: 4})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.world.RemoveSpawners()
	}

	var kind sand.EditKind
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		kind = sand.EditPaint
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		kind = sand.EditErase
	default:
		g.tool.Release()
		return
	}
	edit := g.tool.Stroke(cell, kind)
	if g.paused {
		g.world.Apply(edit)
		return
	}
	g.world.Queue(edit)
}

func (g *Game) statusLines() []string {
	s := g.world.Stats()
	state := "running"
	if g.paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("tool %s (%s)", g.tool, state),
		fmt.Sprintf("tick %d  tps %.0f", s.Tick, ebiten.ActualTPS()),
		fmt.Sprintf("particles %d", s.Particles),
		fmt.Sprintf("moved %d  awake %d", s.Moved, s.Awake),
		fmt.Sprintf("active chunks %d", s.ActiveChunks),
		fmt.Sprintf("spawners %d", len(g.world.Spawners())),
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.materials {
		g.painter.BlitCells(screen, g.world.Cells(), g.world.Palette(), g.scale)
	} else {
		g.painter.BlitFrame(screen, g.world.Frame(), g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.world.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
