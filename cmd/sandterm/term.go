package main

import (
	"fmt"
	"image"
	"image/color"

	"sandfall/internal/app"
	"sandfall/internal/sims/sand"

	"github.com/gdamore/tcell/v2"
)

// statusRows is the number of terminal rows reserved below the grid.
const statusRows = 2

// view draws a sand world into a tcell screen using half blocks: every
// terminal cell shows two grid rows, the upper one as foreground and the
// lower one as background.
type view struct {
	screen tcell.Screen
	world  *sand.World
	tool   *app.Tool

	paused     bool
	showChunks bool
	cursor     image.Point
	hasCursor  bool
}

func newView(screen tcell.Screen, world *sand.World) *view {
	return &view{screen: screen, world: world, tool: app.NewTool()}
}

// gridCell maps a terminal position to the grid cell under the upper half.
func (v *view) gridCell(x, y int) (image.Point, bool) {
	size := v.world.Size()
	p := image.Pt(x, y*2)
	return p, p.In(image.Rect(0, 0, size.W, size.H))
}

// handleKey applies a key press and reports whether the program should keep
// running.
func (v *view) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	switch r := ev.Rune(); r {
	case 'q':
		return false
	case ' ':
		v.paused = !v.paused
	case 'n':
		if v.paused {
			v.world.Step()
		}
	case 'r':
		v.world.Reset(0)
	case 'c':
		v.showChunks = !v.showChunks
	case '[':
		v.tool.Grow(-1)
	case ']':
		v.tool.Grow(1)
	case 'p':
		if v.hasCursor {
			v.world.AddSpawner(sand.Spawner{At: v.cursor, Radius: v.tool.Radius, Material: v.tool.Material, Interval: 4})
		}
	case 'x':
		v.world.RemoveSpawners()
	default:
		if m, ok := sand.ParseMaterial(string(r)); ok {
			v.tool.Select(m)
		}
	}
	return true
}

// handleMouse turns button state into edits. Buttons held while the pointer
// moves produce line edits between successive positions.
func (v *view) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	cell, ok := v.gridCell(x, y)
	v.cursor, v.hasCursor = cell, ok
	if !ok {
		v.tool.Release()
		return
	}
	var kind sand.EditKind
	switch buttons := ev.Buttons(); {
	case buttons&tcell.Button1 != 0:
		kind = sand.EditPaint
	case buttons&tcell.Button2 != 0:
		kind = sand.EditErase
	default:
		v.tool.Release()
		return
	}
	edit := v.tool.Stroke(cell, kind)
	if v.paused {
		v.world.Apply(edit)
		return
	}
	v.world.Queue(edit)
}

func (v *view) draw() {
	size := v.world.Size()
	frame := v.world.Frame()
	tw, th := v.screen.Size()
	rows := min((size.H+1)/2, th-statusRows)
	cols := min(size.W, tw)

	var active func(x, y int) bool
	if v.showChunks {
		activity := v.world.Activity()
		active = func(x, y int) bool {
			return activity.Active(activity.ChunkOf(x, y))
		}
	}

	for ty := 0; ty < rows; ty++ {
		for x := 0; x < cols; x++ {
			top := frame[2*ty*size.W+x]
			bottom := v.world.Config().EmptyColor
			if 2*ty+1 < size.H {
				bottom = frame[(2*ty+1)*size.W+x]
			}
			if active != nil {
				if active(x, 2*ty) {
					top = tint(top)
				}
				if 2*ty+1 < size.H && active(x, 2*ty+1) {
					bottom = tint(bottom)
				}
			}
			v.screen.SetContent(x, ty, '▀', nil, halfBlock(top, bottom))
		}
	}
	v.drawStatus(rows)
	v.screen.Show()
}

func (v *view) drawStatus(row int) {
	s := v.world.Stats()
	state := "running"
	if v.paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf(" %s  %s  tick %d  particles %d  moved %d  chunks %d", v.tool, state, s.Tick, s.Particles, s.Moved, s.ActiveChunks),
		" 1 sand  2 water  3 stone  [ ] brush  space pause  n step  r reset  c chunks  p spawner  q quit",
	}
	tw, _ := v.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 210)).Background(tcell.NewRGBColor(16, 16, 20))
	for i, line := range lines {
		runes := []rune(line)
		for x := 0; x < tw; x++ {
			r := ' '
			if x < len(runes) {
				r = runes[x]
			}
			v.screen.SetContent(x, row+i, r, nil, style)
		}
	}
}

func halfBlock(top, bottom color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// tint shifts a colour towards red to highlight active chunks.
func tint(c color.RGBA) color.RGBA {
	return color.RGBA{R: uint8((int(c.R) + 255) / 2), G: c.G / 2, B: c.B / 2, A: c.A}
}
