package sand

import (
	"math"

	"sandfall/internal/core"
)

// restSpeed2 is the squared speed below which friction is skipped and the
// vertical velocity restarts from gravity alone.
const restSpeed2 = 0.0001

type outcome uint8

const (
	blocked outcome = iota // no legal move this tick
	drifted                // continuous motion within the origin cell
	moved                  // the particle changed cells
)

// simulate runs the rule engine for the particle at (x, y). The particle is
// taken out of the grid first and written back to exactly one cell.
func (w *World) simulate(x, y int) {
	cell := w.grid.ref(x, y)
	if cell.Material == Empty || cell.tick == w.tick || cell.Sleeping || !cell.Material.Movable() {
		return
	}
	p, _ := w.grid.Take(x, y)
	p.tick = w.tick

	if p.Lifespan > 0 {
		p.Lifespan--
		if p.Lifespan == 0 {
			w.count--
			w.vacated(x, y)
			return
		}
	}

	fx, fy, res := w.integrate(&p, x, y)
	if res == blocked {
		fx, fy, res = w.slide(&p, x, y)
	}
	if res == blocked && p.Material.Liquid() {
		fx, fy, res = w.spread(&p, x, y)
	}

	switch res {
	case moved:
		p.Sleeping = false
		w.grid.Set(fx, fy, p)
		w.vacated(x, y)
		w.activity.MarkHalo(fx, fy)
		w.stats.Moved++
		w.stats.Awake++
	case drifted:
		w.grid.Set(x, y, p)
		w.activity.MarkCell(x, y)
		w.stats.Awake++
	default:
		// A blocked particle produced no motion, so it never keeps its
		// chunk scheduled unless it is mortal. Otherwise it sleeps until a
		// neighbour wakes it, keeping the speed that survives the decay.
		p.VX = 0
		p.VY *= w.cfg.Params.SettleDecay
		if math.Abs(p.VY) < w.cfg.Params.SleepThreshold {
			p.VY = 0
		}
		if p.Lifespan > 0 {
			w.activity.MarkCell(x, y)
			w.stats.Awake++
		} else {
			p.Sleeping = true
		}
		w.grid.Set(x, y, p)
	}
}

// integrate applies gravity and friction, then walks the traced path from
// the origin towards the target cell.
func (w *World) integrate(p *Particle, x, y int) (int, int, outcome) {
	prm := &w.cfg.Params
	speed2 := p.VX*p.VX + p.VY*p.VY
	if speed2 > restSpeed2 {
		damping := 1 - prm.Friction*math.Sqrt(speed2)
		p.VX *= damping
		p.VY = prm.Gravity + damping*p.VY
	} else {
		p.VY = prm.Gravity
	}

	tx, ty := p.X+p.VX, p.Y+p.VY
	ex, ey := roundCell(tx), roundCell(ty)
	if ex == x && ey == y {
		p.X, p.Y = tx, ty
		return x, y, drifted
	}

	w.path = core.TraceLine(w.path[:0], x, y, ex, ey)
	fx, fy := x, y
	lx, ly := x, y
	collided, displaced := false, false
	for _, c := range w.path[1:] {
		if !w.grid.InBounds(c.X, c.Y) {
			collided = true
			break
		}
		other := w.grid.Material(c.X, c.Y)
		if other == Empty {
			fx, fy = c.X, c.Y
			lx, ly = c.X, c.Y
			continue
		}
		if p.Material.Displaces(other) {
			fx, fy = c.X, c.Y
			displaced = true
			break
		}
		collided = true
		break
	}
	if fx == x && fy == y {
		return x, y, blocked
	}

	switch {
	case displaced:
		w.displace(fx, fy, lx, ly)
		p.snap(fx, fy)
		p.VX *= prm.DisplaceDamping
		p.VY *= prm.DisplaceDamping
	case collided:
		p.snap(fx, fy)
		p.VX *= prm.CollisionDamping
		p.VY *= prm.CollisionDamping
	default:
		p.X, p.Y = tx, ty
	}
	return fx, fy, moved
}

// slide tries the two downward diagonals in random order.
func (w *World) slide(p *Particle, x, y int) (int, int, outcome) {
	ny := y + 1
	if ny >= w.h {
		return x, y, blocked
	}
	dir := w.rng.Sign()
	for i := 0; i < 2; i++ {
		nx := x + dir
		dir = -dir
		if nx < 0 || nx >= w.w || w.squeezed(x, y, nx, ny) {
			continue
		}
		other := w.grid.Material(nx, ny)
		if other == Empty {
			p.snap(nx, ny)
			return nx, ny, moved
		}
		if p.Material.Displaces(other) {
			w.displace(nx, ny, x, y)
			p.snap(nx, ny)
			return nx, ny, moved
		}
	}
	return x, y, blocked
}

// squeezed reports whether the diagonal step from (x, y) to (nx, ny) would
// slip between two static cells touching at the corner.
func (w *World) squeezed(x, y, nx, ny int) bool {
	return w.grid.Material(nx, y).Static() && w.grid.Material(x, ny).Static()
}

// spread moves a liquid sideways to the first empty cell of its row within
// MaxSpread, trying a random direction first.
func (w *World) spread(p *Particle, x, y int) (int, int, outcome) {
	dir := w.rng.Sign()
	for i := 0; i < 2; i++ {
		if nx, ok := w.scanRow(p.Material, x, y, dir); ok {
			p.snap(nx, y)
			return nx, y, moved
		}
		dir = -dir
	}
	return x, y, blocked
}

func (w *World) scanRow(m Material, x, y, dir int) (int, bool) {
	for d := 1; d <= w.cfg.Params.MaxSpread; d++ {
		nx := x + d*dir
		if nx < 0 || nx >= w.w {
			return 0, false
		}
		switch w.grid.Material(nx, y) {
		case Empty:
			return nx, true
		case m:
			// Liquid passes through its own kind so a pool levels out
			// instead of stacking against the first neighbour.
			continue
		default:
			return 0, false
		}
	}
	return 0, false
}

// displace moves the particle at (fx, fy) to the empty cell (lx, ly).
func (w *World) displace(fx, fy, lx, ly int) {
	q, _ := w.grid.Take(fx, fy)
	q.snap(lx, ly)
	q.Sleeping = false
	q.tick = w.tick
	w.grid.Set(lx, ly, q)
	w.activity.MarkHalo(lx, ly)
}

// vacated wakes the movable particles that may have rested on or leaned
// against (x, y) and schedules the surrounding chunks.
func (w *World) vacated(x, y int) {
	for dx := -1; dx <= 1; dx++ {
		w.wake(x+dx, y-1)
	}
	w.wake(x-1, y)
	w.wake(x+1, y)
	w.activity.MarkHalo(x, y)
}

func (w *World) wake(x, y int) {
	if !w.grid.InBounds(x, y) {
		return
	}
	p := w.grid.ref(x, y)
	if p.Sleeping && p.Material.Movable() {
		p.Sleeping = false
	}
}
