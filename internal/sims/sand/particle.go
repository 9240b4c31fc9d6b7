package sand

import (
	"image/color"
	"math"
)

// Particle is the occupant of one grid cell. X and Y hold the continuous
// position; the particle's cell is always (round(X), round(Y)).
type Particle struct {
	Material Material
	X, Y     float64
	VX, VY   float64
	Color    color.RGBA

	// Sleeping particles are skipped until a neighbour wakes them.
	Sleeping bool
	// Lifespan counts down once per processed tick when positive; the
	// particle is removed when it reaches zero. Zero means unlimited.
	// Mortal particles never fall asleep.
	Lifespan int

	tick uint64
}

// Cell returns the grid cell the particle occupies.
func (p *Particle) Cell() (int, int) {
	return roundCell(p.X), roundCell(p.Y)
}

// snap moves the continuous position onto the centre of cell (x, y).
func (p *Particle) snap(x, y int) {
	p.X, p.Y = float64(x), float64(y)
}

func roundCell(v float64) int {
	return int(math.Round(v))
}
