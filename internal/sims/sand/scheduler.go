package sand

import prng "sandfall/pkg/core"

type span struct {
	x0, x1 int // [x0, x1)
}

// Scheduler produces the per-tick visiting order over active chunks.
// Chunk rows run bottom to top and, inside a chunk row, cell rows run bottom
// to top. Each cell row visits the spans of active chunks in shuffled order
// and the columns of each span in shuffled order, so no horizontal
// direction is favoured.
type Scheduler struct {
	spans []span
	cols  []int
}

// Run calls visit once for every cell of every chunk active in the current
// layer of a.
func (s *Scheduler) Run(a *ActivityMap, rng *prng.RNG, visit func(x, y int)) {
	for cy := a.ch - 1; cy >= 0; cy-- {
		s.collectSpans(a, cy)
		if len(s.spans) == 0 {
			continue
		}
		for ly := a.chunk - 1; ly >= 0; ly-- {
			y := cy*a.chunk + ly
			rng.Shuffle(len(s.spans), func(i, j int) { s.spans[i], s.spans[j] = s.spans[j], s.spans[i] })
			for _, sp := range s.spans {
				s.cols = s.cols[:0]
				for x := sp.x0; x < sp.x1; x++ {
					s.cols = append(s.cols, x)
				}
				rng.ShuffleInts(s.cols)
				for _, x := range s.cols {
					visit(x, y)
				}
			}
		}
	}
}

// collectSpans gathers the active chunks of chunk row cy, merging runs of
// adjacent chunks into a single span.
func (s *Scheduler) collectSpans(a *ActivityMap, cy int) {
	s.spans = s.spans[:0]
	open := false
	for cx := 0; cx < a.cw; cx++ {
		if !a.curr.At(cx, cy) {
			open = false
			continue
		}
		x0 := cx * a.chunk
		if open {
			s.spans[len(s.spans)-1].x1 = x0 + a.chunk
			continue
		}
		s.spans = append(s.spans, span{x0: x0, x1: x0 + a.chunk})
		open = true
	}
}
