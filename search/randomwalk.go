package search

import (
	"github.com/lixenwraith/pathstep/grid"
)

// RandomWalk moves to a uniformly random unvisited neighbor each Step
// It never backtracks, so it reports NoPath as soon as it is boxed in
type RandomWalk struct {
	walk
	current grid.Point
	seen    map[grid.Point]bool
	cands   []grid.Point
}

func NewRandomWalk(g *grid.Grid, opts ...Option) Algorithm {
	return &RandomWalk{walk: newWalk(g, opts)}
}

func (r *RandomWalk) Init() {
	r.reset()
	r.current = r.start
	r.seen = map[grid.Point]bool{r.start: true}
}

func (r *RandomWalk) Step() Result {
	if res, ok := r.idle(); ok {
		return res
	}

	if r.current == r.end {
		r.tracePath(r.came, r.current)
		return r.finish(Found, 1)
	}
	r.g.Paint(r.current, grid.Visited)

	r.cands = r.cands[:0]
	for _, n := range r.neighbors(r.current) {
		if !r.seen[n] {
			r.cands = append(r.cands, n)
		}
	}
	if len(r.cands) == 0 {
		return r.finish(NoPath, 1)
	}

	next := r.cands[r.rng().Intn(len(r.cands))]
	r.came[next] = r.current
	r.seen[next] = true
	r.g.Paint(next, grid.Frontier)
	r.current = next
	return Result{Status: Running, NodesVisited: 1}
}
