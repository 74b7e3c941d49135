package search

import (
	"slices"

	"github.com/lixenwraith/pathstep/grid"
)

// Greedy expands the open cell closest to End by heuristic alone
// The open list is unsorted and rescanned every Step
type Greedy struct {
	walk
	open []grid.Point
	seen map[grid.Point]bool
}

func NewGreedy(g *grid.Grid, opts ...Option) Algorithm {
	return &Greedy{walk: newWalk(g, opts)}
}

func (gr *Greedy) Init() {
	gr.reset()
	gr.open = append(gr.open[:0], gr.start)
	gr.seen = map[grid.Point]bool{gr.start: true}
}

func (gr *Greedy) Step() Result {
	if r, ok := gr.idle(); ok {
		return r
	}
	if len(gr.open) == 0 {
		return gr.finish(NoPath, 0)
	}

	best := 0
	bestH := gr.heuristic(gr.open[0])
	for i := 1; i < len(gr.open); i++ {
		if h := gr.heuristic(gr.open[i]); h < bestH {
			best, bestH = i, h
		}
	}
	current := gr.open[best]
	gr.open = slices.Delete(gr.open, best, best+1)

	if current == gr.end {
		gr.tracePath(gr.came, current)
		return gr.finish(Found, 1)
	}
	gr.g.Paint(current, grid.Visited)

	for _, n := range gr.neighbors(current) {
		if gr.seen[n] {
			continue
		}
		gr.seen[n] = true
		gr.came[n] = current
		gr.open = append(gr.open, n)
		gr.g.Paint(n, grid.Frontier)
	}
	return Result{Status: Running, NodesVisited: 1}
}
