package search

import (
	"github.com/lixenwraith/pathstep/grid"
)

// DFS expands the most recently pushed cell
type DFS struct {
	walk
	stack []grid.Point
	seen  map[grid.Point]bool
}

func NewDFS(g *grid.Grid, opts ...Option) Algorithm {
	return &DFS{walk: newWalk(g, opts)}
}

func (d *DFS) Init() {
	d.reset()
	d.stack = append(d.stack[:0], d.start)
	d.seen = map[grid.Point]bool{d.start: true}
}

func (d *DFS) Step() Result {
	if r, ok := d.idle(); ok {
		return r
	}
	if len(d.stack) == 0 {
		return d.finish(NoPath, 0)
	}

	current := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]

	if current == d.end {
		d.tracePath(d.came, current)
		return d.finish(Found, 1)
	}
	d.g.Paint(current, grid.Visited)

	for _, n := range d.neighbors(current) {
		if d.seen[n] {
			continue
		}
		d.seen[n] = true
		d.came[n] = current
		d.stack = append(d.stack, n)
		d.g.Paint(n, grid.Frontier)
	}
	return Result{Status: Running, NodesVisited: 1}
}
