package search

import (
	"github.com/lixenwraith/pathstep/frontier"
	"github.com/lixenwraith/pathstep/grid"
)

// BFS expands cells in discovery order
// The goal test runs on discovery, so End is finalized in the same Step that reaches it
type BFS struct {
	walk
	queue *frontier.Queue[grid.Point]
	seen  map[grid.Point]bool
}

func NewBFS(g *grid.Grid, opts ...Option) Algorithm {
	return &BFS{walk: newWalk(g, opts)}
}

func (b *BFS) Init() {
	b.reset()
	if b.queue == nil {
		b.queue = frontier.NewQueue[grid.Point](b.g.Width + b.g.Height)
	} else {
		b.queue.Reset()
	}
	b.seen = map[grid.Point]bool{b.start: true}
	b.queue.Enqueue(b.start)
}

func (b *BFS) Step() Result {
	if r, ok := b.idle(); ok {
		return r
	}

	current, ok := b.queue.Dequeue()
	if !ok {
		return b.finish(NoPath, 0)
	}
	b.g.Paint(current, grid.Visited)

	for _, n := range b.neighbors(current) {
		if b.seen[n] {
			continue
		}
		b.seen[n] = true
		b.came[n] = current
		if n == b.end {
			b.tracePath(b.came, n)
			return b.finish(Found, 2)
		}
		b.queue.Enqueue(n)
		b.g.Paint(n, grid.Frontier)
	}
	return Result{Status: Running, NodesVisited: 1}
}
