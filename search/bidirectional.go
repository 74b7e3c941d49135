package search

import (
	"github.com/lixenwraith/pathstep/frontier"
	"github.com/lixenwraith/pathstep/grid"
)

// side is one half of a bidirectional search
type side struct {
	queue *frontier.Queue[grid.Point]
	dist  map[grid.Point]int
	came  map[grid.Point]grid.Point
}

func (s *side) seed(p grid.Point) {
	if s.queue == nil {
		s.queue = frontier.NewQueue[grid.Point](64)
	} else {
		s.queue.Reset()
	}
	s.dist = map[grid.Point]int{p: 0}
	s.came = make(map[grid.Point]grid.Point)
	s.queue.Enqueue(p)
}

// head returns the depth of the next cell to expand, ok=false if exhausted
func (s *side) head() (int, bool) {
	p, ok := s.queue.Peek()
	if !ok {
		return 0, false
	}
	return s.dist[p], true
}

// BidirectionalBFS runs one FIFO from Start and one from End, expanding one cell per side per Step
// Meetings tighten an upper bound on path length; the run stops once the queue heads
// prove no shorter meeting remains, so the path length matches plain BFS
type BidirectionalBFS struct {
	walk
	fwd, bwd side

	best    int // Shortest meeting found, -1 if none
	meetFwd grid.Point
	meetBwd grid.Point
}

func NewBidirectionalBFS(g *grid.Grid, opts ...Option) Algorithm {
	return &BidirectionalBFS{walk: newWalk(g, opts)}
}

func (b *BidirectionalBFS) Init() {
	b.reset()
	b.fwd.seed(b.start)
	b.bwd.seed(b.end)
	b.best = -1
}

func (b *BidirectionalBFS) Step() Result {
	if r, ok := b.idle(); ok {
		return r
	}

	visited := 0
	if r, ok := b.settle(visited); ok {
		return r
	}
	b.expand(&b.fwd, &b.bwd, true)
	visited++

	if r, ok := b.settle(visited); ok {
		return r
	}
	b.expand(&b.bwd, &b.fwd, false)
	visited++

	if r, ok := b.settle(visited); ok {
		return r
	}
	return Result{Status: Running, NodesVisited: visited}
}

// settle checks both termination conditions
func (b *BidirectionalBFS) settle(visited int) (Result, bool) {
	hf, okF := b.fwd.head()
	hb, okB := b.bwd.head()

	if b.best < 0 {
		if !okF || !okB {
			return b.finish(NoPath, visited), true
		}
		return Result{}, false
	}

	// An exhausted side counts as infinitely deep
	if !okF || !okB || hf+hb >= b.best {
		b.g.Paint(b.meetFwd, grid.Path)
		b.g.Paint(b.meetBwd, grid.Path)
		b.tracePath(b.fwd.came, b.meetFwd)
		b.tracePath(b.bwd.came, b.meetBwd)
		return b.finish(Found, visited), true
	}
	return Result{}, false
}

func (b *BidirectionalBFS) expand(this, other *side, forward bool) {
	current, _ := this.queue.Dequeue()
	b.g.Paint(current, grid.Visited)
	depth := this.dist[current]

	for _, n := range b.neighbors(current) {
		if od, ok := other.dist[n]; ok {
			if length := depth + 1 + od; b.best < 0 || length < b.best {
				b.best = length
				if forward {
					b.meetFwd, b.meetBwd = current, n
				} else {
					b.meetFwd, b.meetBwd = n, current
				}
			}
		}
		if _, ok := this.dist[n]; ok {
			continue
		}
		this.dist[n] = depth + 1
		this.came[n] = current
		this.queue.Enqueue(n)
		if b.g.At(n) == grid.Empty {
			b.g.Paint(n, grid.Frontier)
		}
	}
}
