package search

import (
	"github.com/lixenwraith/pathstep/frontier"
	"github.com/lixenwraith/pathstep/grid"
)

// costSearch is the heap-driven core shared by A* and Dijkstra
// Improved scores are re-pushed; stale heap entries are skipped on pop via the closed set
type costSearch struct {
	walk
	useHeuristic bool

	open   *frontier.PriorityQueue[grid.Point]
	closed map[grid.Point]bool
	score  map[grid.Point]int // g for A*, distance for Dijkstra; absent = infinite
}

func (c *costSearch) priority(p grid.Point, score int) float64 {
	if c.useHeuristic {
		return float64(score + c.heuristic(p))
	}
	return float64(score)
}

func (c *costSearch) Init() {
	c.reset()
	if c.open == nil {
		c.open = frontier.NewPriorityQueue[grid.Point](c.g.Width * c.g.Height / 4)
	} else {
		c.open.Reset()
	}
	c.closed = make(map[grid.Point]bool)
	c.score = map[grid.Point]int{c.start: 0}
	c.open.Push(c.start, c.priority(c.start, 0))
}

func (c *costSearch) Step() Result {
	if r, ok := c.idle(); ok {
		return r
	}

	for {
		current, ok := c.open.Pop()
		if !ok {
			return c.finish(NoPath, 0)
		}
		if c.closed[current] {
			continue // Stale entry
		}
		c.closed[current] = true

		if current == c.end {
			c.tracePath(c.came, current)
			return c.finish(Found, 1)
		}
		c.g.Paint(current, grid.Visited)

		tentative := c.score[current] + 1
		for _, n := range c.neighbors(current) {
			if c.closed[n] {
				continue
			}
			if recorded, seen := c.score[n]; seen && tentative >= recorded {
				continue
			}
			c.score[n] = tentative
			c.came[n] = current
			c.open.Push(n, c.priority(n, tentative))
			c.g.Paint(n, grid.Frontier)
		}
		return Result{Status: Running, NodesVisited: 1}
	}
}

// AStar expands the lowest f = g + heuristic first
type AStar struct {
	costSearch
}

func NewAStar(g *grid.Grid, opts ...Option) Algorithm {
	return &AStar{costSearch{walk: newWalk(g, opts), useHeuristic: true}}
}

// Dijkstra expands the lowest accumulated distance first
type Dijkstra struct {
	costSearch
}

func NewDijkstra(g *grid.Grid, opts ...Option) Algorithm {
	return &Dijkstra{costSearch{walk: newWalk(g, opts)}}
}
