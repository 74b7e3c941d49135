package search

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/pathstep/grid"
)

// runOutcome summarizes a completed run
type runOutcome struct {
	steps   int
	visited int
	last    Result
}

// runToEnd steps until a terminal status, failing the test past limit calls
func runToEnd(t *testing.T, alg Algorithm, limit int) runOutcome {
	t.Helper()
	var out runOutcome
	for out.steps < limit {
		r := alg.Step()
		out.steps++
		out.visited += r.NodesVisited
		if r.Terminal() {
			out.last = r
			return out
		}
	}
	t.Fatalf("No terminal status after %d steps", limit)
	return out
}

func mustParse(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(rows...)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return g
}

// shortestDistance is an independent BFS over non-wall cells, -1 if unreachable
func shortestDistance(g *grid.Grid, diagonal bool) int {
	dist := map[grid.Point]int{g.Start: 0}
	queue := []grid.Point{g.Start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == g.End {
			return dist[cur]
		}
		for _, n := range g.Neighbors(cur, diagonal, nil) {
			if _, ok := dist[n]; !ok {
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	return -1
}

// markedPathDistance walks Path cells from Start to End, -1 if the marked cells do not connect them
func markedPathDistance(g *grid.Grid, diagonal bool) int {
	dist := map[grid.Point]int{g.Start: 0}
	queue := []grid.Point{g.Start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(cur, diagonal, nil) {
			if _, ok := dist[n]; ok {
				continue
			}
			switch g.At(n) {
			case grid.End:
				return dist[cur] + 1
			case grid.Path:
				dist[n] = dist[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	return -1
}

// randomGrid scatters walls with the given probability using a fixed seed
func randomGrid(seed int64, w, h int, density float64) *grid.Grid {
	rng := rand.New(rand.NewSource(seed))
	g := grid.New(w, h)
	g.MoveStart(grid.Point{X: rng.Intn(w), Y: rng.Intn(h)})
	g.MoveEnd(grid.Point{X: rng.Intn(w), Y: rng.Intn(h)})
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if rng.Float64() < density {
				g.PlaceWall(grid.Point{X: x, Y: y})
			}
		}
	}
	return g
}
