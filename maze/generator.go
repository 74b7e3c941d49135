package maze

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/pathstep/frontier"
	"github.com/lixenwraith/pathstep/grid"
)

const (
	// One wall per this many cells in a light scatter
	lightCellsPerWall = 7
	lightTriesPerWall = 4

	// One extra opening per this many cells in a dense maze
	denseCellsPerOpening = 18
	denseTriesPerOpening = 10

	// Smallest grid that has an interior to carve
	minDenseSide = 3
)

// Generator rewrites a grid's walls in place using its own random source
type Generator struct {
	rng *rand.Rand
}

// New creates a generator; seed 0 seeds from the clock
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// GenerateLight scatters walls using a clock-seeded generator
func GenerateLight(g *grid.Grid) {
	New(0).Light(g)
}

// GenerateDense carves a maze using a clock-seeded generator
func GenerateDense(g *grid.Grid) {
	New(0).Dense(g)
}

// Light clears every non-marker cell, then places about one wall per seven cells
// Markers are never overwritten; if the scatter cuts End off, walls are opened
// along the shortest route back to Start's region
func (m *Generator) Light(g *grid.Grid) {
	clearOpen(g)

	wallCount := g.Width * g.Height / lightCellsPerWall
	placed, tries := 0, 0
	for placed < wallCount && tries < wallCount*lightTriesPerWall {
		tries++
		p := grid.Point{X: m.rng.Intn(g.Width), Y: m.rng.Intn(g.Height)}
		if g.IsReserved(p) || g.At(p) == grid.Wall {
			continue
		}
		g.PlaceWall(p)
		placed++
	}

	if !Reachable(g, g.Start, g.End) {
		forceOpen(g, g.End, g.Start)
	}
}

// Dense fills the grid with walls, carves a backtracker maze from (1,1), punches
// extra openings to create loops, joins Start to the maze, then moves End if
// Start cannot reach it
// Grids without a carvable interior are left fully open
func (m *Generator) Dense(g *grid.Grid) {
	if g.Width < minDenseSide || g.Height < minDenseSide {
		clearOpen(g)
		return
	}

	for y := range g.Cells {
		row := g.Cells[y]
		for x := range row {
			row[x] = grid.Wall
		}
	}

	origin := grid.Point{X: 1, Y: 1}
	m.carve(g, origin)
	m.addOpenings(g)
	g.RestoreMarkers()

	// A user-placed Start on the border or off the carve lattice can be walled in
	forceOpen(g, g.Start, origin)

	if !Reachable(g, g.Start, g.End) {
		relaxEnd(g)
	}
	if !Reachable(g, g.Start, g.End) {
		forceOpen(g, g.End, g.Start)
	}
}

// --- Core Algorithms ---

// frame is one level of the backtracker with its shuffled direction order
type frame struct {
	at   grid.Point
	dirs [4]grid.Point
	next int
}

// carve runs an iterative recursive-backtracker with step 2, keeping a one-cell border
// Each frame visits its directions in shuffled order, matching depth-first recursion
func (m *Generator) carve(g *grid.Grid, origin grid.Point) {
	g.Set(origin, grid.Empty)
	stack := []frame{m.newFrame(origin)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.dirs[top.next]
		top.next++

		nx, ny := top.at.X+d.X*2, top.at.Y+d.Y*2
		if nx <= 0 || nx >= g.Width-1 || ny <= 0 || ny >= g.Height-1 {
			continue
		}
		if g.Cells[ny][nx] != grid.Wall {
			continue
		}

		g.Cells[top.at.Y+d.Y][top.at.X+d.X] = grid.Empty
		g.Cells[ny][nx] = grid.Empty
		stack = append(stack, m.newFrame(grid.Point{X: nx, Y: ny}))
	}
}

func (m *Generator) newFrame(p grid.Point) frame {
	f := frame{at: p}
	copy(f.dirs[:], grid.DirVectors[:4])
	m.rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// addOpenings knocks out interior walls that touch at least two open cells
func (m *Generator) addOpenings(g *grid.Grid) {
	desired := g.Width * g.Height / denseCellsPerOpening
	opened, attempts := 0, 0
	for opened < desired && attempts < desired*denseTriesPerOpening {
		attempts++
		p := grid.Point{X: m.rng.Intn(g.Width-2) + 1, Y: m.rng.Intn(g.Height-2) + 1}
		if g.At(p) != grid.Wall {
			continue
		}
		if emptyNeighbors(g, p) >= 2 {
			g.Set(p, grid.Empty)
			opened++
		}
	}
}

func emptyNeighbors(g *grid.Grid, p grid.Point) int {
	count := 0
	for _, d := range grid.DirVectors[:4] {
		if g.At(p.Add(d)) == grid.Empty {
			count++
		}
	}
	return count
}

// relaxEnd scans square rings of growing radius around End and moves the marker
// to the first empty cell Start can reach; End stays put if none is found
func relaxEnd(g *grid.Grid) {
	maxRadius := max(g.Width, g.Height)
	for radius := 1; radius < maxRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				c := grid.Point{X: g.End.X + dx, Y: g.End.Y + dy}
				if g.At(c) != grid.Empty {
					continue
				}
				if Reachable(g, g.Start, c) {
					g.MoveEnd(c)
					return
				}
			}
		}
	}
}

// forceOpen joins p to the open region containing anchor by clearing walls along
// the shortest 4-connected route between them; no-op if they are already joined
func forceOpen(g *grid.Grid, p, anchor grid.Point) {
	if !g.InBounds(p) || !g.Passable(anchor) {
		return
	}
	region, _ := flood(g, anchor, grid.Point{X: -1, Y: -1})
	if _, ok := region[p]; ok {
		return
	}

	came := map[grid.Point]grid.Point{p: p}
	q := frontier.NewQueue[grid.Point](g.Width + g.Height)
	q.Enqueue(p)
	for {
		cur, ok := q.Dequeue()
		if !ok {
			return
		}
		if _, joined := region[cur]; joined {
			for c := came[cur]; c != p; c = came[c] {
				if g.At(c) == grid.Wall {
					g.Set(c, grid.Empty)
				}
			}
			return
		}
		for _, d := range grid.DirVectors[:4] {
			n := cur.Add(d)
			if !g.InBounds(n) {
				continue
			}
			if _, seen := came[n]; seen {
				continue
			}
			came[n] = cur
			q.Enqueue(n)
		}
	}
}

// clearOpen empties every cell except the markers
func clearOpen(g *grid.Grid) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if p := (grid.Point{X: x, Y: y}); !g.IsReserved(p) {
				g.Set(p, grid.Empty)
			}
		}
	}
	g.RestoreMarkers()
}

// --- Queries ---

// Reachable reports whether a 4-connected walk over non-wall cells joins from and to
func Reachable(g *grid.Grid, from, to grid.Point) bool {
	if !g.Passable(from) || !g.Passable(to) {
		return false
	}
	_, ok := flood(g, from, to)
	return ok
}

// SolutionPath returns the shortest 4-connected route from Start to End inclusive,
// nil when End is unreachable
func SolutionPath(g *grid.Grid) []grid.Point {
	if !g.Passable(g.Start) || !g.Passable(g.End) {
		return nil
	}
	came, ok := flood(g, g.Start, g.End)
	if !ok {
		return nil
	}

	var path []grid.Point
	for cur := g.End; cur != g.Start; cur = came[cur] {
		path = append(path, cur)
	}
	path = append(path, g.Start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// flood runs a breadth-first fill from src, stopping at dst, and returns the predecessor map
func flood(g *grid.Grid, src, dst grid.Point) (map[grid.Point]grid.Point, bool) {
	came := map[grid.Point]grid.Point{src: src}
	q := frontier.NewQueue[grid.Point](g.Width * g.Height / 4)
	q.Enqueue(src)

	var buf []grid.Point
	for {
		cur, ok := q.Dequeue()
		if !ok {
			return came, false
		}
		if cur == dst {
			return came, true
		}
		buf = g.Neighbors(cur, false, buf[:0])
		for _, n := range buf {
			if _, seen := came[n]; seen {
				continue
			}
			came[n] = cur
			q.Enqueue(n)
		}
	}
}
