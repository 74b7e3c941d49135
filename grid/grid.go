package grid

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	minWidth  = 2
	minHeight = 1
)

// ErrLayout is returned by Parse for malformed ASCII layouts
var ErrLayout = errors.New("grid: invalid layout")

// Grid owns the cell matrix and the start/end markers
// Cells is the live surface shared with search algorithms; callers must not
// edit it while a run is in progress
type Grid struct {
	Width, Height int
	Cells         [][]Cell
	Start, End    Point
}

// New allocates a grid with default start/end markers
func New(width, height int) *Grid {
	g := &Grid{}
	g.SetSize(width, height)
	return g
}

// SetSize reallocates the matrix and re-seeds default markers
func (g *Grid) SetSize(width, height int) {
	g.Width = max(width, minWidth)
	g.Height = max(height, minHeight)
	g.Reset()
}

// Reset clears every cell and re-seeds default markers at (1, h/2) and (w-2, h/2)
func (g *Grid) Reset() {
	mid := g.Height / 2
	g.Start = Point{1, mid}
	g.End = Point{g.Width - 2, mid}
	if g.Start.X >= g.End.X {
		// Too narrow for the inset markers
		g.Start = Point{0, mid}
		g.End = Point{g.Width - 1, mid}
	}

	g.Cells = make([][]Cell, g.Height)
	for y := range g.Cells {
		g.Cells[y] = make([]Cell, g.Width)
	}
	g.Cells[g.Start.Y][g.Start.X] = Start
	g.Cells[g.End.Y][g.End.X] = End
}

func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// IsReserved reports whether p holds the start or end marker
func (g *Grid) IsReserved(p Point) bool {
	return p == g.Start || p == g.End
}

// At returns the cell state, Wall if out of bounds
func (g *Grid) At(p Point) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.Cells[p.Y][p.X]
}

// Set writes a state without marker checks
func (g *Grid) Set(p Point, c Cell) {
	if g.InBounds(p) {
		g.Cells[p.Y][p.X] = c
	}
}

// Passable reports whether p is in bounds and not a wall
func (g *Grid) Passable(p Point) bool {
	return g.InBounds(p) && g.Cells[p.Y][p.X] != Wall
}

// --- Editing tools (silently ignore invalid edits) ---

func (g *Grid) PlaceWall(p Point) {
	if !g.InBounds(p) || g.IsReserved(p) {
		return
	}
	g.Cells[p.Y][p.X] = Wall
}

func (g *Grid) Erase(p Point) {
	if !g.InBounds(p) || g.IsReserved(p) {
		return
	}
	g.Cells[p.Y][p.X] = Empty
}

func (g *Grid) MoveStart(p Point) {
	if !g.InBounds(p) || g.Cells[p.Y][p.X] == Wall || p == g.End {
		return
	}
	g.Cells[g.Start.Y][g.Start.X] = Empty
	g.Start = p
	g.Cells[p.Y][p.X] = Start
}

func (g *Grid) MoveEnd(p Point) {
	if !g.InBounds(p) || g.Cells[p.Y][p.X] == Wall || p == g.Start {
		return
	}
	g.Cells[g.End.Y][g.End.X] = Empty
	g.End = p
	g.Cells[p.Y][p.X] = End
}

// ClearWalkStates resets Visited/Frontier/Path to Empty and re-asserts markers
func (g *Grid) ClearWalkStates() {
	for y := range g.Cells {
		row := g.Cells[y]
		for x := range row {
			if row[x].Transient() {
				row[x] = Empty
			}
		}
	}
	g.RestoreMarkers()
}

// RestoreMarkers writes Start and End back onto their coordinates
func (g *Grid) RestoreMarkers() {
	g.Cells[g.Start.Y][g.Start.X] = Start
	g.Cells[g.End.Y][g.End.X] = End
}

// Paint writes an annotation unless the cell holds a marker
func (g *Grid) Paint(p Point, c Cell) {
	cur := g.Cells[p.Y][p.X]
	if cur == Start || cur == End {
		return
	}
	g.Cells[p.Y][p.X] = c
}

// Neighbors appends in-bounds, non-wall neighbors of p to buf
// Diagonal steps that would cut a wall corner are rejected
func (g *Grid) Neighbors(p Point, diagonal bool, buf []Point) []Point {
	n := cardinalCount
	if diagonal {
		n = dirCount
	}
	for i := 0; i < n; i++ {
		d := DirVectors[i]
		q := p.Add(d)
		if !g.Passable(q) {
			continue
		}
		if d.X != 0 && d.Y != 0 {
			if !g.Passable(Point{p.X + d.X, p.Y}) || !g.Passable(Point{p.X, p.Y + d.Y}) {
				continue
			}
		}
		buf = append(buf, q)
	}
	return buf
}

// Count returns the number of cells in the given state
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.Cells {
		for _, v := range row {
			if v == c {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, Start: g.Start, End: g.End}
	c.Cells = make([][]Cell, g.Height)
	for y := range g.Cells {
		c.Cells[y] = append([]Cell(nil), g.Cells[y]...)
	}
	return c
}

// String renders the grid one row per line using Cell.Rune glyphs
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y, row := range g.Cells {
		for _, c := range row {
			sb.WriteRune(c.Rune())
		}
		if y < g.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Parse builds a grid from ASCII rows: '#' wall, 'S' start, 'E' end, anything else empty
// Exactly one S and one E are required
func Parse(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrLayout, "no rows")
	}
	width := len(rows[0])
	if width == 0 {
		return nil, errors.Wrap(ErrLayout, "empty row")
	}

	g := &Grid{Width: width, Height: len(rows), Cells: make([][]Cell, len(rows))}
	starts, ends := 0, 0
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrLayout, "row %d has width %d, want %d", y, len(row), width)
		}
		g.Cells[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			switch row[x] {
			case '#':
				g.Cells[y][x] = Wall
			case 'S':
				g.Cells[y][x] = Start
				g.Start = Point{x, y}
				starts++
			case 'E':
				g.Cells[y][x] = End
				g.End = Point{x, y}
				ends++
			}
		}
	}
	if starts != 1 || ends != 1 {
		return nil, errors.Wrapf(ErrLayout, "found %d start and %d end markers", starts, ends)
	}
	return g, nil
}
