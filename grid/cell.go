package grid

// Cell is the state of one grid square
type Cell uint8

const (
	Empty Cell = iota
	Wall
	Start
	End
	Visited
	Frontier
	Path
)

var cellNames = [...]string{"empty", "wall", "start", "end", "visited", "frontier", "path"}

func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return "unknown"
}

// Transient reports whether the state is a search annotation cleared between runs
func (c Cell) Transient() bool {
	return c == Visited || c == Frontier || c == Path
}

// Rune returns the ASCII glyph used by String and Parse
func (c Cell) Rune() rune {
	switch c {
	case Wall:
		return '#'
	case Start:
		return 'S'
	case End:
		return 'E'
	case Visited:
		return 'v'
	case Frontier:
		return 'f'
	case Path:
		return '*'
	default:
		return '.'
	}
}

// Point is a grid coordinate
type Point struct {
	X, Y int
}

func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Manhattan returns |dx| + |dy|
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Chebyshev returns max(|dx|, |dy|)
func (p Point) Chebyshev(q Point) int {
	return max(abs(p.X-q.X), abs(p.Y-q.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction vectors, cardinals first so 4-connected mode is a prefix
// Order: S, E, N, W, SE, SW, NE, NW
var DirVectors = [8]Point{
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
}

const (
	cardinalCount = 4
	dirCount      = 8
)
