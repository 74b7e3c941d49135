package grid

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewDefaultMarkers(t *testing.T) {
	g := New(10, 7)

	if g.Start != (Point{1, 3}) {
		t.Errorf("Expected start (1,3), got %v", g.Start)
	}
	if g.End != (Point{8, 3}) {
		t.Errorf("Expected end (8,3), got %v", g.End)
	}
	if g.At(g.Start) != Start || g.At(g.End) != End {
		t.Fatalf("Markers not written to cells: start=%v end=%v", g.At(g.Start), g.At(g.End))
	}
	if n := g.Count(Empty); n != 10*7-2 {
		t.Errorf("Expected %d empty cells, got %d", 10*7-2, n)
	}
}

func TestNarrowGridMarkersNeverCoincide(t *testing.T) {
	for _, w := range []int{0, 1, 2, 3} {
		g := New(w, 1)
		if g.Start == g.End {
			t.Errorf("width %d: start and end coincide at %v", w, g.Start)
		}
		if !g.InBounds(g.Start) || !g.InBounds(g.End) {
			t.Errorf("width %d: markers out of bounds: %v %v", w, g.Start, g.End)
		}
	}
}

func TestEditingToolsRejectInvalidEdits(t *testing.T) {
	g := New(6, 3)
	start, end := g.Start, g.End

	g.PlaceWall(start)
	g.PlaceWall(end)
	g.Erase(start)
	g.PlaceWall(Point{-1, 0})
	g.PlaceWall(Point{6, 0})
	if g.At(start) != Start || g.At(end) != End {
		t.Fatal("Markers were overwritten by wall/erase tools")
	}

	wall := Point{2, 0}
	g.PlaceWall(wall)
	if g.At(wall) != Wall {
		t.Fatalf("Expected wall at %v", wall)
	}

	// Start cannot move onto a wall or onto End
	g.MoveStart(wall)
	g.MoveStart(end)
	g.MoveStart(Point{9, 9})
	if g.Start != start {
		t.Errorf("Start moved to invalid position %v", g.Start)
	}

	g.MoveEnd(wall)
	g.MoveEnd(start)
	if g.End != end {
		t.Errorf("End moved to invalid position %v", g.End)
	}

	g.Erase(wall)
	if g.At(wall) != Empty {
		t.Errorf("Expected erased cell, got %v", g.At(wall))
	}
}

func TestMoveMarkers(t *testing.T) {
	g := New(6, 3)
	oldStart, oldEnd := g.Start, g.End

	g.MoveStart(Point{0, 0})
	g.MoveEnd(Point{5, 2})

	if g.At(oldStart) != Empty || g.At(oldEnd) != Empty {
		t.Error("Old marker cells not cleared")
	}
	if g.At(Point{0, 0}) != Start || g.Start != (Point{0, 0}) {
		t.Error("Start not moved")
	}
	if g.At(Point{5, 2}) != End || g.End != (Point{5, 2}) {
		t.Error("End not moved")
	}
	if g.Count(Start) != 1 || g.Count(End) != 1 {
		t.Errorf("Expected exactly one of each marker, got %d/%d", g.Count(Start), g.Count(End))
	}
}

func TestClearWalkStatesIdempotent(t *testing.T) {
	g := New(8, 5)
	g.PlaceWall(Point{3, 1})
	g.Set(Point{2, 2}, Visited)
	g.Set(Point{3, 2}, Frontier)
	g.Set(Point{4, 2}, Path)
	// A run may leave a marker painted over
	g.Set(g.Start, Path)

	g.ClearWalkStates()
	once := g.String()
	g.ClearWalkStates()
	twice := g.String()

	if once != twice {
		t.Fatalf("ClearWalkStates not idempotent:\n%s\n---\n%s", once, twice)
	}
	for _, c := range []Cell{Visited, Frontier, Path} {
		if n := g.Count(c); n != 0 {
			t.Errorf("Expected no %v cells, got %d", c, n)
		}
	}
	if g.At(Point{3, 1}) != Wall {
		t.Error("Wall cleared by ClearWalkStates")
	}
	if g.At(g.Start) != Start {
		t.Error("Start marker not re-asserted")
	}
}

func TestSetSizeReallocates(t *testing.T) {
	g := New(5, 5)
	g.PlaceWall(Point{0, 0})
	g.SetSize(12, 8)

	if g.Width != 12 || g.Height != 8 || len(g.Cells) != 8 || len(g.Cells[0]) != 12 {
		t.Fatalf("Unexpected dimensions %dx%d", g.Width, g.Height)
	}
	if g.Count(Wall) != 0 {
		t.Error("Walls survived SetSize")
	}
	if g.Start != (Point{1, 4}) || g.End != (Point{10, 4}) {
		t.Errorf("Unexpected markers %v %v", g.Start, g.End)
	}
}

func TestNeighbors(t *testing.T) {
	g, err := Parse(
		"S.#",
		".#.",
		"..E",
	)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tests := []struct {
		name     string
		p        Point
		diagonal bool
		want     []Point
	}{
		{"corner cardinal", Point{0, 0}, false, []Point{{0, 1}, {1, 0}}},
		{"center diagonal blocked", Point{1, 0}, true, []Point{{0, 0}}},
		{"diagonal corner cut rejected", Point{0, 1}, true, []Point{{0, 2}, {0, 0}}},
		{"open diagonal", Point{1, 2}, true, []Point{{2, 2}, {0, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Neighbors(tt.p, tt.diagonal, nil)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestParseAndString(t *testing.T) {
	rows := []string{
		"S..#",
		"..#E",
	}
	g, err := Parse(rows...)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if g.Width != 4 || g.Height != 2 {
		t.Errorf("Unexpected size %dx%d", g.Width, g.Height)
	}
	if g.Start != (Point{0, 0}) || g.End != (Point{3, 1}) {
		t.Errorf("Unexpected markers %v %v", g.Start, g.End)
	}
	if s := g.String(); s != "S..#\n..#E" {
		t.Errorf("Unexpected render %q", s)
	}
}

func TestParseErrors(t *testing.T) {
	cases := [][]string{
		nil,
		{""},
		{"S.E", ".."},
		{"S..", "..."},
		{"SSE"},
	}
	for _, rows := range cases {
		if _, err := Parse(rows...); errors.Cause(err) != ErrLayout {
			t.Errorf("Parse(%q): expected ErrLayout, got %v", rows, err)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	g := New(4, 2)
	c := g.Clone()
	c.PlaceWall(Point{0, 0})
	if g.At(Point{0, 0}) == Wall {
		t.Error("Clone shares cell storage with original")
	}
}

func TestDensities(t *testing.T) {
	d, ok := LookupDensity(DefaultDensity)
	if !ok || d.Cols != 32 || d.Rows != 20 {
		t.Fatalf("Unexpected default density %+v (ok=%v)", d, ok)
	}
	if _, ok := LookupDensity("nope"); ok {
		t.Error("Expected unknown density lookup to fail")
	}

	all := Densities()
	for i := 1; i < len(all); i++ {
		if all[i].Cols*all[i].Rows <= all[i-1].Cols*all[i-1].Rows {
			t.Errorf("Densities not ordered by size at %s", all[i].Name)
		}
	}

	g := NewFromDensity(all[0])
	if g.Width != 12 || g.Height != 8 {
		t.Errorf("Unexpected grid size %dx%d", g.Width, g.Height)
	}
}
