package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/pathstep/grid"
)

// Frontier cells are drawn translucent over the empty background
const frontierAlpha = 0.6

// Palette maps cell states to colors
type Palette struct {
	Empty    colorful.Color
	Wall     colorful.Color
	Start    colorful.Color
	End      colorful.Color
	Visited  colorful.Color
	Frontier colorful.Color
	Path     colorful.Color
	Text     colorful.Color
}

type theme struct {
	frontier, visited, path string
}

var basePalette = Palette{
	Empty:    mustHex("#181c24"),
	Wall:     mustHex("#475569"),
	Start:    mustHex("#22c55e"),
	End:      mustHex("#e74c3c"),
	Visited:  mustHex("#a78bfa"),
	Frontier: mustHex("#38bdf8"),
	Path:     mustHex("#fbbf24"),
	Text:     mustHex("#cbd5e1"),
}

var themes = map[string]theme{
	"astar":            {"#38bdf8", "#818cf8", "#fbbf24"},
	"greedy":           {"#fb7185", "#f472b6", "#f9a8d4"},
	"dijkstra":         {"#f97316", "#fb923c", "#facc15"},
	"bfs":              {"#34d399", "#22d3ee", "#a7f3d0"},
	"bidirectionalbfs": {"#c084fc", "#93c5fd", "#fde68a"},
	"dfs":              {"#f472b6", "#fb7185", "#fbbf24"},
	"random":           {"#f97316", "#fda4af", "#d9f99d"},
}

// PaletteFor overlays the algorithm's theme on the base colors
func PaletteFor(id string) Palette {
	p := basePalette
	if t, ok := themes[id]; ok {
		p.Frontier = mustHex(t.frontier)
		p.Visited = mustHex(t.visited)
		p.Path = mustHex(t.path)
	}
	return p
}

// Color returns the fill for a cell state
func (p Palette) Color(c grid.Cell) colorful.Color {
	switch c {
	case grid.Wall:
		return p.Wall
	case grid.Start:
		return p.Start
	case grid.End:
		return p.End
	case grid.Visited:
		return p.Visited
	case grid.Frontier:
		return p.Empty.BlendLab(p.Frontier, frontierAlpha).Clamped()
	case grid.Path:
		return p.Path
	default:
		return p.Empty
	}
}

// Style returns a background-filled style for a cell state
func (p Palette) Style(c grid.Cell) tcell.Style {
	return tcell.StyleDefault.Background(toTcell(p.Color(c))).Foreground(toTcell(p.Text))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
