package session

import (
	"github.com/lixenwraith/pathstep/grid"
)

// Tool is a grid editing brush
type Tool uint8

const (
	ToolWall Tool = iota
	ToolStart
	ToolEnd
	ToolErase
)

var toolNames = [...]string{"wall", "start", "end", "erase"}

func (t Tool) String() string {
	if int(t) < len(toolNames) {
		return toolNames[t]
	}
	return "unknown"
}

// Tools returns the brushes in display order
func Tools() []Tool {
	return []Tool{ToolWall, ToolStart, ToolEnd, ToolErase}
}

func (t Tool) apply(g *grid.Grid, p grid.Point) {
	switch t {
	case ToolWall:
		g.PlaceWall(p)
	case ToolErase:
		g.Erase(p)
	case ToolStart:
		g.MoveStart(p)
	case ToolEnd:
		g.MoveEnd(p)
	}
}
