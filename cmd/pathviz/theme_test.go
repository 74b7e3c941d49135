package main

import (
	"testing"

	"github.com/lixenwraith/pathstep/grid"
	"github.com/lixenwraith/pathstep/search"
)

func TestEveryAlgorithmHasTheme(t *testing.T) {
	for _, id := range search.IDs() {
		if _, ok := themes[id]; !ok {
			t.Errorf("No theme for %s", id)
		}
	}
}

func TestPaletteOverlay(t *testing.T) {
	p := PaletteFor("bfs")
	if got := p.Frontier.Hex(); got != "#34d399" {
		t.Errorf("Expected bfs frontier #34d399, got %s", got)
	}
	if got := p.Wall.Hex(); got != "#475569" {
		t.Errorf("Expected base wall color, got %s", got)
	}

	base := PaletteFor("unknown")
	if base.Visited != basePalette.Visited {
		t.Error("Expected base palette for unknown id")
	}
}

func TestFrontierIsBlended(t *testing.T) {
	p := PaletteFor("astar")
	got := p.Color(grid.Frontier)
	if got.Hex() == p.Frontier.Hex() || got.Hex() == p.Empty.Hex() {
		t.Errorf("Expected blended frontier, got %s", got.Hex())
	}
	if p.Color(grid.Path) != p.Path || p.Color(grid.Empty) != p.Empty {
		t.Error("Unexpected solid color mapping")
	}
}
