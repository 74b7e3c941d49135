package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/pathstep/grid"
	"github.com/lixenwraith/pathstep/search"
	"github.com/lixenwraith/pathstep/session"
)

const (
	originX   = 1
	originY   = 1
	cellCols  = 2 // Terminal columns per grid cell, keeps cells roughly square
	statusGap = 1

	helpLine = "space run/stop  p pause  . step  tab/1-7 algo  w/s/e/x tool  m/M maze  d diag  +/- speed  [/] size  r reset  q quit"
)

// cellAt maps a screen position to a grid cell
func (a *App) cellAt(sx, sy int) (grid.Point, bool) {
	if sx < originX || sy < originY {
		return grid.Point{}, false
	}
	p := grid.Point{X: (sx - originX) / cellCols, Y: sy - originY}
	inside := false
	a.sess.View(func(g *grid.Grid) { inside = g.InBounds(p) })
	return p, inside
}

func (a *App) draw() {
	a.screen.Clear()
	width, _ := a.screen.Size()

	var rows int
	a.sess.View(func(g *grid.Grid) {
		rows = g.Height
		for y, row := range g.Cells {
			for x, c := range row {
				style := a.palette.Style(c)
				glyph := ' '
				switch c {
				case grid.Start:
					glyph = 'S'
				case grid.End:
					glyph = 'E'
				}
				sx := originX + x*cellCols
				a.screen.SetContent(sx, originY+y, glyph, nil, style)
				a.screen.SetContent(sx+1, originY+y, ' ', nil, style)
			}
		}
	})

	st := a.sess.Stats()
	entry := a.sess.Entry()
	text := tcell.StyleDefault.Foreground(toTcell(a.palette.Text))
	accent := tcell.StyleDefault.Foreground(toTcell(a.palette.Path)).Bold(true)

	y := originY + rows + statusGap
	a.drawText(originX, y, width, accent, entry.Name)
	a.drawText(originX, y+1, width, text, a.controlsLine())
	a.drawText(originX, y+2, width, text, statsLine(st, a.sess.Running(), a.paused))
	a.drawText(originX, y+3, width, text, entry.Description)
	a.drawText(originX, y+5, width, text.Dim(true), helpLine)

	a.screen.Show()
}

func (a *App) controlsLine() string {
	speed := "instant"
	if d := a.interval(); d > 0 {
		speed = d.String()
	}
	diag := "off"
	if a.sess.Diagonal() {
		diag = "on"
	}
	d := a.densities[a.density]
	return fmt.Sprintf("Tool: %s │ Speed: %s │ Diagonal: %s │ Grid: %d × %d (%s)",
		a.tool, speed, diag, d.Cols, d.Rows, d.Name)
}

func statsLine(st session.Stats, running, paused bool) string {
	state := st.Status.String()
	switch {
	case running && paused:
		state = "paused"
	case !running && st.Steps == 0:
		state = "ready"
	case !running && st.Status == search.Running:
		state = "stopped"
	}
	return fmt.Sprintf("Status: %s │ Nodes explored: %d │ Path length: %d │ Steps: %d │ %.2fs",
		state, st.NodesExplored, st.PathLength, st.Steps, st.Elapsed.Seconds())
}

// drawText writes s starting at (x, y), truncated to the screen width
func (a *App) drawText(x, y, width int, style tcell.Style, s string) {
	if avail := width - x; avail > 0 {
		s = runewidth.Truncate(s, avail, "…")
	} else {
		return
	}
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
