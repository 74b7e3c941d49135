package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/pathstep/grid"
	"github.com/lixenwraith/pathstep/maze"
	"github.com/lixenwraith/pathstep/search"
	"github.com/lixenwraith/pathstep/session"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Println("\n=== GRID MAZE GENERATOR & SOLVER ===")

		w := getInt(reader, "Width (default 32): ", 32)
		h := getInt(reader, "Height (default 20): ", 20)

		fmt.Print("Kind: Light scatter instead of dense maze? [y/N]: ")
		lightStr, _ := reader.ReadString('\n')
		kind := session.MazeDense
		if strings.ToLower(strings.TrimSpace(lightStr)) == "y" {
			kind = session.MazeLight
		}

		algo := getChoice(reader, fmt.Sprintf("Algorithm %v (default %s): ", search.IDs(), search.DefaultID), search.DefaultID)

		fmt.Print("Diagonal moves? [y/N]: ")
		diagStr, _ := reader.ReadString('\n')
		diagonal := strings.ToLower(strings.TrimSpace(diagStr)) == "y"

		seed := int64(getInt(reader, "Seed [0 = random] (default 0): ", 0))

		g := grid.New(w, h)
		s := session.New(g, session.WithSeed(seed))
		if err := s.Select(algo); err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		s.SetDiagonal(diagonal)

		fmt.Println("\nGenerating...")
		startT := time.Now()
		if err := s.GenerateMaze(kind); err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Printf("Done in %v\n", time.Since(startT))
		fmt.Printf("Grid Dimensions: %dx%d\n", g.Width, g.Height)

		if sp := maze.SolutionPath(g); sp != nil {
			fmt.Printf("Shortest Route: %d cells\n", len(sp))
		} else {
			fmt.Println("Status: Unsolvable (Isolated Start/End)")
		}

		s.Start()
		if err := s.Run(context.Background(), 0); err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		st := s.Stats()
		fmt.Printf("%s: %s after %d steps, %d nodes explored, path length %d, %v\n",
			s.Entry().Name, st.Status, st.Steps, st.NodesExplored, st.PathLength, st.Elapsed)

		draw(g)

		fmt.Print("\nGenerate another? [Y/n]: ")
		if !another(reader) {
			break
		}
	}
}

func draw(g *grid.Grid) {
	var sb strings.Builder
	for _, row := range g.Cells {
		for _, c := range row {
			switch c {
			case grid.Wall:
				sb.WriteRune('█')
			case grid.Path:
				sb.WriteRune('•')
			case grid.Visited, grid.Frontier, grid.Empty:
				sb.WriteByte(' ')
			default:
				sb.WriteRune(c.Rune())
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, prompt string, def int) int {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getChoice(r *bufio.Reader, prompt string, def string) string {
	fmt.Print(prompt)
	s, _ := r.ReadString('\n')
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return def
	}
	return s
}

// another reads the continue answer; a closed input ends the session
func another(r *bufio.Reader) bool {
	s, err := r.ReadString('\n')
	if err != nil {
		// Closed input ends the loop even after a partial answer
		return false
	}
	return strings.ToLower(strings.TrimSpace(s)) != "n"
}
