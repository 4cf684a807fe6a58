// Command gridpath generates a warehouse-style occupancy grid, routes an
// agent between two cells with A*, and renders the result as ASCII art.
//
// Usage:
//
//	gridpath -size 10 -density 0.10 -seed 42 -start 0,0 -goal 9,9
//
// When the requested goal is unreachable, the 3×3 neighborhood around it is
// probed for an alternate reachable exit; each probe is an independent full
// search (a caller-side strategy, deliberately outside the library core).
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

func main() {
	sizePtr := flag.Int("size", 10, "grid side length N (N×N cells)")
	densityPtr := flag.Float64("density", 0.10, "obstacle density in [0,1]")
	seedPtr := flag.Int64("seed", 0, "random seed (0 = library default)")
	startPtr := flag.String("start", "", "start cell as r,c (default 0,0)")
	goalPtr := flag.String("goal", "", "goal cell as r,c (default N-1,N-1)")
	flag.Parse()

	g, err := grid.New(*sizePtr, *densityPtr, grid.WithSeed(*seedPtr))
	if err != nil {
		log.Fatalf("grid construction: %v", err)
	}

	start, err := parsePosition(*startPtr, grid.Position{Row: 0, Col: 0})
	if err != nil {
		log.Fatalf("bad -start: %v", err)
	}
	goal, err := parsePosition(*goalPtr, grid.Position{Row: *sizePtr - 1, Col: *sizePtr - 1})
	if err != nil {
		log.Fatalf("bad -goal: %v", err)
	}
	if !g.InBounds(start) || !g.InBounds(goal) {
		log.Fatalf("start %s and goal %s must lie in [0,%d)", start, goal, *sizePtr)
	}

	// The requested endpoints win over generated obstacles, as a warehouse
	// operator would clear a shelf blocking a dock.
	g.Clear(start)
	g.Clear(goal)

	st := g.Stats()
	fmt.Printf("grid %dx%d  obstacles %d (%.1f%%)  free %d\n",
		st.Size, st.Size, st.ObstacleCount, st.ObstaclePercentage, st.FreeCount)
	fmt.Printf("route %s -> %s\n\n", start, goal)

	path, err := astar.FindPath(g, start, goal)
	if errors.Is(err, astar.ErrNoPath) {
		fmt.Println("no path to the requested goal; probing nearby exits...")
		path, goal, err = probeAlternateGoals(g, start, goal)
	}
	if err != nil {
		fmt.Printf("no route exists: %v\n", err)
		render(os.Stdout, g, nil, start, goal)
		os.Exit(1)
	}

	m, err := astar.PathMetrics(path)
	if err != nil {
		log.Fatalf("metrics: %v", err)
	}
	fmt.Printf("path found: %d steps (manhattan %d, efficiency %.1f%%)\n",
		m.Steps, m.Manhattan, m.Efficiency)
	fmt.Println("route:", formatPath(path))
	fmt.Println()
	render(os.Stdout, g, path, start, path[len(path)-1])
}

// parsePosition reads "r,c"; an empty string selects the fallback.
func parsePosition(s string, fallback grid.Position) (grid.Position, error) {
	if s == "" {
		return fallback, nil
	}
	var p grid.Position
	if _, err := fmt.Sscanf(s, "%d,%d", &p.Row, &p.Col); err != nil {
		return grid.Position{}, fmt.Errorf("want r,c: %w", err)
	}

	return p, nil
}

// probeAlternateGoals retries the search against each free cell in the 3×3
// neighborhood around the unreachable goal, returning the first route found.
func probeAlternateGoals(g *grid.Grid, start, goal grid.Position) ([]grid.Position, grid.Position, error) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			alt := grid.Position{Row: goal.Row + dr, Col: goal.Col + dc}
			if alt == goal || !g.IsValid(alt) {
				continue
			}
			if path, err := astar.FindPath(g, start, alt); err == nil {
				fmt.Printf("alternate exit %s is reachable\n", alt)
				return path, alt, nil
			}
		}
	}

	return nil, goal, astar.ErrNoPath
}

// formatPath joins cells with arrows, eliding the middle of long routes.
func formatPath(path []grid.Position) string {
	const headTail = 3
	parts := make([]string, 0, len(path))
	for _, p := range path {
		parts = append(parts, p.String())
	}
	if len(parts) <= 2*headTail+1 {
		return strings.Join(parts, " -> ")
	}

	return strings.Join(parts[:headTail], " -> ") + " -> ... -> " +
		strings.Join(parts[len(parts)-headTail:], " -> ")
}

// render prints the grid: S start, E exit, * path, # obstacle, . free.
func render(w *os.File, g *grid.Grid, path []grid.Position, start, goal grid.Position) {
	onPath := make(map[grid.Position]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	cells := g.Snapshot()
	for r := range cells {
		var sb strings.Builder
		for c := range cells[r] {
			p := grid.Position{Row: r, Col: c}
			switch {
			case p == start:
				sb.WriteString("S ")
			case p == goal:
				sb.WriteString("E ")
			case onPath[p]:
				sb.WriteString("* ")
			case cells[r][c]:
				sb.WriteString("# ")
			default:
				sb.WriteString(". ")
			}
		}
		fmt.Fprintln(w, sb.String())
	}
}
