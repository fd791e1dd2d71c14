// Command gridpath is a terminal demonstration of the gridpath engine.
//
// It builds a board (random obstacles or an ASCII layout file), runs the
// A* engine from the board's Start to its Target, and either animates every
// search step as a frame ("solve with visual") or prints only the final
// path. All pacing lives here; the engine is pull-based and has no notion
// of time.
//
// Usage:
//
//	gridpath --rows 20 --cols 30 --density 25 --seed 42 --visual
//	gridpath --layout maze.txt --visual --delay 30ms
//	gridpath --rows 15 --cols 15 --diagonal
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "gridpath:", err)
		os.Exit(1)
	}
}

// newCommand assembles the CLI surface: every knob of the demo is a flag,
// the engine itself stays configuration-free.
func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "gridpath",
		Usage: "interactive-style A* pathfinding demo on a 2D grid",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "rows", Value: 20, Usage: "board rows (ignored with --layout)"},
			&cli.IntFlag{Name: "cols", Value: 30, Usage: "board columns (ignored with --layout)"},
			&cli.IntFlag{Name: "density", Value: 25, Usage: "obstacle density percent (0–100)"},
			&cli.IntFlag{Name: "seed", Value: 42, Usage: "obstacle placement seed"},
			&cli.StringFlag{Name: "layout", Usage: "ASCII layout file ('.' '#' 'S' 'T'), overrides rows/cols/density"},
			&cli.BoolFlag{Name: "visual", Usage: "animate every search step"},
			&cli.DurationFlag{Name: "delay", Value: 40 * time.Millisecond, Usage: "frame delay with --visual"},
			&cli.BoolFlag{Name: "diagonal", Usage: "8-connectivity with 10/14 move costs"},
		},
		Action: run,
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	conn := grid.Conn4
	if cmd.Bool("diagonal") {
		conn = grid.Conn8
	}

	g, err := buildBoard(cmd, conn)
	if err != nil {
		return err
	}

	if cmd.Bool("visual") {
		return solveVisual(g, cmd.Duration("delay"))
	}

	return solvePlain(g)
}

// buildBoard constructs the grid from a layout file or from the size and
// density flags with seeded random obstacles.
func buildBoard(cmd *cli.Command, conn grid.Connectivity) (*grid.Grid, error) {
	if path := cmd.String("layout"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read layout: %w", err)
		}
		lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")

		return grid.FromRunes(lines, grid.WithConnectivity(conn))
	}

	rows, cols := cmd.Int("rows"), cmd.Int("cols")
	g, err := grid.New(rows, cols, grid.WithConnectivity(conn))
	if err != nil {
		return nil, err
	}

	density := float64(cmd.Int("density")) / 100
	rng := rand.New(rand.NewSource(int64(cmd.Int("seed"))))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := grid.Cell{Row: r, Col: c}
			if cell == g.Start() || cell == g.Target() {
				continue
			}
			if rng.Float64() < density {
				if err := g.SetCellState(cell, grid.Obstacle); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// solvePlain drains the run without rendering intermediate steps.
func solvePlain(g *grid.Grid) error {
	res, err := astar.Solve(g, g.Start(), g.Target())
	if err != nil {
		fmt.Print(render(g, nil, nil, nil))

		return err
	}

	onPath := make(map[grid.Cell]bool, len(res.Path))
	for _, c := range res.Path {
		onPath[c] = true
	}
	fmt.Print(render(g, nil, nil, onPath))
	fmt.Printf("path found: %d cells, cost %d, %d cells expanded\n", len(res.Path), res.Cost, res.Expanded)

	return nil
}

// solveVisual animates one frame per engine step, then overlays the path.
func solveVisual(g *grid.Grid, delay time.Duration) error {
	run, err := astar.Start(g, g.Start(), g.Target())
	if err != nil {
		return err
	}

	open := make(map[grid.Cell]bool)
	closed := make(map[grid.Cell]bool)
	for {
		ev, ok := run.Next()
		if !ok {
			break
		}
		closed[ev.Visited] = true
		delete(open, ev.Visited)
		for _, c := range ev.FrontierUpdates {
			open[c] = true
		}

		fmt.Print("\033[H\033[2J")
		fmt.Print(render(g, open, closed, nil))
		fmt.Printf("step %d: %s\n", ev.Step, ev.State)
		time.Sleep(delay)
	}

	if run.State() == astar.StateFailed {
		fmt.Println("no path exists")

		return nil
	}

	path, err := run.Path()
	if err != nil {
		return err
	}
	onPath := make(map[grid.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	fmt.Print("\033[H\033[2J")
	fmt.Print(render(g, open, closed, onPath))
	fmt.Printf("path found: %d cells, cost %d\n", len(path), run.Cost())

	return nil
}

// render draws the board with search-state overlays:
// 'o' frontier, 'x' closed, '*' path; S, T and '#' always win.
func render(g *grid.Grid, open, closed, onPath map[grid.Cell]bool) string {
	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := grid.Cell{Row: r, Col: c}
			st, _ := g.StateAt(cell)
			switch {
			case st != grid.Free:
				b.WriteString(st.String())
			case onPath[cell]:
				b.WriteByte('*')
			case closed[cell]:
				b.WriteByte('x')
			case open[cell]:
				b.WriteByte('o')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
