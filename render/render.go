// Package render pretty-prints a board.Board (and, optionally, a solved
// path over it) as a box-drawing grid, grounded on the original solver's
// operator<< board dump: a (2W+1)x(2H+1) character canvas where cell
// centers sit on odd rows/columns and edges/corners sit on even ones.
package render

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/walkscore/board"
	"github.com/katalvlaran/walkscore/op"
)

// Board renders b's grid: corners and junctions as box-drawing characters,
// each edge's operator token where it has one, start marked "S", goal
// marked "G", and (if path is non-empty) every other visited cell marked
// with a trail dot.
func Board(b *board.Board, path []int) string {
	w, h := b.W, b.H
	rows, cols := h*2+1, w*2+1
	canvas := make([][]string, rows)
	for r := range canvas {
		canvas[r] = make([]string, cols)
		for c := range canvas[r] {
			canvas[r][c] = " "
		}
	}

	// Border corners and T-junctions.
	canvas[0][0] = "┌"
	canvas[0][cols-1] = "┐"
	canvas[rows-1][0] = "└"
	canvas[rows-1][cols-1] = "┘"
	for x := 0; x < w-1; x++ {
		canvas[0][x*2+2] = "┬"
		canvas[rows-1][x*2+2] = "┴"
	}
	for y := 0; y < h-1; y++ {
		canvas[y*2+2][0] = "├"
		canvas[y*2+2][cols-1] = "┤"
	}
	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			canvas[y*2+2][x*2+2] = "┼"
		}
	}

	// Plain border/gridline fill, overwritten below wherever an edge
	// carries a non-identity operator.
	for y := 0; y <= h; y++ {
		for x := 0; x < w; x++ {
			canvas[y*2][x*2+1] = "─"
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x <= w; x++ {
			canvas[y*2+1][x*2] = "│"
		}
	}

	// Edge operator labels.
	for p, steps := range b.OneStep {
		x, y := b.Coordinate(p)
		for _, s := range steps {
			label := tokenOf(s.Op)
			if label == "" {
				continue
			}
			switch {
			case s.Next == p+1: // neighbor to the right
				canvas[y*2+1][x*2+2] = label
			case s.Next == p+w: // neighbor below
				canvas[y*2+2][x*2+1] = label
			}
		}
	}

	// Cell interiors: path trail first (so start/goal always win), then
	// start/goal markers on top.
	if len(path) > 0 {
		for _, p := range path {
			x, y := b.Coordinate(p)
			canvas[y*2+1][x*2+1] = "o"
		}
	}
	sx, sy := b.Coordinate(b.Start)
	canvas[sy*2+1][sx*2+1] = "S"
	gx, gy := b.Coordinate(b.Goal)
	canvas[gy*2+1][gx*2+1] = "G"

	var sb strings.Builder
	for _, row := range canvas {
		for _, cell := range row {
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// tokenOf renders an Op back to its problem-file token form, or "" for the
// identity op (which the original leaves blank on the canvas).
func tokenOf(o op.Op) string {
	if o.Add == 0 {
		if o.Mul == 1 {
			return ""
		}

		return "*" + strconv.FormatInt(o.Mul, 10)
	}
	if o.Add > 0 {
		return "+" + strconv.FormatInt(o.Add, 10)
	}

	return "-" + strconv.FormatInt(-o.Add, 10)
}
