// Package problem parses the board file grammar described in §6.1 into a
// board.Board, running the preamble walk (consuming any pre-walked prefix
// into the starting score, then trimming newly-dead-end cells to a
// fixpoint) before the board is built.
//
// Parsing follows the token-by-token std::ifstream >> token shape of the
// original solver's Problem constructor, rewritten here as a
// bufio.Scanner in word-split mode, with op.Parse as the sole token
// decoder.
package problem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/walkscore/board"
	"github.com/katalvlaran/walkscore/op"
)

// Load opens path and parses it per Parse.
func Load(path string, start, goal int) (*board.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileOpen, err)
	}
	defer f.Close()

	return Parse(f, start, goal)
}

// scanner wraps a word-splitting bufio.Scanner with typed token readers,
// so the grammar below reads like the original's chained >> extractions.
type scanner struct {
	sc *bufio.Scanner
}

func newScanner(r io.Reader) *scanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &scanner{sc: sc}
}

func (s *scanner) token() (string, bool) {
	if !s.sc.Scan() {
		return "", false
	}

	return s.sc.Text(), true
}

func (s *scanner) int() (int, bool, error) {
	tok, ok := s.token()
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, true, err
	}

	return v, true, nil
}

// Parse reads the board grammar from r: width, height, the row-major
// sequence of horizontal/vertical op tokens, and an optional preamble line
// "K p0 p1 ... p(K-1) G" giving a pre-walked prefix and the effective
// start/goal. start and goal are the caller-supplied defaults, overridden
// by a preamble if one is present.
func Parse(r io.Reader, start, goal int) (*board.Board, error) {
	s := newScanner(r)

	w, ok, err := s.int()
	if !ok || err != nil {
		return nil, fmt.Errorf("%w: missing or invalid width", ErrMalformedBoard)
	}
	h, ok, err := s.int()
	if !ok || err != nil {
		return nil, fmt.Errorf("%w: missing or invalid height", ErrMalformedBoard)
	}
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: dimensions must be positive", ErrMalformedBoard)
	}

	n := w * h
	if start < 0 || start >= n {
		start = 0
	}
	if goal < 0 || goal >= n {
		goal = n - 1
	}

	edges, err := parseEdges(s, w, h)
	if err != nil {
		return nil, err
	}

	usable := make([]bool, len(edges))
	for i := range usable {
		usable[i] = true
	}

	preScore, newStart, newGoal, err := parsePreamble(s, edges, usable, start, goal)
	if err != nil {
		return nil, err
	}
	start, goal = newStart, newGoal

	return board.Build(w, h, edges, start, goal, preScore, usable)
}

// parseEdges reads the 2H-1 rows of op tokens: W-1 horizontal tokens on
// even rows, W vertical tokens on odd rows, exactly as the original's
// `h % 2 == 0` row-kind split.
func parseEdges(s *scanner, w, h int) ([]board.EdgeSpec, error) {
	edges := make([]board.EdgeSpec, 0, 2*w*h-w-h)
	for row := 0; row < 2*h-1; row++ {
		vertical := row%2 == 1
		count := w - 1
		if vertical {
			count = w
		}

		for x := 0; x < count; x++ {
			tok, ok := s.token()
			if !ok {
				return nil, fmt.Errorf("%w: missing edge token at row %d, column %d", ErrMalformedBoard, row, x)
			}
			o, err := op.Parse(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedBoard, err)
			}

			var a, b int
			if !vertical {
				y := row / 2
				a = y*w + x
				b = a + 1
			} else {
				y := (row - 1) / 2
				a = y*w + x
				b = a + w
			}
			edges = append(edges, board.EdgeSpec{A: a, B: b, Op: o})
		}
	}

	return edges, nil
}

// parsePreamble reads the optional "K p0 ... p(K-1) G" line. If absent
// (EOF reached cleanly), it returns the defaults unchanged and preScore 1.
func parsePreamble(s *scanner, edges []board.EdgeSpec, usable []bool, start, goal int) (int64, int, int, error) {
	k, ok, err := s.int()
	if !ok {
		return 1, start, goal, nil
	}
	if err != nil || k < 0 {
		return 0, 0, 0, fmt.Errorf("%w: invalid prefix count", ErrMalformedPreamble)
	}

	prefix := make([]int, k)
	for i := range prefix {
		v, ok, err := s.int()
		if !ok || err != nil || v < 0 {
			return 0, 0, 0, fmt.Errorf("%w: invalid prefix cell", ErrMalformedPreamble)
		}
		prefix[i] = v
	}

	g, ok, err := s.int()
	if !ok || err != nil || g < 0 {
		return 0, 0, 0, fmt.Errorf("%w: invalid preamble goal", ErrMalformedPreamble)
	}
	goal = g
	if k > 0 {
		start = prefix[k-1]
	}

	preScore := int64(1)
	if len(prefix) > 1 {
		preScore, err = walkPrefix(edges, usable, prefix)
		if err != nil {
			return 0, 0, 0, err
		}
		trimToFixpoint(edges, usable, goal)
	}

	return preScore, start, goal, nil
}

// walkPrefix consumes the edge between each consecutive pair of the
// pre-walked prefix, folding each op into the starting score and marking
// the edge no longer usable.
func walkPrefix(edges []board.EdgeSpec, usable []bool, prefix []int) (int64, error) {
	score := int64(1)
	for i := 0; i+1 < len(prefix); i++ {
		a, b := prefix[i], prefix[i+1]
		id, ok := findEdge(edges, usable, a, b)
		if !ok {
			return 0, fmt.Errorf("%w: no live edge between %d and %d", ErrMalformedPreamble, a, b)
		}
		score = edges[id].Op.Apply(score)
		usable[id] = false
	}

	return score, nil
}

// findEdge returns the id of the live edge between a and b, if any.
func findEdge(edges []board.EdgeSpec, usable []bool, a, b int) (int, bool) {
	for id, e := range edges {
		if !usable[id] {
			continue
		}
		if (e.A == a && e.B == b) || (e.A == b && e.B == a) {
			return id, true
		}
	}

	return 0, false
}

// trimToFixpoint repeatedly finds a non-goal cell left with exactly one
// live edge and removes that edge too, since no exact search can ever
// traverse into a dead end and back out. It restarts the scan after every
// single removal, mirroring the original's do/while erease_flg loop,
// until a full pass removes nothing.
func trimToFixpoint(edges []board.EdgeSpec, usable []bool, goal int) {
	n := 0
	for _, e := range edges {
		if e.A+1 > n {
			n = e.A + 1
		}
		if e.B+1 > n {
			n = e.B + 1
		}
	}

	for {
		deg := make([]int, n)
		incident := make([][]int, n)
		for id, e := range edges {
			if !usable[id] {
				continue
			}
			deg[e.A]++
			deg[e.B]++
			incident[e.A] = append(incident[e.A], id)
			incident[e.B] = append(incident[e.B], id)
		}

		removed := false
		for v := 0; v < n; v++ {
			if v == goal || deg[v] != 1 {
				continue
			}
			usable[incident[v][0]] = false
			removed = true
			break
		}
		if !removed {
			return
		}
	}
}
