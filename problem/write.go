package problem

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/walkscore/board"
)

// Write serializes b back into the §6.1 grammar, with prefix/goal as the
// preamble line: "K p0 ... p(K-1) G". This is how split mode turns a
// partial search.State into a standalone sub-problem file — the prefix
// walk, re-applied by Parse on load, consumes exactly the edges this
// partial state already used.
//
// b.Edges is emitted in the same row-major order Parse read it in (Build
// never reorders its input edge list), so the token grid round-trips
// exactly regardless of which edges are currently marked unusable.
func Write(w io.Writer, b *board.Board, prefix []int, goal int) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d %d\n", b.W, b.H); err != nil {
		return err
	}

	idx := 0
	for row := 0; row < 2*b.H-1; row++ {
		vertical := row%2 == 1
		count := b.W - 1
		if vertical {
			count = b.W
		}
		for x := 0; x < count; x++ {
			if x > 0 {
				if _, err := bw.WriteString(" "); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(tokenOrIdentity(b.Edges[idx].Mul, b.Edges[idx].Add)); err != nil {
				return err
			}
			idx++
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(bw, "%d", len(prefix)); err != nil {
		return err
	}
	for _, p := range prefix {
		if _, err := fmt.Fprintf(bw, " %d", p); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, " %d\n", goal); err != nil {
		return err
	}

	return bw.Flush()
}

// tokenOrIdentity renders (mul, add) back to a problem-file token; the
// identity transform (mul=1, add=0) has no canonical token in the original
// grammar, so it is written as "+0" rather than omitted.
func tokenOrIdentity(mul, add int64) string {
	if add == 0 && mul != 1 {
		return "*" + strconv.FormatInt(mul, 10)
	}
	if add >= 0 {
		return "+" + strconv.FormatInt(add, 10)
	}

	return "-" + strconv.FormatInt(-add, 10)
}
