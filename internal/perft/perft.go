// Package perft implements the move-generator correctness test and its
// interactive divide variant. Grounded on the teacher's internal/perft.go
// recursive node counter, generalized to the reversible Position, and on
// original_source/src/debugging.rs's perft_checker REPL for Divide's
// per-move breakdown used to bisect a generator bug against a reference
// engine.
package perft

import (
	"fmt"
	"io"

	"github.com/silvanis/corechess"
)

// Count runs perft to depth on p and returns the total leaf node count.
func Count(p *corechess.Position, depth int) uint64 {
	stack := corechess.NewMoveStack(depth + 1)
	return countPly(p, depth, stack)
}

func countPly(p *corechess.Position, depth int, stack *corechess.MoveStack) uint64 {
	if depth == 0 {
		return 1
	}

	list := stack.Push()
	defer stack.Pop()
	corechess.GenerateMoves(p, corechess.ModeAll, list)

	var nodes uint64
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if !p.Make(m) {
			p.Unmake(m)
			continue
		}
		nodes += countPly(p, depth-1, stack)
		p.Unmake(m)
	}
	return nodes
}

// Divide prints, for each legal move at the root, the subtree node count
// at depth-1, followed by the total — the standard debugging aid for
// finding which root move diverges from a reference perft value.
func Divide(w io.Writer, p *corechess.Position, depth int) uint64 {
	stack := corechess.NewMoveStack(depth + 1)
	list := stack.Push()
	defer stack.Pop()
	corechess.GenerateMoves(p, corechess.ModeAll, list)

	var total uint64
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if !p.Make(m) {
			p.Unmake(m)
			continue
		}
		var n uint64
		if depth <= 1 {
			n = 1
		} else {
			n = countPly(p, depth-1, stack)
		}
		p.Unmake(m)
		fmt.Fprintf(w, "%s: %d\n", m.String(), n)
		total += n
	}
	fmt.Fprintf(w, "\ntotal: %d\n", total)
	return total
}
