// worker.go defines the single search worker that owns a position, its
// move stack, history table, and transposition table for the life of a
// search. Grounded on original_source/src/worker.rs's Worker struct;
// spec §5 specifies a single-threaded core, so nodesSearched needs no
// atomics, but an xsync.Counter is used anyway so the field is safe to read from a concurrent UI/status
// goroutine without the worker's search loop taking a lock.

package corechess

import (
	"context"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
)

// Worker drives one iterative-deepening search over one Position.
type Worker struct {
	Position *Position
	Moves    *MoveStack
	History  *HistoryTable
	TT       *TranspositionTable

	killers [][NumKillers]Move // indexed by ply

	mainThread    bool
	rootPly       int
	nodesSearched *xsync.Counter
	lastIDSScore  int

	deadline time.Time
}

// NewWorker builds a worker around pos with a freshly allocated move
// stack, history table, and the given shared transposition table.
func NewWorker(pos *Position, tt *TranspositionTable, maxPly int) *Worker {
	return &Worker{
		Position:      pos,
		Moves:         NewMoveStack(maxPly + 64),
		History:       &HistoryTable{},
		TT:            tt,
		killers:       make([][NumKillers]Move, maxPly+64),
		mainThread:    true,
		rootPly:       pos.Ply,
		nodesSearched: xsync.NewCounter(),
	}
}

func (w *Worker) killerSlots(ply int) [NumKillers]Move {
	if ply < 0 || ply >= len(w.killers) {
		return [NumKillers]Move{}
	}
	return w.killers[ply]
}

func (w *Worker) pushKiller(ply int, m Move) {
	if ply < 0 || ply >= len(w.killers) {
		return
	}
	slots := &w.killers[ply]
	if slots[0] == m {
		return
	}
	slots[1] = slots[0]
	slots[0] = m
}

// timeUp reports whether the search's wall-clock budget has elapsed. It
// is consulted between iterative-deepening iterations and between the
// aspiration re-searches of one iteration, never inside a tree search.
func (w *Worker) timeUp() bool {
	return !w.deadline.IsZero() && time.Now().After(w.deadline)
}

// SearchResult is what IterativeDeepen returns once it stops.
type SearchResult struct {
	Move       Move
	Score      int
	Depth      int
	NodesTotal int64
}

// contextDeadlineOr returns ctx's deadline if it has one, else fallback.
func contextDeadlineOr(ctx context.Context, fallback time.Time) time.Time {
	if d, ok := ctx.Deadline(); ok {
		return d
	}
	return fallback
}
