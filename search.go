// search.go implements iterative deepening with aspiration windows over
// a negamax/alpha-beta tree with TT cutoffs, internal iterative
// deepening, null-move pruning, late-move reductions, and a quiescence
// leaf search. Grounded on original_source/src/search.rs's control flow,
// translated into the worker/position/picker types this package builds
// on. Cancellation between iterations is wired through context.Context
// and golang.org/x/sync/errgroup per the engine's ambient concurrency
// stack, even though the search itself stays single-threaded per spec §5.

package corechess

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	internalIIDSDepth = 5
	nullMoveReduction = 2
	maxPly            = 128
)

// lmrTable[depth][moveCount] holds the precomputed reduction (already
// divided by 1024) for a move beyond the first few in the ordering.
var lmrTable [64][64]int

func init() {
	for d := 1; d < 64; d++ {
		for mc := 1; mc < 64; mc++ {
			r := int(math.Round(1024 * (0.6 + 0.4*math.Log(float64(d))*math.Log(float64(mc)))))
			if r < 0 {
				r = 0
			}
			lmrTable[d][mc] = r / 1024
		}
	}
}

// aspirationDelta returns the initial half-width of the aspiration
// window for a given depth; it shrinks as depth grows since deeper
// iterations' scores tend to be closer to the previous iteration's.
func aspirationDelta(depth int) int {
	d := (200 * CentiPawn) / (depth + 1)
	if d < 16*CentiPawn {
		d = 16 * CentiPawn
	}
	return d
}

func clampMate(bound int) int {
	if bound > PositiveMateZero {
		return PositiveMateZero
	}
	if bound < NegativeMateZero {
		return NegativeMateZero
	}
	return bound
}

// IterativeDeepen searches from depth 1 up to maxDepth (or until budget
// elapses), returning the last fully completed iteration's result. It
// never returns a partial iteration's move. When printInfo is true, it
// emits one INFO line per completed iteration (depth, score, nodes, NPS,
// PV move), per spec §6's worker.search(position, duration, print_info).
func IterativeDeepen(ctx context.Context, w *Worker, maxDepth int, budget time.Duration, printInfo bool) SearchResult {
	w.deadline = contextDeadlineOr(ctx, time.Now().Add(budget))
	start := time.Now()

	var best SearchResult
	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		guess := 0
		for depth := 1; depth <= maxDepth; depth++ {
			if w.timeUp() || gctx.Err() != nil {
				break
			}

			score, move, ok := w.aspirationSearch(gctx, depth, guess)
			if !ok {
				break
			}
			guess = score
			nodes := w.nodesSearched.Value()
			best = SearchResult{Move: move, Score: score, Depth: depth, NodesTotal: nodes}
			w.lastIDSScore = score

			if printInfo {
				elapsed := time.Since(start).Seconds()
				nps := float64(0)
				if elapsed > 0 {
					nps = float64(nodes) / elapsed
				}
				searchLog.Infof("depth %d score %d nodes %d nps %.0f pv %s", depth, score, nodes, nps, move.String())
			}
		}
		return nil
	})
	_ = group.Wait()

	return best
}

// aspirationSearch runs one iterative-deepening iteration with a
// narrowing-then-widening window around guess, per spec §4.K.
func (w *Worker) aspirationSearch(ctx context.Context, depth, guess int) (int, Move, bool) {
	if depth == 1 {
		score, move := w.negamaxRoot(ctx, depth, -MateValueCutoff, MateValueCutoff)
		if move == NullMove || ctx.Err() != nil {
			return 0, NullMove, false
		}
		return score, move, true
	}

	delta := aspirationDelta(depth)
	alpha := clampMate(guess - delta)
	beta := clampMate(guess + delta)

	for {
		if w.timeUp() || ctx.Err() != nil {
			return 0, NullMove, false
		}
		score, move := w.negamaxRoot(ctx, depth, alpha, beta)
		if move == NullMove || ctx.Err() != nil {
			return 0, NullMove, false
		}
		switch {
		case score <= alpha:
			searchLog.Debugf("depth %d aspiration fail-low: score %d <= alpha %d, widening", depth, score, alpha)
			delta *= 2
			alpha = clampMate(alpha - delta)
			beta = clampMate(beta - delta/3)
		case score >= beta:
			searchLog.Debugf("depth %d aspiration fail-high: score %d >= beta %d, widening", depth, score, beta)
			delta *= 2
			beta = clampMate(beta + delta)
		default:
			return score, move, true
		}
	}
}

func (w *Worker) negamaxRoot(ctx context.Context, depth, alpha, beta int) (int, Move) {
	best := NullMove
	bestScore := alpha

	list := w.Moves.Push()
	defer w.Moves.Pop()

	ttMove := NullMove
	if mv, _, _, _, ok := w.TT.Probe(w.Position.Zobrist); ok {
		ttMove = mv
	}
	StartPicking(list, ttMove, w.killerSlots(0), false)

	moveCount := 0
	for {
		m, ok := PickNext(w.Position, list, w.History)
		if !ok {
			break
		}
		if !w.Position.Make(m) {
			w.Position.Unmake(m)
			continue
		}
		moveCount++
		score := -w.negamax(ctx, depth-1, -beta, -bestScore, 1)
		w.Position.Unmake(m)

		if ctx.Err() != nil {
			return bestScore, best
		}
		if score > bestScore {
			bestScore = score
			best = m
		}
	}

	if best != NullMove {
		w.TT.Store(w.Position.Zobrist, best, depth, NodePV, int64(bestScore), w.Position.Ply)
	}
	return bestScore, best
}

// negamax implements spec §4.K's numbered algorithm exactly.
func (w *Worker) negamax(ctx context.Context, depth, alpha, beta, ply int) int {
	if depth < 0 {
		depth = 0
	}
	w.nodesSearched.Inc()
	if depth == 0 {
		return w.quiescence(alpha, beta)
	}

	origAlpha := alpha
	hash := w.Position.Zobrist
	ttMove := NullMove

	if mv, storedDepth, nodeType, score, ok := w.TT.Probe(hash); ok {
		if nodeType == NodeTerminal {
			return adjustMateScore(int(score), ply)
		}
		if storedDepth >= depth {
			s := int(score)
			switch nodeType {
			case NodePV:
				if s > alpha && s < beta {
					return s
				}
			case NodeCut:
				if s >= beta {
					return s
				}
			case NodeAll:
				if s <= alpha {
					return s
				}
			}
		}
		ttMove = mv
	}

	if ttMove == NullMove && depth >= internalIIDSDepth {
		w.negamax(ctx, depth/2, alpha, beta, ply)
		if mv, _, _, _, ok := w.TT.Probe(hash); ok {
			ttMove = mv
		}
	}

	if depth > 2 && !w.Position.Check && w.sideHasNonPawnMaterial() {
		w.Position.Make(PassingMove)
		score := -w.negamax(ctx, depth-nullMoveReduction-1, -beta, -beta+1, ply+1)
		w.Position.Unmake(PassingMove)
		if score >= beta {
			return beta
		}
	}

	list := w.Moves.Push()
	defer w.Moves.Pop()
	StartPicking(list, ttMove, w.killerSlots(ply), false)

	best := NullMove
	moveCount := 0
	legalFound := false

	for {
		m, ok := PickNext(w.Position, list, w.History)
		if !ok {
			break
		}
		if !w.Position.Make(m) {
			w.Position.Unmake(m)
			continue
		}
		legalFound = true
		moveCount++

		var score int
		if moveCount == 1 {
			score = -w.negamax(ctx, depth-1, -beta, -alpha, ply+1)
		} else {
			reduction := 0
			if d := depth; d < len(lmrTable) && moveCount < len(lmrTable[0]) {
				reduction = lmrTable[d][moveCount]
			}
			reducedDepth := depth - 1 - reduction
			if reducedDepth < 0 {
				reducedDepth = 0
			}
			score = -w.negamax(ctx, reducedDepth, -alpha-1, -alpha, ply+1)
			if score > alpha && score < beta {
				score = -w.negamax(ctx, depth-1, -beta, -alpha, ply+1)
			}
		}
		w.Position.Unmake(m)

		if score >= beta {
			quiet := (m.Kind() == KindPlain || m.Kind() == KindCastle) && w.Position.PieceAt(m.Dest()) == PieceNone
			if quiet {
				piece := w.Position.PieceAt(m.Origin())
				BumpHistory(w.History, piece, m.Dest(), depth)
				w.pushKiller(ply, m)
			}
			w.TT.Store(hash, m, depth, NodeCut, int64(beta), w.Position.Ply)
			return beta
		}
		if score > alpha {
			alpha = score
			best = m
		}
	}

	if !legalFound {
		var terminalScore int
		if w.Position.Check {
			terminalScore = NegativeMateZero
		} else {
			terminalScore = 0
		}
		w.TT.Store(hash, NullMove, depth, NodeTerminal, int64(terminalScore), w.Position.Ply)
		return adjustMateScore(terminalScore, ply)
	}

	nodeType := NodeAll
	if best != NullMove {
		nodeType = NodePV
	}
	_ = origAlpha
	w.TT.Store(hash, best, depth, nodeType, int64(alpha), w.Position.Ply)
	return alpha
}

// adjustMateScore re-derives a stored mate score's distance relative to
// the current ply rather than the ply the entry was written at.
func adjustMateScore(score, ply int) int {
	if !IsMateScore(score) {
		return score
	}
	if score > 0 {
		return score - ply*CentiPawn
	}
	return score + ply*CentiPawn
}

func (w *Worker) sideHasNonPawnMaterial() bool {
	us := w.Position.Turn
	return w.Position.Board[pieceAt(us, Knight)]|
		w.Position.Board[pieceAt(us, Bishop)]|
		w.Position.Board[pieceAt(us, Rook)]|
		w.Position.Board[pieceAt(us, Queen)] != 0
}

// quiescence extends search over captures only, per spec §4.K.
func (w *Worker) quiescence(alpha, beta int) int {
	w.nodesSearched.Inc()
	stand := Evaluate(w.Position)
	if stand >= beta {
		return beta
	}
	if stand > alpha {
		alpha = stand
	}

	list := w.Moves.Push()
	defer w.Moves.Pop()
	StartPicking(list, NullMove, [NumKillers]Move{}, true)

	for {
		m, ok := PickNext(w.Position, list, w.History)
		if !ok {
			break
		}
		if !w.Position.Make(m) {
			w.Position.Unmake(m)
			continue
		}
		score := -w.quiescence(-beta, -alpha)
		w.Position.Unmake(m)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
