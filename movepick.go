// movepick.go implements the staged move picker: Start -> TTMove ->
// CaptureMoves -> KillerMoves -> QuietMoves -> Done for negamax, or
// Start -> CaptureMoves -> Done for quiescence. Grounded on
// original_source/src/move_pick.rs's MovePickStage/MovePickType state
// machine and its MVV-LVA capture scoring, translated from Rhobos's Rust
// generics into a small Go state machine over *MoveList.

package corechess

// PickStage is the staged move picker's current phase.
type PickStage int

const (
	StageStart PickStage = iota
	StageTT
	StageCapturesGen
	StageCaptures
	StageKillersGen
	StageKillers
	StageQuiets
	StageDone
)

// HistoryTable is the quiet-move ordering heuristic: a counter per
// (moving piece, destination square), incremented by depth^2 on every
// beta-cutoff caused by a quiet move.
type HistoryTable [12][64]uint64

// pieceValue gives each kind's material weight for MVV-LVA scoring. King
// never appears as a victim or attacker value here (it cannot be captured
// in a legal position) but is included for completeness of the index.
var pieceValue = [6]int64{
	King:   0,
	Queen:  900,
	Rook:   500,
	Bishop: 330,
	Knight: 320,
	Pawn:   100,
}

// StartPicking resets list for a new ply's move selection.
func StartPicking(list *MoveList, ttMove Move, killers [NumKillers]Move, quiescence bool) {
	list.Reset()
	list.ttMove = ttMove
	list.killers = killers
	list.quiescence = quiescence
}

// ArmFutility enables futility pruning at the capture-scoring stage: any
// capture whose victim value is strictly below margin is eliminated when
// scored, never offered by PickNext.
func ArmFutility(list *MoveList, margin int) {
	list.futilityArm = true
	list.futilityMin = margin
}

const scoreEliminated = int64(-1) << 62

// PickNext returns the next move this ply's search should try, and false
// once the picker is exhausted.
func PickNext(pos *Position, list *MoveList, history *HistoryTable) (Move, bool) {
	for {
		switch list.stage {
		case StageStart:
			if list.quiescence {
				list.stage = StageCapturesGen
			} else {
				list.stage = StageTT
			}

		case StageTT:
			list.stage = StageCapturesGen
			if list.ttMove != NullMove {
				m := list.ttMove
				list.ttMove = NullMove
				return m, true
			}

		case StageCapturesGen:
			GenerateMoves(pos, ModeCapture, list)
			scoreCaptures(pos, list)
			list.stage = StageCaptures

		case StageCaptures:
			if m, ok := pickMaxCapture(list); ok {
				return m, true
			}
			if list.quiescence {
				list.stage = StageDone
			} else {
				list.stage = StageKillersGen
			}

		case StageKillersGen:
			list.Count = 0
			GenerateMoves(pos, ModeQuiet, list)
			list.stage = StageKillers

		case StageKillers:
			if m, ok := pickKiller(list); ok {
				return m, true
			}
			list.stage = StageQuiets

		case StageQuiets:
			if m, ok := pickMaxQuiet(pos, list, history); ok {
				return m, true
			}
			list.stage = StageDone

		case StageDone:
			return NullMove, false
		}
	}
}

func scoreCaptures(pos *Position, list *MoveList) {
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if m == list.ttMove {
			list.scores[i] = scoreEliminated
			continue
		}
		victim := Pawn
		if m.Kind() != KindEnPassant {
			if vp := pos.PieceAt(m.Dest()); vp != PieceNone {
				victim = vp % 6
			}
		}
		if list.futilityArm && pieceValue[victim] < int64(list.futilityMin) {
			list.scores[i] = scoreEliminated
			continue
		}
		attacker := pos.PieceAt(m.Origin()) % 6
		score := pieceValue[victim]*16 - pieceValue[attacker]
		if m.Kind() == KindPromotion {
			score += pieceValue[promoToKind(m.Promo())]
		}
		list.scores[i] = score
	}
}

func pickMaxCapture(list *MoveList) (Move, bool) {
	best := -1
	bestScore := scoreEliminated
	for i := 0; i < list.Count; i++ {
		if list.Moves[i] == NullMove {
			continue
		}
		if list.scores[i] > bestScore {
			bestScore = list.scores[i]
			best = i
		}
	}
	if best < 0 || bestScore == scoreEliminated {
		return NullMove, false
	}
	m := list.Moves[best]
	list.Moves[best] = NullMove
	return m, true
}

func pickKiller(list *MoveList) (Move, bool) {
	for i := 0; i < NumKillers; i++ {
		k := list.killers[i]
		if k == NullMove {
			continue
		}
		for j := 0; j < list.Count; j++ {
			if list.Moves[j] == k {
				list.Moves[j] = NullMove
				list.killers[i] = NullMove
				return k, true
			}
		}
		list.killers[i] = NullMove
	}
	return NullMove, false
}

func pickMaxQuiet(pos *Position, list *MoveList, history *HistoryTable) (Move, bool) {
	best := -1
	var bestScore uint64
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if m == NullMove {
			continue
		}
		score := historyScore(pos, history, m)
		if best < 0 || score > bestScore {
			bestScore = score
			best = i
		}
	}
	if best < 0 {
		return NullMove, false
	}
	m := list.Moves[best]
	list.Moves[best] = NullMove
	return m, true
}

// historyScore indexes the table by the move's actual moving piece, read
// straight off the board before the move is made, per spec §3/§4.I's
// (moving piece, destination) scheme.
func historyScore(pos *Position, history *HistoryTable, m Move) uint64 {
	piece := pos.PieceAt(m.Origin())
	if piece == PieceNone {
		return 0
	}
	return history[piece][m.Dest()]
}

// BumpHistory increments the (piece, destination) history counter on a
// quiet beta-cutoff, per spec §4.K step 5: increment by depth^2.
func BumpHistory(history *HistoryTable, piece, dest, depth int) {
	history[piece][dest] += uint64(depth * depth)
}
