// eval.go implements tapered static evaluation: material, piece-square
// tables, mobility, and king safety, combined on a midgame/endgame phase
// blend. Grounded on original_source/src/evaluation.rs's PST/tapering/
// king-ring shape, translated to the package's bitboard representation
// and scaled the way the teacher's pieceWeights/calculateMaterial did
// material scoring.

package corechess

// CentiPawn is the fixed-point scale applied to every evaluation term: 16
// fractional bits of headroom for tapering and king-safety arithmetic
// without losing precision, per spec §4.H.
const CentiPawn = 1 << 16

// MateValueCutoff separates ordinary centipawn scores from encoded mate
// distances; anything with a larger absolute value is a mate score.
const MateValueCutoff = 100000 * CentiPawn

// PositiveMateZero and NegativeMateZero anchor the mate_in(d) encoding:
// losing is negative, winning is positive, per the decided polarity.
const (
	PositiveMateZero = MateValueCutoff + 1000*CentiPawn
	NegativeMateZero = -PositiveMateZero
)

// MateIn encodes a mate found d plies from the current node. Positive d
// means the side to move delivers mate; negative d means it is mated.
func MateIn(d int) int {
	if d >= 0 {
		return PositiveMateZero - d*CentiPawn
	}
	return NegativeMateZero - d*CentiPawn
}

// IsMateScore reports whether score should be displayed as a mate
// distance rather than a centipawn value.
func IsMateScore(score int) bool {
	if score < 0 {
		score = -score
	}
	return score > MateValueCutoff
}

// MateDistance recovers the ply count from a mate-encoded score. The
// result is positive when the side whose perspective the score is from is
// delivering mate, negative when it is being mated.
func MateDistance(score int) int {
	if score > 0 {
		return (PositiveMateZero - score) / CentiPawn
	}
	return (NegativeMateZero - score) / CentiPawn
}

var pieceCentipawns = [6]int{
	King:   0,
	Queen:  900,
	Rook:   500,
	Bishop: 330,
	Knight: 320,
	Pawn:   100,
}

// phaseWeight is the tapering contribution of one piece of each kind;
// king and pawn contribute nothing.
var phaseWeight = [6]int{
	King:   0,
	Queen:  4,
	Rook:   2,
	Bishop: 1,
	Knight: 1,
	Pawn:   0,
}

const totalPhase = 24 // 2 queens*4 + 4 rooks*2 + 4 bishops + 4 knights

// pstMidgame and pstEndgame are White's-perspective piece-square tables
// indexed [kind][square], scaled by CentiPawn at init. Black's value at
// sq is -table[kind][sq^56].
var (
	pstMidgame [6][64]int
	pstEndgame [6][64]int
)

// rawPSTMidgame and rawPSTEndgame hold small, hand-tuned centipawn tables; index 0 is a1. These
// are illustrative positional biases (centralize knights/bishops, push
// passed-pawn-shaped structure in the endgame, tuck the king away in the
// middlegame and centralize it in the endgame) rather than a tuned
// engine's tables.
var rawPSTMidgame = [6][64]int{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	King: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

var rawPSTEndgame = [6][64]int{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 5, 5, 5, 5, 5, 5, 5,
		10, 10, 10, 10, 10, 10, 10, 10,
		20, 20, 20, 20, 20, 20, 20, 20,
		35, 35, 35, 35, 35, 35, 35, 35,
		55, 55, 55, 55, 55, 55, 55, 55,
		80, 80, 80, 80, 80, 80, 80, 80,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight:  rawPSTMidgame[Knight],
	Bishop:  rawPSTMidgame[Bishop],
	Rook:    rawPSTMidgame[Rook],
	Queen:   rawPSTMidgame[Queen],
	King: {
		-50, -30, -30, -30, -30, -30, -30, -50,
		-30, -30, 0, 0, 0, 0, -30, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 30, 40, 40, 30, -10, -30,
		-30, -10, 20, 30, 30, 20, -10, -30,
		-30, -20, -10, 0, 0, -10, -20, -30,
		-50, -40, -30, -20, -20, -30, -40, -50,
	},
}

// InitEval scales the raw centipawn tables by CentiPawn. Call once at
// process start.
func InitEval() {
	for k := 0; k < 6; k++ {
		for sq := 0; sq < 64; sq++ {
			pstMidgame[k][sq] = rawPSTMidgame[k][sq] * CentiPawn
			pstEndgame[k][sq] = rawPSTEndgame[k][sq] * CentiPawn
		}
	}
}

// mobilityWeight is the per-destination-square bonus credited to a
// non-pawn, non-king piece for each square it attacks among the
// acceptable destination mask (empty or enemy-occupied squares).
var mobilityWeight = [6]int{
	Knight: 4 * CentiPawn,
	Bishop: 5 * CentiPawn,
	Rook:   2 * CentiPawn,
	Queen:  1 * CentiPawn,
}

// kingRingPenalty is indexed by a clipped attacker-weight sum and rises
// roughly quadratically before saturating at 500 centipawns.
var kingRingPenalty [100]int

func init() {
	for i := range kingRingPenalty {
		v := (i * i * 5) / 10
		if v > 500 {
			v = 500
		}
		kingRingPenalty[i] = v * CentiPawn
	}
}

var attackerWeight = [6]int{
	Queen:  4,
	Rook:   2,
	Bishop: 1,
	Knight: 1,
	Pawn:   1,
}

// Evaluate returns a static score from p.Turn's perspective, clamped to
// ±MateValueCutoff.
func Evaluate(p *Position) int {
	var mg, eg, phase int

	for color := White; color <= Black; color++ {
		sign := 1
		if color == Black {
			sign = -1
		}
		for kind := King; kind <= Pawn; kind++ {
			bb := p.Board[pieceAt(color, kind)]
			for bb != 0 {
				sq := PopLSB(&bb)
				pstSq := sq
				if color == Black {
					pstSq = sq ^ 56
				}
				mg += sign * (pieceCentipawns[kind]*CentiPawn + pstMidgame[kind][pstSq])
				eg += sign * (pieceCentipawns[kind]*CentiPawn + pstEndgame[kind][pstSq])
				phase += phaseWeight[kind]
			}
		}
	}

	mg += mobilityScore(p, White) - mobilityScore(p, Black)
	eg += mobilityScore(p, White) - mobilityScore(p, Black)

	mg -= kingSafetyPenalty(p, White)
	mg += kingSafetyPenalty(p, Black)

	if phase > totalPhase {
		phase = totalPhase
	}
	score := (mg*phase + eg*(totalPhase-phase)) / totalPhase

	if score > MateValueCutoff {
		score = MateValueCutoff
	}
	if score < -MateValueCutoff {
		score = -MateValueCutoff
	}
	if p.Turn == Black {
		score = -score
	}
	return score
}

func mobilityScore(p *Position, color Color) int {
	acceptable := ^p.SideOcc[color]
	var total int

	knights := p.Board[pieceAt(color, Knight)]
	for knights != 0 {
		sq := PopLSB(&knights)
		total += PopCount(knightAttacks[sq]&acceptable) * mobilityWeight[Knight]
	}
	bishops := p.Board[pieceAt(color, Bishop)]
	for bishops != 0 {
		sq := PopLSB(&bishops)
		total += PopCount(BishopAttacks(sq, p.Occ)&acceptable) * mobilityWeight[Bishop]
	}
	rooks := p.Board[pieceAt(color, Rook)]
	for rooks != 0 {
		sq := PopLSB(&rooks)
		total += PopCount(RookAttacks(sq, p.Occ)&acceptable) * mobilityWeight[Rook]
	}
	queens := p.Board[pieceAt(color, Queen)]
	for queens != 0 {
		sq := PopLSB(&queens)
		total += PopCount(QueenAttacks(sq, p.Occ)&acceptable) * mobilityWeight[Queen]
	}
	return total
}

// kingSafetyPenalty sums attacker weights on color's king-ring and maps
// the clipped total through the non-linear penalty table.
func kingSafetyPenalty(p *Position, color Color) int {
	kingSq := p.KingSquare(color)
	ring := kingAttacks[kingSq]
	attacker := 1 - color

	var weight int
	for kind := Queen; kind <= Pawn; kind++ {
		bb := p.Board[pieceAt(attacker, kind)]
		for bb != 0 {
			sq := PopLSB(&bb)
			var attacks Bitboard
			switch kind {
			case Queen:
				attacks = QueenAttacks(sq, p.Occ)
			case Rook:
				attacks = RookAttacks(sq, p.Occ)
			case Bishop:
				attacks = BishopAttacks(sq, p.Occ)
			case Knight:
				attacks = knightAttacks[sq]
			case Pawn:
				attacks = pawnAttacks[attacker][sq]
			}
			if attacks&ring != 0 {
				weight += attackerWeight[kind]
			}
		}
	}
	if weight > 99 {
		weight = 99
	}
	return kingRingPenalty[weight]
}
