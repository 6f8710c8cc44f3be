// movegen.go implements the pseudo-legal move generator. Adapted from the
// teacher's movegen.go (attack-table lookups, pawn push/capture shape) and
// generalized to the reversible Position and the exact Mode/king-safety/
// castling/promotion rules of spec §4.F.

package corechess

// Mode selects which destination squares the generator should target.
type Mode int

const (
	ModeAll Mode = iota
	ModeQuiet
	ModeCapture
)

// GenerateMoves appends every pseudo-legal move for the side to move into
// list, under the given mode. King moves and castling are generated fully
// legal (filtered through the king-safety check); everything else is
// merely pseudo-legal, left to Position.Make to reject.
func GenerateMoves(p *Position, mode Mode, list *MoveList) {
	us, them := p.Turn, 1-p.Turn
	ownOcc, enemyOcc := p.SideOcc[us], p.SideOcc[them]
	empty := ^p.Occ

	var destMask Bitboard
	switch mode {
	case ModeQuiet:
		destMask = empty
	case ModeCapture:
		destMask = enemyOcc
	default:
		destMask = ^ownOcc
	}

	genPawnMoves(p, mode, list)

	knights := p.Board[pieceAt(us, Knight)]
	for knights != 0 {
		from := PopLSB(&knights)
		genFromTargets(list, from, KindPlain, 0, knightAttacks[from]&destMask)
	}

	bishops := p.Board[pieceAt(us, Bishop)]
	for bishops != 0 {
		from := PopLSB(&bishops)
		genFromTargets(list, from, KindPlain, 0, BishopAttacks(from, p.Occ)&destMask)
	}

	rooks := p.Board[pieceAt(us, Rook)]
	for rooks != 0 {
		from := PopLSB(&rooks)
		genFromTargets(list, from, KindPlain, 0, RookAttacks(from, p.Occ)&destMask)
	}

	queens := p.Board[pieceAt(us, Queen)]
	for queens != 0 {
		from := PopLSB(&queens)
		genFromTargets(list, from, KindPlain, 0, QueenAttacks(from, p.Occ)&destMask)
	}

	genKingMoves(p, mode, list)
}

func genFromTargets(list *MoveList, from int, kind MoveKind, info int, targets Bitboard) {
	for targets != 0 {
		to := PopLSB(&targets)
		list.Push(NewMove(from, to, kind, info))
	}
}

func genKingMoves(p *Position, mode Mode, list *MoveList) {
	us, them := p.Turn, 1-p.Turn
	ownOcc, enemyOcc := p.SideOcc[us], p.SideOcc[them]
	empty := ^p.Occ

	var destMask Bitboard
	switch mode {
	case ModeQuiet:
		destMask = empty
	case ModeCapture:
		destMask = enemyOcc
	default:
		destMask = ^ownOcc
	}

	from := p.KingSquare(us)
	// Remove the king from the occupancy used for attack checks so a
	// slider attacking through the king's own square is not blocked by it.
	occWithoutKing := p.Occ &^ SquareBB(from)

	targets := kingAttacks[from] & destMask
	for targets != 0 {
		to := PopLSB(&targets)
		if !p.isAttacked(to, them, occWithoutKing) {
			list.Push(NewMove(from, to, KindPlain, 0))
		}
	}

	if mode == ModeCapture {
		return
	}
	if p.Check {
		return
	}
	genCastling(p, list, occWithoutKing)
}

func genCastling(p *Position, list *MoveList, occWithoutKing Bitboard) {
	us, them := p.Turn, 1-p.Turn
	rights := p.Castle[us]
	if rights == 0 {
		return
	}

	if us == White {
		if rights&CastleKingSide != 0 &&
			p.Occ&(SquareBB(SF1)|SquareBB(SG1)) == 0 &&
			!p.isAttacked(SF1, them, occWithoutKing) && !p.isAttacked(SG1, them, occWithoutKing) {
			list.Push(NewMove(SE1, SG1, KindCastle, CastleKingSide))
		}
		if rights&CastleQueenSide != 0 &&
			p.Occ&(SquareBB(SD1)|SquareBB(SC1)|SquareBB(SB1)) == 0 &&
			!p.isAttacked(SD1, them, occWithoutKing) && !p.isAttacked(SC1, them, occWithoutKing) {
			list.Push(NewMove(SE1, SC1, KindCastle, CastleQueenSide))
		}
	} else {
		if rights&CastleKingSide != 0 &&
			p.Occ&(SquareBB(SF8)|SquareBB(SG8)) == 0 &&
			!p.isAttacked(SF8, them, occWithoutKing) && !p.isAttacked(SG8, them, occWithoutKing) {
			list.Push(NewMove(SE8, SG8, KindCastle, CastleKingSide))
		}
		if rights&CastleQueenSide != 0 &&
			p.Occ&(SquareBB(SD8)|SquareBB(SC8)|SquareBB(SB8)) == 0 &&
			!p.isAttacked(SD8, them, occWithoutKing) && !p.isAttacked(SC8, them, occWithoutKing) {
			list.Push(NewMove(SE8, SC8, KindCastle, CastleQueenSide))
		}
	}
}

func genPawnMoves(p *Position, mode Mode, list *MoveList) {
	us := p.Turn
	pawns := p.Board[pieceAt(us, Pawn)]
	empty := ^p.Occ
	enemyOcc := p.SideOcc[1-us]

	seventh := rank7
	if us == Black {
		seventh = rank2
	}
	notSeventh := pawns &^ seventh
	onSeventh := pawns & seventh

	if mode != ModeCapture {
		genPawnPushes(us, notSeventh, empty, list)
	}
	genPawnPromotionPushes(us, onSeventh, empty, mode, list)

	if mode != ModeQuiet {
		genPawnCaptures(us, notSeventh, enemyOcc, list)
	}
	genPawnPromotionCaptures(us, onSeventh, enemyOcc, mode, list)

	if p.EPSquare != NullSquare && mode != ModeQuiet {
		genEnPassant(us, notSeventh, p.EPSquare, list)
	}
}

func pawnForward(b Bitboard, color Color) Bitboard {
	if color == White {
		return b << 8
	}
	return b >> 8
}

func pawnBackward(b Bitboard, color Color) Bitboard {
	if color == White {
		return b >> 8
	}
	return b << 8
}

func genPawnPushes(color Color, pawns, empty Bitboard, list *MoveList) {
	single := pawnForward(pawns, color) & empty
	doubleRank := rank4
	if color == Black {
		doubleRank = rank5
	}
	double := pawnForward(single, color) & empty & doubleRank

	t := single
	for t != 0 {
		to := PopLSB(&t)
		from := to - forwardDelta(color)
		list.Push(NewMove(from, to, KindPlain, 0))
	}
	t = double
	for t != 0 {
		to := PopLSB(&t)
		from := to - 2*forwardDelta(color)
		list.Push(NewMove(from, to, KindPlain, 0))
	}
}

func forwardDelta(color Color) int {
	if color == White {
		return 8
	}
	return -8
}

func genPawnPromotionPushes(color Color, pawns, empty Bitboard, mode Mode, list *MoveList) {
	single := pawnForward(pawns, color) & empty
	t := single
	for t != 0 {
		to := PopLSB(&t)
		from := to - forwardDelta(color)
		if mode != ModeCapture {
			list.Push(NewPromotionMove(from, to, PromoRook))
			list.Push(NewPromotionMove(from, to, PromoBishop))
			list.Push(NewPromotionMove(from, to, PromoKnight))
		}
		if mode != ModeQuiet {
			list.Push(NewPromotionMove(from, to, PromoQueen))
		}
	}
}

func genPawnCaptures(color Color, pawns, enemyOcc Bitboard, list *MoveList) {
	var east, west Bitboard
	if color == White {
		east = pawns & notHFile << 9 & enemyOcc
		west = pawns & notAFile << 7 & enemyOcc
	} else {
		east = pawns & notHFile >> 7 & enemyOcc
		west = pawns & notAFile >> 9 & enemyOcc
	}
	emit := func(targets Bitboard, delta int) {
		for targets != 0 {
			to := PopLSB(&targets)
			list.Push(NewMove(to-delta, to, KindPlain, 0))
		}
	}
	if color == White {
		emit(east, 9)
		emit(west, 7)
	} else {
		emit(east, -7)
		emit(west, -9)
	}
}

func genPawnPromotionCaptures(color Color, pawns, enemyOcc Bitboard, mode Mode, list *MoveList) {
	var east, west Bitboard
	var deltaE, deltaW int
	if color == White {
		east, deltaE = pawns&notHFile<<9&enemyOcc, 9
		west, deltaW = pawns&notAFile<<7&enemyOcc, 7
	} else {
		east, deltaE = pawns&notHFile>>7&enemyOcc, -7
		west, deltaW = pawns&notAFile>>9&enemyOcc, -9
	}
	emit := func(targets Bitboard, delta int) {
		for targets != 0 {
			to := PopLSB(&targets)
			from := to - delta
			if mode != ModeQuiet {
				list.Push(NewPromotionMove(from, to, PromoQueen))
				list.Push(NewPromotionMove(from, to, PromoRook))
				list.Push(NewPromotionMove(from, to, PromoBishop))
				list.Push(NewPromotionMove(from, to, PromoKnight))
			}
		}
	}
	emit(east, deltaE)
	emit(west, deltaW)
}

func genEnPassant(color Color, pawns Bitboard, epSquare int, list *MoveList) {
	them := 1 - color
	attackers := pawnAttacks[them][epSquare] & pawns
	for attackers != 0 {
		from := PopLSB(&attackers)
		list.Push(NewMove(from, epSquare, KindEnPassant, 0))
	}
}
