// position.go defines the Position structure and its reversible move
// application. The field layout follows the teacher's position.go (twelve
// piece bitboards, side occupancies, castling/ep/halfmove state); the
// incremental undo-stack discipline that lets Unmake reverse a move in
// place, instead of the teacher's full-position copy-make, is grounded on
// IlikeChooros-dragontoothmg/apply.go's History-stack pattern translated
// into this package's types and spec's exact 9-step Make algorithm.

package corechess

// Position is a chessboard state together with everything needed to undo
// the last N applied moves.
type Position struct {
	Board   [12]Bitboard // indexed by pieceAt(color, kind)
	SideOcc [2]Bitboard
	Occ     Bitboard

	Turn     Color
	Ply      int
	EPSquare int // NullSquare if none
	Castle   [2]int // 2-bit rights per color: bit0 king-side, bit1 queen-side
	Halfmove int
	Check    bool
	Zobrist  uint64

	undo []undoFrame
}

type undoFrame struct {
	epSquare       int
	castle         [2]int
	halfmove       int
	zobrist        uint64
	check          bool
	capturedPiece  int
	capturedSquare int
	passing        bool
}

// NewPosition returns an empty, zeroed position (use ParseFEN to build a
// real one).
func NewPosition() *Position {
	return &Position{EPSquare: NullSquare}
}

// PieceAt returns the combined piece index standing on sq, or PieceNone.
func (p *Position) PieceAt(sq int) int {
	bb := SquareBB(sq)
	for i := 0; i < 12; i++ {
		if p.Board[i]&bb != 0 {
			return i
		}
	}
	return PieceNone
}

func (p *Position) placePiece(piece, sq int) {
	bb := SquareBB(sq)
	p.Board[piece] ^= bb
	color := piece / 6
	p.SideOcc[color] ^= bb
	p.Occ ^= bb
	p.Zobrist ^= pieceKeys[piece][sq]
}

// Home king squares and rook corners, used by castling-rights stripping and
// castling move application.
const (
	rookA1, rookH1 = SA1, SH1
	rookA8, rookH8 = SA8, SH8
	kingE1, kingE8 = SE1, SE8
)

func prefetchTT(hash uint64) {
	// Go exposes no portable cache-prefetch intrinsic (unlike the
	// __builtin_prefetch/_mm_prefetch the original engine issues here);
	// this hook exists so the call site matches spec §4.G step 6 and can
	// be wired to an architecture-specific intrinsic via assembly later.
	_ = hash
}

// Make applies m in place and returns true iff the resulting position is
// legal (the mover's own king is not left in check). On both outcomes the
// caller must call Unmake(m) to restore the position — Make always pushes
// an undo frame, even for moves it rejects, so Unmake is unconditional.
func (p *Position) Make(m Move) bool {
	if m == PassingMove {
		return p.makePassing()
	}

	origin, dest := m.Origin(), m.Dest()
	mover := p.PieceAt(origin)
	moverKind := mover % 6
	moverColor := mover / 6
	opp := 1 - moverColor

	// Step 1: record the undo frame (pushed onto the stack in step 7).
	frame := undoFrame{
		epSquare:      p.EPSquare,
		castle:        p.Castle,
		halfmove:      p.Halfmove,
		zobrist:       p.Zobrist,
		check:         p.Check,
		capturedPiece: PieceNone,
	}

	// Step 2: clear ep-square.
	if p.EPSquare != NullSquare {
		p.Zobrist ^= epFileKeys[File(p.EPSquare)]
	}
	p.EPSquare = NullSquare

	// Step 3: clear the mover from its origin square (destination is set
	// below, after the capture check, so a captured piece on dest is
	// never masked by the mover's own bit arriving first).
	p.placePiece(mover, origin)
	p.Halfmove++

	// Step 4: capture (not en-passant, handled in dispatch below — its
	// destination square is never itself occupied).
	if m.Kind() != KindEnPassant {
		if captured := p.PieceAt(dest); captured != PieceNone {
			frame.capturedPiece = captured
			frame.capturedSquare = dest
			p.placePiece(captured, dest)
			p.Halfmove = 0
		}
	}

	p.placePiece(mover, dest)

	// Step 5: dispatch on kind.
	switch m.Kind() {
	case KindPlain:
		switch moverKind {
		case King:
			p.clearCastleRights(moverColor)
		case Rook:
			p.clearCastleRightOnRookMove(moverColor, origin)
		case Pawn:
			p.Halfmove = 0
			if dest-origin == 16 {
				p.EPSquare = origin + 8
				p.Zobrist ^= epFileKeys[File(p.EPSquare)]
			} else if origin-dest == 16 {
				p.EPSquare = origin - 8
				p.Zobrist ^= epFileKeys[File(p.EPSquare)]
			}
		}

	case KindCastle:
		p.clearCastleRights(moverColor)
		var rookFrom, rookTo int
		switch m.Info() {
		case CastleKingSide:
			if moverColor == White {
				rookFrom, rookTo = rookH1, SF1
			} else {
				rookFrom, rookTo = rookH8, SF8
			}
		case CastleQueenSide:
			if moverColor == White {
				rookFrom, rookTo = rookA1, SD1
			} else {
				rookFrom, rookTo = rookA8, SD8
			}
		}
		rookPiece := pieceAt(moverColor, Rook)
		p.placePiece(rookPiece, rookFrom)
		p.placePiece(rookPiece, rookTo)

	case KindPromotion:
		pawnPiece := pieceAt(moverColor, Pawn)
		promoPiece := pieceAt(moverColor, promoToKind(m.Promo()))
		p.placePiece(pawnPiece, dest) // remove the pawn just placed on dest
		p.placePiece(promoPiece, dest)
		p.Halfmove = 0

	case KindEnPassant:
		var capSq int
		if moverColor == White {
			capSq = dest - 8
		} else {
			capSq = dest + 8
		}
		capturedPawn := pieceAt(opp, Pawn)
		frame.capturedPiece = capturedPawn
		frame.capturedSquare = capSq
		p.placePiece(capturedPawn, capSq)
	}

	// Step 6: prefetch hint on the new hash.
	prefetchTT(p.Zobrist)

	// Step 7: flip turn, advance ply, toggle side-to-move key.
	p.undo = append(p.undo, frame)
	p.Turn = opp
	p.Ply++
	p.Zobrist ^= sideToMoveKey

	// Step 8: recompute check for the new side to move.
	newKingSq := LSB(p.Board[pieceAt(p.Turn, King)])
	p.Check = p.isAttacked(newKingSq, moverColor, p.Occ)

	// Step 9: legality — previous mover's king must not be attacked.
	prevKingSq := LSB(p.Board[pieceAt(moverColor, King)])
	return !p.isAttacked(prevKingSq, opp, p.Occ)
}

// ApplyMove is the non-reversible make intended for game play: it plays m
// exactly as Make does, but on success discards the undo frame Make
// pushed, since there is no search to roll it back for. On an illegal
// move it unwinds via Unmake (mirroring Make's own documented contract)
// and reports false, leaving the position exactly as it was. Callers that
// need to take a move back later (search, perft) must use Make/Unmake
// directly instead.
func (p *Position) ApplyMove(m Move) bool {
	if !p.Make(m) {
		p.Unmake(m)
		return false
	}
	p.undo = p.undo[:len(p.undo)-1]
	return true
}

// Unmake reverses the last Make (including Make(PassingMove)), restoring the position
// to exactly what it was before, including the zobrist hash.
func (p *Position) Unmake(m Move) {
	if m == PassingMove {
		p.unmakePassing()
		return
	}

	n := len(p.undo) - 1
	frame := p.undo[n]
	p.undo = p.undo[:n]

	p.Ply--
	// p.Turn currently holds the side Make flipped to (the opponent of
	// whoever played m); the mover is the other color.
	moverColor := 1 - p.Turn

	origin, dest := m.Origin(), m.Dest()

	switch m.Kind() {
	case KindCastle:
		var rookFrom, rookTo int
		switch m.Info() {
		case CastleKingSide:
			if moverColor == White {
				rookFrom, rookTo = rookH1, SF1
			} else {
				rookFrom, rookTo = rookH8, SF8
			}
		case CastleQueenSide:
			if moverColor == White {
				rookFrom, rookTo = rookA1, SD1
			} else {
				rookFrom, rookTo = rookA8, SD8
			}
		}
		rookPiece := pieceAt(moverColor, Rook)
		p.unplacePiece(rookPiece, rookTo)
		p.unplacePiece(rookPiece, rookFrom)
		king := pieceAt(moverColor, King)
		p.unplacePiece(king, dest)
		p.unplacePiece(king, origin)

	case KindPromotion:
		promoPiece := pieceAt(moverColor, promoToKind(m.Promo()))
		pawnPiece := pieceAt(moverColor, Pawn)
		p.unplacePiece(promoPiece, dest)
		if frame.capturedPiece != PieceNone {
			p.unplacePiece(frame.capturedPiece, frame.capturedSquare)
		}
		p.unplacePiece(pawnPiece, origin)

	case KindEnPassant:
		mover := pieceAt(moverColor, Pawn)
		p.unplacePiece(mover, dest)
		p.unplacePiece(frame.capturedPiece, frame.capturedSquare)
		p.unplacePiece(mover, origin)

	default: // KindPlain
		mover := p.pieceAtForUndo(dest, moverColor)
		p.unplacePiece(mover, dest)
		if frame.capturedPiece != PieceNone {
			p.unplacePiece(frame.capturedPiece, frame.capturedSquare)
		}
		p.unplacePiece(mover, origin)
	}

	p.Turn = moverColor
	p.EPSquare = frame.epSquare
	p.Castle = frame.castle
	p.Halfmove = frame.halfmove
	p.Zobrist = frame.zobrist
	p.Check = frame.check
}

// unplacePiece is placePiece's exact inverse (XOR toggling is self-
// inverse, so the two share an implementation); kept as a distinct name at
// call sites in Unmake for readability.
func (p *Position) unplacePiece(piece, sq int) { p.placePiece(piece, sq) }

// pieceAtForUndo recovers which piece kind of moverColor sits on sq during
// Unmake of a plain move, where the mover's own piece (not a promotion,
// which is unpacked separately) is simply whatever of that color is there.
func (p *Position) pieceAtForUndo(sq int, color Color) int {
	bb := SquareBB(sq)
	for k := 0; k < 6; k++ {
		idx := pieceAt(color, k)
		if p.Board[idx]&bb != 0 {
			return idx
		}
	}
	return PieceNone
}

func promoToKind(p PromoKind) PieceKind {
	switch p {
	case PromoQueen:
		return Queen
	case PromoRook:
		return Rook
	case PromoBishop:
		return Bishop
	default:
		return Knight
	}
}

func (p *Position) clearCastleRights(color Color) {
	p.Zobrist ^= castleKeys[castleIndex(p)]
	p.Castle[color] = 0
	p.Zobrist ^= castleKeys[castleIndex(p)]
}

func (p *Position) clearCastleRightOnRookMove(color Color, from int) {
	var bit int
	switch {
	case color == White && from == rookA1:
		bit = CastleQueenSide
	case color == White && from == rookH1:
		bit = CastleKingSide
	case color == Black && from == rookA8:
		bit = CastleQueenSide
	case color == Black && from == rookH8:
		bit = CastleKingSide
	default:
		return
	}
	if p.Castle[color]&bit == 0 {
		return
	}
	p.Zobrist ^= castleKeys[castleIndex(p)]
	p.Castle[color] &^= bit
	p.Zobrist ^= castleKeys[castleIndex(p)]
}

// makePassing applies the null move used by null-move pruning: it is an
// error to call it while in check (the caller must guard this, per spec
// §4.D's "passing move" note).
func (p *Position) makePassing() bool {
	frame := undoFrame{
		epSquare:      p.EPSquare,
		castle:        p.Castle,
		halfmove:      p.Halfmove,
		zobrist:       p.Zobrist,
		check:         p.Check,
		capturedPiece: PieceNone,
		passing:       true,
	}
	if p.EPSquare != NullSquare {
		p.Zobrist ^= epFileKeys[File(p.EPSquare)]
	}
	p.EPSquare = NullSquare
	p.undo = append(p.undo, frame)

	p.Turn = 1 - p.Turn
	p.Zobrist ^= sideToMoveKey
	p.Check = false
	return true
}

func (p *Position) unmakePassing() {
	n := len(p.undo) - 1
	frame := p.undo[n]
	p.undo = p.undo[:n]

	p.Turn = 1 - p.Turn
	p.EPSquare = frame.epSquare
	p.Castle = frame.castle
	p.Halfmove = frame.halfmove
	p.Zobrist = frame.zobrist
	p.Check = frame.check
}

// isAttacked reports whether sq is attacked by attacker when the board has
// the given occupancy. occupied is passed explicitly (rather than reading
// p.Occ) so callers — notably king-move legality during generation — can
// virtually remove the king from the occupancy before asking the
// question, per spec §4.F's king-safety filter discipline.
func (p *Position) isAttacked(sq int, attacker Color, occupied Bitboard) bool {
	if pawnAttacks[1-attacker][sq]&p.Board[pieceAt(attacker, Pawn)] != 0 {
		return true
	}
	if knightAttacks[sq]&p.Board[pieceAt(attacker, Knight)] != 0 {
		return true
	}
	if kingAttacks[sq]&p.Board[pieceAt(attacker, King)] != 0 {
		return true
	}
	bishopsQueens := p.Board[pieceAt(attacker, Bishop)] | p.Board[pieceAt(attacker, Queen)]
	if BishopAttacks(sq, occupied)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.Board[pieceAt(attacker, Rook)] | p.Board[pieceAt(attacker, Queen)]
	if RookAttacks(sq, occupied)&rooksQueens != 0 {
		return true
	}
	return false
}

// KingSquare returns the square of color's king.
func (p *Position) KingSquare(color Color) int {
	return LSB(p.Board[pieceAt(color, King)])
}
