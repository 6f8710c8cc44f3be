// fen.go parses and serializes Forsyth-Edwards Notation. Adapted from the
// teacher's fen.go (field-by-field split, ParseBitboards/SerializeBitboards
// shape) but returns errors instead of panicking, per spec §6's input-error
// class: a malformed FEN is a normal, expected failure mode, not a bug.

package corechess

import (
	"fmt"
	"strconv"
	"strings"
)

var pieceByFENChar = map[byte]int{
	'K': pieceAt(White, King), 'Q': pieceAt(White, Queen), 'R': pieceAt(White, Rook),
	'B': pieceAt(White, Bishop), 'N': pieceAt(White, Knight), 'P': pieceAt(White, Pawn),
	'k': pieceAt(Black, King), 'q': pieceAt(Black, Queen), 'r': pieceAt(Black, Rook),
	'b': pieceAt(Black, Bishop), 'n': pieceAt(Black, Knight), 'p': pieceAt(Black, Pawn),
}

// ParseFEN builds a Position from a FEN record. Only the first four fields
// (placement, side to move, castling rights, en-passant square) determine
// position state; halfmove and fullmove counters are parsed if present and
// default to 0/1 otherwise, matching the teacher's tolerance for truncated
// records used in test suites and perft fixtures.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("corechess: FEN %q has %d fields, need at least 4", fen, len(fields))
	}

	p := NewPosition()
	if err := parsePlacement(p, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.Turn = White
	case "b":
		p.Turn = Black
	default:
		return nil, fmt.Errorf("corechess: FEN %q has invalid side to move %q", fen, fields[1])
	}

	if err := parseCastling(p, fields[2]); err != nil {
		return nil, err
	}

	if fields[3] != "-" {
		sq, ok := string2Square(fields[3])
		if !ok {
			return nil, fmt.Errorf("corechess: FEN %q has invalid en-passant square %q", fen, fields[3])
		}
		p.EPSquare = sq
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("corechess: FEN %q has invalid halfmove clock %q: %w", fen, fields[4], err)
		}
		p.Halfmove = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("corechess: FEN %q has invalid fullmove number %q: %w", fen, fields[5], err)
		}
		// Ply counts half-moves from the game start; fullmove 1, White to
		// move is ply 0.
		p.Ply = (n-1)*2 + p.Turn
	}

	p.Zobrist = recomputeZobrist(p)
	kingSq := p.KingSquare(p.Turn)
	p.Check = p.isAttacked(kingSq, 1-p.Turn, p.Occ)
	return p, nil
}

func parsePlacement(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("corechess: placement %q has %d ranks, need 8", placement, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := pieceByFENChar[c]
			if !ok {
				return fmt.Errorf("corechess: placement %q has invalid piece char %q", placement, c)
			}
			if file >= 8 {
				return fmt.Errorf("corechess: placement %q overflows rank %d", placement, rank+1)
			}
			sq := rank*8 + file
			p.Board[piece] |= SquareBB(sq)
			p.SideOcc[piece/6] |= SquareBB(sq)
			p.Occ |= SquareBB(sq)
			file++
		}
		if file != 8 {
			return fmt.Errorf("corechess: placement %q rank %d covers %d files, need 8", placement, rank+1, file)
		}
	}
	return nil
}

func parseCastling(p *Position, field string) error {
	if field == "-" {
		return nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			p.Castle[White] |= CastleKingSide
		case 'Q':
			p.Castle[White] |= CastleQueenSide
		case 'k':
			p.Castle[Black] |= CastleKingSide
		case 'q':
			p.Castle[Black] |= CastleQueenSide
		default:
			return fmt.Errorf("corechess: castling field %q has invalid char %q", field, field[i])
		}
	}
	return nil
}

func string2Square(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	file := s[0] - 'a'
	rank := s[1] - '1'
	if file > 7 || rank > 7 {
		return 0, false
	}
	return int(rank)*8 + int(file), true
}

// SerializeFEN renders p back into FEN. fullmoveNumber is supplied by the
// caller (derived from Ply by whoever is tracking the game, e.g. ply/2+1)
// since Position itself only tracks ply from its own parse point, not from
// a canonical game start if it was built via Make rather than ParseFEN.
func SerializeFEN(p *Position, fullmoveNumber int) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			piece := p.PieceAt(sq)
			if piece == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			b.WriteByte(pieceSymbols[piece])
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	if p.Turn == White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}

	b.WriteByte(' ')
	castling := ""
	if p.Castle[White]&CastleKingSide != 0 {
		castling += "K"
	}
	if p.Castle[White]&CastleQueenSide != 0 {
		castling += "Q"
	}
	if p.Castle[Black]&CastleKingSide != 0 {
		castling += "k"
	}
	if p.Castle[Black]&CastleQueenSide != 0 {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	b.WriteString(castling)

	b.WriteByte(' ')
	if p.EPSquare == NullSquare {
		b.WriteByte('-')
	} else {
		b.WriteString(Square2String[p.EPSquare])
	}

	fmt.Fprintf(&b, " %d %d", p.Halfmove, fullmoveNumber)
	return b.String()
}
