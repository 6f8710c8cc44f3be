// types.go contains declarations of custom types and predefined constants
// shared across the engine: piece codes, the packed move encoding, and the
// fixed-capacity move list/move stack.

package corechess

// Piece kind. Six kinds per side; combined code = color*6 + kind gives the
// twelve bitboard indices used by Position.
type PieceKind = int

const (
	King PieceKind = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// Color identifies the side to move.
type Color = int

const (
	White Color = iota
	Black
)

// PieceNone marks an empty square in lookups that return a combined piece
// code.
const PieceNone = -1

// pieceAt returns the combined piece-bitboard index for (color, kind).
func pieceAt(c Color, k PieceKind) int { return c*6 + k }

// pieceSymbols maps each combined piece index to its FEN letter.
var pieceSymbols = [12]byte{
	'K', 'Q', 'R', 'B', 'N', 'P',
	'k', 'q', 'r', 'b', 'n', 'p',
}

// Square2String maps each board square to its algebraic name.
var Square2String = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

/*
Move is a 16-bit packed chess move:
  - bits 0-5:   origin square
  - bits 6-11:  destination square
  - bits 12-13: info (meaning depends on kind)
  - bits 14-15: kind

Kinds: 0 = plain, 1 = castle (info: 1 = king-side, 2 = queen-side),
2 = promotion (info: 0=queen, 1=rook, 2=bishop, 3=knight), 3 = en-passant.

Two values are reserved and never produced by the generator: NullMove
(origin==destination==0, which never occurs in legal chess) and PassingMove,
used only by null-move pruning.
*/
type Move uint16

const (
	NullMove    Move = 0x0000
	PassingMove Move = 0xDFFF
)

type MoveKind = int

const (
	KindPlain MoveKind = iota
	KindCastle
	KindPromotion
	KindEnPassant
)

const (
	CastleKingSide  = 1
	CastleQueenSide = 2
)

type PromoKind = int

const (
	PromoQueen PromoKind = iota
	PromoRook
	PromoBishop
	PromoKnight
)

// NewMove builds a plain, castle, or en-passant move (no promotion info).
func NewMove(origin, dest int, kind MoveKind, info int) Move {
	return Move(origin | dest<<6 | info<<12 | kind<<14)
}

// NewPromotionMove builds a promotion move.
func NewPromotionMove(origin, dest int, promo PromoKind) Move {
	return Move(origin | dest<<6 | promo<<12 | KindPromotion<<14)
}

func (m Move) Origin() int   { return int(m) & 0x3F }
func (m Move) Dest() int     { return int(m>>6) & 0x3F }
func (m Move) Info() int     { return int(m>>12) & 0x3 }
func (m Move) Kind() MoveKind { return int(m>>14) & 0x3 }
func (m Move) Promo() PromoKind {
	if m.Kind() != KindPromotion {
		return PromoQueen
	}
	return m.Info()
}

// IsNull reports whether m is the null-move sentinel.
func (m Move) IsNull() bool { return m == NullMove }

// String formats the move in long algebraic form, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	s := Square2String[m.Origin()] + Square2String[m.Dest()]
	if m.Kind() == KindPromotion {
		switch m.Promo() {
		case PromoQueen:
			s += "q"
		case PromoRook:
			s += "r"
		case PromoBishop:
			s += "b"
		case PromoKnight:
			s += "n"
		}
	}
	return s
}

// MaxMoves bounds the largest possible legal move count in any reachable
// chess position (see https://www.talkchess.com/forum/viewtopic.php?t=61792).
const MaxMoves = 218

// NumKillers is the number of killer-move slots kept per search ply.
const NumKillers = 2

/*
MoveList is a fixed-capacity, preallocated list of candidate moves for one
ply, plus the bookkeeping the staged move picker needs: a parallel score
array holding the signed attacker/victim score of each capture (quiets are
ranked by history lookups at pick time and are not stored here), the
picker's current stage, one TT-move slot, and NUM_KILLERS killer slots.
*/
type MoveList struct {
	Moves  [MaxMoves]Move
	scores [MaxMoves]int64
	Count  int

	stage       PickStage
	ttMove      Move
	killers     [NumKillers]Move
	quiescence  bool
	futilityArm bool
	futilityMin int
}

// Push appends a move with a zeroed score.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.scores[l.Count] = 0
	l.Count++
}

// Reset clears the list for reuse without reallocating its backing arrays.
func (l *MoveList) Reset() {
	l.Count = 0
	l.stage = StageStart
	l.ttMove = NullMove
	l.killers = [NumKillers]Move{}
	l.futilityArm = false
}

/*
MoveStack is a dynamically-grown vector of move lists indexed by search
depth. Entering a ply advances the cursor; leaving a ply rewinds it. No
list is ever freed during a search, only reset and reused.
*/
// lists holds *MoveList rather than MoveList: growing the index slice
// must never move an already-handed-out list in memory, since a list
// returned by Push stays live (read by an outer stack frame's picker)
// across nested Push/Pop cycles from deeper recursive search calls.
type MoveStack struct {
	lists  []*MoveList
	cursor int
}

// NewMoveStack preallocates capacity for the given maximum search depth.
func NewMoveStack(capacity int) *MoveStack {
	if capacity < 1 {
		capacity = 1
	}
	lists := make([]*MoveList, capacity)
	for i := range lists {
		lists[i] = &MoveList{}
	}
	return &MoveStack{lists: lists}
}

// Push advances the cursor and returns a freshly reset list for the new ply.
func (s *MoveStack) Push() *MoveList {
	if s.cursor >= len(s.lists) {
		s.lists = append(s.lists, &MoveList{})
	}
	l := s.lists[s.cursor]
	l.Reset()
	s.cursor++
	return l
}

// Pop rewinds the cursor by one ply.
func (s *MoveStack) Pop() {
	s.cursor--
}
