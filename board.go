// board.go implements bitboard primitives: square arithmetic and bit iteration
// helpers shared by attack generation, move generation, and evaluation.

package corechess

import "math/bits"

// Bitboard is a 64-bit word; bit i is set iff square i is occupied.
// Squares are numbered 0..63 with square i = rank(i)*8 + file(i); rank 0 is
// White's back rank, rank 7 is Black's.
type Bitboard = uint64

// Square indices a1..h8, named the way the move generator and castling
// logic reference them directly.
const (
	SA1 = iota
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA8
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
)

// NullSquare is the sentinel used for "no square" (e.g. no en-passant
// target). It lies one past the board so it never aliases a real square.
const NullSquare = 100

// File/rank bitmask constants used to guard leaper and slider shifts against
// wraparound across board edges.
const (
	fileA Bitboard = 0x0101010101010101
	fileH Bitboard = 0x8080808080808080
	rank1 Bitboard = 0x00000000000000FF
	rank2 Bitboard = 0x000000000000FF00
	rank4 Bitboard = 0x00000000FF000000
	rank5 Bitboard = 0x000000FF00000000
	rank7 Bitboard = 0x00FF000000000000
	rank8 Bitboard = 0xFF00000000000000

	notAFile  = ^fileA
	notHFile  = ^fileH
	notABFile = notAFile & ^(fileA << 1)
	notGHFile = notHFile & ^(fileH >> 1)
	not1Rank  = ^rank1
	not8Rank  = ^rank8
)

// PopLSB clears and returns the index of the least significant set bit.
// Returns 64 if the bitboard is empty.
func PopLSB(b *Bitboard) int {
	i := bits.TrailingZeros64(*b)
	*b &= *b - 1
	return i
}

// LSB returns the index of the least significant set bit without clearing it.
func LSB(b Bitboard) int {
	return bits.TrailingZeros64(b)
}

// PopCount returns the number of set bits.
func PopCount(b Bitboard) int {
	return bits.OnesCount64(b)
}

// SquareBB returns the single-bit bitboard for a square index.
func SquareBB(sq int) Bitboard {
	return Bitboard(1) << uint(sq)
}

// Rank returns the 0-based rank of a square.
func Rank(sq int) int { return sq / 8 }

// File returns the 0-based file of a square.
func File(sq int) int { return sq % 8 }
