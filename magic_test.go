package corechess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMagicSearchIsDeterministic(t *testing.T) {
	bishopMagics = [64]magicEntry{}
	rookMagics = [64]magicEntry{}
	bishopAttackTable = [0x1480]Bitboard{}
	rookAttackTable = [0x19000]Bitboard{}
	initMagics()
	firstBishop := bishopMagics
	firstRook := rookMagics
	firstBishopTable := bishopAttackTable
	firstRookTable := rookAttackTable

	bishopMagics = [64]magicEntry{}
	rookMagics = [64]magicEntry{}
	bishopAttackTable = [0x1480]Bitboard{}
	rookAttackTable = [0x19000]Bitboard{}
	initMagics()

	require.Equal(t, firstBishop, bishopMagics)
	require.Equal(t, firstRook, rookMagics)
	require.Equal(t, firstBishopTable, bishopAttackTable)
	require.Equal(t, firstRookTable, rookAttackTable)
}

func TestRookAttacksMatchRayWalk(t *testing.T) {
	initMagics()
	occ := SquareBB(SD4) | SquareBB(SD6) | SquareBB(SB4)
	got := RookAttacks(SD4, occ)
	want := genSliderAttacks(SD4, occ, false)
	require.Equal(t, want, got)
}

func TestBishopAttacksMatchRayWalk(t *testing.T) {
	initMagics()
	occ := SquareBB(SD4) | SquareBB(SF6) | SquareBB(SB2)
	got := BishopAttacks(SD4, occ)
	want := genSliderAttacks(SD4, occ, true)
	require.Equal(t, want, got)
}

func TestRelevantOccupancyExcludesBoardEdge(t *testing.T) {
	mask := relevantOccupancy(SA1, false)
	require.Zero(t, mask&SquareBB(SA8))
	require.Zero(t, mask&SquareBB(SH1))
}
