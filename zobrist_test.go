package corechess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecomputeZobristMatchesIncrementalAfterParse(t *testing.T) {
	InitZobristKeys()
	p, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	require.Equal(t, recomputeZobrist(p), p.Zobrist)
}

func TestZobristRestoredAfterUnmake(t *testing.T) {
	InitZobristKeys()
	initMagics()
	initPawnAttacks()
	initLeaperAttacks()

	p, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	before := p.Zobrist

	m := NewMove(SE2, SE4, KindPlain, 0)
	ok := p.Make(m)
	require.True(t, ok)
	require.Equal(t, recomputeZobrist(p), p.Zobrist)
	require.NotEqual(t, before, p.Zobrist)

	p.Unmake(m)
	require.Equal(t, before, p.Zobrist)
}

func TestCastleIndexPacksBothSides(t *testing.T) {
	p := NewPosition()
	p.Castle[White] = CastleKingSide
	p.Castle[Black] = CastleQueenSide
	require.Equal(t, CastleKingSide|CastleQueenSide<<2, castleIndex(p))
}
