package corechess

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestWorker(t *testing.T, fen string) (*Worker, *Position) {
	t.Helper()
	initTestTables()
	InitEval()
	p, err := ParseFEN(fen)
	require.NoError(t, err)
	tt := NewTranspositionTable(1)
	return NewWorker(p, tt, 64), p
}

func TestQuiescenceStandPatOnQuietPosition(t *testing.T) {
	w, p := newTestWorker(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	static := Evaluate(p)
	score := w.quiescence(-MateValueCutoff, MateValueCutoff)
	require.Equal(t, static, score)
}

func TestMateInOneIsFoundAndDisplayedAsM1(t *testing.T) {
	w, p := newTestWorker(t, "6k1/5ppp/8/8/8/8/8/4R1K1 w - - 0 1")
	result := IterativeDeepen(context.Background(), w, 3, 2*time.Second, false)

	require.NotEqual(t, NullMove, result.Move)
	require.Equal(t, SE1, result.Move.Origin())
	require.Equal(t, SE8, result.Move.Dest())
	require.True(t, IsMateScore(result.Score))
	require.Equal(t, 1, MateDistance(result.Score))
	_ = p
}

func TestWinningPawnEndgameAdvancesAPawn(t *testing.T) {
	w, p := newTestWorker(t, "6k1/5ppp/8/8/8/8/PPP5/1K6 w - - 0 1")
	result := IterativeDeepen(context.Background(), w, 4, 2*time.Second, false)

	require.NotEqual(t, NullMove, result.Move)
	movedPiece := p.PieceAt(result.Move.Origin())
	require.Equal(t, pieceAt(White, Pawn), movedPiece)
}

func TestPawnRaceDefenseAvoidsLosingLine(t *testing.T) {
	w, _ := newTestWorker(t, "8/8/8/8/8/3k4/3p4/4K3 w - - 0 1")
	result := IterativeDeepen(context.Background(), w, 6, 3*time.Second, false)

	require.NotEqual(t, NullMove, result.Move)
	require.LessOrEqual(t, result.Score, 0)
}

func TestIterativeDeepenNeverReturnsAPartialIteration(t *testing.T) {
	w, _ := newTestWorker(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	result := IterativeDeepen(context.Background(), w, 20, 50*time.Millisecond, false)
	require.NotEqual(t, NullMove, result.Move)
	require.GreaterOrEqual(t, result.Depth, 1)
}

func TestAspirationDeltaShrinksWithDepth(t *testing.T) {
	require.Greater(t, aspirationDelta(1), aspirationDelta(20))
}

func TestLMRTableIsNonNegativeAndGrowsWithMoveCount(t *testing.T) {
	require.GreaterOrEqual(t, lmrTable[6][20], lmrTable[6][2])
	require.GreaterOrEqual(t, lmrTable[6][2], 0)
}
