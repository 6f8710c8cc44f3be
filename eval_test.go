package corechess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func initEvalTestTables() {
	initTestTables()
	InitEval()
}

func TestEvaluateSymmetricUnderColorMirror(t *testing.T) {
	initEvalTestTables()
	white, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	black, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)

	// A symmetric position evaluates to the same score from either
	// side's perspective, since Evaluate negates for Black to move.
	require.Equal(t, Evaluate(white), Evaluate(black))
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	initEvalTestTables()
	// White is up a queen.
	p, err := ParseFEN("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	require.Greater(t, Evaluate(p), 800*CentiPawn)
}

func TestMateInEncodingRoundTrips(t *testing.T) {
	for d := 0; d < 10; d++ {
		score := MateIn(d)
		require.True(t, IsMateScore(score))
		require.Equal(t, d, MateDistance(score))
	}
}

func TestIsMateScoreFalseForOrdinaryEvaluations(t *testing.T) {
	require.False(t, IsMateScore(5*CentiPawn))
	require.False(t, IsMateScore(-300*CentiPawn))
}

func TestKingRingPenaltySaturates(t *testing.T) {
	require.LessOrEqual(t, kingRingPenalty[99], 500*CentiPawn)
	require.Greater(t, kingRingPenalty[99], kingRingPenalty[1])
}
