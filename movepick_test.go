package corechess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drainPicker(p *Position, list *MoveList, history *HistoryTable) []Move {
	var out []Move
	for {
		m, ok := PickNext(p, list, history)
		if !ok {
			break
		}
		out = append(out, m)
	}
	return out
}

func TestPickerReturnsTTMoveFirst(t *testing.T) {
	initTestTables()
	p, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	tt := NewMove(SG1, SF3, KindPlain, 0)
	var list MoveList
	StartPicking(&list, tt, [NumKillers]Move{}, false)

	history := &HistoryTable{}
	first, ok := PickNext(p, &list, history)
	require.True(t, ok)
	require.Equal(t, tt, first)
}

func TestPickerExhaustsEveryPseudoLegalMoveExactlyOnce(t *testing.T) {
	initTestTables()
	p, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	var reference MoveList
	GenerateMoves(p, ModeAll, &reference)

	var list MoveList
	StartPicking(&list, NullMove, [NumKillers]Move{}, false)
	picked := drainPicker(p, &list, &HistoryTable{})

	require.Len(t, picked, reference.Count)

	seen := map[Move]bool{}
	for _, m := range picked {
		require.False(t, seen[m], "move %v returned twice by picker", m)
		seen[m] = true
	}
	for i := 0; i < reference.Count; i++ {
		require.True(t, seen[reference.Moves[i]], "move %v from generator never offered by picker", reference.Moves[i])
	}
}

func TestQuiescencePickerOnlyOffersCaptures(t *testing.T) {
	initTestTables()
	p, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)

	var list MoveList
	StartPicking(&list, NullMove, [NumKillers]Move{}, true)
	picked := drainPicker(p, &list, &HistoryTable{})

	require.NotEmpty(t, picked)
	for _, m := range picked {
		captured := p.PieceAt(m.Dest())
		isCapture := captured != PieceNone || m.Kind() == KindEnPassant
		require.True(t, isCapture, "quiescence picker returned a non-capture move %v", m)
	}
}

func TestCaptureScoringOrdersByVictimThenAttacker(t *testing.T) {
	initTestTables()
	// The white queen on d4 can capture either the rook on d8 (up the
	// file) or the knight on a4 (along the rank); MVV-LVA must prefer
	// the higher-value rook capture first.
	p, err := ParseFEN("3r4/8/8/8/n2Q4/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	var list MoveList
	StartPicking(&list, NullMove, [NumKillers]Move{}, false)
	picked := drainPicker(p, &list, &HistoryTable{})
	require.NotEmpty(t, picked)
	require.Equal(t, SD8, picked[0].Dest(), "rook capture should be ordered before the knight capture")
}

func TestBumpHistoryIncreasesQuietOrderingScore(t *testing.T) {
	history := &HistoryTable{}
	piece := pieceAt(White, Knight)
	BumpHistory(history, piece, SF3, 4)
	require.Equal(t, uint64(16), history[piece][SF3])
}
