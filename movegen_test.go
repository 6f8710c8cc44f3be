package corechess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func perftCount(p *Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var list MoveList
	GenerateMoves(p, ModeAll, &list)

	var nodes uint64
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if !p.Make(m) {
			p.Unmake(m)
			continue
		}
		nodes += perftCount(p, depth-1)
		p.Unmake(m)
	}
	return nodes
}

func TestPerftStartPosition(t *testing.T) {
	initTestTables()
	p, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	require.Equal(t, uint64(20), perftCount(p, 1))
	require.Equal(t, uint64(400), perftCount(p, 2))
	require.Equal(t, uint64(8902), perftCount(p, 3))
}

func TestPerftKiwipeteDepth1And2(t *testing.T) {
	initTestTables()
	p, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	require.Equal(t, uint64(48), perftCount(p, 1))
	require.Equal(t, uint64(2039), perftCount(p, 2))
}

func TestGenerateMovesModeSplitsQuietFromCapture(t *testing.T) {
	initTestTables()
	p, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2")
	require.NoError(t, err)

	var all, quiet, capture MoveList
	GenerateMoves(p, ModeAll, &all)
	GenerateMoves(p, ModeQuiet, &quiet)
	GenerateMoves(p, ModeCapture, &capture)

	require.Equal(t, all.Count, quiet.Count+capture.Count)

	foundCapture := false
	for i := 0; i < capture.Count; i++ {
		if capture.Moves[i].Origin() == SE4 && capture.Moves[i].Dest() == SD5 {
			foundCapture = true
		}
	}
	require.True(t, foundCapture, "exd5 should be generated as a capture")
}

func hasCastle(list *MoveList) bool {
	for i := 0; i < list.Count; i++ {
		if list.Moves[i].Kind() == KindCastle {
			return true
		}
	}
	return false
}

func TestCastlingBlockedWhenPathAttacked(t *testing.T) {
	initTestTables()
	open, err := ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	var openList MoveList
	GenerateMoves(open, ModeAll, &openList)
	require.True(t, hasCastle(&openList), "castling should be available with an empty, unattacked path")

	// Black rook on f8 attacks the white king's f1 transit square, so
	// king-side castling must not be generated even though the path is
	// physically empty and rights are held.
	blocked, err := ParseFEN("4kr2/8/8/8/8/8/8/4K2R w K - 0 1")
	require.NoError(t, err)
	var blockedList MoveList
	GenerateMoves(blocked, ModeAll, &blockedList)
	require.False(t, hasCastle(&blockedList), "castling must not be generated through an attacked square")
}

func TestEnPassantGeneratedWhenAvailable(t *testing.T) {
	initTestTables()
	p, err := ParseFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	require.NoError(t, err)
	var list MoveList
	GenerateMoves(p, ModeAll, &list)

	found := false
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if m.Kind() == KindEnPassant && m.Origin() == SE5 && m.Dest() == SF6 {
			found = true
		}
	}
	require.True(t, found)
}

func TestPromotionPushGeneratesAllFourKinds(t *testing.T) {
	initTestTables()
	p, err := ParseFEN("rnbq1bnr/ppppPppp/8/8/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 5")
	require.NoError(t, err)
	var list MoveList
	GenerateMoves(p, ModeAll, &list)

	kinds := map[PromoKind]bool{}
	for i := 0; i < list.Count; i++ {
		m := list.Moves[i]
		if m.Kind() == KindPromotion && m.Origin() == SE7 && m.Dest() == SE8 {
			kinds[m.Promo()] = true
		}
	}
	require.Len(t, kinds, 4)
}
