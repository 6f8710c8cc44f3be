package corechess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranspositionTableStoreThenProbe(t *testing.T) {
	tt := NewTranspositionTable(1)
	hash := uint64(0x1234567890ABCDEF)
	move := NewMove(SE2, SE4, KindPlain, 0)

	_, _, _, _, ok := tt.Probe(hash)
	require.False(t, ok)

	tt.Store(hash, move, 6, NodePV, 123*CentiPawn, 0)
	gotMove, gotDepth, gotType, gotScore, ok := tt.Probe(hash)
	require.True(t, ok)
	require.Equal(t, move, gotMove)
	require.Equal(t, 6, gotDepth)
	require.Equal(t, NodePV, gotType)
	// Score has its low 16 bits dropped on store, so it round-trips
	// only up to that precision.
	require.InDelta(t, 123*CentiPawn, gotScore, 1<<16)
}

func TestTranspositionTableReplaceAlways(t *testing.T) {
	tt := NewTranspositionTable(1)
	// A hash exactly one table length away from 0xAAAA always lands in
	// the same slot, whether indexing is by modulo or by mask.
	collidingHash := uint64(0xAAAA) + uint64(len(tt.entries))

	tt.Store(0xAAAA, NewMove(SA2, SA4, KindPlain, 0), 4, NodeCut, 50*CentiPawn, 0)
	tt.Store(collidingHash, NewMove(SB2, SB4, KindPlain, 0), 4, NodeCut, 60*CentiPawn, 0)

	_, _, _, _, firstStillThere := tt.Probe(0xAAAA)
	require.False(t, firstStillThere, "replace-always must overwrite the slot's prior key")

	move, _, _, _, ok := tt.Probe(collidingHash)
	require.True(t, ok)
	require.Equal(t, NewMove(SB2, SB4, KindPlain, 0), move)
}

func TestTranspositionTableStoresMateRangeScoresWithoutOverflow(t *testing.T) {
	tt := NewTranspositionTable(1)
	hash := uint64(0x9999)
	mateScore := int64(MateIn(3))

	tt.Store(hash, NewMove(SE1, SE8, KindPlain, 0), 9, NodeTerminal, mateScore, 0)
	_, _, _, gotScore, ok := tt.Probe(hash)
	require.True(t, ok)
	// MateValueCutoff and the mate-zero anchors both exceed int32's range;
	// the round-tripped score must still land within one truncation step
	// of the original rather than wrapping to a garbage (often negative)
	// int32 value.
	require.InDelta(t, mateScore, gotScore, 1<<16)
	require.True(t, IsMateScore(int(gotScore)))
}

func TestTranspositionTableSizing(t *testing.T) {
	tt := NewTranspositionTable(1)
	require.Equal(t, (1024*1024)/entrySize, len(tt.entries))
	require.True(t, tt.pow2 || len(tt.entries)&(len(tt.entries)-1) != 0)
}

func TestTranspositionTableStats(t *testing.T) {
	tt := NewTranspositionTable(1)
	hash := uint64(42)
	tt.Probe(hash)
	tt.Store(hash, NullMove, 1, NodeAll, 0, 0)
	tt.Probe(hash)

	hits, misses, stores := tt.Stats()
	require.Equal(t, int64(1), hits)
	require.Equal(t, int64(1), misses)
	require.Equal(t, int64(1), stores)
}
