package corechess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPopLSBConsumesBitsLowToHigh(t *testing.T) {
	b := Bitboard(0b1011000)
	require.Equal(t, 3, PopLSB(&b)) // lowest set bit is bit 3
	require.Equal(t, Bitboard(0b1010000), b)
}

func TestSquareBBRoundTrip(t *testing.T) {
	for sq := 0; sq < 64; sq++ {
		bb := SquareBB(sq)
		require.Equal(t, 1, PopCount(bb))
		require.Equal(t, sq, LSB(bb))
	}
}

func TestRankAndFile(t *testing.T) {
	require.Equal(t, 0, Rank(SA1))
	require.Equal(t, 0, File(SA1))
	require.Equal(t, 7, Rank(SH8))
	require.Equal(t, 7, File(SH8))
	require.Equal(t, 3, Rank(SE4))
	require.Equal(t, 4, File(SE4))
}
