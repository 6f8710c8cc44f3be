// Package cli renders a Position to a terminal board. Grounded on the
// teacher's cli.go FormatBitboard/FormatPosition shape, restyled with
// lipgloss the way Mgrdich-TermChess renders its board, and generalized
// from the teacher's single-array board to this package's bitboard
// Position.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/silvanis/corechess"
)

var (
	lightSquare = lipgloss.NewStyle().Background(lipgloss.Color("#EEEED2")).Foreground(lipgloss.Color("#000000"))
	darkSquare  = lipgloss.NewStyle().Background(lipgloss.Color("#769656")).Foreground(lipgloss.Color("#000000"))
	fileLabel   = lipgloss.NewStyle().Faint(true)
)

var unicodePieces = map[byte]string{
	'K': "♔", 'Q': "♕", 'R': "♖", 'B': "♗", 'N': "♘", 'P': "♙",
	'k': "♚", 'q': "♛", 'r': "♜", 'b': "♝", 'n': "♞", 'p': "♟",
}

// RenderBoard returns an 8x8 ANSI-colored board, White's perspective,
// ranks 8 down to 1, with a file-letter footer.
func RenderBoard(p *corechess.Position) string {
	var b strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			style := lightSquare
			if (rank+file)%2 == 0 {
				style = darkSquare
			}
			glyph := " "
			if piece := p.PieceAt(sq); piece != corechess.PieceNone {
				glyph = glyphFor(piece)
			}
			b.WriteString(style.Render(" " + glyph + " "))
		}
		b.WriteString(fileLabel.Render("  " + string(rune('1'+rank))))
		b.WriteByte('\n')
	}
	b.WriteString(fileLabel.Render(" a  b  c  d  e  f  g  h"))
	return b.String()
}

func glyphFor(piece int) string {
	sym := pieceSymbol(piece)
	if g, ok := unicodePieces[sym]; ok {
		return g
	}
	return string(sym)
}

// pieceSymbol mirrors types.go's private pieceSymbols table for the
// pieces this package needs to render without exporting the engine's
// internal layout.
func pieceSymbol(piece int) byte {
	const symbols = "KQRBNPkqrbnp"
	if piece < 0 || piece >= len(symbols) {
		return '?'
	}
	return symbols[piece]
}
