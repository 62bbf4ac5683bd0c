// Package format renders a Position as a human-readable board grid, the
// kind a perft harness prints when a branch needs inspecting by eye. It is
// not part of move generation and carries no normative meaning.
package format

import (
	"strings"

	"github.com/avrelii/chesscore/bitboard"
	"github.com/avrelii/chesscore/position"
)

var pieceSymbols = [2][6]rune{
	{'♙', '♘', '♗', '♖', '♕', '♔'}, // white
	{'♟', '♞', '♝', '♜', '♛', '♚'}, // black
}

// Position formats a full position into a board grid, active color, en
// passant target and remaining castling rights.
func Position(p position.Position) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + 1 + '0')
		b.WriteString("  ")

		for file := 0; file < 8; file++ {
			sq := position.Square(rank*8 + file)

			symbol := rune('.')
			if kind := p.PieceAt(sq); kind != position.PieceNone {
				symbol = pieceSymbols[p.ColorAt(sq)][kind]
			}

			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}

	b.WriteString("   a  b  c  d  e  f  g  h\nActive color: ")

	if p.Turn == position.White {
		b.WriteString("white\nEn passant: ")
	} else {
		b.WriteString("black\nEn passant: ")
	}

	if p.EPSquare == position.NoSquare {
		b.WriteString("none\nCastling rights: ")
	} else {
		b.WriteString(squareString(p.EPSquare))
		b.WriteString("\nCastling rights: ")
	}

	if p.CastlingRights.Has(7) {
		b.WriteByte('K')
	}
	if p.CastlingRights.Has(0) {
		b.WriteByte('Q')
	}
	if p.CastlingRights.Has(63) {
		b.WriteByte('k')
	}
	if p.CastlingRights.Has(56) {
		b.WriteByte('q')
	}

	return b.String()
}

func squareString(sq position.Square) string {
	file := bitboard.SquareFile(sq)
	rank := bitboard.SquareRank(sq)
	return string([]byte{byte('a' + file), byte('1' + rank)})
}
