// Package fen converts between Forsyth-Edwards Notation strings and
// [position.Position] values. Parsing trusts its input is well-formed FEN
// and panics on the few things it does check itself: piece placement must
// consume exactly 64 squares, piece letters must be known, and the move
// counters must be integers.
package fen

import (
	"strconv"
	"strings"

	"github.com/avrelii/chesscore/bitboard"
	"github.com/avrelii/chesscore/position"
)

// StartPos is the FEN of the standard chess starting position.
const StartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Parse decodes a FEN string into a Position. It panics if the piece
// placement field doesn't describe exactly 64 squares, or if the
// halfmove/fullmove counters aren't integers; both conditions mean the
// input wasn't a FEN string to begin with.
func Parse(fen string) position.Position {
	fields := strings.SplitN(fen, " ", 6)

	var p position.Position
	parsePlacement(&p, fields[0])

	p.Turn = position.White
	if len(fields) > 1 && fields[1] == "b" {
		p.Turn = position.Black
	}

	p.CastlingRights = 0
	if len(fields) > 2 {
		parseCastlingRights(&p, fields[2])
	}

	p.EPSquare = position.NoSquare
	if len(fields) > 3 && fields[3] != "-" {
		p.EPSquare = parseSquare(fields[3])
	}

	p.HalfmoveCount = 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			panic("fen: invalid halfmove clock: " + fields[4])
		}
		p.HalfmoveCount = n
	}

	p.FullmoveCount = 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			panic("fen: invalid fullmove counter: " + fields[5])
		}
		p.FullmoveCount = n
	}

	return p
}

func parsePlacement(p *position.Position, placement string) {
	square := 56 // FEN starts at rank 8, file a.
	consumed := 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			square -= 16
		case c >= '1' && c <= '8':
			n := int(c - '0')
			square += n
			consumed += n
		default:
			kind, color := pieceFromSymbol(c)
			mask := bitboard.SquareBB(bitboard.Square(square))
			p.Pieces[kind] |= mask
			p.Occupied[color] |= mask
			square++
			consumed++
		}
	}

	if consumed != 64 {
		panic("fen: piece placement does not describe exactly 64 squares")
	}
}

func pieceFromSymbol(c byte) (position.Piece, position.Color) {
	color := position.White
	symbol := c
	if c >= 'a' && c <= 'z' {
		color = position.Black
	} else {
		symbol = c + ('a' - 'A')
	}

	var kind position.Piece
	switch symbol {
	case 'p':
		kind = position.Pawn
	case 'n':
		kind = position.Knight
	case 'b':
		kind = position.Bishop
	case 'r':
		kind = position.Rook
	case 'q':
		kind = position.Queen
	case 'k':
		kind = position.King
	default:
		panic("fen: unrecognized piece symbol: " + string(c))
	}
	return kind, color
}

func parseCastlingRights(p *position.Position, field string) {
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			p.CastlingRights |= position.CastlingRights(bitboard.SquareBB(7))
		case 'Q':
			p.CastlingRights |= position.CastlingRights(bitboard.SquareBB(0))
		case 'k':
			p.CastlingRights |= position.CastlingRights(bitboard.SquareBB(63))
		case 'q':
			p.CastlingRights |= position.CastlingRights(bitboard.SquareBB(56))
		}
	}
}

func parseSquare(s string) bitboard.Square {
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return bitboard.Square(rank*8 + file)
}

var pieceSymbols = [6]byte{'P', 'N', 'B', 'R', 'Q', 'K'}

// Serialize encodes a Position as a FEN string.
func Serialize(p position.Position) string {
	var b strings.Builder
	b.Grow(72)

	writePlacement(&b, p)
	b.WriteByte(' ')

	if p.Turn == position.White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}
	b.WriteByte(' ')

	writeCastlingRights(&b, p)
	b.WriteByte(' ')

	if p.EPSquare == position.NoSquare {
		b.WriteByte('-')
	} else {
		files := "abcdefgh"
		b.WriteByte(files[bitboard.SquareFile(p.EPSquare)])
		b.WriteByte('1' + byte(bitboard.SquareRank(p.EPSquare)))
	}
	b.WriteByte(' ')

	b.WriteString(strconv.Itoa(p.HalfmoveCount))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullmoveCount))

	return b.String()
}

func writePlacement(b *strings.Builder, p position.Position) {
	var board [64]byte
	for kind := position.Pawn; kind <= position.King; kind++ {
		bb := p.Pieces[kind]
		for bb != 0 {
			sq := bitboard.PopLSB(&bb)
			symbol := pieceSymbols[kind]
			if p.Occupied[position.Black]&bitboard.SquareBB(sq) != 0 {
				symbol += 'a' - 'A'
			}
			board[sq] = symbol
		}
	}

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := rank*8 + file
			if board[sq] == 0 {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + byte(empty))
				empty = 0
			}
			b.WriteByte(board[sq])
		}
		if empty > 0 {
			b.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}
}

func writeCastlingRights(b *strings.Builder, p position.Position) {
	none := true
	if p.CastlingRights.Has(7) {
		b.WriteByte('K')
		none = false
	}
	if p.CastlingRights.Has(0) {
		b.WriteByte('Q')
		none = false
	}
	if p.CastlingRights.Has(63) {
		b.WriteByte('k')
		none = false
	}
	if p.CastlingRights.Has(56) {
		b.WriteByte('q')
		none = false
	}
	if none {
		b.WriteByte('-')
	}
}
