package position

import "github.com/avrelii/chesscore/bitboard"

// Position is a chess position: six piece-type bitboards shared between
// colors, two color-occupancy bitboards, castling rights, the en passant
// target, side to move, and ply counters. It is a value type: callers copy
// it freely (e.g. once per recursive perft frame) and it is never aliased
// by the move generator, which only reads it.
type Position struct {
	// Pieces holds one bitboard per piece kind, indexed by Piece
	// (Pawn..King). Each bitboard carries both colors' pieces of that kind;
	// Occupied[color] disambiguates which.
	Pieces [pieceCount]bitboard.Bitboard
	// Occupied holds one bitboard per color of all that color's pieces.
	Occupied [2]bitboard.Bitboard

	CastlingRights CastlingRights
	// EPSquare is the square a capturing pawn would move TO, i.e. the
	// square behind a double-pushed pawn. NoSquare when unavailable.
	EPSquare Square

	Turn Color

	HalfmoveCount int
	FullmoveCount int
}

// New returns the standard chess starting position.
func New() Position {
	return FromPieces(
		bitboard.Rank2|bitboard.Rank7,
		bitboard.SquareBB(1)|bitboard.SquareBB(6)|bitboard.SquareBB(57)|bitboard.SquareBB(62),
		bitboard.SquareBB(2)|bitboard.SquareBB(5)|bitboard.SquareBB(58)|bitboard.SquareBB(61),
		bitboard.SquareBB(0)|bitboard.SquareBB(7)|bitboard.SquareBB(56)|bitboard.SquareBB(63),
		bitboard.SquareBB(3)|bitboard.SquareBB(59),
		bitboard.SquareBB(4)|bitboard.SquareBB(60),
		bitboard.Rank1|bitboard.Rank2,
		bitboard.Rank7|bitboard.Rank8,
	)
}

// FromPieces assembles a Position directly from piece-kind bitboards and
// color-occupancy bitboards. Used by New.
func FromPieces(pawns, knights, bishops, rooks, queens, kings bitboard.Bitboard, white, black bitboard.Bitboard) Position {
	var p Position
	p.Pieces[Pawn] = pawns
	p.Pieces[Knight] = knights
	p.Pieces[Bishop] = bishops
	p.Pieces[Rook] = rooks
	p.Pieces[Queen] = queens
	p.Pieces[King] = kings
	p.Occupied[White] = white
	p.Occupied[Black] = black
	p.CastlingRights = castlingHomeSquares
	p.EPSquare = NoSquare
	p.Turn = White
	p.FullmoveCount = 1
	return p
}

// OccupiedBB returns the union of both colors' occupancy.
func (p *Position) OccupiedBB() bitboard.Bitboard {
	return p.Occupied[White] | p.Occupied[Black]
}

// PieceAt returns the piece kind occupying sq, or PieceNone if empty.
func (p *Position) PieceAt(sq Square) Piece {
	mask := bitboard.SquareBB(sq)
	for kind, bb := range p.Pieces {
		if bb&mask != 0 {
			return Piece(kind)
		}
	}
	return PieceNone
}

// ColorAt returns the color occupying sq, or ColorNone if empty.
func (p *Position) ColorAt(sq Square) Color {
	mask := bitboard.SquareBB(sq)
	if p.Occupied[White]&mask != 0 {
		return White
	}
	if p.Occupied[Black]&mask != 0 {
		return Black
	}
	return ColorNone
}

// King returns the square holding c's king.
func (p *Position) King(c Color) Square {
	return bitboard.LSB(p.Pieces[King] & p.Occupied[c])
}

// removePieceAt clears whatever piece stands on sq (assumed present) from
// both its piece-kind bitboard and its color's occupancy, and returns the
// kind that was removed. Returns PieceNone for an empty square.
func (p *Position) removePieceAt(sq Square) Piece {
	kind := p.PieceAt(sq)
	if kind == PieceNone {
		return kind
	}
	color := p.ColorAt(sq)
	mask := ^bitboard.SquareBB(sq)
	p.Pieces[kind] &= mask
	p.Occupied[color] &= mask
	return kind
}

// setPieceAt places a piece of the given kind and color on sq, first
// removing anything already there (so captures fall out for free).
func (p *Position) setPieceAt(sq Square, kind Piece, color Color) {
	p.removePieceAt(sq)
	mask := bitboard.SquareBB(sq)
	p.Pieces[kind] |= mask
	p.Occupied[color] |= mask
}

// MakeMove mutates p in place by applying mv. It is the caller's
// responsibility to ensure mv is legal; MakeMove performs no validation.
func (p *Position) MakeMove(mv Move) {
	p.HalfmoveCount++
	if p.Turn == Black {
		p.FullmoveCount++
	}

	fromBB := bitboard.SquareBB(mv.From)
	toBB := bitboard.SquareBB(mv.To)

	piece := p.removePieceAt(mv.From)

	// A capture is just removing whatever sat on the destination before we
	// place the mover there; setPieceAt below (via removePieceAt) handles
	// this uniformly for normal captures.
	p.removePieceAt(mv.To)

	// Castling rights: clear bits at from/to (covers rook moves and rook
	// captures); a king move additionally forfeits both rights on its rank.
	p.CastlingRights &= CastlingRights(^(fromBB | toBB))
	if piece == King {
		backRank := bitboard.Rank1
		if p.Turn == Black {
			backRank = bitboard.Rank8
		}
		p.CastlingRights &= CastlingRights(^backRank)
	}

	prevEP := p.EPSquare
	p.EPSquare = NoSquare

	if piece == Pawn {
		delta := int(mv.To) - int(mv.From)
		switch {
		case delta == 16:
			p.EPSquare = mv.From + 8
		case delta == -16:
			p.EPSquare = mv.From - 8
		case mv.To == prevEP:
			// En passant: the captured pawn sits one rank behind the
			// target square, toward the mover's own side.
			captured := prevEP - 8
			if p.Turn == Black {
				captured = prevEP + 8
			}
			p.removePieceAt(captured)
		}
	}

	if mv.IsPromotion() {
		piece = mv.Promotion
	}

	if piece == King && bitboard.ChebyshevDistance(mv.From, mv.To) > 1 {
		rookFrom, kingDest, rookDest := castlingSquares(p.Turn, mv.To)
		p.removePieceAt(rookFrom)
		p.setPieceAt(kingDest, King, p.Turn)
		p.setPieceAt(rookDest, Rook, p.Turn)
	} else {
		p.setPieceAt(mv.To, piece, p.Turn)
	}

	p.Turn = p.Turn.Other()
}

// castlingSquares maps a king's destination square to the rook's home
// square and both pieces' destinations for executing the castle.
func castlingSquares(side Color, kingTo Square) (rookFrom, kingDest, rookDest Square) {
	switch {
	case side == White && kingTo == squareG1:
		return squareH1, squareG1, squareF1
	case side == White && kingTo == squareC1:
		return squareA1, squareC1, squareD1
	case side == Black && kingTo == squareG8:
		return squareH8, squareG8, squareF8
	default: // side == Black && kingTo == squareC8
		return squareA8, squareC8, squareD8
	}
}

const (
	squareF1 Square = 5
	squareG1 Square = 6
	squareF8 Square = 61
	squareG8 Square = 62
	squareC8 Square = 58
	squareD8 Square = 59
	squareC1 Square = 2
	squareD1 Square = 3
)
