// Package position implements the bitboard chess position: piece placement,
// castling rights, en passant state, and the make-move mutator. It holds no
// move-generation logic of its own; see the movegen package for that.
package position

import "github.com/avrelii/chesscore/bitboard"

// Square re-exports bitboard.Square so callers don't need to import both
// packages for the common case.
type Square = bitboard.Square

// NoSquare is the sentinel square used for "no en passant target available".
const NoSquare = bitboard.NoSquare

// Piece is a tagged piece kind. The six real kinds double as indices into
// Position.Pieces; PieceNone is a sentinel that never indexes a bitboard.
type Piece int8

const (
	Pawn Piece = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PieceNone
)

// pieceCount is the number of real piece kinds (excludes PieceNone).
const pieceCount = int(PieceNone)

// Color is the side to move or own a piece.
type Color int8

const (
	White Color = iota
	Black
	ColorNone
)

// Other returns the opposing color.
func (c Color) Other() Color { return c ^ 1 }

// PromotionPiece names a Piece used as a promotion choice. It is a plain
// alias of Piece and does not restrict the value; PromotionKinds lists the
// four legal choices.
type PromotionPiece = Piece

// Promotion enumeration order, matched by move generation: queen, rook,
// bishop, knight. The order isn't semantically significant, but test
// fixtures assume it.
var PromotionKinds = [4]PromotionPiece{Queen, Rook, Bishop, Knight}

// Move is a single chess move: source square, destination square, and an
// optional promotion piece. Castling is encoded as a king move of Chebyshev
// distance 2; en passant is encoded as a pawn move onto the en passant
// target square. Neither gets a dedicated flag.
type Move struct {
	From      Square
	To        Square
	Promotion Piece
}

// NewMove creates a non-promotion move.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to, Promotion: PieceNone}
}

// NewPromotionMove creates a move that promotes a pawn to promo.
func NewPromotionMove(from, to Square, promo Piece) Move {
	return Move{From: from, To: to, Promotion: promo}
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion != PieceNone }

// String renders a move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	b := make([]byte, 0, 5)
	from, to := squareLetters(m.From), squareLetters(m.To)
	b = append(b, from[:]...)
	b = append(b, to[:]...)
	if m.IsPromotion() {
		b = append(b, promotionLetters[m.Promotion])
	}
	return string(b)
}

var promotionLetters = map[Piece]byte{
	Queen: 'q', Rook: 'r', Bishop: 'b', Knight: 'n',
}

func squareLetters(sq Square) [2]byte {
	return [2]byte{
		byte('a' + bitboard.SquareFile(sq)),
		byte('1' + bitboard.SquareRank(sq)),
	}
}

// MaxMoves bounds the legal moves reachable from any single position. See
// https://www.chessprogramming.org/Chess_Position#Maximum_number_of_moves
// and talkchess thread 61792 for the 218/256 distinction; 256 leaves
// headroom and keeps the buffer a round stack allocation.
const MaxMoves = 256

// MoveList is a fixed-capacity, stack-resident move buffer. Preallocating
// avoids per-position heap allocation in the hot recursive perft path.
type MoveList struct {
	Moves [MaxMoves]Move
	Count int
}

// Push appends m to the list.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = m
	l.Count++
}

// Reset empties the list for reuse.
func (l *MoveList) Reset() { l.Count = 0 }

// Slice returns the populated portion of the move list.
func (l *MoveList) Slice() []Move { return l.Moves[:l.Count] }

// CastlingRights is a bitboard whose set bits mark rook home squares (A1,
// H1, A8, H8) whose castling right still survives.
type CastlingRights bitboard.Bitboard

// Rook home squares, also used as the only bits CastlingRights may carry.
const (
	squareA1 Square = 0
	squareH1 Square = 7
	squareA8 Square = 56
	squareH8 Square = 63
)

var castlingHomeSquares = CastlingRights(
	bitboard.SquareBB(squareA1) | bitboard.SquareBB(squareH1) |
		bitboard.SquareBB(squareA8) | bitboard.SquareBB(squareH8),
)

// Has reports whether the castling right rooted at home is still available.
func (cr CastlingRights) Has(home Square) bool {
	return bitboard.Bitboard(cr)&bitboard.SquareBB(home) != 0
}
