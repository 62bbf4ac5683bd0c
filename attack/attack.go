// Package attack builds and serves the process-wide attack tables: pawn,
// knight and king step tables, magic-bitboard indexed sliding attacks for
// rooks and bishops, and the ray/line tables used by the move generator's
// pin and check-evasion logic.
//
// The table is built once, lazily, behind a sync.Once, and is deeply
// immutable afterward; once published it may be read concurrently by any
// number of goroutines without locking. Call Init explicitly before
// spawning worker goroutines (e.g. for a parallel perft run) so none of
// them race to build it.
package attack

import (
	"sync"

	"github.com/avrelii/chesscore/bitboard"
)

// Magic is a per-square record describing the magic-bitboard index for one
// sliding-piece family on one square.
type Magic struct {
	Mask  bitboard.Bitboard
	Magic bitboard.Bitboard
	Offset int
	Shift  uint
}

// Table is the full set of precomputed attack data. It is immutable once
// constructed; every field is read-only from the caller's perspective.
type Table struct {
	pawnAttacks   [2][64]bitboard.Bitboard
	knightAttacks [64]bitboard.Bitboard
	kingAttacks   [64]bitboard.Bitboard

	rookTable   [102400]bitboard.Bitboard
	bishopTable [5248]bitboard.Bitboard

	rookMagic   [64]Magic
	bishopMagic [64]Magic

	ray [64][64]bitboard.Bitboard
}

var (
	table    *Table
	initOnce sync.Once
)

// Init forces construction of the global attack table if it hasn't been
// built yet. Calling it before spawning worker goroutines guarantees the
// table is fully published before any of them read it; after that first
// call, Get never blocks.
func Init() { Get() }

// Get returns the process-wide attack table, building it on first use.
func Get() *Table {
	initOnce.Do(func() {
		table = build()
	})
	return table
}

func build() *Table {
	t := &Table{}
	t.initPawnAttacks()
	t.initKnightAttacks()
	t.initKingAttacks()
	t.initSlidingAttacks(KindRook)
	t.initSlidingAttacks(KindBishop)
	t.initRays()
	return t
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks (not
// including pushes).
func (t *Table) GetPawnAttacks(sq bitboard.Square, c int) bitboard.Bitboard {
	return t.pawnAttacks[c][sq]
}

// GetJumpAttacks returns the step-move mask for a knight or king on sq.
// kind must be KindKnight or KindKing; any other value panics, marking an
// invariant break by the caller.
func (t *Table) GetJumpAttacks(sq bitboard.Square, kind int) bitboard.Bitboard {
	switch kind {
	case KindKnight:
		return t.knightAttacks[sq]
	case KindKing:
		return t.kingAttacks[sq]
	default:
		panic("attack: GetJumpAttacks called with a non-jumping piece kind")
	}
}

// GetSlidingAttacks returns the attack set of a rook/bishop/queen on sq
// given full-board occupancy. A queen is rook|bishop.
func (t *Table) GetSlidingAttacks(sq bitboard.Square, kind int, occupied bitboard.Bitboard) bitboard.Bitboard {
	switch kind {
	case KindRook:
		return t.rookAttacks(sq, occupied)
	case KindBishop:
		return t.bishopAttacks(sq, occupied)
	case KindQueen:
		return t.rookAttacks(sq, occupied) | t.bishopAttacks(sq, occupied)
	default:
		panic("attack: GetSlidingAttacks called with a non-sliding piece kind")
	}
}

func (t *Table) rookAttacks(sq bitboard.Square, occupied bitboard.Bitboard) bitboard.Bitboard {
	m := t.rookMagic[sq]
	index := uint64((occupied&m.Mask)*m.Magic) >> m.Shift
	return t.rookTable[int(index)+m.Offset]
}

func (t *Table) bishopAttacks(sq bitboard.Square, occupied bitboard.Bitboard) bitboard.Bitboard {
	m := t.bishopMagic[sq]
	index := uint64((occupied&m.Mask)*m.Magic) >> m.Shift
	return t.bishopTable[int(index)+m.Offset]
}

// GetRay returns the bits of the ray starting at from, stepping toward to
// until the board edge, including both endpoints. from==to gives {from}.
// If from and to are not collinear on a rook/bishop direction, the entry
// is the zero value and must not be consulted.
func (t *Table) GetRay(from, to bitboard.Square) bitboard.Bitboard {
	return t.ray[from][to]
}

// GetLine returns the closed segment between from and to when they're
// collinear (the intersection of the ray each way); empty otherwise.
func (t *Table) GetLine(from, to bitboard.Square) bitboard.Bitboard {
	return t.ray[from][to] & t.ray[to][from]
}

// Piece-kind discriminants accepted by GetJumpAttacks/GetSlidingAttacks.
// The movegen package maps its own Piece type onto these at call sites.
const (
	KindKnight = iota
	KindKing
	KindRook
	KindBishop
	KindQueen
)
