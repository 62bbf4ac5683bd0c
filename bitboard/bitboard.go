// Package bitboard implements the 64-bit set primitives every other package
// in this module builds on: rank/file/diagonal masks, least-significant-bit
// scanning, population count, and the square <-> (rank, file) conversions.
package bitboard

// Bitboard is a 64-bit set of squares. Bit i corresponds to square i,
// with A1 = 0, B1 = 1, ..., H8 = 63.
type Bitboard uint64

// Square indexes one of the 64 board squares, A1=0 .. H8=63.
type Square int

// NoSquare is the sentinel used when no square applies (e.g. no en passant
// target). It participates in arithmetic without branching in hot paths.
const NoSquare Square = 64

const (
	All  Bitboard = 0xFFFFFFFFFFFFFFFF
	None Bitboard = 0
)

// File masks.
const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = FileA << 1
	FileC Bitboard = FileA << 2
	FileD Bitboard = FileA << 3
	FileE Bitboard = FileA << 4
	FileF Bitboard = FileA << 5
	FileG Bitboard = FileA << 6
	FileH Bitboard = FileA << 7
)

// Rank masks.
const (
	Rank1 Bitboard = 0xFF
	Rank2 Bitboard = Rank1 << (8 * 1)
	Rank3 Bitboard = Rank1 << (8 * 2)
	Rank4 Bitboard = Rank1 << (8 * 3)
	Rank5 Bitboard = Rank1 << (8 * 4)
	Rank6 Bitboard = Rank1 << (8 * 5)
	Rank7 Bitboard = Rank1 << (8 * 6)
	Rank8 Bitboard = Rank1 << (8 * 7)
)

// DiagA1H8 and DiagA8H1 are the two main diagonal families. Every other
// diagonal is a shift of one of these two.
const (
	DiagA1H8 Bitboard = 0x8040201008040201
	DiagA8H1 Bitboard = 0x0102040810204080
)

// SquareBB returns the singleton bitboard containing only sq.
func SquareBB(sq Square) Bitboard { return Bitboard(1) << uint(sq) }

// SquareRank returns sq's rank, 0-indexed from White's first rank.
func SquareRank(sq Square) int { return int(sq) >> 3 }

// SquareFile returns sq's file, 0-indexed from the A file.
func SquareFile(sq Square) int { return int(sq) & 7 }

// RankBB returns the rank mask that sq lies on.
func RankBB(sq Square) Bitboard { return Rank1 << uint(8*SquareRank(sq)) }

// FileBB returns the file mask that sq lies on.
func FileBB(sq Square) Bitboard { return FileA << uint(SquareFile(sq)) }

// DiagAscendingBB returns the A1-H8 diagonal family mask that sq lies on.
func DiagAscendingBB(sq Square) Bitboard {
	shift := SquareRank(sq) - SquareFile(sq)
	if shift >= 0 {
		return DiagA1H8 << uint(8*shift)
	}
	return DiagA1H8 >> uint(-8*shift)
}

// DiagDescendingBB returns the A8-H1 diagonal family mask that sq lies on.
func DiagDescendingBB(sq Square) Bitboard {
	shift := SquareRank(sq) + SquareFile(sq) - 7
	if shift >= 0 {
		return DiagA8H1 << uint(8*shift)
	}
	return DiagA8H1 >> uint(-8*shift)
}

// ChebyshevDistance returns max(|rank delta|, |file delta|) between a and b,
// i.e. the number of king moves needed to walk from a to b.
func ChebyshevDistance(a, b Square) int {
	dr := SquareRank(a) - SquareRank(b)
	if dr < 0 {
		dr = -dr
	}
	df := SquareFile(a) - SquareFile(b)
	if df < 0 {
		df = -df
	}
	if dr > df {
		return dr
	}
	return df
}

// bitscanMagic and bitscanLookup implement De Bruijn bitscanning: isolating
// the LSB and multiplying by a fixed constant maps every possible isolated
// bit to a unique index into a 64-entry lookup table.
// See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf section 3.2.
const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

var bitscanLookup = [64]Square{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// LSB returns the index of the lowest set bit of bb. Undefined if bb == 0;
// callers must gate on bb != 0.
func LSB(bb Bitboard) Square {
	isolated := uint64(bb) & -uint64(bb)
	return bitscanLookup[isolated*bitscanMagic>>58]
}

// PopLSB clears the lowest set bit of *bb and returns its index.
func PopLSB(bb *Bitboard) Square {
	sq := LSB(*bb)
	*bb &= *bb - 1
	return sq
}

// PopCount returns the number of set bits in bb.
func PopCount(bb Bitboard) int {
	cnt := 0
	for ; bb > 0; cnt++ {
		bb &= bb - 1
	}
	return cnt
}
