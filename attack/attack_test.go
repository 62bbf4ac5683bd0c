package attack

import (
	"testing"

	"github.com/avrelii/chesscore/bitboard"
)

func TestKnightAttacksCorner(t *testing.T) {
	tbl := Get()
	// A1 (square 0) has exactly two knight destinations: B3 and C2.
	got := tbl.GetJumpAttacks(0, KindKnight)
	want := bitboard.SquareBB(17) | bitboard.SquareBB(10)
	if got != want {
		t.Fatalf("knight attacks from A1: got %#x want %#x", got, want)
	}
}

func TestKingAttacksCenter(t *testing.T) {
	tbl := Get()
	got := tbl.GetJumpAttacks(27, KindKing) // D4
	if bitboard.PopCount(got) != 8 {
		t.Fatalf("king attacks from D4: expected 8 destinations, got %d", bitboard.PopCount(got))
	}
}

func TestKingAttacksCorner(t *testing.T) {
	tbl := Get()
	got := tbl.GetJumpAttacks(0, KindKing) // A1
	if bitboard.PopCount(got) != 3 {
		t.Fatalf("king attacks from A1: expected 3 destinations, got %d", bitboard.PopCount(got))
	}
}

func TestPawnAttacks(t *testing.T) {
	tbl := Get()
	// White pawn on E4 (28) attacks D5 (35) and F5 (37).
	got := tbl.GetPawnAttacks(28, 0)
	want := bitboard.SquareBB(35) | bitboard.SquareBB(37)
	if got != want {
		t.Fatalf("white pawn attacks from E4: got %#x want %#x", got, want)
	}

	// Black pawn on E5 (36) attacks D4 (27) and F4 (29).
	got = tbl.GetPawnAttacks(36, 1)
	want = bitboard.SquareBB(27) | bitboard.SquareBB(29)
	if got != want {
		t.Fatalf("black pawn attacks from E5: got %#x want %#x", got, want)
	}
}

func TestRookAttacksEmptyBoardFromCorner(t *testing.T) {
	tbl := Get()
	got := tbl.GetSlidingAttacks(0, KindRook, 0) // A1, no blockers
	if bitboard.PopCount(got) != 14 {
		t.Fatalf("rook on empty board from A1: expected 14 squares, got %d", bitboard.PopCount(got))
	}
}

func TestRookAttacksBlocked(t *testing.T) {
	tbl := Get()
	// Rook on A1, blocker on A4 (24) and on D1 (3): attacks stop there.
	occ := bitboard.SquareBB(24) | bitboard.SquareBB(3)
	got := tbl.GetSlidingAttacks(0, KindRook, occ)
	want := bitboard.SquareBB(8) | bitboard.SquareBB(16) | bitboard.SquareBB(24) |
		bitboard.SquareBB(1) | bitboard.SquareBB(2) | bitboard.SquareBB(3)
	if got != want {
		t.Fatalf("blocked rook attacks from A1: got %#x want %#x", got, want)
	}
}

func TestBishopAttacksEmptyBoardFromCenter(t *testing.T) {
	tbl := Get()
	got := tbl.GetSlidingAttacks(27, KindBishop, 0) // D4
	if bitboard.PopCount(got) != 13 {
		t.Fatalf("bishop on empty board from D4: expected 13 squares, got %d", bitboard.PopCount(got))
	}
}

func TestQueenAttacksCombineRookAndBishop(t *testing.T) {
	tbl := Get()
	rookOnly := tbl.GetSlidingAttacks(27, KindRook, 0)
	bishopOnly := tbl.GetSlidingAttacks(27, KindBishop, 0)
	combined := tbl.GetSlidingAttacks(27, KindQueen, 0)
	if combined != rookOnly|bishopOnly {
		t.Fatalf("queen attacks should equal rook|bishop attacks on the same square")
	}
}

func TestRaySelfIsSingleton(t *testing.T) {
	tbl := Get()
	for sq := bitboard.Square(0); sq < 64; sq++ {
		if got := tbl.GetRay(sq, sq); got != bitboard.SquareBB(sq) {
			t.Fatalf("ray[%d][%d]: expected singleton, got %#x", sq, sq, got)
		}
	}
}

func TestLineBetweenAlignedSquares(t *testing.T) {
	tbl := Get()
	// A1 (0) and H8 (63) share the long diagonal; the line between them
	// is the full diagonal.
	got := tbl.GetLine(0, 63)
	want := bitboard.DiagA1H8
	if got != want {
		t.Fatalf("line A1-H8: got %#x want %#x", got, want)
	}
}

func TestLineUnalignedSquaresIsEmpty(t *testing.T) {
	tbl := Get()
	got := tbl.GetLine(0, 10) // A1 and C2 share no rank/file/diagonal
	if got != 0 {
		t.Fatalf("line A1-C2: expected empty, got %#x", got)
	}
}

func TestMagicTablesHaveNoIndexCollisions(t *testing.T) {
	tbl := Get()
	// Re-deriving the attack set for every occupancy subset on every
	// square and comparing against a non-magic slow computation catches a
	// bad magic number producing an index collision.
	for sq := bitboard.Square(0); sq < 64; sq++ {
		mask := relevantOccupancyMask(sq, rookDeltas[:])
		occ := bitboard.Bitboard(0)
		for {
			want := slideAttacks(sq, rookDeltas[:], occ)
			got := tbl.GetSlidingAttacks(sq, KindRook, occ)
			if got != want {
				t.Fatalf("rook sq=%d occ=%#x: got %#x want %#x", sq, occ, got, want)
			}
			occ = (occ - mask) & mask
			if occ == 0 {
				break
			}
		}
	}
}

func BenchmarkRookAttacks(b *testing.B) {
	tbl := Get()
	for b.Loop() {
		tbl.GetSlidingAttacks(27, KindRook, 0xFF000000FF)
	}
}
