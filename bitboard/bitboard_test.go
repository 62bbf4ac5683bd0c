package bitboard

import "testing"

func TestLSB(t *testing.T) {
	for i := 0; i < 64; i++ {
		bb := Bitboard(1) << uint(i)

		if got := LSB(bb); got != Square(i) {
			t.Fatalf("LSB(%#x): expected %d got %d", bb, i, got)
		}
	}
}

func TestPopLSB(t *testing.T) {
	for i := 0; i < 64; i++ {
		bb := Bitboard(1) << uint(i)

		if got := PopLSB(&bb); got != Square(i) {
			t.Fatalf("PopLSB: expected %d got %d", i, got)
		}
		if bb != 0 {
			t.Fatalf("PopLSB: expected bb to be empty after popping its only bit, got %#x", bb)
		}
	}
}

func TestPopCount(t *testing.T) {
	var bb Bitboard
	for i := 0; i < 64; i++ {
		bb |= Bitboard(1) << uint(i)

		if got := PopCount(bb); got != i+1 {
			t.Fatalf("PopCount: expected %d got %d", i+1, got)
		}
	}
}

func TestRankFileConstantsCoverBoard(t *testing.T) {
	ranks := []Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}
	var union Bitboard
	for _, r := range ranks {
		if PopCount(r) != 8 {
			t.Fatalf("rank mask %#x: expected 8 bits, got %d", r, PopCount(r))
		}
		union |= r
	}
	if union != All {
		t.Fatalf("union of rank masks: expected All, got %#x", union)
	}

	files := []Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}
	union = 0
	for _, f := range files {
		if PopCount(f) != 8 {
			t.Fatalf("file mask %#x: expected 8 bits, got %d", f, PopCount(f))
		}
		union |= f
	}
	if union != All {
		t.Fatalf("union of file masks: expected All, got %#x", union)
	}
}

func TestSquareRankFile(t *testing.T) {
	// D4 is square index 27: rank 3 (0-indexed), file 3.
	const d4 = Square(27)
	if got := SquareRank(d4); got != 3 {
		t.Fatalf("SquareRank(D4): expected 3 got %d", got)
	}
	if got := SquareFile(d4); got != 3 {
		t.Fatalf("SquareFile(D4): expected 3 got %d", got)
	}
}

func TestChebyshevDistance(t *testing.T) {
	testcases := []struct {
		a, b     Square
		expected int
	}{
		{0, 0, 0},
		{0, 63, 7},
		{0, 8, 1},
		{0, 1, 1},
		{27, 21, 2},
	}
	for _, tc := range testcases {
		if got := ChebyshevDistance(tc.a, tc.b); got != tc.expected {
			t.Fatalf("ChebyshevDistance(%d, %d): expected %d got %d", tc.a, tc.b, tc.expected, got)
		}
	}
}

func TestDiagonalMasks(t *testing.T) {
	// The A1-H8 diagonal itself must reduce to the identity shift.
	if DiagAscendingBB(0) != DiagA1H8 {
		t.Fatalf("DiagAscendingBB(A1): expected DiagA1H8")
	}
	if DiagDescendingBB(7) != DiagA8H1 {
		t.Fatalf("DiagDescendingBB(H1): expected DiagA8H1")
	}
}

func BenchmarkLSB(b *testing.B) {
	for b.Loop() {
		LSB(0x8000000000000000)
	}
}

func BenchmarkPopCount(b *testing.B) {
	for b.Loop() {
		PopCount(0xFFFFFFFFFFFFFFFF)
	}
}
