package fen

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/avrelii/chesscore/bitboard"
	"github.com/avrelii/chesscore/position"
)

func TestParseStartPos(t *testing.T) {
	got := Parse(StartPos)
	want := position.New()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parsed start position differs from position.New() (-want +got):\n%s", diff)
	}
}

func TestParseCastlingRightsSubset(t *testing.T) {
	p := Parse("8/8/8/8/8/8/8/8 w Kq - 0 1")
	if !p.CastlingRights.Has(7) {
		t.Fatalf("expected white kingside right")
	}
	if p.CastlingRights.Has(0) {
		t.Fatalf("did not expect white queenside right")
	}
	if !p.CastlingRights.Has(56) {
		t.Fatalf("expected black queenside right")
	}
	if p.CastlingRights.Has(63) {
		t.Fatalf("did not expect black kingside right")
	}
}

func TestParseNoCastlingRights(t *testing.T) {
	p := Parse("8/8/8/8/8/8/8/8 w - - 0 1")
	if p.CastlingRights != 0 {
		t.Fatalf("expected no castling rights, got %#x", p.CastlingRights)
	}
}

func TestParseEnPassantTarget(t *testing.T) {
	p := Parse("8/8/8/8/4Pp2/8/8/8 b - e3 0 1")
	if p.EPSquare != bitboard.Square(20) { // e3
		t.Fatalf("ep square: got %d want 20", p.EPSquare)
	}
}

func TestParseBadPlacementPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on short piece placement")
		}
	}()
	Parse("8/8/8/8/8/8/8 w - - 0 1")
}

func TestSerializeRoundTrip(t *testing.T) {
	fens := []string{
		StartPos,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"8/8/8/8/4Pp2/8/8/8 b - e3 0 1",
		"8/8/8/8/8/8/8/4K2k w - - 12 34",
	}

	for _, in := range fens {
		p := Parse(in)
		out := Serialize(p)
		if out != in {
			t.Fatalf("round trip mismatch:\n  in:  %s\n  out: %s", in, out)
		}
	}
}

func BenchmarkParseStartPos(b *testing.B) {
	for b.Loop() {
		Parse(StartPos)
	}
}

func BenchmarkSerializeStartPos(b *testing.B) {
	p := position.New()
	for b.Loop() {
		Serialize(p)
	}
}
