package format

import (
	"strings"
	"testing"

	"github.com/avrelii/chesscore/fen"
	"github.com/avrelii/chesscore/position"
)

func TestPositionShowsActiveColorAndRights(t *testing.T) {
	grid := Position(position.New())

	if !strings.Contains(grid, "Active color: white") {
		t.Fatalf("expected the starting position to report white to move:\n%s", grid)
	}
	if !strings.Contains(grid, "Castling rights: KQkq") {
		t.Fatalf("expected the starting position to report all four castling rights:\n%s", grid)
	}
	if !strings.Contains(grid, "En passant: none") {
		t.Fatalf("expected no en passant target at game start:\n%s", grid)
	}
}

func TestPositionShowsEnPassantTarget(t *testing.T) {
	p := fen.Parse("8/8/8/8/4Pp2/8/8/4K2k b - e3 0 1")
	grid := Position(p)

	if !strings.Contains(grid, "En passant: e3") {
		t.Fatalf("expected the en passant target e3 to be reported:\n%s", grid)
	}
}

func TestPositionGridHasEightRanks(t *testing.T) {
	grid := Position(position.New())
	lines := strings.Split(strings.TrimRight(grid, "\n"), "\n")

	rankLines := 0
	for _, line := range lines {
		if len(line) > 0 && line[0] >= '1' && line[0] <= '8' {
			rankLines++
		}
	}
	if rankLines != 8 {
		t.Fatalf("expected 8 rank lines in the grid, found %d", rankLines)
	}
}
