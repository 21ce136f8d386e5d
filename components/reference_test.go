package components_test

import (
	"testing"

	"github.com/LIAMBB/chess-compute-core/components"
	"github.com/LIAMBB/chess-compute-core/internal/chesstest"
	"github.com/davecgh/go-spew/spew"
)

var referencePositions = []struct {
	name string
	fen  string
}{
	{"start", chesstest.StartFEN},
	{"kiwipete", chesstest.KiwipeteFEN},
	{"position3", chesstest.Position3FEN},
	{"position4", chesstest.Position4FEN},
	{"position5", chesstest.Position5FEN},
	{"en passant", "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"},
	{"pinned en passant", "8/8/8/K2pP2r/8/8/8/7k w - d6 0 1"},
	{"castling through check", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1"},
}

func legalMoveStrings(t *testing.T, fen string) []string {
	t.Helper()
	board, err := chesstest.BoardFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return chesstest.MoveStrings(components.ExpandPromotions(board.AllLegalMoves()))
}

func compareMoves(t *testing.T, fen string) {
	t.Helper()
	want, err := chesstest.ReferenceMoves(fen)
	if err != nil {
		t.Fatal(err)
	}
	got := legalMoveStrings(t, fen)
	if len(got) != len(want) {
		t.Fatalf("%s: %d moves, want %d\ngot: %s\nwant: %s", fen, len(got), len(want), spew.Sdump(got), spew.Sdump(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: move %d = %s, want %s\ngot: %s", fen, i, got[i], want[i], spew.Sdump(got))
		}
	}
}

func TestLegalMovesMatchReference(t *testing.T) {
	for _, tt := range referencePositions {
		t.Run(tt.name, func(t *testing.T) {
			compareMoves(t, tt.fen)
		})
	}
}

func TestChildLegalMovesMatchReference(t *testing.T) {
	for _, tt := range referencePositions {
		t.Run(tt.name, func(t *testing.T) {
			children, err := chesstest.ChildFENs(tt.fen)
			if err != nil {
				t.Fatal(err)
			}
			for _, child := range children {
				compareMoves(t, child)
			}
		})
	}
}
