package explorer

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LIAMBB/chess-compute-core/components"
	"github.com/LIAMBB/chess-compute-core/internal/chesstest"
	"github.com/LIAMBB/chess-compute-core/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "chess.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		nodes []int64
	}{
		{"start", chesstest.StartFEN, []int64{20, 400, 8902}},
		{"kiwipete", chesstest.KiwipeteFEN, []int64{48, 2039}},
		{"position3", chesstest.Position3FEN, []int64{14, 191, 2812}},
		{"position4", chesstest.Position4FEN, []int64{6, 264, 9467}},
		{"position5", chesstest.Position5FEN, []int64{44, 1486}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := chesstest.BoardFromFEN(tt.fen)
			if err != nil {
				t.Fatal(err)
			}
			for i, want := range tt.nodes {
				if got := Perft(board, i+1); got != want {
					t.Errorf("perft(%d) = %d, want %d", i+1, got, want)
				}
			}
		})
	}
}

func TestChildren(t *testing.T) {
	board, err := chesstest.BoardFromFEN(chesstest.Position5FEN)
	if err != nil {
		t.Fatal(err)
	}
	children, err := Children(board)
	if err != nil {
		t.Fatal(err)
	}
	if len(children) != 44 {
		t.Fatalf("children = %d, want 44", len(children))
	}

	promotions := 0
	for _, child := range children {
		if child.Board.PlayerTurn() != components.Black {
			t.Errorf("child of %v has %s to move", child.Move, child.Board.PlayerTurn())
		}
		if child.Move.Type == components.Promote {
			promotions++
		}
	}
	// d7xc8 with each of the four choices
	if promotions != 4 {
		t.Errorf("promotions = %d, want 4", promotions)
	}
}

func TestRun(t *testing.T) {
	s := openStore(t)
	ex := New(s, Options{MaxDepth: 3, Workers: 4})

	result, err := ex.Run(context.Background(), components.NewStandardBoard())
	if err != nil {
		t.Fatal(err)
	}

	wantNodes := []int64{1, 20, 400, 8902}
	if len(result.Nodes) != len(wantNodes) {
		t.Fatalf("nodes = %v, want %v", result.Nodes, wantNodes)
	}
	for i := range wantNodes {
		if result.Nodes[i] != wantNodes[i] {
			t.Errorf("nodes[%d] = %d, want %d", i, result.Nodes[i], wantNodes[i])
		}
	}
	// The first transpositions appear at depth 3.
	if result.Distinct[1] != 20 || result.Distinct[2] != 400 {
		t.Errorf("distinct = %v, want 20 and 400 for the first two plies", result.Distinct)
	}
	if result.Distinct[3] >= 8902 {
		t.Errorf("distinct positions at depth 3 = %d, want fewer than the line count", result.Distinct[3])
	}

	stored, err := s.CountBoards()
	if err != nil {
		t.Fatal(err)
	}
	total := 0
	for _, n := range result.Distinct {
		total += n
	}
	if stored != total {
		t.Errorf("stored boards = %d, want %d", stored, total)
	}

	relations, err := s.Children(result.RootID)
	if err != nil {
		t.Fatal(err)
	}
	if len(relations) != 20 {
		t.Errorf("root relations = %d, want 20", len(relations))
	}
}

func TestRunStopsAtSizeLimit(t *testing.T) {
	s := openStore(t)
	ex := New(s, Options{MaxDepth: 3, MaxSizeBytes: 1})

	result, err := ex.Run(context.Background(), components.NewStandardBoard())
	if !errors.Is(err, ErrSizeLimit) {
		t.Fatalf("error = %v, want ErrSizeLimit", err)
	}
	if len(result.Nodes) != 1 || result.Nodes[0] != 1 {
		t.Errorf("nodes = %v, want only the root", result.Nodes)
	}
}

func TestRunCancelled(t *testing.T) {
	s := openStore(t)
	ex := New(s, Options{MaxDepth: 2})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ex.Run(ctx, components.NewStandardBoard()); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestBrowse(t *testing.T) {
	s := openStore(t)
	result, err := New(s, Options{MaxDepth: 1}).Run(context.Background(), components.NewStandardBoard())
	if err != nil {
		t.Fatal(err)
	}

	in := strings.NewReader("b\nx\n0\nb\nq\n")
	var out strings.Builder
	if err := Browse(s, result.RootID, components.NewEvaluator(), in, &out); err != nil {
		t.Fatal(err)
	}

	text := out.String()
	for _, want := range []string{
		"Cannot go back further",
		"Invalid input",
		"White to move, castling KQkq, evaluation 0",
		"Black to move",
		"No further moves stored.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if got := strings.Count(text, "Current Board State (ID: "); got != 5 {
		t.Errorf("boards shown = %d, want 5", got)
	}
}

func TestBrowseStopsAtEOF(t *testing.T) {
	s := openStore(t)
	rootID, err := s.SaveBoard(components.NewStandardBoard())
	if err != nil {
		t.Fatal(err)
	}
	if err := Browse(s, rootID, components.NewEvaluator(), strings.NewReader(""), &strings.Builder{}); err != nil {
		t.Errorf("Browse at EOF = %v, want nil", err)
	}
}
