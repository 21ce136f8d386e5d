package store

import (
	"path/filepath"
	"testing"

	"github.com/LIAMBB/chess-compute-core/components"
	"github.com/google/uuid"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "chess.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func openingMove(t *testing.T, board *components.ChessBoard, start, end components.Coordinates, moveType components.MoveCommandType) Child {
	t.Helper()
	move := components.NewMoveCommand(start, end, moveType)
	next, err := board.Apply(move)
	if err != nil {
		t.Fatalf("apply %v: %v", move, err)
	}
	return Child{Move: move, Board: next}
}

func TestStartRun(t *testing.T) {
	s := openStore(t)
	id, err := s.StartRun(3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run id %q is not a uuid: %v", id, err)
	}
	other, err := s.StartRun(3)
	if err != nil {
		t.Fatal(err)
	}
	if other == id {
		t.Error("two runs share an id")
	}
}

func TestSaveBoardDeduplicates(t *testing.T) {
	s := openStore(t)
	board := components.NewStandardBoard()

	first, err := s.SaveBoard(board)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.SaveBoard(board.DeepCopy())
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("equal boards stored as %d and %d", first, second)
	}
	if count, _ := s.CountBoards(); count != 1 {
		t.Errorf("stored boards = %d, want 1", count)
	}

	loaded, err := s.Board(first)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Hash() != board.Hash() || len(loaded.Pieces()) != 32 {
		t.Errorf("loaded board differs:\n%s", loaded.ToString())
	}
}

func TestSaveChildren(t *testing.T) {
	s := openStore(t)
	root := components.NewStandardBoard()
	rootID, err := s.SaveBoard(root)
	if err != nil {
		t.Fatal(err)
	}

	children := []Child{
		openingMove(t, root, components.Coordinates{Row: 1, Col: 4}, components.Coordinates{Row: 3, Col: 4}, components.PawnOpenMove),
		openingMove(t, root, components.Coordinates{Row: 0, Col: 6}, components.Coordinates{Row: 2, Col: 5}, components.Move),
	}
	ids, err := s.SaveChildren(rootID, children)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] == ids[1] || ids[0] == rootID {
		t.Fatalf("child ids = %v", ids)
	}

	// Saving the same edges again changes nothing.
	again, err := s.SaveChildren(rootID, children)
	if err != nil {
		t.Fatal(err)
	}
	if again[0] != ids[0] || again[1] != ids[1] {
		t.Errorf("second save ids = %v, want %v", again, ids)
	}

	relations, err := s.Children(rootID)
	if err != nil {
		t.Fatal(err)
	}
	want := []Relation{{ChildID: ids[0], Move: "e2e4"}, {ChildID: ids[1], Move: "g1f3"}}
	if len(relations) != len(want) {
		t.Fatalf("relations = %v, want %v", relations, want)
	}
	for i := range want {
		if relations[i] != want[i] {
			t.Errorf("relation %d = %v, want %v", i, relations[i], want[i])
		}
	}

	child, err := s.Board(ids[0])
	if err != nil {
		t.Fatal(err)
	}
	if child.PlayerTurn() != components.Black {
		t.Errorf("child turn = %s, want Black", child.PlayerTurn())
	}
	if target, ok := child.EnPassantTarget(); !ok || target != (components.Coordinates{Row: 2, Col: 4}) {
		t.Errorf("child en passant target = %v, %v; want e3", target, ok)
	}

	if leaf, _ := s.Children(ids[1]); len(leaf) != 0 {
		t.Errorf("leaf has children %v", leaf)
	}
}

func TestBoardMissing(t *testing.T) {
	s := openStore(t)
	if _, err := s.Board(42); err == nil {
		t.Error("loading a missing board succeeded")
	}
}

func TestExceeds(t *testing.T) {
	s := openStore(t)
	if _, err := s.SaveBoard(components.NewStandardBoard()); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		maxBytes int64
		want     bool
	}{
		{"disabled", 0, false},
		{"tiny limit", 1, true},
		{"large limit", 1 << 40, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Exceeds(tt.maxBytes)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Exceeds(%d) = %v, want %v", tt.maxBytes, got, tt.want)
			}
		})
	}
}
