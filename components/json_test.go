package components

import (
	"encoding/json"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestBoardJSONRoundTrip(t *testing.T) {
	board := NewStandardBoard()
	board = apply(t, board, at(1, 4), at(3, 4), PawnOpenMove) // e4
	board = apply(t, board, at(7, 6), at(5, 5), Move)         // Nf6
	board = apply(t, board, at(0, 4), at(1, 4), Move)         // Ke2
	board = apply(t, board, at(6, 3), at(4, 3), PawnOpenMove) // d5

	data, err := json.Marshal(board)
	if err != nil {
		t.Fatal(err)
	}
	var restored ChessBoard
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatal(err)
	}

	if restored.Hash() != board.Hash() {
		t.Fatalf("restored board differs:\n%s\nwant:\n%s", restored.ToString(), board.ToString())
	}
	if restored.HalfMoves() != 4 {
		t.Errorf("half moves = %d, want 4", restored.HalfMoves())
	}
	if restored.CastlingRights() != BlackKingSide|BlackQueenSide {
		t.Errorf("castling = %s, want kq", restored.CastlingRights())
	}
	king, _ := restored.PieceAt(at(1, 4))
	if king == nil || king.Kind() != KingKind || king.MoveCount() != 1 {
		t.Errorf("king = %s, want a king that moved once", spew.Sdump(king))
	}
	if got, want := len(restored.AllLegalMoves()), len(board.AllLegalMoves()); got != want {
		t.Errorf("legal moves = %d, want %d", got, want)
	}
}

func TestBoardJSONRejectsOverlappingPieces(t *testing.T) {
	data := `{"width":8,"height":8,"turn":0,"castling":0,"halfMoves":0,"pieces":[
		{"kind":6,"color":0,"at":{"row":0,"col":4}},
		{"kind":5,"color":0,"at":{"row":0,"col":4}}]}`
	var board ChessBoard
	if err := json.Unmarshal([]byte(data), &board); err == nil {
		t.Fatal("two pieces on one square were accepted")
	}
}
