package components

import "testing"

func TestMoveCommandString(t *testing.T) {
	tests := []struct {
		move MoveCommand
		want string
	}{
		{NewMoveCommand(at(1, 4), at(3, 4), PawnOpenMove), "e2e4"},
		{NewMoveCommand(at(0, 4), at(0, 6), KingSideCastle), "e1g1"},
		{NewMoveCommand(at(6, 0), at(7, 0), Promote), "a7a8q"},
		{NewMoveCommand(at(6, 0), at(7, 1), Promote).WithPromotion(KnightKind), "a7b8n"},
		{NewMoveCommand(at(1, 1), at(0, 1), Promote).WithPromotion(NoPieceKind), "b2b1q"},
		{NewMoveCommand(at(8, 0), at(9, 0), Move), "(8,0)(9,0)"},
	}
	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestNewMoveCommandDefaultsPromotion(t *testing.T) {
	if got := NewMoveCommand(at(6, 0), at(7, 0), Promote).Promotion; got != QueenKind {
		t.Errorf("promotion = %s, want Queen", got)
	}
	if got := NewMoveCommand(at(1, 0), at(2, 0), Move).Promotion; got != NoPieceKind {
		t.Errorf("plain move promotion = %s, want None", got)
	}
}

func TestExpandPromotions(t *testing.T) {
	moves := []MoveCommand{
		NewMoveCommand(at(1, 0), at(2, 0), Move),
		NewMoveCommand(at(6, 1), at(7, 1), Promote),
	}
	expanded := ExpandPromotions(moves)
	if len(expanded) != 5 {
		t.Fatalf("expanded = %v, want 5 moves", expanded)
	}
	if expanded[0] != moves[0] {
		t.Errorf("first move = %v, want it unchanged", expanded[0])
	}
	for i, kind := range PromotionChoices {
		if got := expanded[i+1].Promotion; got != kind {
			t.Errorf("choice %d = %s, want %s", i, got, kind)
		}
	}
}

func TestIsCapture(t *testing.T) {
	for moveType, want := range map[MoveCommandType]bool{
		Move:            false,
		Capture:         true,
		Enpassant:       true,
		PawnOpenMove:    false,
		KingSideCastle:  false,
		QueenSideCastle: false,
	} {
		if got := NewMoveCommand(at(0, 0), at(1, 1), moveType).IsCapture(); got != want {
			t.Errorf("%s IsCapture = %v, want %v", moveType, got, want)
		}
	}
}
