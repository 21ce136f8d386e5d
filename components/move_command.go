package components

import "strings"

type MoveCommandType int

const (
	Move MoveCommandType = iota
	Capture
	QueenSideCastle
	KingSideCastle
	Enpassant
	PawnOpenMove
	Promote
)

func (t MoveCommandType) String() string {
	switch t {
	case Move:
		return "Move"
	case Capture:
		return "Capture"
	case QueenSideCastle:
		return "QueenSideCastle"
	case KingSideCastle:
		return "KingSideCastle"
	case Enpassant:
		return "Enpassant"
	case PawnOpenMove:
		return "PawnOpenMove"
	case Promote:
		return "Promote"
	}
	return "Unknown"
}

// MoveCommand is a single transition produced by move generation. It is a
// plain value: copying it never shares state, and nothing mutates it.
type MoveCommand struct {
	Start     Coordinates     `json:"start"`
	End       Coordinates     `json:"end"`
	Type      MoveCommandType `json:"type"`
	Promotion PieceKind       `json:"promotion,omitempty"`
}

func NewMoveCommand(start, end Coordinates, moveType MoveCommandType) MoveCommand {
	cmd := MoveCommand{Start: start, End: end, Type: moveType}
	if moveType == Promote {
		cmd.Promotion = QueenKind
	}
	return cmd
}

// WithPromotion returns a copy of the command promoting to kind.
func (m MoveCommand) WithPromotion(kind PieceKind) MoveCommand {
	m.Promotion = kind
	return m
}

// IsCapture reports whether applying the command removes an enemy piece
// from the destination square. En passant removes a piece elsewhere.
func (m MoveCommand) IsCapture() bool {
	return m.Type == Capture || m.Type == Enpassant
}

func (m MoveCommand) String() string {
	var sb strings.Builder
	sb.WriteString(m.Start.String())
	sb.WriteString(m.End.String())
	if m.Type == Promote {
		promotion := m.Promotion
		if promotion == NoPieceKind {
			promotion = QueenKind
		}
		sb.WriteString(strings.ToLower(promotion.Symbol()))
	}
	return sb.String()
}

// PromotionChoices are the kinds a pawn may become, in generation order.
var PromotionChoices = []PieceKind{QueenKind, RookKind, BishopKind, KnightKind}

// ExpandPromotions replaces every Promote command with one command per
// promotion choice. Other commands are kept as they are.
func ExpandPromotions(moves []MoveCommand) []MoveCommand {
	expanded := make([]MoveCommand, 0, len(moves))
	for _, move := range moves {
		if move.Type != Promote {
			expanded = append(expanded, move)
			continue
		}
		for _, kind := range PromotionChoices {
			expanded = append(expanded, move.WithPromotion(kind))
		}
	}
	return expanded
}

func validPromotion(kind PieceKind) bool {
	for _, choice := range PromotionChoices {
		if kind == choice {
			return true
		}
	}
	return false
}
