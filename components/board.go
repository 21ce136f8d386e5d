package components

import (
	"fmt"
	"strings"
)

// MaxBoardSize bounds custom board dimensions so every square has a hash key.
const MaxBoardSize = 16

// ChessBoard owns every piece standing on it. Apply never mutates the
// receiver, it returns the next board, so many sibling boards can be held
// at once without sharing state.
type ChessBoard struct {
	width     int
	height    int
	cells     []ChessPiece // row-major, nil is an empty square
	turn      Color
	castling  CastlingRights
	enPassant *Coordinates
	halfMoves int
}

// NewChessBoard creates an empty board, White to move and no castling rights.
func NewChessBoard(width, height int) (*ChessBoard, error) {
	if width <= 0 || height <= 0 || width > MaxBoardSize || height > MaxBoardSize {
		return nil, fmt.Errorf("%w: board size %dx%d", ErrOutOfBounds, width, height)
	}
	return &ChessBoard{
		width:  width,
		height: height,
		cells:  make([]ChessPiece, width*height),
		turn:   White,
	}, nil
}

var backRank = [8]PieceKind{RookKind, KnightKind, BishopKind, QueenKind, KingKind, BishopKind, KnightKind, RookKind}

// NewStandardBoard returns the starting position with all castling rights.
func NewStandardBoard() *ChessBoard {
	cb, _ := NewChessBoard(8, 8)
	for col, kind := range backRank {
		cb.set(Coordinates{Row: 0, Col: col}, NewPiece(kind, White, Coordinates{Row: 0, Col: col}))
		cb.set(Coordinates{Row: 1, Col: col}, NewPiece(PawnKind, White, Coordinates{Row: 1, Col: col}))
		cb.set(Coordinates{Row: 6, Col: col}, NewPiece(PawnKind, Black, Coordinates{Row: 6, Col: col}))
		cb.set(Coordinates{Row: 7, Col: col}, NewPiece(kind, Black, Coordinates{Row: 7, Col: col}))
	}
	cb.castling = AllCastling
	return cb
}

// IsLargeBoard reports whether a width x height board covers more than 100
// squares.
func IsLargeBoard(width, height int) bool {
	return width*height > 100
}

func (cb *ChessBoard) Width() int {
	return cb.width
}

func (cb *ChessBoard) Height() int {
	return cb.height
}

func (cb *ChessBoard) Area() int {
	return cb.width * cb.height
}

func (cb *ChessBoard) IsWithinBounds(position Coordinates) bool {
	return position.Row >= 0 && position.Row < cb.height && position.Col >= 0 && position.Col < cb.width
}

func (cb *ChessBoard) index(position Coordinates) int {
	return position.Row*cb.width + position.Col
}

// at is the internal lookup; off-board squares read as empty.
func (cb *ChessBoard) at(position Coordinates) ChessPiece {
	if !cb.IsWithinBounds(position) {
		return nil
	}
	return cb.cells[cb.index(position)]
}

func (cb *ChessBoard) set(position Coordinates, piece ChessPiece) {
	cb.cells[cb.index(position)] = piece
}

// PieceAt returns the piece on position, or nil for an empty square.
func (cb *ChessBoard) PieceAt(position Coordinates) (ChessPiece, error) {
	if !cb.IsWithinBounds(position) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, position)
	}
	return cb.cells[cb.index(position)], nil
}

func (cb *ChessBoard) IsEmpty(position Coordinates) bool {
	if !cb.IsWithinBounds(position) {
		return false
	}
	return cb.cells[cb.index(position)] == nil
}

func (cb *ChessBoard) IsEnemy(position Coordinates, color Color) bool {
	piece := cb.at(position)
	return piece != nil && piece.GetColor() != color
}

func (cb *ChessBoard) PlayerTurn() Color {
	return cb.turn
}

func (cb *ChessBoard) CastlingRights() CastlingRights {
	return cb.castling
}

// EnPassantTarget is the square a pawn skipped over on the previous move.
func (cb *ChessBoard) EnPassantTarget() (Coordinates, bool) {
	if cb.enPassant == nil {
		return Coordinates{}, false
	}
	return *cb.enPassant, true
}

// HalfMoves counts the moves applied since the board was set up.
func (cb *ChessBoard) HalfMoves() int {
	return cb.halfMoves
}

// Place puts a new piece on an empty square. It is meant for setting up
// custom layouts before play.
func (cb *ChessBoard) Place(kind PieceKind, color Color, position Coordinates) error {
	if !cb.IsWithinBounds(position) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, position)
	}
	if !cb.IsEmpty(position) {
		return fmt.Errorf("%w: %v", ErrOccupied, position)
	}
	piece := NewPiece(kind, color, position)
	if piece == nil {
		return fmt.Errorf("unknown piece kind %d", kind)
	}
	cb.set(position, piece)
	return nil
}

func (cb *ChessBoard) SetPlayerTurn(color Color) {
	cb.turn = color
}

func (cb *ChessBoard) SetCastlingRights(rights CastlingRights) {
	cb.castling = rights
}

func (cb *ChessBoard) SetEnPassantTarget(position Coordinates) error {
	if !cb.IsWithinBounds(position) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, position)
	}
	cb.enPassant = &position
	return nil
}

func (cb *ChessBoard) ClearEnPassantTarget() {
	cb.enPassant = nil
}

// Pieces lists the pieces on the board, row by row from White's side.
func (cb *ChessBoard) Pieces() []ChessPiece {
	var pieces []ChessPiece
	for _, piece := range cb.cells {
		if piece != nil {
			pieces = append(pieces, piece)
		}
	}
	return pieces
}

func (cb *ChessBoard) KingPosition(color Color) (Coordinates, bool) {
	for _, piece := range cb.cells {
		if piece != nil && piece.Kind() == KingKind && piece.GetColor() == color {
			return piece.Position(), true
		}
	}
	return Coordinates{}, false
}

func (cb *ChessBoard) homeRow(color Color) int {
	if color == White {
		return 0
	}
	return cb.height - 1
}

func (cb *ChessBoard) pawnHomeRow(color Color) int {
	if color == White {
		return 1
	}
	return cb.height - 2
}

func (cb *ChessBoard) promotionRow(color Color) int {
	return cb.homeRow(color.Opponent())
}

func (cb *ChessBoard) DeepCopy() *ChessBoard {
	newBoard := *cb
	newBoard.cells = make([]ChessPiece, len(cb.cells))
	copy(newBoard.cells, cb.cells)
	if cb.enPassant != nil {
		ep := *cb.enPassant
		newBoard.enPassant = &ep
	}
	return &newBoard
}

// PossibleMoves lists the pseudo-legal moves of the piece on position. An
// empty square has no moves.
func (cb *ChessBoard) PossibleMoves(position Coordinates) ([]MoveCommand, error) {
	piece, err := cb.PieceAt(position)
	if err != nil || piece == nil {
		return nil, err
	}
	return piece.PossibleMoves(cb), nil
}

func (cb *ChessBoard) CaptureTargets(position Coordinates) ([]Coordinates, error) {
	piece, err := cb.PieceAt(position)
	if err != nil || piece == nil {
		return nil, err
	}
	return piece.CaptureTargets(cb), nil
}

// LegalMoves is PossibleMoves without the moves that leave the mover's
// king in check.
func (cb *ChessBoard) LegalMoves(position Coordinates) ([]MoveCommand, error) {
	moves, err := cb.PossibleMoves(position)
	if err != nil {
		return nil, err
	}
	var legal []MoveCommand
	for _, move := range moves {
		if cb.leavesKingSafe(move) {
			legal = append(legal, move)
		}
	}
	return legal, nil
}

// AllLegalMoves lists the legal moves of the side to move. Promotions are
// returned once per destination, defaulted to a queen.
func (cb *ChessBoard) AllLegalMoves() []MoveCommand {
	var legal []MoveCommand
	for _, piece := range cb.cells {
		if piece == nil || piece.GetColor() != cb.turn {
			continue
		}
		for _, move := range piece.PossibleMoves(cb) {
			if cb.leavesKingSafe(move) {
				legal = append(legal, move)
			}
		}
	}
	return legal
}

func (cb *ChessBoard) leavesKingSafe(move MoveCommand) bool {
	mover := cb.at(move.Start)
	if mover == nil {
		return false
	}
	next := cb.DeepCopy()
	next.execute(move)
	return !next.InCheck(mover.GetColor())
}

func (cb *ChessBoard) InCheck(color Color) bool {
	king, ok := cb.KingPosition(color)
	if !ok {
		return false
	}
	return cb.IsSquareAttacked(king, color.Opponent())
}

// IsSquareAttacked reports whether any piece of color by attacks position.
// It looks outward from the square, so it never recurses into castling
// generation.
func (cb *ChessBoard) IsSquareAttacked(position Coordinates, by Color) bool {
	attackedBy := func(at Coordinates, kinds ...PieceKind) bool {
		piece := cb.at(at)
		if piece == nil || piece.GetColor() != by {
			return false
		}
		for _, kind := range kinds {
			if piece.Kind() == kind {
				return true
			}
		}
		return false
	}

	// Pawns attack diagonally forward, so look one row back from their side.
	for _, side := range []int{-1, 1} {
		if attackedBy(position.Offset(-by.Forward(), side), PawnKind) {
			return true
		}
	}
	for _, offset := range knightOffsets {
		if attackedBy(position.Offset(offset.Row, offset.Col), KnightKind) {
			return true
		}
	}
	for _, offset := range kingOffsets {
		if attackedBy(position.Offset(offset.Row, offset.Col), KingKind) {
			return true
		}
	}
	if cb.rayAttack(position, orthogonalDirections, attackedBy, RookKind, QueenKind) {
		return true
	}
	return cb.rayAttack(position, diagonalDirections, attackedBy, BishopKind, QueenKind)
}

func (cb *ChessBoard) rayAttack(from Coordinates, directions []Coordinates, attackedBy func(Coordinates, ...PieceKind) bool, kinds ...PieceKind) bool {
	for _, direction := range directions {
		for next := from.Offset(direction.Row, direction.Col); cb.IsWithinBounds(next); next = next.Offset(direction.Row, direction.Col) {
			if cb.IsEmpty(next) {
				continue
			}
			if attackedBy(next, kinds...) {
				return true
			}
			break
		}
	}
	return false
}

// Apply validates move against the piece's movement rule and king safety
// and returns the board after it. The receiver is left untouched.
func (cb *ChessBoard) Apply(move MoveCommand) (*ChessBoard, error) {
	if !cb.IsWithinBounds(move.Start) || !cb.IsWithinBounds(move.End) {
		return nil, fmt.Errorf("%w: move %v -> %v", ErrOutOfBounds, move.Start, move.End)
	}
	piece := cb.at(move.Start)
	if piece == nil {
		return nil, fmt.Errorf("%w: no piece at %v", ErrIllegalMove, move.Start)
	}
	if piece.GetColor() != cb.turn {
		return nil, fmt.Errorf("%w: %s to move", ErrIllegalMove, cb.turn)
	}

	generated := false
	for _, candidate := range piece.PossibleMoves(cb) {
		if candidate.End == move.End && candidate.Type == move.Type {
			generated = true
			break
		}
	}
	if !generated {
		return nil, fmt.Errorf("%w: %s %v cannot make %s %v", ErrIllegalMove, piece.Kind(), move.Start, move.Type, move)
	}
	if move.Type == Promote {
		if move.Promotion == NoPieceKind {
			move.Promotion = QueenKind
		}
		if !validPromotion(move.Promotion) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPromotionChoice, move.Promotion)
		}
	}

	next := cb.DeepCopy()
	next.execute(move)
	if next.InCheck(piece.GetColor()) {
		return nil, fmt.Errorf("%w: %v leaves the %s king in check", ErrIllegalMove, move, piece.GetColor())
	}
	return next, nil
}

// execute performs a generated move in place.
func (cb *ChessBoard) execute(move MoveCommand) {
	piece := cb.at(move.Start)
	row := move.Start.Row

	switch move.Type {
	case Enpassant:
		// The captured pawn stands beside the mover, not on the destination
		cb.set(Coordinates{Row: row, Col: move.End.Col}, nil)
	case KingSideCastle:
		cb.relocate(Coordinates{Row: row, Col: cb.width - 1}, move.End.Offset(0, -1))
	case QueenSideCastle:
		cb.relocate(Coordinates{Row: row, Col: 0}, move.End.Offset(0, 1))
	}

	moved := piece.moved(move.End)
	if move.Type == Promote {
		promotion := move.Promotion
		if promotion == NoPieceKind {
			promotion = QueenKind
		}
		moved = newPiece(promotion, pieceState{Color: piece.GetColor(), Pos: move.End, Moves: piece.MoveCount() + 1})
	}
	cb.set(move.Start, nil)
	cb.set(move.End, moved)

	// Reset En Passant, set again only after a double pawn move
	cb.enPassant = nil
	if move.Type == PawnOpenMove {
		skipped := move.Start.Offset(piece.GetColor().Forward(), 0)
		cb.enPassant = &skipped
	}

	if piece.Kind() == KingKind {
		cb.castling = cb.castling.Without(kingSideRight(piece.GetColor()) | queenSideRight(piece.GetColor()))
	}
	cb.castling = cb.castling.Without(cb.cornerRights(move.Start) | cb.cornerRights(move.End))

	cb.turn = cb.turn.Opponent()
	cb.halfMoves++
}

func (cb *ChessBoard) relocate(from, to Coordinates) {
	piece := cb.at(from)
	if piece == nil {
		return
	}
	cb.set(from, nil)
	cb.set(to, piece.moved(to))
}

// cornerRights is the castling right tied to a rook's starting corner.
// Anything leaving or arriving on that corner ends the right.
func (cb *ChessBoard) cornerRights(position Coordinates) CastlingRights {
	switch position {
	case Coordinates{Row: 0, Col: 0}:
		return WhiteQueenSide
	case Coordinates{Row: 0, Col: cb.width - 1}:
		return WhiteKingSide
	case Coordinates{Row: cb.height - 1, Col: 0}:
		return BlackQueenSide
	case Coordinates{Row: cb.height - 1, Col: cb.width - 1}:
		return BlackKingSide
	}
	return NoCastling
}

// ToString renders the board with White's back rank at the bottom.
func (cb *ChessBoard) ToString() string {
	var sb strings.Builder
	border := "  " + strings.Repeat("-", cb.width*5+2) + "\n"
	sb.WriteString(border)
	for row := cb.height - 1; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d-|", row+1)
		for col := 0; col < cb.width; col++ {
			piece := cb.at(Coordinates{Row: row, Col: col})
			if piece != nil {
				sb.WriteString(piece.ToString())
			} else {
				sb.WriteString("     ") // Print empty space for nil pieces
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	sb.WriteString("    ")
	for col := 0; col < cb.width; col++ {
		fmt.Fprintf(&sb, "  %c  ", 'A'+col)
	}
	sb.WriteString("\n")
	return sb.String()
}
