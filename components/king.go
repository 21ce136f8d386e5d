package components

type King struct {
	pieceState
}

var kingOffsets = allDirections

func (king King) Kind() PieceKind {
	return KingKind
}

// PieceValue is a sentinel: kings are never traded, the value only makes
// king safety dominate the score.
func (king King) PieceValue() uint32 {
	return KingKind.Value()
}

func (king King) PhaseWeight() uint32 {
	return KingKind.PhaseWeight()
}

func (king King) PossibleMoves(board *ChessBoard) []MoveCommand {
	moves := step(board, king.Pos, king.Color, kingOffsets)
	return append(moves, king.castlingMoves(board)...)
}

// castlingMoves reads the rights from the board. The right must still be
// set, every square between king and rook must be empty, and the king may
// not start, pass or land on an attacked square.
func (king King) castlingMoves(board *ChessBoard) []MoveCommand {
	rights := board.CastlingRights()
	if king.Pos.Row != board.homeRow(king.Color) || !rights.Any(king.Color) {
		return nil
	}
	enemy := king.Color.Opponent()
	if board.IsSquareAttacked(king.Pos, enemy) {
		return nil
	}

	var moves []MoveCommand
	if rights.Has(kingSideRight(king.Color)) && king.canCastle(board, board.Width()-1, 1) {
		moves = append(moves, NewMoveCommand(king.Pos, king.Pos.Offset(0, 2), KingSideCastle))
	}
	if rights.Has(queenSideRight(king.Color)) && king.canCastle(board, 0, -1) {
		moves = append(moves, NewMoveCommand(king.Pos, king.Pos.Offset(0, -2), QueenSideCastle))
	}
	return moves
}

func (king King) canCastle(board *ChessBoard, rookCol, direction int) bool {
	rook := board.at(Coordinates{Row: king.Pos.Row, Col: rookCol})
	if rook == nil || rook.Kind() != RookKind || rook.GetColor() != king.Color {
		return false
	}
	landing := king.Pos.Offset(0, 2*direction)
	if (landing.Col-rookCol)*direction >= 0 || !board.IsWithinBounds(landing) {
		return false
	}
	for col := king.Pos.Col + direction; col != rookCol; col += direction {
		if !board.IsEmpty(Coordinates{Row: king.Pos.Row, Col: col}) {
			return false
		}
	}
	enemy := king.Color.Opponent()
	for i := 1; i <= 2; i++ {
		if board.IsSquareAttacked(king.Pos.Offset(0, i*direction), enemy) {
			return false
		}
	}
	return true
}

func (king King) CaptureTargets(board *ChessBoard) []Coordinates {
	return captureTargets(king, board)
}

func (king King) ComputedValue(board *ChessBoard, phase int) int {
	return computedValue(king, phase)
}

func (king King) ToString() string {
	return king.toString(KingKind)
}

func (king King) moved(to Coordinates) ChessPiece {
	return King{king.advance(to)}
}
