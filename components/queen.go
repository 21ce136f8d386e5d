package components

// Queen moves along the union of the rook and bishop rays.
type Queen struct {
	pieceState
}

func (queen Queen) Kind() PieceKind {
	return QueenKind
}

func (queen Queen) PieceValue() uint32 {
	return QueenKind.Value()
}

func (queen Queen) PhaseWeight() uint32 {
	return QueenKind.PhaseWeight()
}

func (queen Queen) PossibleMoves(board *ChessBoard) []MoveCommand {
	return slide(board, queen.Pos, queen.Color, allDirections)
}

func (queen Queen) CaptureTargets(board *ChessBoard) []Coordinates {
	return captureTargets(queen, board)
}

func (queen Queen) ComputedValue(board *ChessBoard, phase int) int {
	return computedValue(queen, phase)
}

func (queen Queen) ToString() string {
	return queen.toString(QueenKind)
}

func (queen Queen) moved(to Coordinates) ChessPiece {
	return Queen{queen.advance(to)}
}
