package components

type Bishop struct {
	pieceState
}

func (bishop Bishop) Kind() PieceKind {
	return BishopKind
}

func (bishop Bishop) PieceValue() uint32 {
	return BishopKind.Value()
}

func (bishop Bishop) PhaseWeight() uint32 {
	return BishopKind.PhaseWeight()
}

func (bishop Bishop) PossibleMoves(board *ChessBoard) []MoveCommand {
	return slide(board, bishop.Pos, bishop.Color, diagonalDirections)
}

func (bishop Bishop) CaptureTargets(board *ChessBoard) []Coordinates {
	return captureTargets(bishop, board)
}

func (bishop Bishop) ComputedValue(board *ChessBoard, phase int) int {
	return computedValue(bishop, phase)
}

func (bishop Bishop) ToString() string {
	return bishop.toString(BishopKind)
}

func (bishop Bishop) moved(to Coordinates) ChessPiece {
	return Bishop{bishop.advance(to)}
}
