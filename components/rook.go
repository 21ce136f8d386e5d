package components

// Rook castling is generated by the King, which owns the joint king and rook check.
type Rook struct {
	pieceState
}

func (rook Rook) Kind() PieceKind {
	return RookKind
}

func (rook Rook) PieceValue() uint32 {
	return RookKind.Value()
}

func (rook Rook) PhaseWeight() uint32 {
	return RookKind.PhaseWeight()
}

func (rook Rook) PossibleMoves(board *ChessBoard) []MoveCommand {
	return slide(board, rook.Pos, rook.Color, orthogonalDirections)
}

func (rook Rook) CaptureTargets(board *ChessBoard) []Coordinates {
	return captureTargets(rook, board)
}

func (rook Rook) ComputedValue(board *ChessBoard, phase int) int {
	return computedValue(rook, phase)
}

func (rook Rook) ToString() string {
	return rook.toString(RookKind)
}

func (rook Rook) moved(to Coordinates) ChessPiece {
	return Rook{rook.advance(to)}
}
