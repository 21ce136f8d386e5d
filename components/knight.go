package components

type Knight struct {
	pieceState
}

func (knight Knight) Kind() PieceKind {
	return KnightKind
}

func (knight Knight) PieceValue() uint32 {
	return KnightKind.Value()
}

func (knight Knight) PhaseWeight() uint32 {
	return KnightKind.PhaseWeight()
}

func (knight Knight) PossibleMoves(board *ChessBoard) []MoveCommand {
	return step(board, knight.Pos, knight.Color, knightOffsets)
}

func (knight Knight) CaptureTargets(board *ChessBoard) []Coordinates {
	return captureTargets(knight, board)
}

func (knight Knight) ComputedValue(board *ChessBoard, phase int) int {
	return computedValue(knight, phase)
}

func (knight Knight) ToString() string {
	return knight.toString(KnightKind) // N to prevent confusing with King
}

func (knight Knight) moved(to Coordinates) ChessPiece {
	return Knight{knight.advance(to)}
}
