package components

type Pawn struct {
	pieceState
}

func (pawn Pawn) Kind() PieceKind {
	return PawnKind
}

func (pawn Pawn) PieceValue() uint32 {
	return PawnKind.Value()
}

func (pawn Pawn) PhaseWeight() uint32 {
	return PawnKind.PhaseWeight()
}

// PossibleMoves generates a single Promote per destination on the last rank,
// defaulted to a queen. ExpandPromotions yields the other choices.
func (pawn Pawn) PossibleMoves(board *ChessBoard) []MoveCommand {
	var moves []MoveCommand

	forward := pawn.Pos.Offset(pawn.Color.Forward(), 0)
	if !board.IsWithinBounds(forward) {
		return nil
	}
	lastRow := board.promotionRow(pawn.Color)

	// Forward 1, (First Move) Forward 2
	if board.IsEmpty(forward) {
		if forward.Row == lastRow {
			moves = append(moves, NewMoveCommand(pawn.Pos, forward, Promote))
		} else {
			moves = append(moves, NewMoveCommand(pawn.Pos, forward, Move))
			double := forward.Offset(pawn.Color.Forward(), 0)
			if pawn.Pos.Row == board.pawnHomeRow(pawn.Color) && board.IsWithinBounds(double) && board.IsEmpty(double) {
				moves = append(moves, NewMoveCommand(pawn.Pos, double, PawnOpenMove))
			}
		}
	}

	// (Capture) Diagonal 1 (L/R)
	for _, side := range []int{-1, 1} {
		target := forward.Offset(0, side)
		if !board.IsWithinBounds(target) {
			continue
		}
		if board.IsEnemy(target, pawn.Color) {
			if target.Row == lastRow {
				moves = append(moves, NewMoveCommand(pawn.Pos, target, Promote))
			} else {
				moves = append(moves, NewMoveCommand(pawn.Pos, target, Capture))
			}
			continue
		}
		if pawn.canTakeEnPassant(board, target) {
			moves = append(moves, NewMoveCommand(pawn.Pos, target, Enpassant))
		}
	}

	return moves
}

// canTakeEnPassant checks target is the pending en passant square and an
// enemy pawn stands beside this pawn, on the target's column.
func (pawn Pawn) canTakeEnPassant(board *ChessBoard, target Coordinates) bool {
	ep, ok := board.EnPassantTarget()
	if !ok || ep != target || !board.IsEmpty(target) {
		return false
	}
	victim := board.at(Coordinates{Row: pawn.Pos.Row, Col: target.Col})
	return victim != nil && victim.Kind() == PawnKind && victim.GetColor() != pawn.Color
}

func (pawn Pawn) CaptureTargets(board *ChessBoard) []Coordinates {
	return captureTargets(pawn, board)
}

func (pawn Pawn) ComputedValue(board *ChessBoard, phase int) int {
	return computedValue(pawn, phase)
}

func (pawn Pawn) ToString() string {
	return pawn.toString(PawnKind)
}

func (pawn Pawn) moved(to Coordinates) ChessPiece {
	return Pawn{pawn.advance(to)}
}
