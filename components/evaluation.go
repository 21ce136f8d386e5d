package components

// ValueTable supplies a piece's worth in the middlegame and in the endgame.
type ValueTable interface {
	Midgame(piece ChessPiece) int
	Endgame(piece ChessPiece) int
}

// FlatValues scores every piece at its material value in both phases, so
// tapering has no effect.
type FlatValues struct{}

func (FlatValues) Midgame(piece ChessPiece) int {
	return int(piece.PieceValue())
}

func (FlatValues) Endgame(piece ChessPiece) int {
	return int(piece.PieceValue())
}

const (
	doubledPawnPenalty  = 15
	isolatedPawnMidgame = 15
	isolatedPawnEndgame = 25
)

type Evaluator struct {
	table         ValueTable
	pawnStructure bool
}

type EvaluatorOption func(*Evaluator)

// WithValueTable replaces the flat material values.
func WithValueTable(table ValueTable) EvaluatorOption {
	return func(e *Evaluator) {
		e.table = table
	}
}

// WithPawnStructure penalises doubled and isolated pawns.
func WithPawnStructure() EvaluatorOption {
	return func(e *Evaluator) {
		e.pawnStructure = true
	}
}

func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = NewEvaluator()

// Evaluate scores board with flat material values. Positive favours White.
func Evaluate(board *ChessBoard) int {
	return defaultEvaluator.Evaluate(board)
}

// Evaluate returns the tapered score of board from White's side: White's
// pieces add, Black's subtract.
func (e *Evaluator) Evaluate(board *ChessBoard) int {
	phase := GamePhase(board)

	score := 0
	for _, piece := range board.Pieces() {
		score += piece.GetColor().Sign() * e.pieceValue(board, piece, phase)
	}

	if e.pawnStructure {
		score -= pawnPenalty(board, White, phase)
		score += pawnPenalty(board, Black, phase)
	}
	return score
}

func (e *Evaluator) pieceValue(board *ChessBoard, piece ChessPiece, phase int) int {
	if e.table == nil {
		return piece.ComputedValue(board, phase)
	}
	return Taper(e.table.Midgame(piece), e.table.Endgame(piece), phase)
}

// GamePhase sums the phase weight of every piece on the board. A full set
// of pieces gives TotalPhaseWeight.
func GamePhase(board *ChessBoard) int {
	phase := 0
	for _, piece := range board.Pieces() {
		phase += int(piece.PhaseWeight())
	}
	return phase
}

// Taper blends midgame and endgame by phase/TotalPhaseWeight, with phase
// clamped to [0, TotalPhaseWeight].
func Taper(midgame, endgame, phase int) int {
	if phase < 0 {
		phase = 0
	}
	if phase > TotalPhaseWeight {
		phase = TotalPhaseWeight
	}
	return (midgame*phase + endgame*(TotalPhaseWeight-phase)) / TotalPhaseWeight
}

// pawnPenalty counts doubled pawns per file and isolated files for color.
func pawnPenalty(board *ChessBoard, color Color, phase int) int {
	filePawnCount := make([]int, board.Width())
	for _, piece := range board.Pieces() {
		if piece.Kind() == PawnKind && piece.GetColor() == color {
			filePawnCount[piece.Position().Col]++
		}
	}

	penalty := 0
	for file, count := range filePawnCount {
		if count == 0 {
			continue
		}
		if count > 1 {
			penalty += (count - 1) * doubledPawnPenalty
		}
		isolated := (file == 0 || filePawnCount[file-1] == 0) &&
			(file == len(filePawnCount)-1 || filePawnCount[file+1] == 0)
		if isolated {
			penalty += taperCeil(isolatedPawnMidgame, isolatedPawnEndgame, phase)
		}
	}
	return penalty
}

func taperCeil(midgame, endgame, phase int) int {
	if phase > TotalPhaseWeight {
		phase = TotalPhaseWeight
	}
	blended := midgame*phase + endgame*(TotalPhaseWeight-phase)
	return (blended + TotalPhaseWeight - 1) / TotalPhaseWeight
}
