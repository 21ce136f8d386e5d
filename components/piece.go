package components

type PieceKind int8

const (
	NoPieceKind PieceKind = iota
	PawnKind
	KnightKind
	BishopKind
	RookKind
	QueenKind
	KingKind
)

// TotalPhaseWeight is the phase weight of the full starting material:
// 2 * (4 minor pieces * 1 + 2 rooks * 2 + 1 queen * 4).
const TotalPhaseWeight = 24

var (
	pieceValues  = [...]uint32{0, 100, 300, 300, 500, 900, 10000}
	phaseWeights = [...]uint32{0, 0, 1, 1, 2, 4, 0}
	pieceSymbols = [...]string{"", "P", "N", "B", "R", "Q", "K"}
	pieceNames   = [...]string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
)

func (k PieceKind) valid() bool {
	return k > NoPieceKind && k <= KingKind
}

func (k PieceKind) Value() uint32 {
	if !k.valid() {
		return 0
	}
	return pieceValues[k]
}

func (k PieceKind) PhaseWeight() uint32 {
	if !k.valid() {
		return 0
	}
	return phaseWeights[k]
}

// Symbol is the upper-case letter of the kind (N for knight).
func (k PieceKind) Symbol() string {
	if !k.valid() {
		return ""
	}
	return pieceSymbols[k]
}

func (k PieceKind) String() string {
	if !k.valid() {
		return pieceNames[0]
	}
	return pieceNames[k]
}

type ChessPiece interface {
	Kind() PieceKind
	GetColor() Color
	Position() Coordinates
	MoveCount() int
	PieceValue() uint32
	PhaseWeight() uint32
	PossibleMoves(board *ChessBoard) []MoveCommand
	CaptureTargets(board *ChessBoard) []Coordinates
	ComputedValue(board *ChessBoard, phase int) int
	ToString() string

	// moved returns the piece standing on to after one more move.
	moved(to Coordinates) ChessPiece
}

// pieceState is what every variant carries: who owns it, where it stands
// and how many times it has moved.
type pieceState struct {
	Color Color
	Pos   Coordinates
	Moves int
}

func (p pieceState) GetColor() Color {
	return p.Color
}

func (p pieceState) Position() Coordinates {
	return p.Pos
}

func (p pieceState) MoveCount() int {
	return p.Moves
}

func (p pieceState) advance(to Coordinates) pieceState {
	return pieceState{Color: p.Color, Pos: to, Moves: p.Moves + 1}
}

func (p pieceState) toString(kind PieceKind) string {
	if p.Color == White {
		return " W " + kind.Symbol() + " "
	}
	return " B " + kind.Symbol() + " "
}

// NewPiece builds a piece of the given kind. It returns nil for NoPieceKind
// or an unknown kind.
func NewPiece(kind PieceKind, color Color, pos Coordinates) ChessPiece {
	return newPiece(kind, pieceState{Color: color, Pos: pos})
}

func newPiece(kind PieceKind, state pieceState) ChessPiece {
	switch kind {
	case PawnKind:
		return Pawn{state}
	case KnightKind:
		return Knight{state}
	case BishopKind:
		return Bishop{state}
	case RookKind:
		return Rook{state}
	case QueenKind:
		return Queen{state}
	case KingKind:
		return King{state}
	}
	return nil
}

var (
	orthogonalDirections = []Coordinates{
		{Row: 1, Col: 0},  // Up
		{Row: -1, Col: 0}, // Down
		{Row: 0, Col: 1},  // Right
		{Row: 0, Col: -1}, // Left
	}
	diagonalDirections = []Coordinates{
		{Row: 1, Col: 1},   // Up-right
		{Row: 1, Col: -1},  // Up-left
		{Row: -1, Col: 1},  // Down-right
		{Row: -1, Col: -1}, // Down-left
	}
	allDirections = append(append([]Coordinates{}, orthogonalDirections...), diagonalDirections...)

	knightOffsets = []Coordinates{
		{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: -1},
		{Row: 1, Col: 2}, {Row: 1, Col: -2}, {Row: -1, Col: 2}, {Row: -1, Col: -2},
	}
)

// slide walks each direction until the board edge, a friendly piece
// (excluded) or an enemy piece (included as a capture).
func slide(board *ChessBoard, from Coordinates, color Color, directions []Coordinates) []MoveCommand {
	var moves []MoveCommand
	for _, direction := range directions {
		for next := from.Offset(direction.Row, direction.Col); board.IsWithinBounds(next); next = next.Offset(direction.Row, direction.Col) {
			if board.IsEmpty(next) {
				moves = append(moves, NewMoveCommand(from, next, Move))
				continue
			}
			if board.IsEnemy(next, color) {
				moves = append(moves, NewMoveCommand(from, next, Capture))
			}
			break
		}
	}
	return moves
}

// step tries each offset once, like a knight or a king.
func step(board *ChessBoard, from Coordinates, color Color, offsets []Coordinates) []MoveCommand {
	var moves []MoveCommand
	for _, offset := range offsets {
		to := from.Offset(offset.Row, offset.Col)
		if !board.IsWithinBounds(to) {
			continue
		}
		if board.IsEmpty(to) {
			moves = append(moves, NewMoveCommand(from, to, Move))
		} else if board.IsEnemy(to, color) {
			moves = append(moves, NewMoveCommand(from, to, Capture))
		}
	}
	return moves
}

// captureTargets keeps the destinations of piece's possible moves that hold
// an enemy piece.
func captureTargets(piece ChessPiece, board *ChessBoard) []Coordinates {
	var targets []Coordinates
	for _, move := range piece.PossibleMoves(board) {
		if board.IsEnemy(move.End, piece.GetColor()) {
			targets = append(targets, move.End)
		}
	}
	return targets
}

func computedValue(piece ChessPiece, phase int) int {
	value := int(piece.PieceValue())
	return Taper(value, value, phase)
}
