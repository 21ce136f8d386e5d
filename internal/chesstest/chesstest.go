// Package chesstest builds boards from FEN strings and lists reference
// moves for them, using github.com/notnil/chess as an independent move
// generator.
package chesstest

import (
	"fmt"
	"sort"

	"github.com/LIAMBB/chess-compute-core/components"
	"github.com/notnil/chess"
)

// Well known perft positions.
const (
	StartFEN     = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

var pieceKinds = map[chess.PieceType]components.PieceKind{
	chess.Pawn:   components.PawnKind,
	chess.Knight: components.KnightKind,
	chess.Bishop: components.BishopKind,
	chess.Rook:   components.RookKind,
	chess.Queen:  components.QueenKind,
	chess.King:   components.KingKind,
}

func position(fen string) (*chess.Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	return chess.NewGame(opt).Position(), nil
}

// BoardFromFEN places the pieces, side to move, castling rights and en
// passant square of fen on an 8x8 board.
func BoardFromFEN(fen string) (*components.ChessBoard, error) {
	pos, err := position(fen)
	if err != nil {
		return nil, err
	}

	board, err := components.NewChessBoard(8, 8)
	if err != nil {
		return nil, err
	}
	for sq, piece := range pos.Board().SquareMap() {
		color := components.White
		if piece.Color() == chess.Black {
			color = components.Black
		}
		at := components.Coordinates{Row: int(sq.Rank()), Col: int(sq.File())}
		if err := board.Place(pieceKinds[piece.Type()], color, at); err != nil {
			return nil, err
		}
	}

	if pos.Turn() == chess.Black {
		board.SetPlayerTurn(components.Black)
	}

	rights := components.NoCastling
	castle := pos.CastleRights()
	if castle.CanCastle(chess.White, chess.KingSide) {
		rights |= components.WhiteKingSide
	}
	if castle.CanCastle(chess.White, chess.QueenSide) {
		rights |= components.WhiteQueenSide
	}
	if castle.CanCastle(chess.Black, chess.KingSide) {
		rights |= components.BlackKingSide
	}
	if castle.CanCastle(chess.Black, chess.QueenSide) {
		rights |= components.BlackQueenSide
	}
	board.SetCastlingRights(rights)

	if ep := pos.EnPassantSquare(); ep != chess.NoSquare {
		target := components.Coordinates{Row: int(ep.Rank()), Col: int(ep.File())}
		if err := board.SetEnPassantTarget(target); err != nil {
			return nil, err
		}
	}
	return board, nil
}

// ReferenceMoves lists the legal moves of fen in UCI notation, sorted.
func ReferenceMoves(fen string) ([]string, error) {
	pos, err := position(fen)
	if err != nil {
		return nil, err
	}
	var moves []string
	for _, move := range pos.ValidMoves() {
		moves = append(moves, move.String())
	}
	sort.Strings(moves)
	return moves, nil
}

// ChildFENs lists the FEN of every position one legal move after fen.
func ChildFENs(fen string) ([]string, error) {
	pos, err := position(fen)
	if err != nil {
		return nil, err
	}
	var children []string
	for _, move := range pos.ValidMoves() {
		children = append(children, pos.Update(move).String())
	}
	return children, nil
}

// MoveStrings renders moves in UCI notation, sorted.
func MoveStrings(moves []components.MoveCommand) []string {
	out := make([]string, 0, len(moves))
	for _, move := range moves {
		out = append(out, move.String())
	}
	sort.Strings(out)
	return out
}
