package components

import (
	"encoding/json"
	"fmt"
)

type pieceSnapshot struct {
	Kind  PieceKind   `json:"kind"`
	Color Color       `json:"color"`
	At    Coordinates `json:"at"`
	Moves int         `json:"moves,omitempty"`
}

type boardSnapshot struct {
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Turn      Color           `json:"turn"`
	Castling  CastlingRights  `json:"castling"`
	EnPassant *Coordinates    `json:"enPassant,omitempty"`
	HalfMoves int             `json:"halfMoves"`
	Pieces    []pieceSnapshot `json:"pieces"`
}

func (cb *ChessBoard) MarshalJSON() ([]byte, error) {
	snapshot := boardSnapshot{
		Width:     cb.width,
		Height:    cb.height,
		Turn:      cb.turn,
		Castling:  cb.castling,
		EnPassant: cb.enPassant,
		HalfMoves: cb.halfMoves,
	}
	for _, piece := range cb.Pieces() {
		snapshot.Pieces = append(snapshot.Pieces, pieceSnapshot{
			Kind:  piece.Kind(),
			Color: piece.GetColor(),
			At:    piece.Position(),
			Moves: piece.MoveCount(),
		})
	}
	return json.Marshal(snapshot)
}

func (cb *ChessBoard) UnmarshalJSON(data []byte) error {
	var snapshot boardSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return err
	}
	board, err := NewChessBoard(snapshot.Width, snapshot.Height)
	if err != nil {
		return err
	}
	for _, p := range snapshot.Pieces {
		if err := board.Place(p.Kind, p.Color, p.At); err != nil {
			return fmt.Errorf("restore %s at %v: %w", p.Kind, p.At, err)
		}
		board.set(p.At, newPiece(p.Kind, pieceState{Color: p.Color, Pos: p.At, Moves: p.Moves}))
	}
	board.turn = snapshot.Turn
	board.castling = snapshot.Castling & AllCastling
	board.halfMoves = snapshot.HalfMoves
	if snapshot.EnPassant != nil {
		if err := board.SetEnPassantTarget(*snapshot.EnPassant); err != nil {
			return err
		}
	}
	*cb = *board
	return nil
}
