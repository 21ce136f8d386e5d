package components

import "math/rand"

const maxSquares = MaxBoardSize * MaxBoardSize

var (
	sideKey        uint64
	enPassantKey   [MaxBoardSize]uint64
	castlingKey    [16]uint64
	pieceSquareKey [2][KingKind + 1][maxSquares]uint64
)

func init() {
	var r = rand.New(rand.NewSource(0))
	sideKey = r.Uint64()
	for i := range enPassantKey {
		enPassantKey[i] = r.Uint64()
	}
	for color := range pieceSquareKey {
		for kind := range pieceSquareKey[color] {
			for sq := range pieceSquareKey[color][kind] {
				pieceSquareKey[color][kind][sq] = r.Uint64()
			}
		}
	}

	var castle [4]uint64
	for i := range castle {
		castle[i] = r.Uint64()
	}
	for i := range castlingKey {
		for j := 0; j < len(castle); j++ {
			if i&(1<<uint(j)) != 0 {
				castlingKey[i] ^= castle[j]
			}
		}
	}
}

// Hash is the Zobrist key of the position: pieces, side to move, castling
// rights and en passant file. Equal positions hash equally regardless of
// the moves that led to them.
func (cb *ChessBoard) Hash() uint64 {
	var result uint64
	if cb.turn == Black {
		result ^= sideKey
	}
	result ^= castlingKey[cb.castling&AllCastling]
	if cb.enPassant != nil {
		result ^= enPassantKey[cb.enPassant.Col]
	}
	for i, piece := range cb.cells {
		if piece != nil {
			result ^= pieceSquareKey[piece.GetColor()][piece.Kind()][i]
		}
	}
	return result
}
