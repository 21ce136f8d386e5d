package components

type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

func kingSideRight(color Color) CastlingRights {
	if color == White {
		return WhiteKingSide
	}
	return BlackKingSide
}

func queenSideRight(color Color) CastlingRights {
	if color == White {
		return WhiteQueenSide
	}
	return BlackQueenSide
}

func (r CastlingRights) Has(right CastlingRights) bool {
	return r&right == right
}

// Any reports whether color may still castle on either side.
func (r CastlingRights) Any(color Color) bool {
	return r&(kingSideRight(color)|queenSideRight(color)) != 0
}

func (r CastlingRights) Without(rights CastlingRights) CastlingRights {
	return r &^ rights
}

func (r CastlingRights) String() string {
	if r == NoCastling {
		return "-"
	}
	s := ""
	if r.Has(WhiteKingSide) {
		s += "K"
	}
	if r.Has(WhiteQueenSide) {
		s += "Q"
	}
	if r.Has(BlackKingSide) {
		s += "k"
	}
	if r.Has(BlackQueenSide) {
		s += "q"
	}
	return s
}
