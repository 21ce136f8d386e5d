package components

type Color int8

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Sign is +1 for White and -1 for Black. Scores are always from White's side.
func (c Color) Sign() int {
	if c == White {
		return 1
	}
	return -1
}

// Forward is the row direction pawns of this color advance in.
func (c Color) Forward() int {
	return c.Sign()
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}
