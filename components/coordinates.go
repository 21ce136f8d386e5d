package components

import "fmt"

// Row 0 is White's back rank, Col 0 is the a-file.
type Coordinates struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coordinates) Offset(dRow, dCol int) Coordinates {
	return Coordinates{Row: c.Row + dRow, Col: c.Col + dCol}
}

func (c Coordinates) String() string {
	if c.Row >= 0 && c.Row < 8 && c.Col >= 0 && c.Col < 8 {
		return fmt.Sprintf("%c%d", 'a'+c.Col, c.Row+1)
	}
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
