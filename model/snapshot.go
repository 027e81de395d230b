package model

import "strings"

// Snapshot is what spectators receive after every accepted placement.
type Snapshot struct {
	Board   Board
	Turn    Colour
	Placed  int
	Outcome Outcome
	Line    *Line `json:",omitempty"`
}

// ASCII renders the board top row first, one line per row:
// '.' empty, 'B' blue, 'R' red.
func (s Snapshot) ASCII() string {
	var sb strings.Builder
	for row := Size - 1; row >= 0; row-- {
		for col := 0; col < Size; col++ {
			switch s.Board.At(Pos{col, row}) {
			case Blue:
				sb.WriteByte('B')
			case Red:
				sb.WriteByte('R')
			default:
				sb.WriteByte('.')
			}
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
