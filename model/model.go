package model

import "fmt"

// Size is the number of columns and rows of the board.
const Size = 4

// Cells is the number of cells on the board.
const Cells = Size * Size

type Colour int8

const (
	None Colour = iota
	Blue
	Red
)

func (c Colour) Name() string {
	switch c {
	case None:
		return "NONE"
	case Blue:
		return "BLUE"
	case Red:
		return "RED"
	default:
		return fmt.Sprintf("N/A(%d)", c)
	}
}

// Opponent returns the colour that moves after c.
func (c Colour) Opponent() Colour {
	if c == Red {
		return Blue
	}
	return Red
}

type Outcome int8

const (
	InProgress Outcome = iota
	BlueWins
	RedWins
	Draw
)

func (o Outcome) Name() string {
	switch o {
	case InProgress:
		return "IN_PROGRESS"
	case BlueWins:
		return "BLUE_WINS"
	case RedWins:
		return "RED_WINS"
	case Draw:
		return "DRAW"
	default:
		return fmt.Sprintf("N/A(%d)", o)
	}
}

// Terminal reports whether no further placement is accepted.
func (o Outcome) Terminal() bool {
	return o != InProgress
}

// Pos addresses a cell by column and row, row 0 being the bottom row.
type Pos struct {
	Col, Row int
}

func (p Pos) Cell() int {
	return p.Row*Size + p.Col
}

func (p Pos) add(step Pos) Pos {
	return Pos{Col: p.Col + step.Col, Row: p.Row + step.Row}
}

// Line is a run of Size cells starting at Start and moving by Step.
type Line struct {
	Start Pos
	Step  Pos
}

// Cells lists the positions covered by the line.
func (l Line) Cells() [Size]Pos {
	var out [Size]Pos
	p := l.Start
	for i := range out {
		out[i] = p
		p = p.add(l.Step)
	}
	return out
}

// Lines are the 4 rows, 4 columns and 2 diagonals a player can complete.
var Lines = func() []Line {
	lines := make([]Line, 0, 2*Size+2)
	for i := 0; i < Size; i++ {
		lines = append(lines, Line{Start: Pos{0, i}, Step: Pos{1, 0}})
	}
	for i := 0; i < Size; i++ {
		lines = append(lines, Line{Start: Pos{i, 0}, Step: Pos{0, 1}})
	}
	return append(lines,
		Line{Start: Pos{0, 0}, Step: Pos{1, 1}},
		Line{Start: Pos{0, Size - 1}, Step: Pos{1, -1}},
	)
}()

// Board is the row-major grid of planets.
type Board [Cells]Colour

func (b Board) At(p Pos) Colour {
	return b[p.Cell()]
}

// Full reports whether no empty cell is left.
func (b Board) Full() bool {
	for _, c := range b {
		if c == None {
			return false
		}
	}
	return true
}
