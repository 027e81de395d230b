package model

import (
	log "github.com/sirupsen/logrus"
)

// Placement describes an accepted move.
type Placement struct {
	Pos    Pos
	Colour Colour
}

type Game struct {
	board   Board
	turn    Colour
	placed  int
	outcome Outcome
	line    Line
}

// NewGame returns an empty board with BLUE to move.
func NewGame() *Game {
	return &Game{turn: Blue}
}

func (g *Game) Board() Board {
	return g.board
}

func (g *Game) At(p Pos) Colour {
	return g.board.At(p)
}

func (g *Game) Turn() Colour {
	return g.turn
}

func (g *Game) Placed() int {
	return g.placed
}

func (g *Game) Outcome() Outcome {
	return g.outcome
}

func (g *Game) Over() bool {
	return g.outcome.Terminal()
}

// WinningLine returns the completed line once somebody has won.
func (g *Game) WinningLine() (Line, bool) {
	if g.outcome != BlueWins && g.outcome != RedWins {
		return Line{}, false
	}
	return g.line, true
}

// FreeRow returns the lowest empty row of column, or false if the column is full.
func (g *Game) FreeRow(column int) (int, bool) {
	if column < 0 || column >= Size {
		return 0, false
	}
	for row := 0; row < Size; row++ {
		if g.board.At(Pos{column, row}) == None {
			return row, true
		}
	}
	return 0, false
}

// AddPlanet drops a planet of the current colour into column.
// Moves into a full column, an invalid column or a finished game are ignored.
func (g *Game) AddPlanet(column int) (Placement, bool) {
	if g.Over() {
		return Placement{}, false
	}
	row, ok := g.FreeRow(column)
	if !ok {
		return Placement{}, false
	}

	p := Placement{Pos: Pos{column, row}, Colour: g.turn}
	g.board[p.Pos.Cell()] = g.turn
	g.placed++
	g.turn = g.turn.Opponent()

	g.victory()
	return p, true
}

// CheckWon looks for a completed line of colour.
func (g *Game) CheckWon(colour Colour) (Line, bool) {
	for _, l := range Lines {
		if g.checkLine(l, colour) {
			return l, true
		}
	}
	return Line{}, false
}

func (g *Game) checkLine(l Line, colour Colour) bool {
	for _, p := range l.Cells() {
		if g.board.At(p) != colour {
			return false
		}
	}
	return true
}

func (g *Game) victory() {
	blue, blueWon := g.CheckWon(Blue)
	red, redWon := g.CheckWon(Red)
	if blueWon && redWon {
		log.Panicf("both players completed a line after %d placements", g.placed)
	}

	switch {
	case blueWon:
		g.outcome, g.line = BlueWins, blue
	case redWon:
		g.outcome, g.line = RedWins, red
	case g.placed == Cells:
		g.outcome = Draw
	}
	if g.outcome.Terminal() {
		log.WithFields(log.Fields{
			"outcome": g.outcome.Name(),
			"placed":  g.placed,
		}).Info("game over")
	}
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Board:   g.board,
		Turn:    g.turn,
		Placed:  g.placed,
		Outcome: g.outcome,
	}
	if l, ok := g.WinningLine(); ok {
		s.Line = &l
	}
	return s
}
