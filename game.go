package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"

	"github.com/zucenko/planets/connectfour"
	"github.com/zucenko/planets/graphics"
	"github.com/zucenko/planets/model"
)

var background = color.RGBA{12, 12, 30, 255}

// Game adapts ConnectFour to the ebiten loop.
type Game struct {
	board  *connectfour.ConnectFour
	input  *Dispatcher
	panel  *graphics.NinePatch
	status *graphics.Label
	width  int
	height int
	dt     float64
}

func NewGame(board *connectfour.ConnectFour, source InputSource, face font.Face, panel *graphics.NinePatch, width, height, tps int) *Game {
	g := &Game{
		board:  board,
		input:  NewDispatcher(source, board),
		panel:  panel,
		status: graphics.NewLabel(face, color.White),
		width:  width,
		height: height,
		dt:     1 / float64(tps),
	}
	if panel != nil {
		r := connectfour.DefaultLayout.Board().Inset(-6)
		panel.SetPosition(r.Min.X, r.Min.Y)
		panel.SetSize(r.Dx(), r.Dy())
	}
	right := connectfour.DefaultLayout.Board().Max.X
	g.status.X, g.status.Y = float64(right+24), 24
	g.status.SetText(statusText(board.Turn(), board.Outcome()))
	return g
}

func statusText(turn model.Colour, outcome model.Outcome) string {
	switch outcome {
	case model.BlueWins:
		return "BLUE wins"
	case model.RedWins:
		return "RED wins"
	case model.Draw:
		return "Draw"
	default:
		return fmt.Sprintf("%s to move", turn.Name())
	}
}

func (g *Game) Update() error {
	g.input.Poll()
	g.board.Update(g.dt)
	g.status.SetText(statusText(g.board.Turn(), g.board.Outcome()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if g.panel != nil {
		g.panel.Draw(screen)
	}
	g.board.Draw(screen)
	g.status.Draw(screen)
	ebitenutil.DebugPrintAt(screen, g.board.Outcome().Name(), g.width-100, g.height-16)
}

func (g *Game) Layout(int, int) (int, int) {
	return g.width, g.height
}
