package graphics

import (
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// NewFace parses the built-in Go font at size points.
func NewFace(size float64) (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:       size,
		DPI:        dpi,
		SubPixelsX: 100,
		Hinting:    font.HintingFull,
	}), nil
}

// Label caches rendered text and only redraws it when the text changes.
type Label struct {
	face   font.Face
	colour color.Color
	text   string
	image  *ebiten.Image
	X, Y   float64
}

func NewLabel(face font.Face, colour color.Color) *Label {
	return &Label{face: face, colour: colour}
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) SetText(s string) {
	if s == l.text && l.image != nil {
		return
	}
	l.text = s
	if l.image != nil {
		l.image.Deallocate()
		l.image = nil
	}
	if s == "" {
		return
	}
	b := text.BoundString(l.face, s)
	l.image = ebiten.NewImage(b.Dx()+2, b.Dy()+2)
	text.Draw(l.image, s, l.face, 1-b.Min.X, 1-b.Min.Y, l.colour)
}

func (l *Label) Draw(screen *ebiten.Image) {
	if l.image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(l.X, l.Y)
	screen.DrawImage(l.image, op)
}
