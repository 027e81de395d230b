package connectfour

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/zucenko/planets/model"
)

// Layout places the board on screen. Row 0 sits at Bottom and higher rows
// stack upwards by Cell pixels.
type Layout struct {
	Left   float64
	Cell   float64
	Bottom float64
}

var DefaultLayout = Layout{Left: 10, Cell: 64, Bottom: 202}

// ColumnTop is where new planets of column start falling.
func (l Layout) ColumnTop(column int) mgl64.Vec2 {
	return mgl64.Vec2{l.Left + l.Cell*float64(column), 0}
}

// Slot is the top-left corner of a cell.
func (l Layout) Slot(p model.Pos) mgl64.Vec2 {
	return mgl64.Vec2{
		l.Left + l.Cell*float64(p.Col),
		l.Bottom - l.Cell*float64(p.Row),
	}
}

// Centre is the middle of a cell.
func (l Layout) Centre(p model.Pos) mgl64.Vec2 {
	return l.Slot(p).Add(mgl64.Vec2{l.Cell / 2, l.Cell / 2})
}

// ButtonAt is the position of the add button under column.
func (l Layout) ButtonAt(column int) mgl64.Vec2 {
	return l.Slot(model.Pos{Col: column}).Add(mgl64.Vec2{0, l.Cell})
}

// Board is the screen rectangle covered by cells and buttons.
func (l Layout) Board() image.Rectangle {
	top := l.Slot(model.Pos{Row: model.Size - 1})
	return image.Rect(
		int(l.Left), int(top.Y()),
		int(l.Left+l.Cell*model.Size), int(l.Bottom+2*l.Cell),
	)
}

// MessageDrop centres a message of size horizontally, falling from the top
// edge to just above the middle of screen.
func MessageDrop(screen, size image.Point) (start, end mgl64.Vec2) {
	x := float64(screen.X-size.X) / 2
	y := float64(screen.Y-size.Y)/2 - float64(size.Y)
	return mgl64.Vec2{x, 0}, mgl64.Vec2{x, y}
}

// Bolt returns the position and orientation that centre a sprite of size
// on the segment from a to b, rotated along it.
func Bolt(a, b mgl64.Vec2, size image.Point) (mgl64.Vec2, float64) {
	d := b.Sub(a)
	theta := math.Atan2(d.Y(), d.X())
	mid := a.Add(d.Mul(0.5))
	hw, hh := float64(size.X)/2, float64(size.Y)/2
	sin, cos := math.Sincos(theta)
	offset := mgl64.Vec2{cos*hw - sin*hh, sin*hw + cos*hh}
	return mid.Sub(offset), theta
}
