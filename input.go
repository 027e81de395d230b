package main

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/zucenko/planets/connectfour"
)

// InputSource is the device state polled once per tick.
type InputSource interface {
	CursorPosition() (int, int)
	IsMouseButtonJustPressed(b ebiten.MouseButton) bool
	IsMouseButtonJustReleased(b ebiten.MouseButton) bool
	IsKeyPressed(k ebiten.Key) bool
	// JustReleasedTouches returns where touches ended this tick.
	JustReleasedTouches() []image.Point
}

// EbitenInput reads mouse, keyboard and touch state from ebiten.
type EbitenInput struct {
	touches []ebiten.TouchID
}

func (e *EbitenInput) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (e *EbitenInput) IsMouseButtonJustPressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

func (e *EbitenInput) IsMouseButtonJustReleased(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(b)
}

func (e *EbitenInput) IsKeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (e *EbitenInput) JustReleasedTouches() []image.Point {
	e.touches = inpututil.AppendJustReleasedTouchIDs(e.touches[:0])
	points := make([]image.Point, 0, len(e.touches))
	for _, id := range e.touches {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		points = append(points, image.Pt(x, y))
	}
	return points
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Dispatcher turns polled input into listener callbacks: moves first, then
// presses, then releases. A finished touch counts as a left click where it
// was lifted.
type Dispatcher struct {
	source   InputSource
	listener connectfour.Listener
	x, y     int
	seen     bool
}

func NewDispatcher(source InputSource, listener connectfour.Listener) *Dispatcher {
	return &Dispatcher{source: source, listener: listener}
}

func (d *Dispatcher) modifiers() connectfour.ModifierKeys {
	return connectfour.ModifierKeys{
		Shift:   d.source.IsKeyPressed(ebiten.KeyShift),
		Control: d.source.IsKeyPressed(ebiten.KeyControl),
		Alt:     d.source.IsKeyPressed(ebiten.KeyAlt),
		Super:   d.source.IsKeyPressed(ebiten.KeyMeta),
	}
}

func (d *Dispatcher) moveTo(x, y int) {
	if d.seen && x == d.x && y == d.y {
		return
	}
	d.x, d.y, d.seen = x, y, true
	d.listener.OnMouseMoved(mgl64.Vec2{float64(x), float64(y)})
}

// Poll delivers everything that happened since the previous tick.
func (d *Dispatcher) Poll() {
	d.moveTo(d.source.CursorPosition())

	mods := d.modifiers()
	for _, b := range mouseButtons {
		if d.source.IsMouseButtonJustPressed(b) {
			d.listener.OnMouseButtonDown(b, mods)
		}
	}
	for _, b := range mouseButtons {
		if d.source.IsMouseButtonJustReleased(b) {
			d.listener.OnMouseButtonUp(b, mods)
		}
	}
	for _, p := range d.source.JustReleasedTouches() {
		d.moveTo(p.X, p.Y)
		d.listener.OnMouseButtonUp(ebiten.MouseButtonLeft, mods)
	}
}
