package graphics

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

var ErrFrameGeometry = errors.New("frame geometry does not tile the sheet")

// quad is drawn as the triangle strip 0-1-2-3.
var quad = []uint16{0, 1, 2, 1, 2, 3}

// Frames describes how a sprite sheet is cut into equally sized frames.
type Frames struct {
	Size    image.Point
	Count   int
	Period  float64 // seconds each frame stays on screen
	Columns int
}

// NewFrames checks that count frames of size fit the sheet exactly.
func NewFrames(sheet, size image.Point, count int, period float64) (Frames, error) {
	switch {
	case size.X <= 0 || size.Y <= 0:
		return Frames{}, fmt.Errorf("%w: frame size %v", ErrFrameGeometry, size)
	case count <= 0:
		return Frames{}, fmt.Errorf("%w: frame count %d", ErrFrameGeometry, count)
	case period <= 0:
		return Frames{}, fmt.Errorf("%w: period %v", ErrFrameGeometry, period)
	case sheet.X%size.X != 0 || sheet.Y%size.Y != 0:
		return Frames{}, fmt.Errorf("%w: sheet %v is not a multiple of frame %v", ErrFrameGeometry, sheet, size)
	}
	columns := sheet.X / size.X
	rows := sheet.Y / size.Y
	if columns == 0 || rows == 0 {
		return Frames{}, fmt.Errorf("%w: sheet %v smaller than frame %v", ErrFrameGeometry, sheet, size)
	}
	if needed := (count + columns - 1) / columns; needed > rows {
		return Frames{}, fmt.Errorf("%w: %d frames need %d rows, sheet has %d", ErrFrameGeometry, count, needed, rows)
	}
	return Frames{Size: size, Count: count, Period: period, Columns: columns}, nil
}

// Animation is a sprite sheet plus the shader that draws one of its frames.
// An Animation is shared read-only by every Sprite that plays it.
type Animation struct {
	Frames

	sheet    *ebiten.Image
	shader   *ebiten.Shader
	vertices [4]ebiten.Vertex
}

func NewAnimation(sheet *ebiten.Image, shader *ebiten.Shader, size image.Point, count int, period float64) (*Animation, error) {
	frames, err := NewFrames(sheet.Bounds().Size(), size, count, period)
	if err != nil {
		return nil, err
	}
	a := &Animation{Frames: frames, sheet: sheet, shader: shader}

	w, h := float32(size.X), float32(size.Y)
	for i, corner := range [4][2]float32{{0, 0}, {0, h}, {w, 0}, {w, h}} {
		a.vertices[i] = ebiten.Vertex{
			SrcX: corner[0], SrcY: corner[1],
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}
	return a, nil
}

// Draw renders frame with its top-left corner at position, rotated by
// orientation radians around that corner.
func (a *Animation) Draw(dst *ebiten.Image, frame int, position mgl64.Vec2, orientation float64) {
	if frame < 0 || frame >= a.Count {
		panic(fmt.Sprintf("graphics: frame %d out of range [0,%d)", frame, a.Count))
	}
	if a.sheet == nil || dst == nil {
		return
	}

	var geo ebiten.GeoM
	geo.Rotate(orientation)
	geo.Translate(position.X(), position.Y())

	vs := a.vertices
	for i := range vs {
		x, y := geo.Apply(float64(vs[i].SrcX), float64(vs[i].SrcY))
		vs[i].DstX, vs[i].DstY = float32(x), float32(y)
	}

	op := &ebiten.DrawTrianglesShaderOptions{}
	op.Images[0] = a.sheet
	op.Uniforms = map[string]any{
		"Frame":     float32(frame),
		"FrameSize": []float32{float32(a.Size.X), float32(a.Size.Y)},
		"Columns":   float32(a.Columns),
	}
	dst.DrawTrianglesShader(vs[:], quad, a.shader, op)
}

// Dispose releases the sheet. The shader belongs to the Library.
func (a *Animation) Dispose() {
	if a.sheet != nil {
		a.sheet.Deallocate()
		a.sheet = nil
	}
}
