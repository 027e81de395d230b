package graphics

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// NinePatch stretches a panel image to any size while keeping its corners
// unscaled. The source is cut at Cuts: {x0,y0} {x1,y1} {x2,y2} {x3,y3}
// are the left/top edge, the two inner cut lines and the right/bottom edge.
type NinePatch struct {
	image   *ebiten.Image
	Alpha   float32
	R, G, B float32
	Scale   float64
	Cuts    [4][2]int
	x, y    int
	w, h    int
	centerX float64
	centerY float64
	targets [3][2]float64
}

// NewNinePatch cuts img with the same inset on every side.
func NewNinePatch(img *ebiten.Image, inset int, scale float64) *NinePatch {
	b := img.Bounds()
	return &NinePatch{
		image: img,
		Alpha: 1, R: 1, G: 1, B: 1,
		Scale: scale,
		Cuts: [4][2]int{
			{b.Min.X, b.Min.Y},
			{b.Min.X + inset, b.Min.Y + inset},
			{b.Max.X - inset, b.Max.Y - inset},
			{b.Max.X, b.Max.Y},
		},
	}
}

func (n *NinePatch) SetPosition(x, y int) {
	n.x = x
	n.y = y
	n.layout()
}

func (n *NinePatch) SetSize(width, height int) {
	n.w = width
	n.h = height
	n.layout()
}

// Bounds is the screen rectangle the panel covers.
func (n *NinePatch) Bounds() image.Rectangle {
	return image.Rect(n.x, n.y, n.x+n.w, n.y+n.h)
}

func (n *NinePatch) layout() {
	c := n.Cuts
	n.targets[0] = [2]float64{float64(n.x), float64(n.y)}
	n.targets[1] = [2]float64{
		float64(n.x) + n.Scale*float64(c[1][0]-c[0][0]),
		float64(n.y) + n.Scale*float64(c[1][1]-c[0][1]),
	}
	n.targets[2] = [2]float64{
		float64(n.x+n.w) - n.Scale*float64(c[3][0]-c[2][0]),
		float64(n.y+n.h) - n.Scale*float64(c[3][1]-c[2][1]),
	}

	innerW := n.targets[2][0] - n.targets[1][0]
	innerH := n.targets[2][1] - n.targets[1][1]
	n.centerX = innerW / float64(c[2][0]-c[1][0])
	n.centerY = innerH / float64(c[2][1]-c[1][1])
}

func (n *NinePatch) Draw(screen *ebiten.Image) {
	if n.image == nil {
		return
	}
	scales := [3][2]float64{
		{n.Scale, n.Scale},
		{n.centerX, n.centerY},
		{n.Scale, n.Scale},
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			src := image.Rect(n.Cuts[col][0], n.Cuts[row][1], n.Cuts[col+1][0], n.Cuts[row+1][1])
			if src.Empty() {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scales[col][0], scales[row][1])
			op.GeoM.Translate(n.targets[col][0], n.targets[row][1])
			op.ColorScale.Scale(n.R, n.G, n.B, n.Alpha)
			screen.DrawImage(n.image.SubImage(src).(*ebiten.Image), op)
		}
	}
}
