package connectfour

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/zucenko/planets/graphics"
	"github.com/zucenko/planets/model"
)

type Kind int8

const (
	PlanetKind Kind = iota
	MessageKind
)

// Face is the frame of the messages sheet to show.
type Face int

const (
	Player1Wins Face = iota
	Player2Wins
	DrawFace
)

func (f Face) Name() string {
	switch f {
	case Player1Wins:
		return "PLAYER_1_WINS"
	case Player2Wins:
		return "PLAYER_2_WINS"
	case DrawFace:
		return "DRAW"
	default:
		return fmt.Sprintf("N/A(%d)", f)
	}
}

// FaceFor maps a finished game to its message.
func FaceFor(o model.Outcome) (Face, bool) {
	switch o {
	case model.BlueWins:
		return Player1Wins, true
	case model.RedWins:
		return Player2Wins, true
	case model.Draw:
		return DrawFace, true
	default:
		return 0, false
	}
}

// Dropper is a planet or a message sliding from start to end.
type Dropper struct {
	Kind   Kind
	Colour model.Colour
	Face   Face

	sprite graphics.Sprite
	start  mgl64.Vec2
	end    mgl64.Vec2
	landed bool
	hidden bool
}

func newDropper(kind Kind, start, end mgl64.Vec2) *Dropper {
	d := &Dropper{Kind: kind, start: start, end: end}
	d.sprite.SetPosition(start)
	return d
}

func NewPlanet(colour model.Colour, animations *graphics.Library, start, end mgl64.Vec2) *Dropper {
	d := newDropper(PlanetKind, start, end)
	d.Colour = colour
	if colour == model.Blue {
		d.sprite.SetAnimation(animations.MustGet(graphics.BluePlanet))
	} else {
		d.sprite.SetAnimation(animations.MustGet(graphics.RedPlanet))
	}
	return d
}

func NewMessage(face Face, animations *graphics.Library, start, end mgl64.Vec2) *Dropper {
	d := newDropper(MessageKind, start, end)
	d.Face = face
	d.sprite.SetAnimation(animations.MustGet(graphics.Messages))
	d.sprite.StopAnimating()
	d.sprite.SetFrame(int(face))
	return d
}

func (d *Dropper) Sprite() *graphics.Sprite {
	return &d.sprite
}

func (d *Dropper) Landed() bool {
	return d.landed
}

// drop builds the tween that moves d linearly to its end position.
func (d *Dropper) drop(seconds float32) (*gween.Tween, *action) {
	a := &action{onChange: d.moveTo}
	a.addOnFinish(d.land)
	return gween.New(0, 1, seconds, ease.Linear), a
}

func (d *Dropper) moveTo(progress float32) {
	d.sprite.SetPosition(d.start.Add(d.end.Sub(d.start).Mul(float64(progress))))
}

func (d *Dropper) land() {
	d.sprite.SetPosition(d.end)
	d.landed = true
}

func (d *Dropper) Update(dt float64) {
	d.sprite.Update(dt)
}

func (d *Dropper) Draw(dst *ebiten.Image) {
	if d.hidden {
		return
	}
	d.sprite.Draw(dst)
}
