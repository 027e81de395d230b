package connectfour

import (
	"math/rand"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zucenko/planets/graphics"
)

var lastButtonID atomic.Int64

// ButtonPressActionID tells listeners which button was pressed.
type ButtonPressActionID struct {
	id int64
}

// NewButtonPressActionID returns an ID different from every other one.
func NewButtonPressActionID() ButtonPressActionID {
	return ButtonPressActionID{id: lastButtonID.Add(1)}
}

type ButtonPressListener interface {
	ButtonPressed(id ButtonPressActionID)
}

type Button struct {
	id        ButtonPressActionID
	sprite    graphics.Sprite
	listeners []ButtonPressListener
}

func NewButton(id ButtonPressActionID, position mgl64.Vec2, animation *graphics.Animation, rng *rand.Rand) *Button {
	b := &Button{id: id}
	b.sprite.SetPosition(position)
	b.sprite.SetAnimation(animation)
	b.sprite.RandomiseFrame(rng)
	return b
}

func (b *Button) ID() ButtonPressActionID {
	return b.id
}

func (b *Button) Sprite() *graphics.Sprite {
	return &b.sprite
}

func (b *Button) AddListener(l ButtonPressListener) {
	b.listeners = append(b.listeners, l)
}

// HandleMouseClick notifies every listener, in registration order, when
// point hits the button.
func (b *Button) HandleMouseClick(point mgl64.Vec2) bool {
	if !b.sprite.Contains(point) {
		return false
	}
	for _, l := range b.listeners {
		l.ButtonPressed(b.id)
	}
	return true
}

func (b *Button) Update(dt float64) {
	b.sprite.Update(dt)
}

func (b *Button) Draw(dst *ebiten.Image) {
	b.sprite.Draw(dst)
}
