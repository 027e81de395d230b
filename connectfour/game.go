package connectfour

import (
	"errors"
	"image"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/planets/graphics"
	"github.com/zucenko/planets/model"
)

// Publisher receives a copy of the state after every accepted placement.
type Publisher interface {
	Publish(s model.Snapshot)
}

type Options struct {
	// DropSeconds is how long a planet or message takes to land.
	DropSeconds float32
	Screen      image.Point
	Layout      Layout
	Rand        *rand.Rand
	Publisher   Publisher
}

// ConnectFour is the game object driven by the host loop: input through
// Listener, then Update, then Draw.
type ConnectFour struct {
	rules      *model.Game
	animations *graphics.Library
	opts       Options

	buttonIDs [model.Size]ButtonPressActionID
	buttons   [model.Size]*Button
	planets   [model.Cells]*Dropper
	message   *Dropper
	lightning []*graphics.Sprite
	tweens    tweens
	mouse     mgl64.Vec2
}

var required = []string{
	graphics.BluePlanet,
	graphics.RedPlanet,
	graphics.AddButton,
	graphics.Messages,
	graphics.Lightning,
}

func New(animations *graphics.Library, opts Options) (*ConnectFour, error) {
	if err := animations.Require(required...); err != nil {
		return nil, err
	}
	if opts.DropSeconds <= 0 {
		return nil, errors.New("drop time must be positive")
	}
	if opts.Layout == (Layout{}) {
		opts.Layout = DefaultLayout
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}

	g := &ConnectFour{
		rules:      model.NewGame(),
		animations: animations,
		opts:       opts,
		tweens:     make(tweens),
	}
	add := animations.MustGet(graphics.AddButton)
	for i := range g.buttons {
		g.buttonIDs[i] = NewButtonPressActionID()
		g.buttons[i] = NewButton(g.buttonIDs[i], opts.Layout.ButtonAt(i), add, opts.Rand)
		g.buttons[i].AddListener(g)
	}
	return g, nil
}

func (g *ConnectFour) Turn() model.Colour {
	return g.rules.Turn()
}

func (g *ConnectFour) Outcome() model.Outcome {
	return g.rules.Outcome()
}

func (g *ConnectFour) Snapshot() model.Snapshot {
	return g.rules.Snapshot()
}

func (g *ConnectFour) Buttons() [model.Size]*Button {
	return g.buttons
}

// Planet returns the dropper occupying p, if any.
func (g *ConnectFour) Planet(p model.Pos) *Dropper {
	return g.planets[p.Cell()]
}

// Message is nil until the game is over.
func (g *ConnectFour) Message() *Dropper {
	return g.message
}

// Lightning returns the bolts drawn along the winning line.
func (g *ConnectFour) Lightning() []*graphics.Sprite {
	return g.lightning
}

func (g *ConnectFour) OnMouseMoved(pos mgl64.Vec2) {
	g.mouse = pos
}

func (g *ConnectFour) OnMouseButtonDown(ebiten.MouseButton, ModifierKeys) {}

func (g *ConnectFour) OnMouseButtonUp(_ ebiten.MouseButton, _ ModifierKeys) {
	for _, b := range g.buttons {
		b.HandleMouseClick(g.mouse)
	}
}

func (g *ConnectFour) ButtonPressed(id ButtonPressActionID) {
	for i, bid := range g.buttonIDs {
		if id == bid {
			g.AddPlanet(i)
			return
		}
	}
}

// AddPlanet drops a planet of the current colour into column. It reports
// false when the game is over or the column is full.
func (g *ConnectFour) AddPlanet(column int) bool {
	// the landing slot is the free row before the planet is placed
	row, ok := g.rules.FreeRow(column)
	if !ok || g.rules.Over() {
		return false
	}
	placement, ok := g.rules.AddPlanet(column)
	if !ok {
		return false
	}

	layout := g.opts.Layout
	d := NewPlanet(placement.Colour, g.animations, layout.ColumnTop(column), layout.Slot(model.Pos{Col: column, Row: row}))
	g.planets[placement.Pos.Cell()] = d
	t, a := d.drop(g.opts.DropSeconds)
	g.tweens[t] = a

	log.WithFields(log.Fields{
		"colour": placement.Colour.Name(),
		"col":    placement.Pos.Col,
		"row":    placement.Pos.Row,
		"placed": g.rules.Placed(),
	}).Debug("planet added")

	if g.rules.Over() {
		g.finish(a)
	}
	if g.opts.Publisher != nil {
		g.opts.Publisher.Publish(g.rules.Snapshot())
	}
	return true
}

// finish creates the message; it starts falling once the last planet has
// landed, and lightning marks the winning line when it arrives.
func (g *ConnectFour) finish(last *action) {
	face, ok := FaceFor(g.rules.Outcome())
	if !ok {
		return
	}
	messages := g.animations.MustGet(graphics.Messages)
	start, end := MessageDrop(g.opts.Screen, messages.Size)
	g.message = NewMessage(face, g.animations, start, end)
	g.message.hidden = true

	t, a := g.message.drop(g.opts.DropSeconds)
	a.addOnFinish(g.strike)
	last.addOnFinish(func() { g.message.hidden = false })
	last.next(t, a)

	log.WithField("face", face.Name()).Info("showing message")
}

func (g *ConnectFour) strike() {
	line, ok := g.rules.WinningLine()
	if !ok {
		return
	}
	bolt := g.animations.MustGet(graphics.Lightning)
	cells := line.Cells()
	for i := 0; i+1 < len(cells); i++ {
		pos, theta := Bolt(g.opts.Layout.Centre(cells[i]), g.opts.Layout.Centre(cells[i+1]), bolt.Size)
		s := &graphics.Sprite{}
		s.SetAnimation(bolt)
		s.RandomiseFrame(g.opts.Rand)
		s.SetPosition(pos)
		s.SetOrientation(theta)
		g.lightning = append(g.lightning, s)
	}
}

func (g *ConnectFour) Update(dt float64) {
	g.tweens.update(g, float32(dt))
	for _, p := range g.planets {
		if p != nil {
			p.Update(dt)
		}
	}
	for _, b := range g.buttons {
		b.Update(dt)
	}
	if g.message != nil {
		g.message.Update(dt)
	}
	for _, s := range g.lightning {
		s.Update(dt)
	}
}

func (g *ConnectFour) Draw(dst *ebiten.Image) {
	for _, p := range g.planets {
		if p != nil {
			p.Draw(dst)
		}
	}
	for _, b := range g.buttons {
		b.Draw(dst)
	}
	if g.message != nil {
		g.message.Draw(dst)
	}
	for _, s := range g.lightning {
		s.Draw(dst)
	}
}
