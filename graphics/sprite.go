package graphics

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite plays an Animation at a position. The zero value has no animation
// and draws nothing.
type Sprite struct {
	animation   *Animation
	position    mgl64.Vec2
	orientation float64
	frame       int
	elapsed     float64
	stopped     bool
}

// SetAnimation switches the animation and rewinds to the first frame.
func (s *Sprite) SetAnimation(a *Animation) {
	s.animation = a
	s.elapsed = 0
	s.frame = 0
}

func (s *Sprite) Animation() *Animation {
	return s.animation
}

func (s *Sprite) Position() mgl64.Vec2 {
	return s.position
}

func (s *Sprite) SetPosition(p mgl64.Vec2) {
	s.position = p
}

func (s *Sprite) Orientation() float64 {
	return s.orientation
}

func (s *Sprite) SetOrientation(radians float64) {
	s.orientation = radians
}

func (s *Sprite) Frame() int {
	return s.frame
}

// SetFrame shows frame; it must be within the animation's frame count.
func (s *Sprite) SetFrame(frame int) {
	s.frame = frame
}

// RandomiseFrame starts the sprite on a random frame so that sprites
// sharing an animation do not move in lockstep.
func (s *Sprite) RandomiseFrame(rng *rand.Rand) {
	if s.animation == nil {
		return
	}
	s.frame = rng.Intn(s.animation.Count)
}

// StopAnimating freezes the current frame.
func (s *Sprite) StopAnimating() {
	s.stopped = true
}

func (s *Sprite) Animating() bool {
	return !s.stopped
}

// Update advances the frame by as many periods as dt covers.
func (s *Sprite) Update(dt float64) {
	if s.animation == nil || s.stopped {
		return
	}
	s.elapsed += dt
	for s.elapsed >= s.animation.Period {
		s.elapsed -= s.animation.Period
		s.frame = (s.frame + 1) % s.animation.Count
	}
}

func (s *Sprite) Draw(dst *ebiten.Image) {
	if s.animation == nil {
		return
	}
	s.animation.Draw(dst, s.frame, s.position, s.orientation)
}

// Contains reports whether point lies inside the frame rectangle, edges
// included. Orientation is ignored.
func (s *Sprite) Contains(point mgl64.Vec2) bool {
	if s.animation == nil {
		return false
	}
	rel := point.Sub(s.position)
	size := s.animation.Size
	return rel.X() >= 0 && rel.Y() >= 0 &&
		rel.X() <= float64(size.X) && rel.Y() <= float64(size.Y)
}
