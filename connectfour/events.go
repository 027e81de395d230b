package connectfour

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// ModifierKeys are the modifiers held when a mouse button changed state.
type ModifierKeys struct {
	Shift   bool
	Control bool
	Alt     bool
	Super   bool
}

// Listener receives input from the window, always before the next Update.
type Listener interface {
	OnMouseMoved(pos mgl64.Vec2)
	OnMouseButtonDown(button ebiten.MouseButton, mods ModifierKeys)
	OnMouseButtonUp(button ebiten.MouseButton, mods ModifierKeys)
}
