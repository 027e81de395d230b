package graphics

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

// Animation names the game asks for.
const (
	BluePlanet = "blue-planet"
	RedPlanet  = "red-planet"
	Lightning  = "lightning"
	AddButton  = "add-button"
	Messages   = "messages"
)

var ErrUnknownAnimation = errors.New("unknown animation")

// Def describes one animation to load.
type Def struct {
	Texture     string
	FrameWidth  int
	FrameHeight int
	Frames      int
	Period      float64
}

// Library owns the animations shared by every sprite of the game.
type Library struct {
	names      []string
	animations map[string]*Animation
	shader     *ebiten.Shader
}

// NewLibrary wraps animations that were built elsewhere.
func NewLibrary(animations map[string]*Animation) *Library {
	l := &Library{animations: make(map[string]*Animation, len(animations))}
	for name, a := range animations {
		l.names = append(l.names, name)
		l.animations[name] = a
	}
	sort.Strings(l.names)
	return l
}

// LoadLibrary loads every def with one shared shader. Any failure is fatal
// for the caller; whatever was loaded so far is released.
func LoadLibrary(loader Loader, shaderPath string, defs map[string]Def) (*Library, error) {
	shader, err := loader.Shader(shaderPath)
	if err != nil {
		return nil, err
	}
	l := &Library{animations: make(map[string]*Animation, len(defs)), shader: shader}

	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := defs[name]
		sheet, err := loader.Image(def.Texture)
		if err != nil {
			l.Dispose()
			return nil, fmt.Errorf("animation %s: %w", name, err)
		}
		a, err := NewAnimation(sheet, shader, image.Pt(def.FrameWidth, def.FrameHeight), def.Frames, def.Period)
		if err != nil {
			sheet.Deallocate()
			l.Dispose()
			return nil, fmt.Errorf("animation %s (%s): %w", name, def.Texture, err)
		}
		l.names = append(l.names, name)
		l.animations[name] = a
		log.WithFields(log.Fields{
			"animation": name,
			"frames":    a.Count,
			"columns":   a.Columns,
			"period":    a.Period,
		}).Debug("animation loaded")
	}
	return l, nil
}

func (l *Library) Get(name string) (*Animation, error) {
	a, ok := l.animations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAnimation, name)
	}
	return a, nil
}

// Require fails on the first name that was not loaded.
func (l *Library) Require(names ...string) error {
	for _, name := range names {
		if _, err := l.Get(name); err != nil {
			return err
		}
	}
	return nil
}

// MustGet is Get for names already checked with Require.
func (l *Library) MustGet(name string) *Animation {
	a, err := l.Get(name)
	if err != nil {
		panic(err)
	}
	return a
}

// Dispose releases sheets in reverse load order, then the shader.
func (l *Library) Dispose() {
	for i := len(l.names) - 1; i >= 0; i-- {
		l.animations[l.names[i]].Dispose()
	}
	l.names = nil
	l.animations = map[string]*Animation{}
	if l.shader != nil {
		l.shader.Deallocate()
		l.shader = nil
	}
}
