package graphics

import (
	_ "embed"
	"fmt"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed shaders/animation.kage
var animationShader []byte

// Loader reads sheets and shader sources relative to Root.
type Loader struct {
	Root string
}

func (l Loader) path(p string) string {
	if l.Root == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(l.Root, p)
}

// Image decodes the file at path into an image usable as a texture.
func (l Loader) Image(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(l.path(path))
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}
	return img, nil
}

// Shader compiles the Kage source at path, or the built-in frame shader
// when path is empty.
func (l Loader) Shader(path string) (*ebiten.Shader, error) {
	src := animationShader
	if path != "" {
		b, err := os.ReadFile(l.path(path))
		if err != nil {
			return nil, fmt.Errorf("read shader %s: %w", path, err)
		}
		src = b
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile shader %q: %w", path, err)
	}
	return shader, nil
}
