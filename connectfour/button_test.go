package connectfour

import (
	"image"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pressLog struct {
	name  string
	calls *[]string
	ids   []ButtonPressActionID
}

func (p *pressLog) ButtonPressed(id ButtonPressActionID) {
	p.ids = append(p.ids, id)
	*p.calls = append(*p.calls, p.name)
}

func TestButtonPressActionID(t *testing.T) {
	a := NewButtonPressActionID()
	b := NewButtonPressActionID()

	assert.NotEqual(t, a, b)
	assert.True(t, a == a)
}

func TestButton_HandleMouseClick(t *testing.T) {
	// Given: a 64x64 button at (100, 100) with two listeners
	anim := testAnimation(t, image.Pt(64, 64), 16, 0.04)
	id := NewButtonPressActionID()
	b := NewButton(id, mgl64.Vec2{100, 100}, anim, rand.New(rand.NewSource(3)))
	var calls []string
	first := &pressLog{name: "first", calls: &calls}
	second := &pressLog{name: "second", calls: &calls}
	b.AddListener(first)
	b.AddListener(second)

	t.Run("Hit", func(t *testing.T) {
		// When: the click lands on the corner
		hit := b.HandleMouseClick(mgl64.Vec2{164, 164})

		// Then: both listeners hear the button's id, in order
		require.True(t, hit)
		assert.Equal(t, []string{"first", "second"}, calls)
		assert.Equal(t, []ButtonPressActionID{id}, first.ids)
		assert.Equal(t, []ButtonPressActionID{id}, second.ids)
	})

	t.Run("Miss", func(t *testing.T) {
		calls = nil

		hit := b.HandleMouseClick(mgl64.Vec2{99, 130})

		require.False(t, hit)
		assert.Empty(t, calls)
	})

	t.Run("Random start frame", func(t *testing.T) {
		assert.Less(t, b.Sprite().Frame(), 16)
		assert.Equal(t, id, b.ID())
	})
}
