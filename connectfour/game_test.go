package connectfour

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/planets/graphics"
	"github.com/zucenko/planets/model"
)

func click(g *ConnectFour, p mgl64.Vec2) {
	g.OnMouseMoved(p)
	g.OnMouseButtonDown(ebiten.MouseButtonLeft, ModifierKeys{})
	g.OnMouseButtonUp(ebiten.MouseButtonLeft, ModifierKeys{})
}

func clickColumn(g *ConnectFour, column int) {
	click(g, DefaultLayout.ButtonAt(column).Add(mgl64.Vec2{32, 32}))
}

func TestNew(t *testing.T) {
	t.Run("Missing animation", func(t *testing.T) {
		lib := graphics.NewLibrary(map[string]*graphics.Animation{
			graphics.BluePlanet: testAnimation(t, image.Pt(64, 64), 1, 1),
		})

		_, err := New(lib, Options{DropSeconds: 1})

		require.ErrorIs(t, err, graphics.ErrUnknownAnimation)
	})

	t.Run("Zero drop time", func(t *testing.T) {
		_, err := New(testLibrary(t), Options{})

		require.Error(t, err)
	})

	t.Run("Buttons under the columns", func(t *testing.T) {
		g := newTestGame(t, nil)

		for i, b := range g.Buttons() {
			assert.Equal(t, mgl64.Vec2{10 + 64*float64(i), 266}, b.Sprite().Position())
		}
		assert.Equal(t, model.Blue, g.Turn())
		assert.Nil(t, g.Message())
	})
}

func TestConnectFour_Click(t *testing.T) {
	t.Run("Click on a button adds a planet", func(t *testing.T) {
		// Given: a new game
		g := newTestGame(t, nil)

		// When: the button under column 2 is clicked
		clickColumn(g, 2)

		// Then: a blue planet falls from the top of column 2 to the bottom slot
		p := g.Planet(model.Pos{Col: 2, Row: 0})
		require.NotNil(t, p)
		assert.Equal(t, PlanetKind, p.Kind)
		assert.Equal(t, model.Blue, p.Colour)
		assert.Equal(t, mgl64.Vec2{138, 0}, p.Sprite().Position())
		assert.Equal(t, model.Red, g.Turn())
	})

	t.Run("Click on the button edge counts", func(t *testing.T) {
		g := newTestGame(t, nil)

		click(g, DefaultLayout.ButtonAt(0).Add(mgl64.Vec2{0, 64}))

		require.NotNil(t, g.Planet(model.Pos{Col: 0}))
		assert.Equal(t, 1, g.Snapshot().Placed)
	})

	t.Run("Click outside the buttons", func(t *testing.T) {
		g := newTestGame(t, nil)

		click(g, mgl64.Vec2{5, 5})
		click(g, mgl64.Vec2{300, 300})

		assert.Equal(t, model.Blue, g.Turn())
		assert.Equal(t, 0, g.Snapshot().Placed)
	})

	t.Run("Move without release does nothing", func(t *testing.T) {
		g := newTestGame(t, nil)

		g.OnMouseMoved(DefaultLayout.ButtonAt(0).Add(mgl64.Vec2{1, 1}))
		g.OnMouseButtonDown(ebiten.MouseButtonLeft, ModifierKeys{})

		assert.Equal(t, 0, g.Snapshot().Placed)
	})
}

func TestConnectFour_Drop(t *testing.T) {
	// Given: a planet dropped into column 1
	g, err := New(testLibrary(t), Options{DropSeconds: 1, Screen: image.Pt(640, 480)})
	require.NoError(t, err)
	require.True(t, g.AddPlanet(1))
	p := g.Planet(model.Pos{Col: 1})

	// When: half the drop time passes
	g.Update(0.5)

	// Then: the planet is half way down, linearly
	pos := p.Sprite().Position()
	assert.InDelta(t, 74, pos.X(), 1e-4)
	assert.InDelta(t, 101, pos.Y(), 1e-4)
	assert.False(t, p.Landed())

	// When: the rest of the drop time passes
	g.Update(0.6)

	// Then: it rests in its slot
	assert.True(t, p.Landed())
	assert.Equal(t, mgl64.Vec2{74, 202}, p.Sprite().Position())

	// Then: the next planet in the column lands one cell higher
	require.True(t, g.AddPlanet(1))
	g.Update(2)
	assert.Equal(t, mgl64.Vec2{74, 138}, g.Planet(model.Pos{Col: 1, Row: 1}).Sprite().Position())
}

func TestConnectFour_BlueWinsColumn(t *testing.T) {
	// Given: a new game with a spectator
	rec := &recorder{}
	g := newTestGame(t, rec)

	// When: BLUE plays column 0 and RED column 1, interleaved
	for _, c := range []int{0, 1, 0, 1, 0, 1, 0} {
		clickColumn(g, c)
	}

	// Then: BLUE has won and the message waits for the last planet
	require.Equal(t, model.BlueWins, g.Outcome())
	m := g.Message()
	require.NotNil(t, m)
	assert.Equal(t, MessageKind, m.Kind)
	assert.Equal(t, Player1Wins, m.Face)
	assert.Equal(t, int(Player1Wins), m.Sprite().Frame())
	assert.True(t, m.hidden)

	// Then: every placement was published
	require.Len(t, rec.snapshots, 7)
	assert.Equal(t, model.BlueWins, rec.snapshots[6].Outcome)
	assert.Equal(t, model.InProgress, rec.snapshots[5].Outcome)

	// Then: further placements are ignored
	clickColumn(g, 2)
	assert.False(t, g.AddPlanet(3))
	assert.Nil(t, g.Planet(model.Pos{Col: 2}))
	assert.Len(t, rec.snapshots, 7)

	// When: the last planet lands
	g.Update(0.6)

	// Then: the message starts falling and no lightning is shown yet
	assert.False(t, m.hidden)
	assert.False(t, m.Landed())
	assert.Empty(t, g.Lightning())

	// When: the message lands
	g.Update(0.6)

	// Then: it is centred and lightning runs along column 0
	assert.True(t, m.Landed())
	assert.Equal(t, mgl64.Vec2{192, 192}, m.Sprite().Position())
	require.Len(t, g.Lightning(), 3)
	for _, bolt := range g.Lightning() {
		assert.InDelta(t, -1.5707963, bolt.Orientation(), 1e-6)
	}

	// Then: the message face never animates
	g.Update(100)
	assert.Equal(t, int(Player1Wins), m.Sprite().Frame())
}

func TestConnectFour_Draw(t *testing.T) {
	g := newTestGame(t, nil)

	for _, c := range []int{0, 1, 1, 0, 0, 1, 1, 0, 3, 2, 2, 3, 3, 2, 2, 3} {
		require.True(t, g.AddPlanet(c))
	}

	require.Equal(t, model.Draw, g.Outcome())
	require.NotNil(t, g.Message())
	assert.Equal(t, DrawFace, g.Message().Face)

	g.Update(1)
	g.Update(1)
	assert.True(t, g.Message().Landed())
	assert.Empty(t, g.Lightning())
}

func TestConnectFour_FullColumn(t *testing.T) {
	// Given: column 3 is full
	g := newTestGame(t, nil)
	for i := 0; i < model.Size; i++ {
		require.True(t, g.AddPlanet(3))
	}
	before := g.Snapshot()

	// When: column 3 is clicked again
	clickColumn(g, 3)

	// Then: nothing changes
	assert.Equal(t, before, g.Snapshot())
}

func TestConnectFour_Draws(t *testing.T) {
	g := newTestGame(t, nil)
	require.True(t, g.AddPlanet(0))

	// Sheetless animations make drawing a no-op; every sprite still
	// has to have a valid frame.
	require.NotPanics(t, func() {
		g.Update(0.3)
		g.Draw(nil)
	})
}
