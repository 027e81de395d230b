package connectfour

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zucenko/planets/graphics"
	"github.com/zucenko/planets/model"
)

func testAnimation(t *testing.T, size image.Point, count int, period float64) *graphics.Animation {
	t.Helper()
	f, err := graphics.NewFrames(image.Pt(size.X*count, size.Y), size, count, period)
	require.NoError(t, err)
	return &graphics.Animation{Frames: f}
}

func testLibrary(t *testing.T) *graphics.Library {
	t.Helper()
	planet := image.Pt(64, 64)
	return graphics.NewLibrary(map[string]*graphics.Animation{
		graphics.BluePlanet: testAnimation(t, planet, 16, 0.1),
		graphics.RedPlanet:  testAnimation(t, planet, 16, 0.1),
		graphics.AddButton:  testAnimation(t, planet, 16, 0.04),
		graphics.Lightning:  testAnimation(t, image.Pt(86, 18), 8, 0.1),
		graphics.Messages:   testAnimation(t, image.Pt(256, 32), 3, 8),
	})
}

type recorder struct {
	snapshots []model.Snapshot
}

func (r *recorder) Publish(s model.Snapshot) {
	r.snapshots = append(r.snapshots, s)
}

func newTestGame(t *testing.T, pub Publisher) *ConnectFour {
	t.Helper()
	g, err := New(testLibrary(t), Options{
		DropSeconds: 0.5,
		Screen:      image.Pt(640, 480),
		Publisher:   pub,
	})
	require.NoError(t, err)
	return g
}
