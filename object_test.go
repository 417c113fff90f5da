package backdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewObjectDefaults(t *testing.T) {
	o := NewWireObject("ring", NewRingGeometry(1, 8))
	assert.NotZero(t, o.ID)
	assert.Equal(t, KindWire, o.Kind)
	assert.True(t, o.Visible)
	assert.Equal(t, Vec3{1, 1, 1}, o.Transform.Scale)
	assert.Equal(t, 1.0, o.Transform.Alpha())

	p := NewPointsObject("stars", &Geometry{})
	assert.NotEqual(t, o.ID, p.ID)
	assert.Equal(t, KindPoints, p.Kind)

	ov := NewOverlay("logo", "LOGO", 10, 5)
	assert.Equal(t, KindOverlay, ov.Kind)
	assert.Equal(t, Vec2{10, 5}, ov.Size)
}

func TestObjectDispose(t *testing.T) {
	o := NewWireObject("o", NewRingGeometry(1, 8)).AddBehavior(Spin{Step: 1})
	assert.True(t, o.present())
	o.Dispose()
	assert.True(t, o.IsDisposed())
	assert.False(t, o.present())
	assert.Nil(t, o.Geometry)
	assert.Empty(t, o.Behaviors)
	assert.NotPanics(t, o.Dispose)

	var missing *Object
	assert.False(t, missing.present())
}

func TestColorWithAlpha(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 1}.WithAlpha(0.25)
	assert.Equal(t, 0.25, c.A)
	assert.Equal(t, 0.5, c.G)
}
