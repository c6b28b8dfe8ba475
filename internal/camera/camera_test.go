package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestProjectScaleTerms(t *testing.T) {
	m := Project(math32.Pi/2, 800, 800, 0.9, 20000, 0.5)

	assert.InDelta(t, 0.5, m[0], 1e-6)
	assert.InDelta(t, 0.5, m[5], 1e-6)
	assert.Equal(t, float32(-1), m[11])
	assert.Equal(t, float32(0), m[15])
	assert.InDelta(t, (20000+0.9)/(0.9-20000), m[10], 1e-6)
	assert.InDelta(t, 2*20000*0.9/(0.9-20000), m[14], 1e-4)
}

func TestProjectAspect(t *testing.T) {
	m := Project(math32.Pi/2, 1600, 800, 0.9, 20000, 1)
	assert.InDelta(t, 0.5, m[0], 1e-6)
	assert.InDelta(t, 1, m[5], 1e-6)

	flat := Project(math32.Pi/2, 1600, 0, 0.9, 20000, 1)
	assert.InDelta(t, 1, flat[0], 1e-6)
}

func TestProjectMatchesMathgl(t *testing.T) {
	ours := Project(mgl32.DegToRad(60), 1280, 720, 0.1, 100, 1)
	theirs := mgl32.Perspective(mgl32.DegToRad(60), 1280.0/720.0, 0.1, 100)
	assert.True(t, ours.ApproxEqualThreshold(theirs, 1e-5))
}

func TestComposeCentredPointer(t *testing.T) {
	c := Default()
	got := c.Compose(mgl32.Vec2{})
	want := mgl32.Translate3D(0, 0, -c.Distance).Mul4(mgl32.HomogRotate3DX(c.Tilt))
	assert.True(t, got.ApproxEqualThreshold(want, 1e-6))

	origin := got.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, -c.Distance, origin.Z(), 1e-5)
}

func TestDefaultCamera(t *testing.T) {
	c := Default()
	assert.Equal(t, float32(6), c.Distance)
	assert.InDelta(t, 5*math32.Pi/180, c.Tilt, 1e-7)
	assert.InDelta(t, math32.Pi/180, c.Sway, 1e-7)
}

func TestComposePointerSways(t *testing.T) {
	c := Camera{Distance: 10, Sway: 0.5}
	m := c.Compose(mgl32.Vec2{1, 0})
	want := mgl32.Translate3D(0, 0, -10).Mul4(mgl32.HomogRotate3DY(0.5))
	assert.True(t, m.ApproxEqualThreshold(want, 1e-6))
}

func TestComposeYawThenPitch(t *testing.T) {
	c := Default()
	// 90px right and 90px down: a quarter turn about Y after a quarter turn about X
	m := c.Compose(mgl32.Vec2{90, 90})
	want := mgl32.Translate3D(0, 0, -6).
		Mul4(mgl32.HomogRotate3DX(c.Tilt)).
		Mul4(mgl32.HomogRotate3DY(math32.Pi / 2)).
		Mul4(mgl32.HomogRotate3DX(math32.Pi / 2))
	assert.True(t, m.ApproxEqualThreshold(want, 1e-5))

	// +y is carried onto the view axis by the pitch, then onto x by the yaw
	p := mgl32.HomogRotate3DY(math32.Pi / 2).Mul4(mgl32.HomogRotate3DX(math32.Pi / 2)).Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	assert.InDelta(t, 1, p.X(), 1e-5)
	assert.InDelta(t, 0, p.Y(), 1e-5)
}

func TestShared(t *testing.T) {
	lens := Lens{FOV: math32.Pi / 2, Near: 0.9, Far: 20000, Zoom: 0.5}
	c := Default()
	p := mgl32.Vec2{120, -40}

	want := Project(lens.FOV, 640, 480, lens.Near, lens.Far, lens.Zoom).Mul4(c.Compose(p))
	assert.Equal(t, want, Shared(lens, c, 640, 480, p))
}
