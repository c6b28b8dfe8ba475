package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Lens holds the constant projection parameters.
type Lens struct {
	FOV  float32
	Near float32
	Far  float32
	Zoom float32
}

// Camera pulls the scene back by Distance and tilts it by Tilt radians.
// The smoothed pointer, in surface pixels, then turns the world by Sway
// radians per pixel: x about the Y axis, y about the X axis.
type Camera struct {
	Distance float32
	Tilt     float32
	Sway     float32
}

// Default turns the world one degree per pixel of pointer travel.
func Default() Camera {
	return Camera{Distance: 6, Tilt: mgl32.DegToRad(5), Sway: mgl32.DegToRad(1)}
}

// Project builds a symmetric perspective matrix in OpenGL clip-space
// convention. Zoom scales both focal terms.
func Project(fov, width, height, near, far, zoom float32) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 && width > 0 {
		aspect = width / height
	}
	f := zoom / math32.Tan(fov/2)
	nf := 1 / (near - far)

	return mgl32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

func (c Camera) Compose(pointer mgl32.Vec2) mgl32.Mat4 {
	return mgl32.Translate3D(0, 0, -c.Distance).
		Mul4(mgl32.HomogRotate3DX(c.Tilt)).
		Mul4(mgl32.HomogRotate3DY(pointer.X() * c.Sway)).
		Mul4(mgl32.HomogRotate3DX(pointer.Y() * c.Sway))
}

// Shared is the world-to-clip matrix used by every shape for one frame.
func Shared(lens Lens, cam Camera, width, height int, pointer mgl32.Vec2) mgl32.Mat4 {
	p := Project(lens.FOV, float32(width), float32(height), lens.Near, lens.Far, lens.Zoom)
	return p.Mul4(cam.Compose(pointer))
}
