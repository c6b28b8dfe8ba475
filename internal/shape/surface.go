package shape

import (
	"math"

	"github.com/ThatOtherAndrew/Dotfield/internal/update"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	SurfaceStep   = 0.04
	SurfaceExtent = 2
	SurfaceScale  = 2.5

	surfaceDivisor      = 33
	surfacePressedScale = 0.3
	surfaceSpin         = 1 // degrees per frame
)

var (
	surfaceMarker = [4]float32{1, 0, 0, 0.5}
	surfaceTick   = [4]float32{0, 0, 0, 0.5}
)

// Field is the scalar field whose thin negative band forms the surface.
func Field(i, j, k float64) float64 {
	return i*i + j*j + k*k + math.Sin(4*i) - math.Cos(4*j) + math.Sin(6*k) - 1
}

func OnShell(i, j, k float64) bool {
	sc := Field(i, j, k)
	return sc > -0.2 && sc < 0
}

// SurfaceCloud holds the sampled shell with its per-point style.
type SurfaceCloud struct {
	Points []float32
	Colors []float32
	Sizes  []float32
}

func (c SurfaceCloud) Len() int {
	return len(c.Points) / 3
}

// SampleSurface walks a regular grid over [-extent, extent) and keeps the
// samples on the shell, scaled by scale. The walk order fixes each point's
// index and therefore its style.
func SampleSurface(step, extent, scale float64) SurfaceCloud {
	var c SurfaceCloud
	for i := -extent; i < extent; i += step {
		for j := -extent; j < extent; j += step {
			for k := -extent; k < extent; k += step {
				if !OnShell(i, j, k) {
					continue
				}
				color, size := Highlight(c.Len(), k)
				c.Points = append(c.Points, float32(i*scale), float32(j*scale), float32(k*scale))
				c.Colors = append(c.Colors, color[:]...)
				c.Sizes = append(c.Sizes, size)
			}
		}
	}
	return c
}

// Highlight styles the point at insertion index idx: every 20th point is
// a red marker, every other 10th a black tick, and the rest follow a warm
// gradient along k, the unscaled grid depth.
func Highlight(idx int, k float64) ([4]float32, float32) {
	switch n := idx + 1; {
	case n%20 == 0:
		return surfaceMarker, 10
	case n%10 == 0:
		return surfaceTick, 10
	}
	cc := float32(k + 0.5)
	return [4]float32{cc/2 + 0.5, cc / 2, cc / 3, 0.5}, 5
}

// ImplicitSurface is a static isosurface point cloud that spins about the
// view axis and shrinks while the pointer is pressed.
type ImplicitSurface struct {
	cloud    SurfaceCloud
	rotate   float32 // degrees
	scale    float32
	scaleDst float32
}

func (m *ImplicitSurface) Init(s *Shape, ctx *Context) error {
	if m.cloud.Points == nil {
		m.cloud = SampleSurface(SurfaceStep, SurfaceExtent, SurfaceScale)
	}
	m.scale = 1
	m.scaleDst = 1
	m.generate(s)
	return nil
}

// Reset rebuilds the arrays from the cached cloud. Styling depends only on
// the walk, so the colours come back unchanged.
func (m *ImplicitSurface) Reset(s *Shape, ctx *Context) error {
	m.generate(s)
	m.transform(s)
	return nil
}

func (m *ImplicitSurface) generate(s *Shape) {
	s.Points = append([]float32(nil), m.cloud.Points...)
	s.Colors = append([]float32(nil), m.cloud.Colors...)
	s.Sizes = append([]float32(nil), m.cloud.Sizes...)
}

// Animate draws with the previous frame's rotation and scale, then steps
// them; the shrink target only changes after the relax.
func (m *ImplicitSurface) Animate(s *Shape, ctx *Context) {
	m.transform(s)
	m.rotate += surfaceSpin
	m.scale = update.Relax(m.scale, m.scaleDst, surfaceDivisor)
	if ctx.Input != nil && ctx.Input.Pressed {
		m.scaleDst = surfacePressedScale
	} else {
		m.scaleDst = 1
	}
}

func (m *ImplicitSurface) transform(s *Shape) {
	s.Local = mgl32.HomogRotate3DZ(mgl32.DegToRad(m.rotate)).
		Mul4(mgl32.Scale3D(m.scale, m.scale, m.scale))
}
