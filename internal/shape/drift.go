package shape

import (
	"github.com/ThatOtherAndrew/Dotfield/internal/update"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultDriftCount  = 8334
	DefaultDriftSpread = 2

	driftDivisor = 15
	driftSwell   = 0.1
	driftSpeed   = 0.025
	driftPhase   = 7
	flareChance  = 0.001
	flareSize    = 100
)

// DriftingField is a cloud of points that each drift with a constant
// velocity while wobbling around their drifting base on a per-axis
// oscillator. Holding the pointer down keeps pushing the swell target out.
type DriftingField struct {
	Count  int
	Spread float32 // half-width of the spawn cube

	base   []float32
	scale  float32
	target float32
}

func (f *DriftingField) Init(s *Shape, ctx *Context) error {
	if f.Count <= 0 {
		f.Count = DefaultDriftCount
	}
	if f.Spread <= 0 {
		f.Spread = DefaultDriftSpread
	}
	f.scale = 1
	f.target = 1
	f.generate(s, ctx)
	return nil
}

func (f *DriftingField) Reset(s *Shape, ctx *Context) error {
	f.generate(s, ctx)
	s.Local = mgl32.Scale3D(f.scale, f.scale, f.scale)
	return nil
}

func (f *DriftingField) generate(s *Shape, ctx *Context) {
	r := ctx.Rand
	n := f.Count
	signed := func(max float32) float32 { return r.Float32()*2*max - max }

	f.base = make([]float32, 3*n)
	s.Points = make([]float32, 3*n)
	s.Velocities = make([]float32, 3*n)
	s.Phase = make([]float32, 3*n)
	s.PhaseIncrement = make([]float32, 3*n)
	s.Colors = make([]float32, 4*n)
	s.Sizes = make([]float32, n)

	for i := range n {
		for axis := range 3 {
			f.base[3*i+axis] = signed(f.Spread)
		}
		c := ctx.Palette.Pick(r)
		copy(s.Colors[4*i:], c[:])
		for axis := range 3 {
			j := 3*i + axis
			s.Velocities[j] = signed(driftSpeed)
			s.Phase[j] = r.Float32() * driftPhase
			s.PhaseIncrement[j] = signed(driftSpeed)
		}

		s.Sizes[i] = 50*r.Float32()*r.Float32()*r.Float32() + 1
		if r.Float32() < flareChance {
			s.Sizes[i] = flareSize
		}
	}

	copy(s.Points, f.base)
}

func (f *DriftingField) Animate(s *Shape, ctx *Context) {
	f.scale = update.Relax(f.scale, f.target, driftDivisor)
	if ctx.Input != nil && ctx.Input.Pressed {
		f.target += driftSwell
	} else {
		f.target = 1
	}
	s.Local = mgl32.Scale3D(f.scale, f.scale, f.scale)

	Drift(s.Points, f.base, s.Velocities, s.Phase, s.PhaseIncrement)
}

// Scale is the current swell factor.
func (f *DriftingField) Scale() float32 {
	return f.scale
}

// Drift advances one frame: base moves by its velocity, the displayed point
// is base plus (cos, sin, cos) of the per-axis phase, then every phase
// advances by its increment. All slices share the same length.
func Drift(points, base, velocities, phase, increment []float32) {
	for i := 0; i+2 < len(points); i += 3 {
		base[i] += velocities[i]
		base[i+1] += velocities[i+1]
		base[i+2] += velocities[i+2]

		points[i] = base[i] + math32.Cos(phase[i])
		points[i+1] = base[i+1] + math32.Sin(phase[i+1])
		points[i+2] = base[i+2] + math32.Cos(phase[i+2])

		phase[i] += increment[i]
		phase[i+1] += increment[i+1]
		phase[i+2] += increment[i+2]
	}
}
