package shape

import (
	"fmt"
	"math/rand/v2"

	"github.com/ThatOtherAndrew/Dotfield/internal/input"
	"github.com/ThatOtherAndrew/Dotfield/internal/palette"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	DefaultColor = [4]float32{1, 1, 1, 1}
	DefaultSize  = float32(5)
)

// Drawer receives a shape's arrays and final transform and draws them. The
// flyweight dots renderer is the production implementation.
type Drawer interface {
	UploadAndDraw(points, colors, sizes []float32, transform mgl32.Mat4)
}

// Context is what a behaviour sees while initialising or animating.
type Context struct {
	Input   *input.State
	Rand    *rand.Rand
	Palette *palette.Palette
	Frame   uint64
}

// Behavior populates a shape once and then mutates it every frame.
type Behavior interface {
	Init(s *Shape, ctx *Context) error
	Animate(s *Shape, ctx *Context)
}

// Resetter is implemented by behaviours that regenerate their arrays with
// fresh random draws. Behaviours without it are reset by running Init again.
type Resetter interface {
	Reset(s *Shape, ctx *Context) error
}

// Funcs adapts a pair of plain functions to Behavior. Either may be nil.
type Funcs struct {
	InitFunc    func(s *Shape, ctx *Context) error
	AnimateFunc func(s *Shape, ctx *Context)
}

func (f Funcs) Init(s *Shape, ctx *Context) error {
	if f.InitFunc == nil {
		return nil
	}
	return f.InitFunc(s, ctx)
}

func (f Funcs) Animate(s *Shape, ctx *Context) {
	if f.AnimateFunc != nil {
		f.AnimateFunc(s, ctx)
	}
}

// Shape is one point cloud drawn through the shared dots renderer.
// Colors holds four floats and Sizes one float per point. Velocities, Phase
// and PhaseIncrement are either empty or parallel to Points.
type Shape struct {
	Points         []float32
	Colors         []float32
	Sizes          []float32
	Velocities     []float32
	Phase          []float32
	PhaseIncrement []float32

	// Color and Size are broadcast to every point when Init leaves Colors or
	// Sizes unset.
	Color [4]float32
	Size  float32

	Local    mgl32.Mat4
	Behavior Behavior
}

// ConstructionError reports an array whose length does not match the
// point count.
type ConstructionError struct {
	Field string
	Got   int
	Want  int
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("shape: %s has %d values, want %d", e.Field, e.Got, e.Want)
}

// New builds a shape, runs the behaviour's Init and fills in defaults. A nil
// behaviour yields a static cube.
func New(b Behavior, ctx *Context) (*Shape, error) {
	s := &Shape{Behavior: b}
	if err := s.populate(ctx, false); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset throws away every array and regenerates them from scratch.
func (s *Shape) Reset(ctx *Context) error {
	return s.populate(ctx, true)
}

func (s *Shape) populate(ctx *Context, reset bool) error {
	s.Points, s.Colors, s.Sizes = nil, nil, nil
	s.Velocities, s.Phase, s.PhaseIncrement = nil, nil, nil
	s.Color = DefaultColor
	s.Size = DefaultSize
	s.Local = mgl32.Ident4()

	if s.Behavior != nil {
		var err error
		if r, ok := s.Behavior.(Resetter); ok && reset {
			err = r.Reset(s, ctx)
		} else {
			err = s.Behavior.Init(s, ctx)
		}
		if err != nil {
			return fmt.Errorf("shape init: %w", err)
		}
	}

	if s.Points == nil {
		s.Points = Cube()
	}
	n := len(s.Points) / 3
	if s.Colors == nil {
		s.Colors = make([]float32, 0, 4*n)
		for range n {
			s.Colors = append(s.Colors, s.Color[:]...)
		}
	}
	if s.Sizes == nil {
		s.Sizes = make([]float32, n)
		for i := range s.Sizes {
			s.Sizes[i] = s.Size
		}
	}

	return s.Validate()
}

func (s *Shape) Validate() error {
	if len(s.Points)%3 != 0 {
		return &ConstructionError{Field: "points", Got: len(s.Points), Want: len(s.Points) / 3 * 3}
	}
	n := len(s.Points) / 3
	if len(s.Colors) != 4*n {
		return &ConstructionError{Field: "colors", Got: len(s.Colors), Want: 4 * n}
	}
	if len(s.Sizes) != n {
		return &ConstructionError{Field: "sizes", Got: len(s.Sizes), Want: n}
	}
	for _, aux := range []struct {
		name string
		v    []float32
	}{
		{"velocities", s.Velocities},
		{"phase", s.Phase},
		{"phase increment", s.PhaseIncrement},
	} {
		if len(aux.v) != 0 && len(aux.v) != len(s.Points) {
			return &ConstructionError{Field: aux.name, Got: len(aux.v), Want: len(s.Points)}
		}
	}
	return nil
}

func (s *Shape) Count() int {
	return len(s.Points) / 3
}

// Run animates the shape and draws it with shared * Local.
func (s *Shape) Run(d Drawer, shared mgl32.Mat4, ctx *Context) {
	if s.Behavior != nil {
		s.Behavior.Animate(s, ctx)
	}
	d.UploadAndDraw(s.Points, s.Colors, s.Sizes, shared.Mul4(s.Local))
}
