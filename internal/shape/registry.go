package shape

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Registry is the ordered set of live shapes. Insertion order is draw order.
type Registry struct {
	shapes []*Shape
}

func (r *Registry) Add(s *Shape) {
	r.shapes = append(r.shapes, s)
}

// Spawn constructs a shape and appends it.
func (r *Registry) Spawn(b Behavior, ctx *Context) (*Shape, error) {
	s, err := New(b, ctx)
	if err != nil {
		return nil, err
	}
	r.Add(s)
	return s, nil
}

func (r *Registry) Len() int {
	return len(r.shapes)
}

func (r *Registry) Shapes() []*Shape {
	return r.shapes
}

func (r *Registry) Run(d Drawer, shared mgl32.Mat4, ctx *Context) {
	for _, s := range r.shapes {
		s.Run(d, shared, ctx)
	}
}

func (r *Registry) Reset(ctx *Context) error {
	for i, s := range r.shapes {
		if err := s.Reset(ctx); err != nil {
			return fmt.Errorf("reset shape %d: %w", i, err)
		}
	}
	return nil
}
