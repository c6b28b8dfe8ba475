package render

import (
	"fmt"

	"github.com/ThatOtherAndrew/Dotfield/internal/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	QuadVerts = []float32{
		-1, -1, 0,
		1, -1, 0,
		1, 1, 0,
		-1, 1, 0,
	}
	QuadIndices = []uint32{0, 1, 2, 0, 2, 3}

	// PlaneFill is the overlay colour; its alpha is replaced by the
	// configured overlay alpha.
	PlaneFill = [4]float32{0, 0, 0, 0.015}
)

// Plane paints a translucent full-screen quad each frame. Since the colour
// buffer is never cleared, this leaves fading trails behind moving points.
type Plane struct {
	program  uint32
	vao      uint32
	vertVBO  uint32
	colorVBO uint32
	indexVBO uint32

	positionLoc int32
	colorLoc    int32

	verts   []float32
	colors  []float32
	indices []uint32
}

func NewPlane(cfg RendererConfig) (*Plane, error) {
	vert, frag := cfg.Vert, cfg.Frag
	if vert == "" {
		vert = shaders.PlaneVertex
	}
	if frag == "" {
		frag = shaders.PlaneFragment
	}

	program, err := shaders.BuildProgram(vert, frag)
	if err != nil {
		return nil, fmt.Errorf("plane program: %w", err)
	}

	p := &Plane{
		program:     program,
		positionLoc: attribLocation(program, "position"),
		colorLoc:    attribLocation(program, "color"),
		verts:       cfg.Verts,
		colors:      cfg.Colors,
		indices:     cfg.Indices,
	}
	if p.verts == nil {
		p.verts = QuadVerts
	}
	if p.indices == nil {
		p.indices = QuadIndices
	}
	if p.colors == nil {
		p.colors = broadcast(PlaneFill, len(p.verts)/3)
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vertVBO)
	gl.GenBuffers(1, &p.colorVBO)
	gl.GenBuffers(1, &p.indexVBO)

	gl.BindVertexArray(p.vao)
	attribute(p.vertVBO, p.positionLoc, 3, p.verts, gl.STATIC_DRAW)
	attribute(p.colorVBO, p.colorLoc, 4, p.colors, gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.indexVBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(p.indices)*4, gl.Ptr(p.indices), gl.STATIC_DRAW)
	gl.BindVertexArray(0)

	return p, nil
}

// Run activates the program and rebinds the static buffers.
func (p *Plane) Run() {
	gl.UseProgram(p.program)
	gl.BindVertexArray(p.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, p.vertVBO)
	if p.positionLoc >= 0 {
		gl.VertexAttribPointer(uint32(p.positionLoc), 3, gl.FLOAT, false, 0, nil)
		gl.EnableVertexAttribArray(uint32(p.positionLoc))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, p.colorVBO)
	if p.colorLoc >= 0 {
		gl.VertexAttribPointer(uint32(p.colorLoc), 4, gl.FLOAT, false, 0, nil)
		gl.EnableVertexAttribArray(uint32(p.colorLoc))
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.indexVBO)
}

func (p *Plane) Draw() {
	gl.DrawElements(gl.TRIANGLES, int32(len(p.indices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// SetAlpha rewrites the fill alpha of every vertex. Only called when
// settings are reloaded.
func (p *Plane) SetAlpha(alpha float32) {
	for i := 3; i < len(p.colors); i += 4 {
		p.colors[i] = alpha
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, p.colorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(p.colors)*4, gl.Ptr(p.colors), gl.STATIC_DRAW)
}

func (p *Plane) Delete() {
	buffers := []uint32{p.vertVBO, p.colorVBO, p.indexVBO}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteProgram(p.program)
}

func broadcast(c [4]float32, n int) []float32 {
	out := make([]float32, 0, 4*n)
	for range n {
		out = append(out, c[:]...)
	}
	return out
}
