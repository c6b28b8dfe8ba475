package render

import (
	"errors"
	"fmt"

	"github.com/ThatOtherAndrew/Dotfield/internal/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Dots is the flyweight point renderer: one program and one buffer set
// shared by every shape. Each UploadAndDraw fully re-points the buffers at
// the caller's arrays, so shapes never see each other's data. Only one call
// may be in flight at a time, which the single frame task guarantees.
type Dots struct {
	program uint32
	vao     uint32

	positionVBO uint32
	colorVBO    uint32
	sizeVBO     uint32

	positionLoc  int32
	colorLoc     int32
	sizeLoc      int32
	transformLoc int32

	count int32
}

func NewDots(cfg RendererConfig) (*Dots, error) {
	vert, frag := cfg.Vert, cfg.Frag
	if vert == "" {
		vert = shaders.DotsVertex
	}
	if frag == "" {
		frag = shaders.DotsFragment
	}

	program, err := shaders.BuildProgram(vert, frag)
	if err != nil {
		return nil, fmt.Errorf("dots program: %w", err)
	}

	d := &Dots{
		program:      program,
		positionLoc:  attribLocation(program, "position"),
		colorLoc:     attribLocation(program, "color"),
		sizeLoc:      attribLocation(program, "size"),
		transformLoc: gl.GetUniformLocation(program, gl.Str("transform\x00")),
	}
	if d.positionLoc < 0 {
		gl.DeleteProgram(program)
		return nil, errors.New("dots program has no position attribute")
	}

	gl.GenVertexArrays(1, &d.vao)
	gl.GenBuffers(1, &d.positionVBO)
	gl.GenBuffers(1, &d.colorVBO)
	gl.GenBuffers(1, &d.sizeVBO)

	gl.BindVertexArray(d.vao)
	d.upload(cfg.Verts, cfg.Colors, cfg.Sizes)
	gl.BindVertexArray(0)

	return d, nil
}

// Bind activates the program and vertex array.
func (d *Dots) Bind() {
	gl.UseProgram(d.program)
	gl.BindVertexArray(d.vao)
}

func (d *Dots) upload(points, colors, sizes []float32) {
	attribute(d.positionVBO, d.positionLoc, 3, points, gl.DYNAMIC_DRAW)
	attribute(d.colorVBO, d.colorLoc, 4, colors, gl.DYNAMIC_DRAW)
	attribute(d.sizeVBO, d.sizeLoc, 1, sizes, gl.DYNAMIC_DRAW)
	d.count = int32(len(points) / 3)
}

// UploadAndDraw replaces every buffer with the given arrays, writes the
// transform and draws len(points)/3 points. The arrays must already agree
// on the point count.
func (d *Dots) UploadAndDraw(points, colors, sizes []float32, transform mgl32.Mat4) {
	d.Bind()
	d.upload(points, colors, sizes)
	gl.UniformMatrix4fv(d.transformLoc, 1, false, &transform[0])
	if d.count == 0 {
		return
	}
	gl.DrawArrays(gl.POINTS, 0, d.count)
}

func (d *Dots) Delete() {
	buffers := []uint32{d.positionVBO, d.colorVBO, d.sizeVBO}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	gl.DeleteVertexArrays(1, &d.vao)
	gl.DeleteProgram(d.program)
}
