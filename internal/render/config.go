package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// RendererConfig seeds a renderer. Vert and Frag replace the built-in
// shader sources when non-empty. Indices is read by the plane only; points
// are always drawn unindexed.
type RendererConfig struct {
	Verts   []float32
	Colors  []float32
	Sizes   []float32
	Indices []uint32
	Vert    string
	Frag    string
}

func attribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

// attribute replaces the whole contents of vbo and re-declares it as a
// tightly packed float attribute of the given width.
func attribute(vbo uint32, loc int32, width int32, data []float32, usage uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, usage)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), usage)
	}
	if loc < 0 {
		return
	}
	gl.VertexAttribPointer(uint32(loc), width, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(uint32(loc))
}
