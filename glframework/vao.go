package glframework

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/stewi1014/glexercises/mesh"
)

// VAO is a vertex array object with the single buffer holding its vertices.
type VAO struct {
	ID          uint32
	VBO         uint32
	VertexCount int32
	stride      int32
}

// NewVertexBuffer uploads vertices into a new buffer owned by a new vertex
// array object. No attributes are set; see AttribPointer.
func NewVertexBuffer[T any](vertices []T) (VAO, error) {
	var zero T
	v := VAO{
		VertexCount: int32(len(vertices)),
		stride:      int32(unsafe.Sizeof(zero)),
	}

	gl.GenVertexArrays(1, &v.ID)
	if v.ID == 0 {
		return VAO{}, glErrOrMessage("glGenVertexArrays returned no vertex array")
	}
	gl.BindVertexArray(v.ID)
	defer gl.BindVertexArray(0)

	gl.GenBuffers(1, &v.VBO)
	if v.VBO == 0 {
		gl.DeleteVertexArrays(1, &v.ID)
		return VAO{}, glErrOrMessage("glGenBuffers returned no buffer")
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, v.VBO)

	var data unsafe.Pointer
	if len(vertices) > 0 {
		data = gl.Ptr(vertices)
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(v.stride), data, gl.STATIC_DRAW)

	if err := glErr("uploading vertex buffer"); err != nil {
		v.Delete()
		return VAO{}, err
	}
	return v, nil
}

// AttribPointer feeds size float32 components at offset within each vertex
// to the attribute at location loc. A negative loc, as returned by
// glGetAttribLocation for an unused attribute, is ignored.
func (v VAO) AttribPointer(loc int32, size int32, offset uintptr) {
	if loc < 0 {
		return
	}
	gl.BindVertexArray(v.ID)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.VBO)
	gl.EnableVertexAttribArray(uint32(loc))
	gl.VertexAttribPointerWithOffset(uint32(loc), size, gl.FLOAT, false, v.stride, offset)
	gl.BindVertexArray(0)
}

// CreateVertexArrayObject uploads a mesh with its attributes at the
// locations LinkShaderProgram binds.
func CreateVertexArrayObject(vertices []mesh.Vertex) (VAO, error) {
	v, err := NewVertexBuffer(vertices)
	if err != nil {
		return VAO{}, err
	}

	var vert mesh.Vertex
	v.AttribPointer(int32(PositionAttrib), 3, unsafe.Offsetof(vert.Position))
	v.AttribPointer(int32(TexcoordAttrib), 2, unsafe.Offsetof(vert.Texcoord))
	v.AttribPointer(int32(NormalAttrib), 3, unsafe.Offsetof(vert.Normal))
	v.AttribPointer(int32(ColorAttrib), 3, unsafe.Offsetof(vert.Color))

	if err := glErr("setting vertex attributes"); err != nil {
		v.Delete()
		return VAO{}, err
	}
	return v, nil
}

// Draw draws every vertex with the given primitive mode.
func (v VAO) Draw(mode uint32) {
	gl.BindVertexArray(v.ID)
	gl.DrawArrays(mode, 0, v.VertexCount)
	gl.BindVertexArray(0)
}

// Delete releases the vertex array and its buffer.
func (v *VAO) Delete() {
	if v.VBO != 0 {
		gl.DeleteBuffers(1, &v.VBO)
	}
	if v.ID != 0 {
		gl.DeleteVertexArrays(1, &v.ID)
	}
	*v = VAO{}
}
