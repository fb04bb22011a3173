// Package mesh generates the triangle-list geometry drawn by the exercises:
// the fractal tetrahedron, the cube and meshes read from OBJ files.
//
// Nothing in this package touches OpenGL. Output buffers are plain []Vertex
// values laid out the way glframework uploads them.
package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a single entry of a vertex buffer. The field order and types
// define the GPU layout, do not reorder.
type Vertex struct {
	Position mgl32.Vec3
	Texcoord mgl32.Vec2
	Normal   mgl32.Vec3
	Color    mgl32.Vec3
}

// Midpoint blends every attribute of a and b by averaging.
// Midpoint(v, v) == v exactly.
func Midpoint(a, b Vertex) Vertex {
	return Vertex{
		Position: a.Position.Add(b.Position).Mul(0.5),
		Texcoord: a.Texcoord.Add(b.Texcoord).Mul(0.5),
		Normal:   a.Normal.Add(b.Normal).Mul(0.5),
		Color:    a.Color.Add(b.Color).Mul(0.5),
	}
}

// CalculateNormal returns the unit normal of the triangle a, b, c given in
// counter clockwise order. Degenerate triangles yield the zero vector.
func CalculateNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	l := math32.Sqrt(n.Dot(n))
	if l == 0 || math32.IsNaN(l) {
		return mgl32.Vec3{}
	}
	return n.Mul(1 / l)
}
