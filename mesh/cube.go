package mesh

import "github.com/go-gl/mathgl/mgl32"

type cubeFace struct {
	// corners wind counter clockwise seen from outside the cube.
	corners [4]mgl32.Vec3
	color   mgl32.Vec3
}

var cubeFaces = [6]cubeFace{
	{ // front
		corners: [4]mgl32.Vec3{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
		color:   mgl32.Vec3{1, 0, 0},
	},
	{ // back
		corners: [4]mgl32.Vec3{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}},
		color:   mgl32.Vec3{0, 1, 1},
	},
	{ // bottom
		corners: [4]mgl32.Vec3{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
		color:   mgl32.Vec3{0, 1, 0},
	},
	{ // top
		corners: [4]mgl32.Vec3{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},
		color:   mgl32.Vec3{1, 0, 1},
	},
	{ // right
		corners: [4]mgl32.Vec3{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},
		color:   mgl32.Vec3{0, 0, 1},
	},
	{ // left
		corners: [4]mgl32.Vec3{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
		color:   mgl32.Vec3{1, 1, 0},
	},
}

var quadTexcoords = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// CubeVertices returns the triangle list of a cube spanning [-1,1] on every
// axis, 2 triangles per face, one color and one normal per face.
func CubeVertices() []Vertex {
	vertices := make([]Vertex, 0, 36)
	for _, face := range cubeFaces {
		c := face.corners
		normal := CalculateNormal(c[0], c[1], c[2])
		for _, i := range [6]int{0, 1, 2, 0, 2, 3} {
			vertices = append(vertices, Vertex{
				Position: c[i],
				Texcoord: quadTexcoords[i],
				Normal:   normal,
				Color:    face.color,
			})
		}
	}
	return vertices
}
