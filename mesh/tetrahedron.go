package mesh

import "github.com/go-gl/mathgl/mgl32"

// DefaultMaxDepth is the last subdivision depth of the fractal drawn by the
// first exercise. Depths 0 through 5 each split once, leaving 4^6 leaves.
const DefaultMaxDepth = 5

// Tetrahedron holds 4 vertices. Faces are emitted with the winding of
// tetrahedronFaces, so a seed whose faces wind counter clockwise seen from
// outside produces a fractal whose faces do too.
type Tetrahedron [4]Vertex

// tetrahedronFaces are the vertex index triples of the 4 triangles of a
// tetrahedron. Changing the order flips faces under back face culling.
var tetrahedronFaces = [4][3]int{
	{0, 1, 2},
	{0, 2, 3},
	{0, 3, 1},
	{1, 3, 2},
}

// NormalMode selects how Emit fills in vertex normals. Every vertex of a face
// gets the same normal in either mode.
type NormalMode int

const (
	// ZeroNormals writes the zero vector to every normal.
	ZeroNormals NormalMode = iota
	// FlatNormals writes the unit face normal to the 3 vertices of each face.
	FlatNormals
)

func (m NormalMode) String() string {
	switch m {
	case ZeroNormals:
		return "zero"
	case FlatNormals:
		return "flat"
	}
	return "unknown"
}

// SeedTetrahedron returns the tetrahedron the first exercise subdivides.
func SeedTetrahedron() Tetrahedron {
	return Tetrahedron{
		{Position: mgl32.Vec3{-1, -1, -1}, Color: mgl32.Vec3{1, 1, 1}},
		{Position: mgl32.Vec3{0, 1, 0}, Color: mgl32.Vec3{0, 0, 1}},
		{Position: mgl32.Vec3{1, -1, -1}, Color: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{0, -1, 1}, Color: mgl32.Vec3{0, 1, 0}},
	}
}

// Split returns the 4 corner tetrahedra of t. Slot j of child i is the
// midpoint of t[i] and t[j], so slot i of child i is t[i] itself and each
// child is t scaled by one half towards t[i]. The octahedron left in the
// middle is dropped, which is what makes the result a Sierpinski tetrahedron.
func Split(t Tetrahedron) (children [4]Tetrahedron) {
	for i := range t {
		for j := range t {
			children[i][j] = Midpoint(t[i], t[j])
		}
	}
	return children
}

// Subdivide splits every tetrahedron and keeps going on the children until
// depth reaches maxDepth. A call always performs at least one pass, so
// Subdivide(x, maxDepth, maxDepth) returns 4*len(x) tetrahedra.
// Children of a parent stay adjacent and in Split order.
func Subdivide(tetrahedra []Tetrahedron, depth, maxDepth int) []Tetrahedron {
	result := make([]Tetrahedron, 0, 4*len(tetrahedra))
	for _, th := range tetrahedra {
		children := Split(th)
		result = append(result, children[:]...)
	}
	if depth < maxDepth {
		return Subdivide(result, depth+1, maxDepth)
	}
	return result
}

// Emit flattens tetrahedra into a triangle list, 12 vertices per tetrahedron.
func Emit(tetrahedra []Tetrahedron, normals NormalMode) []Vertex {
	vertices := make([]Vertex, 0, 12*len(tetrahedra))
	for _, th := range tetrahedra {
		for _, face := range tetrahedronFaces {
			a, b, c := th[face[0]], th[face[1]], th[face[2]]
			var normal mgl32.Vec3
			if normals == FlatNormals {
				normal = CalculateNormal(a.Position, b.Position, c.Position)
			}
			a.Normal, b.Normal, c.Normal = normal, normal, normal
			vertices = append(vertices, a, b, c)
		}
	}
	return vertices
}

// Fractal configures the fractal tetrahedron pipeline.
type Fractal struct {
	Seed Tetrahedron
	// MaxDepth is the depth of the last subdivision pass. Negative values
	// skip subdivision and emit the seed.
	MaxDepth int
	Normals  NormalMode
}

// DefaultFractal returns the configuration drawn by the first exercise.
func DefaultFractal() Fractal {
	return Fractal{
		Seed:     SeedTetrahedron(),
		MaxDepth: DefaultMaxDepth,
		Normals:  FlatNormals,
	}
}

// Tetrahedra returns the leaf tetrahedra of f.
func (f Fractal) Tetrahedra() []Tetrahedron {
	seed := []Tetrahedron{f.Seed}
	if f.MaxDepth < 0 {
		return seed
	}
	return Subdivide(seed, 0, f.MaxDepth)
}

// Vertices returns the triangle list of f.
func (f Fractal) Vertices() []Vertex {
	return Emit(f.Tetrahedra(), f.Normals)
}

// LeafCount returns how many tetrahedra f produces without generating them.
func (f Fractal) LeafCount() int {
	n := 1
	for d := 0; d <= f.MaxDepth; d++ {
		n *= 4
	}
	return n
}
