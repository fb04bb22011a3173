package mesh_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glexercises/mesh"
)

func TestCubeVertices(t *testing.T) {
	vertices := mesh.CubeVertices()
	if len(vertices) != 36 {
		t.Fatalf("want 36 vertices, got %d", len(vertices))
	}
	seenNormals := make(map[mgl32.Vec3]bool)
	for f := 0; f < len(vertices); f += 3 {
		a, b, c := vertices[f], vertices[f+1], vertices[f+2]
		n := a.Normal
		if b.Normal != n || c.Normal != n {
			t.Fatalf("triangle %d has differing normals", f/3)
		}
		if got := mesh.CalculateNormal(a.Position, b.Position, c.Position); !got.ApproxEqual(n) {
			t.Errorf("triangle %d winds against its normal: %v vs %v", f/3, got, n)
		}
		// Outward: the normal points the same way as the triangle's center.
		center := a.Position.Add(b.Position).Add(c.Position)
		if n.Dot(center) <= 0 {
			t.Errorf("triangle %d normal %v points inward", f/3, n)
		}
		seenNormals[n] = true
	}
	if len(seenNormals) != 6 {
		t.Errorf("want 6 distinct face normals, got %d", len(seenNormals))
	}
}
