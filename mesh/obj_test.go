package mesh_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glexercises/mesh"
)

const quadOBJ = `# unit quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
o quad
f 1/1/1 2/2/1 3/3/1 4/4/1
`

func TestReadOBJQuad(t *testing.T) {
	vertices, err := mesh.ReadOBJ(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatal(err)
	}
	if len(vertices) != 6 {
		t.Fatalf("want 6 vertices from fan triangulation, got %d", len(vertices))
	}
	wantPos := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	for i, v := range vertices {
		if v.Position != wantPos[i] {
			t.Errorf("vertex %d: want position %v, got %v", i, wantPos[i], v.Position)
		}
		if v.Normal != (mgl32.Vec3{0, 0, 1}) {
			t.Errorf("vertex %d: want normal +z, got %v", i, v.Normal)
		}
		if v.Color != (mgl32.Vec3{}) {
			t.Errorf("vertex %d: want zero color, got %v", i, v.Color)
		}
	}
	if vertices[2].Texcoord != (mgl32.Vec2{1, 1}) {
		t.Errorf("want texcoord (1,1), got %v", vertices[2].Texcoord)
	}
}

func TestReadOBJCornerForms(t *testing.T) {
	tests := []struct {
		name string
		obj  string
		want mesh.Vertex
	}{
		{
			name: "position only",
			obj:  "v 1 2 3\nv 0 0 0\nv 0 0 1\nf 1 2 3\n",
			want: mesh.Vertex{Position: mgl32.Vec3{1, 2, 3}},
		},
		{
			name: "position and normal",
			obj:  "v 1 2 3\nv 0 0 0\nv 0 0 1\nvn 0 1 0\nf 1//1 2//1 3//1\n",
			want: mesh.Vertex{Position: mgl32.Vec3{1, 2, 3}, Normal: mgl32.Vec3{0, 1, 0}},
		},
		{
			name: "position and texcoord",
			obj:  "v 1 2 3\nv 0 0 0\nv 0 0 1\nvt 0.5 0.25\nf 1/1 2/1 3/1\n",
			want: mesh.Vertex{Position: mgl32.Vec3{1, 2, 3}, Texcoord: mgl32.Vec2{0.5, 0.25}},
		},
		{
			name: "negative indices",
			obj:  "v 1 2 3\nv 0 0 0\nv 0 0 1\nf -3 -2 -1\n",
			want: mesh.Vertex{Position: mgl32.Vec3{1, 2, 3}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			vertices, err := mesh.ReadOBJ(strings.NewReader(test.obj))
			if err != nil {
				t.Fatal(err)
			}
			if len(vertices) != 3 {
				t.Fatalf("want 3 vertices, got %d", len(vertices))
			}
			if vertices[0] != test.want {
				t.Errorf("want %v, got %v", test.want, vertices[0])
			}
		})
	}
}

func TestReadOBJErrors(t *testing.T) {
	tests := []struct {
		name    string
		obj     string
		errText string
	}{
		{name: "index out of range", obj: "v 0 0 0\nf 1 2 3\n", errText: "line 2"},
		{name: "short vertex", obj: "v 0 0\n", errText: "line 1"},
		{name: "bad float", obj: "v 0 x 0\n", errText: "line 1"},
		{name: "two corner face", obj: "v 0 0 0\nv 1 0 0\nf 1 2\n", errText: "at least 3 corners"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := mesh.ReadOBJ(strings.NewReader(test.obj))
			if err == nil {
				t.Fatal("want error")
			}
			if !strings.Contains(err.Error(), test.errText) {
				t.Errorf("want error containing %q, got %q", test.errText, err)
			}
		})
	}

	_, err := mesh.ReadOBJ(strings.NewReader("v 0 0 0\n"))
	if !errors.Is(err, mesh.ErrNoFaces) {
		t.Errorf("want ErrNoFaces, got %v", err)
	}
}
