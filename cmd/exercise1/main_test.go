package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glexercises/link"
	"github.com/stewi1014/glexercises/mesh"
)

func TestParseNormals(t *testing.T) {
	for s, want := range map[string]mesh.NormalMode{
		"zero": mesh.ZeroNormals,
		"flat": mesh.FlatNormals,
	} {
		got, err := parseNormals(s)
		if err != nil || got != want {
			t.Errorf("%q: want %v, got %v, %v", s, want, got, err)
		}
	}
	if _, err := parseNormals("smooth"); err == nil {
		t.Error("unknown normal mode accepted")
	}
}

func TestParseMeshKind(t *testing.T) {
	for _, kind := range []link.MeshKind{link.Cube, link.Tetrahedron, link.Model} {
		got, err := parseMeshKind(kind.String())
		if err != nil || got != kind {
			t.Errorf("%v: got %v, %v", kind, got, err)
		}
	}
	if _, err := parseMeshKind("sphere"); err == nil {
		t.Error("unknown mesh accepted")
	}
}

func TestPaint(t *testing.T) {
	white := mgl32.Vec3{1, 1, 1}
	for _, v := range paint(mesh.CubeVertices(), white) {
		if v.Color != white {
			t.Fatalf("want white, got %v", v.Color)
		}
	}
}

func TestEmbeddedShaders(t *testing.T) {
	for name, src := range map[string]string{"default.vert": defaultVert, "light.frag": lightFrag} {
		if len(src) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}
