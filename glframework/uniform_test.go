package glframework

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glexercises/julia"
	"github.com/stewi1014/glexercises/mesh"
)

func TestUniformFields(t *testing.T) {
	type uniforms struct {
		MVP     mgl32.Mat4 `uniform:"MVP"`
		Light   mgl32.Vec3 `uniform:"lightDirection"`
		skipped float32
		Ignored int32 `uniform:"-"`
		Colors  [4]mgl32.Vec3 `uniform:"colors"`
	}

	fields := uniformFields(reflect.TypeOf(uniforms{}))
	want := []uniformField{
		{index: 0, name: "MVP", location: -1},
		{index: 1, name: "lightDirection", location: -1},
		{index: 4, name: "colors", location: -1},
	}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("want %+v, got %+v", want, fields)
	}
}

func TestJuliaUniformNames(t *testing.T) {
	var names []string
	for _, f := range uniformFields(reflect.TypeOf(julia.Uniforms{})) {
		names = append(names, f.name)
	}
	want := []string{"time", "zoom", "zoomPosition", "iterations"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("want %v, got %v", want, names)
	}
}

func TestVertexLayout(t *testing.T) {
	var v mesh.Vertex
	offsets := []uintptr{
		reflect.TypeOf(v).Field(0).Offset,
		reflect.TypeOf(v).Field(1).Offset,
		reflect.TypeOf(v).Field(2).Offset,
		reflect.TypeOf(v).Field(3).Offset,
	}
	if want := []uintptr{0, 12, 20, 32}; !reflect.DeepEqual(offsets, want) {
		t.Errorf("want offsets %v, got %v", want, offsets)
	}
	if size := reflect.TypeOf(v).Size(); size != 44 {
		t.Errorf("want packed 44 byte vertex, got %d", size)
	}
	if attribNames[PositionAttrib] != "vertexPosition" || attribNames[ColorAttrib] != "vertexColor" {
		t.Errorf("unexpected attribute names %v", attribNames)
	}
}
