package glframework

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glexercises/camera"
)

func TestInputRouting(t *testing.T) {
	w := &Window{in: input{camera: camera.NewOrbit(CameraDistance)}}

	var moved []mgl32.Vec2
	w.SetMouseCallback(func(mouse mgl32.Vec2) {
		moved = append(moved, mouse)
	})

	var scrolled float32
	var scrolledAt mgl32.Vec2
	w.SetScrollCallback(func(scroll float32, mouse mgl32.Vec2) {
		scrolled, scrolledAt = scroll, mouse
	})

	start := w.Camera()
	w.in.move(mgl32.Vec2{0.5, -0.25})
	if w.MousePos() != (mgl32.Vec2{0.5, -0.25}) {
		t.Errorf("want mouse at [0.5 -0.25], got %v", w.MousePos())
	}
	if len(moved) != 1 || moved[0] != w.MousePos() {
		t.Errorf("mouse callback got %v", moved)
	}
	if w.Camera() != start {
		t.Error("camera moved without a button held")
	}

	w.in.scroll(2)
	if scrolled != 2 || scrolledAt != (mgl32.Vec2{0.5, -0.25}) {
		t.Errorf("scroll callback got %v at %v", scrolled, scrolledAt)
	}

	w.in.button(true)
	w.in.move(mgl32.Vec2{0.6, -0.25})
	if w.Camera() == start {
		t.Error("camera did not move while dragging")
	}
	w.in.button(false)

	w.SetMouseCallback(nil)
	w.SetScrollCallback(nil)
	w.in.move(mgl32.Vec2{})
	w.in.scroll(1)
	if len(moved) != 2 || scrolled != 2 {
		t.Errorf("removed callbacks were called: %v, %v", moved, scrolled)
	}
}
