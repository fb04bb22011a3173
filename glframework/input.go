package glframework

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glexercises/camera"
)

// input is the mouse state of a window, fed by its GLFW callbacks.
type input struct {
	mouseDown bool
	mousePos  mgl32.Vec2
	camera    camera.Orbit

	mouseCallback  MouseFunc
	scrollCallback ScrollFunc
}

func (in *input) button(down bool) {
	in.mouseDown = down
}

// move takes the cursor to pos, dragging the camera while the button is held.
func (in *input) move(pos mgl32.Vec2) {
	if in.mouseCallback != nil {
		in.mouseCallback(pos)
	}
	if in.mouseDown {
		in.camera.Drag(pos.Sub(in.mousePos))
	}
	in.mousePos = pos
}

func (in *input) scroll(yoff float64) {
	if in.scrollCallback != nil {
		in.scrollCallback(float32(yoff), in.mousePos)
	}
}
