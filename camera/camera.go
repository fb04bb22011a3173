// Package camera holds the orbit camera shared by the exercises and the
// cursor conversions feeding it.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var up = mgl32.Vec3{0, 1, 0}

// Orbit is a camera circling the origin, always looking at it.
type Orbit struct {
	Position mgl32.Vec3
}

// NewOrbit places the camera on the +z axis at the given distance.
func NewOrbit(distance float32) Orbit {
	return Orbit{Position: mgl32.Vec3{0, 0, distance}}
}

// Drag rotates the camera for a cursor movement given in normalized
// coordinates (see NormalizeCursor). Moving across the full window width
// turns the camera once around the y axis. Pitch that would carry the camera
// over a pole is dropped.
func (o *Orbit) Drag(delta mgl32.Vec2) {
	o.Position = mgl32.HomogRotate3D(-math32.Pi*delta.X(), up).Mat3().Mul3x1(o.Position)

	right := mgl32.Vec3{-o.Position.Z(), 0, o.Position.X()}
	l := right.Len()
	if l == 0 {
		return
	}
	right = right.Mul(1 / l)

	pitched := mgl32.HomogRotate3D(-math32.Pi*delta.Y(), right).Mat3().Mul3x1(o.Position)
	if o.Position.X()*pitched.X() >= 0 && o.Position.Z()*pitched.Z() >= 0 {
		o.Position = pitched
	}
}

// View returns the view matrix of the camera.
func (o Orbit) View() mgl32.Mat4 {
	return mgl32.LookAtV(o.Position, mgl32.Vec3{}, up)
}

// Projection returns the perspective projection used by the exercises for a
// framebuffer of the given size.
func Projection(width, height int) mgl32.Mat4 {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(30), aspect, 0.1, 10)
}

// NormalizeCursor maps a cursor position in window pixels to [-1,1] on both
// axes with y pointing up.
func NormalizeCursor(x, y float64, width, height int) mgl32.Vec2 {
	if width <= 0 || height <= 0 {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{
		float32(2*x/float64(width) - 1),
		float32(1 - 2*y/float64(height)),
	}
}
