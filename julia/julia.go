// Package julia holds everything the second exercise needs that does not
// touch OpenGL: the fullscreen quad, the zoom state, the shader uniforms and
// a CPU implementation of the fragment shader for saving images.
package julia

import (
	_ "embed"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/julia.vert
var VertexShader string

//go:embed shaders/julia.frag
var FragmentShader string

// DefaultIterations is the iteration limit used until the panel changes it.
const DefaultIterations = 256

// MaxZoomLevel bounds Zoom.Level so that 2^Level stays a finite float32.
const MaxZoomLevel = 120

// PlaneExtent is the half size of the complex plane region shown at zoom
// level 0.
var PlaneExtent = mgl32.Vec2{2.5, 1}

// Vertex is a corner of the quad. Position is in [0,1] screen units, Complex
// is the point of the complex plane shown there.
type Vertex struct {
	Position mgl32.Vec2
	Complex  mgl32.Vec2
}

// QuadVertices returns the quad covering the window, in triangle strip order.
func QuadVertices() []Vertex {
	return []Vertex{
		{Position: mgl32.Vec2{0, 0}, Complex: mgl32.Vec2{-PlaneExtent.X(), -PlaneExtent.Y()}},
		{Position: mgl32.Vec2{1, 0}, Complex: mgl32.Vec2{PlaneExtent.X(), -PlaneExtent.Y()}},
		{Position: mgl32.Vec2{0, 1}, Complex: mgl32.Vec2{-PlaneExtent.X(), PlaneExtent.Y()}},
		{Position: mgl32.Vec2{1, 1}, Complex: mgl32.Vec2{PlaneExtent.X(), PlaneExtent.Y()}},
	}
}

// Uniforms are the fragment shader inputs. Tags name the GLSL uniforms.
type Uniforms struct {
	Time         float32    `uniform:"time"`
	Zoom         float32    `uniform:"zoom"`
	ZoomPosition mgl32.Vec2 `uniform:"zoomPosition"`
	Iterations   int32      `uniform:"iterations"`
}

// Zoom tracks how far and where the view is zoomed. A point p of the window,
// in [-1,1] coordinates, shows the plane point p/2^Level + Offset (scaled by
// PlaneExtent).
type Zoom struct {
	Level  float32
	Offset mgl32.Vec2
}

// Scroll zooms in for positive amounts and out for negative ones, keeping
// the plane point under mouse where it is.
func (z *Zoom) Scroll(amount float32, mouse mgl32.Vec2) {
	anchor := z.World(mouse)
	z.Level = mgl32.Clamp(z.Level+0.2*amount, 0, MaxZoomLevel)
	z.Offset = anchor.Sub(mouse.Mul(1 / z.Scale()))
}

// World returns the plane point, in [-1,1] units, shown under mouse.
func (z Zoom) World(mouse mgl32.Vec2) mgl32.Vec2 {
	return mouse.Mul(1 / z.Scale()).Add(z.Offset)
}

// Scale returns the magnification, 2^Level.
func (z Zoom) Scale() float32 {
	return math32.Pow(2, z.Level)
}

// Center returns Offset in complex plane units.
func (z Zoom) Center() mgl32.Vec2 {
	return mgl32.Vec2{PlaneExtent.X() * z.Offset.X(), PlaneExtent.Y() * z.Offset.Y()}
}

// Uniforms returns the shader inputs for the given time and iteration limit.
func (z Zoom) Uniforms(time float32, iterations int32) Uniforms {
	return Uniforms{
		Time:         time,
		Zoom:         z.Scale(),
		ZoomPosition: z.Center(),
		Iterations:   iterations,
	}
}
