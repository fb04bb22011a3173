package julia

import (
	"math"
	"math/cmplx"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	constantRadius = 0.7885
	constantSpeed  = 0.25
)

// InsideColour is returned for points that never escape.
var InsideColour = mgl32.Vec3{0, 0, 0}

// Params evaluates the fragment shader on the CPU for the given uniforms.
type Params struct {
	Uniforms
}

// Constant returns c of z = z^2 + c at the current time.
func (p Params) Constant() complex128 {
	t := float64(p.Time) * constantSpeed
	return complex(constantRadius*math.Cos(t), constantRadius*math.Sin(t))
}

// Escape iterates z = z^2 + c from the plane point shown at quad coordinate
// pos. It reports the iteration the orbit left the radius 2 disc, the value
// of z at that moment and whether it left at all.
func (p Params) Escape(pos mgl64.Vec2) (iterations int, z complex128, escaped bool) {
	zoom := float64(p.Zoom)
	if zoom == 0 {
		zoom = 1
	}
	z = complex(
		pos.X()/zoom+float64(p.ZoomPosition.X()),
		pos.Y()/zoom+float64(p.ZoomPosition.Y()),
	)
	c := p.Constant()
	for ; iterations < int(p.Iterations); iterations++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return iterations, z, true
		}
	}
	return iterations, z, false
}

// At returns the colour of quad coordinate pos, where pos spans
// [-2.5,2.5]x[-1,1] like the Complex attribute of QuadVertices.
func (p Params) At(pos mgl64.Vec2) mgl32.Vec3 {
	i, z, escaped := p.Escape(pos)
	if !escaped {
		return InsideColour
	}
	smoothed := float64(i) + 1 - math.Log2(math.Log(cmplx.Abs(z)))
	return palette(smoothed)
}

func palette(t float64) mgl32.Vec3 {
	phase := mgl64.Vec3{0, 0.6, 1}
	var c mgl32.Vec3
	for i := range c {
		c[i] = float32(0.5 + 0.5*math.Cos(3+t*0.15+phase[i]))
	}
	return c
}
