package camera_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glexercises/camera"
)

func TestNormalizeCursor(t *testing.T) {
	tests := []struct {
		x, y float64
		want mgl32.Vec2
	}{
		{x: 0, y: 0, want: mgl32.Vec2{-1, 1}},
		{x: 800, y: 600, want: mgl32.Vec2{1, -1}},
		{x: 400, y: 300, want: mgl32.Vec2{0, 0}},
		{x: 200, y: 450, want: mgl32.Vec2{-0.5, -0.5}},
	}
	for _, test := range tests {
		got := camera.NormalizeCursor(test.x, test.y, 800, 600)
		if !got.ApproxEqual(test.want) {
			t.Errorf("(%v,%v): want %v, got %v", test.x, test.y, test.want, got)
		}
	}
	if got := camera.NormalizeCursor(10, 10, 0, 0); got != (mgl32.Vec2{}) {
		t.Errorf("zero sized window: want zero, got %v", got)
	}
}

func TestOrbitYaw(t *testing.T) {
	o := camera.NewOrbit(8)
	o.Drag(mgl32.Vec2{1, 0})
	if o.Position.Sub(mgl32.Vec3{0, 0, -8}).Len() > 1e-4 {
		t.Errorf("half width drag: want camera behind origin, got %v", o.Position)
	}
	o.Drag(mgl32.Vec2{1, 0})
	if o.Position.Sub(mgl32.Vec3{0, 0, 8}).Len() > 1e-4 {
		t.Errorf("full width drag: want start position, got %v", o.Position)
	}
}

func TestOrbitPitch(t *testing.T) {
	o := camera.NewOrbit(8)
	o.Drag(mgl32.Vec2{0, 0.1})
	if !mgl32.FloatEqualThreshold(o.Position.Len(), 8, 1e-4) {
		t.Errorf("pitch changed distance: %v", o.Position.Len())
	}
	wantY := 8 * math32.Sin(0.1*math32.Pi)
	if !mgl32.FloatEqualThreshold(math32.Abs(o.Position.Y()), wantY, 1e-4) {
		t.Errorf("want |y| = %v, got %v", wantY, o.Position.Y())
	}

	before := o.Position
	o.Drag(mgl32.Vec2{0, 0.8})
	if o.Position != before {
		t.Errorf("pitch over the pole should be rejected, moved to %v", o.Position)
	}
}

func TestProjectionZeroHeight(t *testing.T) {
	m := camera.Projection(640, 0)
	for _, v := range m {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			t.Fatalf("projection has non finite entry: %v", m)
		}
	}
}
