package julia_test

import (
	"context"
	"errors"
	"image/png"
	"math"
	"math/cmplx"
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stewi1014/glexercises/julia"
)

func TestQuadVertices(t *testing.T) {
	quad := julia.QuadVertices()
	if len(quad) != 4 {
		t.Fatalf("want 4 vertices, got %d", len(quad))
	}
	for _, v := range quad {
		// Position 0 maps to -extent, 1 to +extent.
		want := mgl32.Vec2{
			(2*v.Position.X() - 1) * 2.5,
			(2*v.Position.Y() - 1) * 1,
		}
		if v.Complex != want {
			t.Errorf("vertex at %v: want complex %v, got %v", v.Position, want, v.Complex)
		}
	}
}

func TestZoomKeepsCursorPoint(t *testing.T) {
	var z julia.Zoom
	mouse := mgl32.Vec2{0.3, -0.4}
	steps := []float32{1, 1, 3, -2, 5, -1}
	for _, step := range steps {
		before := z.World(mouse)
		z.Scroll(step, mouse)
		after := z.World(mouse)
		if before.Sub(after).Len() > 1e-5 {
			t.Fatalf("scroll %v moved cursor point from %v to %v", step, before, after)
		}
		// Move the cursor between scrolls.
		mouse = mgl32.Vec2{-mouse.Y(), mouse.X()}
	}
	if !mgl32.FloatEqualThreshold(z.Level, 1.4, 1e-5) {
		t.Errorf("want level 1.4, got %v", z.Level)
	}
}

func TestZoomClamp(t *testing.T) {
	var z julia.Zoom
	z.Scroll(-10, mgl32.Vec2{0.5, 0.5})
	if z.Level != 0 {
		t.Errorf("want level clamped to 0, got %v", z.Level)
	}
	if z.Scale() != 1 {
		t.Errorf("want scale 1, got %v", z.Scale())
	}
	z.Scroll(1e6, mgl32.Vec2{})
	if z.Level != julia.MaxZoomLevel {
		t.Errorf("want level clamped to %v, got %v", julia.MaxZoomLevel, z.Level)
	}
	if math32.IsInf(z.Scale(), 0) {
		t.Error("scale overflowed")
	}
}

func TestZoomUniforms(t *testing.T) {
	z := julia.Zoom{Level: 2, Offset: mgl32.Vec2{0.5, -0.5}}
	u := z.Uniforms(3, 100)
	if !mgl32.FloatEqualThreshold(u.Zoom, 4, 1e-5) {
		t.Errorf("want zoom 4, got %v", u.Zoom)
	}
	if u.ZoomPosition != (mgl32.Vec2{1.25, -0.5}) {
		t.Errorf("want zoom position (1.25,-0.5), got %v", u.ZoomPosition)
	}
	if u.Time != 3 || u.Iterations != 100 {
		t.Errorf("time or iterations not carried: %+v", u)
	}
}

func TestParamsConstant(t *testing.T) {
	for _, time := range []float32{0, 1, 10, 123.5} {
		p := julia.Params{Uniforms: julia.Uniforms{Time: time}}
		if got := cmplx.Abs(p.Constant()); math.Abs(got-0.7885) > 1e-9 {
			t.Errorf("time %v: want |c| = 0.7885, got %v", time, got)
		}
	}
}

func TestParamsEscape(t *testing.T) {
	p := julia.Params{Uniforms: julia.Uniforms{Zoom: 1, Iterations: 64}}
	i, _, escaped := p.Escape(mgl64.Vec2{2.5, 1})
	if !escaped || i != 0 {
		t.Errorf("far point: want escape at iteration 0, got %d escaped=%v", i, escaped)
	}
	if got := p.At(mgl64.Vec2{2.5, 1}); got == julia.InsideColour {
		t.Error("escaping point coloured as inside")
	}

	p.Iterations = 0
	if _, _, escaped := p.Escape(mgl64.Vec2{2.5, 1}); escaped {
		t.Error("nothing escapes with zero iterations")
	}
	if got := p.At(mgl64.Vec2{}); got != julia.InsideColour {
		t.Errorf("want inside colour, got %v", got)
	}
}

func TestImagePos(t *testing.T) {
	img := julia.NewImage(julia.Params{}, 2, 2)
	tests := []struct {
		x, y int
		want mgl64.Vec2
	}{
		{0, 0, mgl64.Vec2{-1.25, 0.5}},
		{1, 0, mgl64.Vec2{1.25, 0.5}},
		{0, 1, mgl64.Vec2{-1.25, -0.5}},
		{1, 1, mgl64.Vec2{1.25, -0.5}},
	}
	for _, test := range tests {
		if got := img.Pos(test.x, test.y); !got.ApproxEqual(test.want) {
			t.Errorf("pixel (%d,%d): want %v, got %v", test.x, test.y, test.want, got)
		}
	}
}

func testParams() julia.Params {
	return julia.Params{Uniforms: julia.Uniforms{Time: 2, Zoom: 1, Iterations: 32}}
}

func TestBufferImage(t *testing.T) {
	img := julia.NewImage(testParams(), 120, 40)
	buf := julia.BufferImage(img)
	if err := buf.Buffer(context.Background()); err != nil {
		t.Fatal(err)
	}
	if buf.Progress() != 1 {
		t.Errorf("want progress 1, got %v", buf.Progress())
	}
	for x := 0; x < 120; x += 7 {
		for y := 0; y < 40; y += 3 {
			if buf.At(x, y) != img.At(x, y) {
				t.Fatalf("pixel (%d,%d) differs from direct evaluation", x, y)
			}
		}
	}
}

func TestBufferImageCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	buf := julia.BufferImage(julia.NewImage(testParams(), 64, 64))
	if err := buf.Buffer(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "julia.png")
	img := julia.NewImage(testParams(), 30, 20)
	img.AntiAlias9x()
	if err := julia.SavePNG(context.Background(), path, julia.BufferImage(img)); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds().Dx() != 30 || decoded.Bounds().Dy() != 20 {
		t.Fatalf("want 30x20 image, got %v", decoded.Bounds())
	}
	r1, g1, b1, _ := decoded.At(5, 5).RGBA()
	r2, g2, b2, _ := img.At(5, 5).RGBA()
	if r1 != r2 || g1 != g2 || b1 != b2 {
		t.Errorf("saved pixel differs from rendered pixel")
	}
}
