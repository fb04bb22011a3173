package julia

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// PixelFunc returns the colour at a quad coordinate.
type PixelFunc func(pos mgl64.Vec2) mgl32.Vec3

// NewImage returns an image of the view described by params, computed lazily
// on every At call.
func NewImage(params Params, width, height int) *Image {
	return &Image{
		pixel:  params.At,
		bounds: image.Rect(0, 0, width, height),
	}
}

// Image adapts a PixelFunc to image.Image, stretching the quad over the
// bounds the same way the window does.
type Image struct {
	pixel  PixelFunc
	bounds image.Rectangle
	// offset is the distance between antialiasing samples, in quad units.
	offset mgl64.Vec2
}

// AntiAlias9x makes At average 9 samples spread over each pixel.
func (i *Image) AntiAlias9x() {
	i.offset = mgl64.Vec2{
		2 * float64(PlaneExtent.X()) / float64(i.bounds.Dx()) / 3,
		2 * float64(PlaneExtent.Y()) / float64(i.bounds.Dy()) / 3,
	}
}

// Pos returns the quad coordinate of the center of pixel x, y.
func (i *Image) Pos(x, y int) mgl64.Vec2 {
	fx := (float64(x-i.bounds.Min.X) + 0.5) / float64(i.bounds.Dx())
	fy := (float64(y-i.bounds.Min.Y) + 0.5) / float64(i.bounds.Dy())
	return mgl64.Vec2{
		(2*fx - 1) * float64(PlaneExtent.X()),
		(1 - 2*fy) * float64(PlaneExtent.Y()),
	}
}

func (i *Image) At(x, y int) color.Color {
	pos := i.Pos(x, y)
	var c mgl32.Vec3
	if i.offset == (mgl64.Vec2{}) {
		c = i.pixel(pos)
	} else {
		for dx := -1.; dx <= 1; dx++ {
			for dy := -1.; dy <= 1; dy++ {
				c = c.Add(i.pixel(mgl64.Vec2{pos[0] + dx*i.offset[0], pos[1] + dy*i.offset[1]}))
			}
		}
		c = c.Mul(1 / float32(9))
	}
	return color.NRGBA{
		R: uint8(mgl32.Clamp(c[0], 0, 1) * 255),
		G: uint8(mgl32.Clamp(c[1], 0, 1) * 255),
		B: uint8(mgl32.Clamp(c[2], 0, 1) * 255),
		A: 0xff,
	}
}

func (i *Image) Bounds() image.Rectangle {
	return i.bounds
}

func (i *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (i *Image) Opaque() bool {
	return true
}

// BufferImage returns an image that holds the pixels of img once Buffer has
// run.
func BufferImage(img image.Image) *BufferedImage {
	return &BufferedImage{
		Image: img,
		buff:  image.NewNRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy())),
	}
}

// BufferedImage computes the pixels of a slow image in parallel.
type BufferedImage struct {
	image.Image
	buff *image.NRGBA
	done atomic.Int64
}

func (b *BufferedImage) Bounds() image.Rectangle {
	return b.buff.Bounds()
}

func (b *BufferedImage) At(x, y int) color.Color {
	return b.buff.At(x, y)
}

func (b *BufferedImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (b *BufferedImage) Opaque() bool {
	return true
}

// Progress returns the fraction of pixels buffered so far.
func (b *BufferedImage) Progress() float64 {
	total := b.buff.Bounds().Dx() * b.buff.Bounds().Dy()
	if total == 0 {
		return 1
	}
	return float64(b.done.Load()) / float64(total)
}

// Buffer evaluates every pixel, splitting the columns into chunks run on
// their own goroutines. It stops early when ctx is done.
func (b *BufferedImage) Buffer(ctx context.Context) error {
	min, max := b.Image.Bounds().Min, b.Image.Bounds().Max
	chunkSize := 50
	var wg sync.WaitGroup

	for chunkMin := min.X; chunkMin < max.X; chunkMin += chunkSize {
		chunkMin := chunkMin
		chunkMax := chunkMin + chunkSize
		if chunkMax > max.X {
			chunkMax = max.X
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			for x := chunkMin; x < chunkMax; x++ {
				if ctx.Err() != nil {
					return
				}

				for y := min.Y; y < max.Y; y++ {
					b.buff.Set(x-min.X, y-min.Y, b.Image.At(x, y))
				}
				b.done.Add(int64(max.Y - min.Y))
			}
		}()
	}

	wg.Wait()

	return ctx.Err()
}

// SavePNG buffers img and writes it to path. A failed write removes the
// partial file.
func SavePNG(ctx context.Context, path string, img *BufferedImage) (err error) {
	if err := img.Buffer(ctx); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := file.Close()
		if err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
