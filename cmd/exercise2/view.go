package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glexercises/glframework"
	"github.com/stewi1014/glexercises/julia"
	"github.com/stewi1014/glexercises/link"
)

type view struct {
	ctx  context.Context
	quit context.CancelCauseFunc

	win      *glframework.Window
	program  uint32
	quad     glframework.VAO
	uniforms *glframework.UniformSetter

	zoom       julia.Zoom
	iterations int32
	clock      clock
	saving     atomic.Bool

	ep       *link.Endpoint
	messages <-chan any
}

func run(ctx context.Context, quit context.CancelCauseFunc, opts options, ep *link.Endpoint) error {
	win, err := glframework.Init("Interaktive Computergrafik 2", opts.window)
	if err != nil {
		return err
	}
	defer win.Destroy()

	v := &view{
		ctx:        ctx,
		quit:       quit,
		win:        win,
		iterations: int32(opts.iterations),
		clock:      clock{now: win.Time},
		ep:         ep,
	}
	if ep != nil {
		v.messages = ep.Messages()
	}
	defer v.delete()

	if err := v.load(opts); err != nil {
		return err
	}

	win.SetScrollCallback(func(scroll float32, mouse mgl32.Vec2) {
		v.zoom.Scroll(scroll, mouse)
	})

	for win.IsRunning() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		win.BeginFrame()
		v.handleMessages()
		v.draw()
		win.EndFrame()
	}
	return nil
}

func (v *view) load(opts options) error {
	var err error
	if opts.shaderDir != "" {
		v.program, err = glframework.LoadShaderProgram(
			filepath.Join(opts.shaderDir, "julia.vert"),
			filepath.Join(opts.shaderDir, "julia.frag"),
		)
	} else {
		v.program, err = glframework.LoadShaderProgramSource(julia.VertexShader, julia.FragmentShader)
	}
	if err != nil {
		return err
	}

	v.uniforms, err = glframework.NewUniformSetter(v.program, julia.Uniforms{})
	if err != nil {
		return err
	}

	v.quad, err = glframework.NewVertexBuffer(julia.QuadVertices())
	if err != nil {
		return fmt.Errorf("julia quad: %w", err)
	}

	var vert julia.Vertex
	v.quad.AttribPointer(gl.GetAttribLocation(v.program, gl.Str("position\x00")), 2, unsafe.Offsetof(vert.Position))
	v.quad.AttribPointer(gl.GetAttribLocation(v.program, gl.Str("complex\x00")), 2, unsafe.Offsetof(vert.Complex))
	return nil
}

// current returns the uniforms of the frame being drawn.
func (v *view) current() julia.Uniforms {
	return v.zoom.Uniforms(v.clock.Time(), v.iterations)
}

func (v *view) draw() {
	width, height := v.win.WindowSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(v.program)
	v.uniforms.Set(v.current())
	v.quad.Draw(gl.TRIANGLE_STRIP)
}

func (v *view) handleMessages() {
	for {
		select {
		case msg, ok := <-v.messages:
			if !ok {
				v.messages = nil
				return
			}
			v.handle(msg)
		default:
			return
		}
	}
}

func (v *view) handle(msg any) {
	switch msg := msg.(type) {
	case link.JuliaOptions:
		if msg.Iterations > 0 {
			v.iterations = msg.Iterations
		}
		v.clock.SetPaused(msg.Paused)

	case link.SaveImage:
		v.save(msg)

	default:
		log.Printf("unknown message received %T", msg)
	}
}

// save renders the current view on the CPU in the background.
func (v *view) save(msg link.SaveImage) {
	if err := checkSize(msg); err != nil {
		v.status(link.Status{Error: err.Error()})
		return
	}
	if !v.saving.CompareAndSwap(false, true) {
		v.status(link.Status{Error: "already saving an image"})
		return
	}

	params := julia.Params{Uniforms: v.current()}
	go func() {
		defer link.CatchPanic(v.quit)
		defer v.saving.Store(false)

		err := saveImage(v.ctx, params, msg, func(p float64) {
			v.status(link.Status{Text: "Saving " + msg.Path, Progress: p})
		})
		if err != nil {
			v.status(link.Status{Error: err.Error()})
			return
		}
		v.status(link.Status{Text: "Saved " + msg.Path})
	}()
}

func (v *view) status(msg link.Status) {
	if v.ep == nil {
		if msg.Error != "" {
			log.Println(msg.Error)
		} else {
			log.Println(msg.Text)
		}
		return
	}
	v.ep.Send(msg)
}

func (v *view) delete() {
	v.quad.Delete()
	if v.program != 0 {
		gl.DeleteProgram(v.program)
	}
}

// saveImage writes the view described by params to save.Path, reporting
// progress every tenth of a second.
func saveImage(ctx context.Context, params julia.Params, save link.SaveImage, progress func(float64)) error {
	img := julia.NewImage(params, save.Width, save.Height)
	if save.Antialias {
		img.AntiAlias9x()
	}
	buf := julia.BufferImage(img)

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(time.Second / 10)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				progress(buf.Progress())
			case <-done:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return julia.SavePNG(ctx, save.Path, buf)
}

// clock is the animation time, which stands still while paused.
type clock struct {
	now    func() float32
	paused bool
	frozen float32
	offset float32
}

func (c *clock) Time() float32 {
	if c.paused {
		return c.frozen
	}
	return c.now() - c.offset
}

func (c *clock) SetPaused(paused bool) {
	switch {
	case paused && !c.paused:
		c.frozen = c.Time()
	case !paused && c.paused:
		c.offset = c.now() - c.frozen
	}
	c.paused = paused
}
