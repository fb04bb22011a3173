// Package glframework is the scaffold shared by the exercises: one GLFW
// window with its OpenGL context, mouse handling with an orbit camera, and
// helpers for shaders, vertex arrays, textures and uniforms.
//
// All functions must be called from the goroutine that called Init, which
// must be locked to the main OS thread.
package glframework

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glexercises/camera"
)

// CameraDistance is the distance of the camera from the origin after Init.
const CameraDistance = 8

// Config controls the window created by Init.
type Config struct {
	Width, Height int
	// Version is the requested OpenGL core profile version.
	Version [2]int
	// Debug enables OpenGL debug output.
	Debug bool
}

// DefaultConfig matches the window of the exercises.
func DefaultConfig() Config {
	return Config{
		Width:   1024,
		Height:  768,
		Version: [2]int{4, 6},
	}
}

type (
	// MouseFunc receives the cursor position in [-1,1] window coordinates,
	// y up.
	MouseFunc func(mouse mgl32.Vec2)
	// ScrollFunc receives the vertical scroll offset and the cursor position.
	ScrollFunc func(scroll float32, mouse mgl32.Vec2)
)

// Window is the window, its context and the input state driving the camera.
type Window struct {
	*glfw.Window
	in input
}

// Init opens a window with a current OpenGL context. Destroy releases it.
func Init(title string, cfg Config) (*Window, error) {
	if cfg.Version == ([2]int{}) {
		cfg.Version = DefaultConfig().Version
	}

	err := glfw.Init()
	if err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Version[0])
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Version[1])
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	w := &Window{
		Window: window,
		in:     input{camera: camera.NewOrbit(CameraDistance)},
	}

	w.MakeContextCurrent()
	err = gl.Init()
	if err != nil {
		w.Destroy()
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}
	log.Println("OpenGL version", gl.GoStr(gl.GetString(gl.VERSION)))

	glfw.SwapInterval(1)
	w.Window.SetKeyCallback(w.key)
	w.Window.SetMouseButtonCallback(w.mouseButton)
	w.Window.SetCursorPosCallback(w.cursorPos)
	w.Window.SetScrollCallback(w.scroll)

	if cfg.Debug {
		gl.Enable(gl.DEBUG_OUTPUT)
		gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
		gl.DebugMessageCallback(glDebugMessage, nil)
	}

	glfw.SetTime(0)
	return w, nil
}

// Destroy closes the window and terminates GLFW.
func (w *Window) Destroy() {
	w.Window.Destroy()
	glfw.Terminate()
}

// BeginFrame processes pending input events.
func (w *Window) BeginFrame() {
	glfw.PollEvents()
}

// EndFrame shows the frame drawn since BeginFrame.
func (w *Window) EndFrame() {
	w.SwapBuffers()
}

// IsRunning reports whether the window has not been asked to close.
func (w *Window) IsRunning() bool {
	return !w.ShouldClose()
}

// WindowSize returns the framebuffer size in pixels.
func (w *Window) WindowSize() (width, height int) {
	return w.GetFramebufferSize()
}

// Camera returns the view matrix of the orbit camera.
func (w *Window) Camera() mgl32.Mat4 {
	return w.in.camera.View()
}

// Time returns the seconds since Init.
func (w *Window) Time() float32 {
	return float32(glfw.GetTime())
}

// MousePos returns the last cursor position in [-1,1] window coordinates.
func (w *Window) MousePos() mgl32.Vec2 {
	return w.in.mousePos
}

// SetMouseCallback sets the function called on every cursor movement.
// A nil f removes it.
func (w *Window) SetMouseCallback(f MouseFunc) {
	w.in.mouseCallback = f
}

// SetScrollCallback sets the function called on every vertical scroll.
// A nil f removes it.
func (w *Window) SetScrollCallback(f ScrollFunc) {
	w.in.scrollCallback = f
}

func (w *Window) key(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

func (w *Window) mouseButton(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		w.in.button(true)
	case glfw.Release:
		w.in.button(false)
	}
}

func (w *Window) cursorPos(_ *glfw.Window, x, y float64) {
	width, height := w.GetSize()
	w.in.move(camera.NormalizeCursor(x, y, width, height))
}

func (w *Window) scroll(_ *glfw.Window, _, yoff float64) {
	w.in.scroll(yoff)
}
