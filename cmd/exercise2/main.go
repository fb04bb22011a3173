// Command exercise2 draws an animated Julia set. Scroll to zoom towards the
// cursor. The panel saves the current view as a PNG rendered on the CPU.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/stewi1014/glexercises/glframework"
	"github.com/stewi1014/glexercises/julia"
	"github.com/stewi1014/glexercises/link"
	"github.com/stewi1014/glexercises/panel"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type options struct {
	window     glframework.Config
	glVersion  string
	shaderDir  string
	iterations int
	save       link.SaveImage
	render     string
	time       float64
	usePanel   bool
}

func parseFlags() (options, error) {
	opts := options{window: glframework.DefaultConfig()}

	flag.IntVar(&opts.window.Width, "width", opts.window.Width, "window width")
	flag.IntVar(&opts.window.Height, "height", opts.window.Height, "window height")
	flag.StringVar(&opts.glVersion, "gl", "4.6", "OpenGL core profile version")
	flag.BoolVar(&opts.window.Debug, "debug", false, "log OpenGL debug output")
	flag.StringVar(&opts.shaderDir, "shaders", "", "load julia.vert and julia.frag from this directory instead of the built in shaders")
	flag.IntVar(&opts.iterations, "iterations", julia.DefaultIterations, "iteration limit")
	flag.StringVar(&opts.save.Path, "o", "julia.png", "file the panel saves to")
	flag.IntVar(&opts.save.Width, "save-width", 2500, "width of saved images")
	flag.IntVar(&opts.save.Height, "save-height", 1000, "height of saved images")
	flag.BoolVar(&opts.save.Antialias, "antialias", true, "supersample saved images")
	flag.StringVar(&opts.render, "render", "", "render the unzoomed view to this PNG file without opening a window, then exit")
	flag.Float64Var(&opts.time, "time", 0, "animation time used by -render")
	flag.BoolVar(&opts.usePanel, "panel", true, "show the GTK control panel")
	flag.Parse()

	_, err := fmt.Sscanf(opts.glVersion, "%d.%d", &opts.window.Version[0], &opts.window.Version[1])
	if err != nil {
		return opts, fmt.Errorf("invalid -gl %q: %w", opts.glVersion, err)
	}
	if opts.iterations <= 0 {
		return opts, fmt.Errorf("-iterations must be positive, got %d", opts.iterations)
	}
	if err := checkSize(opts.save); err != nil {
		return opts, err
	}
	return opts, nil
}

func checkSize(save link.SaveImage) error {
	if save.Width <= 0 || save.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", save.Width, save.Height)
	}
	return nil
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatal(err)
	}

	mainContext, mainQuit := context.WithCancelCause(context.Background())

	if opts.render != "" {
		mainQuit(renderFile(mainContext, opts))
	} else {
		var ep *link.Endpoint
		if opts.usePanel {
			ep = startPanel(mainContext, mainQuit, opts)
		}
		mainQuit(run(mainContext, mainQuit, opts, ep))
	}

	if err := context.Cause(mainContext); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

// renderFile saves the view the window opens with.
func renderFile(ctx context.Context, opts options) error {
	save := opts.save
	save.Path = opts.render

	params := julia.Params{Uniforms: julia.Zoom{}.Uniforms(float32(opts.time), int32(opts.iterations))}
	err := saveImage(ctx, params, save, func(p float64) {
		log.Printf("rendering %s: %.0f%%", save.Path, p*100)
	})
	if err != nil {
		return err
	}
	log.Println("saved", save.Path)
	return nil
}

func startPanel(ctx context.Context, quit context.CancelCauseFunc, opts options) *link.Endpoint {
	client, listener := link.NewPipeListener()
	defer listener.Close()

	server, err := listener.Accept()
	if err != nil {
		quit(err)
		return nil
	}

	build := panel.JuliaControls(
		link.NewEndpoint(ctx, server, quit),
		link.JuliaOptions{Iterations: int32(opts.iterations)},
		opts.save,
	)

	go func() {
		defer link.CatchPanic(quit)
		quit(panel.Run(ctx, panel.Config{
			ID:     "com.github.stewi1014.glexercises.exercise2",
			Title:  "Interaktive Computergrafik 2",
			Width:  260,
			Height: 360,
		}, build))
	}()

	return link.NewEndpoint(ctx, client, quit)
}
