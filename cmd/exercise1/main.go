// Command exercise1 draws a cube or a fractal tetrahedron, optionally an OBJ
// model, lit from the camera. Drag with the left mouse button to orbit.
package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/stewi1014/glexercises/glframework"
	"github.com/stewi1014/glexercises/link"
	"github.com/stewi1014/glexercises/mesh"
	"github.com/stewi1014/glexercises/panel"
)

//go:embed shaders/default.vert
var defaultVert string

//go:embed shaders/light.frag
var lightFrag string

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type options struct {
	window    glframework.Config
	glVersion string
	shaderDir string
	show      string
	depth     int
	normals   string
	objPath   string
	texture   string
	usePanel  bool
}

func parseFlags() (options, error) {
	opts := options{window: glframework.DefaultConfig()}

	flag.IntVar(&opts.window.Width, "width", opts.window.Width, "window width")
	flag.IntVar(&opts.window.Height, "height", opts.window.Height, "window height")
	flag.StringVar(&opts.glVersion, "gl", "4.6", "OpenGL core profile version")
	flag.BoolVar(&opts.window.Debug, "debug", false, "log OpenGL debug output")
	flag.StringVar(&opts.shaderDir, "shaders", "", "load default.vert and light.frag from this directory instead of the built in shaders")
	flag.StringVar(&opts.show, "mesh", link.Cube.String(), "mesh to draw first: cube, tetrahedron or model")
	flag.IntVar(&opts.depth, "depth", mesh.DefaultMaxDepth, "last subdivision depth of the fractal tetrahedron, -1 for none")
	flag.StringVar(&opts.normals, "normals", mesh.FlatNormals.String(), "fractal tetrahedron normals: flat or zero")
	flag.StringVar(&opts.objPath, "obj", "", "OBJ model to offer next to the cube and tetrahedron")
	flag.StringVar(&opts.texture, "texture", "", "image bound to texture1 for the model")
	flag.BoolVar(&opts.usePanel, "panel", true, "show the GTK control panel")
	flag.Parse()

	_, err := fmt.Sscanf(opts.glVersion, "%d.%d", &opts.window.Version[0], &opts.window.Version[1])
	if err != nil {
		return opts, fmt.Errorf("invalid -gl %q: %w", opts.glVersion, err)
	}
	if opts.depth > panel.MaxFractalDepth {
		return opts, fmt.Errorf("-depth %d is above %d", opts.depth, panel.MaxFractalDepth)
	}
	if _, err := parseNormals(opts.normals); err != nil {
		return opts, err
	}
	if _, err := parseMeshKind(opts.show); err != nil {
		return opts, err
	}
	return opts, nil
}

func parseNormals(s string) (mesh.NormalMode, error) {
	for _, mode := range []mesh.NormalMode{mesh.ZeroNormals, mesh.FlatNormals} {
		if s == mode.String() {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown normal mode %q", s)
}

func parseMeshKind(s string) (link.MeshKind, error) {
	for _, kind := range []link.MeshKind{link.Cube, link.Tetrahedron, link.Model} {
		if s == kind.String() {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown mesh %q", s)
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		log.Fatal(err)
	}

	mainContext, mainQuit := context.WithCancelCause(context.Background())

	var ep *link.Endpoint
	if opts.usePanel {
		ep = startPanel(mainContext, mainQuit, opts)
	}

	mainQuit(run(mainContext, opts, ep))

	if err := context.Cause(mainContext); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

func startPanel(ctx context.Context, quit context.CancelCauseFunc, opts options) *link.Endpoint {
	client, listener := link.NewPipeListener()
	defer listener.Close()

	server, err := listener.Accept()
	if err != nil {
		quit(err)
		return nil
	}

	normals, _ := parseNormals(opts.normals)
	show, _ := parseMeshKind(opts.show)
	build := panel.MeshControls(
		link.NewEndpoint(ctx, server, quit),
		show,
		link.FractalOptions{MaxDepth: opts.depth, FlatNormals: normals == mesh.FlatNormals},
		opts.objPath != "",
	)

	go func() {
		defer link.CatchPanic(quit)
		quit(panel.Run(ctx, panel.Config{
			ID:     "com.github.stewi1014.glexercises.exercise1",
			Title:  "Interaktive Computergrafik 1",
			Width:  240,
			Height: 320,
		}, build))
	}()

	return link.NewEndpoint(ctx, client, quit)
}
