package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stewi1014/glexercises/camera"
	"github.com/stewi1014/glexercises/glframework"
	"github.com/stewi1014/glexercises/link"
	"github.com/stewi1014/glexercises/mesh"
)

type uniforms struct {
	MVP            mgl32.Mat4 `uniform:"MVP"`
	LightDirection mgl32.Vec3 `uniform:"lightDirection"`
	UseTexture     int32      `uniform:"useTexture"`
}

type scene struct {
	win      *glframework.Window
	program  uint32
	uniforms *glframework.UniformSetter

	meshes  map[link.MeshKind]glframework.VAO
	show    link.MeshKind
	fractal mesh.Fractal
	texture glframework.Texture

	ep       *link.Endpoint
	messages <-chan any
}

func run(ctx context.Context, opts options, ep *link.Endpoint) error {
	win, err := glframework.Init("Interaktive Computergrafik 1", opts.window)
	if err != nil {
		return err
	}
	defer win.Destroy()

	s := &scene{
		win:    win,
		meshes: make(map[link.MeshKind]glframework.VAO),
		ep:     ep,
	}
	if ep != nil {
		s.messages = ep.Messages()
	}
	defer s.delete()

	if err := s.load(opts); err != nil {
		return err
	}

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	for win.IsRunning() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		win.BeginFrame()
		s.handleMessages()
		s.draw()
		win.EndFrame()
	}
	return nil
}

func (s *scene) load(opts options) error {
	var err error
	if opts.shaderDir != "" {
		s.program, err = glframework.LoadShaderProgram(
			filepath.Join(opts.shaderDir, "default.vert"),
			filepath.Join(opts.shaderDir, "light.frag"),
		)
	} else {
		s.program, err = glframework.LoadShaderProgramSource(defaultVert, lightFrag)
	}
	if err != nil {
		return err
	}

	s.uniforms, err = glframework.NewUniformSetter(s.program, uniforms{})
	if err != nil {
		return err
	}

	s.meshes[link.Cube], err = glframework.CreateVertexArrayObject(mesh.CubeVertices())
	if err != nil {
		return fmt.Errorf("cube: %w", err)
	}

	normals, err := parseNormals(opts.normals)
	if err != nil {
		return err
	}
	s.fractal = mesh.DefaultFractal()
	s.fractal.MaxDepth = opts.depth
	s.fractal.Normals = normals
	if err := s.buildFractal(); err != nil {
		return err
	}

	if opts.objPath != "" {
		vertices, err := mesh.LoadOBJ(opts.objPath)
		if err != nil {
			return err
		}
		s.meshes[link.Model], err = glframework.CreateVertexArrayObject(paint(vertices, mgl32.Vec3{1, 1, 1}))
		if err != nil {
			return fmt.Errorf("%s: %w", opts.objPath, err)
		}
	}

	if opts.texture != "" {
		s.texture, err = glframework.LoadTexture(opts.texture)
		if err != nil {
			return err
		}
	}

	s.show, err = parseMeshKind(opts.show)
	if err != nil {
		return err
	}
	if _, ok := s.meshes[s.show]; !ok {
		return fmt.Errorf("cannot draw %v without -obj", s.show)
	}
	return nil
}

func (s *scene) buildFractal() error {
	vao, err := glframework.CreateVertexArrayObject(s.fractal.Vertices())
	if err != nil {
		return fmt.Errorf("fractal tetrahedron: %w", err)
	}

	old := s.meshes[link.Tetrahedron]
	old.Delete()
	s.meshes[link.Tetrahedron] = vao

	s.status(link.Status{Text: fmt.Sprintf(
		"%d tetrahedra, %d vertices, %v normals",
		s.fractal.LeafCount(), vao.VertexCount, s.fractal.Normals,
	)})
	return nil
}

// paint returns vertices with every color set to c. OBJ files carry none.
func paint(vertices []mesh.Vertex, c mgl32.Vec3) []mesh.Vertex {
	for i := range vertices {
		vertices[i].Color = c
	}
	return vertices
}

func (s *scene) handleMessages() {
	for {
		select {
		case v, ok := <-s.messages:
			if !ok {
				s.messages = nil
				return
			}
			s.handle(v)
		default:
			return
		}
	}
}

func (s *scene) handle(v any) {
	switch msg := v.(type) {
	case link.ShowMesh:
		if _, ok := s.meshes[msg.Mesh]; !ok {
			s.status(link.Status{Error: fmt.Sprintf("no %v loaded", msg.Mesh)})
			return
		}
		s.show = msg.Mesh

	case link.FractalOptions:
		s.fractal.MaxDepth = msg.MaxDepth
		s.fractal.Normals = mesh.ZeroNormals
		if msg.FlatNormals {
			s.fractal.Normals = mesh.FlatNormals
		}
		if err := s.buildFractal(); err != nil {
			s.status(link.Status{Error: err.Error()})
		}

	default:
		log.Printf("unknown message received %T", v)
	}
}

func (s *scene) status(msg link.Status) {
	if s.ep == nil {
		if msg.Error != "" {
			log.Println(msg.Error)
		} else {
			log.Println(msg.Text)
		}
		return
	}
	s.ep.Send(msg)
}

func (s *scene) draw() {
	width, height := s.win.WindowSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(s.program)

	model := mgl32.Ident4()
	view := s.win.Camera()
	projection := camera.Projection(width, height)

	u := uniforms{
		MVP:            projection.Mul4(view).Mul4(model),
		LightDirection: s.lightDirection(),
	}
	if s.show == link.Model && s.texture.ID != 0 {
		u.UseTexture = 1
		s.texture.Bind(1)
	}
	s.uniforms.Set(u)

	s.meshes[s.show].Draw(gl.TRIANGLES)
}

// lightDirection points from the camera towards the origin, lighting what
// the camera sees.
func (s *scene) lightDirection() mgl32.Vec3 {
	inv := s.win.Camera().Inv()
	eye := inv.Col(3).Vec3()
	if eye.Len() == 0 {
		return mgl32.Vec3{0, 0, -1}
	}
	return eye.Mul(-1).Normalize()
}

func (s *scene) delete() {
	for kind, vao := range s.meshes {
		vao.Delete()
		delete(s.meshes, kind)
	}
	s.texture.Delete()
	if s.program != 0 {
		gl.DeleteProgram(s.program)
	}
}
