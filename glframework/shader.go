package glframework

import (
	"errors"
	"fmt"
	"log"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/stewi1014/glexercises/asset"
)

// ErrZeroShader is returned when linking is attempted with a shader that
// failed to compile.
var ErrZeroShader = errors.New("zero shader handle")

// Attribute locations bound by LinkShaderProgram. They match the field order
// of mesh.Vertex.
const (
	PositionAttrib uint32 = iota
	TexcoordAttrib
	NormalAttrib
	ColorAttrib
)

var attribNames = [...]string{
	PositionAttrib: "vertexPosition",
	TexcoordAttrib: "vertexTexcoord",
	NormalAttrib:   "vertexNormal",
	ColorAttrib:    "vertexColor",
}

// TextureUnits is the number of sampler uniforms, texture1 up to
// texture4, that LinkShaderProgram binds to the texture units of the same
// number.
const TextureUnits = 4

// CompileShader compiles source as a shader of the given type. A failed
// compile deletes the shader, logs the info log and returns it as an error.
func CompileShader(shaderType uint32, source string) (uint32, error) {
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source + "\x00")
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		infoLog := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)

		infoLog = strings.TrimRight(infoLog, "\x00")
		log.Println(infoLog)
		return 0, fmt.Errorf("%s failed to compile: %v", shaderTypeName(shaderType), infoLog)
	}

	return shader, nil
}

// LinkShaderProgram links the two shaders into a program. The attributes
// vertexPosition, vertexTexcoord, vertexNormal and vertexColor are bound to
// locations 0 to 3 and the samplers texture1 to texture4 to units 1 to 4.
// The shaders are detached but not deleted.
func LinkShaderProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	if vertexShader == 0 || fragmentShader == 0 {
		return 0, ErrZeroShader
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	if err := linkStatus(program); err != nil {
		gl.DeleteProgram(program)
		log.Println(err)
		return 0, err
	}

	gl.UseProgram(program)
	for loc, name := range attribNames {
		gl.BindAttribLocation(program, uint32(loc), gl.Str(name+"\x00"))
	}
	gl.BindFragDataLocation(program, 0, gl.Str("outputColor\x00"))
	gl.LinkProgram(program)

	if err := linkStatus(program); err != nil {
		gl.UseProgram(0)
		gl.DeleteProgram(program)
		log.Println(err)
		return 0, err
	}

	for unit := int32(1); unit <= TextureUnits; unit++ {
		loc := gl.GetUniformLocation(program, gl.Str(fmt.Sprintf("texture%d\x00", unit)))
		gl.Uniform1i(loc, unit)
	}
	gl.UseProgram(0)

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)

	return program, nil
}

func linkStatus(program uint32) error {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status != gl.FALSE {
		return nil
	}

	var l int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &l)

	infoLog := strings.Repeat("\x00", int(l+1))
	gl.GetProgramInfoLog(program, l, nil, gl.Str(infoLog))
	return fmt.Errorf("failed to link program: %v", strings.TrimRight(infoLog, "\x00"))
}

// LoadShaderProgram reads, compiles and links a vertex and fragment shader
// from disk.
func LoadShaderProgram(vertPath, fragPath string) (uint32, error) {
	vert, err := asset.LoadShaderSource(vertPath)
	if err != nil {
		return 0, err
	}
	frag, err := asset.LoadShaderSource(fragPath)
	if err != nil {
		return 0, err
	}

	program, err := LoadShaderProgramSource(vert, frag)
	if err != nil {
		return 0, fmt.Errorf("%s, %s: %w", vertPath, fragPath, err)
	}
	return program, nil
}

// LoadShaderProgramSource compiles and links a program from GLSL sources.
// The intermediate shader objects are always deleted.
func LoadShaderProgramSource(vert, frag string) (uint32, error) {
	vertexShader, err := CompileShader(gl.VERTEX_SHADER, vert)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := CompileShader(gl.FRAGMENT_SHADER, frag)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragmentShader)

	return LinkShaderProgram(vertexShader, fragmentShader)
}

func shaderTypeName(shaderType uint32) string {
	switch shaderType {
	case gl.VERTEX_SHADER:
		return "vertex shader"
	case gl.FRAGMENT_SHADER:
		return "fragment shader"
	case gl.GEOMETRY_SHADER:
		return "geometry shader"
	case gl.COMPUTE_SHADER:
		return "compute shader"
	}
	return "shader"
}
