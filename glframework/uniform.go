package glframework

import (
	"fmt"
	"log"
	"reflect"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// UniformSetter uploads the fields of a struct to the uniforms named by their
// `uniform` tags. Fields without a tag are skipped.
type UniformSetter struct {
	program uint32
	typ     reflect.Type
	fields  []uniformField
}

type uniformField struct {
	index    int
	name     string
	location int32
}

// NewUniformSetter looks up the uniforms of program for the struct type of
// v, which may be a struct or a pointer to one.
func NewUniformSetter(program uint32, v any) (*UniformSetter, error) {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("uniforms must be a struct, got %v", t)
	}

	s := &UniformSetter{
		program: program,
		typ:     t,
		fields:  uniformFields(t),
	}
	for i := range s.fields {
		s.fields[i].location = gl.GetUniformLocation(program, gl.Str(s.fields[i].name+"\x00"))
		if s.fields[i].location < 0 {
			log.Printf("uniform %q is not used by program %v", s.fields[i].name, program)
		}
	}
	return s, nil
}

func uniformFields(t reflect.Type) []uniformField {
	var fields []uniformField
	for i := 0; i < t.NumField(); i++ {
		name, ok := t.Field(i).Tag.Lookup("uniform")
		if !ok || name == "" || name == "-" {
			continue
		}
		fields = append(fields, uniformField{index: i, name: name, location: -1})
	}
	return fields
}

// Set uploads v, which must be of the type the setter was created for, to
// the program. The program must be in use.
func (s *UniformSetter) Set(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Type() != s.typ {
		log.Printf("uniform setter for %v given %v", s.typ, rv.Type())
		return
	}
	if !rv.CanAddr() {
		p := reflect.New(s.typ)
		p.Elem().Set(rv)
		rv = p.Elem()
	}

	for _, field := range s.fields {
		if field.location < 0 {
			continue
		}
		setUniform(field.location, rv.Field(field.index))
	}
}

func setUniform(loc int32, f reflect.Value) {
	ptr := f.Addr().UnsafePointer()
	count := int32(1)

SwitchElem:
	switch f.Type() {
	// Natural Array types
	case reflect.TypeOf(mgl32.Vec2{}):
		gl.Uniform2fv(loc, count, (*float32)(ptr))
		return
	case reflect.TypeOf(mgl32.Vec3{}):
		gl.Uniform3fv(loc, count, (*float32)(ptr))
		return
	case reflect.TypeOf(mgl32.Vec4{}):
		gl.Uniform4fv(loc, count, (*float32)(ptr))
		return
	case reflect.TypeOf(mgl64.Vec2{}):
		gl.Uniform2dv(loc, count, (*float64)(ptr))
		return
	case reflect.TypeOf(mgl64.Vec3{}):
		gl.Uniform3dv(loc, count, (*float64)(ptr))
		return
	case reflect.TypeOf(mgl64.Vec4{}):
		gl.Uniform4dv(loc, count, (*float64)(ptr))
		return
	case reflect.TypeOf(mgl32.Mat2{}):
		gl.UniformMatrix2fv(loc, count, false, (*float32)(ptr))
		return
	case reflect.TypeOf(mgl32.Mat3{}):
		gl.UniformMatrix3fv(loc, count, false, (*float32)(ptr))
		return
	case reflect.TypeOf(mgl32.Mat4{}):
		gl.UniformMatrix4fv(loc, count, false, (*float32)(ptr))
		return
	case reflect.TypeOf(int32(0)):
		gl.Uniform1iv(loc, count, (*int32)(ptr))
		return
	case reflect.TypeOf(uint32(0)):
		gl.Uniform1uiv(loc, count, (*uint32)(ptr))
		return
	case reflect.TypeOf(float32(0)):
		gl.Uniform1fv(loc, count, (*float32)(ptr))
		return
	case reflect.TypeOf(float64(0)):
		gl.Uniform1dv(loc, count, (*float64)(ptr))
		return
	}

	if f.Kind() == reflect.Array && f.Len() > 0 {
		count = int32(f.Len())
		f = f.Index(0)
		goto SwitchElem
	}

	log.Printf("unsupported uniform type %v", f.Type())
}
