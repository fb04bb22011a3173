package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoFaces is returned for OBJ input without a single face.
var ErrNoFaces = errors.New("obj: no faces")

// LoadOBJ reads the Wavefront OBJ file at path. See ReadOBJ.
func LoadOBJ(path string) ([]Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vertices, err := ReadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vertices, nil
}

// ReadOBJ parses v, vt, vn and f statements into a triangle list. Polygons are
// triangulated as fans around their first corner. Attributes a face does not
// reference are left zero, as are colors. Other statements are ignored.
func ReadOBJ(r io.Reader) ([]Vertex, error) {
	var (
		positions []mgl32.Vec3
		texcoords []mgl32.Vec2
		normals   []mgl32.Vec3
		vertices  []Vertex
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			positions = append(positions, mgl32.Vec3{v[0], v[1], v[2]})

		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			texcoords = append(texcoords, mgl32.Vec2{v[0], v[1]})

		case "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			normals = append(normals, mgl32.Vec3{v[0], v[1], v[2]})

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners, got %d", line, len(fields)-1)
			}
			corners := make([]Vertex, len(fields)-1)
			for i, ref := range fields[1:] {
				v, err := resolveCorner(ref, positions, texcoords, normals)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				corners[i] = v
			}
			for i := 1; i+1 < len(corners); i++ {
				vertices = append(vertices, corners[0], corners[i], corners[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(vertices) == 0 {
		return nil, ErrNoFaces
	}
	return vertices, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d values, got %d", n, len(fields))
	}
	v := make([]float32, n)
	for i := range v {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

// resolveCorner turns a face corner such as "3", "3/1", "3//2" or "3/1/2"
// into a vertex.
func resolveCorner(ref string, positions []mgl32.Vec3, texcoords []mgl32.Vec2, normals []mgl32.Vec3) (Vertex, error) {
	var v Vertex
	parts := strings.Split(ref, "/")
	if len(parts) > 3 {
		return v, fmt.Errorf("bad face corner %q", ref)
	}

	i, err := objIndex(parts[0], len(positions))
	if err != nil {
		return v, fmt.Errorf("position of %q: %w", ref, err)
	}
	v.Position = positions[i]

	if len(parts) > 1 && parts[1] != "" {
		i, err := objIndex(parts[1], len(texcoords))
		if err != nil {
			return v, fmt.Errorf("texcoord of %q: %w", ref, err)
		}
		v.Texcoord = texcoords[i]
	}

	if len(parts) > 2 && parts[2] != "" {
		i, err := objIndex(parts[2], len(normals))
		if err != nil {
			return v, fmt.Errorf("normal of %q: %w", ref, err)
		}
		v.Normal = normals[i]
	}
	return v, nil
}

// objIndex converts a 1-based or negative (relative to the end) OBJ index
// into a slice index.
func objIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, fmt.Errorf("index %d out of range [1,%d]", i, n)
}
