package link

import "encoding/gob"

func init() {
	gob.Register(ShowMesh{})
	gob.Register(FractalOptions{})
	gob.Register(JuliaOptions{})
	gob.Register(SaveImage{})
	gob.Register(Status{})
}

// MeshKind names a mesh the first exercise can draw.
type MeshKind int

const (
	Cube MeshKind = iota
	Tetrahedron
	Model
)

func (k MeshKind) String() string {
	switch k {
	case Cube:
		return "cube"
	case Tetrahedron:
		return "tetrahedron"
	case Model:
		return "model"
	}
	return "unknown"
}

// ShowMesh selects the mesh to draw.
type ShowMesh struct {
	Mesh MeshKind
}

// FractalOptions regenerates the fractal tetrahedron.
type FractalOptions struct {
	MaxDepth    int
	FlatNormals bool
}

// JuliaOptions changes how the Julia set is iterated.
type JuliaOptions struct {
	Iterations int32
	Paused     bool
}

// SaveImage asks the render loop to save the current view.
type SaveImage struct {
	Path          string
	Width, Height int
	Antialias     bool
}

// Status is shown by the panel. Progress, in [0,1], drives the progress
// bar of a running save. A non-empty Error is shown in a dialog.
type Status struct {
	Text     string
	Progress float64
	Error    string
}
