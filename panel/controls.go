package panel

import (
	"github.com/gotk3/gotk3/gtk"
	"github.com/stewi1014/glexercises/julia"
	"github.com/stewi1014/glexercises/link"
)

// MaxFractalDepth bounds the depth spin button. Depth 7 is already 4^8
// tetrahedra.
const MaxFractalDepth = 7

// MeshControls builds the first exercise's panel: which mesh to draw and how
// to build the fractal tetrahedron. The model choice is only offered when
// hasModel is set.
func MeshControls(ep *link.Endpoint, show link.MeshKind, fractal link.FractalOptions, hasModel bool) BuildFunc {
	return func(win *gtk.ApplicationWindow) (gtk.IWidget, error) {
		box, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 6)
		if err != nil {
			return nil, err
		}
		box.SetBorderWidth(10)

		meshFrame, _ := gtk.FrameNew("Rendering Parameters")
		meshBox, _ := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 2)
		meshFrame.Add(meshBox)

		kinds := []link.MeshKind{link.Cube, link.Tetrahedron}
		if hasModel {
			kinds = append(kinds, link.Model)
		}

		var group *gtk.RadioButton
		for _, kind := range kinds {
			kind := kind
			var button *gtk.RadioButton
			if group == nil {
				button, err = gtk.RadioButtonNewWithLabel(nil, "Draw "+kind.String())
			} else {
				button, err = gtk.RadioButtonNewWithLabelFromWidget(group, "Draw "+kind.String())
			}
			if err != nil {
				return nil, err
			}
			if group == nil {
				group = button
			}

			button.SetActive(kind == show)
			button.Connect("toggled", func(b *gtk.RadioButton) {
				if b.GetActive() {
					ep.Send(link.ShowMesh{Mesh: kind})
				}
			})
			meshBox.PackStart(button, false, false, 0)
		}

		fractalFrame, _ := gtk.FrameNew("Fractal Tetrahedron")
		fractalGrid, _ := gtk.GridNew()
		fractalGrid.SetRowSpacing(4)
		fractalGrid.SetColumnSpacing(6)
		fractalFrame.Add(fractalGrid)

		depthLabel, _ := gtk.LabelNew("Depth")
		depth, err := gtk.SpinButtonNewWithRange(-1, MaxFractalDepth, 1)
		if err != nil {
			return nil, err
		}
		depth.SetValue(float64(fractal.MaxDepth))

		flat, err := gtk.CheckButtonNewWithLabel("Flat normals")
		if err != nil {
			return nil, err
		}
		flat.SetActive(fractal.FlatNormals)

		send := func() {
			ep.Send(link.FractalOptions{
				MaxDepth:    depth.GetValueAsInt(),
				FlatNormals: flat.GetActive(),
			})
		}
		depth.Connect("value-changed", send)
		flat.Connect("toggled", send)

		fractalGrid.Attach(depthLabel, 0, 0, 1, 1)
		fractalGrid.Attach(depth, 1, 0, 1, 1)
		fractalGrid.Attach(flat, 0, 1, 2, 1)

		status, err := newStatusView()
		if err != nil {
			return nil, err
		}

		box.PackStart(meshFrame, false, false, 0)
		box.PackStart(fractalFrame, false, false, 0)
		box.PackEnd(status, false, false, 0)

		go pump(ep, win, status)
		return box, nil
	}
}

// JuliaControls builds the second exercise's panel: iteration limit,
// animation and saving the current view to PNG.
func JuliaControls(ep *link.Endpoint, opts link.JuliaOptions, save link.SaveImage) BuildFunc {
	return func(win *gtk.ApplicationWindow) (gtk.IWidget, error) {
		box, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 6)
		if err != nil {
			return nil, err
		}
		box.SetBorderWidth(10)

		viewFrame, _ := gtk.FrameNew("Julia Set")
		viewGrid, _ := gtk.GridNew()
		viewGrid.SetRowSpacing(4)
		viewGrid.SetColumnSpacing(6)
		viewFrame.Add(viewGrid)

		iterationsLabel, _ := gtk.LabelNew("Iterations")
		iterations, err := gtk.SpinButtonNewWithRange(1, 1<<14, 16)
		if err != nil {
			return nil, err
		}
		if opts.Iterations <= 0 {
			opts.Iterations = julia.DefaultIterations
		}
		iterations.SetValue(float64(opts.Iterations))

		paused, err := gtk.CheckButtonNewWithLabel("Pause animation")
		if err != nil {
			return nil, err
		}
		paused.SetActive(opts.Paused)

		sendOptions := func() {
			ep.Send(link.JuliaOptions{
				Iterations: int32(iterations.GetValueAsInt()),
				Paused:     paused.GetActive(),
			})
		}
		iterations.Connect("value-changed", sendOptions)
		paused.Connect("toggled", sendOptions)

		viewGrid.Attach(iterationsLabel, 0, 0, 1, 1)
		viewGrid.Attach(iterations, 1, 0, 1, 1)
		viewGrid.Attach(paused, 0, 1, 2, 1)

		saveFrame, _ := gtk.FrameNew("Save Image")
		saveGrid, _ := gtk.GridNew()
		saveGrid.SetRowSpacing(4)
		saveGrid.SetColumnSpacing(6)
		saveFrame.Add(saveGrid)

		pathLabel, _ := gtk.LabelNew("File")
		path, err := gtk.EntryNew()
		if err != nil {
			return nil, err
		}
		path.SetText(save.Path)

		widthLabel, _ := gtk.LabelNew("Width")
		width, err := gtk.SpinButtonNewWithRange(1, 1<<14, 1)
		if err != nil {
			return nil, err
		}
		width.SetValue(float64(save.Width))

		heightLabel, _ := gtk.LabelNew("Height")
		height, err := gtk.SpinButtonNewWithRange(1, 1<<14, 1)
		if err != nil {
			return nil, err
		}
		height.SetValue(float64(save.Height))

		antialias, err := gtk.CheckButtonNewWithLabel("Antialias")
		if err != nil {
			return nil, err
		}
		antialias.SetActive(save.Antialias)

		saveButton, err := gtk.ButtonNewWithLabel("Save")
		if err != nil {
			return nil, err
		}
		saveButton.Connect("clicked", func() {
			name, err := path.GetText()
			if err != nil {
				NewErrorDialog(win, err.Error())
				return
			}
			ep.Send(link.SaveImage{
				Path:      name,
				Width:     width.GetValueAsInt(),
				Height:    height.GetValueAsInt(),
				Antialias: antialias.GetActive(),
			})
		})

		saveGrid.Attach(pathLabel, 0, 0, 1, 1)
		saveGrid.Attach(path, 1, 0, 1, 1)
		saveGrid.Attach(widthLabel, 0, 1, 1, 1)
		saveGrid.Attach(width, 1, 1, 1, 1)
		saveGrid.Attach(heightLabel, 0, 2, 1, 1)
		saveGrid.Attach(height, 1, 2, 1, 1)
		saveGrid.Attach(antialias, 0, 3, 2, 1)
		saveGrid.Attach(saveButton, 0, 4, 2, 1)

		status, err := newStatusView()
		if err != nil {
			return nil, err
		}

		box.PackStart(viewFrame, false, false, 0)
		box.PackStart(saveFrame, false, false, 0)
		box.PackEnd(status, false, false, 0)

		go pump(ep, win, status)
		return box, nil
	}
}
