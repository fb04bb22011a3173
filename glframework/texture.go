package glframework

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/stewi1014/glexercises/asset"
)

// Texture is a 2D RGBA texture.
type Texture struct {
	ID            uint32
	Width, Height int32
}

// LoadTexture decodes the image at path into a new repeating, linearly
// filtered and mipmapped texture.
func LoadTexture(path string) (Texture, error) {
	img, err := asset.LoadImageData(path)
	if err != nil {
		return Texture{}, err
	}

	t := Texture{
		Width:  int32(img.Bounds().Dx()),
		Height: int32(img.Bounds().Dy()),
	}

	gl.GenTextures(1, &t.ID)
	if t.ID == 0 {
		return Texture{}, glErrOrMessage("glGenTextures returned no texture")
	}
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	defer gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	defer gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		t.Width, t.Height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	if err := glErr("uploading " + path); err != nil {
		t.Delete()
		return Texture{}, err
	}
	return t, nil
}

// Bind binds the texture to the given unit, 1 to TextureUnits for the
// samplers LinkShaderProgram sets up.
func (t Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.ActiveTexture(gl.TEXTURE0)
}

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
	}
	*t = Texture{}
}
