package rend

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Texture is an RGBA8 image on the GPU, sampled linearly and clamped to
// its edges.
type Texture struct {
	Path string
	ID   uint32

	width, height int
}

// NewTexture uploads width*height RGBA pixels, rows top to bottom.
func NewTexture(width, height int, pixels []byte) (*Texture, error) {
	if err := checkPixels(width, height, pixels); err != nil {
		return nil, err
	}
	texture := &Texture{width: width, height: height}
	texture.upload(pixels)
	return texture, nil
}

func checkPixels(width, height int, pixels []byte) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrTexture, width, height)
	}
	if want := width * height * 4; len(pixels) != want {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrTexture, width, height, want, len(pixels))
	}
	return nil
}

// NewTextureFromImage converts m to RGBA and uploads it.
func NewTextureFromImage(m image.Image) (*Texture, error) {
	rgba, err := toRGBA(m)
	if err != nil {
		return nil, err
	}
	return NewTexture(rgba.Rect.Dx(), rgba.Rect.Dy(), rgba.Pix)
}

func toRGBA(m image.Image) (*image.RGBA, error) {
	bounds := m.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrTexture)
	}
	if rgba, ok := m.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == bounds.Dx()*4 {
		return rgba, nil
	}

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), m, bounds.Min, draw.Src)
	return rgba, nil
}

// LoadTexture decodes a PNG, JPEG, GIF, BMP, TIFF or WebP file.
func LoadTexture(path string) (*Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture %q not found on disk: %w", path, err)
	}
	defer file.Close()

	m, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("unable to decode texture %q: %w", path, err)
	}

	texture, err := NewTextureFromImage(m)
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", path, err)
	}
	texture.Path = path

	Logger().Debug("texture loaded",
		slog.String("path", path),
		slog.String("format", format),
		slog.Int("width", texture.width),
		slog.Int("height", texture.height),
	)
	return texture, nil
}

func (texture *Texture) upload(pixels []byte) {
	if texture.ID != 0 {
		texture.Delete()
	}

	gl.GenTextures(1, &texture.ID)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture.ID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(texture.width),
		int32(texture.height),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(pixels))
}

func (texture *Texture) Width() int  { return texture.width }
func (texture *Texture) Height() int { return texture.height }

// Bind makes the texture current on a texture unit. Negative units are
// ignored.
func (texture *Texture) Bind(unit int) {
	enum, ok := textureUnit(unit)
	if !ok {
		Logger().Warn("invalid texture unit", slog.Int("unit", unit))
		return
	}
	gl.ActiveTexture(enum)
	gl.BindTexture(gl.TEXTURE_2D, texture.ID)
}

func textureUnit(unit int) (uint32, bool) {
	if unit < 0 {
		return 0, false
	}
	return gl.TEXTURE0 + uint32(unit), true
}

// Delete releases the GPU texture, the Texture may be uploaded again.
func (texture *Texture) Delete() {
	if texture.ID == 0 {
		return
	}
	gl.DeleteTextures(1, &texture.ID)
	texture.ID = 0
}

var blank *Texture

// BlankTexture is a 1x1 white texture, bound when nothing else is, so the
// default shader samples plain vertex colors.
func BlankTexture() *Texture {
	if blank == nil {
		var err error
		blank, err = NewTexture(1, 1, []byte{0xFF, 0xFF, 0xFF, 0xFF})
		if err != nil {
			panic(err)
		}
	}
	return blank
}
