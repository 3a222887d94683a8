package geom

import "image/color"

// Color is a linear RGBA color with components in [0, 1].
type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{}
)

func RGBA(r, g, b, a float32) Color { return Color{r, g, b, a} }

// Hex converts 0xRRGGBBAA.
func Hex(rgba uint32) Color {
	return Color{
		float32(rgba>>24&0xFF) / 0xFF,
		float32(rgba>>16&0xFF) / 0xFF,
		float32(rgba>>8&0xFF) / 0xFF,
		float32(rgba&0xFF) / 0xFF,
	}
}

// ColorFromNRGBA converts any image color, undoing alpha premultiplication.
func ColorFromNRGBA(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		float32(n.R) / 0xFF,
		float32(n.G) / 0xFF,
		float32(n.B) / 0xFF,
		float32(n.A) / 0xFF,
	}
}

func (c Color) R() float32 { return c[0] }
func (c Color) G() float32 { return c[1] }
func (c Color) B() float32 { return c[2] }
func (c Color) A() float32 { return c[3] }

func (c Color) Vec4() Vec4 { return Vec4(c) }

// Scale multiplies rgb by s, alpha is kept.
func (c Color) Scale(s float32) Color {
	return Color{c[0] * s, c[1] * s, c[2] * s, c[3]}
}
