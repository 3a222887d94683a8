package scene

import "github.com/adinfit/rend/geom"

// Ambient is a light that reaches every surface equally.
type Ambient struct {
	Color    geom.Color
	Strength float32
}

// NoAmbient leaves object colors untouched.
var NoAmbient = Ambient{Color: geom.White}

func NewAmbient(color geom.Color, strength float32) Ambient {
	return Ambient{Color: color, Strength: strength}
}

func (light Ambient) Enabled() bool { return light.Strength > 0 }

// Apply returns what the default shader outputs for an object color.
func (light Ambient) Apply(c geom.Color) geom.Color {
	if !light.Enabled() {
		return c
	}
	return geom.Color{
		light.Strength * light.Color[0] * c[0],
		light.Strength * light.Color[1] * c[1],
		light.Strength * light.Color[2] * c[2],
		light.Strength * light.Color[3] * c[3],
	}
}
