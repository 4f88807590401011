// Package color provides the straight-alpha RGBA value type shared by the
// framebuffer, the compositor and the texture samplers.
package color

import (
	stdcolor "image/color"

	"golang.org/x/image/colornames"
)

// RGBA is a color with straight (non-premultiplied) alpha.
// Each channel is conceptually in [0, 1]; values outside that range are
// clamped when the color is stored as bytes.
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = FromStd(colornames.Black)
	White       = FromStd(colornames.White)
	Red         = FromStd(colornames.Red)
	Lime        = FromStd(colornames.Lime)
	Blue        = FromStd(colornames.Blue)
	Magenta     = FromStd(colornames.Magenta)
	Transparent = RGBA{}
)

// Invalid is returned by samplers for requests that cannot be answered,
// such as a mip level outside the chain. Opaque magenta stands out on screen.
var Invalid = Magenta

// FromStd converts a standard library color to RGBA.
// The conversion goes through color.NRGBA so that the result is not
// premultiplied.
func FromStd(c stdcolor.Color) RGBA {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return FromBytes(n.R, n.G, n.B, n.A)
}

// Std returns the color as a color.NRGBA.
func (c RGBA) Std() stdcolor.NRGBA {
	r, g, b, a := c.Bytes()
	return stdcolor.NRGBA{R: r, G: g, B: b, A: a}
}

// Transparent reports whether the alpha channel is exactly zero.
func (c RGBA) Transparent() bool {
	return c.A == 0
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Scale multiplies every channel by s.
func (c RGBA) Scale(s float64) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// Add returns the channel-wise sum of two colors.
func (c RGBA) Add(other RGBA) RGBA {
	return RGBA{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B, A: c.A + other.A}
}
