package color

import "golang.org/x/exp/constraints"

// ToByte clamps v to [0, 1] and scales it to [0, 255] with rounding.
// NaN maps to 0.
func ToByte(v float64) uint8 {
	if v != v {
		return 0
	}
	v = Clamp(v, 0, 1)
	return uint8(v*255.0 + 0.5)
}

// FromByte maps a byte in [0, 255] to [0, 1].
func FromByte(b uint8) float64 {
	return byteToFloat[b]
}

// FromBytes builds a color from four bytes in [0, 255].
func FromBytes(r, g, b, a uint8) RGBA {
	return RGBA{
		R: byteToFloat[r],
		G: byteToFloat[g],
		B: byteToFloat[b],
		A: byteToFloat[a],
	}
}

// FromSlice reads a color from the first four bytes of p (RGBA order).
func FromSlice(p []byte) RGBA {
	_ = p[3]
	return FromBytes(p[0], p[1], p[2], p[3])
}

// Bytes converts the color to four clamped, rounded bytes.
func (c RGBA) Bytes() (r, g, b, a uint8) {
	return ToByte(c.R), ToByte(c.G), ToByte(c.B), ToByte(c.A)
}

// Put writes the color as bytes into the first four bytes of p.
func (c RGBA) Put(p []byte) {
	_ = p[3]
	p[0], p[1], p[2], p[3] = c.Bytes()
}

// Clamp restricts v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
