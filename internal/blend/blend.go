// Package blend implements the compositing operator used by the framebuffer.
//
// Colors are straight (non-premultiplied) alpha in the range [0, 1].
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
package blend

import "github.com/gogpu/swr/internal/color"

// Over composites src over dst.
//
//	out.rgb = src.rgb*src.a + dst.rgb*(1-src.a)
//	out.a   = 1 - (1-src.a)*(1-dst.a)
//
// The color channels are not divided by the resulting alpha: the
// framebuffer starts opaque, so dst.a is 1 for every rendered sample and
// the expression above is the exact straight-alpha result.
func Over(dst, src color.RGBA) color.RGBA {
	srcA := src.A
	invSrcA := 1.0 - srcA

	return color.RGBA{
		R: src.R*srcA + dst.R*invSrcA,
		G: src.G*srcA + dst.G*invSrcA,
		B: src.B*srcA + dst.B*invSrcA,
		A: 1 - invSrcA*(1-dst.A),
	}
}
