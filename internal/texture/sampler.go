package texture

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/swr/internal/color"
)

// Filter selects how a texture is sampled.
type Filter uint8

const (
	// FilterNearest returns the texel containing the sample point.
	FilterNearest Filter = iota

	// FilterBilinear interpolates the four texel centers around the sample
	// point on a single level.
	FilterBilinear

	// FilterTrilinear blends bilinear samples of the two levels closest to
	// the sample footprint.
	FilterTrilinear
)

// String returns a string representation of the filter.
func (f Filter) String() string {
	switch f {
	case FilterNearest:
		return "Nearest"
	case FilterBilinear:
		return "Bilinear"
	case FilterTrilinear:
		return "Trilinear"
	default:
		return "Unknown"
	}
}

// ParseFilter returns the filter named s, ignoring case.
func ParseFilter(s string) (Filter, error) {
	for _, f := range []Filter{FilterNearest, FilterBilinear, FilterTrilinear} {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return FilterBilinear, fmt.Errorf("texture: unknown filter %q", s)
}

// Sample samples t at (u, v) with the given filter. du and dv are the
// texture-space extent of one screen pixel and are used by
// FilterTrilinear only; the other filters read level 0.
func Sample(t *Texture, u, v, du, dv float64, f Filter) color.RGBA {
	switch f {
	case FilterNearest:
		return SampleNearest(t, u, v, 0)
	case FilterBilinear:
		return SampleBilinear(t, u, v, 0)
	case FilterTrilinear:
		return SampleTrilinear(t, u, v, du, dv)
	default:
		return color.Invalid
	}
}

// SampleNearest returns the texel of the given level that contains the
// normalized coordinates (u, v), where (0, 0) is the top-left corner and
// (1, 1) the bottom-right one. Coordinates are truncated to texel indices
// and clamped to the level.
//
// A level outside the chain yields color.Invalid.
func SampleNearest(t *Texture, u, v float64, level int) color.RGBA {
	l, ok := t.Level(level)
	if !ok {
		return color.Invalid
	}

	x := clampIndex(int(u*float64(l.Width)), l.Width)
	y := clampIndex(int(v*float64(l.Height)), l.Height)

	return color.FromSlice(l.Texel(x, y))
}

// SampleBilinear interpolates the four texel centers surrounding (u, v) on
// the given level.
//
// Texel i has its center at i+0.5. The left/right pair is the one whose
// centers straddle the sample point: when the fractional offset inside the
// texel is at least 0.5 the pair is (i, i+1), otherwise (i-1, i). The same
// rule picks the top/bottom pair. The bottom pair is interpolated in x,
// then the top pair, then the two results in y. Neighbor indices are
// clamped to the level, which makes the outermost half texel flat.
//
// A level outside the chain yields color.Invalid.
func SampleBilinear(t *Texture, u, v float64, level int) color.RGBA {
	l, ok := t.Level(level)
	if !ok {
		return color.Invalid
	}
	return bilinear(l, u, v)
}

func bilinear(l MipLevel, u, v float64) color.RGBA {
	// Continuous coordinates measured from the first texel center.
	fx := u*float64(l.Width) - 0.5
	fy := v*float64(l.Height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	left := clampIndex(x0, l.Width)
	right := clampIndex(x0+1, l.Width)
	top := clampIndex(y0, l.Height)
	bottom := clampIndex(y0+1, l.Height)

	bot := texel(l, left, bottom).Lerp(texel(l, right, bottom), tx)
	up := texel(l, left, top).Lerp(texel(l, right, top), tx)

	return up.Lerp(bot, ty)
}

// SampleTrilinear samples (u, v) with a footprint of du by dv in
// normalized texture space, typically the texture-space size of one screen
// pixel.
//
// The footprint picks a continuous level log2(max(du*w, dv*h)) clamped to
// the chain; the result blends bilinear samples of the two adjacent levels.
// Magnification (a footprint below one texel) samples level 0. An empty
// texture yields color.Invalid.
func SampleTrilinear(t *Texture, u, v, du, dv float64) color.RGBA {
	n := t.NumLevels()
	if n == 0 {
		return color.Invalid
	}

	footprint := max(math.Abs(du)*float64(t.Width()), math.Abs(dv)*float64(t.Height()))
	if !(footprint > 1) || n == 1 {
		return bilinear(t.Levels[0], u, v)
	}

	l0 := t.LevelForScale(footprint)
	c0 := bilinear(t.Levels[l0], u, v)
	if l0 == n-1 {
		return c0
	}
	frac := math.Log2(footprint) - float64(l0)
	if frac == 0 {
		return c0
	}
	return c0.Lerp(bilinear(t.Levels[l0+1], u, v), frac)
}

func texel(l MipLevel, x, y int) color.RGBA {
	return color.FromSlice(l.Texel(x, y))
}

func clampIndex(i, n int) int {
	return color.Clamp(i, 0, n-1)
}
