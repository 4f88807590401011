package texture

import (
	"fmt"
	"math"
)

// GenerateMips rebuilds the chain below start.
//
// Levels after start are discarded (and returned to the texel pool when
// they were generated earlier), then floor(log2(max(w, h))) levels are
// appended, where w and h are the dimensions of level start. The chain is
// capped at MaxMipLevels. Each new level is max(1, prev/2) in both
// dimensions and holds the 2x2 box-filtered downsample of its parent.
func GenerateMips(t *Texture, start int) error {
	if t == nil || start < 0 || start >= len(t.Levels) {
		return fmt.Errorf("%w: start level %d, chain has %d levels",
			ErrInvalidLevel, start, t.NumLevels())
	}

	t.releaseFrom(start + 1)
	for len(t.pooled) < len(t.Levels) {
		t.pooled = append(t.pooled, false)
	}

	base := t.Levels[start]
	n := int(math.Floor(math.Log2(float64(max(base.Width, base.Height)))))
	n = min(n, MaxMipLevels-start-1)

	for i := 1; i <= n; i++ {
		t.Levels = append(t.Levels, downsample(t.Levels[start+i-1]))
		t.pooled = append(t.pooled, true)
	}
	return nil
}

// downsample creates a half-size version of src using a box filter.
// Odd dimensions round down; the missing right column or bottom row of a
// 2x2 block is replaced by the edge texel.
func downsample(src MipLevel) MipLevel {
	dstW := max(1, src.Width/2)
	dstH := max(1, src.Height/2)

	dst := MipLevel{
		Width:  dstW,
		Height: dstH,
		Texels: getTexels(4 * dstW * dstH),
	}

	for dy := range dstH {
		sy0 := min(dy*2, src.Height-1)
		sy1 := min(dy*2+1, src.Height-1)
		for dx := range dstW {
			sx0 := min(dx*2, src.Width-1)
			sx1 := min(dx*2+1, src.Width-1)

			p0 := src.Texel(sx0, sy0)
			p1 := src.Texel(sx1, sy0)
			p2 := src.Texel(sx0, sy1)
			p3 := src.Texel(sx1, sy1)

			out := dst.Texel(dx, dy)
			for c := range 4 {
				sum := uint16(p0[c]) + uint16(p1[c]) + uint16(p2[c]) + uint16(p3[c])
				out[c] = byte(sum / 4)
			}
		}
	}
	return dst
}

// LevelForScale returns the level to sample when one screen pixel spans
// scale texels of level 0 (scale > 1 means minification).
// The level is floor(log2(scale)) clamped to the chain.
func (t *Texture) LevelForScale(scale float64) int {
	if t.NumLevels() == 0 || !(scale > 1) {
		return 0
	}
	level := min(math.Floor(math.Log2(scale)), float64(t.NumLevels()-1))
	return int(level)
}

// Release returns generated levels to the texel pool and truncates the
// chain to the caller-supplied levels. The texture remains usable.
func (t *Texture) Release() {
	if t == nil {
		return
	}
	first := len(t.Levels)
	for i, p := range t.pooled {
		if p {
			first = i
			break
		}
	}
	t.releaseFrom(first)
}

func (t *Texture) releaseFrom(n int) {
	for i := n; i < len(t.Levels); i++ {
		if i < len(t.pooled) && t.pooled[i] {
			putTexels(t.Levels[i].Texels)
		}
		t.Levels[i] = MipLevel{}
	}
	if n < len(t.Levels) {
		t.Levels = t.Levels[:n]
	}
	if n < len(t.pooled) {
		t.pooled = t.pooled[:n]
	}
}
