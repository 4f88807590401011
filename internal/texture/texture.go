// Package texture holds RGBA8 mip chains and the samplers that read them.
//
// A Texture is an ordered list of mip levels. Level 0 is the full
// resolution image supplied by the caller; every further level is the 2x2
// box-filtered downsample of the level before it. All samplers return
// straight-alpha colors with channels normalized to [0, 1].
package texture

import (
	"errors"
	"fmt"
	"slices"
)

// MaxMipLevels bounds the length of a mip chain, level 0 included.
// A chain this long covers textures up to 8192 texels on a side.
const MaxMipLevels = 14

// Common errors for texture operations.
var (
	// ErrInvalidDimensions is returned when a level has a non-positive size.
	ErrInvalidDimensions = errors.New("texture: invalid dimensions")

	// ErrDataTooSmall is returned when a texel slice does not hold
	// 4*width*height bytes.
	ErrDataTooSmall = errors.New("texture: texel data size mismatch")

	// ErrNoLevels is returned when a texture is built without any level.
	ErrNoLevels = errors.New("texture: no mip levels")

	// ErrInvalidLevel is returned when a mip level index is out of range.
	ErrInvalidLevel = errors.New("texture: invalid mip level")
)

// MipLevel is one level of a mip chain: an RGBA8 image stored row-major
// without padding, so that len(Texels) == 4*Width*Height.
type MipLevel struct {
	Width  int
	Height int
	Texels []byte
}

// NewMipLevel allocates a zeroed level.
func NewMipLevel(width, height int) (MipLevel, error) {
	if width <= 0 || height <= 0 {
		return MipLevel{}, ErrInvalidDimensions
	}
	return MipLevel{
		Width:  width,
		Height: height,
		Texels: make([]byte, 4*width*height),
	}, nil
}

// Validate checks that the level's texel slice matches its dimensions.
func (l MipLevel) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, l.Width, l.Height)
	}
	if len(l.Texels) != 4*l.Width*l.Height {
		return fmt.Errorf("%w: have %d bytes, want %d",
			ErrDataTooSmall, len(l.Texels), 4*l.Width*l.Height)
	}
	return nil
}

// Offset returns the byte offset of texel (x, y), or -1 when the
// coordinates are outside the level.
func (l MipLevel) Offset(x, y int) int {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return -1
	}
	return 4 * (y*l.Width + x)
}

// Texel returns the four bytes of texel (x, y), or nil when the
// coordinates are outside the level.
func (l MipLevel) Texel(x, y int) []byte {
	off := l.Offset(x, y)
	if off < 0 {
		return nil
	}
	return l.Texels[off : off+4]
}

// SetTexel stores the bytes of texel (x, y). Out-of-range writes are ignored.
func (l MipLevel) SetTexel(x, y int, r, g, b, a uint8) {
	off := l.Offset(x, y)
	if off < 0 {
		return
	}
	l.Texels[off] = r
	l.Texels[off+1] = g
	l.Texels[off+2] = b
	l.Texels[off+3] = a
}

// Texture is a mip chain. Level 0 is the full-resolution image.
//
// Thread safety: sampling is safe for concurrent use; GenerateMips and
// Release mutate the chain and require external synchronization.
type Texture struct {
	Levels []MipLevel

	// pooled marks levels whose texels came from the texel pool and may
	// be returned to it by Release. Indexed like Levels.
	pooled []bool
}

// New builds a texture from caller-supplied levels. The level list is
// copied; the texel slices are shared with the caller.
func New(levels ...MipLevel) (*Texture, error) {
	if len(levels) == 0 {
		return nil, ErrNoLevels
	}
	if len(levels) > MaxMipLevels {
		return nil, fmt.Errorf("%w: %d levels exceed the maximum of %d",
			ErrInvalidLevel, len(levels), MaxMipLevels)
	}
	for i, l := range levels {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("texture: level %d: %w", i, err)
		}
	}
	return &Texture{
		Levels: slices.Clone(levels),
		pooled: make([]bool, len(levels)),
	}, nil
}

// NumLevels returns the number of levels in the chain.
// Returns 0 for a nil texture.
func (t *Texture) NumLevels() int {
	if t == nil {
		return 0
	}
	return len(t.Levels)
}

// Level returns level n and true, or a zero level and false when n is
// outside the chain.
func (t *Texture) Level(n int) (MipLevel, bool) {
	if t == nil || n < 0 || n >= len(t.Levels) {
		return MipLevel{}, false
	}
	return t.Levels[n], true
}

// Width returns the width of level 0, or 0 for an empty texture.
func (t *Texture) Width() int {
	if t.NumLevels() == 0 {
		return 0
	}
	return t.Levels[0].Width
}

// Height returns the height of level 0, or 0 for an empty texture.
func (t *Texture) Height() int {
	if t.NumLevels() == 0 {
		return 0
	}
	return t.Levels[0].Height
}
