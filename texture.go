package swr

import (
	"fmt"
	"image"

	"github.com/gogpu/swr/internal/texture"
)

// Texture is a mip chain of RGBA8 images sampled by Image elements.
type Texture = texture.Texture

// MipLevel is one level of a Texture's mip chain.
type MipLevel = texture.MipLevel

// Filter selects how Image elements sample their texture.
type Filter = texture.Filter

// Texture filters.
const (
	FilterNearest   = texture.FilterNearest
	FilterBilinear  = texture.FilterBilinear
	FilterTrilinear = texture.FilterTrilinear
)

// MaxMipLevels is the maximum number of levels in a mip chain.
const MaxMipLevels = texture.MaxMipLevels

// LoadTexture decodes the image file at path (PNG, JPEG, GIF, BMP, TIFF or
// WebP) and generates its full mip chain.
func LoadTexture(path string) (*Texture, error) {
	tex, err := texture.Load(path)
	if err != nil {
		return nil, err
	}
	if err := texture.GenerateMips(tex, 0); err != nil {
		return nil, fmt.Errorf("swr: load texture %s: %w", path, err)
	}
	return tex, nil
}

// NewTexture converts img into a texture and generates its full mip chain.
func NewTexture(img image.Image) (*Texture, error) {
	tex, err := texture.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("swr: new texture: %w", err)
	}
	if err := texture.GenerateMips(tex, 0); err != nil {
		return nil, fmt.Errorf("swr: new texture: %w", err)
	}
	return tex, nil
}

// ParseFilter returns the filter named s ("nearest", "bilinear" or
// "trilinear"), ignoring case.
func ParseFilter(s string) (Filter, error) {
	return texture.ParseFilter(s)
}
