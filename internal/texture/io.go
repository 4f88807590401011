package texture

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	// Decoders available to Decode and Load.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
)


// FromImage converts img into a single-level texture.
// The pixels are converted to non-premultiplied RGBA8.
func FromImage(img image.Image) (*Texture, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, b.Dx(), b.Dy())
	}

	var pix []byte
	if n, ok := img.(*image.NRGBA); ok && n.Stride == 4*b.Dx() {
		pix = make([]byte, len(n.Pix[:4*b.Dx()*b.Dy()]))
		copy(pix, n.Pix)
	} else {
		dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		pix = dst.Pix
	}

	return New(MipLevel{Width: b.Dx(), Height: b.Dy(), Texels: pix})
}

// Image returns level n as an *image.NRGBA sharing the level's texels,
// or nil when n is outside the chain.
func (t *Texture) Image(n int) *image.NRGBA {
	l, ok := t.Level(n)
	if !ok {
		return nil
	}
	return &image.NRGBA{
		Pix:    l.Texels,
		Stride: 4 * l.Width,
		Rect:   image.Rect(0, 0, l.Width, l.Height),
	}
}

// Decode reads an encoded image (PNG, JPEG, GIF, BMP, TIFF or WebP) and
// returns it as a single-level texture.
func Decode(r io.Reader) (*Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	return FromImage(img)
}

// Load decodes the image file at path.
func Load(path string) (*Texture, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("texture: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}
