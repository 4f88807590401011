package swr

import (
	"image"
	"image/png"
	"os"
)

// RenderImage renders scene into a newly allocated image of the
// renderer's size. The pixels are straight-alpha RGBA8.
func (r *Renderer) RenderImage(scene *Scene) (*image.NRGBA, error) {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width(), r.Height()))
	if err := r.Render(scene, img.Pix); err != nil {
		return nil, err
	}
	return img, nil
}

// SavePNG encodes img as PNG into the file at path.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return png.Encode(f, img)
}
