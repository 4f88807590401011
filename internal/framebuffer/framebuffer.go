// Package framebuffer implements the supersample buffer that every
// rasterizer draws into.
//
// The buffer is logically a 4D array indexed by (x, y, subsample, channel):
// each screen pixel owns samplesPerSide² subsamples, each stored as four
// straight-alpha RGBA8 bytes. Resolve box-filters the subsamples of every
// pixel into a caller-owned RGBA8 pixel buffer.
//
// Thread safety: a Framebuffer is not safe for concurrent writes. Resolve
// and ResolveRows only read the buffer, so disjoint row ranges may be
// resolved concurrently as long as nothing draws at the same time.
package framebuffer

import (
	"errors"
	"fmt"

	"github.com/gogpu/swr/internal/blend"
	"github.com/gogpu/swr/internal/color"
)

// Common errors for framebuffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("framebuffer: invalid dimensions")

	// ErrInvalidSampleRate is returned when samples per side is below 1.
	ErrInvalidSampleRate = errors.New("framebuffer: invalid sample rate")

	// ErrBufferSize is returned when the resolve target does not hold
	// exactly 4*width*height bytes.
	ErrBufferSize = errors.New("framebuffer: output buffer size mismatch")
)

// clearValue is the byte every channel is reset to: opaque white.
const clearValue = 255

// Framebuffer is a per-subsample RGBA8 buffer.
type Framebuffer struct {
	width          int
	height         int
	samplesPerSide int
	data           []byte
}

// New allocates a framebuffer of width x height pixels with
// samplesPerSide² subsamples per pixel, cleared to opaque white.
func New(width, height, samplesPerSide int) (*Framebuffer, error) {
	fb := &Framebuffer{}
	if err := fb.Resize(width, height, samplesPerSide); err != nil {
		return nil, err
	}
	return fb, nil
}

// Resize reallocates the buffer for the new configuration and clears it to
// opaque white. On error the previous buffer is kept unchanged.
func (fb *Framebuffer) Resize(width, height, samplesPerSide int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if samplesPerSide < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, samplesPerSide)
	}

	fb.width = width
	fb.height = height
	fb.samplesPerSide = samplesPerSide
	fb.data = make([]byte, 4*width*height*samplesPerSide*samplesPerSide)
	fb.Clear()
	return nil
}

// Clear resets every subsample to opaque white.
func (fb *Framebuffer) Clear() {
	for i := range fb.data {
		fb.data[i] = clearValue
	}
}

// Width returns the width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// SamplesPerSide returns the supersampling factor along one axis.
func (fb *Framebuffer) SamplesPerSide() int { return fb.samplesPerSide }

// SamplesPerPixel returns the number of subsamples per pixel.
func (fb *Framebuffer) SamplesPerPixel() int { return fb.samplesPerSide * fb.samplesPerSide }

// Len returns the size of the buffer in bytes:
// 4 * width * height * samplesPerSide².
func (fb *Framebuffer) Len() int { return len(fb.data) }

// Data returns the raw subsample bytes. The layout is pixel-major: the
// subsamples of a pixel are contiguous, see Offset.
func (fb *Framebuffer) Data() []byte { return fb.data }

// Offset returns the byte offset of subsample s of pixel (x, y), or -1 if
// any index is out of range. This is the only place the layout is encoded.
func (fb *Framebuffer) Offset(x, y, s int) int {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return -1
	}
	spp := fb.samplesPerSide * fb.samplesPerSide
	if s < 0 || s >= spp {
		return -1
	}
	return ((y*fb.width+x)*spp + s) * 4
}

// Channel returns channel c (0=R, 1=G, 2=B, 3=A) of subsample s of pixel
// (x, y). The second result is false if any index is out of range.
func (fb *Framebuffer) Channel(x, y, s, c int) (uint8, bool) {
	off := fb.Offset(x, y, s)
	if off < 0 || c < 0 || c > 3 {
		return 0, false
	}
	return fb.data[off+c], true
}

// SetChannel stores channel c of subsample s of pixel (x, y). It reports
// whether the write happened.
func (fb *Framebuffer) SetChannel(x, y, s, c int, v uint8) bool {
	off := fb.Offset(x, y, s)
	if off < 0 || c < 0 || c > 3 {
		return false
	}
	fb.data[off+c] = v
	return true
}

// At returns the stored color of subsample s of pixel (x, y), or
// transparent black when out of range.
func (fb *Framebuffer) At(x, y, s int) color.RGBA {
	off := fb.Offset(x, y, s)
	if off < 0 {
		return color.Transparent
	}
	return color.FromSlice(fb.data[off : off+4])
}

// FillSample composites c over subsample s of pixel (x, y).
// Writes outside the buffer are silently dropped.
func (fb *Framebuffer) FillSample(x, y, s int, c color.RGBA) {
	off := fb.Offset(x, y, s)
	if off < 0 {
		return
	}
	p := fb.data[off : off+4]
	blend.Over(color.FromSlice(p), c).Put(p)
}

// FillPixel composites c over every subsample of pixel (x, y).
// Writes outside the buffer are silently dropped.
func (fb *Framebuffer) FillPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	for s := range fb.SamplesPerPixel() {
		fb.FillSample(x, y, s, c)
	}
}

// Resolve writes the box-filtered average of every pixel's subsamples to
// dst, which must hold exactly 4*width*height bytes. Each channel is the
// integer mean of the subsample channels, truncated toward zero.
func (fb *Framebuffer) Resolve(dst []byte) error {
	return fb.ResolveRows(dst, 0, fb.height)
}

// ResolveRows is Resolve restricted to rows [y0, y1). The range is
// clamped to the buffer. Calls for disjoint row ranges write disjoint parts
// of dst.
func (fb *Framebuffer) ResolveRows(dst []byte, y0, y1 int) error {
	if want := 4 * fb.width * fb.height; len(dst) != want {
		return fmt.Errorf("%w: have %d bytes, want %d", ErrBufferSize, len(dst), want)
	}

	y0 = max(y0, 0)
	y1 = min(y1, fb.height)
	spp := fb.SamplesPerPixel()

	for y := y0; y < y1; y++ {
		for x := range fb.width {
			var sum [4]int
			for s := range spp {
				off := fb.Offset(x, y, s)
				p := fb.data[off : off+4]
				sum[0] += int(p[0])
				sum[1] += int(p[1])
				sum[2] += int(p[2])
				sum[3] += int(p[3])
			}

			out := dst[4*(y*fb.width+x) : 4*(y*fb.width+x)+4]
			out[0] = uint8(sum[0] / spp)
			out[1] = uint8(sum[1] / spp)
			out[2] = uint8(sum[2] / spp)
			out[3] = uint8(sum[3] / spp)
		}
	}
	return nil
}
