package swr

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/swr/internal/framebuffer"
	"github.com/gogpu/swr/internal/parallel"
	"github.com/gogpu/swr/internal/raster"
)

// Renderer draws scenes into RGBA8 pixel buffers.
//
// A Renderer owns its supersample buffer and reuses it across renders.
// It is not safe for concurrent use.
type Renderer struct {
	fb   *framebuffer.Framebuffer
	rast *raster.Rasterizer
	pool *parallel.WorkerPool

	triangulator   Triangulator
	canvasToScreen Matrix
	border         bool

	stats Stats
}

// Stats describes the most recent call to Render.
type Stats struct {
	// Elements is the number of elements visited, groups included.
	Elements int
	// Triangles and Lines count rasterized primitives, border included.
	Triangles int
	Lines     int
	// Points and Images count rasterized points and image blits.
	Points int
	Images int
	// Skipped counts elements that were visited but not drawn, such as
	// ellipses and images without a texture.
	Skipped int
	// Duration is the wall time of the render, resolve included.
	Duration time.Duration
}

// NewRenderer creates a renderer producing width×height pixel buffers.
func NewRenderer(width, height int, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fb, err := framebuffer.New(width, height, o.sampleRate)
	if err != nil {
		return nil, fmt.Errorf("swr: new renderer: %w", err)
	}

	r := &Renderer{
		fb:             fb,
		rast:           raster.New(fb),
		triangulator:   o.triangulator,
		canvasToScreen: o.canvasToScreen,
		border:         o.border,
	}
	r.rast.Filter = o.filter

	if o.workers != 1 {
		r.pool = parallel.NewWorkerPool(max(o.workers, 0))
	}

	Logger().Debug("swr: framebuffer allocated",
		"width", width, "height", height,
		"samples", o.sampleRate, "bytes", fb.Len())

	return r, nil
}

// Width returns the output width in pixels.
func (r *Renderer) Width() int { return r.fb.Width() }

// Height returns the output height in pixels.
func (r *Renderer) Height() int { return r.fb.Height() }

// SampleRate returns the number of subsamples per pixel side.
func (r *Renderer) SampleRate() int { return r.fb.SamplesPerSide() }

// Resize changes the output dimensions and reallocates the supersample
// buffer. Resizing to the current dimensions does nothing. On error the
// renderer keeps its previous buffer.
func (r *Renderer) Resize(width, height int) error {
	if width == r.fb.Width() && height == r.fb.Height() {
		return nil
	}
	return r.realloc(width, height, r.fb.SamplesPerSide())
}

// SetSampleRate changes the number of subsamples per pixel side and
// reallocates the supersample buffer. Setting the current rate does
// nothing. On error the renderer keeps its previous buffer.
func (r *Renderer) SetSampleRate(n int) error {
	if n == r.fb.SamplesPerSide() {
		return nil
	}
	return r.realloc(r.fb.Width(), r.fb.Height(), n)
}

func (r *Renderer) realloc(width, height, n int) error {
	if err := r.fb.Resize(width, height, n); err != nil {
		return fmt.Errorf("swr: resize to %dx%d@%d: %w", width, height, n, err)
	}
	Logger().Debug("swr: framebuffer allocated",
		"width", width, "height", height,
		"samples", n, "bytes", r.fb.Len())
	return nil
}

// CanvasToScreen returns the transform from scene space to screen space.
func (r *Renderer) CanvasToScreen() Matrix { return r.canvasToScreen }

// SetCanvasToScreen sets the transform from scene space to screen space.
func (r *Renderer) SetCanvasToScreen(m Matrix) { r.canvasToScreen = m }

// SetTextureFilter sets the filter Image elements are sampled with.
func (r *Renderer) SetTextureFilter(f Filter) { r.rast.Filter = f }

// Stats returns the statistics of the most recent render.
func (r *Renderer) Stats() Stats { return r.stats }

// Render draws scene and writes the resolved pixels to dst, which must
// hold exactly 4*Width()*Height() bytes in row-major RGBA order.
//
// The supersample buffer is cleared to opaque white, every element is
// drawn in order, the canvas outline is drawn on top (unless disabled
// with WithBorder), and the subsamples are averaged into dst.
func (r *Renderer) Render(scene *Scene, dst []byte) error {
	if scene == nil {
		return ErrNilScene
	}
	if want := 4 * r.fb.Width() * r.fb.Height(); len(dst) != want {
		return fmt.Errorf("swr: render: %w: have %d bytes, want %d", ErrBufferSize, len(dst), want)
	}

	start := time.Now()
	r.stats = Stats{}
	r.fb.Clear()

	for _, e := range scene.Elements {
		r.draw(e, r.canvasToScreen)
	}
	if r.border {
		r.drawBorder(scene)
	}

	if err := r.resolve(dst); err != nil {
		return fmt.Errorf("swr: render: %w", err)
	}

	r.stats.Duration = time.Since(start)
	Logger().Debug("swr: render",
		"elements", r.stats.Elements,
		"triangles", r.stats.Triangles,
		"lines", r.stats.Lines,
		"skipped", r.stats.Skipped,
		"duration", r.stats.Duration)

	return nil
}

// resolve averages the supersample buffer into dst, one row band per
// worker while a pool is running.
func (r *Renderer) resolve(dst []byte) error {
	if r.pool == nil || !r.pool.IsRunning() {
		return r.fb.Resolve(dst)
	}

	bands := parallel.Bands(r.fb.Height(), r.pool.Workers())
	if len(bands) <= 1 {
		return r.fb.Resolve(dst)
	}

	errs := make([]error, len(bands))
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			errs[i] = r.fb.ResolveRows(dst, b.Y0, b.Y1)
		}
	}
	r.pool.ExecuteAll(work)

	return errors.Join(errs...)
}

// Close releases the resolve workers. The renderer remains usable and
// resolves on the calling goroutine afterwards.
func (r *Renderer) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}
