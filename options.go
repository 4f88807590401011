package swr

// Option configures a Renderer during creation.
//
// Example:
//
//	// 4x4 supersampling, resolve on all CPUs
//	r, err := swr.NewRenderer(800, 600,
//	    swr.WithSampleRate(4),
//	    swr.WithWorkers(0),
//	)
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	sampleRate     int
	workers        int
	triangulator   Triangulator
	canvasToScreen Matrix
	border         bool
	filter         Filter
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		sampleRate:     1,
		workers:        1,
		triangulator:   FanTriangulator{},
		canvasToScreen: Identity(),
		border:         true,
		filter:         FilterBilinear,
	}
}

// WithSampleRate sets the number of subsamples per pixel side.
// A rate of n stores n×n subsamples for every pixel. Rates below 1 make
// NewRenderer fail with ErrInvalidSampleRate.
func WithSampleRate(n int) Option {
	return func(o *options) {
		o.sampleRate = n
	}
}

// WithWorkers sets the number of goroutines used to resolve the
// framebuffer into the output buffer. Zero or a negative value uses
// GOMAXPROCS; 1 (the default) resolves on the calling goroutine.
// Drawing itself is always single-threaded.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithTriangulator sets the triangulator used for polygons without
// pre-computed triangles. The default is FanTriangulator. A nil
// triangulator is ignored.
func WithTriangulator(t Triangulator) Option {
	return func(o *options) {
		if t != nil {
			o.triangulator = t
		}
	}
}

// WithCanvasToScreen sets the initial canvas-to-screen transform.
// The default is the identity: one scene unit per pixel.
//
// Example:
//
//	vp := swr.FitViewport(svgWidth, svgHeight)
//	r, err := swr.NewRenderer(w, h, swr.WithCanvasToScreen(vp.CanvasToScreen(w, h)))
func WithCanvasToScreen(m Matrix) Option {
	return func(o *options) {
		o.canvasToScreen = m
	}
}

// WithBorder enables or disables the black outline drawn one pixel outside
// the canvas rectangle. The outline is enabled by default.
func WithBorder(enabled bool) Option {
	return func(o *options) {
		o.border = enabled
	}
}

// WithTextureFilter sets the filter Image elements are sampled with.
// The default is FilterBilinear on the full-resolution level.
func WithTextureFilter(f Filter) Option {
	return func(o *options) {
		o.filter = f
	}
}
