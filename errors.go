package swr

import (
	"errors"

	"github.com/gogpu/swr/internal/framebuffer"
)

// Errors returned by Renderer methods.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = framebuffer.ErrInvalidDimensions

	// ErrInvalidSampleRate is returned when samples per side is below 1.
	ErrInvalidSampleRate = framebuffer.ErrInvalidSampleRate

	// ErrBufferSize is returned by Render when the output buffer does not
	// hold exactly 4*width*height bytes.
	ErrBufferSize = framebuffer.ErrBufferSize

	// ErrNilScene is returned by Render when called without a scene.
	ErrNilScene = errors.New("swr: nil scene")
)
