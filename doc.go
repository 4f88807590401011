// Package swr is a supersampling software rasterizer for 2D scenes.
//
// # Overview
//
// swr renders a tree of vector primitives (points, lines, polylines,
// rectangles, polygons, images and groups) into an RGBA8 pixel buffer on
// the CPU. Every screen pixel is backed by n×n subsamples; triangles and
// images are evaluated per subsample and the subsamples are box-filtered
// into the output, which anti-aliases edges. Colors are straight
// (non-premultiplied) alpha and are composited with the "over" operator
// in draw order.
//
// # Quick Start
//
//	import "github.com/gogpu/swr"
//
//	r, err := swr.NewRenderer(256, 256, swr.WithSampleRate(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	scene := &swr.Scene{
//	    Width: 256, Height: 256,
//	    Elements: []swr.Element{
//	        &swr.Rect{
//	            Position: swr.V2(32, 32),
//	            Size:     swr.V2(128, 96),
//	            Style:    swr.Style{Fill: swr.Red, Stroke: swr.Black},
//	        },
//	    },
//	}
//
//	dst := make([]byte, 4*256*256)
//	if err := r.Render(scene, dst); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinate Systems
//
// Elements are defined in scene (canvas) space. Each element carries a
// local transform; a group's transform applies to all of its children.
// The renderer's canvas-to-screen matrix maps the scene into screen
// space, where pixel (x, y) covers [x, x+1) × [y, y+1). A [Viewport]
// produces such a matrix for pan and zoom.
//
// # Logging
//
// swr is silent by default. Call [SetLogger] to receive diagnostics.
package swr
