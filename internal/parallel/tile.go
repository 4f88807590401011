// Package parallel partitions a canvas into disjoint row bands and runs
// per-band work on a pool of goroutines.
//
// Bands never overlap, so work that writes only the pixels of its own band
// needs no locking.
package parallel

// MinBandHeight is the smallest band produced by Bands, except for the
// last band of a canvas whose height is not a multiple of it.
const MinBandHeight = 16

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Height returns the number of rows in the band.
func (b Band) Height() int {
	return b.Y1 - b.Y0
}

// Bands splits height rows into at most n contiguous, disjoint bands that
// together cover [0, height). Bands are at least MinBandHeight rows tall
// where possible. Returns nil for a non-positive height.
func Bands(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	if n < 1 {
		n = 1
	}

	rows := (height + n - 1) / n
	rows = max(rows, MinBandHeight)

	bands := make([]Band, 0, (height+rows-1)/rows)
	for y := 0; y < height; y += rows {
		bands = append(bands, Band{Y0: y, Y1: min(y+rows, height)})
	}
	return bands
}
