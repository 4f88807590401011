package color

// byteToFloat maps every byte value to its [0, 1] float.
// Reading the framebuffer converts every channel of every touched
// subsample, so the division is done once here.
//
// The table is built in its declaration rather than in init: the
// package-level colors below are computed from it, and package variables
// are initialized before any init function runs.
var byteToFloat = func() (t [256]float64) {
	for i := range t {
		t[i] = float64(i) / 255.0
	}
	return t
}()
