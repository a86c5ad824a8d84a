// Package resample resizes interleaved multi-channel pixel data of any
// numeric channel type with separable convolution kernels.
package resample

import "math"

// Kernel is a symmetric interpolation filter.
type Kernel struct {
	// Name identifies the kernel in logs.
	Name string

	// Support is the radius beyond which At is zero, in source pixels at
	// unit scale.
	Support float64

	// At returns the filter weight at distance t.
	At func(t float64) float64
}

// CatmullRom is the cubic kernel with B=0, C=0.5. It is interpolating and
// keeps edges sharp.
var CatmullRom = Kernel{Name: "CatmullRom", Support: 2, At: catmullRom}

// Bilinear is the triangle (tent) kernel.
var Bilinear = Kernel{Name: "Bilinear", Support: 1, At: triangle}

// catmullRom evaluates the Catmull-Rom spline weight:
//
//	|t| < 1:      1.5|t|³ - 2.5|t|² + 1
//	1 ≤ |t| < 2: -0.5|t|³ + 2.5|t|² - 4|t| + 2
//	|t| ≥ 2:      0
func catmullRom(t float64) float64 {
	t = math.Abs(t)
	switch {
	case t < 1:
		return (1.5*t-2.5)*t*t + 1
	case t < 2:
		return ((-0.5*t+2.5)*t-4)*t + 2
	default:
		return 0
	}
}

func triangle(t float64) float64 {
	t = math.Abs(t)
	if t < 1 {
		return 1 - t
	}
	return 0
}
