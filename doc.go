// Package radmix composites two images through a radial mask.
//
// # Overview
//
// Pixels inside a circle keep the main image, pixels outside take the
// background image resized to the main image's dimensions, and pixels in a
// band around the circle are blended linearly:
//
//	main, _ := radmix.NewBuffer[uint8](640, 480, 4)
//	bg, _ := radmix.NewBuffer[uint8](1024, 1024, 4)
//	// ... fill pixels ...
//	radmix.Composite(main, bg, radmix.Params{CircleSize: 0.5, EdgeFuzz: 0.01})
//
// Standard library images go through CompositeImage instead.
//
// # Mask geometry
//
// A pixel (x, y) of a width×height image maps to
//
//	xl = (x/width*2 - 1) * width/height
//	yl =  y/height*2 - 1
//
// so the vertical axis spans [-1, 1) and CircleSize is a radius in those
// units regardless of the image's aspect ratio. The background weight of a
// pixel is (hypot(xl, yl) - CircleSize) / |EdgeFuzz| clamped to [0, 1], or a
// hard 0/1 step when EdgeFuzz is zero.
//
// # Channels
//
// Buffer is generic over its channel type (any integer or float type).
// Blending is done per channel in float64 and converted back with Numeric,
// which rounds and saturates for integer types. Blending is naive: no color
// space or alpha handling is applied.
//
// # Concurrency
//
// Rows are independent; large images are split into row bands processed by
// a worker pool (see WithWorkers). The output does not depend on the number
// of workers.
package radmix
