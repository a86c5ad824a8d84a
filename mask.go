package radmix

import (
	"fmt"
	"math"
)

// Default blend parameters.
const (
	DefaultCircleSize = 0.5
	DefaultEdgeFuzz   = 0.01
)

// Params configures the radial mask.
//
// CircleSize is the mask radius in normalized units, where the image's
// vertical extent spans [-1, 1]. EdgeFuzz is the width of the linear
// transition band in the same units; zero gives a hard edge. A negative
// EdgeFuzz behaves like its absolute value.
type Params struct {
	CircleSize float64
	EdgeFuzz   float64
}

// DefaultParams returns Params{CircleSize: 0.5, EdgeFuzz: 0.01}.
func DefaultParams() Params {
	return Params{
		CircleSize: DefaultCircleSize,
		EdgeFuzz:   DefaultEdgeFuzz,
	}
}

// Validate reports an error wrapping ErrNonFinite if either value is NaN or infinite.
func (p Params) Validate() error {
	if math.IsNaN(p.CircleSize) || math.IsInf(p.CircleSize, 0) {
		return fmt.Errorf("circle size %v: %w", p.CircleSize, ErrNonFinite)
	}
	if math.IsNaN(p.EdgeFuzz) || math.IsInf(p.EdgeFuzz, 0) {
		return fmt.Errorf("edge fuzz %v: %w", p.EdgeFuzz, ErrNonFinite)
	}
	return nil
}

// IsHardEdge reports whether the mask has no transition band.
func (p Params) IsHardEdge() bool {
	return p.EdgeFuzz == 0
}

// Normalize maps pixel (x, y) of a width×height image to mask space.
// The vertical axis spans [-1, 1) and the horizontal axis is scaled by the
// aspect ratio, so equal distances describe a circle rather than an ellipse.
func Normalize(x, y, width, height int) (xl, yl float64) {
	w, h := float64(width), float64(height)
	aspect := w / h
	xl = (float64(x)/w*2 - 1) * aspect
	yl = float64(y)/h*2 - 1
	return xl, yl
}

// Distance returns the distance of a normalized coordinate from the mask center.
func Distance(xl, yl float64) float64 {
	return math.Hypot(xl, yl)
}

// Factor returns the background weight in [0, 1] for a point at the given
// distance from the mask center. 0 keeps the main image, 1 takes the background.
func Factor(distance float64, p Params) float64 {
	offset := distance - p.CircleSize
	if p.EdgeFuzz == 0 {
		if offset <= 0 {
			return 0
		}
		return 1
	}
	return clampUnit(offset / math.Abs(p.EdgeFuzz))
}

// FactorAt is Factor for pixel (x, y) of a width×height image.
func FactorAt(x, y, width, height int, p Params) float64 {
	return Factor(Distance(Normalize(x, y, width, height)), p)
}

// clampUnit clamps v to [0, 1]. NaN maps to 0.
func clampUnit(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Mix writes main*(1-t) + background*t into dst, channel by channel.
// dst may alias main.
func Mix[S Subpixel](num Numeric[S], dst, main, background []S, t float64) {
	inv := 1 - t
	for i := range dst {
		v := num.ToReal(main[i])*inv + num.ToReal(background[i])*t
		dst[i] = num.FromReal(v)
	}
}
