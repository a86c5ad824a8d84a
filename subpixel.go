package radmix

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Subpixel is the set of numeric types a single channel value may have.
type Subpixel interface {
	constraints.Integer | constraints.Float
}

// Numeric converts channel values of type S to and from float64.
//
// A Numeric is built once per channel type with NumericOf and then used for
// every pixel, so the range checks below are computed a single time.
type Numeric[S Subpixel] struct {
	integer bool
	lo, hi  S
	loF     float64
	hiF     float64
}

// NumericOf returns the conversion capability for channel type S.
func NumericOf[S Subpixel]() Numeric[S] {
	var zero S
	half := 0.5
	if S(half) != zero {
		return Numeric[S]{}
	}

	bits := int(unsafe.Sizeof(zero)) * 8
	n := Numeric[S]{integer: true}

	minusOne := zero
	minusOne--
	if minusOne > zero {
		// Unsigned: decrementing zero wrapped around to the maximum.
		n.lo, n.hi = zero, minusOne
	} else {
		// 2^(bits-2), doubled below without overflowing.
		quarter := S(1)
		for range bits - 2 {
			quarter *= 2
		}
		n.hi = quarter + (quarter - 1)
		n.lo = -n.hi - 1
	}
	n.loF = float64(n.lo)
	n.hiF = float64(n.hi)
	return n
}

// IsInteger reports whether S is an integer type.
func (n Numeric[S]) IsInteger() bool {
	return n.integer
}

// Range returns the representable range of an integer S.
// For float types both bounds are zero.
func (n Numeric[S]) Range() (lo, hi S) {
	return n.lo, n.hi
}

// ToReal converts a channel value to float64.
func (n Numeric[S]) ToReal(s S) float64 {
	return float64(s)
}

// FromReal converts v back to S. Integer types round half away from zero and
// saturate at the type's bounds; NaN becomes zero.
func (n Numeric[S]) FromReal(v float64) S {
	if !n.integer {
		return S(v)
	}
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	if v <= n.loF {
		return n.lo
	}
	if v >= n.hiF {
		return n.hi
	}
	return S(v)
}
