package resample

import (
	"errors"
	"math"
)

// ErrInvalidDimensions is returned when a source or destination dimension is non-positive
// or the source data is shorter than its dimensions require.
var ErrInvalidDimensions = errors.New("resample: invalid dimensions")

// Codec converts channel values to float64 and back.
type Codec[S any] interface {
	ToReal(S) float64
	FromReal(float64) S
}

// tap is one source sample contributing to a destination sample.
type tap struct {
	index  int
	weight float64
}

// Resize scales interleaved pixel data from sw×sh to dw×dh using kernel k.
//
// Rows are filtered first into a float64 scratch buffer, then columns; the
// codec's FromReal is applied once per output value. When downscaling the
// kernel is stretched by the scale factor so every source pixel contributes.
func Resize[S any](codec Codec[S], src []S, sw, sh, channels, dw, dh int, k Kernel) ([]S, error) {
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 || channels <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(src) < sw*sh*channels {
		return nil, ErrInvalidDimensions
	}

	xTaps := weights(sw, dw, k)
	yTaps := weights(sh, dh, k)

	tmp := make([]float64, dw*sh*channels)
	for y := range sh {
		srcRow := src[y*sw*channels : (y+1)*sw*channels]
		tmpRow := tmp[y*dw*channels : (y+1)*dw*channels]
		for x, taps := range xTaps {
			out := tmpRow[x*channels : (x+1)*channels]
			for _, t := range taps {
				in := srcRow[t.index*channels : (t.index+1)*channels]
				for c := range out {
					out[c] += t.weight * codec.ToReal(in[c])
				}
			}
		}
	}

	dst := make([]S, dw*dh*channels)
	acc := make([]float64, channels)
	for y, taps := range yTaps {
		dstRow := dst[y*dw*channels : (y+1)*dw*channels]
		for x := range dw {
			clear(acc)
			for _, t := range taps {
				in := tmp[(t.index*dw+x)*channels : (t.index*dw+x+1)*channels]
				for c := range acc {
					acc[c] += t.weight * in[c]
				}
			}
			out := dstRow[x*channels : (x+1)*channels]
			for c := range out {
				out[c] = codec.FromReal(acc[c])
			}
		}
	}
	return dst, nil
}

// weights computes the normalized taps for each of the dst samples along one axis.
// Sample centers sit at half-pixel offsets; out-of-range taps clamp to the edge.
func weights(src, dst int, k Kernel) [][]tap {
	scale := float64(src) / float64(dst)
	stretch := math.Max(scale, 1)
	radius := k.Support * stretch

	all := make([][]tap, dst)
	for i := range dst {
		center := (float64(i)+0.5)*scale - 0.5
		lo := int(math.Ceil(center - radius))
		hi := int(math.Floor(center + radius))

		taps := make([]tap, 0, hi-lo+1)
		var sum float64
		for j := lo; j <= hi; j++ {
			w := k.At((float64(j) - center) / stretch)
			if w == 0 {
				continue
			}
			taps = append(taps, tap{index: min(max(j, 0), src-1), weight: w})
			sum += w
		}
		if sum != 0 && sum != 1 {
			for n := range taps {
				taps[n].weight /= sum
			}
		}
		all[i] = taps
	}
	return all
}
