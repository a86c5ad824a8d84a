package radmix

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gogpu/radmix/internal/parallel"
	"github.com/gogpu/radmix/internal/resample"
)

// ErrChannelMismatch is returned when main and background have different channel counts.
var ErrChannelMismatch = errors.New("radmix: channel count mismatch")

// Composite blends background into main through a radial mask and returns main.
//
// The background is first resized to main's dimensions with the configured
// filter (Catmull-Rom by default); a background of the same size is read
// directly and never modified. Every pixel of main is then replaced by
//
//	main*(1-t) + background*t
//
// where t is Factor of the pixel's normalized distance from the image center.
// Pixels with t == 0 are left untouched.
//
// Errors are only returned for malformed buffers, before any pixel is written.
func Composite[S Subpixel](main, background *Buffer[S], p Params, opts ...Option) (*Buffer[S], error) {
	if err := checkBuffer(main); err != nil {
		return nil, fmt.Errorf("main: %w", err)
	}
	if err := checkBuffer(background); err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	if main.Channels != background.Channels {
		return nil, fmt.Errorf("%w: main has %d, background has %d",
			ErrChannelMismatch, main.Channels, background.Channels)
	}

	o := buildOptions(opts)
	num := NumericOf[S]()

	bg, err := resizeBuffer(num, background, main.Width, main.Height, o.filter)
	if err != nil {
		return nil, err
	}

	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var pool *parallel.WorkerPool
	if workers > 1 && main.Width*main.Height >= parallelThreshold {
		pool = parallel.NewWorkerPool(workers)
		defer pool.Close()
	} else {
		workers = 1
	}

	Logger().Debug("radmix: composite",
		"width", main.Width,
		"height", main.Height,
		"channels", main.Channels,
		"background", fmt.Sprintf("%dx%d", background.Width, background.Height),
		"filter", o.filter.String(),
		"workers", workers,
		"circle_size", p.CircleSize,
		"edge_fuzz", p.EdgeFuzz,
	)

	parallel.ForEachBand(pool, main.Height, func(b parallel.Band) {
		compositeRows(num, main, bg, p, b.Y0, b.Y1)
	})
	return main, nil
}

// compositeRows blends rows [y0, y1) of bg into main.
func compositeRows[S Subpixel](num Numeric[S], main, bg *Buffer[S], p Params, y0, y1 int) {
	w, h, ch := main.Width, main.Height, main.Channels
	for y := y0; y < y1; y++ {
		dst := main.Row(y)
		src := bg.Row(y)
		for x := range w {
			t := FactorAt(x, y, w, h, p)
			if t == 0 {
				continue
			}
			px := dst[x*ch : (x+1)*ch]
			if t == 1 {
				copy(px, src[x*ch:(x+1)*ch])
				continue
			}
			Mix(num, px, px, src[x*ch:(x+1)*ch], t)
		}
	}
}

// resizeBuffer returns b scaled to width×height. A buffer already of that
// size is returned as is.
func resizeBuffer[S Subpixel](num Numeric[S], b *Buffer[S], width, height int, f Filter) (*Buffer[S], error) {
	if b.Width == width && b.Height == height {
		return b, nil
	}
	pix, err := resample.Resize(num, b.Pix, b.Width, b.Height, b.Channels, width, height, f.kernel())
	if err != nil {
		return nil, fmt.Errorf("radmix: resize background: %w", err)
	}
	return &Buffer[S]{Width: width, Height: height, Channels: b.Channels, Pix: pix}, nil
}

func checkBuffer[S Subpixel](b *Buffer[S]) error {
	if b == nil || b.Width <= 0 || b.Height <= 0 || b.Channels <= 0 {
		return ErrInvalidDimensions
	}
	if len(b.Pix) < b.Width*b.Height*b.Channels {
		return ErrDataTooSmall
	}
	return nil
}
