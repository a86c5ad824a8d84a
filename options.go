package radmix

import "github.com/gogpu/radmix/internal/resample"

// Filter selects the interpolation kernel used to resize the background.
type Filter uint8

const (
	// FilterCatmullRom is the Catmull-Rom cubic kernel. It is the default.
	FilterCatmullRom Filter = iota

	// FilterBilinear is the triangle kernel. Faster, slightly softer.
	FilterBilinear
)

// String returns the filter name as accepted by ParseFilter.
func (f Filter) String() string {
	switch f {
	case FilterCatmullRom:
		return "catmullrom"
	case FilterBilinear:
		return "bilinear"
	default:
		return "unknown"
	}
}

// ParseFilter returns the filter with the given name.
func ParseFilter(name string) (Filter, bool) {
	switch name {
	case "catmullrom", "catmull-rom", "cubic", "":
		return FilterCatmullRom, true
	case "bilinear", "linear":
		return FilterBilinear, true
	default:
		return 0, false
	}
}

func (f Filter) kernel() resample.Kernel {
	if f == FilterBilinear {
		return resample.Bilinear
	}
	return resample.CatmullRom
}

// parallelThreshold is the pixel count below which compositing stays on the
// calling goroutine.
const parallelThreshold = 256 * 256

// Option configures a Composite call.
//
// Example:
//
//	radmix.Composite(main, bg, radmix.DefaultParams(),
//	    radmix.WithFilter(radmix.FilterBilinear),
//	    radmix.WithWorkers(1))
type Option func(*options)

type options struct {
	filter  Filter
	workers int
}

func defaultOptions() options {
	return options{
		filter:  FilterCatmullRom,
		workers: 0, // GOMAXPROCS
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithFilter sets the kernel used to resize the background.
func WithFilter(f Filter) Option {
	return func(o *options) {
		o.filter = f
	}
}

// WithWorkers sets how many goroutines process rows.
// 0 or negative uses GOMAXPROCS; 1 disables parallelism.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
