// Package parallel splits row-independent image work across goroutines.
//
// Rows are grouped into contiguous bands; each band is written by exactly one
// job, so jobs never touch the same pixels and need no locking.
package parallel

// MinBandRows is the smallest band SplitRows produces unless the image itself
// is shorter.
const MinBandRows = 16

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0 int
	Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows partitions height rows into at most parts bands of near-equal
// size, each at least MinBandRows tall. The bands are ordered, disjoint and
// cover every row exactly once.
func SplitRows(height, parts int) []Band {
	if height <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if limit := (height + MinBandRows - 1) / MinBandRows; parts > limit {
		parts = limit
	}

	bands := make([]Band, 0, parts)
	base, extra := height/parts, height%parts
	y := 0
	for i := range parts {
		n := base
		if i < extra {
			n++
		}
		bands = append(bands, Band{Y0: y, Y1: y + n})
		y += n
	}
	return bands
}

// ForEachBand runs fn for every band of height rows using pool.
// A nil pool or a single band runs on the calling goroutine.
func ForEachBand(pool *WorkerPool, height int, fn func(Band)) {
	parts := 1
	if pool != nil {
		parts = pool.Workers() * 4
	}
	bands := SplitRows(height, parts)
	if pool == nil || len(bands) == 1 {
		for _, b := range bands {
			fn(b)
		}
		return
	}

	jobs := make([]func(), len(bands))
	for i, b := range bands {
		jobs[i] = func() { fn(b) }
	}
	pool.ExecuteAll(jobs)
}
