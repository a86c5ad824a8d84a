package radmix

import (
	"errors"
	"image"
)

// Common errors for buffer and compositing operations.
var (
	// ErrInvalidDimensions is returned when width, height or channel count is non-positive.
	ErrInvalidDimensions = errors.New("radmix: invalid dimensions")

	// ErrDataTooSmall is returned when provided pixel data is smaller than required.
	ErrDataTooSmall = errors.New("radmix: pixel data too small")

	// ErrNonFinite is returned by Params.Validate for NaN or infinite parameters.
	ErrNonFinite = errors.New("radmix: parameter is not finite")
)

// Buffer is a 2D grid of pixels whose channels share the numeric type S.
//
// Pix holds Width*Height pixels row by row; each pixel is Channels
// consecutive values (for example R, G, B, A or a single luma value).
type Buffer[S Subpixel] struct {
	Width    int
	Height   int
	Channels int
	Pix      []S
}

// NewBuffer allocates a zeroed buffer.
func NewBuffer[S Subpixel](width, height, channels int) (*Buffer[S], error) {
	if width <= 0 || height <= 0 || channels <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buffer[S]{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]S, width*height*channels),
	}, nil
}

// FromPix wraps existing pixel data without copying.
func FromPix[S Subpixel](pix []S, width, height, channels int) (*Buffer[S], error) {
	if width <= 0 || height <= 0 || channels <= 0 {
		return nil, ErrInvalidDimensions
	}
	n := width * height * channels
	if len(pix) < n {
		return nil, ErrDataTooSmall
	}
	return &Buffer[S]{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      pix[:n],
	}, nil
}

// Bounds returns the buffer dimensions as an image.Rectangle.
func (b *Buffer[S]) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// Stride returns the number of values per row.
func (b *Buffer[S]) Stride() int {
	return b.Width * b.Channels
}

// PixOffset returns the index of the first channel of pixel (x, y) in Pix.
// Returns -1 if the coordinates are out of bounds.
func (b *Buffer[S]) PixOffset(x, y int) int {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return -1
	}
	return y*b.Stride() + x*b.Channels
}

// Pixel returns the channels of pixel (x, y) as a slice sharing Pix.
// Returns nil if the coordinates are out of bounds.
func (b *Buffer[S]) Pixel(x, y int) []S {
	i := b.PixOffset(x, y)
	if i < 0 {
		return nil
	}
	return b.Pix[i : i+b.Channels : i+b.Channels]
}

// SetPixel copies px into pixel (x, y).
// Out-of-bounds coordinates are ignored.
func (b *Buffer[S]) SetPixel(x, y int, px []S) {
	i := b.PixOffset(x, y)
	if i < 0 {
		return
	}
	copy(b.Pix[i:i+b.Channels], px)
}

// Row returns the values of row y, or nil if y is out of bounds.
func (b *Buffer[S]) Row(y int) []S {
	if y < 0 || y >= b.Height {
		return nil
	}
	start := y * b.Stride()
	return b.Pix[start : start+b.Stride()]
}

// Fill sets every pixel to px.
func (b *Buffer[S]) Fill(px []S) {
	for i := 0; i < len(b.Pix); i += b.Channels {
		copy(b.Pix[i:i+b.Channels], px)
	}
}

// Clone creates a deep copy of the buffer.
func (b *Buffer[S]) Clone() *Buffer[S] {
	pix := make([]S, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer[S]{
		Width:    b.Width,
		Height:   b.Height,
		Channels: b.Channels,
		Pix:      pix,
	}
}
