package radmix

import (
	"encoding/binary"
	"image"

	"golang.org/x/image/draw"
)

// interpolator returns the golang.org/x/image/draw kernel matching f.
func (f Filter) interpolator() draw.Interpolator {
	if f == FilterBilinear {
		return draw.BiLinear
	}
	return draw.CatmullRom
}

// CompositeImage is Composite for standard library images.
//
// The result is a new image with main's size and origin (0, 0); neither
// argument is modified. Its concrete type follows main: *image.Gray,
// *image.Gray16, *image.RGBA, *image.RGBA64 and *image.NRGBA64 are kept,
// every other type (including *image.NRGBA) yields *image.NRGBA. The
// background is resized into the same type with golang.org/x/image/draw
// before blending, so channels are mixed in main's own representation.
func CompositeImage(main, background image.Image, p Params, opts ...Option) (draw.Image, error) {
	if main == nil || background == nil || main.Bounds().Empty() || background.Bounds().Empty() {
		return nil, ErrInvalidDimensions
	}

	o := buildOptions(opts)
	dst := cloneImage(main)
	bounds := dst.Bounds()
	bg := newLike(dst, bounds)
	if sb := background.Bounds(); sb.Size() == bounds.Size() {
		draw.Draw(bg, bounds, background, sb.Min, draw.Src)
	} else {
		o.filter.interpolator().Scale(bg, bounds, background, sb, draw.Src, nil)
	}

	w, h := bounds.Dx(), bounds.Dy()
	var err error
	switch d := dst.(type) {
	case *image.Gray:
		err = compositePix(d.Pix, bg.(*image.Gray).Pix, w, h, 1, p, opts)
	case *image.RGBA:
		err = compositePix(d.Pix, bg.(*image.RGBA).Pix, w, h, 4, p, opts)
	case *image.NRGBA:
		err = compositePix(d.Pix, bg.(*image.NRGBA).Pix, w, h, 4, p, opts)
	case *image.Gray16:
		err = composite16(d.Pix, bg.(*image.Gray16).Pix, w, h, 1, p, opts)
	case *image.RGBA64:
		err = composite16(d.Pix, bg.(*image.RGBA64).Pix, w, h, 4, p, opts)
	case *image.NRGBA64:
		err = composite16(d.Pix, bg.(*image.NRGBA64).Pix, w, h, 4, p, opts)
	}
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// cloneImage copies img into a new image of a supported type with origin (0, 0).
func cloneImage(img image.Image) draw.Image {
	b := img.Bounds()
	r := image.Rect(0, 0, b.Dx(), b.Dy())

	var dst draw.Image
	switch img.(type) {
	case *image.Gray:
		dst = image.NewGray(r)
	case *image.Gray16:
		dst = image.NewGray16(r)
	case *image.RGBA:
		dst = image.NewRGBA(r)
	case *image.RGBA64:
		dst = image.NewRGBA64(r)
	case *image.NRGBA64:
		dst = image.NewNRGBA64(r)
	default:
		dst = image.NewNRGBA(r)
	}
	draw.Draw(dst, r, img, b.Min, draw.Src)
	return dst
}

// newLike allocates an empty image of the same concrete type as img.
func newLike(img draw.Image, r image.Rectangle) draw.Image {
	switch img.(type) {
	case *image.Gray:
		return image.NewGray(r)
	case *image.Gray16:
		return image.NewGray16(r)
	case *image.RGBA:
		return image.NewRGBA(r)
	case *image.RGBA64:
		return image.NewRGBA64(r)
	case *image.NRGBA64:
		return image.NewNRGBA64(r)
	default:
		return image.NewNRGBA(r)
	}
}

// compositePix composites 8-bit pixel slices in place. Both slices must be
// tightly packed (stride == w*ch), which holds for freshly allocated images.
func compositePix(mainPix, bgPix []uint8, w, h, ch int, p Params, opts []Option) error {
	mb, err := FromPix(mainPix, w, h, ch)
	if err != nil {
		return err
	}
	bb, err := FromPix(bgPix, w, h, ch)
	if err != nil {
		return err
	}
	_, err = Composite(mb, bb, p, opts...)
	return err
}

// composite16 composites big-endian 16-bit pixel bytes in place.
func composite16(mainPix, bgPix []byte, w, h, ch int, p Params, opts []Option) error {
	mb, err := FromPix(decode16(mainPix), w, h, ch)
	if err != nil {
		return err
	}
	bb, err := FromPix(decode16(bgPix), w, h, ch)
	if err != nil {
		return err
	}
	if _, err := Composite(mb, bb, p, opts...); err != nil {
		return err
	}
	encode16(mainPix, mb.Pix)
	return nil
}

func decode16(pix []byte) []uint16 {
	out := make([]uint16, len(pix)/2)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(pix[2*i:])
	}
	return out
}

func encode16(dst []byte, v []uint16) {
	for i, s := range v {
		binary.BigEndian.PutUint16(dst[2*i:], s)
	}
}
