package radmix

import (
	"errors"
	"math"
	"testing"
)

func solid[S Subpixel](t *testing.T, w, h int, px ...S) *Buffer[S] {
	t.Helper()
	b, err := NewBuffer[S](w, h, len(px))
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d, %d) failed: %v", w, h, len(px), err)
	}
	b.Fill(px)
	return b
}

// gradient fills every channel with a value derived from its position.
func gradient(t *testing.T, w, h, ch int) *Buffer[uint8] {
	t.Helper()
	b, err := NewBuffer[uint8](w, h, ch)
	if err != nil {
		t.Fatalf("NewBuffer failed: %v", err)
	}
	for i := range b.Pix {
		b.Pix[i] = uint8((i*37 + i/ch*11) % 256)
	}
	return b
}

func TestComposite_CircleCoversImage(t *testing.T) {
	main := solid[uint8](t, 4, 4, 200)
	bg := solid[uint8](t, 4, 4, 0)

	got, err := Composite(main, bg, Params{CircleSize: 10, EdgeFuzz: 0})
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	for i, v := range got.Pix {
		if v != 200 {
			t.Fatalf("Pix[%d] = %d, want 200", i, v)
		}
	}
}

func TestComposite_NegativeCircle(t *testing.T) {
	main := solid[uint8](t, 4, 4, 200)
	bg := solid[uint8](t, 4, 4, 0)

	got, err := Composite(main, bg, Params{CircleSize: -1, EdgeFuzz: 0})
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	for i, v := range got.Pix {
		if v != 0 {
			t.Fatalf("Pix[%d] = %d, want 0", i, v)
		}
	}
}

func TestComposite_ReturnsMainWithMainDimensions(t *testing.T) {
	sizes := [][2]int{{1, 1}, {7, 3}, {3, 7}, {16, 9}}
	for _, s := range sizes {
		main := gradient(t, s[0], s[1], 3)
		bg := gradient(t, 11, 5, 3)

		got, err := Composite(main, bg, DefaultParams())
		if err != nil {
			t.Fatalf("%v: Composite failed: %v", s, err)
		}
		if got != main {
			t.Errorf("%v: Composite did not return the main buffer", s)
		}
		if got.Width != s[0] || got.Height != s[1] || got.Channels != 3 {
			t.Errorf("%v: result is %dx%dx%d", s, got.Width, got.Height, got.Channels)
		}
		if bg.Width != 11 || bg.Height != 5 {
			t.Errorf("%v: background was modified", s)
		}
	}
}

func TestComposite_OutsideEqualsResizedBackground(t *testing.T) {
	for _, f := range []Filter{FilterCatmullRom, FilterBilinear} {
		main := gradient(t, 12, 8, 4)
		bg := gradient(t, 5, 9, 4)

		want, err := resizeBuffer(NumericOf[uint8](), bg, 12, 8, f)
		if err != nil {
			t.Fatalf("resizeBuffer failed: %v", err)
		}

		got, err := Composite(main, bg, Params{CircleSize: -0.5, EdgeFuzz: 0}, WithFilter(f))
		if err != nil {
			t.Fatalf("Composite failed: %v", err)
		}
		for i := range want.Pix {
			if got.Pix[i] != want.Pix[i] {
				t.Fatalf("%s: Pix[%d] = %d, want resized background %d", f, i, got.Pix[i], want.Pix[i])
			}
		}
	}
}

func TestComposite_LargeCircleKeepsMain(t *testing.T) {
	main := gradient(t, 10, 6, 3)
	orig := main.Clone()
	bg := solid[uint8](t, 3, 3, 1, 2, 3)

	if _, err := Composite(main, bg, Params{CircleSize: 3, EdgeFuzz: 0}); err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	for i := range orig.Pix {
		if main.Pix[i] != orig.Pix[i] {
			t.Fatalf("Pix[%d] = %d, want %d", i, main.Pix[i], orig.Pix[i])
		}
	}
}

func TestComposite_HardEdgeIsBinary(t *testing.T) {
	main := solid[uint8](t, 9, 7, 0)
	bg := solid[uint8](t, 9, 7, 255)

	if _, err := Composite(main, bg, Params{CircleSize: 0.6, EdgeFuzz: 0}); err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	var inside, outside int
	for i, v := range main.Pix {
		switch v {
		case 0:
			inside++
		case 255:
			outside++
		default:
			t.Fatalf("Pix[%d] = %d, hard edge must not blend", i, v)
		}
	}
	if inside == 0 || outside == 0 {
		t.Errorf("inside = %d, outside = %d; expected both regions", inside, outside)
	}
}

func TestComposite_TwoByTwoCorner(t *testing.T) {
	main := solid[uint8](t, 2, 2, 200)
	bg := solid[uint8](t, 2, 2, 0)

	if _, err := Composite(main, bg, Params{CircleSize: 0, EdgeFuzz: 1}); err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	// (0,0) sits at distance sqrt(2): pure background.
	if v := main.Pixel(0, 0)[0]; v != 0 {
		t.Errorf("corner = %d, want 0", v)
	}
	// (1,1) maps to the origin: pure main.
	if v := main.Pixel(1, 1)[0]; v != 200 {
		t.Errorf("center = %d, want 200", v)
	}
}

func TestComposite_FuzzBandBlends(t *testing.T) {
	main := solid[uint8](t, 4, 4, 200)
	bg := solid[uint8](t, 4, 4, 0)

	if _, err := Composite(main, bg, Params{CircleSize: 0, EdgeFuzz: 1}); err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	// (3,3) maps to (0.5, 0.5): blend sqrt(0.5).
	v := main.Pixel(3, 3)[0]
	if v == 0 || v == 200 {
		t.Fatalf("in-band pixel = %d, want a genuine mix", v)
	}
	want := uint8(math.Round(200 * (1 - math.Sqrt(0.5))))
	if v != want {
		t.Errorf("in-band pixel = %d, want %d", v, want)
	}
}

func TestComposite_FloatOutputIsBlendFactor(t *testing.T) {
	const w, h = 20, 10
	p := Params{CircleSize: 0.4, EdgeFuzz: 0.3}
	main := solid[float64](t, w, h, 0)
	bg := solid[float64](t, w, h, 1)

	if _, err := Composite(main, bg, p); err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	for y := range h {
		for x := range w {
			want := FactorAt(x, y, w, h, p)
			if got := main.Pixel(x, y)[0]; math.Abs(got-want) > eps {
				t.Fatalf("(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestComposite_RotationalSymmetry(t *testing.T) {
	const n = 16
	main := solid[float32](t, n, n, 0)
	bg := solid[float32](t, n, n, 1)

	if _, err := Composite(main, bg, Params{CircleSize: 0.5, EdgeFuzz: 0.4}); err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	at := func(x, y int) float32 { return main.Pixel(x, y)[0] }
	for y := range n {
		for x := range n {
			if at(x, y) != at(y, x) {
				t.Errorf("(%d,%d) = %v, (%d,%d) = %v", x, y, at(x, y), y, x, at(y, x))
			}
			if x > 0 && at(x, y) != at(n-x, y) {
				t.Errorf("(%d,%d) = %v, mirrored (%d,%d) = %v", x, y, at(x, y), n-x, y, at(n-x, y))
			}
		}
	}
}

func TestComposite_MonotonicAlongRadius(t *testing.T) {
	const w, h = 64, 32
	main := solid[float64](t, w, h, 0)
	bg := solid[float64](t, w, h, 1)

	if _, err := Composite(main, bg, Params{CircleSize: 0.3, EdgeFuzz: 0.5}); err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	// Row h/2 passes through the center; walk outward to the right.
	prev := main.Pixel(w/2, h/2)[0]
	for x := w/2 + 1; x < w; x++ {
		v := main.Pixel(x, h/2)[0]
		if v < prev {
			t.Fatalf("blend decreased at x=%d: %v < %v", x, v, prev)
		}
		prev = v
	}
}

func TestComposite_ChannelIndependence(t *testing.T) {
	p := Params{CircleSize: 0.3, EdgeFuzz: 0.6}
	a := gradient(t, 8, 8, 3)
	b := a.Clone()
	for i := 1; i < len(b.Pix); i += 3 {
		b.Pix[i] = 255 - b.Pix[i]
	}
	bgA := gradient(t, 5, 5, 3)
	bgB := bgA.Clone()
	for i := 1; i < len(bgB.Pix); i += 3 {
		bgB.Pix[i] = 0
	}

	if _, err := Composite(a, bgA, p); err != nil {
		t.Fatal(err)
	}
	if _, err := Composite(b, bgB, p); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(a.Pix); i += 3 {
		if a.Pix[i] != b.Pix[i] || a.Pix[i+2] != b.Pix[i+2] {
			t.Fatalf("pixel %d: channels 0/2 differ (%v vs %v)", i/3, a.Pix[i:i+3], b.Pix[i:i+3])
		}
	}
}

func TestComposite_ParallelMatchesSequential(t *testing.T) {
	p := Params{CircleSize: 0.45, EdgeFuzz: 0.2}
	seq := gradient(t, 300, 260, 4)
	par := seq.Clone()
	bg := gradient(t, 50, 40, 4)

	if _, err := Composite(seq, bg, p, WithWorkers(1)); err != nil {
		t.Fatal(err)
	}
	if _, err := Composite(par, bg, p, WithWorkers(4)); err != nil {
		t.Fatal(err)
	}
	for i := range seq.Pix {
		if seq.Pix[i] != par.Pix[i] {
			t.Fatalf("Pix[%d]: sequential %d, parallel %d", i, seq.Pix[i], par.Pix[i])
		}
	}
}

func TestComposite_Errors(t *testing.T) {
	rgb := solid[uint8](t, 4, 4, 1, 2, 3)
	gray := solid[uint8](t, 4, 4, 9)

	if _, err := Composite(rgb, gray, DefaultParams()); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("mismatch error = %v, want ErrChannelMismatch", err)
	}
	if _, err := Composite(nil, gray, DefaultParams()); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("nil main error = %v, want ErrInvalidDimensions", err)
	}
	short := &Buffer[uint8]{Width: 4, Height: 4, Channels: 1, Pix: make([]uint8, 3)}
	if _, err := Composite(gray, short, DefaultParams()); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short background error = %v, want ErrDataTooSmall", err)
	}
	if gray.Pix[0] != 9 {
		t.Error("main modified although Composite failed")
	}
}
