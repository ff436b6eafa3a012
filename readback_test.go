package shapes_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/shapes"
)

// mockFramebuffer serves synthetic pixel data and records the physical
// region of the last read.
type mockFramebuffer struct {
	width, height int
	ratio         float32
	pixel         [4]byte
	short         bool

	lastX, lastY, lastW, lastH int
}

func (m *mockFramebuffer) ReadPixels(x, y, w, h int) []byte {
	m.lastX, m.lastY, m.lastW, m.lastH = x, y, w, h
	if m.short {
		return nil
	}
	if w == 1 && h == 1 {
		return m.pixel[:]
	}
	// Every byte of row r carries the value r, bottom row first, so the
	// row order survives into assertions.
	data := make([]byte, w*h*4)
	for row := 0; row < h; row++ {
		for i := 0; i < w*4; i++ {
			data[row*w*4+i] = byte(row)
		}
	}
	return data
}

func (m *mockFramebuffer) Size() (int, int)    { return m.width, m.height }
func (m *mockFramebuffer) PixelRatio() float32 { return m.ratio }

func TestPixelAppliesRatio(t *testing.T) {
	fb := &mockFramebuffer{width: 800, height: 600, ratio: 2, pixel: [4]byte{10, 20, 30, 40}}

	c, err := shapes.Pixel(fb, 100, 50)
	if err != nil {
		t.Fatalf("Pixel returned error: %v", err)
	}
	if c != shapes.NewColor(10, 20, 30, 40) {
		t.Errorf("unexpected color %+v", c)
	}
	// Logical coordinates doubled into physical ones.
	if fb.lastX != 200 || fb.lastY != 100 {
		t.Errorf("expected read at (200, 100), got (%d, %d)", fb.lastX, fb.lastY)
	}
	if fb.lastW != 1 || fb.lastH != 1 {
		t.Errorf("expected a 1x1 read, got %dx%d", fb.lastW, fb.lastH)
	}
}

func TestPixelShortRead(t *testing.T) {
	fb := &mockFramebuffer{width: 8, height: 6, ratio: 1, short: true}

	if _, err := shapes.Pixel(fb, 0, 0); err == nil {
		t.Fatal("expected error for a short pixel read")
	}
}

func TestReadbackNoContext(t *testing.T) {
	if _, err := shapes.Pixel(nil, 0, 0); !errors.Is(err, shapes.ErrNoContext) {
		t.Errorf("Pixel: expected ErrNoContext, got %v", err)
	}
	if _, err := shapes.Image(nil, 0, 0, 0, 0); !errors.Is(err, shapes.ErrNoContext) {
		t.Errorf("Image: expected ErrNoContext, got %v", err)
	}
}

func TestImageFlipsRows(t *testing.T) {
	fb := &mockFramebuffer{width: 8, height: 6, ratio: 1}

	img, err := shapes.Image(fb, 0, 0, 4, 3)
	if err != nil {
		t.Fatalf("Image returned error: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Fatalf("expected a 4x3 image, got %v", img.Bounds())
	}

	// The GPU's bottom-up rows come out top-down: the highest source row
	// is the first image row.
	if img.Pix[0] != 2 {
		t.Errorf("expected top image row from source row 2, got %d", img.Pix[0])
	}
	if img.Pix[2*img.Stride] != 0 {
		t.Errorf("expected bottom image row from source row 0, got %d", img.Pix[2*img.Stride])
	}
}

func TestImageDefaultExtents(t *testing.T) {
	fb := &mockFramebuffer{width: 8, height: 6, ratio: 1}

	img, err := shapes.Image(fb, 2, 1, 0, 0)
	if err != nil {
		t.Fatalf("Image returned error: %v", err)
	}
	// Zero extents reach to the screen edges.
	if fb.lastW != 6 || fb.lastH != 5 {
		t.Errorf("expected a 6x5 read, got %dx%d", fb.lastW, fb.lastH)
	}
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 5 {
		t.Errorf("expected a 6x5 image, got %v", img.Bounds())
	}
}

func TestImageRatioScalesRegion(t *testing.T) {
	fb := &mockFramebuffer{width: 800, height: 600, ratio: 2}

	img, err := shapes.Image(fb, 1, 2, 3, 4)
	if err != nil {
		t.Fatalf("Image returned error: %v", err)
	}
	if fb.lastX != 2 || fb.lastY != 4 || fb.lastW != 6 || fb.lastH != 8 {
		t.Errorf("expected physical read (2, 4) 6x8, got (%d, %d) %dx%d",
			fb.lastX, fb.lastY, fb.lastW, fb.lastH)
	}
	// The capture comes back at physical resolution.
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 8 {
		t.Errorf("expected a 6x8 image, got %v", img.Bounds())
	}
}

func TestImageEmptyRegion(t *testing.T) {
	fb := &mockFramebuffer{width: 8, height: 6, ratio: 1}

	if _, err := shapes.Image(fb, 10, 0, 0, 5); err == nil {
		t.Fatal("expected error for a region past the screen edge")
	}
}
