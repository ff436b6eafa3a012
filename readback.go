package shapes

import (
	"fmt"
	"image"
)

// Framebuffer is the readback contract a rendering backend exposes.
// Coordinates handed to ReadPixels are physical pixels; the helpers in
// this package take logical coordinates and apply the pixel ratio.
type Framebuffer interface {
	// ReadPixels returns tightly packed RGBA bytes for the region, rows
	// ordered bottom-up as the GPU stores them.
	ReadPixels(x, y, width, height int) []byte
	// Size returns the drawable size in logical pixels.
	Size() (width, height int)
	// PixelRatio is the physical to logical pixel scale, 1 on standard
	// displays and larger on high-DPI ones.
	PixelRatio() float32
}

// Pixel reads the color of one pixel at logical coordinates.
func Pixel(fb Framebuffer, x, y int) (Color, error) {
	if fb == nil {
		return Color{}, ErrNoContext
	}
	ratio := fb.PixelRatio()
	data := fb.ReadPixels(int(float32(x)*ratio), int(float32(y)*ratio), 1, 1)
	if len(data) < 4 {
		return Color{}, fmt.Errorf("shapes: pixel read returned %d bytes", len(data))
	}
	return NewColor(data[0], data[1], data[2], data[3]), nil
}

// Image captures a region of the framebuffer. The region is given in
// logical pixels; a width or height of zero or less extends the region
// to the respective screen edge. Rows are flipped on the way out, so the
// returned image is in the usual top-down order.
func Image(fb Framebuffer, x, y, width, height int) (*image.RGBA, error) {
	if fb == nil {
		return nil, ErrNoContext
	}
	screenW, screenH := fb.Size()
	if width <= 0 {
		width = screenW - x
	}
	if height <= 0 {
		height = screenH - y
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("shapes: capture region %dx%d is empty", width, height)
	}

	ratio := fb.PixelRatio()
	pw := int(float32(width) * ratio)
	ph := int(float32(height) * ratio)
	data := fb.ReadPixels(int(float32(x)*ratio), int(float32(y)*ratio), pw, ph)
	if len(data) < pw*ph*4 {
		return nil, fmt.Errorf("shapes: pixel read returned %d bytes, want %d", len(data), pw*ph*4)
	}

	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	stride := pw * 4
	for row := 0; row < ph; row++ {
		copy(img.Pix[(ph-1-row)*img.Stride:], data[row*stride:(row+1)*stride])
	}
	return img, nil
}
