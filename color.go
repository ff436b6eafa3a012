package shapes

import "image/color"

// Color is an 8-bit RGBA color. Channel values are always in [0, 255];
// the type makes out-of-range construction impossible.
type Color struct {
	R, G, B, A uint8
}

// NewColor creates a color from individual channel values (0-255).
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates a fully opaque color from three channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBf creates a color from normalized float components (0.0-1.0).
// Components outside the range are clamped.
func RGBf(r, g, b, a float32) Color {
	return Color{
		R: uint8(clampf(r, 0, 1) * 255),
		G: uint8(clampf(g, 0, 1) * 255),
		B: uint8(clampf(b, 0, 1) * 255),
		A: uint8(clampf(a, 0, 1) * 255),
	}
}

// FromColor converts any standard library color, including the
// golang.org/x/image/colornames palette, losing premultiplication.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// WithAlpha returns the color with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Normalized returns the color as normalized floats in RGBA order,
// the form shader color uniforms take.
func (c Color) Normalized() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// appendVertexColors appends the color's byte quadruple once per vertex.
// Built-in shapes are single colored, so the per-vertex color stream of
// the generic draw path is the same quadruple replicated.
func (c Color) appendVertexColors(dst []byte, vertices int) []byte {
	for i := 0; i < vertices; i++ {
		dst = append(dst, c.R, c.G, c.B, c.A)
	}
	return dst
}

// Common colors. The full CSS palette is available through FromColor and
// golang.org/x/image/colornames.
var (
	White       = RGB(255, 255, 255)
	Black       = RGB(0, 0, 0)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Gray        = RGB(128, 128, 128)
	DarkGray    = RGB(64, 64, 64)
	LightGray   = RGB(192, 192, 192)
	Transparent = NewColor(0, 0, 0, 0)
)
