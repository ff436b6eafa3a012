package shapes

// Option adjusts an optional parameter of a draw operation. Operations
// ignore options that do not apply to them; each operation documents the
// options it reads.
type Option func(*drawOptions)

// drawOptions holds the resolved optional parameters of one draw.
type drawOptions struct {
	tilt      float32
	border    float32
	lineWidth float32
	segments  int
}

// applyDrawOptions resolves options against the defaults: no tilt,
// one-pixel strokes, automatic segment counts.
func applyDrawOptions(opts []Option) drawOptions {
	o := drawOptions{border: 1, lineWidth: 1}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Tilt rotates the shape clockwise by the given angle in degrees about
// its center.
func Tilt(degrees float32) Option {
	return func(o *drawOptions) { o.tilt = degrees }
}

// Border sets the stroke width of outlined shapes. The default is 1.
func Border(width float32) Option {
	return func(o *drawOptions) { o.border = width }
}

// LineWidth sets the stroke width of line, strip and polygon outline
// operations. The default is 1.
func LineWidth(width float32) Option {
	return func(o *drawOptions) { o.lineWidth = width }
}

// Segments fixes the number of segments a curved shape is approximated
// with. Counts below one fall back to automatic selection from the
// shape's size, which is also the default.
func Segments(n int) Option {
	return func(o *drawOptions) { o.segments = n }
}

// segments32 normalizes a segment count for the parameter record, folding
// all auto requests to zero.
func segments32(n int) int32 {
	if n < 1 {
		return 0
	}
	return int32(n)
}
