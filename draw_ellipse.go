package shapes

// EllipseFilled draws a filled ellipse with the given full extents
// centered at (x, y). Only the center vertex crosses the bus; the
// ellipse family's program expands it into the full shape on the GPU.
//
// Options: Tilt, Segments.
func (c *Canvas) EllipseFilled(x, y, width, height float32, col Color, opts ...Option) error {
	if err := c.ready(); err != nil {
		return err
	}
	o := applyDrawOptions(opts)
	params := DrawParams{
		Color:    col.Normalized(),
		Width:    width,
		Height:   height,
		Tilt:     o.tilt,
		Segments: segments32(o.segments),
	}
	return c.drawUniform(&c.families.EllipseFilled, params, PointList{{X: x, Y: y}}, TopologyPoints)
}

// EllipseOutline strokes an ellipse with a border straddling the nominal
// curve, expanded on the GPU from a single center vertex.
//
// Options: Border, Tilt, Segments.
func (c *Canvas) EllipseOutline(x, y, width, height float32, col Color, opts ...Option) error {
	if err := c.ready(); err != nil {
		return err
	}
	o := applyDrawOptions(opts)
	params := DrawParams{
		Color:    col.Normalized(),
		Width:    width,
		Height:   height,
		Tilt:     o.tilt,
		Border:   o.border,
		Segments: segments32(o.segments),
	}
	return c.drawUniform(&c.families.EllipseOutline, params, PointList{{X: x, Y: y}}, TopologyPoints)
}

// CircleFilled draws a filled circle of the given radius centered at
// (x, y).
//
// Options: Segments.
func (c *Canvas) CircleFilled(x, y, radius float32, col Color, opts ...Option) error {
	return c.EllipseFilled(x, y, radius*2, radius*2, col, opts...)
}

// CircleOutline strokes a circle of the given radius centered at (x, y).
//
// Options: Border, Segments.
func (c *Canvas) CircleOutline(x, y, radius float32, col Color, opts ...Option) error {
	return c.EllipseOutline(x, y, radius*2, radius*2, col, opts...)
}
