package shapes

// RectFilled draws a filled rectangle. Only the center vertex crosses
// the bus; the rectangle family's program expands it into the quad on
// the GPU.
//
// Options: Tilt.
func (c *Canvas) RectFilled(r Rect, col Color, opts ...Option) error {
	if err := c.ready(); err != nil {
		return err
	}
	o := applyDrawOptions(opts)
	params := DrawParams{
		Color:  col.Normalized(),
		Width:  r.Width(),
		Height: r.Height(),
		Tilt:   o.tilt,
	}
	return c.drawUniform(&c.families.RectFilled, params, PointList{r.Center()}, TopologyPoints)
}

// RectOutline strokes a rectangle with a border straddling its edges,
// tessellated on the CPU as a ten-point triangle strip.
//
// Options: Border, Tilt.
func (c *Canvas) RectOutline(r Rect, col Color, opts ...Option) error {
	if err := c.ready(); err != nil {
		return err
	}
	o := applyDrawOptions(opts)
	return c.drawStrip(RectOutlinePoints(r, o.border, o.tilt), col, TopologyTriangleStrip)
}

// RectFilledLRBT draws a filled rectangle from explicit edge
// coordinates. Crossed edges are rejected with ErrInvalidRect before any
// GPU resource is touched.
//
// Options: Tilt.
func (c *Canvas) RectFilledLRBT(left, right, bottom, top float32, col Color, opts ...Option) error {
	if err := c.ready(); err != nil {
		return err
	}
	r, err := LRBT(left, right, bottom, top)
	if err != nil {
		return err
	}
	return c.RectFilled(r, col, opts...)
}

// RectFilledLBWH draws a filled rectangle from its bottom-left corner
// and size.
//
// Options: Tilt.
func (c *Canvas) RectFilledLBWH(left, bottom, width, height float32, col Color, opts ...Option) error {
	if err := c.ready(); err != nil {
		return err
	}
	r, err := LBWH(left, bottom, width, height)
	if err != nil {
		return err
	}
	return c.RectFilled(r, col, opts...)
}

// RectFilledWith draws a filled rectangle from named bounds:
//
//	c.RectFilledWith(col, shapes.CenterX(100), shapes.CenterY(50),
//	    shapes.Width(80), shapes.Height(20))
func (c *Canvas) RectFilledWith(col Color, bounds ...Bound) error {
	if err := c.ready(); err != nil {
		return err
	}
	r, err := NewRect(bounds...)
	if err != nil {
		return err
	}
	return c.RectFilled(r, col)
}

// RectOutlineLRBT strokes a rectangle from explicit edge coordinates.
//
// Options: Border, Tilt.
func (c *Canvas) RectOutlineLRBT(left, right, bottom, top float32, col Color, opts ...Option) error {
	if err := c.ready(); err != nil {
		return err
	}
	r, err := LRBT(left, right, bottom, top)
	if err != nil {
		return err
	}
	return c.RectOutline(r, col, opts...)
}

// RectOutlineLBWH strokes a rectangle from its bottom-left corner and
// size.
//
// Options: Border, Tilt.
func (c *Canvas) RectOutlineLBWH(left, bottom, width, height float32, col Color, opts ...Option) error {
	if err := c.ready(); err != nil {
		return err
	}
	r, err := LBWH(left, bottom, width, height)
	if err != nil {
		return err
	}
	return c.RectOutline(r, col, opts...)
}

// RectOutlineWith strokes a rectangle from named bounds with a one-pixel
// border.
func (c *Canvas) RectOutlineWith(col Color, bounds ...Bound) error {
	if err := c.ready(); err != nil {
		return err
	}
	r, err := NewRect(bounds...)
	if err != nil {
		return err
	}
	return c.RectOutline(r, col)
}
