package shapes

// ArcFilled draws a filled elliptical arc, a pie slice of the ellipse
// with the given full extents centered at (x, y). Angles are in degrees,
// counter-clockwise from the positive x axis. The arc is tessellated on
// the CPU as a triangle fan anchored at the center.
//
// Options: Tilt, Segments.
func (c *Canvas) ArcFilled(x, y, width, height float32, col Color, startAngle, endAngle float32, opts ...Option) error {
	if err := c.ready(); err != nil {
		return err
	}
	o := applyDrawOptions(opts)
	pts := ArcFanPoints(Point{X: x, Y: y}, width, height, startAngle, endAngle, o.tilt, o.segments)
	return c.drawStrip(pts, col, TopologyTriangleFan)
}

// ArcOutline strokes an elliptical arc with a border straddling the
// nominal curve. Angles are in degrees, counter-clockwise from the
// positive x axis.
//
// Options: Border, Tilt, Segments.
func (c *Canvas) ArcOutline(x, y, width, height float32, col Color, startAngle, endAngle float32, opts ...Option) error {
	if err := c.ready(); err != nil {
		return err
	}
	o := applyDrawOptions(opts)
	pts := ArcStripPoints(Point{X: x, Y: y}, width, height, startAngle, endAngle, o.border, o.tilt, o.segments)
	return c.drawStrip(pts, col, TopologyTriangleStrip)
}

// ParabolaFilled draws a filled parabolic cap: the upper half of an
// ellipse spanning startX to endX horizontally, centered height above
// the start point's y coordinate.
//
// Options: Tilt, Segments.
func (c *Canvas) ParabolaFilled(startX, startY, endX, height float32, col Color, opts ...Option) error {
	centerX := startX + (endX-startX)/2
	centerY := startY + height
	width := startX - endX
	return c.ArcFilled(centerX, centerY, width, height, col, 0, 180, opts...)
}

// ParabolaOutline strokes a parabola with the same span as
// ParabolaFilled.
//
// Options: Border, Tilt, Segments.
func (c *Canvas) ParabolaOutline(startX, startY, endX, height float32, col Color, opts ...Option) error {
	centerX := startX + (endX-startX)/2
	centerY := startY + height
	width := startX - endX
	return c.ArcOutline(centerX, centerY, width, height, col, 0, 180, opts...)
}
