package shapes

import "fmt"

// Line draws one line segment through the uniform-colored line family.
//
// Options: LineWidth.
func (c *Canvas) Line(startX, startY, endX, endY float32, col Color, opts ...Option) error {
	if err := c.ready(); err != nil {
		return err
	}
	o := applyDrawOptions(opts)
	params := DrawParams{Color: col.Normalized(), LineWidth: o.lineWidth}
	points := PointList{{X: startX, Y: startY}, {X: endX, Y: endY}}
	return c.drawUniform(&c.families.Line, params, points, TopologyLines)
}

// Lines draws independent line segments between consecutive point pairs:
// points[0] to points[1], points[2] to points[3] and so on. An odd point
// count cannot form pairs and is rejected with ErrBadPointList.
//
// Options: LineWidth.
func (c *Canvas) Lines(points PointList, col Color, opts ...Option) error {
	if err := c.ready(); err != nil {
		return err
	}
	if len(points)%2 != 0 {
		return fmt.Errorf("%w: Lines needs point pairs, got %d points", ErrBadPointList, len(points))
	}
	if len(points) == 0 {
		return nil
	}
	o := applyDrawOptions(opts)
	params := DrawParams{Color: col.Normalized(), LineWidth: o.lineWidth}
	return c.drawUniform(&c.families.Line, params, points, TopologyLines)
}

// LineStrip draws a connected polyline through all points. A one-pixel
// strip streams the points as native lines; wider strips tessellate each
// segment into a quad and render one triangle strip. Fewer than two
// points draw nothing.
//
// Options: LineWidth.
func (c *Canvas) LineStrip(points PointList, col Color, opts ...Option) error {
	if err := c.ready(); err != nil {
		return err
	}
	if len(points) < 2 {
		return nil
	}
	o := applyDrawOptions(opts)
	if o.lineWidth == 1 {
		return c.drawStrip(points, col, TopologyLineStrip)
	}
	return c.drawStrip(ThickLineStripPoints(points, o.lineWidth), col, TopologyTriangleStrip)
}
