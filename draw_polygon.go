package shapes

import "fmt"

// PolygonFilled draws a filled simple polygon. The boundary is
// triangulated on the CPU, by ear clipping unless the canvas was built
// with a custom Triangulator, and streamed as independent triangles.
func (c *Canvas) PolygonFilled(points PointList, col Color) error {
	if err := c.ready(); err != nil {
		return err
	}
	if len(points) < 3 {
		return fmt.Errorf("%w: polygon needs at least 3 points, got %d", ErrBadPointList, len(points))
	}
	tris, err := c.tri.Triangulate(points)
	if err != nil {
		return err
	}
	flat := make(PointList, 0, len(tris)*3)
	for _, t := range tris {
		flat = append(flat, t[0], t[1], t[2])
	}
	return c.drawStrip(flat, col, TopologyTriangles)
}

// PolygonOutline strokes a closed polygon boundary. Each edge becomes a
// quad and the quads chain into one triangle strip that meets itself.
//
// Options: LineWidth.
func (c *Canvas) PolygonOutline(points PointList, col Color, opts ...Option) error {
	if err := c.ready(); err != nil {
		return err
	}
	if len(points) < 3 {
		return fmt.Errorf("%w: polygon needs at least 3 points, got %d", ErrBadPointList, len(points))
	}
	o := applyDrawOptions(opts)
	return c.drawStrip(ThickOutlinePoints(points, o.lineWidth), col, TopologyTriangleStrip)
}

// TriangleFilled draws one filled triangle.
func (c *Canvas) TriangleFilled(x1, y1, x2, y2, x3, y3 float32, col Color) error {
	if err := c.ready(); err != nil {
		return err
	}
	points := PointList{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}
	return c.drawStrip(points, col, TopologyTriangles)
}

// TriangleOutline strokes a triangle boundary.
//
// Options: LineWidth.
func (c *Canvas) TriangleOutline(x1, y1, x2, y2, x3, y3 float32, col Color, opts ...Option) error {
	points := PointList{{X: x1, Y: y1}, {X: x2, Y: y2}, {X: x3, Y: y3}}
	return c.PolygonOutline(points, col, opts...)
}
