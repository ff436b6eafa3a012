package shapes

// Point draws one square point of the given edge size centered at
// (x, y).
func (c *Canvas) Point(x, y float32, col Color, size float32) error {
	return c.Points(PointList{{X: x, Y: y}}, col, size)
}

// Points draws a square point at every position in the list. The points
// share one size and color, so the whole batch streams as center
// vertices expanded by the filled-rectangle family's program.
func (c *Canvas) Points(points PointList, col Color, size float32) error {
	if err := c.ready(); err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}
	params := DrawParams{Color: col.Normalized(), Width: size, Height: size}
	return c.drawUniform(&c.families.RectFilled, params, points, TopologyPoints)
}
