package shapes

// Point is a 2D position in logical (y-up) screen coordinates.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// PointList is an ordered sequence of 2D points. Draw operations taking a
// PointList stream exactly len(pl) vertices; there is no way to hand the
// GPU half a point.
type PointList []Point

// Triangle is one triangle of a tessellation, in input winding order.
type Triangle [3]Point

// Topology selects how streamed vertices assemble into primitives.
// It is a closed enumeration; rendering backends map each value onto
// their native draw mode.
type Topology int

const (
	TopologyPoints Topology = iota
	TopologyLines
	TopologyLineStrip
	TopologyTriangles
	TopologyTriangleStrip
	TopologyTriangleFan
)

// String returns the topology name for logs and errors.
func (t Topology) String() string {
	switch t {
	case TopologyPoints:
		return "points"
	case TopologyLines:
		return "lines"
	case TopologyLineStrip:
		return "line_strip"
	case TopologyTriangles:
		return "triangles"
	case TopologyTriangleStrip:
		return "triangle_strip"
	case TopologyTriangleFan:
		return "triangle_fan"
	default:
		return "unknown"
	}
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
