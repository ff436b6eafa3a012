package shapes

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-theft-auto/shapes/earclip"
)

// Program is one compiled shader program of a shape family. SetParams
// uploads the per-draw parameter record; a program reads only the fields
// its family uses and ignores the rest.
type Program interface {
	SetParams(p DrawParams)
}

// Geometry issues draw calls for one family's vertex array.
type Geometry interface {
	// Draw renders count vertices from the family's stream buffers,
	// assembled with the given topology.
	Draw(topology Topology, count int)
}

// DrawParams is the per-draw parameter record handed to a family's
// program. Width and Height are the full shape extents; backends derive
// whatever form their shaders want from them.
type DrawParams struct {
	Color     [4]float32
	Width     float32
	Height    float32
	Tilt      float32
	Border    float32
	LineWidth float32
	// Segments picks the curve resolution of procedural shapes.
	// Zero lets the program choose from the shape's size.
	Segments int32
}

// Family bundles the GPU resources of one shape family: the program its
// shapes are shaded with, the geometry that draws them and the stream
// buffers feeding its vertex attributes. Color is non-nil only on the
// generic family, which colors per vertex; the procedural families color
// through a program uniform.
type Family struct {
	Program  Program
	Geometry Geometry
	Position *StreamBuffer
	Color    *StreamBuffer
}

// Families is the full family set a rendering backend provides.
//
// Line draws uniform-colored line segments. EllipseFilled, EllipseOutline
// and RectFilled expand single center vertices into whole shapes on the
// GPU. Generic streams arbitrary per-vertex colored geometry.
type Families struct {
	Line           Family
	EllipseFilled  Family
	EllipseOutline Family
	RectFilled     Family
	Generic        Family
}

// Triangulator splits a simple polygon into triangles covering it
// exactly. Implementations must return len(points)-2 triangles built
// from the input points alone.
type Triangulator interface {
	Triangulate(points PointList) ([]Triangle, error)
}

// Canvas is the drawing handle. Every draw operation resolves its GPU
// resources through the canvas; nothing is looked up in package state
// behind the caller's back. A Canvas must stay on the thread its
// backend's rendering context is bound to.
type Canvas struct {
	families *Families
	tri      Triangulator

	// Per-draw staging, reused across calls.
	scratch      []byte
	colorScratch []byte
}

// CanvasOption configures a Canvas.
type CanvasOption func(*Canvas)

// WithTriangulator replaces the default ear clipping polygon
// triangulator.
func WithTriangulator(t Triangulator) CanvasOption {
	return func(c *Canvas) { c.tri = t }
}

// New creates a canvas drawing through the given family set.
func New(families *Families, opts ...CanvasOption) (*Canvas, error) {
	if families == nil {
		return nil, fmt.Errorf("%w: nil families", ErrNoContext)
	}
	c := &Canvas{
		families: families,
		tri:      earClipper{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ready guards draw operations against a missing rendering context.
func (c *Canvas) ready() error {
	if c == nil || c.families == nil {
		return ErrNoContext
	}
	return nil
}

// drawUniform streams points into a family colored by program uniform
// and issues one draw: upload parameters, grow and orphan the position
// buffer, write the vertex bytes, draw.
func (c *Canvas) drawUniform(fam *Family, params DrawParams, points PointList, top Topology) error {
	fam.Program.SetParams(params)

	pos := appendPointBytes(c.scratch[:0], points)
	c.scratch = pos
	fam.Position.GrowToFit(len(pos))
	if err := fam.Position.Write(pos); err != nil {
		return err
	}
	fam.Geometry.Draw(top, len(points))
	return nil
}

// drawStrip streams points into the generic per-vertex colored family.
// The color buffer is grown to the position buffer's byte requirement so
// the two stay capacity-identical, then each receives exactly one orphan
// and one write before the draw.
func (c *Canvas) drawStrip(points PointList, col Color, top Topology) error {
	fam := &c.families.Generic

	pos := appendPointBytes(c.scratch[:0], points)
	c.scratch = pos
	cols := col.appendVertexColors(c.colorScratch[:0], len(points))
	c.colorScratch = cols

	fam.Position.GrowToFit(len(pos))
	fam.Color.GrowToFit(len(pos))
	if err := fam.Position.Write(pos); err != nil {
		return err
	}
	if err := fam.Color.Write(cols); err != nil {
		return err
	}
	fam.Geometry.Draw(top, len(points))
	return nil
}

// appendPointBytes appends each point as two little-endian float32s,
// eight bytes per point, so the byte count always agrees exactly with
// the vertex count.
func appendPointBytes(dst []byte, points PointList) []byte {
	for _, p := range points {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(p.X))
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(p.Y))
	}
	return dst
}

// earClipper adapts package earclip as the default Triangulator.
type earClipper struct{}

func (earClipper) Triangulate(points PointList) ([]Triangle, error) {
	poly := make([]earclip.Point, len(points))
	for i, p := range points {
		poly[i] = earclip.Point{X: float64(p.X), Y: float64(p.Y)}
	}
	tris, err := earclip.Triangulate(poly)
	if err != nil {
		return nil, fmt.Errorf("shapes: triangulate polygon: %w", err)
	}
	out := make([]Triangle, len(tris))
	for i, t := range tris {
		out[i] = Triangle{
			{X: float32(t[0].X), Y: float32(t[0].Y)},
			{X: float32(t[1].X), Y: float32(t[1].Y)},
			{X: float32(t[2].X), Y: float32(t[2].Y)},
		}
	}
	return out, nil
}
