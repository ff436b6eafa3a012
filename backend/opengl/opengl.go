// Package opengl provides an OpenGL 4.1 rendering context for the shapes
// package.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shapes"
)

// Context owns the programs, vertex arrays and stream buffers behind one
// shape family set. It must be created and used on the thread holding
// the GL context.
//
// Context also implements shapes.Framebuffer for pixel readback.
type Context struct {
	families shapes.Families

	programs   []*program
	geometries []*geometry
	buffers    []*buffer

	width          int
	height         int
	pixelRatio     float32
	bufferCapacity int
	proj           [16]float32
}

// Option configures a Context.
type Option func(*Context)

// WithBufferCapacity sets the initial capacity in bytes of every vertex
// stream buffer. The default is shapes.DefaultBufferCapacity; buffers
// still grow on demand.
func WithBufferCapacity(capacity int) Option {
	return func(c *Context) { c.bufferCapacity = capacity }
}

// New compiles every family's shaders and builds their vertex arrays and
// buffers. Width and height are the drawable size in logical pixels; the
// projection maps that size with the y axis pointing up.
func New(width, height int, opts ...Option) (*Context, error) {
	c := &Context{width: width, height: height, pixelRatio: 1}
	for _, opt := range opts {
		opt(c)
	}
	c.updateProjection()

	var err error
	c.families.Line, err = c.newFamily(familyLine, passthroughVertexSrc, lineGeometrySrc, uniformFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("line family: %w", err)
	}
	c.families.EllipseFilled, err = c.newFamily(familyEllipseFilled, passthroughVertexSrc, ellipseFilledGeometrySrc, uniformFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("ellipse filled family: %w", err)
	}
	c.families.EllipseOutline, err = c.newFamily(familyEllipseOutline, passthroughVertexSrc, ellipseOutlineGeometrySrc, uniformFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("ellipse outline family: %w", err)
	}
	c.families.RectFilled, err = c.newFamily(familyRectFilled, passthroughVertexSrc, rectFilledGeometrySrc, uniformFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("rect filled family: %w", err)
	}
	c.families.Generic, err = c.newFamily(familyGeneric, genericVertexSrc, "", genericFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("generic family: %w", err)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	shapes.Logger().Info("opengl context created",
		"width", width, "height", height, "programs", len(c.programs))
	return c, nil
}

// newFamily compiles one family's program and wires a vertex array over
// fresh stream buffers: position at attribute 0 and, for the generic
// family, normalized byte colors at attribute 1.
func (c *Context) newFamily(kind familyKind, vertexSrc, geometrySrc, fragmentSrc string) (shapes.Family, error) {
	prog, err := newProgram(kind, vertexSrc, geometrySrc, fragmentSrc)
	if err != nil {
		return shapes.Family{}, err
	}
	prog.proj = &c.proj
	c.programs = append(c.programs, prog)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	posBuf := newBuffer()
	c.buffers = append(c.buffers, posBuf)
	gl.BindBuffer(gl.ARRAY_BUFFER, posBuf.id)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 8, 0)
	gl.EnableVertexAttribArray(0)

	var colBuf *buffer
	if kind == familyGeneric {
		colBuf = newBuffer()
		c.buffers = append(c.buffers, colBuf)
		gl.BindBuffer(gl.ARRAY_BUFFER, colBuf.id)
		gl.VertexAttribPointerWithOffset(1, 4, gl.UNSIGNED_BYTE, true, 4, 0)
		gl.EnableVertexAttribArray(1)
	}

	gl.BindVertexArray(0)

	geo := &geometry{vao: vao, prog: prog}
	c.geometries = append(c.geometries, geo)

	fam := shapes.Family{
		Program:  prog,
		Geometry: geo,
		Position: shapes.NewStreamBuffer(posBuf, c.bufferCapacity),
	}
	if colBuf != nil {
		fam.Color = shapes.NewStreamBuffer(colBuf, c.bufferCapacity)
	}
	return fam, nil
}

// Families returns the family set for shapes.New.
func (c *Context) Families() *shapes.Families {
	return &c.families
}

// Resize updates the drawable size in logical pixels and rebuilds the
// projection. The caller keeps the GL viewport in step with the physical
// size.
func (c *Context) Resize(width, height int) {
	c.width = width
	c.height = height
	c.updateProjection()
}

// SetPixelRatio records the physical to logical pixel scale used by
// readback. Non-positive ratios are ignored.
func (c *Context) SetPixelRatio(ratio float32) {
	if ratio <= 0 {
		shapes.Logger().Warn("ignoring non-positive pixel ratio", "ratio", ratio)
		return
	}
	c.pixelRatio = ratio
}

func (c *Context) updateProjection() {
	c.proj = orthoMatrix(0, float32(c.width), 0, float32(c.height), -1, 1)
}

// Size returns the drawable size in logical pixels.
func (c *Context) Size() (int, int) {
	return c.width, c.height
}

// PixelRatio returns the physical to logical pixel scale.
func (c *Context) PixelRatio() float32 {
	return c.pixelRatio
}

// ReadPixels returns tightly packed RGBA bytes for a region given in
// physical pixels, rows bottom-up.
func (c *Context) ReadPixels(x, y, width, height int) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	data := make([]byte, width*height*4)
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(data))
	return data
}

// Delete releases all GL resources the context owns.
func (c *Context) Delete() {
	for _, b := range c.buffers {
		if b.id != 0 {
			gl.DeleteBuffers(1, &b.id)
		}
	}
	for _, g := range c.geometries {
		if g.vao != 0 {
			gl.DeleteVertexArrays(1, &g.vao)
		}
	}
	for _, p := range c.programs {
		if p.id != 0 {
			gl.DeleteProgram(p.id)
		}
	}
	c.buffers = nil
	c.geometries = nil
	c.programs = nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
