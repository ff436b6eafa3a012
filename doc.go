/*
Package shapes is an immediate-mode 2D drawing library: each call
tessellates one shape, streams its vertices into GPU buffers and issues
exactly one draw. Nothing persists between calls, so there is no scene
graph to build, diff or invalidate; the cost is simply one upload and
one draw per shape.

# Coordinate system

All operations take logical pixel coordinates with the origin in the
bottom-left corner and the y axis pointing up. Angles are degrees:
arc start and end angles run counter-clockwise from the positive x
axis, while Tilt rotates the finished shape clockwise about its
center.

# Quick Start

	// Setup (GL context already current)
	ctx, _ := opengl.New(800, 600)
	canvas, _ := shapes.New(ctx.Families())

	// Frame loop
	for !window.ShouldClose() {
	    gl.Clear(gl.COLOR_BUFFER_BIT)

	    canvas.CircleFilled(400, 300, 80, shapes.FromColor(colornames.Crimson))
	    canvas.RectOutlineLBWH(40, 40, 200, 120, shapes.White, shapes.Border(3))
	    canvas.Line(0, 0, 800, 600, shapes.Yellow, shapes.LineWidth(2))

	    window.SwapBuffers()
	}

# Drawing Operations

Arcs and parabolas (tessellated on the CPU):

	c.ArcFilled(x, y, w, h, color, startAngle, endAngle, opts...)
	c.ArcOutline(x, y, w, h, color, startAngle, endAngle, opts...)
	c.ParabolaFilled(startX, startY, endX, height, color, opts...)
	c.ParabolaOutline(startX, startY, endX, height, color, opts...)

Circles, ellipses and rectangles (expanded from one center vertex on
the GPU):

	c.CircleFilled(x, y, radius, color, opts...)
	c.CircleOutline(x, y, radius, color, opts...)
	c.EllipseFilled(x, y, w, h, color, opts...)
	c.EllipseOutline(x, y, w, h, color, opts...)
	c.RectFilled(rect, color, opts...)
	c.RectFilledLRBT(left, right, bottom, top, color, opts...)
	c.RectFilledLBWH(left, bottom, w, h, color, opts...)
	c.RectFilledWith(color, bounds...)

Rectangle outlines (ten-point strip on the CPU):

	c.RectOutline(rect, color, opts...)
	c.RectOutlineLRBT(left, right, bottom, top, color, opts...)
	c.RectOutlineLBWH(left, bottom, w, h, color, opts...)
	c.RectOutlineWith(color, bounds...)

Lines and points:

	c.Line(x0, y0, x1, y1, color, opts...)
	c.Lines(points, color, opts...)       // independent pairs
	c.LineStrip(points, color, opts...)   // connected polyline
	c.Point(x, y, color, size)
	c.Points(points, color, size)

Polygons and triangles:

	c.PolygonFilled(points, color)        // ear clipped
	c.PolygonOutline(points, color, opts...)
	c.TriangleFilled(x1, y1, x2, y2, x3, y3, color)
	c.TriangleOutline(x1, y1, x2, y2, x3, y3, color, opts...)

Textures (delegated to the Texture implementation):

	c.TextureRect(tex, x, y, w, h, angle, alpha)
	c.ScaledTextureRect(tex, x, y, scale, angle, alpha)
	c.TextureRectLBWH(tex, left, bottom, w, h, angle, alpha)

# Draw Options

	shapes.Tilt(degrees)     Clockwise rotation about the shape center
	shapes.Border(width)     Stroke width of outline shapes (default 1)
	shapes.LineWidth(width)  Stroke width of lines and polygon outlines (default 1)
	shapes.Segments(n)       Curve resolution; n < 1 picks automatically

# Rectangles from named bounds

NewRect builds a rectangle from any two independent constraints per
axis:

	r, err := shapes.NewRect(
	    shapes.CenterX(400), shapes.Bottom(0),
	    shapes.Width(200), shapes.Height(50))

Available bounds: Left, Right, Bottom, Top, Width, Height, CenterX,
CenterY.

# Reading pixels back

	col, err := shapes.Pixel(ctx, x, y)        // one pixel
	img, err := shapes.Image(ctx, 0, 0, 0, 0)  // whole screen, top-down rows

Both helpers take logical coordinates and scale by the backend's pixel
ratio, so they work unchanged on high-DPI displays.

# Buffer streaming

Vertex data travels through StreamBuffer, which implements the
orphaning discipline: before every write the buffer's backing store is
replaced (gl.BufferData with no data), so the GPU can keep reading the
old store while the CPU fills the new one. Capacity grows by doubling
and never shrinks. Backends only supply the two-method Buffer
primitive; the lifecycle lives here and is testable without a GPU.

# Extending

The canvas draws through small consumed contracts rather than concrete
GL types:

	type Buffer interface {
	    Realloc(capacity int)
	    Upload(data []byte)
	}

	type Program interface {
	    SetParams(p DrawParams)
	}

	type Geometry interface {
	    Draw(topology Topology, count int)
	}

	type Triangulator interface {
	    Triangulate(points PointList) ([]Triangle, error)
	}

A rendering backend bundles programs, geometries and buffers into a
Families value; backend/opengl provides the OpenGL 4.1 implementation.
Custom polygon triangulation plugs in through
shapes.WithTriangulator; the default is ear clipping from the earclip
package.

# Diagnostics

The package is silent by default. Route growth and lifecycle events to
a structured logger with:

	shapes.SetLogger(slog.Default())
*/
package shapes
